package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Conf carries the optional YAML configuration shared by the subcommands.
// Flags win over conf values, conf values win over built-in defaults.
type Conf struct {
	LogLevel    string `yaml:"loglevel"`
	Dir         string `yaml:"dir"`
	Extension   string `yaml:"extension"`
	Addr        string `yaml:"addr"`
	TopN        uint   `yaml:"topn"`
	MetricsSecs int    `yaml:"metrics_secs"`
}

func NewConf(path string) (*Conf, error) {
	conf := &Conf{}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("NewConf: failed reading the config file `%s`: %w", path, err)
	}
	err = yaml.Unmarshal(file, conf)
	if err != nil {
		return nil, fmt.Errorf("NewConf: failed parsing the config file `%s`: %w", path, err)
	}
	return conf, nil
}
