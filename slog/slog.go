package slog

import (
	"fmt"
	"log"
	"os"
	"slices"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	ERROR
	FATAL
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

func (level Level) String() string {
	name, ok := levelNames[level]
	if !ok {
		return fmt.Sprintf("LEVEL(%d)", int(level))
	}
	return name
}

// ParseLevel maps a level name, as written in flags or config files, to its Level.
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if name == levelName {
			return level, nil
		}
	}
	return INFO, fmt.Errorf("ParseLevel: unknown log level `%s`", name)
}

var minLevel = INFO

// SetLevel drops every log line tagged below level
func SetLevel(level Level) {
	minLevel = level
}

func logFLn(level Level, format string, v []any) {
	if level < minLevel {
		return
	}
	log.Printf(fmt.Sprintf("%s: %s\n", level, format), v...)
}

func logLn(level Level, v []any) {
	if level < minLevel {
		return
	}
	v = slices.Insert(v, 0, any(fmt.Sprintf("%s: ", level)))
	log.Print(v...)
}

// Calls to log.Printf with DEBUG tag associated with the log. Arguments are handled in the manner of fmt.Printf.
func Debugf(format string, v ...any) {
	logFLn(DEBUG, format, v)
}

// Calls to log.Print with DEBUG tag associated with the log. Arguments are handled in the manner of fmt.Print.
func Debug(v ...any) {
	logLn(DEBUG, v)
}

// Calls to log.Printf with INFO tag associated with the log. Arguments are handled in the manner of fmt.Printf.
func Infof(format string, v ...any) {
	logFLn(INFO, format, v)
}

// Calls to log.Print with INFO tag associated with the log. Arguments are handled in the manner of fmt.Print.
func Info(v ...any) {
	logLn(INFO, v)
}

// Calls to log.Printf with ERROR tag associated with the log. Arguments are handled in the manner of fmt.Printf.
func Errorf(format string, v ...any) {
	logFLn(ERROR, format, v)
}

// Calls to log.Print with ERROR tag associated with the log. Arguments are handled in the manner of fmt.Print.
func Error(v ...any) {
	logLn(ERROR, v)
}

// Associate log with FATAL tag. Arguments are handled in the manner of fmt.Printf. Also, it calls os.Exit(1) to indicate failure
func Fatalf(format string, v ...any) {
	logFLn(FATAL, format, v)
	os.Exit(1)
}

// Associate log with FATAL tag. Arguments are handled in the manner of fmt.Print. Also, it calls os.Exit(1) to indicate failure
func Fatal(v ...any) {
	logLn(FATAL, v)
	os.Exit(1)
}
