package main

import (
	"encoding/json"
	"findex/fileContents"
	"findex/searchEngine"
	"findex/slog"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rcrowley/go-metrics"
)

const (
	defaultAddr     string = "127.0.0.1:6969"
	defaultTopN     uint   = 10
	listSubCommand         = "list"
	querySubCommand        = "query"
	serveSubCommand        = "serve"
)

var (
	confPath    string
	dirPath     string
	extension   string
	queryString string
	topN        uint
	addr        string
	logLevel    string
	withMetrics bool
	metricsSecs int
)

func addCommonFlags(flg *flag.FlagSet) {
	flg.StringVar(&confPath, "conf", "", "Optional YAML config file")
	flg.StringVar(&dirPath, "dir", "", "Directory containing the files to index")
	flg.StringVar(&extension, "ext", "", "File name suffix to select (default \".txt\")")
	flg.StringVar(&logLevel, "loglevel", "", "Log level: DEBUG, INFO, ERROR or FATAL")
}

func configListFlagSet() *flag.FlagSet {
	flg := flag.NewFlagSet(listSubCommand, flag.ExitOnError)
	addCommonFlags(flg)
	return flg
}

func configQueryFlagSet() *flag.FlagSet {
	flg := flag.NewFlagSet(querySubCommand, flag.ExitOnError)
	addCommonFlags(flg)
	flg.StringVar(&queryString, "query", "", "Search query")
	flg.UintVar(&topN, "topN", 0, "Top N results to show, 0 shows all")
	flg.BoolVar(&withMetrics, "metrics", false, "Dump build and query metrics to stderr before exiting")
	return flg
}

func configServeFlagSet() *flag.FlagSet {
	flg := flag.NewFlagSet(serveSubCommand, flag.ExitOnError)
	addCommonFlags(flg)
	flg.StringVar(&addr, "addr", "", "Address to serve the server on")
	flg.IntVar(&metricsSecs, "metricsSecs", 0, "Seconds between metrics dumps to stderr, 0 disables them")
	return flg
}

var (
	listFlagSet  *flag.FlagSet = configListFlagSet()
	queryFlagSet               = configQueryFlagSet()
	serveFlagSet               = configServeFlagSet()
)

func usage(program string) {
	fmt.Printf("Usage: ./%s <SUBCOMMAND> <FLAGS>\n", program)
	fmt.Println("    SUBCOMMANDS:")
	fmt.Printf("        1. %s\n", listSubCommand)
	fmt.Printf("        2. %s\n", querySubCommand)
	fmt.Printf("        3. %s\n", serveSubCommand)
	fmt.Println()
	listFlagSet.Usage()
	fmt.Println()
	queryFlagSet.Usage()
	fmt.Println()
	serveFlagSet.Usage()
	os.Exit(1)
}

// applyConf fills every value the flags left unset, first from the optional
// config file and then from the built-in defaults.
func applyConf() {
	conf := &Conf{}
	if confPath != "" {
		loaded, err := NewConf(confPath)
		if err != nil {
			slog.Fatalf("%s", err)
		}
		conf = loaded
	}
	if dirPath == "" {
		dirPath = conf.Dir
	}
	if extension == "" {
		extension = conf.Extension
	}
	if addr == "" {
		addr = conf.Addr
	}
	if addr == "" {
		addr = defaultAddr
	}
	if topN == 0 {
		topN = conf.TopN
	}
	if metricsSecs == 0 {
		metricsSecs = conf.MetricsSecs
	}
	if logLevel == "" {
		logLevel = conf.LogLevel
	}
	if logLevel != "" {
		level, err := slog.ParseLevel(logLevel)
		if err != nil {
			slog.Fatalf("%s", err)
		}
		slog.SetLevel(level)
	}
}

func mkEngine() *searchEngine.SearchEngine {
	if dirPath == "" {
		slog.Fatal("Did not provide the directory: pass -dir or set `dir` in the config file")
	}
	slog.Infof("Building index over the directory `%s`...", dirPath)
	engine, err := searchEngine.Build(dirPath, extension)
	if err != nil {
		slog.Fatalf("%s", err)
	}
	slog.Infof("Indexed %d documents, %d distinct terms", engine.TotalDocuments(), engine.TermCount())
	return engine
}

func list() {
	listFlagSet.Parse(os.Args)
	applyConf()
	if dirPath == "" {
		slog.Fatal("Did not provide the directory: pass -dir or set `dir` in the config file")
	}
	ext := extension
	if ext == "" {
		ext = searchEngine.DefaultExtension
	}
	filePaths, err := fileContents.List(dirPath, ext)
	if err != nil {
		slog.Fatalf("%s", err)
	}
	for _, filePath := range filePaths {
		fmt.Println(filePath)
	}
}

func query() {
	queryFlagSet.Parse(os.Args)
	applyConf()
	engine := mkEngine()
	var results []searchEngine.QueryResult
	if topN == 0 {
		results = engine.SearchScored(queryString)
	} else {
		results = engine.SearchTopN(queryString, topN)
	}
	slog.Infof("Results for the query `%s`:", queryString)
	for _, result := range results {
		slog.Infof("Score: %.4f, Doc: `%s`", result.Score, result.Path)
	}
	if len(results) == 0 {
		slog.Info("No documents matched")
	}
	if withMetrics {
		metrics.WriteOnce(metrics.DefaultRegistry, os.Stderr)
	}
}

func errWithMethodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Method Not Allowed!", http.StatusMethodNotAllowed)
}

func errWithInternalServerError(w http.ResponseWriter) {
	http.Error(w, "Internal Server Error!", http.StatusInternalServerError)
}

type searchRequest struct {
	Search string `json:"search"`
	TopN   uint   `json:"topN"`
}

type searchResponse struct {
	Path  string  `json:"path"`
	Score float64 `json:"score"`
}

func handleSearch(w http.ResponseWriter, r *http.Request, engine *searchEngine.SearchEngine) {
	switch r.Method {
	case http.MethodPost:
		decoder := json.NewDecoder(r.Body)
		var req searchRequest
		err := decoder.Decode(&req)
		if err != nil {
			http.Error(w, "Could not interpret the request. Please send the POST request with JSON body as { search: <YOUR SEARCH TEXT HERE>, topN: <TOP N results> }", http.StatusBadRequest)
			return
		}
		topN := req.TopN
		if topN == 0 {
			topN = defaultTopN
		}
		results := engine.SearchTopN(req.Search, topN)
		searchResponses := []searchResponse{}
		for _, result := range results {
			searchResponses = append(searchResponses, searchResponse{result.Path, result.Score})
		}
		bytes, err := json.Marshal(searchResponses)
		if err != nil {
			errWithInternalServerError(w)
			slog.Errorf("handleSearch: unexpected error!: %s", err)
			return
		}
		w.Header().Add("Content-Type", "application/json; charset=utf-8")
		w.Write(bytes)
	default:
		errWithMethodNotAllowed(w)
	}
}

type statsResponse struct {
	Path           string `json:"path"`
	Extension      string `json:"extension"`
	TotalDocuments int    `json:"totalDocuments"`
	TermCount      int    `json:"termCount"`
}

func handleStats(w http.ResponseWriter, r *http.Request, engine *searchEngine.SearchEngine) {
	switch r.Method {
	case http.MethodGet:
		bytes, err := json.Marshal(statsResponse{
			Path:           engine.Path(),
			Extension:      engine.Extension(),
			TotalDocuments: engine.TotalDocuments(),
			TermCount:      engine.TermCount(),
		})
		if err != nil {
			errWithInternalServerError(w)
			slog.Errorf("handleStats: unexpected error!: %s", err)
			return
		}
		w.Header().Add("Content-Type", "application/json; charset=utf-8")
		w.Write(bytes)
	default:
		errWithMethodNotAllowed(w)
	}
}

type loggerMux struct {
	handler http.Handler
}

func (l loggerMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slog.Infof("Got request: %s %s", r.Method, r.URL.String())
	l.handler.ServeHTTP(w, r)
}

func serve() {
	serveFlagSet.Parse(os.Args)
	applyConf()
	engine := mkEngine()
	if metricsSecs > 0 {
		go metrics.LogScaled(
			metrics.DefaultRegistry,
			time.Duration(metricsSecs)*time.Second,
			time.Millisecond,
			log.New(os.Stderr, "metrics: ", log.Lmicroseconds),
		)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		handleSearch(w, r, engine)
	})
	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		handleStats(w, r, engine)
	})
	server := loggerMux{handler: mux}
	slog.Infof("Listening on %s", addr)
	slog.Fatalf("%s", http.ListenAndServe(addr, server))
}

func main() {
	if len(os.Args) == 0 {
		slog.Fatalf("This is unexpected, os.Args `%+v` is empty!", os.Args)
	}
	program := os.Args[0]
	os.Args = os.Args[1:]

	if len(os.Args) == 0 {
		fmt.Println("Did not provide any subcommand!")
		usage(program)
	}
	subcommand := os.Args[0]
	os.Args = os.Args[1:]
	switch subcommand {
	case listSubCommand:
		list()
	case querySubCommand:
		query()
	case serveSubCommand:
		serve()
	default:
		fmt.Printf("Unknown subcommand `%s`\n", subcommand)
		usage(program)
	}
}
