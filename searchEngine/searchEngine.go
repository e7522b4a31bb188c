package searchEngine

import (
	"findex/document"
	"findex/fileContents"
	"findex/tokenizer"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rcrowley/go-metrics"
)

// DefaultExtension selects the files indexed when Build gets an empty
// extension.
const DefaultExtension = ".txt"

var (
	buildTimer = metrics.NewRegisteredTimer("index_build", nil)
	queryTimer = metrics.NewRegisteredTimer("index_query", nil)
	docTokens  = metrics.NewRegisteredHistogram("doc_tokens", nil, metrics.NewUniformSample(512))
)

// SearchEngine holds the loaded documents of one directory and the inverted
// index over their terms. It is built once and read-only afterwards.
type SearchEngine struct {
	path          string
	extension     string
	documents     []*document.Document
	invertedIndex map[string][]*document.Document
}

// QueryResult pairs a document path with its score for one query.
type QueryResult struct {
	Path  string
	Score float64
}

// Build loads every immediate entry of dirPath whose name ends with extension
// (".txt" when extension is empty) as a Document and fills the inverted index
// mapping each term to the documents containing it. The build is all or
// nothing: a missing directory or an unreadable selected file fails it with
// no partial index.
func Build(dirPath string, extension string) (*SearchEngine, error) {
	start := time.Now()
	if extension == "" {
		extension = DefaultExtension
	}
	filePaths, err := fileContents.List(dirPath, extension)
	if err != nil {
		return nil, fmt.Errorf("SearchEngine.Build: %w", err)
	}
	searchEngine := &SearchEngine{
		path:          dirPath,
		extension:     extension,
		invertedIndex: map[string][]*document.Document{},
	}
	for _, filePath := range filePaths {
		doc, err := document.Load(filePath)
		if err != nil {
			return nil, fmt.Errorf("SearchEngine.Build: %w", err)
		}
		searchEngine.documents = append(searchEngine.documents, doc)
		docTokens.Update(int64(doc.TokenCount()))
		for _, term := range doc.Words() {
			searchEngine.invertedIndex[term] = append(searchEngine.invertedIndex[term], doc)
		}
	}
	buildTimer.UpdateSince(start)
	return searchEngine, nil
}

// IDF returns the natural log of total documents over documents containing
// term. The term is looked up as given, callers pass already normalized
// terms. A term appearing nowhere scores 0, and so does a term appearing
// everywhere: no discriminating power either way.
func (searchEngine *SearchEngine) IDF(term string) float64 {
	postings, ok := searchEngine.invertedIndex[term]
	if !ok {
		return 0.0
	}
	return math.Log(float64(len(searchEngine.documents)) / float64(len(postings)))
}

// SearchScored splits query into raw tokens, normalizes each and scores every
// document on each matching term's posting list with tf * idf. A document hit
// by several query terms keeps the score of the last term that hit it, the
// scores are not summed. Results come back sorted by descending score; equal
// scores keep the order in which the documents were first hit.
func (searchEngine *SearchEngine) SearchScored(query string) []QueryResult {
	start := time.Now()
	scores := map[string]float64{}
	order := []string{}
	for _, token := range tokenizer.SimpleTokenizerFromString(query).Tokens() {
		term := tokenizer.Normalize(token)
		postings, ok := searchEngine.invertedIndex[term]
		if !ok {
			continue
		}
		idf := searchEngine.IDF(term)
		for _, doc := range postings {
			if _, seen := scores[doc.Path()]; !seen {
				order = append(order, doc.Path())
			}
			scores[doc.Path()] = doc.TermFrequency(term) * idf
		}
	}
	results := make([]QueryResult, 0, len(order))
	for _, path := range order {
		results = append(results, QueryResult{Path: path, Score: scores[path]})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	queryTimer.UpdateSince(start)
	return results
}

// Search returns just the document paths of SearchScored, most relevant
// first. An unmatched or empty query yields an empty slice, never an error.
func (searchEngine *SearchEngine) Search(query string) []string {
	results := searchEngine.SearchScored(query)
	paths := make([]string, 0, len(results))
	for _, result := range results {
		paths = append(paths, result.Path)
	}
	return paths
}

// SearchTopN returns at most topN scored results.
func (searchEngine *SearchEngine) SearchTopN(query string, topN uint) []QueryResult {
	results := searchEngine.SearchScored(query)
	return results[:min(topN, uint(len(results)))]
}

// TotalDocuments returns the number of documents loaded into the index,
// zero-token documents included.
func (searchEngine *SearchEngine) TotalDocuments() int {
	return len(searchEngine.documents)
}

// TermCount returns the number of distinct terms in the inverted index.
func (searchEngine *SearchEngine) TermCount() int {
	return len(searchEngine.invertedIndex)
}

// Path returns the directory the index was built over, as given to Build.
func (searchEngine *SearchEngine) Path() string {
	return searchEngine.path
}

// Extension returns the file name suffix the build selected on.
func (searchEngine *SearchEngine) Extension() string {
	return searchEngine.extension
}

func (searchEngine *SearchEngine) String() string {
	return "SearchEngine('{" + searchEngine.path + "}')"
}
