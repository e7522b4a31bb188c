package document

import (
	"findex/fileContents"
	"findex/tokenizer"
	"fmt"
)

// Document is one indexed file: the path it was loaded from and the
// precomputed frequency of every normalized term in it.
type Document struct {
	path      string
	frequency map[string]float64
	tokens    int
}

// Load reads the file at path and computes its term-frequency table. The
// frequency of a term is the count of raw tokens normalizing to it, divided
// by the total raw-token count of the file. A token made of punctuation only
// counts toward the empty-string term. A file with no tokens gets an empty
// table.
func Load(path string) (*Document, error) {
	content, err := fileContents.Read(path)
	if err != nil {
		return nil, fmt.Errorf("Document.Load: %w", err)
	}
	tokens := tokenizer.SimpleTokenizerFromString(content).Tokens()
	frequency := map[string]float64{}
	for _, token := range tokens {
		frequency[tokenizer.Normalize(token)] += 1
	}
	for term := range frequency {
		frequency[term] /= float64(len(tokens))
	}
	return &Document{path: path, frequency: frequency, tokens: len(tokens)}, nil
}

// TermFrequency normalizes term and returns its frequency in the document,
// 0 if absent. The normalization makes lookups insensitive to case and
// punctuation, "DOGS!" finds the same entry as "dogs".
func (document *Document) TermFrequency(term string) float64 {
	return document.frequency[tokenizer.Normalize(term)]
}

// Path returns the exact path string the document was loaded from.
func (document *Document) Path() string {
	return document.path
}

// Words returns the distinct normalized terms of the document, in no
// particular order. The empty string is included when any token normalized
// to it.
func (document *Document) Words() []string {
	words := make([]string, 0, len(document.frequency))
	for term := range document.frequency {
		words = append(words, term)
	}
	return words
}

// TokenCount returns the number of raw tokens the file was split into, the
// denominator of every term frequency.
func (document *Document) TokenCount() int {
	return document.tokens
}

func (document *Document) String() string {
	return "Document('{" + document.path + "}')"
}
