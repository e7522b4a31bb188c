package tokenizer

type Tokenizer interface {
	// Checks if the Tokenizer still contains tokens
	Contains() bool
	// Returns the next raw token, also moves past it
	NextToken() string
	// Returns the remaining raw tokens as a slice
	Tokens() []string
}
