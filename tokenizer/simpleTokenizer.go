package tokenizer

import "unicode"

// SimpleTokenizer splits a string into raw tokens, where a raw token is a
// maximal run of non-whitespace runes. Punctuation stays attached to its
// token, "dogs!?" comes out as one token.
type SimpleTokenizer struct {
	content []rune
}

// Construct SimpleTokenizer from a string
func SimpleTokenizerFromString(content string) *SimpleTokenizer {
	return &SimpleTokenizer{[]rune(content)}
}

// Trim whitespaces from left
func (simpleTokenizer *SimpleTokenizer) TrimLeft() {
	for len(simpleTokenizer.content) > 0 && unicode.IsSpace(simpleTokenizer.content[0]) {
		simpleTokenizer.content = simpleTokenizer.content[1:]
	}
}

// Chop n runes from left
func (simpleTokenizer *SimpleTokenizer) ChopLeft(n int) string {
	token := simpleTokenizer.content[:n]
	simpleTokenizer.content = simpleTokenizer.content[n:]
	return string(token)
}

// Chop while the rune meets the given predicate
func (simpleTokenizer *SimpleTokenizer) ChopWhile(pred func(rune) bool) string {
	n := 0
	for n < len(simpleTokenizer.content) && pred(simpleTokenizer.content[n]) {
		n += 1
	}
	return simpleTokenizer.ChopLeft(n)
}

// Checks if the simpleTokenizer still contains tokens. Leading whitespace is
// consumed here, so NextToken never yields an empty token on its own.
func (simpleTokenizer *SimpleTokenizer) Contains() bool {
	simpleTokenizer.TrimLeft()
	return len(simpleTokenizer.content) != 0
}

// Returns the next raw token from the simpleTokenizer, also moves the
// simpleTokenizer past it
func (simpleTokenizer *SimpleTokenizer) NextToken() string {
	if !simpleTokenizer.Contains() {
		return ""
	}
	return simpleTokenizer.ChopWhile(func(r rune) bool { return !unicode.IsSpace(r) })
}

func (simpleTokenizer *SimpleTokenizer) Tokens() []string {
	ret := []string{}
	for simpleTokenizer.Contains() {
		ret = append(ret, simpleTokenizer.NextToken())
	}
	return ret
}
