// Package embedargs turns a string of shell-quoted key="value"
// arguments into an embed Document.
//
// The package does no I/O. Sending the result, and deciding whether an
// empty Document is worth sending, is left to the caller.
package embedargs

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Arg is a single key=value token.
type Arg struct {
	Key   string
	Value string
}

// Args is the materialized key -> value mapping of an argument string.
// A repeated key keeps the position of its first occurrence and the
// value of its last.
type Args struct {
	keys   []string
	values map[string]string
}

// Tokenize splits raw using POSIX shell quoting rules and then splits
// every word on its first '='. Tokens are returned in input order,
// duplicates included.
func Tokenize(raw string) ([]Arg, error) {
	words, err := shellquote.Split(raw)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	tokens := make([]Arg, 0, len(words))
	for _, word := range words {
		key, value, ok := strings.Cut(word, "=")
		if !ok {
			return nil, &ParseError{Token: word, Err: ErrMissingSeparator}
		}
		if key == "" {
			return nil, &ParseError{Token: word, Err: ErrEmptyKey}
		}
		tokens = append(tokens, Arg{Key: key, Value: value})
	}
	return tokens, nil
}

// Parse tokenizes raw and folds the tokens into Args.
func Parse(raw string) (*Args, error) {
	tokens, err := Tokenize(raw)
	if err != nil {
		return nil, err
	}

	a := &Args{values: make(map[string]string, len(tokens))}
	for _, t := range tokens {
		if _, seen := a.values[t.Key]; !seen {
			a.keys = append(a.keys, t.Key)
		}
		a.values[t.Key] = t.Value
	}
	return a, nil
}

// Get returns the value of key and whether it was given.
func (a *Args) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Has reports whether any of keys was given.
func (a *Args) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := a.values[k]; ok {
			return true
		}
	}
	return false
}

// Keys returns the distinct keys in the order they first appeared.
func (a *Args) Keys() []string {
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}
