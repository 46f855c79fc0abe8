package markov

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into the tokens FromString builds nodes from.
//
// Runs of non-whitespace split into up to three tokens: a leading
// punctuation run, the word core (keeping internal punctuation, so
// "who's" stays whole), and a trailing punctuation run. "hello, world?"
// tokenizes to ["hello", ",", "world", "?"].
//
// Substrings wrapped in the group markers become single tokens with
// their content untouched, whitespace included. A marker with no
// partner returns ErrUnmatchedGroupMarker.
func Tokenize(text string, opts ...Option) ([]string, error) {
	cfg := newConfig(opts)
	return tokenize(text, cfg.openMarker, cfg.closeMarker)
}

func tokenize(text, open, close string) ([]string, error) {
	grouping := open != "" && close != ""

	var tokens []string
	var chunk []rune
	flush := func() {
		if len(chunk) > 0 {
			tokens = append(tokens, splitChunk(chunk)...)
			chunk = chunk[:0]
		}
	}

	i := 0
	for i < len(text) {
		if grouping && strings.HasPrefix(text[i:], open) {
			flush()
			rest := text[i+len(open):]
			end := strings.Index(rest, close)
			if end < 0 {
				return nil, ErrUnmatchedGroupMarker
			}
			if group := rest[:end]; group != "" {
				tokens = append(tokens, group)
			}
			i += len(open) + end + len(close)
			continue
		}
		if grouping && strings.HasPrefix(text[i:], close) {
			return nil, ErrUnmatchedGroupMarker
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			flush()
		} else {
			chunk = append(chunk, r)
		}
		i += size
	}
	flush()
	return tokens, nil
}

// splitChunk peels leading and trailing punctuation runs off a
// whitespace-free chunk, keeping punctuation between word runes
// attached.
func splitChunk(runes []rune) []string {
	first, last := -1, -1
	for i, r := range runes {
		if isWordRune(r) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return []string{string(runes)}
	}
	var out []string
	if first > 0 {
		out = append(out, string(runes[:first]))
	}
	out = append(out, string(runes[first:last+1]))
	if last+1 < len(runes) {
		out = append(out, string(runes[last+1:]))
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
