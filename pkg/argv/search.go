package argv

import "strings"

// First returns the index of the first token exactly equal to a candidate.
// Candidates are tried in argument order: the first candidate with any
// match wins, even when a later candidate occurs earlier in the list.
func (l *List) First(vals ...string) (int, bool) {
	for _, v := range vals {
		for i, tok := range l.tokens {
			if tok == v {
				return i, true
			}
		}
	}
	return 0, false
}

// FirstWith returns the index of the first token containing a candidate
// substring. Candidate order wins over index order, as with First.
func (l *List) FirstWith(substrs ...string) (int, bool) {
	for _, s := range substrs {
		for i, tok := range l.tokens {
			if strings.Contains(tok, s) {
				return i, true
			}
		}
	}
	return 0, false
}

// FirstWithout returns the index of the first token that does not contain a
// candidate substring. Candidate order wins over index order.
func (l *List) FirstWithout(substrs ...string) (int, bool) {
	for _, s := range substrs {
		for i, tok := range l.tokens {
			if !strings.Contains(tok, s) {
				return i, true
			}
		}
	}
	return 0, false
}

// GetWith returns the first token containing a candidate substring, or
// ok=false when none matches.
func (l *List) GetWith(substrs ...string) (string, bool) {
	i, ok := l.FirstWith(substrs...)
	if !ok {
		return "", false
	}
	return l.tokens[i], true
}

// AnyContain reports whether a candidate substring occurs in a stored token
// at index greater than zero. A match at index 0 reports false; callers
// pair this with a known token in the leading position.
func (l *List) AnyContain(substrs ...string) bool {
	i, ok := l.FirstWith(substrs...)
	return ok && i > 0
}

// ContainsAt reports whether the token at index i contains the first
// candidate. Additional candidates are accepted but not consulted, and an
// out-of-range index reports false.
func (l *List) ContainsAt(i int, vals ...string) bool {
	tok, ok := l.Get(i)
	if !ok || len(vals) == 0 {
		return false
	}
	return strings.Contains(tok, vals[0])
}

// StartingWith returns the tokens that begin with any candidate prefix,
// preserving order.
func (l *List) StartingWith(prefixes ...string) *List {
	out := NewEmpty()
	for _, tok := range l.tokens {
		if hasAnyPrefix(tok, prefixes) {
			out.tokens = append(out.tokens, tok)
		}
	}
	return out
}

// AllWith returns the tokens containing any candidate substring, preserving
// order.
func (l *List) AllWith(substrs ...string) *List {
	out := NewEmpty()
	for _, tok := range l.tokens {
		for _, s := range substrs {
			if strings.Contains(tok, s) {
				out.tokens = append(out.tokens, tok)
				break
			}
		}
	}
	return out
}

// AllWithout returns the tokens missing at least one candidate substring,
// preserving order. With a single candidate this is plain "does not
// contain"; with several, a token is excluded only when it contains every
// candidate.
func (l *List) AllWithout(substrs ...string) *List {
	out := NewEmpty()
	for _, tok := range l.tokens {
		for _, s := range substrs {
			if !strings.Contains(tok, s) {
				out.tokens = append(out.tokens, tok)
				break
			}
		}
	}
	return out
}
