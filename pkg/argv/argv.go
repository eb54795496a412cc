package argv

import (
	"fmt"
	"strings"
)

// List is an ordered, mutable sequence of command-line tokens. The zero
// value is an empty list ready for use.
type List struct {
	tokens []string
}

// New returns a List holding a copy of the given tokens. Pass os.Args[1:]
// from the entry point; the package never reads os.Args itself.
func New(tokens []string) *List {
	l := &List{tokens: make([]string, len(tokens))}
	copy(l.tokens, tokens)
	return l
}

// NewEmpty returns an empty List.
func NewEmpty() *List {
	return &List{}
}

// Len returns the number of stored tokens.
func (l *List) Len() int {
	return len(l.tokens)
}

// String returns a diagnostic representation of the list.
func (l *List) String() string {
	return fmt.Sprintf("<args %q>", l.tokens)
}

// All returns the backing token slice in stored order. The slice is shared
// with the List; treat it as read-only.
func (l *List) All() []string {
	return l.tokens
}

// Get returns the token at index i, or ok=false when i is out of range.
func (l *List) Get(i int) (string, bool) {
	if i < 0 || i >= len(l.tokens) {
		return "", false
	}
	return l.tokens[i], true
}

// Has reports whether a token exists at index i.
func (l *List) Has(i int) bool {
	return i >= 0 && i < len(l.tokens)
}

// Last returns the final token, or ok=false for an empty list.
func (l *List) Last() (string, bool) {
	if len(l.tokens) == 0 {
		return "", false
	}
	return l.tokens[len(l.tokens)-1], true
}

// Contains reports whether any stored token exactly equals one of the
// given candidates.
func (l *List) Contains(vals ...string) bool {
	_, ok := l.First(vals...)
	return ok
}

// Remove deletes, for each candidate in order, the first stored token
// exactly equal to that candidate. Candidates with no match are ignored.
func (l *List) Remove(vals ...string) {
	for _, v := range vals {
		if i, ok := l.First(v); ok {
			l.tokens = append(l.tokens[:i], l.tokens[i+1:]...)
		}
	}
}

// Pop removes and returns the token at index i, or ok=false when i is out
// of range (the list is left unchanged).
func (l *List) Pop(i int) (string, bool) {
	if i < 0 || i >= len(l.tokens) {
		return "", false
	}
	v := l.tokens[i]
	l.tokens = append(l.tokens[:i], l.tokens[i+1:]...)
	return v, true
}

// ValueAfter returns the token immediately following the first token
// exactly equal to val. ok is false when val is absent or is the last
// token.
func (l *List) ValueAfter(val string) (string, bool) {
	i, ok := l.First(val)
	if !ok || i+1 >= len(l.tokens) {
		return "", false
	}
	return l.tokens[i+1], true
}

// Copy returns a new List with an independent copy of the current tokens,
// for temporary manipulation.
func (l *List) Copy() *List {
	return New(l.tokens)
}

// Flags returns the tokens that begin with "-".
func (l *List) Flags() *List {
	return l.StartingWith("-")
}

// NotFlags returns the tokens that do not contain "-" anywhere. Note that
// this is substring exclusion, not prefix exclusion: "a-b" is excluded even
// though it is not a flag.
func (l *List) NotFlags() *List {
	return l.AllWithout("-")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
