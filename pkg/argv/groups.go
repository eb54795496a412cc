package argv

import (
	"fmt"
	"strings"
)

// UngroupedKey is the sentinel group key for tokens appearing before any
// flag token.
const UngroupedKey = "_"

// Groups is an insertion-ordered mapping from a flag token (or UngroupedKey)
// to the non-flag tokens attached to it.
type Groups struct {
	keys   []string
	groups map[string]*List
}

// Grouped splits the list into flag groups. A token beginning with "-"
// opens a group; the non-flag tokens that follow attach to the most
// recently opened group until the next flag token. Tokens before any flag
// attach to UngroupedKey, which is always present even when empty. A flag
// seen again reopens its existing group, so later values append to it.
//
// The mapping is built fresh on every call and reflects the list's current
// contents.
func (l *List) Grouped() *Groups {
	g := &Groups{
		keys:   []string{UngroupedKey},
		groups: map[string]*List{UngroupedKey: NewEmpty()},
	}

	current := ""
	for _, tok := range l.tokens {
		if strings.HasPrefix(tok, "-") {
			current = tok
			if _, seen := g.groups[tok]; !seen {
				g.keys = append(g.keys, tok)
				g.groups[tok] = NewEmpty()
			}
			continue
		}
		key := current
		if key == "" {
			key = UngroupedKey
		}
		lst := g.groups[key]
		lst.tokens = append(lst.tokens, tok)
	}

	return g
}

// Len returns the number of groups, including the ungrouped sentinel.
func (g *Groups) Len() int {
	return len(g.keys)
}

// Keys returns the group keys in first-seen order, UngroupedKey first.
func (g *Groups) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the group for the given flag token, or ok=false when the flag
// never appeared.
func (g *Groups) Get(flag string) (*List, bool) {
	lst, ok := g.groups[flag]
	return lst, ok
}

// Ungrouped returns the tokens that preceded every flag token.
func (g *Groups) Ungrouped() *List {
	return g.groups[UngroupedKey]
}

// String returns a diagnostic representation of the mapping in key order.
func (g *Groups) String() string {
	var b strings.Builder
	b.WriteString("<groups")
	for _, k := range g.keys {
		fmt.Fprintf(&b, " %s=%q", k, g.groups[k].tokens)
	}
	b.WriteString(">")
	return b.String()
}
