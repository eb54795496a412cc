package argv

import (
	"reflect"
	"testing"
)

func TestNewCopiesInput(t *testing.T) {
	src := []string{"-a", "1"}
	l := New(src)
	src[0] = "mutated"
	if got, _ := l.Get(0); got != "-a" {
		t.Errorf("Get(0) = %q after mutating input slice, want %q", got, "-a")
	}
}

func TestGet(t *testing.T) {
	l := New([]string{"-a", "1", "2"})

	tests := []struct {
		name   string
		index  int
		want   string
		wantOK bool
	}{
		{name: "first", index: 0, want: "-a", wantOK: true},
		{name: "last", index: 2, want: "2", wantOK: true},
		{name: "past end", index: 3, wantOK: false},
		{name: "negative", index: -1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.Get(tt.index)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Get(%d) = (%q, %v), want (%q, %v)", tt.index, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestHas(t *testing.T) {
	l := New([]string{"a", "b"})
	if !l.Has(0) || !l.Has(1) {
		t.Error("Has() = false for in-range index")
	}
	if l.Has(2) || l.Has(-1) {
		t.Error("Has() = true for out-of-range index")
	}
}

func TestLast(t *testing.T) {
	l := New([]string{"a", "b"})
	if got, ok := l.Last(); !ok || got != "b" {
		t.Errorf("Last() = (%q, %v), want (%q, true)", got, ok, "b")
	}
	if _, ok := NewEmpty().Last(); ok {
		t.Error("Last() on empty list reported a value")
	}
}

func TestContains(t *testing.T) {
	l := New([]string{"-a", "1", "2"})

	tests := []struct {
		name string
		vals []string
		want bool
	}{
		{name: "present", vals: []string{"-a"}, want: true},
		{name: "absent", vals: []string{"-z"}, want: false},
		{name: "any candidate", vals: []string{"-z", "2"}, want: true},
		{name: "no candidates", vals: nil, want: false},
		{name: "substring is not a match", vals: []string{"a"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Contains(tt.vals...); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.vals, got, tt.want)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		remove []string
		want   []string
	}{
		{
			name:   "single occurrence",
			tokens: []string{"-a", "1", "-a"},
			remove: []string{"1"},
			want:   []string{"-a", "-a"},
		},
		{
			name:   "first of duplicates",
			tokens: []string{"-a", "1", "-a"},
			remove: []string{"-a"},
			want:   []string{"1", "-a"},
		},
		{
			name:   "each candidate removes its own match",
			tokens: []string{"-a", "1", "-b", "2"},
			remove: []string{"-b", "-a"},
			want:   []string{"1", "2"},
		},
		{
			name:   "missing candidate is a no-op",
			tokens: []string{"-a"},
			remove: []string{"-z"},
			want:   []string{"-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.tokens)
			l.Remove(tt.remove...)
			if !reflect.DeepEqual(l.All(), tt.want) {
				t.Errorf("after Remove(%q): %q, want %q", tt.remove, l.All(), tt.want)
			}
		})
	}
}

func TestRemoveThenContains(t *testing.T) {
	l := New([]string{"-a", "1"})
	l.Remove("1")
	if l.Contains("1") {
		t.Error("Contains() = true after removing sole occurrence")
	}
}

func TestPop(t *testing.T) {
	l := New([]string{"a", "b", "c"})

	got, ok := l.Pop(1)
	if !ok || got != "b" {
		t.Fatalf("Pop(1) = (%q, %v), want (%q, true)", got, ok, "b")
	}
	if !reflect.DeepEqual(l.All(), []string{"a", "c"}) {
		t.Errorf("after Pop(1): %q, want [a c]", l.All())
	}

	if _, ok := l.Pop(5); ok {
		t.Error("Pop(5) out of range reported a value")
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d after out-of-range Pop, want 2", l.Len())
	}
}

func TestValueAfter(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		val    string
		want   string
		wantOK bool
	}{
		{name: "flag with value", tokens: []string{"-f", "out.txt"}, val: "-f", want: "out.txt", wantOK: true},
		{name: "flag is last token", tokens: []string{"-f"}, val: "-f", wantOK: false},
		{name: "flag absent", tokens: []string{"-g", "x"}, val: "-f", wantOK: false},
		{name: "first occurrence wins", tokens: []string{"-f", "a", "-f", "b"}, val: "-f", want: "a", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := New(tt.tokens).ValueAfter(tt.val)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ValueAfter(%q) = (%q, %v), want (%q, %v)", tt.val, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCopyIsIndependent(t *testing.T) {
	orig := New([]string{"a", "b"})
	cp := orig.Copy()

	cp.Remove("a")
	if orig.Len() != 2 {
		t.Errorf("original Len() = %d after mutating copy, want 2", orig.Len())
	}
	if cp.Len() != 1 {
		t.Errorf("copy Len() = %d, want 1", cp.Len())
	}

	if _, ok := cp.Pop(0); !ok {
		t.Fatal("Pop(0) on copy failed")
	}
	if !orig.Contains("b") {
		t.Error("original lost a token after mutating copy")
	}
}

func TestString(t *testing.T) {
	got := New([]string{"-a", "1"}).String()
	want := `<args ["-a" "1"]>`
	if got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestFlags(t *testing.T) {
	l := New([]string{"-a", "b", "-c"})
	if got := l.Flags().All(); !reflect.DeepEqual(got, []string{"-a", "-c"}) {
		t.Errorf("Flags() = %q, want [-a -c]", got)
	}
}

func TestNotFlags(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{name: "drops flags", tokens: []string{"-a", "b", "-c"}, want: []string{"b"}},
		// Substring exclusion: any token containing "-" is dropped, not
		// just flag-shaped tokens.
		{name: "drops embedded dash", tokens: []string{"a-b", "c"}, want: []string{"c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.tokens).NotFlags().All(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NotFlags() = %q, want %q", got, tt.want)
			}
		})
	}
}
