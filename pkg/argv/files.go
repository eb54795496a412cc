package argv

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Files expands every token as a shell-style path pattern and returns the
// matches that exist on the filesystem, flattened in token order. Tokens
// that match nothing contribute nothing; malformed patterns and I/O errors
// degrade to no matches.
func (l *List) Files() []string {
	paths := []string{}
	for _, tok := range l.tokens {
		for _, p := range expandPath(tok) {
			if pathExists(p) {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// FilesAbs is Files with every match resolved to an absolute path.
// Matches that cannot be resolved are skipped.
func (l *List) FilesAbs() []string {
	paths := []string{}
	for _, p := range l.Files() {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		paths = append(paths, abs)
	}
	return paths
}

// NotFiles returns the tokens that expand to no filesystem matches and do
// not exist as a literal path.
func (l *List) NotFiles() *List {
	out := NewEmpty()
	for _, tok := range l.tokens {
		if len(expandPath(tok)) == 0 && !pathExists(tok) {
			out.tokens = append(out.tokens, tok)
		}
	}
	return out
}

// expandPath expands a home-relative prefix, environment variables, and
// glob metacharacters in the given token. A token naming a directory
// expands to every file under it, recursively. Expansion failures yield an
// empty result.
func expandPath(token string) []string {
	path := expandHome(token)
	path = os.ExpandEnv(path)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filesUnder(path)
	}

	matches, err := doublestar.FilepathGlob(path)
	if err != nil {
		return nil
	}
	return matches
}

// expandHome rewrites a leading "~" to the current user's home directory.
// When the home directory cannot be determined the token is left as-is.
func expandHome(token string) string {
	if token != "~" && !strings.HasPrefix(token, "~/") {
		return token
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return token
	}
	if token == "~" {
		return home
	}
	return filepath.Join(home, token[2:])
}

func filesUnder(dir string) []string {
	var paths []string
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			paths = append(paths, p)
		}
		return nil
	})
	return paths
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
