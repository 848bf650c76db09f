package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Normalize creates a canonical path suitable for use as a map key or in
// equality comparisons. It performs the following steps:
// 1. Makes the path absolute.
// 2. Evaluates any symbolic links.
// 3. On case-insensitive OSes (macOS, Windows), converts the path to lowercase.
//
// If canonicalization fails (e.g. the path no longer exists), the absolute
// path is used as a stable fallback so that a missing entry still matches
// itself.
func Normalize(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	canonicalPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		canonicalPath = absPath
	}

	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return strings.ToLower(canonicalPath)
	}
	return canonicalPath
}

// Display renders a path for human output, substituting the user's home
// directory with '~'. The home directory itself renders as "~".
func Display(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}

	for _, candidate := range []string{path, Normalize(path)} {
		if rel, ok := stripHomePrefix(candidate, home); ok {
			if rel == "" {
				return "~"
			}
			return "~/" + rel
		}
	}

	return path
}

func stripHomePrefix(path, home string) (string, bool) {
	if path == home {
		return "", true
	}
	prefix := home + string(filepath.Separator)
	if strings.HasPrefix(path, prefix) {
		return filepath.ToSlash(strings.TrimPrefix(path, prefix)), true
	}
	return "", false
}
