package search

import "path"

// ignoredNames are directory and file names pruned entirely from the
// walk: VCS metadata, build caches, virtual environments and OS
// litter. A matching directory is never descended into.
var ignoredNames = map[string]struct{}{
	".git":                      {},
	".svn":                      {},
	".hg":                       {},
	"__pycache__":               {},
	".pytest_cache":             {},
	".mypy_cache":               {},
	".tox":                      {},
	"venv":                      {},
	".venv":                     {},
	"node_modules":              {},
	".idea":                     {},
	".vscode":                   {},
	".DS_Store":                 {},
	"__MACOSX":                  {},
	".Trashes":                  {},
	"._.Trashes":                {},
	"System Volume Information": {},
	"$RECYCLE.BIN":              {},
}

// isIgnoredName reports whether a base name belongs to the ignore set.
func isIgnoredName(name string) bool {
	_, ok := ignoredNames[name]
	return ok
}

// matchesGlob matches a file's base name against a shell-style
// wildcard pattern. An empty pattern matches everything. A malformed
// pattern matches nothing; Start validates patterns up front, so this
// only guards the worker.
func matchesGlob(pattern, name string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}
	ok, err := path.Match(pattern, name)
	return err == nil && ok
}
