// Package scanner walks a source tree and collects raw-SQL policy
// violations. The walk is fully sequential: files are visited in lexical
// directory order so that repeated runs over the same tree produce
// byte-identical reports.
package scanner

import (
	"path/filepath"
	"strings"
)

// skipDirs are directory names that are never scanned, wherever they
// appear in a path.
var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
}

// ShouldScan reports whether a file takes part in the scan. The decision
// looks only at the path, never at file contents:
//
//   - only .go files, excluding _test.go files
//   - nothing under .git, vendor, or node_modules
//   - nothing on a path containing both a docs and an httpserver component
//     (generated HTTP server docs embed SQL examples)
func ShouldScan(path string) bool {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".go") {
		return false
	}
	if strings.HasSuffix(base, "_test.go") {
		return false
	}

	var hasDocs, hasHTTPServer bool
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if skipDirs[part] {
			return false
		}
		switch part {
		case "docs":
			hasDocs = true
		case "httpserver":
			hasHTTPServer = true
		}
	}
	return !(hasDocs && hasHTTPServer)
}
