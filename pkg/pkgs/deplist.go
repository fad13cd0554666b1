package pkgs

import "strings"

// partitionDeps splits a raw dependency line at the first '|'.
//
// The part before the separator (or the whole line if there is none) lists
// the ordinary dependencies; the part after lists order-only dependencies.
func partitionDeps(line string) (ordinary, orderOnly string) {
	before, after, _ := strings.Cut(line, "|")
	return before, after
}

// tokens whitespace-tokenizes a dependency list fragment, trimming the ends
// first. An empty or all-whitespace fragment yields a nil slice.
func tokens(s string) []string {
	return strings.Fields(strings.TrimSpace(s))
}
