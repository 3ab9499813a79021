// Package classpath assembles the ordered search path handed to the
// enhancement engine.
package classpath

import "strings"

// DefaultSeparator is the entry separator expected by the engine.
const DefaultSeparator = ";"

// Input holds everything that goes into a classpath.
type Input struct {
	// Artifacts are absolute artifact paths in dependency order.
	Artifacts []string

	// ClassSource is the compiled class directory.
	ClassSource string

	// Extra is an optional classpath appended verbatim after ClassSource.
	Extra string

	// Separator defaults to DefaultSeparator.
	Separator string
}

// Assemble builds the classpath string:
//
//	<artifact>;<artifact>;...;<classSource>[;<extra>]
//
// No two separators are ever adjacent. The result depends only on in, so
// equal inputs always produce byte-identical strings.
func Assemble(in Input) string {
	sep := in.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	var b strings.Builder
	for _, a := range in.Artifacts {
		for strings.HasSuffix(a, sep) {
			a = strings.TrimSuffix(a, sep)
		}
		if a == "" {
			continue
		}
		b.WriteString(a)
		b.WriteString(sep)
	}
	b.WriteString(in.ClassSource)

	extra := in.Extra
	for strings.HasPrefix(extra, sep) {
		extra = strings.TrimPrefix(extra, sep)
	}
	if extra != "" {
		if !strings.HasSuffix(b.String(), sep) {
			b.WriteString(sep)
		}
		b.WriteString(extra)
	}

	return b.String()
}

// Split returns the non-empty entries of cp.
func Split(cp, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	parts := strings.Split(cp, sep)
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			entries = append(entries, p)
		}
	}
	return entries
}
