package namer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum     = regexp.MustCompile(`[^A-Za-z0-9]+`)
	bareIdent    = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	cleanSegment = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
)

type nsPath struct {
	segments []string
	method   string
}

// Normalizer converts raw schema names, property keys, and operation
// identifiers into target identifiers. Every transform is memoized, so the
// same raw input always yields the identical cached result. A Normalizer is
// owned by one generation run; it is not safe for concurrent use.
type Normalizer struct {
	typeIDs   map[string]string
	propIDs   map[string]string
	methodIDs map[string]string
	nsPaths   map[string]nsPath
}

// New returns a Normalizer with empty caches.
func New() *Normalizer {
	return &Normalizer{
		typeIDs:   map[string]string{},
		propIDs:   map[string]string{},
		methodIDs: map[string]string{},
		nsPaths:   map[string]nsPath{},
	}
}

// TypeIdentifier converts a raw schema name into a type identifier: `-` and
// `_` are stripped, the letter after each stripped separator and the first
// character are upper-cased (digits pass through unchanged), and a leading
// digit gets an underscore prefix.
func (n *Normalizer) TypeIdentifier(raw string) string {
	if v, ok := n.typeIDs[raw]; ok {
		return v
	}
	s := removeAccents(raw)
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	out := b.String()
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	n.typeIDs[raw] = out
	return out
}

// PropertyIdentifier returns the raw property name unchanged when it is a
// valid bare identifier, otherwise as a quoted string literal. A pre-quoted
// input is unquoted before testing.
func (n *Normalizer) PropertyIdentifier(raw string) string {
	if v, ok := n.propIDs[raw]; ok {
		return v
	}
	s := raw
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			s = s[1 : len(s)-1]
		}
	}
	out := s
	if !bareIdent.MatchString(s) {
		out = "'" + s + "'"
	}
	n.propIDs[raw] = out
	return out
}

// MethodIdentifier converts an operation identifier into a camelCase method
// name: non-alphanumeric runs become word boundaries, the letter after each
// boundary is upper-cased, and the first character is lower-cased. Interior
// casing of each word is preserved.
func (n *Normalizer) MethodIdentifier(raw string) string {
	if v, ok := n.methodIDs[raw]; ok {
		return v
	}
	s := removeAccents(raw)
	parts := nonAlnum.Split(s, -1)
	var b strings.Builder
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		if first {
			r[0] = unicode.ToLower(r[0])
			first = false
		} else {
			r[0] = unicode.ToUpper(r[0])
		}
		b.WriteString(string(r))
	}
	out := b.String()
	n.methodIDs[raw] = out
	return out
}

// NamespacePath splits an operation identifier into namespace segments and a
// leaf method name. The identifier is split on "/" when present, else on
// ".". Leading segments are consumed as namespace segments while they match
// the clean shape ^[A-Za-z][A-Za-z0-9]*$; the remainder is normalized via
// MethodIdentifier. An identifier whose first segment is not clean becomes a
// method name in its entirety, with no namespace.
func (n *Normalizer) NamespacePath(raw string) ([]string, string) {
	if v, ok := n.nsPaths[raw]; ok {
		return v.segments, v.method
	}
	sep := ""
	switch {
	case strings.Contains(raw, "/"):
		sep = "/"
	case strings.Contains(raw, "."):
		sep = "."
	}
	var segments []string
	rest := raw
	if sep != "" {
		for {
			first, tail, found := strings.Cut(rest, sep)
			if !found || !cleanSegment.MatchString(first) {
				break
			}
			segments = append(segments, first)
			rest = tail
		}
	}
	method := n.MethodIdentifier(rest)
	n.nsPaths[raw] = nsPath{segments: segments, method: method}
	return segments, method
}

// removeAccents folds accented characters to their base forms.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}
