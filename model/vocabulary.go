package model

import (
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// vocabularyBase is the URI prefix of all GEDCOM X vocabulary terms.
const vocabularyBase = "http://gedcomx.org/"

// vocabulary maps the known URIs of an open-world enumeration to their short
// terms, e.g., "http://gedcomx.org/Birth" to "Birth". Values not in the
// vocabulary are custom URIs and remain valid.
type vocabulary[T ~string] map[T]string

// newVocabulary creates a vocabulary of the known URIs.
func newVocabulary[T ~string](known ...T) vocabulary[T] {
	v := make(vocabulary[T], len(known))
	for _, uri := range known {
		v[uri] = strings.TrimPrefix(string(uri), vocabularyBase)
	}
	return v
}

// known returns true if uri is in v.
func (v vocabulary[T]) known(uri T) bool {
	_, ok := v[uri]
	return ok
}

// term returns the short term for uri, or uri itself if it is not in v.
func (v vocabulary[T]) term(uri T) string {
	if term, ok := v[uri]; ok {
		return term
	}
	return string(uri)
}

// parse returns the URI for str, which may be a URI or the short term of a
// known URI. Any other string is returned as a custom URI.
func (v vocabulary[T]) parse(str string) T {
	if uri := T(vocabularyBase + str); v.known(uri) {
		return uri
	}
	return T(str)
}

// sorted returns the known URIs of v in lexical order.
func (v vocabulary[T]) sorted() []T {
	uris := maps.Keys(v)
	slices.Sort(uris)
	return uris
}
