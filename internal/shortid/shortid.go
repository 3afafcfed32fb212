// Package shortid computes Wwise short IDs, the values found in Wwise_IDs.h.
//
// A short ID is the 32-bit FNV-1 hash of the object name with ASCII letters
// lowercased. Wwise writes the name into the header upper-cased and with
// spaces turned into underscores, so the original spelling has to be guessed
// back from the identifier when verifying a header.
package shortid

import (
	"hash/fnv"
	"strings"
)

// Hash returns the short ID of name.
func Hash(name string) uint32 {
	h := fnv.New32()
	_, _ = h.Write([]byte(lowerASCII(name)))
	return h.Sum32()
}

// Identifier converts an object name to the form used in Wwise_IDs.h.
func Identifier(name string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

// MaxSeparators bounds the underscores Candidates expands. Identifiers with
// more underscores only get the all-underscore and all-space spellings.
const MaxSeparators = 10

// Candidates lists the object names ident may have been generated from: every
// combination of its underscores read as underscores or as spaces, starting
// with ident itself and then the fully spaced spelling.
func Candidates(ident string) []string {
	seps := make([]int, 0, strings.Count(ident, "_"))
	for i := 0; i < len(ident); i++ {
		if ident[i] == '_' {
			seps = append(seps, i)
		}
	}
	if len(seps) == 0 {
		return []string{ident}
	}
	spaced := strings.ReplaceAll(ident, "_", " ")
	out := []string{ident, spaced}
	if len(seps) > MaxSeparators {
		return out
	}

	all := 1<<len(seps) - 1
	b := []byte(ident)
	for mask := 1; mask < all; mask++ {
		for i, pos := range seps {
			if mask&(1<<i) != 0 {
				b[pos] = ' '
			} else {
				b[pos] = '_'
			}
		}
		out = append(out, string(b))
	}
	return out
}

// Resolve returns the first candidate name of ident whose short ID is id.
func Resolve(ident string, id uint32) (string, bool) {
	for _, name := range Candidates(ident) {
		if Hash(name) == id {
			return name, true
		}
	}
	return "", false
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
