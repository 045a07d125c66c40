// Package love derives the deterministic compatibility score for a pair of
// names and maps it to a message tier.
package love

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VersionTag prefixes every composite key. Changing it changes every score
// ever shown or shared.
const VersionTag = "love_test_v1"

// Separator joins the version tag and the two names in the composite key.
const Separator = "|"

// MaxScore is the highest score ComputeScore can return.
const MaxScore = 100

// Normalize trims outer whitespace and lowercases a name with full Unicode
// case mapping, so U+0130 becomes "i\u0307" and a word-final sigma becomes
// "ς". Inner whitespace and punctuation are kept.
func Normalize(name string) string {
	// A Caser keeps state between calls; build one per name.
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// CompositeKey builds the exact digest input for a subject/target pair.
// Subject always comes first; the pair is never sorted.
func CompositeKey(subject, target string) string {
	return VersionTag + Separator + Normalize(subject) + Separator + Normalize(target)
}

// ComputeScore returns the compatibility score in [0, MaxScore] for the pair.
func ComputeScore(subject, target string) int {
	sum := sha256.Sum256([]byte(CompositeKey(subject, target)))
	return reduce(sum[:4])
}

// reduce folds four big-endian bytes into a score. The fold is read as a
// signed 32-bit value, the way scores were first published; abs in 64 bits
// keeps MinInt32 non-negative.
func reduce(b []byte) int {
	n := int64(int32(binary.BigEndian.Uint32(b)))
	if n < 0 {
		n = -n
	}
	return int(n % (MaxScore + 1))
}

// CanTest reports whether both names are non-empty once trimmed.
func CanTest(subject, target string) bool {
	return strings.TrimSpace(subject) != "" && strings.TrimSpace(target) != ""
}
