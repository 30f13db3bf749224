// Package embedding produces a small deterministic text embedding used to
// order free-text search results by similarity on postgres.
package embedding

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// Generate returns a 3-dimensional embedding of the text: total length,
// vowel count and consonant count. Deterministic, so identical inputs always
// land at the same point.
func Generate(text string) pgvector.Vector {
	text = strings.ToLower(text)
	var vowels, consonants float32
	for _, r := range text {
		switch {
		case strings.ContainsRune("aeiou", r):
			vowels++
		case r >= 'a' && r <= 'z':
			consonants++
		}
	}
	return pgvector.NewVector([]float32{float32(len(text)), vowels, consonants})
}
