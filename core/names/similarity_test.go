package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_ExactMatch(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
	}{
		{name: "plain", first: "John", last: "Smith"},
		{name: "mixed case", first: "john", last: "SMITH"},
		{name: "punctuation", first: "Mary-Jane", last: "O'Callahan"},
		{name: "diacritics", first: "José", last: "Muñoz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1.0, Similarity(tt.first, tt.last, tt.first, tt.last))
		})
	}
}

func TestSimilarity_NormalizationEquivalence(t *testing.T) {
	// Apostrophes, case, and diacritics must not affect the score.
	assert.Equal(t, 1.0, Similarity("jose", "ocallahan", "José", "O'Callahan"))
	assert.Equal(t, 1.0, Similarity(" John ", "Smith", "john", "smith"))
}

func TestSimilarity_NicknameSymmetry(t *testing.T) {
	// Nickname matches are full matches in both directions.
	assert.Equal(t, 1.0, Similarity("Bob", "Smith", "Robert", "Smith"))
	assert.Equal(t, 1.0, Similarity("Robert", "Smith", "Bob", "Smith"))

	// Two nicknames of a shared canonical form are also equivalent.
	assert.Equal(t, 1.0, Similarity("Bobby", "Smith", "Rob", "Smith"))
}

func TestSimilarity_SwappedOrder(t *testing.T) {
	straight := Similarity("Bob", "Smith", "Bob", "Smith")
	swapped := Similarity("Smith", "Bob", "Bob", "Smith")
	assert.Equal(t, straight, swapped)
}

func TestSimilarity_Bounds(t *testing.T) {
	tests := []struct {
		name          string
		qFirst, qLast string
		cFirst, cLast string
	}{
		{name: "unrelated", qFirst: "John", qLast: "Smith", cFirst: "Xavier", cLast: "Quintero"},
		{name: "typo", qFirst: "Jhon", qLast: "Smith", cFirst: "John", cLast: "Smith"},
		{name: "empty query", qFirst: "", qLast: "", cFirst: "John", cLast: "Smith"},
		{name: "all empty", qFirst: "", qLast: "", cFirst: "", cLast: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Similarity(tt.qFirst, tt.qLast, tt.cFirst, tt.cLast)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestSimilarity_TypoScoresHigh(t *testing.T) {
	// One transposed letter in a five-letter last name should still rank
	// well above the unrelated-name floor.
	score := Similarity("John", "Simth", "John", "Smith")
	assert.Greater(t, score, 0.75)
	assert.Less(t, score, 1.0)
}

func TestSimilarity_NicknameBeatsEditDistance(t *testing.T) {
	// "bob" vs "robert" is a terrible edit-distance pair; the nickname
	// table must rescue it before the fallback runs.
	nickname := Similarity("Bob", "Jones", "Robert", "Jones")
	unrelated := Similarity("Bob", "Jones", "Walter", "Jones")
	assert.Equal(t, 1.0, nickname)
	assert.Less(t, unrelated, nickname)
}

func TestEditSimilarity_EmptyStrings(t *testing.T) {
	assert.Equal(t, 1.0, editSimilarity("", ""))
	assert.Equal(t, 0.0, editSimilarity("", "abc"))
}
