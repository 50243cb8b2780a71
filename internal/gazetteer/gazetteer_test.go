package gazetteer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestExactNeighborhood(t *testing.T) {
	assert.Equal(t, []string{"Gachibowli"}, Suggest("gach", nil))
}

func TestSuggestEmptyQuery(t *testing.T) {
	assert.Nil(t, Suggest("", nil))
	assert.Nil(t, Suggest("   ", nil))
}

func TestSuggestCap(t *testing.T) {
	// "a" matches far more than eight areas
	out := Suggest("a", nil)
	assert.Len(t, out, MaxSuggestions)
}

func TestSuggestExcludesSelected(t *testing.T) {
	out := Suggest("gach", []string{"Gachibowli"})
	assert.Empty(t, out)

	out = Suggest("kon", []string{"Kondapur"})
	for _, area := range out {
		assert.NotEqual(t, "Kondapur", area)
	}
}

func TestSuggestCaseInsensitive(t *testing.T) {
	assert.Equal(t, Suggest("MADHAPUR", nil), Suggest("madhapur", nil))
}

func TestTagSetUniqueness(t *testing.T) {
	var tags TagSet
	require.True(t, tags.Select("Gachibowli"))
	assert.False(t, tags.Select("Gachibowli"))
	assert.False(t, tags.Select("gachibowli"))
	assert.Equal(t, []string{"Gachibowli"}, tags.Tags())

	require.True(t, tags.Select("Kondapur"))
	assert.Equal(t, []string{"Gachibowli", "Kondapur"}, tags.Tags())

	assert.True(t, tags.Remove("gachibowli"))
	assert.False(t, tags.Remove("Gachibowli"))
	assert.Equal(t, []string{"Kondapur"}, tags.Tags())
}

func TestGazetteerHasNoBlankEntries(t *testing.T) {
	require.NotEmpty(t, Areas)
	for _, area := range Areas {
		assert.NotEmpty(t, strings.TrimSpace(area))
	}
}
