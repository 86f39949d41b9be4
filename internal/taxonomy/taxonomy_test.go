package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCategoryHasSubcategories(t *testing.T) {
	for _, cat := range Categories() {
		subs := Subcategories(cat)
		require.NotEmpty(t, subs, "category %q has no subcategories", cat)
		for _, sub := range subs {
			assert.True(t, IsSubcategory(cat, sub))
		}
	}
}

func TestSubcategoryBelongsToExactlyOneList(t *testing.T) {
	// Names like "Health Insurance" legitimately repeat across categories;
	// membership is always checked per category, never globally.
	assert.True(t, IsSubcategory("Insurance", "Health Insurance"))
	assert.True(t, IsSubcategory("Health & Fitness", "Health Insurance"))
	assert.False(t, IsSubcategory("Pets", "Health Insurance"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "exact member kept", input: "Shopping", want: "Shopping"},
		{name: "unknown falls back to catch-all", input: "NotARealCategory", want: CatchAll},
		{name: "case mismatch is not a member", input: "shopping", want: CatchAll},
		{name: "empty string", input: "", want: CatchAll},
		{name: "catch-all maps to itself", input: CatchAll, want: CatchAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestCatchAllHasSingleEntry(t *testing.T) {
	subs := Subcategories(CatchAll)
	require.Len(t, subs, 1)
	assert.Equal(t, "Other", subs[0])
}

func TestSearchCategory(t *testing.T) {
	tag, ok := SearchCategory("Food & Dining")
	require.True(t, ok)
	assert.Equal(t, "food", tag)

	_, ok = SearchCategory("NotARealCategory")
	assert.False(t, ok)
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0] = "mutated"
	assert.Equal(t, "Housing", Categories()[0])
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory("Travel"))
	assert.False(t, IsCategory("travel"))
	assert.False(t, IsCategory(""))
}
