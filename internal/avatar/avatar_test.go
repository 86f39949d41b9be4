package avatar

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLIsDeterministic(t *testing.T) {
	g := NewGenerator()

	first := g.URL("Amazon", "Shopping")
	second := g.URL("Amazon", "Shopping")
	assert.Equal(t, first, second)

	fresh := NewGenerator()
	assert.Equal(t, first, fresh.URL("Amazon", "Shopping"))
}

func TestURLShape(t *testing.T) {
	g := NewGenerator()

	raw := g.URL("Amazon", "Shopping")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "https", parsed.Scheme)
	assert.Equal(t, "api.dicebear.com", parsed.Host)
	assert.Equal(t, "amazon|Shopping", parsed.Query().Get("seed"))
	assert.Equal(t, "256", parsed.Query().Get("size"))
	assert.Equal(t, "6366f1", parsed.Query().Get("backgroundColor"))
	assert.Equal(t, "gradientLinear", parsed.Query().Get("backgroundType"))
}

func TestURLNormalizesNameCase(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, g.URL("  Amazon ", "Shopping"), g.URL("amazon", "Shopping"))
}

func TestDifferentInputsDiffer(t *testing.T) {
	g := NewGenerator()
	assert.NotEqual(t, g.URL("Amazon", "Shopping"), g.URL("Amazon", "Travel"))
	assert.NotEqual(t, g.URL("Amazon", "Shopping"), g.URL("Netflix", "Shopping"))
}

func TestCacheEviction(t *testing.T) {
	g := newGenerator(3)

	for i := 0; i < 10; i++ {
		g.URL(fmt.Sprintf("merchant-%d", i), "Shopping")
	}

	assert.Equal(t, 3, g.size())
	// Evicted entries still regenerate to the same URL.
	assert.Equal(t, g.URL("merchant-0", "Shopping"), g.URL("merchant-0", "Shopping"))
}

func TestEmptyInputsStillProduceURL(t *testing.T) {
	g := NewGenerator()
	raw := g.URL("", "")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.NotEmpty(t, parsed.Query().Get("seed"))
}
