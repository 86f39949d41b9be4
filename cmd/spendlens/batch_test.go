package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/model"
)

func TestReadNames(t *testing.T) {
	t.Run("skips blanks and comments", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "names.txt")
		content := `AMZN Mktp US

# subscriptions
NETFLIX.COM
   Spotify Premium

# trailing comment`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		names, err := readNames(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"AMZN Mktp US", "NETFLIX.COM", "Spotify Premium"}, names)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte("\n\n# only comments\n"), 0600))

		names, err := readNames(path)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readNames(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}

func batchFixtures() []*model.CategorizationResult {
	return []*model.CategorizationResult{
		{
			CleanedName:  "Amazon",
			Category:     "Shopping",
			Subcategory:  "Online Shopping",
			LogoURL:      "https://cdn.example.com/amazon.png",
			ImageURL:     "https://cdn.example.com/amazon.png",
			ImageKeyword: "Amazon",
			Confidence:   model.ConfidenceHigh,
		},
		{
			CleanedName:  "Netflix",
			Category:     "Subscriptions",
			Subcategory:  "Video Streaming",
			LogoURL:      "https://cdn.example.com/netflix.png",
			ImageURL:     "https://cdn.example.com/netflix.png",
			ImageKeyword: "Netflix",
			Confidence:   model.ConfidenceHigh,
		},
	}
}

func TestWriteBatchResults(t *testing.T) {
	t.Run("output file always gets JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results.json")
		results := batchFixtures()

		require.NoError(t, writeBatchResults(results, path, false))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded []*model.CategorizationResult
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "Amazon", decoded[0].CleanedName)
		assert.Equal(t, "Subscriptions", decoded[1].Category)
	})

	t.Run("unwritable output path", func(t *testing.T) {
		err := writeBatchResults(batchFixtures(), filepath.Join(t.TempDir(), "missing", "results.json"), true)
		assert.Error(t, err)
	})
}

func TestRenderBatchResults(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderBatchResults(&buf, batchFixtures(), true))

		var decoded []*model.CategorizationResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "Netflix", decoded[1].CleanedName)
	})

	t.Run("styled", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderBatchResults(&buf, batchFixtures(), false))

		out := buf.String()
		assert.Contains(t, out, "Amazon")
		assert.Contains(t, out, "Netflix")
		assert.Contains(t, out, "Shopping")
	})
}
