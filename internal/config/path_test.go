package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("SPENDLENS_TEST_DIR", "/var/data")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "absolute unchanged", path: "/tmp/spendlens.db", want: "/tmp/spendlens.db"},
		{name: "bare tilde", path: "~", want: home},
		{name: "tilde prefix", path: "~/data/spendlens.db", want: filepath.Join(home, "data", "spendlens.db")},
		{name: "env var", path: "$SPENDLENS_TEST_DIR/spendlens.db", want: "/var/data/spendlens.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}
