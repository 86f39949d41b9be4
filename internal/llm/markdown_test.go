package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare JSON untouched",
			input: `{"cleanedName":"Amazon"}`,
			want:  `{"cleanedName":"Amazon"}`,
		},
		{
			name:  "fenced with language tag",
			input: "```json\n{\"cleanedName\":\"Amazon\"}\n```",
			want:  `{"cleanedName":"Amazon"}`,
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"cleanedName\":\"Amazon\"}\n```",
			want:  `{"cleanedName":"Amazon"}`,
		},
		{
			name:  "single line fence",
			input: "```{\"a\":1}```",
			want:  `{"a":1}`,
		},
		{
			name:  "surrounding whitespace",
			input: "\n\n  ```json\n{\"a\":1}\n```  \n",
			want:  `{"a":1}`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMarkdownWrapper(tt.input))
		})
	}
}
