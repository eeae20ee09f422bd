package conv

import (
	"testing"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Harga paket Netflix",
			expected: "Harga paket Netflix\n",
		},
		{
			name:     "bold text",
			input:    "**Netflix Premium**",
			expected: "<strong>Netflix Premium</strong>\n",
		},
		{
			name:     "italic text",
			input:    "*garansi penuh*",
			expected: "<em>garansi penuh</em>\n",
		},
		{
			name:     "inline code",
			input:    "`/ajar`",
			expected: "<code>/ajar</code>\n",
		},
		{
			name:     "link",
			input:    "[bayar di sini](https://example.com)",
			expected: "<a href=\"https://example.com\">bayar di sini</a>\n",
		},
		{
			name:     "header tags stripped",
			input:    "# Info",
			expected: "Info\n",
		},
		{
			name:     "script tags sanitized",
			input:    "<script>alert('xss')</script>",
			expected: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
