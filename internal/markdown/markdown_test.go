package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			"heading and emphasis",
			"# Title\n\nSome **bold** and *italic* text.",
			[]string{"<h1", "Title</h1>", "<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			"gfm table",
			"| A | B |\n|---|---|\n| 1 | 2 |",
			[]string{"<table>", "<td>1</td>"},
		},
		{
			"fenced code block highlighted",
			"```go\nfmt.Println(\"hi\")\n```",
			[]string{"<pre", "Println"},
		},
		{
			"raw html passes through",
			`<div class="custom">kept</div>`,
			[]string{`<div class="custom">kept</div>`},
		},
		{
			"autolink",
			"Visit https://example.com today",
			[]string{`<a href="https://example.com"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestToHTMLEmpty(t *testing.T) {
	got, err := ToHTML("")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("empty source produced %q", got)
	}
}
