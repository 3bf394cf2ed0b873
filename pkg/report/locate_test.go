package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionLocatorFind(t *testing.T) {
	loc := headingContains("h1, h2", "Battery usage")

	tests := []struct {
		name string
		html string
		// want is the text of the first cell of the found table, "" for none.
		want string
	}{
		{
			name: "table right after the heading",
			html: `<h2>Battery usage</h2><div>explanation</div><table><tr><td>usage</td></tr></table>`,
			want: "usage",
		},
		{
			name: "table before the heading is ignored",
			html: `<table><tr><td>before</td></tr></table><h2>Battery usage</h2><table><tr><td>usage</td></tr></table>`,
			want: "usage",
		},
		{
			name: "next section's table is not borrowed",
			html: `<h2>Battery usage</h2><p>No data</p><h2>Battery life estimates</h2><table><tr><td>estimates</td></tr></table>`,
		},
		{
			name: "other heading levels do not end the section",
			html: `<h2>Battery usage</h2><h3>Last week</h3><table><tr><td>usage</td></tr></table>`,
			want: "usage",
		},
		{
			name: "no matching heading",
			html: `<h2>Recent usage</h2><table><tr><td>recent</td></tr></table>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := loc.find(mustDoc(t, tt.html))
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, cellText(got.Find("td").First()))
		})
	}
}
