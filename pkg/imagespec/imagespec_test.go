package imagespec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorline/ecrmirror/pkg/errors"
)

func TestParse(t *testing.T) {
	entries, err := Parse("elastic/elastic-agent=8.10.0 myapp/worker=1.2.0,1.3.0")
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Image: "elastic/elastic-agent", Tags: []string{"8.10.0"}},
		{Image: "myapp/worker", Tags: []string{"1.2.0", "1.3.0"}},
	}, entries)
}

func TestParseSingleEntry(t *testing.T) {
	entries, err := Parse("library/nginx=1.25")
	require.NoError(t, err)
	require.Equal(t, []Entry{{Image: "library/nginx", Tags: []string{"1.25"}}}, entries)
}

func TestParseExtraWhitespace(t *testing.T) {
	entries, err := Parse("  a/b=1 \t c/d=2,3\n")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "a/b", entries[0].Image)
	require.Equal(t, []string{"2", "3"}, entries[1].Tags)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "empty spec", spec: ""},
		{name: "whitespace only", spec: "   "},
		{name: "missing equals", spec: "myapp/worker"},
		{name: "two equals", spec: "myapp/worker=1.0=2.0"},
		{name: "empty image", spec: "=1.0"},
		{name: "empty tag list", spec: "myapp/worker="},
		{name: "trailing comma", spec: "myapp/worker=1.0,"},
		{name: "empty tag in list", spec: "myapp/worker=1.0,,2.0"},
		{name: "duplicate image", spec: "a/b=1 a/b=2"},
		{name: "one good one bad", spec: "a/b=1 c/d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec)
			require.Error(t, err)
			require.True(t, errors.IsParse(err), "expected a parse error, got %v", err)
		})
	}
}

// Entries built from well-formed (image, tags) pairs must round-trip
// through the serialized form unchanged.
func TestParseRoundTrip(t *testing.T) {
	want := []Entry{
		{Image: "a/b", Tags: []string{"1.0"}},
		{Image: "c/d", Tags: []string{"2.0", "2.1", "latest"}},
		{Image: "e", Tags: []string{"3"}},
	}

	var fields []string
	for _, e := range want {
		fields = append(fields, e.Image+"="+strings.Join(e.Tags, ","))
	}

	got, err := Parse(strings.Join(fields, " "))
	require.NoError(t, err)
	require.Equal(t, want, got)
}
