package metasys_test

import (
	"testing"

	"github.com/michaelgwelch/metasys-go/pkg/metasys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		site     string
		device   string
		path     []string
		isEngine bool
	}{
		{
			name:     "full reference",
			input:    "site1:dev1/a.b.c",
			site:     "site1",
			device:   "dev1",
			path:     []string{"a", "b", "c"},
			isEngine: false,
		},
		{
			name:     "engine reference",
			input:    "site1:dev1",
			site:     "site1",
			device:   "dev1",
			path:     nil,
			isEngine: true,
		},
		{
			name:     "single path segment",
			input:    "hq:nae-3/av1",
			site:     "hq",
			device:   "nae-3",
			path:     []string{"av1"},
			isEngine: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref, err := metasys.ParseReference(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.site, ref.Site)
			assert.Equal(t, tt.device, ref.Device)
			assert.Equal(t, tt.path, ref.Path)
			assert.Equal(t, tt.isEngine, ref.IsEngine())
			assert.Equal(t, tt.site+":"+tt.device, ref.Prefix())
			assert.Equal(t, tt.input, ref.String())
		})
	}
}

func TestParseReference_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "no separator", input: "justaname"},
		{name: "empty site", input: ":dev1/a"},
		{name: "empty device", input: "site1:"},
		{name: "empty device with path", input: "site1:/a.b"},
		{name: "empty path segment", input: "site1:dev1/a..b"},
		{name: "trailing slash", input: "site1:dev1/"},
		{name: "empty string", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := metasys.ParseReference(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, metasys.ErrInvalidReference)
			assert.Contains(t, err.Error(), tt.input)
		})
	}
}
