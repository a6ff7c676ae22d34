package stylesheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/text_to_sounds"
)

func TestGenerate(t *testing.T) {
	css := Generate(DefaultPalette)
	lines := strings.Split(strings.TrimSpace(css), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, ".Ptk { color: #e4572e; font-weight: bold; }", lines[0])
	assert.True(t, strings.HasPrefix(lines[6], ".Dj "))
	assert.NotContains(t, css, "Unclassified")
}

func TestGenerate_SkipsUnclassifiedAndMissing(t *testing.T) {
	css := Generate(Palette{
		text_to_sounds.Th:           "red",
		text_to_sounds.Unclassified: "blue",
	})
	assert.Equal(t, ".Th { color: red; font-weight: bold; }\n", css)
}

func TestWriteStylesheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sounds.css")
	require.NoError(t, WriteStylesheet(path, DefaultPalette))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Generate(DefaultPalette), string(written))

	assert.Error(t, WriteStylesheet(filepath.Join(path, "nested.css"),
		DefaultPalette))
}
