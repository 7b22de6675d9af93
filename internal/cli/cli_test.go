package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommandPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.png")
	_, err := run(t, "render", "https://example.com", "-o", path, "--size", "300", "--theme", "forest")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
}

func TestRenderCommandInfersSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.svg")
	_, err := run(t, "render", "hello", "-o", path, "--style", "dots", "--encoder", "skip2")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
	assert.Contains(t, string(data), `width="400"`)
}

func TestRenderCommandStdoutBase64(t *testing.T) {
	out, err := run(t, "render", "hello", "--format", "base64")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/png;base64,"))
}

func TestRenderCommandNeedsContent(t *testing.T) {
	_, err := run(t, "render")
	assert.Error(t, err)
}

func TestThemesCommand(t *testing.T) {
	out, err := run(t, "themes")
	require.NoError(t, err)
	for _, name := range []string{"classic", "ocean", "midnight"} {
		assert.Contains(t, out, name)
	}
}
