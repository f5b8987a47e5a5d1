package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/formulago/internal/config"
	"github.com/vk/formulago/internal/formula"
)

// newTestApp builds an App over a temp formula directory with the given
// files, returning the app and its output/log buffers.
func newTestApp(t *testing.T, files map[string]string, mutate func(*config.Settings)) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	settings := config.NewSettings()
	settings.FormulaPath = dir
	settings.LogLevel = "debug"
	if mutate != nil {
		mutate(&settings)
	}
	require.NoError(t, settings.Validate())

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	return NewApp(out, logs, &settings), out, logs
}

func TestAppRun_EmitsJSONRecords(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, out, _ := newTestApp(t, map[string]string{
		"libpng.rb": "desc \"PNG library\"\nhomepage \"http://example.org\"\n",
	}, nil)

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)

	var record formula.Record
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "libpng", record.Name)
	require.NotNil(t, record.Description)
	assert.Equal(t, "PNG library", *record.Description)
	assert.Nil(t, record.SHA256)
}

func TestAppRun_TextOutput(t *testing.T) {
	t.Parallel()

	app, out, _ := newTestApp(t, map[string]string{
		"libpng.rb": "desc \"PNG library\"\nsha256 \"abc123\"\n",
	}, func(s *config.Settings) { s.Output = "text" })

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "libpng\n")
	assert.Contains(t, out.String(), "  desc: PNG library\n")
	assert.Contains(t, out.String(), "  sha256: abc123\n")
	assert.NotContains(t, out.String(), "homepage")
}

func TestAppRun_ContinuesPastFailedFormula(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, out, logs := newTestApp(t, map[string]string{
		"broken.rb": `desc "unterminated` + "\n",
		"good.rb":   "desc \"still extracted\"\n",
	}, nil)

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"name":"good"`)
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, logs.String(), "Skipping formula.")
}

func TestAppRun_NoFilesFound(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t, nil, nil)

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .rb files found")
}

func TestAppRun_AllFormulasFailed(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t, map[string]string{
		"broken.rb": `desc "unterminated` + "\n",
	}, nil)

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could be parsed")
}

func TestAppRun_DiscoveryFailure(t *testing.T) {
	t.Parallel()

	settings := config.NewSettings()
	settings.FormulaPath = filepath.Join(t.TempDir(), "absent")
	app := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &settings)

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "formula discovery failed")
}
