// Package testutil provides shared helpers for integration tests: a
// thread-safe log buffer and a harness that runs a full extraction over a
// temporary formula directory.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/formulago/internal/app"
	"github.com/vk/formulago/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an extraction test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// RunExtraction writes the given formula files into a temporary directory
// and runs a full extraction over it with debug logging. File names may
// contain subdirectories (e.g. "Formula/l/libpng.rb"). mutate, when not
// nil, adjusts the settings before the run.
func RunExtraction(t *testing.T, files map[string]string, mutate func(*config.Settings)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	settings := config.NewSettings()
	settings.FormulaPath = tmpDir
	settings.LogLevel = "debug"
	if mutate != nil {
		mutate(&settings)
	}
	require.NoError(t, settings.Validate())

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	extractor := app.NewApp(out, logs, &settings)
	err := extractor.Run(context.Background())

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       err,
	}
}
