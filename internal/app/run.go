package app

import (
	"context"
	"fmt"

	"github.com/vk/formulago/internal/ctxlog"
	"github.com/vk/formulago/internal/executor"
	"github.com/vk/formulago/internal/fsutil"
)

// Run executes one extraction: discover formula files under FormulaPath,
// parse them concurrently, and emit a record per successful parse. A failed
// parse is logged and skipped; Run fails only when discovery fails or when
// not a single formula could be parsed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := fsutil.FindFilesByExtension(a.settings.FormulaPath, a.settings.Extension)
	if err != nil {
		return fmt.Errorf("formula discovery failed: %w", err)
	}
	a.logger.Debug("Discovered formula files.", "count", len(files))
	if len(files) == 0 {
		return fmt.Errorf("no %s files found under %s", a.settings.Extension, a.settings.FormulaPath)
	}

	exec := executor.New(a.settings.Workers)
	results := exec.Run(ctx, files)

	parsed := 0
	for _, res := range results {
		if res.Err != nil {
			a.logger.Warn("Skipping formula.", "path", res.Path, "error", res.Err)
			continue
		}
		if err := a.emit(res.Record); err != nil {
			return fmt.Errorf("writing record for %s: %w", res.Path, err)
		}
		parsed++
	}

	a.logger.Info("Extraction finished.", "parsed", parsed, "skipped", len(results)-parsed)
	if parsed == 0 {
		return fmt.Errorf("no formula under %s could be parsed", a.settings.FormulaPath)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
