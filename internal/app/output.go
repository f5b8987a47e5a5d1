package app

import (
	"encoding/json"
	"fmt"

	"github.com/vk/formulago/internal/formula"
)

// emit writes one record to the output writer in the configured format.
func (a *App) emit(record *formula.Record) error {
	switch a.settings.Output {
	case "text":
		return a.emitText(record)
	default:
		// Settings validation only admits "json" and "text".
		return json.NewEncoder(a.outW).Encode(record)
	}
}

// emitText writes a short human-readable summary, one field per line.
func (a *App) emitText(record *formula.Record) error {
	if _, err := fmt.Fprintln(a.outW, record.Name); err != nil {
		return err
	}
	fields := []struct {
		label string
		value *string
	}{
		{"desc", record.Description},
		{"homepage", record.Homepage},
		{"url", record.URL},
		{"sha256", record.SHA256},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if _, err := fmt.Fprintf(a.outW, "  %s: %s\n", f.label, *f.value); err != nil {
			return err
		}
	}
	return nil
}
