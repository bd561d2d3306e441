package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/opswiki/bfstats/internal/ctxlog"
	"github.com/opswiki/bfstats/internal/reconcile"
	"github.com/opswiki/bfstats/internal/render"
	"github.com/opswiki/bfstats/internal/rules"
	"github.com/opswiki/bfstats/internal/scan"
	"github.com/opswiki/bfstats/internal/target"
)

// Run executes one reconciliation pass: resolve rules, load whatever inputs
// are readable, merge, and print the table. Unreadable files and bad lines
// are logged and skipped; the run fails only when no source produced any
// group at all.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	ruleset, err := rules.Load(ctx, a.config.RulesPath)
	if err != nil {
		return fmt.Errorf("failed to load rules: %w", err)
	}

	var entries []target.Entry
	var pairs []scan.Pair
	reportPath := a.config.CurrentPath
	if a.config.SingleFile() {
		reportPath = a.config.ReportPath
		entries, pairs = a.loadCombined(ctx, ruleset)
	} else {
		entries = a.loadTargets(ctx)
		pairs = a.loadReport(ctx, reportPath, ruleset)
	}

	set := reconcile.Reconcile(entries, pairs, ruleset.Merge)
	if set.Len() <= 1 {
		// Only the synthesized TOTAL group: every source was empty or
		// unreadable. An all-zero table helps nobody, so fail the run.
		return errors.New("no input data: nothing could be loaded from any source")
	}
	a.logger.Debug("Reconciliation complete.", "groups", set.Len())

	renderer := render.New(render.Style(a.config.Style), ruleset.Merge.RootMarker)
	for _, line := range renderer.Table(set) {
		fmt.Fprintln(a.outW, line)
	}

	// The raw unmerged block accompanies two-file runs only.
	if !a.config.SingleFile() && len(pairs) > 0 {
		snapshot := reconcile.Snapshot(pairs, reportPath, ruleset.Merge)
		fmt.Fprintln(a.outW)
		for _, line := range renderer.RawBlock(snapshot) {
			fmt.Fprintln(a.outW, line)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// loadTargets reads the two-file-mode target list. A missing or unreadable
// file yields an empty target set and a logged error.
func (a *App) loadTargets(ctx context.Context) []target.Entry {
	if a.config.TargetPath == "" {
		return nil
	}
	f, err := os.Open(a.config.TargetPath)
	if err != nil {
		a.logger.Error("Could not open file.", "path", a.config.TargetPath, "error", err)
		return nil
	}
	defer f.Close()

	entries, err := target.Load(ctx, f, target.Options{
		File:  a.config.TargetPath,
		Delim: target.DefaultDelim,
	})
	if err != nil {
		a.logger.Error("Failed reading target file.", "path", a.config.TargetPath, "error", err)
	}
	return entries
}

// loadReport scans a report file for current counts. A missing or unreadable
// file yields no pairs and a logged error.
func (a *App) loadReport(ctx context.Context, path string, ruleset *rules.Ruleset) []scan.Pair {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		a.logger.Error("Could not open file.", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	pairs, err := scan.Scan(ctx, f, ruleset.Markers)
	if err != nil {
		a.logger.Error("Failed reading report file.", "path", path, "error", err)
	}
	return pairs
}

// loadCombined handles single-file mode: the same report carries both
// embedded name,count target lines and record lines with current counts.
func (a *App) loadCombined(ctx context.Context, ruleset *rules.Ruleset) ([]target.Entry, []scan.Pair) {
	data, err := os.ReadFile(a.config.ReportPath)
	if err != nil {
		a.logger.Error("Could not open file.", "path", a.config.ReportPath, "error", err)
		return nil, nil
	}

	entries, err := target.Load(ctx, bytes.NewReader(data), target.Options{
		File:         a.config.ReportPath,
		Delim:        target.DefaultDelim,
		Embedded:     true,
		RecordMarker: ruleset.Markers.Record,
	})
	if err != nil {
		a.logger.Error("Failed reading embedded targets.", "path", a.config.ReportPath, "error", err)
	}

	pairs, err := scan.Scan(ctx, bytes.NewReader(data), ruleset.Markers)
	if err != nil {
		a.logger.Error("Failed scanning report.", "path", a.config.ReportPath, "error", err)
	}
	return entries, pairs
}
