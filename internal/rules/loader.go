package rules

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/opswiki/bfstats/internal/ctxlog"
	"github.com/opswiki/bfstats/internal/reconcile"
	"github.com/opswiki/bfstats/internal/scan"
)

// Ruleset is the fully resolved configuration for one run: how to recognize
// report records and how to merge what they contain.
type Ruleset struct {
	Markers scan.Markers
	Merge   reconcile.Rules
}

// Default returns the stock markers and merge policy.
func Default() *Ruleset {
	return &Ruleset{
		Markers: scan.DefaultMarkers(),
		Merge:   reconcile.DefaultRules(),
	}
}

// Load resolves the ruleset for a run. An empty path returns the defaults; a
// missing file is logged and falls back to the defaults; a file that exists
// but does not parse is a configuration error and fails the run.
func Load(ctx context.Context, path string) (*Ruleset, error) {
	logger := ctxlog.FromContext(ctx)
	rs := Default()
	if path == "" {
		return rs, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Could not open rules file, using default rules.", "path", path)
			return rs, nil
		}
		return nil, fmt.Errorf("error accessing rules file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rules file %s: %w", path, diags)
	}

	if err := apply(rs, &root); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	logger.Debug("Rules file loaded.", "path", path,
		"aliases", len(rs.Merge.Aliases), "excluded", len(rs.Merge.Exclude))
	return rs, nil
}

// apply overlays the decoded file onto the default ruleset.
func apply(rs *Ruleset, root *fileRoot) error {
	if root.Markers != nil {
		if root.Markers.Record != nil {
			rs.Markers.Record = *root.Markers.Record
		}
		if root.Markers.Start != nil {
			rs.Markers.Start = *root.Markers.Start
		}
		if root.Markers.End != nil {
			rs.Markers.End = *root.Markers.End
		}
	}
	if root.Aliases != nil {
		aliases, err := extractAliases(root.Aliases)
		if err != nil {
			return err
		}
		rs.Merge.Aliases = aliases
	}
	if root.Exclude != nil {
		exclude := make(map[string]struct{}, len(*root.Exclude))
		for _, name := range *root.Exclude {
			exclude[name] = struct{}{}
		}
		rs.Merge.Exclude = exclude
	}
	if root.RootMarker != nil {
		rs.Merge.RootMarker = *root.RootMarker
	}
	if root.Order != nil {
		switch *root.Order {
		case "insertion":
			rs.Merge.Order = reconcile.OrderInsertion
		case "lexicographic":
			rs.Merge.Order = reconcile.OrderLexicographic
		default:
			return fmt.Errorf("unknown order %q: must be 'insertion' or 'lexicographic'", *root.Order)
		}
	}
	if root.DateWidth != nil {
		rs.Merge.DateWidth = *root.DateWidth
	}
	return nil
}

// extractAliases evaluates the aliases block's attribute expressions into a
// satellite-to-root name map.
func extractAliases(block *aliasesBlock) (map[string]string, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	aliases := make(map[string]string, len(attrs))
	for satellite, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		if val.Type() != cty.String {
			return nil, fmt.Errorf("alias %q: root group name must be a string", satellite)
		}
		aliases[satellite] = val.AsString()
	}
	return aliases, nil
}
