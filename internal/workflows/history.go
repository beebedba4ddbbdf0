package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/cipherkit/internal/history"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Limit keeps only the newest entries. Zero shows all.
	Limit int

	// Clear removes the history file instead of listing it.
	Clear bool
}

// HistoryResult contains the listed entries, oldest first.
type HistoryResult struct {
	Path    string
	Entries []history.Entry

	// Total counts every entry in the file before Limit was applied.
	Total int

	Cleared bool
}

// History lists or clears recorded operations.
func History(ctx context.Context, opts HistoryOptions) (*HistoryResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	result := &HistoryResult{Path: history.Path()}

	if opts.Clear {
		if err := history.Clear(); err != nil {
			return nil, fmt.Errorf("clearing history: %w", err)
		}
		result.Cleared = true
		return result, nil
	}

	entries, err := history.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	result.Total = len(entries)
	result.Entries = history.Last(entries, opts.Limit)
	return result, nil
}
