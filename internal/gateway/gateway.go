package gateway

import (
	"context"
	"errors"
)

// ErrBackendUnavailable wraps any failure reaching or reading/writing the
// backing tabular store. Callers match it with errors.Is.
var ErrBackendUnavailable = errors.New("backing store unavailable")

// Gateway is the only access path to the backing tabular store. Tabs are
// addressed by name and hold plain-text cells; the first row of a tab is its
// header. There is no per-row write primitive: mutations replace a whole tab.
type Gateway interface {
	// ReadAll returns every row of the named tab in stored order. A missing
	// or empty tab yields an empty slice, not an error.
	ReadAll(ctx context.Context, tab string) ([][]string, error)

	// ReplaceAll overwrites the entire tab with the given rows (header
	// included). There is no partial-write recovery; a failed write leaves
	// the tab in whatever state the backend left it in.
	ReplaceAll(ctx context.Context, tab string, rows [][]string) error
}
