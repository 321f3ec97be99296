package repository

import (
	"context"
	"sort"

	"github.com/guide-directory-api/internal/gateway"
)

// referenceRepo is the concrete implementation of ReferenceRepository
type referenceRepo struct {
	gw gateway.Gateway
}

// NewReferenceRepo creates a reader for auxiliary lookup tabs
func NewReferenceRepo(gw gateway.Gateway) ReferenceRepository {
	return &referenceRepo{gw: gw}
}

// LoadList reads the named tab, extracts one column by its header name,
// drops empty values and sorts ascending. Duplicates are kept. Errors
// propagate; degrading to an empty list is the caller's policy, not ours.
func (r *referenceRepo) LoadList(ctx context.Context, tab, column string) ([]string, error) {
	rows, err := r.gw.ReadAll(ctx, tab)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []string{}, nil
	}

	// Locate the column in the header row
	col := -1
	for i, name := range rows[0] {
		if name == column {
			col = i
			break
		}
	}
	if col == -1 {
		return []string{}, nil
	}

	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col < len(row) && row[col] != "" {
			values = append(values, row[col])
		}
	}
	sort.Strings(values)
	return values, nil
}
