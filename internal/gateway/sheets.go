package gateway

import (
	"context"
	"fmt"

	"github.com/guide-directory-api/internal/config"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheets is the Google Sheets Gateway implementation: the store of record in
// production. Each tab of the configured spreadsheet is one table.
type Sheets struct {
	svc           *sheets.Service
	spreadsheetID string
	log           zerolog.Logger
}

// Verify interface compliance
var _ Gateway = (*Sheets)(nil)

// NewSheets creates a Sheets gateway using service-account credentials
func NewSheets(ctx context.Context, cfg *config.SheetsConfig, log zerolog.Logger) (*Sheets, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	g := &Sheets{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		log:           log.With().Str("component", "sheets-gateway").Logger(),
	}

	g.log.Info().Str("spreadsheet_id", cfg.SpreadsheetID).Msg("Sheets gateway initialized")
	return g, nil
}

func (g *Sheets) ReadAll(ctx context.Context, tab string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, tab).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read tab %s: %v", ErrBackendUnavailable, tab, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			if cell != nil {
				row[i] = fmt.Sprint(cell)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (g *Sheets) ReplaceAll(ctx context.Context, tab string, rows [][]string) error {
	// Clear-then-update mirrors the whole-tab write contract. The two calls
	// are not atomic; a failure in between leaves the tab empty.
	_, err := g.svc.Spreadsheets.Values.
		Clear(g.spreadsheetID, tab, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: clear tab %s: %v", ErrBackendUnavailable, tab, err)
	}

	if len(rows) == 0 {
		return nil
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	_, err = g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, tab+"!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: write tab %s: %v", ErrBackendUnavailable, tab, err)
	}

	g.log.Debug().Str("tab", tab).Int("rows", len(rows)).Msg("Tab rewritten")
	return nil
}
