package mcp

import (
	"context"
	"errors"

	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	sheetsclient "github.com/honeycarbs/jobboard/pkg/sheets"
)

var errSheetsNotConfigured = errors.New("sheets: client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)")

type sheetsClientAdapter struct {
	client *sheetsclient.Client
}

func (a *sheetsClientAdapter) Export(ctx context.Context, export tools.SheetsExport) (int, error) {
	if a.client == nil {
		return 0, errSheetsNotConfigured
	}

	mode := sheetsclient.ModeAppend
	if export.Replace {
		mode = sheetsclient.ModeReplace
	}
	return a.client.Write(ctx, export.SpreadsheetID, export.Tab, sheetsclient.Table{
		Header: export.Header,
		Rows:   export.Rows,
	}, mode, export.ClearTab)
}

var _ tools.SheetsClient = (*sheetsClientAdapter)(nil)
