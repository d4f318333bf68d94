package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const defaultTab = "Sheet1"

// Mode selects how Write lays rows into a tab
type Mode int

const (
	// ModeAppend adds rows after the last filled row and never writes a header
	ModeAppend Mode = iota
	// ModeReplace writes the header at A1 followed by the rows
	ModeReplace
)

// Table is a header plus string rows
type Table struct {
	Header []string
	Rows   [][]string
}

type Client struct {
	service *sheets.Service
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
	// Options are appended after the credentials, e.g. an endpoint override
	Options []option.ClientOption
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	switch {
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	case len(cfg.Options) == 0:
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}
	opts = append(opts, cfg.Options...)

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}

	return &Client{service: service}, nil
}

// Write puts t into tab and returns the number of data rows written.
// With clear set, everything in the tab is removed first.
func (c *Client) Write(ctx context.Context, spreadsheetID, tab string, t Table, mode Mode, clear bool) (int, error) {
	if c == nil || c.service == nil {
		return 0, fmt.Errorf("sheets: service is nil")
	}
	if spreadsheetID == "" {
		return 0, fmt.Errorf("sheets: spreadsheet id is required")
	}
	if tab == "" {
		tab = defaultTab
	}

	if clear {
		if err := c.clear(ctx, spreadsheetID, A1(tab, "A1:Z")); err != nil {
			return 0, fmt.Errorf("sheets: clear %s: %w", tab, err)
		}
	}
	if len(t.Rows) == 0 && mode == ModeAppend {
		return 0, nil
	}

	switch mode {
	case ModeReplace:
		values := toValues(append([][]string{t.Header}, t.Rows...))
		if err := c.update(ctx, spreadsheetID, A1(tab, "A1"), values); err != nil {
			return 0, fmt.Errorf("sheets: update %s: %w", tab, err)
		}
	default:
		if err := c.append(ctx, spreadsheetID, A1(tab, "A1"), toValues(t.Rows)); err != nil {
			return 0, fmt.Errorf("sheets: append %s: %w", tab, err)
		}
	}
	return len(t.Rows), nil
}

func (c *Client) append(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error {
	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func (c *Client) update(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error {
	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func (c *Client) clear(ctx context.Context, spreadsheetID, rng string) error {
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// A1 builds a tab-qualified A1 range
func A1(tab, cells string) string {
	if tab == "" {
		tab = defaultTab
	}
	return fmt.Sprintf("'%s'!%s", tab, cells)
}

func toValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, cell := range row {
			values[i][j] = cell
		}
	}
	return values
}
