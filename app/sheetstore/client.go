package sheetstore

import (
	"context"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/gunawanst/assahra-api/app/config"
)

// ValuesClient is the slice of the Sheets values API the repository needs.
// It exists so tests and tools can swap in a fake store.
type ValuesClient interface {
	Get(ctx context.Context, readRange string) ([][]interface{}, error)
	Append(ctx context.Context, writeRange string, row []interface{}) error
}

// Client talks to one spreadsheet through the Google Sheets API using a
// service-account identity.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient builds a Sheets client from the service-account credentials in
// cfg. Credential problems surface on the first call, not here; missing
// configuration is already warned about at startup.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	conf := &jwt.Config{
		Email:      cfg.SAClientEmail,
		PrivateKey: []byte(cfg.SAPrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

func (c *Client) Get(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (c *Client) Append(ctx context.Context, writeRange string, row []interface{}) error {
	body := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, writeRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}
