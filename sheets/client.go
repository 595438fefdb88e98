// Package sheets reads portfolio positions from a Google Sheet.
//
// It is a thin collaborator around the Sheets API: it authenticates, pulls
// raw rows, and hands each one to the engine's position factory. Rejecting a
// malformed row is this package's policy (skip and log), the engine only
// reports the error.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jmrios/cartera"
)

// ReadRange is the sheet range holding positions, four required columns:
// asset, platform, currency, value. Extra columns (like asset type in E) are
// optional; anything beyond is ignored.
const ReadRange = "Posiciones!A:G"

// Client reads portfolio rows from one spreadsheet.
type Client struct {
	sheetID string
	srv     *sheets.Service
}

// NewClient builds a read-only Sheets client. Credentials come from the
// GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables, and the
// OAuth token previously granted by the user is read from tokenPath.
func NewClient(ctx context.Context, sheetID, tokenPath string) (*Client, error) {
	if sheetID == "" {
		return nil, fmt.Errorf("sheet id is required: set CARTERA_SHEET_ID or pass -sheet-id")
	}

	conf, err := oauthConfig()
	if err != nil {
		return nil, err
	}
	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("no OAuth token at %q, run 'cartera login' first: %w", tokenPath, err)
	}

	srv, err := sheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("could not create sheets service: %w", err)
	}
	return &Client{sheetID: sheetID, srv: srv}, nil
}

// oauthConfig builds the OAuth2 installed-app configuration from environment.
func oauthConfig() (*oauth2.Config, error) {
	id := os.Getenv("GOOGLE_CLIENT_ID")
	secret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if id == "" || secret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}
	return &oauth2.Config{
		ClientID:     id,
		ClientSecret: secret,
		Endpoint:     google.Endpoint,
		RedirectURL:  "http://localhost",
		Scopes:       []string{sheets.SpreadsheetsReadonlyScope},
	}, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("invalid token file %q: %w", path, err)
	}
	return tok, nil
}

// ReadRows returns the raw cell values of the positions range, every cell as
// its displayed text.
func (c *Client) ReadRows(ctx context.Context) ([][]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.sheetID, ReadRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read from sheet %q: %w", c.sheetID, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadPositions reads the sheet and builds a portfolio from its rows.
func (c *Client) ReadPositions(ctx context.Context) (cartera.Portfolio, error) {
	rows, err := c.ReadRows(ctx)
	if err != nil {
		return cartera.Portfolio{}, err
	}
	return PositionsFromRows(rows), nil
}

// PositionsFromRows converts raw sheet rows into a portfolio. The first row
// is the header. Rows missing one of the four required cells, or failing
// validation, are logged and skipped; valuation must not silently absorb a
// malformed row as zero.
func PositionsFromRows(rows [][]string) cartera.Portfolio {
	var positions []cartera.Position
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 4 {
			log.Printf("skipping row %d: %d cells, want at least 4", i+1, len(row))
			continue
		}
		assetType := ""
		if len(row) > 4 {
			assetType = row[4]
		}
		pos, err := cartera.NewPosition(row[0], row[1], row[2], row[3], assetType)
		if err != nil {
			log.Printf("skipping row %d: %v", i+1, err)
			continue
		}
		positions = append(positions, pos)
	}
	return cartera.NewPortfolio(positions...)
}
