// Package gdocs wraps the Google Docs, Sheets and Drive APIs used to publish
// generated artifacts as shared cloud documents.
package gdocs

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Document names a created cloud document.
type Document struct {
	ID    string
	URL   string
	Title string
}

// Client talks to the three Google services with one service-account
// credential.
type Client struct {
	docs   *docs.Service
	sheets *sheets.Service
	drive  *drive.Service
}

// CredentialsJSON loads the service-account key: the GOOGLE_CREDENTIALS
// environment variable first (deployment platforms inject it there), then
// the configured credentials file.
func CredentialsJSON(credentialsFile string) ([]byte, error) {
	if creds := os.Getenv("GOOGLE_CREDENTIALS"); creds != "" {
		return []byte(creds), nil
	}
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("no Google credentials available: %w", err)
	}
	return data, nil
}

// NewClient builds the API clients from a service-account JSON key.
func NewClient(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON,
		docs.DocumentsScope, drive.DriveScope, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Google credentials: %w", err)
	}

	docsSvc, err := docs.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create docs service: %w", err)
	}
	sheetsSvc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &Client{docs: docsSvc, sheets: sheetsSvc, drive: driveSvc}, nil
}

// CreateDocument creates a Google Doc with the given content and shares it
// with anyone who has the link.
func (c *Client) CreateDocument(ctx context.Context, title, content string) (*Document, error) {
	doc, err := c.docs.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	if err := c.share(ctx, doc.DocumentId); err != nil {
		return nil, err
	}

	_, err = c.docs.Documents.BatchUpdate(doc.DocumentId, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{{
			InsertText: &docs.InsertTextRequest{
				Location: &docs.Location{Index: 1},
				Text:     content,
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to populate document: %w", err)
	}

	return &Document{
		ID:    doc.DocumentId,
		URL:   fmt.Sprintf("https://docs.google.com/document/d/%s/edit", doc.DocumentId),
		Title: title,
	}, nil
}

// CreateSpreadsheet creates a shared Google Sheet and fills it with the
// tabular values starting at A1.
func (c *Client) CreateSpreadsheet(ctx context.Context, title string, rows [][]string) (*Document, error) {
	ss, err := c.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	if err := c.share(ctx, ss.SpreadsheetId); err != nil {
		return nil, err
	}

	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		values = append(values, cells)
	}

	_, err = c.sheets.Spreadsheets.Values.Update(ss.SpreadsheetId, "Sheet1!A1", &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to populate spreadsheet: %w", err)
	}

	url := ss.SpreadsheetUrl
	if url == "" {
		url = fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", ss.SpreadsheetId)
	}
	return &Document{ID: ss.SpreadsheetId, URL: url, Title: title}, nil
}

func (c *Client) share(ctx context.Context, fileID string) error {
	_, err := c.drive.Permissions.Create(fileID, &drive.Permission{
		Type: "anyone",
		Role: "writer",
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to share file: %w", err)
	}
	return nil
}
