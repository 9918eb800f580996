// Package gsheets reads the coach's Google spreadsheet: one tab per client
// plus the access code and quote tabs.
package gsheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/bodylab/trainlog/internal/access"
	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/sheet"
	"github.com/bodylab/trainlog/internal/template"
)

// Client is a read-only repository.TemplateProvider backed by the Sheets API.
type Client struct {
	sheets    *sheets.Service
	sheetKey  string
	codesTab  string
	quotesTab string
}

// Tabs names the shared tabs of the spreadsheet.
type Tabs struct {
	Codes  string
	Quotes string
}

// NewClient authenticates with a service account key file.
func NewClient(ctx context.Context, credentialsPath, sheetKey string, tabs Tabs) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}
	cfg, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	return NewClientWithOptions(ctx, sheetKey, tabs, option.WithHTTPClient(cfg.Client(ctx)))
}

// NewClientWithOptions builds a client from explicit API options, e.g. a
// custom endpoint.
func NewClientWithOptions(ctx context.Context, sheetKey string, tabs Tabs, opts ...option.ClientOption) (*Client, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &Client{
		sheets:    srv,
		sheetKey:  sheetKey,
		codesTab:  tabs.Codes,
		quotesTab: tabs.Quotes,
	}, nil
}

func (c *Client) LoadTemplate(ctx context.Context, clientName string) (*domain.Template, error) {
	values, err := c.values(ctx, clientName)
	if err != nil {
		return nil, err
	}
	return template.Parse(clientName, values)
}

func (c *Client) AccessCodes(ctx context.Context) (access.CodeBook, error) {
	values, err := c.values(ctx, c.codesTab)
	if err != nil {
		return nil, err
	}
	return access.ParseCodes(values)
}

func (c *Client) WeeklyQuote(ctx context.Context, week int) (string, error) {
	values, err := c.values(ctx, c.quotesTab)
	if err != nil {
		return "", err
	}
	return template.WeeklyQuote(values, week), nil
}

func (c *Client) values(ctx context.Context, tab string) ([][]string, error) {
	resp, err := c.sheets.Spreadsheets.Values.Get(c.sheetKey, tabRange(tab)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading tab %q: %w", tab, err)
	}
	return sheet.FromValues(resp.Values), nil
}

// tabRange quotes a tab name for use as an A1 range covering the whole tab.
func tabRange(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}
