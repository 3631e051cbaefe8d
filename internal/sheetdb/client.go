// Package sheetdb is the client for the spreadsheet REST proxy that backs all
// persistence. Every logical collection is a named sheet selected with the
// `sheet` query parameter; rows travel as flat string maps.
package sheetdb

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Row is one sheet row. Every cell is a string; numeric parsing is the
// caller's concern.
type Row = map[string]string

// Sheet names used by the service.
const (
	SheetInventory    = "Master_Inventory"
	SheetActivityLog  = "Activity_Log"
	SheetVendors      = "Vendors"
	SheetOrders       = "Orders"
	SheetOrderHistory = "Order_History"
	SheetPreferences  = "User_Preferences"
)

// dataEnvelope wraps row payloads for POST/PATCH, per the proxy's API.
type dataEnvelope struct {
	Data Row `json:"data"`
}

// Client talks to a single spreadsheet identified by its API id. The proxy
// offers no cross-sheet atomicity; every call is an independent REST request
// with no retries.
type Client struct {
	http *resty.Client
}

// New builds a client bound to {baseURL}/{apiID} with bearer authentication.
func New(baseURL, apiID, apiKey string) *Client {
	c := resty.New().
		SetBaseURL(fmt.Sprintf("%s/%s", baseURL, apiID)).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(15 * time.Second)
	return &Client{http: c}
}

// NewWithBase builds a client against a fully-formed base URL. Used by tests.
func NewWithBase(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	return &Client{http: c}
}

// List fetches every row of a sheet.
func (c *Client) List(ctx context.Context, sheet string) ([]Row, error) {
	var rows []Row
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("sheet", sheet).
		SetResult(&rows).
		Get("/")
	if err := checkResp(resp, err, sheet, "list"); err != nil {
		return nil, err
	}
	return rows, nil
}

// Search fetches rows matching the given column filters. Values may use the
// proxy's wildcard syntax (e.g. "*latte*"); caseSensitive=false asks the
// proxy to match case-insensitively.
func (c *Client) Search(ctx context.Context, sheet string, filters map[string]string, caseSensitive bool) ([]Row, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("sheet", sheet).
		SetQueryParam("casesensitive", fmt.Sprintf("%t", caseSensitive))
	for col, val := range filters {
		req.SetQueryParam(col, val)
	}
	var rows []Row
	resp, err := req.SetResult(&rows).Get("/search")
	if err := checkResp(resp, err, sheet, "search"); err != nil {
		return nil, err
	}
	return rows, nil
}

// Create appends a row to a sheet.
func (c *Client) Create(ctx context.Context, sheet string, row Row) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("sheet", sheet).
		SetBody(dataEnvelope{Data: row}).
		Post("/")
	return checkResp(resp, err, sheet, "create")
}

// Update patches the row(s) whose keyCol cell equals key. Only the columns
// present in row are written.
func (c *Client) Update(ctx context.Context, sheet, keyCol, key string, row Row) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("sheet", sheet).
		SetBody(dataEnvelope{Data: row}).
		SetPathParams(map[string]string{"col": keyCol, "key": key}).
		Patch("/{col}/{key}")
	return checkResp(resp, err, sheet, "update")
}

// Delete removes the row(s) whose keyCol cell equals key.
func (c *Client) Delete(ctx context.Context, sheet, keyCol, key string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("sheet", sheet).
		SetPathParams(map[string]string{"col": keyCol, "key": key}).
		Delete("/{col}/{key}")
	return checkResp(resp, err, sheet, "delete")
}

func checkResp(resp *resty.Response, err error, sheet, op string) error {
	if err != nil {
		return fmt.Errorf("sheetdb: %s %s: %w", op, sheet, err)
	}
	if resp.IsError() {
		return fmt.Errorf("sheetdb: %s %s: status %d", op, sheet, resp.StatusCode())
	}
	return nil
}
