package record

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/classtrack/classtrack/core"
)

// Client talks to the remote record store over HTTP. One handle is
// built at startup from the store config and shared by all
// repositories.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Store = (*Client)(nil)

func NewClient(conf core.StoreConfig) *Client {
	timeout := conf.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    conf.BaseURL,
		apiKey:     conf.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) url(table string, id ...string) string {
	u := c.baseURL + "/tables/" + table + "/records"
	if len(id) > 0 {
		u += "/" + id[0]
	}
	return u
}

func (c *Client) do(ctx context.Context, op, method, url, table string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return newStoreError(op, table, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return newStoreError(op, table, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newStoreError(op, table, err)
	}
	defer func() {
		_, _ = io.Copy(ioutil.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return newStoreError(op, table, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return newStoreError(op, table, err)
		}
	}
	return nil
}

func (c *Client) List(ctx context.Context, table string) ([]Record, error) {
	var wire []Record
	if err := c.do(ctx, "list", http.MethodGet, c.url(table), table, nil, &wire); err != nil {
		return nil, err
	}
	records := make([]Record, len(wire))
	for i, rec := range wire {
		records[i] = toCanonical(table, rec)
	}
	return records, nil
}

func (c *Client) Get(ctx context.Context, table, id string) (Record, error) {
	var wire Record
	if err := c.do(ctx, "get", http.MethodGet, c.url(table, id), table, nil, &wire); err != nil {
		return nil, err
	}
	return toCanonical(table, wire), nil
}

func (c *Client) Create(ctx context.Context, table string, fields Record) (Record, error) {
	var wire Record
	if err := c.do(ctx, "create", http.MethodPost, c.url(table), table, toWire(table, fields), &wire); err != nil {
		return nil, err
	}
	return toCanonical(table, wire), nil
}

func (c *Client) Update(ctx context.Context, table, id string, fields Record) (Record, error) {
	var wire Record
	if err := c.do(ctx, "update", http.MethodPatch, c.url(table, id), table, toWire(table, fields), &wire); err != nil {
		return nil, err
	}
	return toCanonical(table, wire), nil
}

func (c *Client) Delete(ctx context.Context, table, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, c.url(table, id), table, nil, nil)
}
