// Package backend is the typed client for the remote store REST API.
// All state-changing operations on products, orders and bills live on
// the backend; this client only translates calls into requests and
// normalizes error bodies.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError carries the human-readable message the backend put into its
// error body, or the HTTP status text when the body had none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// do issues a JSON request and decodes the response into out (which may
// be nil when no body is expected).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func decode(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb struct {
			Detail string `json:"detail"`
		}
		msg := http.StatusText(resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Detail != "" {
			msg = eb.Detail
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// UploadImage sends the file as a multipart form (field name "file").
// The JSON content type is deliberately not set here; the multipart
// writer supplies its own boundary header.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads/upload/image", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		URL string `json:"url"`
	}
	if err := decode(resp, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// HealthCheck probes the backend liveness endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health_check/", nil, nil)
}

func pageQuery(skip, limit int) string {
	if skip < 0 {
		skip = DefaultSkip
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return fmt.Sprintf("?skip=%d&limit=%d", skip, limit)
}
