// Package apiclient is the typed HTTP client for the persistence API. It
// treats the server as an opaque boundary: plain request/response, no
// retries, errors surface to the caller.
package apiclient

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

	"pinboard/internal/note"
)

type Canvas struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Tab struct {
	ID        uint   `json:"id"`
	CanvasID  uint   `json:"canvas_id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// apiError is the JSON {error} body the server sends on failure.
type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var ae apiError
		if json.NewDecoder(resp.Body).Decode(&ae) == nil && ae.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, ae.Error)
		}
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) ListCanvases(ctx context.Context) ([]Canvas, error) {
	var out []Canvas
	err := c.do(ctx, http.MethodGet, "/api/canvases", nil, &out)
	return out, err
}

func (c *Client) CreateCanvas(ctx context.Context, name string) (Canvas, error) {
	var out Canvas
	err := c.do(ctx, http.MethodPost, "/api/canvases", map[string]string{"name": name}, &out)
	return out, err
}

func (c *Client) GetCanvas(ctx context.Context, id uint) (Canvas, error) {
	var out Canvas
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/canvases/%d", id), nil, &out)
	return out, err
}

func (c *Client) RenameCanvas(ctx context.Context, id uint, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/canvases/%d", id), map[string]string{"name": name}, nil)
}

func (c *Client) DeleteCanvas(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/canvases/%d", id), nil, nil)
}

func (c *Client) ListTabs(ctx context.Context, canvasID uint) ([]Tab, error) {
	var out []Tab
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tabs/%d", canvasID), nil, &out)
	return out, err
}

func (c *Client) CreateTab(ctx context.Context, canvasID uint, name string) (Tab, error) {
	var out Tab
	err := c.do(ctx, http.MethodPost, "/api/tabs", map[string]any{
		"canvas_id": canvasID,
		"name":      name,
	}, &out)
	return out, err
}

func (c *Client) RenameTab(ctx context.Context, id uint, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tabs/%d", id), map[string]string{"name": name}, nil)
}

// DeleteTab reports how many notes went down with the tab.
func (c *Client) DeleteTab(ctx context.Context, id uint) (int64, error) {
	var out struct {
		NotesDeleted int64 `json:"notesDeleted"`
	}
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tabs/%d", id), nil, &out)
	return out.NotesDeleted, err
}

func (c *Client) ListNotes(ctx context.Context, canvasID uint) ([]note.Note, error) {
	var out []note.Note
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/notes/%d", canvasID), nil, &out)
	return out, err
}

// SaveNote is an upsert keyed on the client-assigned id.
func (c *Client) SaveNote(ctx context.Context, n note.Note) error {
	return c.do(ctx, http.MethodPost, "/api/notes", n, nil)
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+id, nil, nil)
}

// UploadImage posts the bytes as a multipart form and returns the served
// image URL.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/upload-image", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("upload: %s", resp.Status)
	}

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

// Share uploads snapshot HTML and returns the public URL.
func (c *Client) Share(ctx context.Context, canvasID uint, name, htmlContent string) (string, error) {
	var out struct {
		ShareURL string `json:"shareUrl"`
	}
	err := c.do(ctx, http.MethodPost, "/api/share", map[string]any{
		"canvasId":    canvasID,
		"name":        name,
		"htmlContent": htmlContent,
	}, &out)
	return out.ShareURL, err
}

// ExportPNG fetches the server-rendered PNG image of a canvas.
func (c *Client) ExportPNG(ctx context.Context, canvasID uint) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/canvases/%d/export.png", c.base, canvasID), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("export: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Snapshot fetches the server-rendered readonly HTML for a canvas.
func (c *Client) Snapshot(ctx context.Context, canvasID uint) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/readonly-canvas/%d", c.base, canvasID), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("snapshot: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	return string(data), err
}
