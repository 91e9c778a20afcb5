package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MediaAPI uploads media through the backend proxy. The backend forwards
// the file to the media store with its internal credentials; the client
// never talks to the store directly.
type MediaAPI struct {
	c *Client
}

// UploadResult is the stored content key plus the derived retrieval URL.
type UploadResult struct {
	Key string
	URL string
}

// Upload sends the file as multipart form data (field "file") and derives
// the retrieval URL from the configured media base.
func (m *MediaAPI) Upload(ctx context.Context, filename string, r io.Reader) (UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return UploadResult{}, fmt.Errorf("read upload body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, err
	}

	req, err := m.c.newRequest(ctx, http.MethodPost, "/v1/media/upload", &buf, writer.FormDataContentType())
	if err != nil {
		return UploadResult{}, err
	}

	resp, err := m.c.http.Do(req)
	if err != nil {
		return UploadResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return UploadResult{}, newError(resp)
	}

	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return UploadResult{}, err
	}

	return UploadResult{
		Key: payload.Key,
		URL: m.c.mediaBaseURL + "/api/v1/media/" + payload.Key,
	}, nil
}
