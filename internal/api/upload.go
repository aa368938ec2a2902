package api

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"workerguard-console/internal/domain"

	"go.uber.org/zap"
)

// Upload POSTs a spreadsheet as multipart form data to /upload/{kind} with
// the operating mode in the type field. Returns the backend's success message.
func (c *Client) Upload(ctx context.Context, kind string, mode domain.Mode, filename string, content io.Reader) (string, error) {
	var out struct {
		Msg string `json:"msg"`
	}
	var reject rejection
	resp, err := c.newRequest(ctx).
		SetFileReader("file", filename, content).
		SetFormData(map[string]string{"type": string(mode)}).
		SetResult(&out).
		SetError(&reject).
		Post("/upload/" + kind)
	if err != nil {
		return "", fmt.Errorf("POST /upload/%s: %w", kind, err)
	}
	if resp.IsError() {
		return "", &BackendError{StatusCode: resp.StatusCode(), Detail: reject.Detail}
	}
	c.logger.Info("upload accepted",
		zap.String("kind", kind),
		zap.String("file", filename),
		zap.String("msg", out.Msg),
	)
	return out.Msg, nil
}

// DownloadURL builds the browser-navigable export URL. No request is issued;
// response handling is entirely the navigator's concern.
func (c *Client) DownloadURL(target string, mode domain.Mode) string {
	query := url.Values{}
	query.Set("target", target)
	query.Set("type", string(mode))
	return c.http.BaseURL + "/download?" + query.Encode()
}
