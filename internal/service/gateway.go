package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// UploadKind selects the bulk-import target endpoint.
type UploadKind string

const (
	UploadWorkers UploadKind = "workers"
	UploadLogs    UploadKind = "logs"
)

// DownloadTarget selects the export endpoint parameter.
type DownloadTarget string

const (
	DownloadWorkers  DownloadTarget = "workers"
	DownloadWorkLogs DownloadTarget = "work_logs"
)

// Upload bulk-imports a spreadsheet. Restricted staff cannot upload rosters:
// the refusal happens before any request is sent. The file's header row is
// validated locally against the backend's column contract. After the request
// settles, success or failure, the active tab is refetched, since uploaded
// data may affect any view.
func (c *Console) Upload(ctx context.Context, path string, kind UploadKind) (string, error) {
	mode := c.snapshot().mode
	if kind == UploadWorkers && c.session.IsRestricted(mode) {
		c.logger.Info("roster upload refused for restricted staff")
		return "", ErrPermissionDenied
	}

	if err := ValidateUploadFile(path, kind); err != nil {
		return "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	c.loading.Store(true)
	defer c.loading.Store(false)

	msg, err := c.api.Upload(ctx, string(kind), mode, filepath.Base(file.Name()), file)
	c.Refresh(ctx)
	if err != nil {
		c.logger.Warn("upload failed", zap.String("kind", string(kind)), zap.Error(err))
		return "", err
	}
	c.setNotice(msg)
	return msg, nil
}

// DownloadURL returns the browser-navigable export address for the target
// under the current mode. No request is issued and no response is handled;
// following the URL is entirely the navigator's concern.
func (c *Console) DownloadURL(target DownloadTarget) string {
	return c.api.DownloadURL(string(target), c.snapshot().mode)
}
