package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// FileMirror replicates attachments on the local file system under their
// canonical content identifier.
type FileMirror struct {
	baseDir     string
	log         *slog.Logger
	locationURI string
}

// NewFileMirror creates a new file mirror using the specified base directory,
// creating it if it doesn't exist.
func NewFileMirror(baseDir string, log *slog.Logger) (*FileMirror, error) {
	attachmentDir := filepath.Join(baseDir, "attachments")
	if err := os.MkdirAll(attachmentDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create attachments directory: %w", err)
	}

	return &FileMirror{
		baseDir:     baseDir,
		log:         log,
		locationURI: fmt.Sprintf("file://%s", baseDir),
	}, nil
}

// PutAt saves data to the file system under the given content identifier.
func (m *FileMirror) PutAt(ctx context.Context, id interfaces.ContentID, data []byte) error {
	filePath := m.getFilePath(id)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	m.log.Debug("Mirrored content to file",
		slog.String("path", filePath),
		slog.Int("size", len(data)))

	return nil
}

// Get retrieves data from the file system by its content identifier.
// Returns ErrContentNotFound if the file doesn't exist.
func (m *FileMirror) Get(ctx context.Context, id interfaces.ContentID) ([]byte, error) {
	filePath := m.getFilePath(id)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, interfaces.ErrContentNotFound
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	m.log.Debug("Fetched content from file",
		slog.String("path", filePath),
		slog.Int("size", len(data)))

	return data, nil
}

// Available checks if the mirror is accessible by verifying the base directory exists.
func (m *FileMirror) Available(ctx context.Context) bool {
	_, err := os.Stat(m.baseDir)
	if err != nil {
		m.log.Debug("File mirror unavailable", "err", err)
		return false
	}
	return true
}

// Name returns a unique identifier for this mirror.
func (m *FileMirror) Name() string {
	return fmt.Sprintf("file-%s", filepath.Base(m.baseDir))
}

// LocationURI returns the URI that identifies this mirror.
func (m *FileMirror) LocationURI() string {
	return m.locationURI
}

func (m *FileMirror) getFilePath(id interfaces.ContentID) string {
	return filepath.Join(m.baseDir, "attachments", id.String())
}
