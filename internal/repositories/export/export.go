// Package export writes one-off, full-fidelity copies of a game for the
// user to keep or move between machines.
package export

//go:generate mockgen -package=mocks -destination=mocks/mock_downloader.go github.com/KirkDiggler/scoretracker/internal/repositories/export Downloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/scoretracker/internal/common/clock"
	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/schema"
)

// FilePrefix starts every export and auto-save file name
const FilePrefix = "game-score-tracker"

// Downloader hands a finished file to the user
type Downloader interface {
	Download(ctx context.Context, filename string, data []byte) error
}

// Config holds configuration for the exporter
type Config struct {
	Downloader Downloader
	Clock      clock.Clock
}

// Exporter serializes games to dated files
type Exporter struct {
	downloader Downloader
	clock      clock.Clock
}

// New creates an exporter
func New(cfg *Config) (*Exporter, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Downloader == nil {
		return nil, errors.New("downloader cannot be nil")
	}

	e := &Exporter{downloader: cfg.Downloader, clock: cfg.Clock}
	if e.clock == nil {
		e.clock = &clock.DefaultClock{}
	}
	return e, nil
}

// FileName is the dated name for a file written today (UTC)
func (e *Exporter) FileName() string {
	return FileName(e.clock)
}

// Export encodes the whole state and hands it to the downloader. It returns
// the file name used.
func (e *Exporter) Export(ctx context.Context, state models.GameState) (string, error) {
	data, err := schema.Encode(state)
	if err != nil {
		return "", err
	}

	name := e.FileName()
	if err := e.downloader.Download(ctx, name, data); err != nil {
		return "", fmt.Errorf("failed to export %s: %w", name, err)
	}
	return name, nil
}

// FileName formats game-score-tracker-YYYY-MM-DD.json for the clock's date
func FileName(c clock.Clock) string {
	now := c.Now().UTC()
	return fmt.Sprintf("%s-%s.json", FilePrefix, now.Format("2006-01-02"))
}

// DirConfig holds configuration for the directory downloader
type DirConfig struct {
	Dir string
}

type dirDownloader struct {
	dir string
}

// NewDirDownloader saves downloads into a directory, creating it if needed
func NewDirDownloader(cfg *DirConfig) (*dirDownloader, error) {
	if cfg == nil || cfg.Dir == "" {
		return nil, errors.New("download directory cannot be empty")
	}
	return &dirDownloader{dir: cfg.Dir}, nil
}

func (d *dirDownloader) Download(ctx context.Context, filename string, data []byte) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(d.dir, filepath.Base(filename)), data, 0o644)
}
