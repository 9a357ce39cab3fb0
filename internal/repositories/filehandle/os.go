package filehandle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PromptFunc asks the user for a path. An empty answer means they declined.
type PromptFunc func(ctx context.Context, message, suggested string) (string, error)

// OSConfig holds configuration for the filesystem picker
type OSConfig struct {
	// SavePath is used instead of prompting when set
	SavePath string

	// ImportPath is used instead of prompting when set
	ImportPath string

	// Prompt asks for paths that were not preset; without it, unset paths
	// make the picker unsupported
	Prompt PromptFunc
}

type osPicker struct {
	savePath   string
	importPath string
	prompt     PromptFunc
}

// NewOSPicker creates a picker backed by the local filesystem
func NewOSPicker(cfg *OSConfig) *osPicker {
	p := &osPicker{}
	if cfg != nil {
		p.savePath = cfg.SavePath
		p.importPath = cfg.ImportPath
		p.prompt = cfg.Prompt
	}
	return p
}

func (p *osPicker) AcquireWritableFile(ctx context.Context, suggestedName, mimeType string) (Handle, error) {
	path, err := p.choose(ctx, p.savePath, "Save game to", suggestedName)
	if err != nil {
		return nil, err
	}
	if mimeType == MimeTypeJSON && filepath.Ext(path) == "" {
		path += ".json"
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to use %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	return &osHandle{path: path}, nil
}

func (p *osPicker) OpenFileForRead(ctx context.Context, mimeType string) ([]byte, error) {
	path, err := p.choose(ctx, p.importPath, "Import game from", "")
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (p *osPicker) choose(ctx context.Context, preset, message, suggested string) (string, error) {
	if preset != "" {
		return preset, nil
	}
	if p.prompt == nil {
		return "", ErrUnsupported
	}

	answer, err := p.prompt(ctx, message, suggested)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", ErrDeclined
	}
	return answer, nil
}

// osHandle refers to a path on disk
type osHandle struct {
	path string
}

func (h *osHandle) Name() string {
	return filepath.Base(h.path)
}

// QueryPermission reports whether the file, or its directory when the file
// does not exist yet, is writable
func (h *osHandle) QueryPermission(ctx context.Context) (Permission, error) {
	f, err := os.OpenFile(h.path, os.O_WRONLY, 0)
	if err == nil {
		f.Close()
		return PermissionGranted, nil
	}
	if errors.Is(err, os.ErrPermission) {
		return PermissionDenied, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(h.path), ".perm-*")
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return PermissionDenied, nil
		}
		return "", err
	}
	tmp.Close()
	os.Remove(tmp.Name())
	return PermissionGranted, nil
}

// RequestPermission cannot escalate on a filesystem; it re-queries
func (h *osHandle) RequestPermission(ctx context.Context) (Permission, error) {
	return h.QueryPermission(ctx)
}

func (h *osHandle) CreateWritable(ctx context.Context) (Writable, error) {
	tmp, err := os.CreateTemp(filepath.Dir(h.path), "."+filepath.Base(h.path)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &osWritable{tmp: tmp, path: h.path}, nil
}

// osWritable writes to a temp file that replaces the target on Close
type osWritable struct {
	tmp  *os.File
	path string
	done bool
}

func (w *osWritable) Write(ctx context.Context, data []byte) error {
	if w.done {
		return os.ErrClosed
	}
	_, err := w.tmp.Write(data)
	return err
}

func (w *osWritable) Close(ctx context.Context) error {
	if w.done {
		return os.ErrClosed
	}
	w.done = true

	if err := w.tmp.Sync(); err != nil {
		w.discard()
		return err
	}
	if err := w.tmp.Close(); err != nil {
		os.Remove(w.tmp.Name())
		return err
	}
	if err := os.Chmod(w.tmp.Name(), 0o644); err != nil {
		os.Remove(w.tmp.Name())
		return err
	}
	if err := os.Rename(w.tmp.Name(), w.path); err != nil {
		os.Remove(w.tmp.Name())
		return err
	}
	return nil
}

func (w *osWritable) Abort(ctx context.Context) error {
	if w.done {
		return nil
	}
	w.done = true
	return w.discard()
}

func (w *osWritable) discard() error {
	closeErr := w.tmp.Close()
	if err := os.Remove(w.tmp.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		return closeErr
	}
	return nil
}
