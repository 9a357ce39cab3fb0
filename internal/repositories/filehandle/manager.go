package filehandle

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// MimeTypeJSON is the type requested from pickers for game files
const MimeTypeJSON = "application/json"

// Config holds configuration for the handle manager
type Config struct {
	Picker Picker
}

// Manager owns the single file handle of a session and serializes writes to it
type Manager struct {
	picker Picker

	mu     sync.Mutex
	handle Handle
}

// NewManager creates a manager with no handle
func NewManager(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Picker == nil {
		return nil, errors.New("picker cannot be nil")
	}
	return &Manager{picker: cfg.Picker}, nil
}

// Acquire asks the picker for a writable file and holds it on success.
// ErrDeclined and ErrUnsupported leave any current handle untouched.
func (m *Manager) Acquire(ctx context.Context, suggestedName string) (string, error) {
	handle, err := m.picker.AcquireWritableFile(ctx, suggestedName, MimeTypeJSON)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.handle = handle
	m.mu.Unlock()

	return handle.Name(), nil
}

// HasHandle reports whether a file is held
func (m *Manager) HasHandle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handle != nil
}

// Name returns the held file's name, or "" without one
func (m *Manager) Name() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handle == nil {
		return ""
	}
	return m.handle.Name()
}

// Release drops the held handle
func (m *Manager) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handle = nil
}

// Write replaces the held file's contents with data. Permission is checked
// before every write and requested when it has lapsed to prompt; a refusal
// drops the handle and returns ErrPermissionDenied.
func (m *Manager) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle == nil {
		return ErrNoHandle
	}

	if err := m.verifyPermission(ctx); err != nil {
		return err
	}

	w, err := m.handle.CreateWritable(ctx)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", m.handle.Name(), err)
	}

	if err := w.Write(ctx, data); err != nil {
		if abortErr := w.Abort(ctx); abortErr != nil {
			return errors.Join(fmt.Errorf("failed to write %s: %w", m.handle.Name(), err), abortErr)
		}
		return fmt.Errorf("failed to write %s: %w", m.handle.Name(), err)
	}

	if err := w.Close(ctx); err != nil {
		return fmt.Errorf("failed to close %s: %w", m.handle.Name(), err)
	}
	return nil
}

// Read asks the picker for a file to import
func (m *Manager) Read(ctx context.Context) ([]byte, error) {
	return m.picker.OpenFileForRead(ctx, MimeTypeJSON)
}

// verifyPermission must be called with mu held
func (m *Manager) verifyPermission(ctx context.Context) error {
	perm, err := m.handle.QueryPermission(ctx)
	if err != nil {
		return fmt.Errorf("failed to query permission: %w", err)
	}
	if perm == PermissionGranted {
		return nil
	}

	if perm == PermissionPrompt {
		perm, err = m.handle.RequestPermission(ctx)
		if err != nil {
			return fmt.Errorf("failed to request permission: %w", err)
		}
		if perm == PermissionGranted {
			return nil
		}
	}

	m.handle = nil
	return ErrPermissionDenied
}
