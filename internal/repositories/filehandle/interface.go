package filehandle

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/scoretracker/internal/repositories/filehandle Picker
//go:generate mockgen -package=mocks -destination=mocks/mock_handle.go github.com/KirkDiggler/scoretracker/internal/repositories/filehandle Handle
//go:generate mockgen -package=mocks -destination=mocks/mock_writable.go github.com/KirkDiggler/scoretracker/internal/repositories/filehandle Writable

import "context"

// Permission is the access state of a held handle
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionPrompt  Permission = "prompt"
)

// Picker is the host capability for choosing files. Hosts without one
// return ErrUnsupported; a dismissed picker returns ErrDeclined.
type Picker interface {
	// AcquireWritableFile asks for a file to keep saving to
	AcquireWritableFile(ctx context.Context, suggestedName, mimeType string) (Handle, error)

	// OpenFileForRead asks for a file and returns its contents
	OpenFileForRead(ctx context.Context, mimeType string) ([]byte, error)
}

// Handle is a durable reference to a chosen file
type Handle interface {
	Name() string
	QueryPermission(ctx context.Context) (Permission, error)
	RequestPermission(ctx context.Context) (Permission, error)
	CreateWritable(ctx context.Context) (Writable, error)
}

// Writable is a replace-on-close write stream. Nothing is visible in the
// file until Close succeeds; Abort discards the stream.
type Writable interface {
	Write(ctx context.Context, data []byte) error
	Close(ctx context.Context) error
	Abort(ctx context.Context) error
}
