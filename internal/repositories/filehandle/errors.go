package filehandle

import "errors"

var (
	// ErrUnsupported is returned when the host has no file picker
	ErrUnsupported = errors.New("file picker not supported")

	// ErrDeclined is returned when the user dismisses the picker
	ErrDeclined = errors.New("file selection declined")

	// ErrNoHandle is returned when writing before a file was chosen
	ErrNoHandle = errors.New("no file handle held")

	// ErrPermissionDenied is returned when write access to the held file is
	// refused; the handle is dropped
	ErrPermissionDenied = errors.New("file permission denied")
)
