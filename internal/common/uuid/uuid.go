package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/scoretracker/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Prefixed returns "<prefix>-<uuid>" from the given generator
func Prefixed(gen UUID, prefix string) string {
	if gen == nil {
		gen = New()
	}
	return prefix + "-" + gen.NewUUID()
}
