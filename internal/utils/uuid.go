package utils

import "github.com/google/uuid"

// IDGenerator produces new unique identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates time-ordered UUIDv7 identifiers,
// falling back to random UUIDv4 when v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s is a canonical textual UUID.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
