package uuidutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsUUIDv4(t *testing.T) {
	assert.True(t, IsUUIDv4("f6cf5cd7-6a24-4f4b-9aab-9a3d18a5b4de"))
	assert.True(t, IsUUIDv4(uuid.NewString()))

	// version 1
	assert.False(t, IsUUIDv4("7c9e6679-7425-11d4-a716-446655440000"))
	// nil uuid
	assert.False(t, IsUUIDv4("00000000-0000-0000-0000-000000000000"))
	// non-canonical forms uuid.Parse would otherwise accept
	assert.False(t, IsUUIDv4("{f6cf5cd7-6a24-4f4b-9aab-9a3d18a5b4de}"))
	assert.False(t, IsUUIDv4("urn:uuid:f6cf5cd7-6a24-4f4b-9aab-9a3d18a5b4de"))
	assert.False(t, IsUUIDv4("f6cf5cd76a244f4b9aab9a3d18a5b4de"))

	assert.False(t, IsUUIDv4(""))
	assert.False(t, IsUUIDv4("SAVE10"))
}
