package uuidutil

import "github.com/google/uuid"

// IsUUIDv4 reports whether s is a well-formed version-4 UUID
// (8-4-4-4-12 hex groups with the version nibble set to 4).
func IsUUIDv4(s string) bool {
	// uuid.Parse also accepts urn: and braced forms; only the canonical
	// 36-char form counts here.
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}
