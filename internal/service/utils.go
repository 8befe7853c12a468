package service

import (
	"strings"

	"github.com/google/uuid"
)

// opaqueKey mints a 32-character opaque secret: a random UUIDv4 uppercased
// with the dashes stripped. Used for both api keys and access token values.
func opaqueKey() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
