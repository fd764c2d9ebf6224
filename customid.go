package interaction

import (
	"strings"

	"github.com/google/uuid"
)

// CustomIDSeparator separates the identifier from the rest of a component's custom ID.
const CustomIDSeparator = ":"

// NewCustomID creates a unique custom ID for a message component or modal.
// The interaction created by the component is routed to the command registered under identifier.
func NewCustomID(identifier string) string {
	return identifier + CustomIDSeparator + uuid.NewString()
}

// SplitCustomID splits the given custom ID into the identifier and the remainder.
// A custom ID without separator is an identifier on its own.
func SplitCustomID(customID string) (string, string) {
	identifier, rest, _ := strings.Cut(customID, CustomIDSeparator)
	return identifier, rest
}
