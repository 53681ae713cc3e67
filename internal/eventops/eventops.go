// Package eventops generates identities and display colors for newly created
// events.
package eventops

import (
	"math/rand"

	"github.com/google/uuid"
)

// Palette is the fixed set of event colors. Assignment is uniform-random per
// creation, so back-to-back events may share a color.
var Palette = []string{
	"#1a73e8", // blue
	"#d93025", // red
	"#f9ab00", // yellow
	"#34a853", // green
	"#9334e6", // purple
	"#ea4335", // light red
	"#fbbc04", // amber
	"#0f9d58", // dark green
}

// DefaultColor is used when seed data carries no color of its own.
const DefaultColor = "#1a73e8"

// NewID returns an identifier unique for the lifetime of the session.
func NewID() string {
	return uuid.NewString()
}

// RandomColor picks a palette color uniformly at random.
func RandomColor() string {
	return Palette[rand.Intn(len(Palette))]
}
