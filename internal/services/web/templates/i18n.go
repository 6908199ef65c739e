package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer provides translated strings for web components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or the formatted key. Keys are format
// strings, so a literal percent sign is written as %%.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		return fmt.Sprintf(keyString, args...)
	}
	return ""
}
