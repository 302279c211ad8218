package packet

import (
	"regexp"
	"strings"
)

// markupPattern matches markup-like runs: a complete <...> tag or a
// dangling "<" with everything after it.
var markupPattern = regexp.MustCompile(`<[^>]*>?`)

// SanitizeName strips markup-like substrings from a display name.
// Decoded names may be persisted or echoed to other players, so this is
// part of the decode contract rather than a rendering concern.
func SanitizeName(name string) string {
	name = markupPattern.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, ">", "")
	return strings.TrimSpace(name)
}
