package input

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an input encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatLines Format = "lines"
)

// ParseFormat validates a format name. "yml" and "txt" are accepted as
// aliases; the empty string yields "" so callers can fall back to detection.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "lines", "txt", "text":
		return FormatLines, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the format from the file extension, or fallback when
// the extension is not recognised.
func FormatFromPath(path string, fallback Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt", ".lines":
		return FormatLines
	default:
		return fallback
	}
}
