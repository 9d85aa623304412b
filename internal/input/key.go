package input

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// KeyFunc returns the comparison key for canonical elements. With fold set,
// string elements compare case-insensitively (Unicode case folding); with
// normalize set, they compare after NFC normalization. Non-string elements
// are compared as-is. The returned function is not safe for concurrent use.
func KeyFunc(fold, normalize bool) func(string) string {
	if !fold && !normalize {
		return func(text string) string { return text }
	}

	caser := cases.Fold()
	return func(text string) string {
		if !strings.HasPrefix(text, `"`) {
			return text
		}
		var s string
		if err := json.Unmarshal([]byte(text), &s); err != nil {
			return text
		}
		if normalize {
			s = norm.NFC.String(s)
		}
		if fold {
			s = caser.String(s)
		}
		key, err := Canonical(s)
		if err != nil {
			return text
		}
		return key
	}
}
