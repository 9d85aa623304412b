package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids yield an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records an error classification under the key "kind".
// Empty kinds yield an empty Attr.
func Kind(kind string) slog.Attr {
	if kind == "" {
		return slog.Attr{}
	}
	return slog.String("kind", kind)
}

// Source records the input origin (file path or "stdin") under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Vote groups scan statistics of a majority vote under the key "vote".
func Vote(total, threshold, scanned, occurrences int, earlyStop, validated bool) slog.Attr {
	return Group("vote",
		slog.Int("total", total),
		slog.Int("threshold", threshold),
		slog.Int("scanned", scanned),
		slog.Int("occurrences", occurrences),
		slog.Bool("early_stop", earlyStop),
		slog.Bool("validated", validated),
	)
}
