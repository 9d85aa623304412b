package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Decode reads a whole document from r and returns its elements as canonical
// JSON texts. A document that is null (or an empty YAML document) yields a nil
// slice; an empty sequence yields a non-nil empty slice.
func Decode(r io.Reader, f Format) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	case FormatLines:
		return DecodeLines(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// DecodeJSON decodes a JSON array. Invalid UTF-8 is rejected.
func DecodeJSON(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrInvalidInput)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidInput, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after top-level value", ErrInvalidInput)
	}
	return elements(doc)
}

// DecodeYAML decodes a YAML sequence. Only the first document is read.
func DecodeYAML(data []byte) ([]string, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidInput, err)
	}
	return elements(doc)
}

// DecodeLines treats every non-blank line as a string element. Surrounding
// whitespace is trimmed. Lines that are not valid UTF-8 are rejected. On
// success the result is never nil.
func DecodeLines(data []byte) ([]string, error) {
	items := make([]string, 0)
	n := 0
	for line := range strings.Lines(string(data)) {
		n++
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d is not valid UTF-8", ErrInvalidInput, n)
		}
		text, err := Canonical(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		items = append(items, text)
	}
	return items, nil
}

func elements(doc any) ([]string, error) {
	if doc == nil {
		return nil, nil
	}
	seq, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotSequence, doc)
	}
	items := make([]string, len(seq))
	for i, v := range seq {
		text, err := Canonical(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = text
	}
	return items, nil
}

// Canonical returns the canonical JSON text of v: object keys sorted, numbers
// normalised (1.0 and 1 are equal), no HTML escaping, no trailing newline.
func Canonical(v any) (string, error) {
	norm, err := normalize(v)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm); err != nil {
		return "", errors.Join(ErrInvalidInput, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func normalize(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		return normalizeNumber(string(t))
	case int:
		return normalizeNumber(strconv.Itoa(t))
	case int64:
		return normalizeNumber(strconv.FormatInt(t, 10))
	case uint64:
		return normalizeNumber(strconv.FormatUint(t, 10))
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("%w: unsupported number %v", ErrInvalidInput, t)
		}
		return normalizeNumber(strconv.FormatFloat(t, 'g', -1, 64))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	default:
		return v, nil
	}
}

// maxExponent bounds the decimal exponent of a number literal so that
// exact parsing stays cheap.
const maxExponent = 4096

// normalizeNumber returns the exact value of the decimal literal s in one
// spelling: integers as plain digits (1e3, 1000 and 1000.0 are all "1000"),
// other values as the shortest plain decimal (0.50 and 5e-1 are "0.5").
// Precision is never lost, so distinct values keep distinct forms.
func normalizeNumber(s string) (any, error) {
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		exp, err := strconv.Atoi(s[i+1:])
		if err != nil || exp > maxExponent || exp < -maxExponent {
			return nil, fmt.Errorf("%w: number %q out of range", ErrInvalidInput, s)
		}
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: invalid number %q", ErrInvalidInput, s)
	}
	if r.IsInt() {
		return json.Number(r.Num().String()), nil
	}
	return json.Number(r.FloatString(decimalPlaces(r.Denom()))), nil
}

// decimalPlaces returns the number of fractional digits needed to write a
// fraction with denominator d exactly. d has no prime factors other than 2
// and 5 because every value comes from a decimal literal.
func decimalPlaces(d *big.Int) int {
	twos := int(d.TrailingZeroBits())
	q := new(big.Int).Rsh(d, uint(twos))
	five := big.NewInt(5)
	rem := new(big.Int)
	fives := 0
	for q.Cmp(big.NewInt(1)) > 0 {
		q.QuoRem(q, five, rem)
		if rem.Sign() != 0 {
			break
		}
		fives++
	}
	return max(twos, fives)
}

// Display renders a canonical element for people: strings are unquoted,
// everything else is shown as JSON.
func Display(text string) string {
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal([]byte(text), &s); err == nil {
			return s
		}
	}
	return text
}
