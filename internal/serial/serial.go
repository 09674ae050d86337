// Package serial encodes key-value mappings to canonical JSON and decodes
// them back.
//
// Canonical output differs from encoding/json in four ways:
//  1. Object keys are sorted by UTF-16 code units (RFC 8785)
//  2. No HTML escaping (< > & are written as-is)
//  3. Strings are NFC normalized
//  4. Only strings, integers, booleans, arrays and objects are accepted;
//     floats, null and strings that are not valid UTF-8 are rejected
//
// Decode accepts the same value space and returns integers as int64, so
// Decode(Encode(m)) equals Normalize(m) for every accepted m.
package serial

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrUnsupported is returned for values outside the canonical value space.
var ErrUnsupported = errors.New("unsupported value")

// Encode produces canonical JSON for m.
func Encode(m map[string]any) ([]byte, error) {
	v, err := Normalize(m)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a JSON object produced by Encode (or any JSON object within
// the same value space).
func Decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode: trailing data after object")
	}

	v, err := fromJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode: top-level value is %T, want object", v)
	}
	return obj, nil
}

// Normalize converts v into the shape Decode returns: every integer becomes
// int64, every slice []any and every map map[string]any.
func Normalize(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null: %w", ErrUnsupported)
	case string:
		if err := checkString(val); err != nil {
			return nil, err
		}
		return val, nil
	case bool, int64:
		return val, nil
	case int:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			if err := checkString(s); err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = s
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			n, err := Normalize(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			if err := checkString(k); err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			n, err := Normalize(elem)
			if err != nil {
				return nil, fmt.Errorf("[%q]: %w", k, err)
			}
			out[k] = n
		}
		return out, nil
	case float32, float64:
		return nil, fmt.Errorf("float %v: %w", val, ErrUnsupported)
	default:
		return nil, fmt.Errorf("type %T: %w", v, ErrUnsupported)
	}
}

func fromJSON(v any) (any, error) {
	switch val := v.(type) {
	case json.Number:
		n, err := strconv.ParseInt(val.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("number %s: %w", val, ErrUnsupported)
		}
		return n, nil
	case []any:
		for i, elem := range val {
			n, err := fromJSON(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			val[i] = n
		}
		return val, nil
	case map[string]any:
		for k, elem := range val {
			n, err := fromJSON(elem)
			if err != nil {
				return nil, fmt.Errorf("[%q]: %w", k, err)
			}
			val[k] = n
		}
		return val, nil
	default:
		return Normalize(val)
	}
}

func encodeValue(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case string:
		return encodeString(buf, val)
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case bool:
		buf.WriteString(strconv.FormatBool(val))
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		buf.WriteByte('{')
		for i, k := range sortedKeys(val) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, k); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
			buf.WriteByte(':')
			if err := encodeValue(buf, val[k]); err != nil {
				return fmt.Errorf("[%q]: %w", k, err)
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("type %T: %w", v, ErrUnsupported)
	}
	return nil
}

func checkString(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("invalid UTF-8 string %q: %w", s, ErrUnsupported)
	}
	return nil
}

// encodeString writes s NFC normalized, escaping only the quote, the
// backslash and control characters below U+0020.
func encodeString(buf *bytes.Buffer, s string) error {
	if err := checkString(s); err != nil {
		return err
	}
	buf.WriteByte('"')
	for _, r := range norm.NFC.String(s) {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
	return nil
}

// sortedKeys returns the keys of m ordered by UTF-16 code units. Plain
// string comparison orders by UTF-8 bytes, which differs for characters
// outside the Basic Multilingual Plane.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
	})
	return keys
}
