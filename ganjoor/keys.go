package ganjoor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z\d]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Underscore converts a camelCase or PascalCase key to snake_case.
//
//	Underscore("ganjoorMetre")    // "ganjoor_metre"
//	Underscore("mp3FileCheckSum") // "mp3_file_check_sum"
//	Underscore("HTMLText")        // "html_text"
func Underscore(key string) string {
	s := acronymBoundary.ReplaceAllString(key, "${1}_${2}")
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ToLower(s)
}

// NormalizeKeys returns a copy of fields with every key passed through Underscore.
// Values are left untouched; nested objects are normalized when they are hydrated.
// When several keys map to the same snake_case name, a key already in that form
// wins, otherwise the first key in byte order.
func NormalizeKeys(fields map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(fields))
	for snake, sources := range keySources(fields) {
		winner := sources[0]
		if slices.Contains(sources, snake) {
			winner = snake
		}
		out[snake] = fields[winner]
	}
	return out
}

// keySources groups the original keys by their snake_case name, each group sorted.
func keySources(fields map[string]json.RawMessage) map[string][]string {
	sources := make(map[string][]string, len(fields))
	for key := range fields {
		snake := Underscore(key)
		sources[snake] = append(sources[snake], key)
	}
	for _, keys := range sources {
		sort.Strings(keys)
	}
	return sources
}

// keyCollision returns the first snake_case name, in byte order, that more than one
// key maps to, along with those keys.
func keyCollision(fields map[string]json.RawMessage) (string, []string) {
	sources := keySources(fields)
	for _, snake := range slices.Sorted(maps.Keys(sources)) {
		if keys := sources[snake]; len(keys) > 1 {
			return snake, keys
		}
	}
	return "", nil
}

// decoder carries the unknown-key policy into lazily hydrated children.
type decoder struct {
	strict bool
}

// record decodes a remote JSON object into one or more destination structs whose
// json tags use the normalized snake_case names.
func (d decoder) record(data []byte, dests ...any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("expected JSON object, got null")
	}
	normalized := NormalizeKeys(fields)

	if d.strict {
		if snake, keys := keyCollision(fields); snake != "" {
			return fmt.Errorf("field %q given more than once as %q", snake, keys)
		}
		if unknown := unknownKeys(normalized, dests); len(unknown) > 0 {
			return fmt.Errorf("unknown field %q", unknown[0])
		}
	}

	encoded, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	for _, dest := range dests {
		if err := json.Unmarshal(encoded, dest); err != nil {
			return err
		}
	}
	return nil
}

func unknownKeys(fields map[string]json.RawMessage, dests []any) []string {
	known := make(map[string]bool)
	for _, dest := range dests {
		for name := range jsonFieldNames(reflect.TypeOf(dest)) {
			known[name] = true
		}
	}
	var unknown []string
	for key := range fields {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

var fieldNameCache sync.Map // reflect.Type -> map[string]bool

func jsonFieldNames(t reflect.Type) map[string]bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := fieldNameCache.Load(t); ok {
		return cached.(map[string]bool)
	}
	names := make(map[string]bool)
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tag := f.Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			name, _, _ := strings.Cut(tag, ",")
			names[name] = true
		}
	}
	fieldNameCache.Store(t, names)
	return names
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
