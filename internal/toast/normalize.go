package toast

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// FallbackMessage is shown when a payload cannot be rendered any other way.
const FallbackMessage = "An error occurred"

// Normalize renders an arbitrary error-like payload as a display string.
// Callers hand it whatever they have: plain strings, error values, decoded
// API responses, or structs. Inspection runs in fixed priority order:
//
//  1. strings pass through verbatim
//  2. HTTP-response-shaped values ("<url - >Error <status>: <message>")
//  3. error values (their Error() text)
//  4. an error, message, or detail member, first non-empty wins
//  5. request-shaped values ("<METHOD> <endpoint> (<status>): <message>")
//  6. compact JSON serialization
//  7. string coercion of scalar values
//  8. FallbackMessage
//
// Normalize is total: it never panics, whatever the payload.
func Normalize(payload any) string {
	if s, ok := payload.(string); ok {
		return s
	}
	return normalizeValue(payload)
}

func normalizeValue(payload any) (msg string) {
	// Inspection walks caller-supplied shapes; anything that blows up in
	// there (hostile Error() methods, unexported fields) degrades to the
	// fallback instead of reaching the caller.
	defer func() {
		if recover() != nil {
			msg = FallbackMessage
		}
	}()

	v := unwrap(reflect.ValueOf(payload))

	if s, ok := responseErrorMessage(v); ok {
		return s
	}

	if err, ok := payload.(error); ok {
		if s := err.Error(); s != "" {
			return s
		}
	}

	if s, ok := memberString(v, "error", "message", "detail"); ok {
		return s
	}

	if s, ok := requestSummary(v); ok {
		return s
	}

	if isObjectLike(v) {
		if s, ok := serializeCompact(payload); ok {
			return s
		}
		return FallbackMessage
	}

	if s := coerceString(v); s != "" {
		return s
	}
	return FallbackMessage
}

// responseErrorMessage renders payloads carrying a nested HTTP response:
// a response member with a status code, an optional request URL under
// response.config.url, and an optional server message under response.data.
// The server-supplied text wins over the payload's own message.
func responseErrorMessage(v reflect.Value) (string, bool) {
	resp, ok := member(v, "response")
	if !ok {
		return "", false
	}

	status, ok := memberText(resp, "status")
	if !ok || status == "" {
		return "", false
	}

	var url string
	if cfg, ok := member(resp, "config"); ok {
		url, _ = memberText(cfg, "url")
	}

	var message string
	if data, ok := member(resp, "data"); ok {
		message, _ = memberString(data, "message", "error", "detail")
	}
	if message == "" {
		message, _ = memberText(v, "message")
	}

	var b strings.Builder
	if url != "" {
		b.WriteString(url)
		b.WriteString(" - ")
	}
	b.WriteString("Error ")
	b.WriteString(status)
	if message != "" {
		b.WriteString(": ")
		b.WriteString(message)
	}
	return b.String(), true
}

// requestSummary renders request-shaped payloads: a method plus at least
// one of endpoint, url, or status. Missing parts are omitted.
func requestSummary(v reflect.Value) (string, bool) {
	method, ok := memberText(v, "method")
	if !ok || method == "" {
		return "", false
	}

	endpoint, _ := memberText(v, "endpoint")
	if endpoint == "" {
		endpoint, _ = memberText(v, "url")
	}
	status, _ := memberText(v, "status")
	if endpoint == "" && status == "" {
		return "", false
	}

	var b strings.Builder
	b.WriteString(strings.ToUpper(method))
	if endpoint != "" {
		b.WriteString(" ")
		b.WriteString(endpoint)
	}
	if status != "" {
		b.WriteString(" (")
		b.WriteString(status)
		b.WriteString(")")
	}
	if message, ok := memberString(v, "message", "error", "detail"); ok {
		b.WriteString(": ")
		b.WriteString(message)
	}
	return b.String(), true
}

// memberString returns the first named member that renders to a non-empty
// string, checked in argument order.
func memberString(v reflect.Value, names ...string) (string, bool) {
	for _, name := range names {
		if s, ok := memberText(v, name); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// memberText looks up a member and renders it as text.
func memberText(v reflect.Value, name string) (string, bool) {
	m, ok := member(v, name)
	if !ok {
		return "", false
	}
	return renderText(m), true
}

// member resolves a named member of a map or struct, case-insensitively.
func member(v reflect.Value, name string) (reflect.Value, bool) {
	if !v.IsValid() {
		return reflect.Value{}, false
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		for _, key := range v.MapKeys() {
			if strings.EqualFold(key.String(), name) {
				m := unwrap(v.MapIndex(key))
				if m.IsValid() {
					return m, true
				}
			}
		}
	case reflect.Struct:
		f := v.FieldByNameFunc(func(field string) bool {
			return strings.EqualFold(field, name)
		})
		if f.IsValid() && f.CanInterface() {
			m := unwrap(f)
			if m.IsValid() {
				return m, true
			}
		}
	}
	return reflect.Value{}, false
}

// renderText renders a member value as text. Only scalar-ish values
// render; containers return empty so they fall through to serialization
// (printing them directly could recurse on self-referential data).
func renderText(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(v.Interface())
	}
	if v.CanInterface() {
		if err, ok := v.Interface().(error); ok {
			return err.Error()
		}
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}
	return ""
}

// unwrap strips interface and pointer indirection, stopping at nil.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// isObjectLike reports whether the value is a composite worth serializing.
func isObjectLike(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// serializeCompact marshals the payload to compact JSON. Failures and
// content-free results (empty objects, cycles) report not-ok.
func serializeCompact(payload any) (string, bool) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", false
	}
	s := string(data)
	switch s {
	case "", "null", "{}", "[]", `""`:
		return "", false
	}
	return s, true
}

// coerceString renders scalar payloads. Invalid values (nil) and
// unprintable kinds yield empty, which the caller turns into the fallback.
func coerceString(v reflect.Value) string {
	return renderText(v)
}
