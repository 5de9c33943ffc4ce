// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrNotEnoughValues is returned when positional binding receives fewer
	// values than the template has distinct placeholders.
	ErrNotEnoughValues = errors.New("not enough positional values for template")
	// ErrNestedValue is returned when a positional value is itself an
	// ordered collection; parameters must be flat scalars.
	ErrNestedValue = errors.New("positional values must be flat scalars")
)

// Param is one bound template parameter. The order of a Param slice is
// the first-occurrence order of the placeholders in the template.
type Param struct {
	Name  string
	Value any
}

// segment is one piece of a parsed template. A segment is either literal
// text or a single {name} placeholder.
type segment struct {
	text        string
	placeholder bool
}

// parseTemplate splits a template into literal and placeholder segments
// and returns the distinct placeholder names in first-occurrence order.
// A '{' without a matching '}' is treated as literal text.
func parseTemplate(template string) ([]segment, []string) {
	var (
		segs  []segment
		names []string
		seen  = map[string]bool{}
		lit   strings.Builder
	)

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			lit.WriteString(template[i:])
			break
		}
		open += i
		closing := strings.IndexByte(template[open:], '}')
		if closing < 0 {
			lit.WriteString(template[i:])
			break
		}
		closing += open

		name := template[open+1 : closing]
		if name == "" || strings.ContainsAny(name, "{ ") {
			// Not a placeholder; keep the brace literal and rescan after it.
			lit.WriteString(template[i : open+1])
			i = open + 1
			continue
		}

		lit.WriteString(template[i:open])
		flush()
		segs = append(segs, segment{text: name, placeholder: true})
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		i = closing + 1
	}
	flush()

	return segs, names
}

// bindNamed binds template placeholders from a name→value mapping.
// Missing names render as the empty string. The returned params contain
// exactly the distinct placeholder names in first-occurrence order.
func bindNamed(segs []segment, names []string, values map[string]any) (string, []Param) {
	bound := make(map[string]any, len(names))
	params := make([]Param, 0, len(names))
	for _, name := range names {
		v, ok := values[name]
		if !ok {
			v = ""
		}
		bound[name] = v
		params = append(params, Param{Name: name, Value: v})
	}
	return renderSegments(segs, bound), params
}

// bindPositional binds template placeholders from an ordered value
// sequence. It fails when the sequence is shorter than the distinct
// placeholder count, or when any value is itself an ordered collection.
func bindPositional(segs []segment, names []string, values []any) (string, []Param, error) {
	for i, v := range values {
		if isOrderedCollection(v) {
			return "", nil, fmt.Errorf("%w: value %d is %T", ErrNestedValue, i, v)
		}
	}
	if len(values) < len(names) {
		return "", nil, fmt.Errorf("%w: template has %d placeholders, got %d values",
			ErrNotEnoughValues, len(names), len(values))
	}

	bound := make(map[string]any, len(names))
	params := make([]Param, 0, len(names))
	for i, name := range names {
		bound[name] = values[i]
		params = append(params, Param{Name: name, Value: values[i]})
	}
	return renderSegments(segs, bound), params, nil
}

// renderSegments substitutes bound values into the parsed template.
func renderSegments(segs []segment, bound map[string]any) string {
	var b strings.Builder
	for _, seg := range segs {
		if !seg.placeholder {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(formatValue(bound[seg.text]))
	}
	return b.String()
}

// formatValue renders a bound value the way it appears in the message.
func formatValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// isOrderedCollection reports whether v is a non-string ordered
// collection (slice or array). Strings and byte-like scalars pass.
func isOrderedCollection(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(string); ok {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
