// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"errors"
	"testing"
)

func TestParseTemplate_PlaceholderOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{name: "simple", template: "{greeting}, {user}!", want: []string{"greeting", "user"}},
		{name: "repeat counts once", template: "{a} {b} {a}", want: []string{"a", "b"}},
		{name: "no placeholders", template: "plain text", want: nil},
		{name: "unmatched brace", template: "set {a} to {b", want: []string{"a"}},
		{name: "empty braces literal", template: "{} {x}", want: []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, names := parseTemplate(tt.template)
			if len(names) != len(tt.want) {
				t.Fatalf("placeholders(%q) = %v, want %v", tt.template, names, tt.want)
			}
			for i := range names {
				if names[i] != tt.want[i] {
					t.Errorf("placeholders(%q)[%d] = %q, want %q", tt.template, i, names[i], tt.want[i])
				}
			}
		})
	}
}

func TestBindNamed(t *testing.T) {
	t.Parallel()

	segs, names := parseTemplate("{greeting}, {user}!")
	msg, params := bindNamed(segs, names, map[string]any{"greeting": "Hello", "user": "World"})

	if msg != "Hello, World!" {
		t.Errorf("message = %q, want %q", msg, "Hello, World!")
	}
	if len(params) != 2 || params[0].Name != "greeting" || params[1].Name != "user" {
		t.Errorf("params = %+v, want greeting then user", params)
	}
}

func TestBindNamed_MissingKeyRendersEmpty(t *testing.T) {
	t.Parallel()

	segs, names := parseTemplate("hello {user}!")
	msg, params := bindNamed(segs, names, map[string]any{})

	if msg != "hello !" {
		t.Errorf("message = %q, want %q", msg, "hello !")
	}
	if v, ok := params[0].Value.(string); !ok || v != "" {
		t.Errorf("missing key bound to %v, want empty string", params[0].Value)
	}
}

func TestBindPositional(t *testing.T) {
	t.Parallel()

	segs, names := parseTemplate("{hello}-{world} number {num} at {time}!")
	msg, params, err := bindPositional(segs, names, []any{"Hello", "World", 1, 1.2})
	if err != nil {
		t.Fatalf("bindPositional error = %v", err)
	}
	if msg != "Hello-World number 1 at 1.2!" {
		t.Errorf("message = %q, want %q", msg, "Hello-World number 1 at 1.2!")
	}
	if len(params) != 4 {
		t.Fatalf("len(params) = %d, want 4", len(params))
	}
	if params[2].Value != 1 {
		t.Errorf("params[2] = %v, want 1", params[2].Value)
	}
}

func TestBindPositional_SurplusValuesAllowed(t *testing.T) {
	t.Parallel()

	segs, names := parseTemplate("{a}")
	msg, _, err := bindPositional(segs, names, []any{"x", "extra"})
	if err != nil {
		t.Fatalf("bindPositional error = %v", err)
	}
	if msg != "x" {
		t.Errorf("message = %q, want %q", msg, "x")
	}
}

func TestBindPositional_NotEnoughValues(t *testing.T) {
	t.Parallel()

	segs, names := parseTemplate("{a} {b} {c}")
	_, _, err := bindPositional(segs, names, []any{"x", "y"})
	if !errors.Is(err, ErrNotEnoughValues) {
		t.Errorf("error = %v, want ErrNotEnoughValues", err)
	}
}

func TestBindPositional_NestedValueRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []any
	}{
		{name: "slice first", values: []any{[]string{"nested"}, "x"}},
		{name: "slice last", values: []any{"x", []int{1, 2}}},
		{name: "array", values: []any{"x", [2]int{1, 2}}},
		{name: "nested any slice", values: []any{[]any{"a"}, "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			segs, names := parseTemplate("{a} {b}")
			_, _, err := bindPositional(segs, names, tt.values)
			if !errors.Is(err, ErrNestedValue) {
				t.Errorf("error = %v, want ErrNestedValue", err)
			}
		})
	}
}

func TestBindPositional_StringIsNotACollection(t *testing.T) {
	t.Parallel()

	segs, names := parseTemplate("{a}")
	_, _, err := bindPositional(segs, names, []any{"plain string"})
	if err != nil {
		t.Errorf("strings must bind as scalars, got error %v", err)
	}
}
