// SPDX-License-Identifier: MPL-2.0

package isolate

import "testing"

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "hi\n", want: []string{"hi"}},
		{name: "trailing whitespace trimmed", in: "hi   \t\n", want: []string{"hi"}},
		{name: "crlf", in: "one\r\ntwo\r\n", want: []string{"one", "two"}},
		{name: "blank lines dropped", in: "one\n\n   \ntwo\n", want: []string{"one", "two"}},
		{name: "order preserved", in: "c\na\nb\n", want: []string{"c", "a", "b"}},
		{name: "leading whitespace kept", in: "  indented\n", want: []string{"  indented"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := splitLines(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("splitLines(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResultSuccess(t *testing.T) {
	t.Parallel()

	if !(&Result{}).Success() {
		t.Error("zero result should be a success")
	}
	if (&Result{ExitCode: 1}).Success() {
		t.Error("non-zero exit is not a success")
	}
	if (&Result{Errors: []string{"boom"}}).Success() {
		t.Error("stderr output is not a success")
	}
}
