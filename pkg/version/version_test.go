// SPDX-License-Identifier: MPL-2.0

package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Version
		wantErr bool
	}{
		{name: "two parts", in: "1.2", want: Version{Major: 1, Minor: 2, Patch: -1, Revision: -1}},
		{name: "three parts", in: "1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3, Revision: -1}},
		{name: "four parts", in: "1.2.3.4", want: Version{Major: 1, Minor: 2, Patch: 3, Revision: 4}},
		{name: "leading whitespace", in: " 0.9.1", want: Version{Major: 0, Minor: 9, Patch: 1, Revision: -1}},
		{name: "single part", in: "7", wantErr: true},
		{name: "five parts", in: "1.2.3.4.5", wantErr: true},
		{name: "non-numeric", in: "1.2.x", wantErr: true},
		{name: "negative", in: "1.-2.3", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidVersion", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestString_PreservesArity(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"1.2", "1.2.3", "1.2.3.4"} {
		if got := MustParse(s).String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.2", "1.2.0", 0},
		{"1.2.3", "1.2.3.0", 0},
		{"2.0", "1.9.9", 1},
		{"1.2.3", "1.2.4", -1},
		{"1.2.3.1", "1.2.3", 1},
		{"0.1", "0.2", -1},
	}

	for _, tt := range tests {
		got := MustParse(tt.a).Compare(MustParse(tt.b))
		if got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBump(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		part Part
		want string
	}{
		{"1.2.3", PartMajor, "2.0.0"},
		{"1.2.3", PartMinor, "1.3.0"},
		{"1.2.3", PartPatch, "1.2.4"},
		{"1.2", PartPatch, "1.2.1"},
		{"1.2", PartMajor, "2.0"},
		{"1.2.3.4", PartMinor, "1.3.0.0"},
	}

	for _, tt := range tests {
		got, err := MustParse(tt.in).Bump(tt.part)
		if err != nil {
			t.Fatalf("Bump(%s, %s) error = %v", tt.in, tt.part, err)
		}
		if got.String() != tt.want {
			t.Errorf("Bump(%s, %s) = %s, want %s", tt.in, tt.part, got, tt.want)
		}
	}
}

func TestBump_InvalidPart(t *testing.T) {
	t.Parallel()

	if _, err := MustParse("1.0").Bump("build"); !errors.Is(err, ErrInvalidPart) {
		t.Errorf("Bump with invalid part error = %v, want ErrInvalidPart", err)
	}
}

func TestNewer(t *testing.T) {
	t.Parallel()

	if !MustParse("1.2.4").Newer(MustParse("1.2.3")) {
		t.Error("1.2.4 should be newer than 1.2.3")
	}
	if MustParse("1.2.3").Newer(MustParse("1.2.3")) {
		t.Error("equal versions are not newer")
	}
}

func TestParsePart(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"major", "Minor", "PATCH"} {
		if _, err := ParsePart(s); err != nil {
			t.Errorf("ParsePart(%q) err = %v", s, err)
		}
	}
	if _, err := ParsePart("build"); !errors.Is(err, ErrInvalidPart) {
		t.Errorf("ParsePart(build) err = %v, want ErrInvalidPart", err)
	}
}
