// SPDX-License-Identifier: MPL-2.0

// Package version implements the dotted version numbers used by module
// manifests and package feeds. Versions have two to four numeric parts
// (major.minor[.patch[.revision]]); absent parts compare as zero.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Part identifies which component of a Version a bump targets.
type Part string

const (
	// PartMajor bumps the first component and zeroes the rest.
	PartMajor Part = "major"
	// PartMinor bumps the second component and zeroes the ones below it.
	PartMinor Part = "minor"
	// PartPatch bumps the third component.
	PartPatch Part = "patch"
)

// ParsePart validates a part name, case-insensitively.
func ParsePart(s string) (Part, error) {
	switch part := Part(strings.ToLower(s)); part {
	case PartMajor, PartMinor, PartPatch:
		return part, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPart, s)
	}
}

// ErrInvalidVersion is returned when a version string cannot be parsed.
var ErrInvalidVersion = errors.New("invalid version")

// ErrInvalidPart is returned when a bump targets an unknown part name.
var ErrInvalidPart = errors.New("invalid version part")

// Version is a dotted version number. Revision is -1 when the source
// string had only three parts, and Patch is -1 when it had only two;
// String preserves the original arity.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	Revision int
}

// Parse parses a dotted version string with two to four numeric parts.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 4 {
		return Version{}, fmt.Errorf("%w: %q must have 2-4 parts", ErrInvalidVersion, s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q has non-numeric part %q", ErrInvalidVersion, s, p)
		}
		nums[i] = n
	}

	v := Version{Major: nums[0], Minor: nums[1], Patch: -1, Revision: -1}
	if len(nums) > 2 {
		v.Patch = nums[2]
	}
	if len(nums) > 3 {
		v.Revision = nums[3]
	}
	return v, nil
}

// MustParse parses s and panics on failure. For use in tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the version with the same arity it was parsed with.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d", v.Major, v.Minor)
	if v.Patch >= 0 {
		s += fmt.Sprintf(".%d", v.Patch)
	}
	if v.Revision >= 0 {
		s += fmt.Sprintf(".%d", v.Revision)
	}
	return s
}

// zeroIfAbsent maps the -1 sentinel for an absent part to zero for
// comparison purposes.
func zeroIfAbsent(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Compare returns -1, 0, or 1 depending on whether v is less than, equal
// to, or greater than other. Absent parts compare as zero, so 1.2 == 1.2.0.
func (v Version) Compare(other Version) int {
	pairs := [4][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{zeroIfAbsent(v.Patch), zeroIfAbsent(other.Patch)},
		{zeroIfAbsent(v.Revision), zeroIfAbsent(other.Revision)},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// Newer reports whether v is strictly newer than other.
func (v Version) Newer(other Version) bool {
	return v.Compare(other) > 0
}

// Bump returns a copy of v with the given part incremented and all lower
// parts reset to zero. Bumping the patch of a two-part version promotes
// it to three parts.
func (v Version) Bump(part Part) (Version, error) {
	switch part {
	case PartMajor:
		v.Major++
		v.Minor = 0
		if v.Patch >= 0 {
			v.Patch = 0
		}
		if v.Revision >= 0 {
			v.Revision = 0
		}
	case PartMinor:
		v.Minor++
		if v.Patch >= 0 {
			v.Patch = 0
		}
		if v.Revision >= 0 {
			v.Revision = 0
		}
	case PartPatch:
		if v.Patch < 0 {
			v.Patch = 0
		}
		v.Patch++
		if v.Revision >= 0 {
			v.Revision = 0
		}
	default:
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidPart, part)
	}
	return v, nil
}
