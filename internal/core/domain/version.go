package domain

import (
	"fmt"
	"regexp"
)

// Version is a parsed semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

var versionRe = regexp.MustCompile(`(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// ParseVersion extracts the first dotted version triple found in s.
// Missing or unparsable components default to 0; a string with no digits
// at all parses as 0.0.0. Callers treat a zero version as "unknown", never
// as a parse error.
func ParseVersion(s string) Version {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}
	}
	return Version{
		Major: atoi(m[1]),
		Minor: atoi(m[2]),
		Patch: atoi(m[3]),
	}
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsZero reports whether v carries no version information.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Patch == 0
}

// Compatible reports whether v satisfies the required version: same major
// and minor, any patch.
func (v Version) Compatible(required Version) bool {
	return v.Major == required.Major && v.Minor == required.Minor
}

// Newer reports whether v is strictly newer than other. Ties are not newer.
func (v Version) Newer(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	return v.Patch > other.Patch
}

// Range is a half-open version window [Min, Max).
type Range struct {
	Min Version
	Max Version
}

// ConstraintFor builds the install window for a required version:
// [required, next minor). An install or upgrade constrained to this range
// can never silently jump a minor version.
func ConstraintFor(required Version) Range {
	return Range{
		Min: required,
		Max: Version{Major: required.Major, Minor: required.Minor + 1},
	}
}

// Contains reports whether v falls inside the window.
func (r Range) Contains(v Version) bool {
	if v.Newer(r.Min) || v == r.Min {
		return r.Max.Newer(v)
	}
	return false
}

// String renders the window as a pip-style requirement specifier,
// e.g. ">=0.10.0,<0.11.0".
func (r Range) String() string {
	return fmt.Sprintf(">=%s,<%s", r.Min, r.Max)
}
