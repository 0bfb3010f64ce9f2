package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"cran-packages/internal/types"
)

// Range is an inclusive version interval with optional bounds.  An
// empty bound is unbounded on that side; the zero value accepts any
// version.  Min equal to Max pins an exact version.
type Range struct {
	Min string
	Max string
}

// ParseRange reads the textual `lo:hi` range syntax: `1.8:` (1.8 or
// newer), `:2.0` (2.0 or older), `1.8:2.0`, a bare `2.5` (exactly
// 2.5), or empty (any version).
func ParseRange(text string) Range {
	text = strings.TrimSpace(text)
	if text == "" {
		return Range{}
	}
	lo, hi, bounded := strings.Cut(text, ":")
	if !bounded {
		return Range{Min: text, Max: text}
	}
	return Range{Min: strings.TrimSpace(lo), Max: strings.TrimSpace(hi)}
}

// IsAny reports whether the range accepts every version.
func (r Range) IsAny() bool {
	return r.Min == "" && r.Max == ""
}

// String renders the range back into the `lo:hi` syntax.  The
// any-version range renders as an empty string.
func (r Range) String() string {
	switch {
	case r.IsAny():
		return ""
	case r.Min == r.Max:
		return r.Min
	default:
		return r.Min + ":" + r.Max
	}
}

// Intersect combines two ranges into one that requires satisfying
// both.  The result may be empty (Min above Max); that is left to the
// comparison paths to surface rather than eagerly validated.
func (c *versionCache) Intersect(a Range, b Range) (Range, error) {
	out := a
	if b.Min != "" {
		if out.Min == "" {
			out.Min = b.Min
		} else {
			cmp, err := c.compare(b.Min, out.Min)
			if err != nil {
				return Range{}, err
			}
			if cmp > 0 {
				out.Min = b.Min
			}
		}
	}
	if b.Max != "" {
		if out.Max == "" {
			out.Max = b.Max
		} else {
			cmp, err := c.compare(b.Max, out.Max)
			if err != nil {
				return Range{}, err
			}
			if cmp < 0 {
				out.Max = b.Max
			}
		}
	}
	return out, nil
}

// Contains reports whether a concrete version falls inside the range.
func (c *versionCache) Contains(r Range, version string) (bool, error) {
	if r.Min != "" {
		cmp, err := c.compare(version, r.Min)
		if err != nil {
			return false, err
		}
		if cmp < 0 {
			return false, nil
		}
	}
	if r.Max != "" {
		cmp, err := c.compare(version, r.Max)
		if err != nil {
			return false, err
		}
		if cmp > 0 {
			return false, nil
		}
	}
	return true, nil
}

// Implies reports whether range a accepts a subset of the versions
// range b accepts, i.e. whether a is at least as restrictive as b.
func (c *versionCache) Implies(a Range, b Range) (bool, error) {
	if b.Min != "" {
		if a.Min == "" {
			return false, nil
		}
		cmp, err := c.compare(a.Min, b.Min)
		if err != nil {
			return false, err
		}
		if cmp < 0 {
			return false, nil
		}
	}
	if b.Max != "" {
		if a.Max == "" {
			return false, nil
		}
		cmp, err := c.compare(a.Max, b.Max)
		if err != nil {
			return false, err
		}
		if cmp > 0 {
			return false, nil
		}
	}
	return true, nil
}

// versionCache memoizes parsed version objects to avoid repeated
// parsing during range evaluation.  R and system versions compare
// under Debian version ordering, which accepts R's dotted and dashed
// version strings; Python versions compare under PEP 440.
type versionCache struct {
	eco types.Ecosystem
	deb map[string]debversion.Version
	pep map[string]pep440.Version
}

// newVersionCache creates an empty cache for the given ecosystem.
func newVersionCache(eco types.Ecosystem) *versionCache {
	return &versionCache{
		eco: eco,
		deb: map[string]debversion.Version{},
		pep: map[string]pep440.Version{},
	}
}

// debVersion returns a parsed Debian-ordered version, caching the result.
func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

// pepVersion returns a parsed PEP 440 version, caching the result.
func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

// compare returns -1, 0, or 1 comparing two version strings under the
// cache's ecosystem ordering.
func (c *versionCache) compare(a string, b string) (int, error) {
	switch c.eco {
	case types.EcosystemPython:
		v1, err := c.pepVersion(a)
		if err != nil {
			return 0, invalidVersion(a, err)
		}
		v2, err := c.pepVersion(b)
		if err != nil {
			return 0, invalidVersion(b, err)
		}
		return v1.Compare(v2), nil
	default:
		v1, err := c.debVersion(a)
		if err != nil {
			return 0, invalidVersion(a, err)
		}
		v2, err := c.debVersion(b)
		if err != nil {
			return 0, invalidVersion(b, err)
		}
		return v1.Compare(v2), nil
	}
}

func invalidVersion(value string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid version %q", value)).
		WithCause(err)
}
