package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cran-packages/internal/shared"
	"cran-packages/internal/types"
)

var (
	// specifierName matches the leading package name of a CRAN
	// dependency specifier (word characters, underscore, or dash).
	specifierName = regexp.MustCompile(`^[\w-]+`)

	// specifierClause captures everything between the first opening
	// and the last closing parenthesis.
	specifierClause = regexp.MustCompile(`\((.*)\)`)

	// clauseBound extracts the operator and version from a clause
	// like `>= 2.15.0` or `== 1.1.0`.
	clauseBound = regexp.MustCompile(`(>=|==)\s*([\d.\-]+)`)
)

// ParseSpecifier converts one raw CRAN dependency specifier (an entry
// of an Imports or Depends list) into a normalized host constraint.
// A specifier without an extractable leading name is an internal
// inconsistency and aborts reconciliation for the package.
func ParseSpecifier(raw string, source string) (types.Constraint, error) {
	raw = strings.TrimSpace(raw)
	name := specifierName.FindString(raw)
	if name == "" {
		return types.Constraint{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("unable to find package name in %q", raw))
	}

	constraint := types.Constraint{
		Name:   shared.NormalizeRName(name),
		Op:     types.ConstraintOpNone,
		Source: source,
	}

	clause := specifierClause.FindStringSubmatch(raw)
	if clause == nil {
		return constraint, nil
	}
	bound := clauseBound.FindStringSubmatch(clause[1])
	if bound == nil {
		return types.Constraint{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("unsupported version clause %q in %q", clause[1], raw))
	}
	constraint.Op = types.ConstraintOp(bound[1])
	constraint.Version = bound[2]
	return constraint, nil
}

// ConstraintRange translates a normalized constraint into the host's
// range model: `>=` becomes an open-ended lower bound, `==` an exact
// pin, and no operator accepts any version.
func ConstraintRange(constraint types.Constraint) Range {
	switch constraint.Op {
	case types.ConstraintOpGte:
		return Range{Min: constraint.Version}
	case types.ConstraintOpEq:
		return Range{Min: constraint.Version, Max: constraint.Version}
	default:
		return Range{}
	}
}
