package types

// Constraint is one normalized foreign dependency taken from a
// DESCRIPTION Imports or Depends field.  Name is already lowercased and
// prefixed for the host namespace; Source records which field the
// specifier came from.
type Constraint struct {
	Name    string
	Op      ConstraintOp
	Version string
	Source  string
}
