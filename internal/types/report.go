package types

// Finding is one missing or weaker dependency discovered by the
// reconciler.  Declared is empty for missing dependencies.
type Finding struct {
	Name       string
	Verdict    Verdict
	Required   string
	Declared   string
	Suggestion string
}

type OverrideRecord struct {
	Dependency string
	Action     string
	Reason     string
	Owner      string
}

type ReconcileReport struct {
	Checked    int
	Satisfied  int
	Findings   []Finding
	Overridden []OverrideRecord
}
