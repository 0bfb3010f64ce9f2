package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cran-packages/internal/types"
)

const (
	ActionAccept = "accept"
)

// ApplyOverride applies a recipe override to a reconciliation finding.
// Accepted findings are dropped from the report; the returned record
// keeps who accepted the discrepancy and why.
func ApplyOverride(finding types.Finding, override types.FindingOverride) (types.OverrideRecord, error) {
	record := types.OverrideRecord{
		Dependency: finding.Name,
		Action:     strings.ToLower(override.Action),
		Reason:     override.Reason,
		Owner:      override.Owner,
	}

	switch record.Action {
	case ActionAccept:
		if strings.TrimSpace(override.Reason) == "" {
			return types.OverrideRecord{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("accept override for %s requires a reason", finding.Name))
		}
		return record, nil
	default:
		return types.OverrideRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown override action: %s", override.Action))
	}
}

// EnforceFindings is the strict-mode policy: a report with unsuppressed
// findings fails the check.
func EnforceFindings(report types.ReconcileReport) error {
	if len(report.Findings) == 0 {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("unresolved dependency findings: %d", len(report.Findings)))
}
