package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"cran-packages/internal/policies"
	"cran-packages/internal/shared"
	"cran-packages/internal/types"
)

// dependencyFields are the DESCRIPTION fields that carry dependency
// lists, in the order they are collected.
var dependencyFields = []string{"Imports", "Depends"}

// Reconciler compares the dependencies a package declares in its CRAN
// metadata against the dependency rules declared by its recipe.  It is
// stateless; every call owns its own records and result set.
type Reconciler struct{}

func NewReconciler() Reconciler {
	return Reconciler{}
}

// Reconcile parses DESCRIPTION metadata, normalizes each foreign
// dependency specifier into the host model, merges the recipe rules
// active at the recipe's current version, and reports every foreign
// dependency the recipe under-declares.  Satisfied dependencies
// produce no output.
func (r Reconciler) Reconcile(ctx context.Context, description string, recipe types.Recipe) (types.ReconcileReport, error) {
	foreign, err := collectForeign(description)
	if err != nil {
		return types.ReconcileReport{}, err
	}

	cache := newVersionCache(types.EcosystemR)
	declared, err := activeRules(cache, recipe)
	if err != nil {
		return types.ReconcileReport{}, err
	}

	overrides := map[string]types.FindingOverride{}
	for _, override := range recipe.Overrides {
		overrides[strings.TrimSpace(override.Dependency)] = override
	}

	report := types.ReconcileReport{Checked: len(foreign)}
	names := make([]string, 0, len(foreign))
	for name := range foreign {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		required := ConstraintRange(foreign[name])
		hostRange, ok := declared[name]
		verdict := types.VerdictSatisfied
		if !ok {
			verdict = types.VerdictMissing
		} else {
			implies, err := cache.Implies(hostRange, required)
			if err != nil {
				return types.ReconcileReport{}, err
			}
			if !implies {
				verdict = types.VerdictWeaker
			}
		}
		if verdict == types.VerdictSatisfied {
			report.Satisfied++
			continue
		}

		finding := types.Finding{
			Name:       name,
			Verdict:    verdict,
			Required:   required.String(),
			Suggestion: suggestRule(name, required, recipe.Metadata.Version),
		}
		if ok {
			finding.Declared = hostRange.String()
		}

		if override, found := overrides[name]; found {
			record, err := policies.ApplyOverride(finding, override)
			if err != nil {
				return types.ReconcileReport{}, err
			}
			report.Overridden = append(report.Overridden, record)
			continue
		}

		log.Ctx(ctx).Debug().Msg(finding.Suggestion)
		report.Findings = append(report.Findings, finding)
	}

	log.Ctx(ctx).Debug().
		Int("checked", report.Checked).
		Int("findings", len(report.Findings)).
		Msg("dependency reconciliation completed")
	return report, nil
}

// collectForeign drains one parse pass over the metadata and returns
// the normalized foreign dependencies.  A name appearing more than
// once keeps the later occurrence.
func collectForeign(description string) (map[string]types.Constraint, error) {
	scanner := NewDescriptionScanner(strings.NewReader(description))
	foreign := map[string]types.Constraint{}
	for scanner.Scan() {
		record := scanner.Record()
		for _, field := range dependencyFields {
			value, ok := record.Get(field)
			if !ok {
				continue
			}
			for _, raw := range strings.Split(value, ",") {
				raw = strings.TrimSpace(raw)
				if raw == "" {
					continue
				}
				constraint, err := ParseSpecifier(raw, field)
				if err != nil {
					return nil, err
				}
				foreign[constraint.Name] = constraint
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return foreign, nil
}

// activeRules selects the recipe rules whose when-guard contains the
// recipe's current version and merges active rules for the same name
// by range intersection.  An unsatisfiable intersection is kept as-is;
// the comparison paths surface it when checked.
func activeRules(cache *versionCache, recipe types.Recipe) (map[string]Range, error) {
	merged := map[string]Range{}
	for _, rule := range recipe.Dependencies {
		eco := shared.EcosystemOf(rule.Name)
		if eco != types.EcosystemR && eco != types.EcosystemRuntime {
			continue
		}
		active, err := cache.Contains(ParseRange(rule.When), recipe.Metadata.Version)
		if err != nil {
			return nil, err
		}
		if !active {
			continue
		}
		ruleRange := ParseRange(rule.Range)
		existing, ok := merged[rule.Name]
		if !ok {
			merged[rule.Name] = ruleRange
			continue
		}
		combined, err := cache.Intersect(existing, ruleRange)
		if err != nil {
			return nil, err
		}
		merged[rule.Name] = combined
	}
	return merged, nil
}

// suggestRule formats a ready-to-paste recipe dependency entry for an
// under-declared dependency, guarded from the recipe's current version
// upward and needed at both build and run stages.
func suggestRule(name string, required Range, version string) string {
	entry := fmt.Sprintf("name: %s", name)
	if !required.IsAny() {
		entry += fmt.Sprintf(", range: %q", required.String())
	}
	entry += fmt.Sprintf(", when: %q, stages: [build, run]", version+":")
	return "- {" + entry + "}"
}
