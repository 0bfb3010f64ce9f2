package types

type Ecosystem string

const (
	EcosystemR       Ecosystem = "r"
	EcosystemPython  Ecosystem = "python"
	EcosystemSystem  Ecosystem = "system"
	EcosystemRuntime Ecosystem = "runtime"
)

type DependencyStage string

const (
	StageBuild DependencyStage = "build"
	StageRun   DependencyStage = "run"
	StageTest  DependencyStage = "test"
)

type RecipeKind string

const (
	RecipeKindRecipe RecipeKind = "recipe"
)

type Verdict string

const (
	VerdictSatisfied Verdict = "satisfied"
	VerdictWeaker    Verdict = "weaker"
	VerdictMissing   Verdict = "missing"
)

type ConstraintOp string

const (
	ConstraintOpNone ConstraintOp = ""
	ConstraintOpEq   ConstraintOp = "=="
	ConstraintOpGte  ConstraintOp = ">="
)
