package types

type Metadata struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Maintainers []string `yaml:"maintainers,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// DependencyRule is one conditioned dependency declaration.  Rules for
// the same name may appear multiple times with different When guards;
// only rules whose When range contains the recipe's own version are
// active for a given install.
type DependencyRule struct {
	Name string `yaml:"name"`

	// Range constrains the dependency's version using the `lo:hi`
	// syntax.  `1.8:` means 1.8 or newer, `:2.0` means 2.0 or older,
	// a bare `2.5` pins exactly 2.5, empty accepts any version.
	Range string `yaml:"range,omitempty"`

	// When guards the rule with a range over the recipe's own version.
	// Empty means the rule is always active.
	When string `yaml:"when,omitempty"`

	Stages []DependencyStage `yaml:"stages,omitempty"`
}

// FindingOverride suppresses a named reconciliation finding.  CRAN
// metadata is sometimes wrong upstream; an override records who accepted
// the discrepancy and why instead of silently ignoring it.
type FindingOverride struct {
	Dependency string `yaml:"dependency"`
	Action     string `yaml:"action"`
	Reason     string `yaml:"reason"`
	Owner      string `yaml:"owner"`
}

type Recipe struct {
	APIVersion string     `yaml:"api_version"`
	Kind       RecipeKind `yaml:"kind"`
	Metadata   Metadata   `yaml:"metadata"`

	// Cran and Bioc are the upstream identifying tokens; homepage and
	// download URLs are derived from whichever is set.
	Cran string `yaml:"cran,omitempty"`
	Bioc string `yaml:"bioc,omitempty"`

	Dependencies []DependencyRule  `yaml:"dependencies,omitempty"`
	Overrides    []FindingOverride `yaml:"overrides,omitempty"`

	ConfigureArgs []string `yaml:"configure_args,omitempty"`
	ConfigureVars []string `yaml:"configure_vars,omitempty"`
}

// Homepage returns the upstream project page derived from the CRAN or
// Bioconductor token, or empty when neither is set.
func (r Recipe) Homepage() string {
	if r.Cran != "" {
		return "https://cloud.r-project.org/package=" + r.Cran
	}
	if r.Bioc != "" {
		return "https://bioconductor.org/packages/" + r.Bioc
	}
	return ""
}

// SourceURL returns the CRAN source tarball URL for the recipe's
// current version.
func (r Recipe) SourceURL() string {
	if r.Cran == "" {
		return ""
	}
	return "https://cloud.r-project.org/src/contrib/" + r.Cran + "_" + r.Metadata.Version + ".tar.gz"
}

// ListURL returns the CRAN archive listing used to discover older
// versions.
func (r Recipe) ListURL() string {
	if r.Cran == "" {
		return ""
	}
	return "https://cloud.r-project.org/src/contrib/Archive/" + r.Cran + "/"
}

// GitURL returns the Bioconductor git remote, or empty for CRAN-only
// recipes.
func (r Recipe) GitURL() string {
	if r.Bioc == "" {
		return ""
	}
	return "https://git.bioconductor.org/packages/" + r.Bioc
}
