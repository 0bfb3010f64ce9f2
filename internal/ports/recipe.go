package ports

import "cran-packages/internal/types"

type RecipeSourcePort interface {
	Load(path string) (types.Recipe, error)
}
