package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cran-packages/internal/core"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	if strings.TrimSpace(req.SourceDir) == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source directory is required")
	}
	description, err := s.Metadata.ReadDescription(req.SourceDir)
	if err != nil {
		return InspectResult{}, err
	}

	var result InspectResult
	scanner := core.NewDescriptionScanner(strings.NewReader(description))
	for scanner.Scan() {
		result.Records = append(result.Records, scanner.Record())
	}
	if err := scanner.Err(); err != nil {
		return InspectResult{}, err
	}
	return result, nil
}
