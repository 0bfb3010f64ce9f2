package adapters

import (
	"os"
	"path/filepath"
)

// DescriptionFileName is the fixed relative path of the CRAN metadata
// file inside an unpacked source tree.
const DescriptionFileName = "DESCRIPTION"

type DescriptionFileAdapter struct{}

func NewDescriptionFileAdapter() DescriptionFileAdapter {
	return DescriptionFileAdapter{}
}

// ReadDescription reads the DESCRIPTION file from an unpacked source
// tree.  Read failures propagate unchanged; there is no retry and no
// fallback content.
func (a DescriptionFileAdapter) ReadDescription(sourceDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(sourceDir, DescriptionFileName))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
