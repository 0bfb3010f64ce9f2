package ports

// MetadataPort reads a package's CRAN DESCRIPTION metadata from its
// unpacked source tree.  The read is a scoped acquisition: open, read
// fully, release.
type MetadataPort interface {
	ReadDescription(sourceDir string) (string, error)
}
