package ports

// ProjectInfo exposes the build-time project name and version.
type ProjectInfo interface {
	Name() string
	Version() string
}
