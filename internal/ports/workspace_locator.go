package ports

// WorkspaceLocator finds the directory holding gotemplate.yaml starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
