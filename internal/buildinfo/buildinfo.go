package buildinfo

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Set with -ldflags "-X github.com/joaobcpatricio/gotemplate/internal/buildinfo.<name>=...".
var (
	version = ""
	Commit  = "none"
	Date    = "unknown"
)

const (
	fallbackName    = "gotemplate"
	fallbackVersion = "dev"
)

//go:embed project.yaml
var projectYAML []byte

type projectFile struct {
	Project struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"project"`
}

// Info is the resolved project identity.
type Info struct {
	name    string
	version string
}

func (i Info) Name() string    { return i.name }
func (i Info) Version() string { return i.version }

var project = sync.OnceValue(func() Info {
	return resolve(projectYAML, version)
})

func resolve(raw []byte, override string) Info {
	info := Info{name: fallbackName, version: fallbackVersion}

	var pf projectFile
	if err := yaml.Unmarshal(raw, &pf); err == nil {
		if n := strings.TrimSpace(pf.Project.Name); n != "" {
			info.name = n
		}
		if v := strings.TrimSpace(pf.Project.Version); v != "" {
			info.version = v
		}
	}

	if v := strings.TrimSpace(override); v != "" {
		info.version = v
	}
	return info
}

// Project returns the project identity, resolved once per process.
func Project() Info {
	return project()
}

func Name() string {
	return project().name
}

func Version() string {
	return project().version
}

func String() string {
	return fmt.Sprintf("%s %s (commit=%s, date=%s)", Name(), Version(), Commit, Date)
}
