package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joaobcpatricio/gotemplate/internal/domain"
)

// ConfigFileName is the runtime config file searched for by Finder.
const ConfigFileName = "gotemplate.yaml"

// Finder locates the directory holding gotemplate.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to "gotemplate.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindNotFound,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.configFile())
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// LoadConfig loads the config file from root using the finder's file name.
func (f *Finder) LoadConfig(root string) (domain.Config, error) {
	return LoadConfigFile(filepath.Join(root, f.configFile()))
}

func (f *Finder) configFile() string {
	if f.ConfigFile == "" {
		return ConfigFileName
	}
	return f.ConfigFile
}
