package usecase

import (
	"log/slog"

	"github.com/joaobcpatricio/gotemplate/internal/domain"
	"github.com/joaobcpatricio/gotemplate/internal/ports"
)

// ResolveConfig finds gotemplate.yaml above a directory and loads it. A
// missing or unreadable file is not an error: defaults are returned instead
// and a broken file is reported as a warning.
type ResolveConfig struct {
	locator ports.WorkspaceLocator
	loader  ports.ConfigLoader
	log     *slog.Logger
}

func NewResolveConfig(locator ports.WorkspaceLocator, loader ports.ConfigLoader, log *slog.Logger) *ResolveConfig {
	if log == nil {
		log = slog.Default()
	}
	return &ResolveConfig{locator: locator, loader: loader, log: log}
}

func (uc *ResolveConfig) Execute(startDir string) (domain.Config, error) {
	root, err := uc.locator.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			uc.log.Debug("config.defaults", "start", startDir)
			return domain.DefaultConfig(), nil
		}
		return domain.DefaultConfig(), err
	}

	cfg, err := uc.loader.LoadConfig(root)
	if err != nil {
		uc.log.Warn("config.ignored", "root", root, "err", err)
		return domain.DefaultConfig(), nil
	}
	uc.log.Debug("config.loaded", "root", root, "overflow", string(cfg.Counter.Overflow))
	return cfg, nil
}
