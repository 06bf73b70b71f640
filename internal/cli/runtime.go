package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joaobcpatricio/gotemplate/internal/buildinfo"
	"github.com/joaobcpatricio/gotemplate/internal/domain"
	"github.com/joaobcpatricio/gotemplate/internal/infra/logger"
	"github.com/joaobcpatricio/gotemplate/internal/infra/workspacefinder"
	"github.com/joaobcpatricio/gotemplate/internal/ports"
	"github.com/joaobcpatricio/gotemplate/internal/usecase"
)

type runtimeCtx struct {
	info ports.ProjectInfo
	cfg  domain.Config
	log  *slog.Logger

	// --debug or logging.debug from the config file.
	debug bool

	cleanup func() error
}

func (rt *runtimeCtx) Close() {
	if rt.cleanup != nil {
		_ = rt.cleanup()
	}
}

func loadRuntime(cmd *cobra.Command, flags *rootFlags) (*runtimeCtx, error) {
	cfg, err := resolveConfig(flags.config)
	if err != nil {
		return nil, err
	}

	debug := flags.debug || cfg.Logging.Debug
	cleanup, err := logger.Setup(logger.Config{
		Out:   cmd.ErrOrStderr(),
		Debug: debug,
	})
	if err != nil {
		return nil, err
	}

	log := logger.L()
	log.Debug("runtime.ready",
		"command", cmd.Name(),
		"project", buildinfo.Name(),
		"version", buildinfo.Version(),
		"overflow", string(cfg.Counter.Overflow),
	)

	return &runtimeCtx{
		info:    buildinfo.Project(),
		cfg:     cfg,
		log:     log,
		debug:   debug,
		cleanup: cleanup,
	}, nil
}

func resolveConfig(configFlag string) (domain.Config, error) {
	p := strings.TrimSpace(configFlag)
	if p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return domain.DefaultConfig(), fmt.Errorf("invalid config path: %w", err)
		}
		return workspacefinder.LoadConfigFile(abs)
	}

	wd, err := os.Getwd()
	if err != nil {
		return domain.DefaultConfig(), fmt.Errorf("get working directory: %w", err)
	}

	finder := workspacefinder.NewFinder()
	return usecase.NewResolveConfig(finder, finder, logger.L()).Execute(wd)
}
