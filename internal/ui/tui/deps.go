package tui

import (
	"log/slog"

	"github.com/joaobcpatricio/gotemplate/internal/domain"
	"github.com/joaobcpatricio/gotemplate/internal/ports"
)

type Deps struct {
	Project  ports.ProjectInfo
	Overflow domain.OverflowPolicy

	Logger *slog.Logger
	Debug  bool
}
