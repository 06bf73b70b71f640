package ports

import "github.com/joaobcpatricio/gotemplate/internal/domain"

type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
