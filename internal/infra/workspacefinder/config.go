package workspacefinder

import (
	"fmt"
	"os"

	"github.com/joaobcpatricio/gotemplate/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfigFile loads an explicit config file and applies defaults.
func LoadConfigFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.GoTemplate.Counter.Overflow != "" {
		p, err := domain.ParseOverflowPolicy(y.GoTemplate.Counter.Overflow)
		if err != nil {
			return domain.DefaultConfig(), &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field counter.overflow: %w", err),
			}
		}
		cfg.Counter.Overflow = p
	}
	if y.GoTemplate.Logging.Debug != nil {
		cfg.Logging.Debug = *y.GoTemplate.Logging.Debug
	}

	return cfg, nil
}

type yamlConfig struct {
	GoTemplate struct {
		Counter struct {
			Overflow string `yaml:"overflow"`
		} `yaml:"counter"`

		Logging struct {
			Debug *bool `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"gotemplate"`
}
