package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joaobcpatricio/gotemplate/internal/domain"
	"github.com/joaobcpatricio/gotemplate/internal/ports"
)

// Example owns a counter and can display the project configuration.
type Example struct {
	info    ports.ProjectInfo
	counter *domain.Counter
	out     io.Writer
	log     *slog.Logger
}

type ExampleOption func(*Example)

func WithOutput(w io.Writer) ExampleOption {
	return func(e *Example) {
		if w != nil {
			e.out = w
		}
	}
}

func WithOverflowPolicy(p domain.OverflowPolicy) ExampleOption {
	return func(e *Example) {
		e.counter = domain.NewCounterWithPolicy(p)
	}
}

func WithLogger(l *slog.Logger) ExampleOption {
	return func(e *Example) {
		if l != nil {
			e.log = l
		}
	}
}

func NewExample(info ports.ProjectInfo, opts ...ExampleOption) *Example {
	e := &Example{
		info:    info,
		counter: domain.NewCounter(),
		out:     os.Stdout,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Example) CounterAddOne() {
	e.counter.Increment()
	e.log.Debug("counter.increment", "value", e.counter.Value(), "policy", string(e.counter.Policy()))
}

func (e *Example) Counter() uint8 {
	return e.counter.Value()
}

func (e *Example) Reset() {
	e.counter.Reset()
	e.log.Debug("counter.reset")
}

func (e *Example) Policy() domain.OverflowPolicy {
	return e.counter.Policy()
}

// PrintConfigured writes the project name and version, one per line.
func (e *Example) PrintConfigured() error {
	if _, err := fmt.Fprintln(e.out, e.info.Name()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(e.out, e.info.Version())
	return err
}
