package usecase

import (
	"fmt"
	"io"

	"github.com/joaobcpatricio/gotemplate/internal/domain"
)

type DemoOptions struct {
	// Title renders section headings; identity when nil.
	Title func(string) string

	// Used as given for the explicitly constructed pet.
	PetName string
	PetAge  int
}

// RunDemo walks through the weekday enumeration, the shared position and the
// two ways of building a pet, writing each section to w.
func RunDemo(w io.Writer, opts DemoOptions) error {
	title := opts.Title
	if title == nil {
		title = func(s string) string { return s }
	}

	p := &errWriter{w: w}

	p.printf("%s\n", title("Weekdays"))
	for _, d := range domain.Weekdays() {
		p.printf("  %-9s = %d\n", d, d.Int())
	}

	p.printf("\n%s\n", title("Shared position"))
	a, b := domain.Point{}, domain.Point{}
	a.Set(1, 2)
	p.printf("  a.Set(1, 2)  a=%s b=%s\n", a, b)
	b.SetX(5)
	p.printf("  b.SetX(5)    a=%s b=%s\n", a, b)

	p.printf("\n%s\n", title("Pets"))
	for _, pet := range []domain.Pet{domain.NewPet(opts.PetName, opts.PetAge), domain.DefaultPet()} {
		p.printf("  %s (age %d)\n", pet.Name(), pet.Age())
	}

	return p.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (p *errWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
