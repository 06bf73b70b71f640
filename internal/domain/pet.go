package domain

// Pet is an immutable name/age record.
type Pet struct {
	name string
	age  int
}

func NewPet(name string, age int) Pet {
	return Pet{name: name, age: age}
}

// DefaultPet returns a pet named "Unknown" aged 0.
func DefaultPet() Pet {
	return Pet{name: "Unknown", age: 0}
}

func (p Pet) Name() string { return p.name }
func (p Pet) Age() int     { return p.age }
