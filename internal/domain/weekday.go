package domain

import (
	"fmt"
	"strings"
)

// Weekday is a day of the week, Sunday first.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// Weekdays returns all seven days in order.
func Weekdays() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// WeekdayFromInt converts 0..6 into a Weekday.
func WeekdayFromInt(n int) (Weekday, error) {
	d := Weekday(n)
	if !d.Valid() {
		return 0, &OpError{
			Op:   "weekday.from_int",
			Kind: KindOutOfRange,
			Err:  fmt.Errorf("weekday %d not in 0..6: %w", n, ErrOutOfRange),
		}
	}
	return d, nil
}

// ParseWeekday matches a day name case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	in := strings.TrimSpace(s)
	for i, name := range weekdayNames {
		if strings.EqualFold(name, in) {
			return Weekday(i), nil
		}
	}
	return 0, &OpError{
		Op:   "weekday.parse",
		Kind: KindNotFound,
		Err:  fmt.Errorf("unknown weekday %q: %w", s, ErrNotFound),
	}
}

func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d Weekday) Int() int {
	return int(d)
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}
