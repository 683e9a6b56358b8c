package demo

import (
	"slices"
	"time"
)

// MaxProgress is the ceiling for State.ProgressPercent.
const MaxProgress = 100

// Option is one entry of the picker.
type Option struct {
	Label string
	Value string
}

var options = []Option{
	{Label: "loona", Value: "LOONA"},
	{Label: "newjeans", Value: "NJS"},
	{Label: "twice", Value: "TWICE"},
}

var rows = []string{"Item 1", "Item 2", "Item 3"}

// Options returns the picker entries in display order.
func Options() []Option { return slices.Clone(options) }

// OptionByValue looks up a picker entry by its value.
func OptionByValue(value string) (Option, bool) {
	for _, o := range options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// OptionIndex returns the position of value in Options, or -1.
func OptionIndex(value string) int {
	return slices.IndexFunc(options, func(o Option) bool { return o.Value == value })
}

// Rows returns the list body. It never depends on state.
func Rows() []string { return slices.Clone(rows) }

// State is the view-local state owned by the root view. It is re-created on
// every mount and never persisted.
type State struct {
	ToggleEnabled     bool
	SelectedOption    string
	ProgressPercent   int
	SelectedDate      time.Time
	DatePickerVisible bool

	// ProgressPending is set while a scheduled increment is outstanding.
	ProgressPending bool
	// Generation identifies the live progress tick; ticks carrying any other
	// value are ignored.
	Generation uint64
}

// NewState returns the state a freshly mounted view starts with.
func NewState(now time.Time) State {
	return State{
		SelectedOption: options[0].Value,
		SelectedDate:   DateOnly(now),
	}
}

// CanSimulate reports whether the simulate trigger is enabled.
func (s State) CanSimulate() bool {
	return s.ProgressPercent < MaxProgress && !s.ProgressPending
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
