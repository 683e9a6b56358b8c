package demo

import (
	"fmt"
	"time"
)

// Action is a user or timer event dispatched to the store.
type Action interface {
	Name() string
}

type Toggle struct{}

type SelectOption struct {
	Value string
}

type Press struct{}

type OpenDatePicker struct{}

// ChooseDate closes the date picker. A nil Date means the picker was
// dismissed without a choice.
type ChooseDate struct {
	Date *time.Time
}

type SimulateProgress struct{}

// ProgressTick is delivered once the simulate delay has elapsed.
type ProgressTick struct {
	Generation uint64
}

func (Toggle) Name() string           { return "toggle" }
func (SelectOption) Name() string     { return "select_option" }
func (Press) Name() string            { return "press" }
func (OpenDatePicker) Name() string   { return "open_date_picker" }
func (ChooseDate) Name() string       { return "choose_date" }
func (SimulateProgress) Name() string { return "simulate_progress" }
func (ProgressTick) Name() string     { return "progress_tick" }

// Detail returns a short human-readable payload for a, or "" when the action
// carries none.
func Detail(a Action) string {
	switch a := a.(type) {
	case SelectOption:
		return a.Value
	case ChooseDate:
		if a.Date == nil {
			return "dismissed"
		}
		return a.Date.Format(time.DateOnly)
	case ProgressTick:
		return fmt.Sprintf("generation=%d", a.Generation)
	default:
		return ""
	}
}

// Effect is a side effect requested by the reducer. The view layer executes
// effects; the reducer never does.
type Effect interface {
	effect()
}

// Notify asks for a modal notification.
type Notify struct {
	Title   string
	Message string
}

// Schedule asks for Tick to be dispatched after Delay.
type Schedule struct {
	Delay time.Duration
	Tick  ProgressTick
}

func (Notify) effect()   {}
func (Schedule) effect() {}
