package demo

import "time"

// Settings tunes the reducer. Location is the zone "today" is computed in.
type Settings struct {
	Step       int
	Delay      time.Duration
	DateFormat string
	Location   *time.Location
}

// DefaultSettings mirrors the configuration defaults.
func DefaultSettings() Settings {
	return Settings{
		Step:       10,
		Delay:      500 * time.Millisecond,
		DateFormat: "02/01/2006",
		Location:   time.Local,
	}
}

const (
	pressTitle = "Button pressed!"
	dateTitle  = "Date selected"
)

// Reduce applies a to s and returns the next state plus any effects.
func Reduce(cfg Settings, s State, a Action) (State, []Effect) {
	switch a := a.(type) {
	case Toggle:
		s.ToggleEnabled = !s.ToggleEnabled
	case SelectOption:
		if _, ok := OptionByValue(a.Value); ok {
			s.SelectedOption = a.Value
		}
	case Press:
		return s, []Effect{Notify{Title: pressTitle}}
	case OpenDatePicker:
		s.DatePickerVisible = true
	case ChooseDate:
		s.DatePickerVisible = false
		if a.Date == nil {
			return s, nil
		}
		s.SelectedDate = DateOnly(*a.Date)
		return s, []Effect{Notify{Title: dateTitle, Message: cfg.formatDate(s.SelectedDate)}}
	case SimulateProgress:
		if !s.CanSimulate() {
			return s, nil
		}
		s.Generation++
		s.ProgressPending = true
		return s, []Effect{Schedule{Delay: cfg.Delay, Tick: ProgressTick{Generation: s.Generation}}}
	case ProgressTick:
		if !s.ProgressPending || a.Generation != s.Generation {
			return s, nil
		}
		s.ProgressPending = false
		s.ProgressPercent = min(MaxProgress, s.ProgressPercent+cfg.Step)
	}
	return s, nil
}

func (cfg Settings) formatDate(t time.Time) string {
	layout := cfg.DateFormat
	if layout == "" {
		layout = time.DateOnly
	}
	return t.Format(layout)
}
