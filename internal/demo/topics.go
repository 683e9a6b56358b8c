package demo

import "slices"

// Topic is one paragraph of the explanatory footer.
type Topic struct {
	Name        string
	Description string
}

var topics = []Topic{
	{"SafeArea", "The screen is laid out inside the terminal's usable area so nothing is drawn under the status or help lines."},
	{"Switch", "An interactive control that alternates between two states. Here it flips a boolean held by the store."},
	{"Store", "All widget state lives in one store. Every change goes through a reducer and the view re-renders from the result."},
	{"List", "The scrollable container around everything on this screen. The rows in the middle are plain strings rendered one per line."},
	{"Spinner", "An activity indicator that animates continuously to show that work is in progress."},
	{"Button", "A pressable control. Pressing it runs the action bound to it, in this case showing an alert."},
	{"Picker", "Selects one value from a short fixed list. Open it, move to an entry or type part of its name, then confirm."},
	{"DatePicker", "Lets you choose a calendar day visually. Dismissing it leaves the previous date in place."},
	{"ProgressBar", "Shows how far a task has got. Simulate progress advances it one step after a short delay until it is full."},
	{"Alert", "A modal notification that blocks the rest of the screen until it is dismissed."},
}

// Topics returns the footer paragraphs in display order.
func Topics() []Topic { return slices.Clone(topics) }
