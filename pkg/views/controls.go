package views

import "github.com/go-drift/bridge/pkg/reactive"

// Button is a tappable button with a label and an action.
//
//	Button{
//	    Label:  "Increment",
//	    Action: views.NewAction(func(*env.Environment) { count.Set(count.Value() + 1) }),
//	}
type Button struct {
	// Label is the text displayed on the button.
	Label string
	// Action is invoked when the button is tapped. May be nil for an
	// inert button.
	Action *Action
	// Disabled disables interaction when true.
	Disabled bool
}

func (Button) Kind() Kind { return KindButton }

// Toggle is an on/off switch bound two-way to a bool cell: the host reflects
// the binding's value and flips it on user interaction.
type Toggle struct {
	// Label is the text displayed next to the switch.
	Label string
	// IsOn is the bound state cell. Shared with the native reactive
	// graph; the view does not own it.
	IsOn *reactive.Binding[bool]
	// Disabled disables interaction when true.
	Disabled bool
}

func (Toggle) Kind() Kind { return KindToggle }

// Text is a static text run.
type Text struct {
	// Content is the displayed string.
	Content string
}

func (Text) Kind() Kind { return KindText }
