// Package binding.go implements key bindings and their dispatch order.
// On a key event the app checks priority app bindings first, then the
// bindings of the focused widget walking up to the root; the first match
// runs its action.

package schirmwerk

// Binding associates a key with an action expression.
type Binding struct {
	Key         string // canonical key name, normalized on registration
	Action      string // action expression, e.g. "app.quit" or "scroll(1)"
	Description string // human readable description for help surfaces
	Show        bool   // whether help surfaces should list the binding
	Priority    bool   // checked before per-widget bindings
}

// NewBinding creates a binding with a normalized key.
func NewBinding(key, action, description string) Binding {
	return Binding{
		Key:         NormalizeKey(key),
		Action:      action,
		Description: description,
		Show:        true,
	}
}

// defaultBindings are the system bindings every app starts with.
func defaultBindings() []Binding {
	quit := NewBinding("ctrl+q", "app.quit", "Quit the application")
	quit.Priority = true
	return []Binding{
		quit,
		NewBinding("tab", "app.focus_next", "Focus the next widget"),
		NewBinding("shift+tab", "app.focus_previous", "Focus the previous widget"),
	}
}

// matchBinding finds the first binding for the key in a binding list.
func matchBinding(bindings []Binding, key string) (Binding, bool) {
	for _, binding := range bindings {
		if binding.Key == key {
			return binding, true
		}
	}
	return Binding{}, false
}
