package schirmwerk

import "testing"

func TestParseActionForms(t *testing.T) {
	cases := []struct {
		expr      string
		namespace string
		name      string
		args      []any
	}{
		{"quit", "", "quit", nil},
		{"quit()", "", "quit", nil},
		{"app.quit", "app", "quit", nil},
		{"focused.submit", "focused", "submit", nil},
		{"scroll(1, 'x')", "", "scroll", []any{1, "x"}},
		{"set(true, false, none)", "", "set", []any{true, false, nil}},
		{"move(-2, 3.5)", "", "move", []any{-2, 3.5}},
		{"pick([1, 2], {'a': 1})", "", "pick", []any{[]any{1, 2}, map[string]any{"a": 1}}},
	}
	for _, tc := range cases {
		action, err := ParseAction(tc.expr)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", tc.expr, err)
		}
		if action.Namespace != tc.namespace || action.Name != tc.name {
			t.Errorf("ParseAction(%q) = %s.%s", tc.expr, action.Namespace, action.Name)
		}
		if len(action.Args) != len(tc.args) {
			t.Fatalf("ParseAction(%q) args = %v, want %v", tc.expr, action.Args, tc.args)
		}
		for i := range tc.args {
			if !equalLiteral(action.Args[i], tc.args[i]) {
				t.Errorf("ParseAction(%q) arg %d = %#v, want %#v", tc.expr, i, action.Args[i], tc.args[i])
			}
		}
	}
}

func equalLiteral(a, b any) bool {
	switch bv := b.(type) {
	case []any:
		av, ok := a.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range bv {
			if !equalLiteral(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		av, ok := a.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for key, value := range bv {
			if !equalLiteral(av[key], value) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func TestParseActionErrors(t *testing.T) {
	for _, expr := range []string{"", "bad name()", "x(1,", "x(unquoted)", "x(1))", "9name"} {
		if _, err := ParseAction(expr); err == nil {
			t.Errorf("ParseAction(%q) must fail", expr)
		}
	}
}

func TestKeyNormalization(t *testing.T) {
	cases := map[string]string{
		"ctrl+q":       "ctrl+q",
		"CTRL+Q":       "ctrl+q",
		"shift+ctrl+a": "ctrl+shift+a",
		"Esc":          "escape",
		"return":       "enter",
		"alt+PgUp":     "alt+pageup",
		"meta+x":       "meta+x",
	}
	for input, want := range cases {
		if got := NormalizeKey(input); got != want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNamedKeyTable(t *testing.T) {
	for _, name := range []string{"enter", "escape", "f1", "f24", "pageup", "a", "ctrl+left"} {
		if !IsNamedKey(name) {
			t.Errorf("IsNamedKey(%q) = false", name)
		}
	}
	if IsNamedKey("notakey") {
		t.Error("IsNamedKey must reject unknown multi-rune names")
	}
}
