// Package prompt abstracts the interactive questions of a generation run.
// The terminal implementation renders charmbracelet forms; the Answers
// implementation replays a recorded answer set for non-interactive runs and
// tests.
package prompt

// Option pairs a display label with the value reported on selection. Label
// and Value differ where the menu shows friendly names for internal tokens.
type Option struct {
	Label string
	Value string
}

// StringOptions builds options whose labels and values are identical.
func StringOptions(values []string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Label: v, Value: v})
	}
	return opts
}

// Prompter asks the questions of a generation run. The key identifies a
// prompt independently of its display title so recorded answer sets can
// address it.
type Prompter interface {
	Confirm(key, title string, defaultYes bool) (bool, error)
	Select(key, title string, options []Option) (string, error)
	MultiSelect(key, title string, options []Option) ([]string, error)
	Input(key, title, placeholder string) (string, error)
}
