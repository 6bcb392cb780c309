package prompt

// Answers replays a recorded answer set instead of prompting. Confirms fall
// back to the prompt default and multi-selections to nothing when unanswered;
// a single selection has no safe fallback, so an unanswered Select or Input
// fails the run.
type Answers struct {
	Confirms        map[string]bool
	Selections      map[string]string
	MultiSelections map[string][]string
	Inputs          map[string]string

	// Asked records prompt keys in the order they were served.
	Asked []string
}

func (a *Answers) Confirm(key, _ string, defaultYes bool) (bool, error) {
	a.Asked = append(a.Asked, key)
	if answer, ok := a.Confirms[key]; ok {
		return answer, nil
	}
	return defaultYes, nil
}

func (a *Answers) Select(key, title string, options []Option) (string, error) {
	a.Asked = append(a.Asked, key)
	answer, ok := a.Selections[key]
	if !ok {
		return "", &Error{Prompt: title, Message: "no recorded answer for " + key}
	}
	for _, o := range options {
		if o.Value == answer || o.Label == answer {
			return o.Value, nil
		}
	}
	return "", &Error{Prompt: title, Message: "recorded answer " + answer + " is not an offered option"}
}

func (a *Answers) MultiSelect(key, title string, options []Option) ([]string, error) {
	a.Asked = append(a.Asked, key)
	answers := a.MultiSelections[key]
	selected := make([]string, 0, len(answers))
	for _, answer := range answers {
		matched := false
		for _, o := range options {
			if o.Value == answer || o.Label == answer {
				selected = append(selected, o.Value)
				matched = true
				break
			}
		}
		if !matched {
			return nil, &Error{Prompt: title, Message: "recorded answer " + answer + " is not an offered option"}
		}
	}
	return selected, nil
}

func (a *Answers) Input(key, _, placeholder string) (string, error) {
	a.Asked = append(a.Asked, key)
	if answer, ok := a.Inputs[key]; ok {
		return answer, nil
	}
	return placeholder, nil
}
