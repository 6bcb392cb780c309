package scaffold

// Stylesheet describes an example stylesheet staged for the web experiment.
type Stylesheet struct {
	Source string // file name under the css staging directory
	Target string // file name placed under testing_zone/src/css
}

// Example is one of the offered experiment designs. Token names the staged
// asset files; the extras are applied after the web experiment is scaffolded.
type Example struct {
	Label string // menu label shown to the researcher
	Token string // asset file stem, e.g. example_mains/<token>.js

	PipPackages     []string          // appended to the requirements file
	NpmDependencies map[string]string // pinned into the web experiment's package.json
	Stylesheet      *Stylesheet
}

// Examples lists the offered designs in menu order.
var Examples = []Example{
	{Label: "Blank", Token: "basic"},
	{
		Label: "Double Sweet",
		Token: "double_sweet",
		// SweetBean builds the trial sequence and SweetPea counterbalances it.
		PipPackages: []string{"sweetbean", "sweetpea"},
		NpmDependencies: map[string]string{
			"@jspsych-contrib/plugin-rok": "^1.1.1",
			"jspsych":                     "^7.3.1",
			"sweetbean":                   "^0.0.7",
		},
	},
	{Label: "JsPsych - Stroop", Token: "js_psych_stroop"},
	{Label: "JsPsych - RDK", Token: "js_psych_rdk"},
	{
		Label:       "JsPsych - Bandit",
		Token:       "js_psych_bandit",
		PipPackages: []string{"autora-theorist-rnn-sindy-rl"},
		Stylesheet:  &Stylesheet{Source: "js_psych_bandit.css", Target: "slot-machine.css"},
	},
	{Label: "SuperExperiment", Token: "super_experiment"},
	{Label: "SweetBean", Token: "sweet_bean", PipPackages: []string{"sweetbean"}},
	{Label: "Mathematical Model Discovery", Token: "mathematical_model_discovery"},
}

// BasicExample is the design used outside the interactive menu.
const BasicExample = "basic"

// ExampleByToken looks an example up by its asset token.
func ExampleByToken(token string) (Example, bool) {
	for _, e := range Examples {
		if e.Token == token {
			return e, true
		}
	}
	return Example{}, false
}

// ExampleByLabel looks an example up by its menu label.
func ExampleByLabel(label string) (Example, bool) {
	for _, e := range Examples {
		if e.Label == label {
			return e, true
		}
	}
	return Example{}, false
}

// Tokens lists the asset tokens in menu order.
func Tokens() []string {
	tokens := make([]string, 0, len(Examples))
	for _, e := range Examples {
		tokens = append(tokens, e.Token)
	}
	return tokens
}
