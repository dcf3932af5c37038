package predstore

import "github.com/owings1/pytableaux/pkg/lexicon"

// Argument is premises plus a conclusion, with an optional human-readable
// title (used in fixtures and CLI/HTTP output).
type Argument struct {
	Title      string
	Premises   []lexicon.Sentence
	Conclusion lexicon.Sentence
}

// NewArgument constructs an Argument. Premises may be empty (a zero-premise
// argument tests whether the conclusion is a tautology of the target logic).
func NewArgument(conclusion lexicon.Sentence, premises ...lexicon.Sentence) Argument {
	ps := make([]lexicon.Sentence, len(premises))
	copy(ps, premises)
	return Argument{Premises: ps, Conclusion: conclusion}
}

// WithTitle returns a copy of the argument with Title set.
func (a Argument) WithTitle(title string) Argument {
	a.Title = title
	return a
}
