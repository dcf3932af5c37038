// Package logic defines the Logic/Meta/Model contract and a process-wide
// registry of the concrete logics the per-logic subpackages register into
// via their init() functions: Register/Get by string key, guarded by an
// RWMutex.
package logic

import (
	"fmt"
	"sort"
	"sync"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// TruthValue is one of the (at most four) semantic values a many-valued
// logic's sentences may take: True, False, the paracomplete gap value, and
// the paraconsistent glut value: {T, F, N, B}.
type TruthValue string

const (
	TrueValue  TruthValue = "T"
	FalseValue TruthValue = "F"
	// GapValue names the value a paracomplete logic assigns to a sentence
	// with neither supporting nor refuting evidence.
	GapValue TruthValue = "N"
	// GlutValue names the value a paraconsistent logic assigns to a
	// sentence with both supporting and refuting evidence.
	GlutValue TruthValue = "B"
)

// Meta describes a logic's semantic shape.
type Meta struct {
	Designation       bool
	Modal             bool
	Values            []TruthValue
	DesignatedValues  []TruthValue
	AccessConstraints []string
}

// IsDesignatedValue reports whether v counts as designated under m.
func (m Meta) IsDesignatedValue(v TruthValue) bool {
	for _, d := range m.DesignatedValues {
		if d == v {
			return true
		}
	}
	return false
}

// Model is the truth-functional core a Logic supplies: how each operator
// and quantifier combines values.
type Model interface {
	// TruthFunction evaluates op over the given operand values.
	TruthFunction(op lexicon.Operator, operands ...TruthValue) TruthValue
	// Quantify combines the value set a quantified sentence's instances
	// take (existential: join; universal: meet) into one value.
	Quantify(q lexicon.Quantifier, values []TruthValue) TruthValue
}

// Logic is the tuple of name, Meta, trunk builder, Model, and rule Root.
// Rules is a constructor rather than a static value because rule instances
// close over a *rule.Helpers (quantifier/modal firing bookkeeping) that
// must be fresh per tableau build, never shared process-wide across
// concurrent builds of the same logic.
type Logic struct {
	Name       string
	Meta       Meta
	BuildTrunk func(tb *tableau.Tableau, branch *tableau.Branch, arg predstore.Argument)
	Model      Model
	Rules      func(h *rule.Helpers) *rule.Root
}

var (
	mu       sync.RWMutex
	registry = make(map[string]*Logic)
)

// Register adds l to the registry under l.Name, overwriting any prior
// registration of the same name (subpackage init() functions call this
// exactly once each; a second call is only reachable in tests).
func Register(l *Logic) {
	mu.Lock()
	defer mu.Unlock()
	registry[l.Name] = l
}

// Get returns the logic registered under name.
func Get(name string) (*Logic, bool) {
	mu.RLock()
	defer mu.RUnlock()
	l, ok := registry[name]
	return l, ok
}

// MustGet is Get, panicking if name is unregistered — used by callers that
// have already validated the name (e.g. after Names()).
func MustGet(name string) *Logic {
	l, ok := Get(name)
	if !ok {
		panic(fmt.Sprintf("logic: unregistered logic %q", name))
	}
	return l
}

// Names returns every registered logic name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
