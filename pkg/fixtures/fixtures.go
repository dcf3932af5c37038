// Package fixtures holds a process-wide, read-only set of named example
// arguments, embedded from YAML and parsed once at init time into a
// package-level registry. gopkg.in/yaml.v3 is the parser.
package fixtures

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/notation"
	"github.com/owings1/pytableaux/pkg/parser"
	"github.com/owings1/pytableaux/pkg/predstore"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Raw is the on-disk shape of one fixture entry.
type Raw struct {
	Name       string   `yaml:"name"`
	Logic      string   `yaml:"logic"`
	Notation   string   `yaml:"notation"`
	Premises   []string `yaml:"premises"`
	Conclusion string   `yaml:"conclusion"`
	Predicates [][3]int `yaml:"predicates"`
}

// Fixture is a named example argument, parsed and ready to build.
type Fixture struct {
	Name      string
	LogicName string
	Argument  predstore.Argument
	Store     *predstore.Store
}

var (
	mu       sync.RWMutex
	registry map[string]Fixture
)

func init() {
	var raws []Raw
	if err := yaml.Unmarshal(fixturesYAML, &raws); err != nil {
		panic(fmt.Errorf("fixtures: malformed embedded fixtures.yaml: %w", err))
	}

	reg := make(map[string]Fixture, len(raws))
	for _, raw := range raws {
		f, err := build(raw)
		if err != nil {
			panic(fmt.Errorf("fixtures: %s: %w", raw.Name, err))
		}
		reg[raw.Name] = f
	}

	mu.Lock()
	registry = reg
	mu.Unlock()
}

func build(raw Raw) (Fixture, error) {
	n, err := parseNotation(raw.Notation)
	if err != nil {
		return Fixture{}, err
	}

	store := predstore.New()
	for _, triple := range raw.Predicates {
		pred, err := lexicon.NewPredicate(triple[0], triple[1], triple[2])
		if err != nil {
			return Fixture{}, err
		}
		if err := store.Add(pred); err != nil {
			return Fixture{}, err
		}
	}

	conclusion, err := parser.Parse(raw.Conclusion, n, store)
	if err != nil {
		return Fixture{}, fmt.Errorf("conclusion %q: %w", raw.Conclusion, err)
	}
	premises := make([]lexicon.Sentence, 0, len(raw.Premises))
	for _, p := range raw.Premises {
		s, err := parser.Parse(p, n, store)
		if err != nil {
			return Fixture{}, fmt.Errorf("premise %q: %w", p, err)
		}
		premises = append(premises, s)
	}

	return Fixture{
		Name:      raw.Name,
		LogicName: raw.Logic,
		Argument:  predstore.NewArgument(conclusion, premises...),
		Store:     store,
	}, nil
}

func parseNotation(name string) (notation.Notation, error) {
	switch name {
	case "", "standard":
		return notation.Standard, nil
	case "polish":
		return notation.Polish, nil
	default:
		return 0, fmt.Errorf("unknown notation %q", name)
	}
}

// Get returns the named fixture.
func Get(name string) (Fixture, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Names returns every registered fixture name.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
