// Package service implements the Prove API request/response contract as
// plain JSON-taggable Go types plus the orchestration that turns a request
// into a pkg/engine build: flat, json-tagged request/response structs,
// validated before use, with a handler-calls-core-then-marshals shape.
package service

// ProveRequest is the Prove API request body.
type ProveRequest struct {
	Logic              string       `json:"logic"`
	Argument           ArgumentSpec `json:"argument"`
	Output             OutputSpec   `json:"output"`
	RankOptimizations  *bool        `json:"rank_optimizations,omitempty"`
	GroupOptimizations *bool        `json:"group_optimizations,omitempty"`
	BuildModels        *bool        `json:"build_models,omitempty"`
	MaxSteps           *int         `json:"max_steps,omitempty"`
	WriterRegistry     *string      `json:"writer_registry,omitempty"`
}

// ArgumentSpec is the request's argument sub-object: a conclusion, optional
// premises, the notation they're written in, and an optional predicate
// vocabulary as (index, subscript, arity) triples.
type ArgumentSpec struct {
	Conclusion string   `json:"conclusion"`
	Premises   []string `json:"premises,omitempty"`
	Notation   string   `json:"notation"`
	Predicates [][3]int `json:"predicates,omitempty"`
}

// OutputSpec is the request's rendering sub-object.
type OutputSpec struct {
	Format   string         `json:"format"`
	Notation string         `json:"notation"`
	Options  map[string]any `json:"options,omitempty"`
}
