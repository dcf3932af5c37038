package service

// ProveResponse is the Prove API success body.
type ProveResponse struct {
	Result Result     `json:"result"`
	Writer WriterInfo `json:"writer"`
}

// Result carries the outcome of a tableau build plus its serialized tree
// and, when requested and available, extracted counter-models.
type Result struct {
	Valid     bool           `json:"valid"`
	Completed bool           `json:"completed"`
	Premature bool           `json:"premature"`
	Stats     map[string]any `json:"stats"`
	Tree      TreeNode       `json:"tree"`
	Models    []ModelView    `json:"models,omitempty"`
}

// WriterInfo echoes the rendering parameters alongside the rendered output
// as {format, notation, output}.
type WriterInfo struct {
	Format   string `json:"format"`
	Notation string `json:"notation"`
	Output   string `json:"output"`
}

// TreeNode is one structure node in the serialized proof tree.
// Children mirror the branch fork points: a non-branching stretch of a
// branch's nodes collapses into one TreeNode's NodeSegment.
type TreeNode struct {
	ID          int        `json:"id"`
	Step        int        `json:"step"`
	Depth       int        `json:"depth"`
	Left        int        `json:"left"`
	Right       int        `json:"right"`
	Width       int        `json:"width"`
	HasOpen     bool       `json:"has_open"`
	HasClosed   bool       `json:"has_closed"`
	Closed      bool       `json:"closed"`
	Leaf        bool       `json:"leaf"`
	ClosedStep  *int       `json:"closed_step,omitempty"`
	ModelID     *int       `json:"model_id,omitempty"`
	NodeSegment []NodeView `json:"node_segment"`
	Children    []TreeNode `json:"children,omitempty"`
}

// NodeView is one rendered tableau node.
type NodeView struct {
	ID          int     `json:"id"`
	Step        int     `json:"step"`
	Ticked      bool    `json:"ticked"`
	TickStep    *int    `json:"tick_step,omitempty"`
	Sentence    *string `json:"sentence,omitempty"`
	World       *int    `json:"world,omitempty"`
	Designation *bool   `json:"designation,omitempty"`
	Access      *Access `json:"access,omitempty"`
	Flag        string  `json:"flag,omitempty"`
	Ellipsis    bool    `json:"ellipsis,omitempty"`
}

// Access renders an access-relation node's ⟨w1, w2⟩ pair.
type Access struct {
	World1 int `json:"world1"`
	World2 int `json:"world2"`
}

// ModelView is one rendered counter-model.
type ModelView struct {
	ID             int              `json:"id"`
	LogicName      string           `json:"logic_name"`
	IsCounterModel bool             `json:"is_counter_model"`
	Worlds         []int            `json:"worlds,omitempty"`
	Access         map[int][]int    `json:"access,omitempty"`
	Literals       map[int][]string `json:"literals"`
}

// ErrorResponse is the Prove API error body, shaped as
// {errors: {field: message}}.
type ErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

func (e *ErrorResponse) Error() string {
	if len(e.Errors) == 0 {
		return "service: request invalid"
	}
	for field, msg := range e.Errors {
		return "service: " + field + ": " + msg
	}
	return "service: request invalid"
}

func newFieldError(field, message string) *ErrorResponse {
	return &ErrorResponse{Errors: map[string]string{field: message}}
}
