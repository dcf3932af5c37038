package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/owings1/pytableaux/pkg/engine"
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/notation"
	"github.com/owings1/pytableaux/pkg/parser"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/tableau"
	"github.com/owings1/pytableaux/pkg/writer"
)

// Service executes Prove API requests against pkg/engine: a thin struct
// wrapping the library core plus an injected logger, with all validation
// done before the core engine is ever invoked.
type Service struct {
	Logger *slog.Logger
}

// New constructs a Service. A nil logger defaults to a discard logger.
func New(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{Logger: logger}
}

// Prove validates req, builds the tableau, and renders the response.
// statusCode is always one of 200 (success), 400 (malformed request), or
// 408 (the build terminated prematurely, whether by step cap or timeout).
func (s *Service) Prove(req ProveRequest) (*ProveResponse, int, error) {
	if _, ok := logic.Get(req.Logic); !ok {
		return nil, 400, newFieldError("logic", fmt.Sprintf("unknown logic %q", req.Logic))
	}

	argNotation, err := parseNotationName(req.Argument.Notation)
	if err != nil {
		return nil, 400, newFieldError("argument.notation", err.Error())
	}

	store := predstore.New()
	for _, triple := range req.Argument.Predicates {
		pred, err := lexicon.NewPredicate(triple[0], triple[1], triple[2])
		if err != nil {
			return nil, 400, newFieldError("argument.predicates", err.Error())
		}
		if err := store.Add(pred); err != nil {
			return nil, 400, newFieldError("argument.predicates", err.Error())
		}
	}

	conclusion, err := parser.Parse(req.Argument.Conclusion, argNotation, store)
	if err != nil {
		return nil, 400, newFieldError("argument.conclusion", err.Error())
	}
	premises := make([]lexicon.Sentence, 0, len(req.Argument.Premises))
	for i, p := range req.Argument.Premises {
		sent, err := parser.Parse(p, argNotation, store)
		if err != nil {
			return nil, 400, newFieldError(fmt.Sprintf("argument.premises[%d]", i), err.Error())
		}
		premises = append(premises, sent)
	}
	arg := predstore.NewArgument(conclusion, premises...)

	outNotation, err := parseNotationName(req.Output.Notation)
	if err != nil {
		return nil, 400, newFieldError("output.notation", err.Error())
	}
	charset, err := charsetForFormat(req.Output.Format, req.Output.Options)
	if err != nil {
		return nil, 400, newFieldError("output.format", err.Error())
	}
	rs := writer.RenderSet{Notation: outNotation, CharSet: charset}

	opts := engine.DefaultOptions()
	if req.RankOptimizations != nil {
		opts.IsRankOptim = *req.RankOptimizations
	}
	if req.GroupOptimizations != nil {
		opts.IsGroupOptim = *req.GroupOptimizations
	}
	if req.BuildModels != nil {
		opts.BuildModels = *req.BuildModels
	}
	if req.MaxSteps != nil {
		opts.MaxSteps = *req.MaxSteps
	}

	started := time.Now()
	tb, err := engine.Build(arg, req.Logic, opts)
	if err != nil {
		var unk *engine.UnknownLogicError
		if errors.As(err, &unk) {
			return nil, 400, newFieldError("logic", unk.Error())
		}
		return nil, 400, newFieldError("argument", err.Error())
	}
	elapsed := time.Since(started)
	s.Logger.Debug("prove", "logic", req.Logic, "valid", tb.Valid, "steps", tb.Step(), "elapsed", elapsed)

	resp := &ProveResponse{
		Result: Result{
			Valid:     tb.Valid,
			Completed: tb.Completed,
			Premature: tb.Premature,
			Stats: map[string]any{
				"steps":    tb.Step(),
				"branches": len(tb.Branches()),
				"elapsed":  elapsed.String(),
			},
			Tree:   buildTree(tb, rs),
			Models: modelViews(tb),
		},
		Writer: WriterInfo{
			Format:   req.Output.Format,
			Notation: req.Output.Notation,
			Output:   renderOutput(tb, rs, req.Output.Format),
		},
	}

	status := 200
	if tb.Premature {
		status = 408
	}
	return resp, status, nil
}

func parseNotationName(name string) (notation.Notation, error) {
	switch name {
	case "", "standard":
		return notation.Standard, nil
	case "polish":
		return notation.Polish, nil
	default:
		return 0, fmt.Errorf("unknown notation %q", name)
	}
}

func renderOutput(tb *tableau.Tableau, rs writer.RenderSet, format string) string {
	if format != "html" {
		return writer.WriteProof(tb, rs)
	}
	var sb strings.Builder
	if err := writer.HTMLProof(tb, rs).Render(context.Background(), &sb); err != nil {
		return writer.WriteProof(tb, rs)
	}
	return sb.String()
}

func charsetForFormat(format string, options map[string]any) (notation.CharSet, error) {
	switch format {
	case "html":
		return notation.HTML, nil
	case "latex":
		return notation.LaTeX, nil
	case "", "text":
		if options != nil {
			if cs, ok := options["charset"].(string); ok && cs == "unicode" {
				return notation.Unicode, nil
			}
		}
		return notation.ASCII, nil
	default:
		return 0, fmt.Errorf("unknown output format %q", format)
	}
}
