package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/model"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// Build runs a tableau for arg under logicName to termination. It never panics on a
// malformed argument or unregistered logic; it returns an error instead,
// leaving parse-time validation to pkg/parser and pkg/predstore.
func Build(arg predstore.Argument, logicName string, opts Options) (*tableau.Tableau, error) {
	l, ok := logic.Get(logicName)
	if !ok {
		return nil, &UnknownLogicError{Name: logicName}
	}

	tb := tableau.New(arg, logicName)
	if opts.AutoBuildTrunk {
		l.BuildTrunk(tb, tb.RootBranch(), arg)
	}

	helpers := rule.NewHelpers()
	root := l.Rules(helpers)

	var deadline time.Time
	if opts.Timeout > 0 {
		deadline = time.Now().Add(opts.Timeout)
	}

	for {
		if opts.MaxSteps > 0 && tb.Step() >= opts.MaxSteps {
			tb.Premature = true
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			tb.Premature = true
			break
		}
		res, err := Step(tb, root, opts)
		if err != nil {
			return nil, err
		}
		if !res.Applied {
			break
		}
	}

	tb.Finished = true
	tb.Completed = !tb.Premature
	if tb.Completed {
		tb.Valid = tb.AllClosed()
		tb.Invalid = !tb.Valid
	}

	if opts.BuildModels && (tb.Invalid || (tb.Premature && !tb.AllClosed())) {
		for _, b := range tb.OpenBranches() {
			tb.Models = append(tb.Models, model.Extract(tb, l, b))
		}
	}

	return tb, nil
}

// BuildMany builds every (argument, logic) pair concurrently, each worker
// holding private ownership of its own tableau. A single job's error does not cancel its
// siblings; BuildMany returns the first error encountered only after every
// job has finished, alongside whatever results did complete (nil entries
// mark failed jobs).
func BuildMany(ctx context.Context, jobs []Job, opts Options) ([]*tableau.Tableau, error) {
	results := make([]*tableau.Tableau, len(jobs))
	g, _ := errgroup.WithContext(ctx)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			tb, err := Build(j.Argument, j.LogicName, opts)
			if err != nil {
				return err
			}
			results[i] = tb
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

// Job is one unit of BuildMany's work: an argument to build under a named
// logic.
type Job struct {
	Argument  predstore.Argument
	LogicName string
}
