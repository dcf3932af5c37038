package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/owings1/pytableaux/pkg/logic/cpl"
	_ "github.com/owings1/pytableaux/pkg/logic/fde"
	"github.com/owings1/pytableaux/pkg/service"
)

func TestProveModusPonensValid(t *testing.T) {
	svc := service.New(nil)
	req := service.ProveRequest{
		Logic: "CPL",
		Argument: service.ArgumentSpec{
			Conclusion: "b",
			Premises:   []string{"a", "(a>b)"},
			Notation:   "standard",
		},
		Output: service.OutputSpec{Format: "text", Notation: "standard"},
	}
	resp, status, err := svc.Prove(req)
	require.NoError(t, err)
	assert.Equal(t, 200, status)
	assert.True(t, resp.Result.Valid)
	assert.True(t, resp.Result.Completed)
	assert.NotEmpty(t, resp.Writer.Output)
}

func TestProveInvalidArgumentYieldsModels(t *testing.T) {
	svc := service.New(nil)
	req := service.ProveRequest{
		Logic: "FDE",
		Argument: service.ArgumentSpec{
			Conclusion: "AaNa",
			Notation:   "polish",
		},
		Output: service.OutputSpec{Format: "html", Notation: "polish"},
	}
	resp, status, err := svc.Prove(req)
	require.NoError(t, err)
	assert.Equal(t, 200, status)
	assert.False(t, resp.Result.Valid)
	require.NotEmpty(t, resp.Result.Models)
}

func TestProveUnknownLogicIsValidationError(t *testing.T) {
	svc := service.New(nil)
	req := service.ProveRequest{
		Logic:    "NOPE",
		Argument: service.ArgumentSpec{Conclusion: "a", Notation: "standard"},
		Output:   service.OutputSpec{Format: "text", Notation: "standard"},
	}
	_, status, err := svc.Prove(req)
	require.Error(t, err)
	assert.Equal(t, 400, status)
	assert.True(t, service.IsValidationError(err))
}

func TestProveMalformedSentenceIsValidationError(t *testing.T) {
	svc := service.New(nil)
	req := service.ProveRequest{
		Logic:    "CPL",
		Argument: service.ArgumentSpec{Conclusion: "((", Notation: "standard"},
		Output:   service.OutputSpec{Format: "text", Notation: "standard"},
	}
	_, status, err := svc.Prove(req)
	require.Error(t, err)
	assert.Equal(t, 400, status)
}
