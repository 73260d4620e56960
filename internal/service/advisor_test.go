package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flywithpoints/flywithpoints/internal/catalog"
	"github.com/flywithpoints/flywithpoints/internal/engine"
	"github.com/flywithpoints/flywithpoints/internal/llm"
)

type failingProvider struct{}

func (failingProvider) RedemptionAdvice(context.Context, llm.AdviceRequest) (llm.AdviceResponse, error) {
	return llm.AdviceResponse{}, errors.New("provider down")
}

func demoOpportunities(t *testing.T) ([]engine.AwardOpportunity, engine.Summary) {
	t.Helper()
	e := engine.New(catalog.Default())
	balances := []engine.PointBalance{
		{ProgramID: "chase-ur", Balance: 80000},
		{ProgramID: "amex-mr", Balance: 50000},
	}
	opps := e.AwardOpportunities(balances, "Asia")
	return opps, e.Summarize(opps)
}

func TestAdviseHeuristicProvider(t *testing.T) {
	t.Parallel()
	opps, summary := demoOpportunities(t)
	svc := &AdvisorService{Provider: llm.NewGeminiProvider("", "gemini-3-flash-preview")}

	resp := svc.Advise(context.Background(), "Asia", "BOS", opps, summary)
	require.NotEmpty(t, resp.Title)
	require.NotEmpty(t, resp.Summary)
	require.NotEmpty(t, resp.NextSteps)

	// deterministic for identical input
	again := svc.Advise(context.Background(), "Asia", "BOS", opps, summary)
	require.Equal(t, resp, again)
}

func TestAdviseFallsBackOnProviderError(t *testing.T) {
	t.Parallel()
	opps, summary := demoOpportunities(t)
	svc := &AdvisorService{Provider: failingProvider{}}

	resp := svc.Advise(context.Background(), "Asia", "BOS", opps, summary)
	require.Equal(t, "Review your opportunities", resp.Title)
	require.NotEmpty(t, resp.NextSteps)
}

func TestAdviseBoundsPromptSize(t *testing.T) {
	t.Parallel()
	opps, summary := demoOpportunities(t)

	var captured llm.AdviceRequest
	svc := &AdvisorService{Provider: captureProvider{&captured}}
	svc.Advise(context.Background(), "", "", append(opps, opps...), summary)
	require.LessOrEqual(t, len(captured.Opportunities), maxAdviceOpportunities)
}

type captureProvider struct{ req *llm.AdviceRequest }

func (c captureProvider) RedemptionAdvice(_ context.Context, req llm.AdviceRequest) (llm.AdviceResponse, error) {
	*c.req = req
	return llm.AdviceResponse{Title: "ok"}, nil
}
