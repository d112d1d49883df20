package matching

import (
	"errors"
	"testing"

	"github.com/spigell/recruitmate/internal/recruitment"

	"go.uber.org/zap"
)

type stubGateway struct {
	results   []recruitment.MatchResult
	err       error
	calls     int
	lastQuery recruitment.MatchQuery

	score      float64
	scoreCalls int

	// findHook runs inside FindMatches, before it returns.
	findHook func()
}

func (s *stubGateway) FindMatches(query recruitment.MatchQuery) ([]recruitment.MatchResult, error) {
	s.calls++
	s.lastQuery = query
	if s.findHook != nil {
		s.findHook()
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func (s *stubGateway) MatchWithJob(_ string, _ recruitment.Strictness) (float64, error) {
	s.scoreCalls++
	return s.score, s.err
}

func TestFindRejectsEmptyJobLinkWithoutDispatch(t *testing.T) {
	gw := &stubGateway{}
	orch := New(gw, zap.NewNop())

	_, err := orch.Find(recruitment.MatchQuery{
		Strictness: recruitment.StrictnessModerate,
	})

	var validation *recruitment.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatalf("expected no dispatch, got %d calls", gw.calls)
	}
}

func TestFindRejectsInvalidStrictness(t *testing.T) {
	gw := &stubGateway{}
	orch := New(gw, zap.NewNop())

	_, err := orch.Find(recruitment.MatchQuery{JobLink: "https://example.com/job"})

	var validation *recruitment.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatalf("expected no dispatch, got %d calls", gw.calls)
	}
}

func TestFindEmptyResultIsSuccess(t *testing.T) {
	gw := &stubGateway{}
	orch := New(gw, zap.NewNop())

	outcome, err := orch.Find(recruitment.MatchQuery{
		JobLink:    "https://example.com/job",
		Strictness: recruitment.StrictnessStrict,
	})
	if err != nil {
		t.Fatalf("empty result must not be an error, got: %v", err)
	}

	if !outcome.Empty() {
		t.Fatalf("expected an empty outcome")
	}
}

func TestFindKeepsBackendOrder(t *testing.T) {
	gw := &stubGateway{results: []recruitment.MatchResult{
		{Score: 91}, {Score: 75}, {Score: 40},
	}}
	orch := New(gw, zap.NewNop())

	outcome, err := orch.Find(recruitment.MatchQuery{
		JobLink:    "https://example.com/job",
		Strictness: recruitment.StrictnessModerate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scores := []int{outcome.Results[0].Score, outcome.Results[1].Score, outcome.Results[2].Score}
	if scores[0] != 91 || scores[1] != 75 || scores[2] != 40 {
		t.Fatalf("result order changed: %v", scores)
	}
}

func TestFindReplacesPreviousOutcome(t *testing.T) {
	gw := &stubGateway{results: []recruitment.MatchResult{{Score: 91}}}
	orch := New(gw, zap.NewNop())

	query := recruitment.MatchQuery{
		JobLink:    "https://example.com/job",
		Strictness: recruitment.StrictnessModerate,
	}

	first, err := orch.Find(query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gw.results = nil
	second, err := orch.Find(query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if orch.Last() != second || orch.Last() == first {
		t.Fatalf("expected the second outcome to replace the first")
	}
}

func TestFindPassesStrictnessThrough(t *testing.T) {
	gw := &stubGateway{}
	orch := New(gw, zap.NewNop())

	for _, strictness := range []recruitment.Strictness{
		recruitment.StrictnessStrict,
		recruitment.StrictnessFlexible,
	} {
		_, err := orch.Find(recruitment.MatchQuery{
			JobLink:    "https://example.com/job",
			Strictness: strictness,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gw.lastQuery.Strictness != strictness {
			t.Fatalf("expected strictness %v, got %v", strictness, gw.lastQuery.Strictness)
		}
	}
}

func TestFindRejectsDuplicateWhileInFlight(t *testing.T) {
	gw := &stubGateway{}
	orch := New(gw, zap.NewNop())

	query := recruitment.MatchQuery{
		JobLink:    "https://example.com/job",
		Strictness: recruitment.StrictnessModerate,
	}

	var inner error
	gw.findHook = func() {
		_, inner = orch.Find(query)
	}

	if _, err := orch.Find(query); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !errors.Is(inner, ErrBusy) {
		t.Fatalf("expected ErrBusy for the duplicate request, got %v", inner)
	}
	if gw.calls != 1 {
		t.Fatalf("expected a single dispatch, got %d", gw.calls)
	}
}

func TestScoreValidatesJobLink(t *testing.T) {
	gw := &stubGateway{}
	orch := New(gw, zap.NewNop())

	_, err := orch.Score("", recruitment.StrictnessModerate)

	var validation *recruitment.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if gw.scoreCalls != 0 {
		t.Fatalf("expected no dispatch")
	}
}
