// Package matching composes match-finding requests and holds the result
// set of the latest query.
package matching

import (
	"errors"
	"sync/atomic"

	"github.com/spigell/recruitmate/internal/recruitment"

	"go.uber.org/zap"
)

// ErrBusy rejects a find request while a prior one is still in flight.
var ErrBusy = errors.New("match request already in flight")

// Gateway is the remote boundary match requests are dispatched through.
type Gateway interface {
	FindMatches(query recruitment.MatchQuery) ([]recruitment.MatchResult, error)
	MatchWithJob(jobLink string, strictness recruitment.Strictness) (float64, error)
}

// Outcome is the result set of one query. An empty list is a successful
// outcome, distinct from a failure.
type Outcome struct {
	Results []recruitment.MatchResult
}

func (o *Outcome) Empty() bool {
	return len(o.Results) == 0
}

type Orchestrator struct {
	gw     Gateway
	logger *zap.Logger

	finding atomic.Bool
	last    *Outcome
}

func New(gw Gateway, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{gw: gw, logger: logger}
}

// Find validates the query, dispatches it and replaces any previously held
// result set. Validation failures are reported before any network call.
func (o *Orchestrator) Find(query recruitment.MatchQuery) (*Outcome, error) {
	if !o.finding.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer o.finding.Store(false)

	if query.JobLink == "" {
		return nil, &recruitment.ValidationError{Field: "job link", Reason: "required field is empty"}
	}
	if !query.Strictness.Valid() {
		return nil, &recruitment.ValidationError{Field: "strictness", Reason: "must be Flexible, Moderate or Strict"}
	}

	results, err := o.gw.FindMatches(query)
	if err != nil {
		return nil, err
	}

	o.last = &Outcome{Results: results}

	o.logger.Info("match request finished",
		zap.String("job_link", query.JobLink),
		zap.Stringer("strictness", query.Strictness),
		zap.Int("uploaded_resumes", len(query.Resumes)),
		zap.Int("matches", len(results)),
	)

	return o.last, nil
}

// Last returns the outcome of the most recent successful query, nil before
// the first one.
func (o *Orchestrator) Last() *Outcome {
	return o.last
}

// Score matches the authenticated candidate against one job posting.
func (o *Orchestrator) Score(jobLink string, strictness recruitment.Strictness) (float64, error) {
	if jobLink == "" {
		return 0, &recruitment.ValidationError{Field: "job link", Reason: "required field is empty"}
	}
	if !strictness.Valid() {
		return 0, &recruitment.ValidationError{Field: "strictness", Reason: "must be Flexible, Moderate or Strict"}
	}

	return o.gw.MatchWithJob(jobLink, strictness)
}
