package recruitment

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const resumeFilesField = "resume_files"

// Strictness is the match-tolerance level sent to the scoring backend.
type Strictness int

const (
	StrictnessFlexible Strictness = 1
	StrictnessModerate Strictness = 2
	StrictnessStrict   Strictness = 3
)

func (s Strictness) String() string {
	switch s {
	case StrictnessFlexible:
		return "Flexible"
	case StrictnessModerate:
		return "Moderate"
	case StrictnessStrict:
		return "Strict"
	default:
		return fmt.Sprintf("Strictness(%d)", int(s))
	}
}

func (s Strictness) Valid() bool {
	return s >= StrictnessFlexible && s <= StrictnessStrict
}

func ParseStrictness(name string) (Strictness, error) {
	switch name {
	case "Flexible":
		return StrictnessFlexible, nil
	case "Moderate":
		return StrictnessModerate, nil
	case "Strict":
		return StrictnessStrict, nil
	default:
		return 0, fmt.Errorf("unknown strictness: %s", name)
	}
}

// StrictnessNames returns the levels in ascending tolerance order for
// selection menus.
func StrictnessNames() []string {
	return []string{"Flexible", "Moderate", "Strict"}
}

// MatchQuery describes one find-matches request.
type MatchQuery struct {
	JobLink              string
	Strictness           Strictness
	IncludeStoredResumes bool
	Resumes              []FilePart
}

// MatchResult is one scored candidate, as ranked by the backend.
type MatchResult struct {
	Score      int          `json:"match_score"`
	ResumeLink string       `json:"resume_link"`
	Profile    ParsedResume `json:"user_profile"`
}

// MatchWithJob scores the authenticated candidate against a job posting.
func (c *Client) MatchWithJob(jobLink string, strictness Strictness) (float64, error) {
	q := url.Values{}
	q.Set("job_link", jobLink)
	q.Set("match_criteria", strconv.Itoa(int(strictness)))

	var score float64
	if err := c.getJSON(matchWithJobPath, q, &score); err != nil {
		return 0, err
	}

	return score, nil
}

// FindMatches dispatches a recruiter matching request. Uploaded documents
// travel as repeated multipart parts under one shared field name; the rest
// of the query rides in the URL. The returned list keeps the backend's
// descending-score order.
func (c *Client) FindMatches(query MatchQuery) ([]MatchResult, error) {
	q := url.Values{}
	q.Set("job_link", query.JobLink)
	q.Set("match_criteria", strconv.Itoa(int(query.Strictness)))
	q.Set("include_existing_resumes", strconv.FormatBool(query.IncludeStoredResumes))

	files := make([]FilePart, 0, len(query.Resumes))
	for _, f := range query.Resumes {
		f.Field = resumeFilesField
		files = append(files, f)
	}

	var raw []map[string]any
	if err := c.postMultipart(findMatchesPath, q, files, &raw); err != nil {
		return nil, err
	}

	var results []MatchResult
	cfg := &mapstructure.DecoderConfig{
		Result:           &results,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding match results: %w", err)
	}

	c.logger.Debug("got matches", zap.Int("count", len(results)))

	return results, nil
}
