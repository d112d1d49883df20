package recruitment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Timeline bounds one work engagement. Both ends are free text, the
// platform does not normalize dates.
type Timeline struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type EducationEntry struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	GPA         string   `json:"GPA"`
	Graduation  string   `json:"graduation"`
	Coursework  []string `json:"coursework"`
}

type ExperienceEntry struct {
	Role          string   `json:"role"`
	Organization  string   `json:"organization"`
	Timeline      Timeline `json:"timeline"`
	Details       []string `json:"details"`
	SkillsRelated []string `json:"skills_related"`
}

type ProjectEntry struct {
	Name          string   `json:"name"`
	SkillsRelated []string `json:"skills_related"`
	Details       []string `json:"details"`
}

// ParsedResume is the structured resume as the platform stores it. The
// field names follow the platform wire format.
type ParsedResume struct {
	Name                   string            `json:"name"`
	LinkedIn               string            `json:"linkedin"`
	GitHub                 string            `json:"github"`
	TotalYearsOfExperience string            `json:"total_years_of_experience"`
	Skills                 []string          `json:"skills"`
	Education              []EducationEntry  `json:"education"`
	Experience             []ExperienceEntry `json:"experience"`
	Projects               []ProjectEntry    `json:"accomplishments_and_projects"`
}

// ProfileDocument pairs a parsed resume with the storage link of the
// uploaded document it was derived from, if any.
type ProfileDocument struct {
	ParsedResume ParsedResume `json:"parsed_resume"`
	ResumeLink   string       `json:"s3_link,omitempty"`
}

// FetchProfile returns the stored profile for the authenticated candidate,
// or ErrProfileNotFound when none exists yet.
func (c *Client) FetchProfile() (*ProfileDocument, error) {
	var raw map[string]any
	if err := c.getJSON(getProfilePath, nil, &raw); err != nil {
		var status *statusError
		if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	doc, err := decodeProfileDocument(raw)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched profile",
		zap.Int("education", len(doc.ParsedResume.Education)),
		zap.Int("experience", len(doc.ParsedResume.Experience)),
		zap.Int("projects", len(doc.ParsedResume.Projects)),
	)

	return doc, nil
}

// ParseResume uploads a resume document to the backend parser and returns
// the derived profile. A ParseError means the document was unreadable.
func (c *Client) ParseResume(file FilePart) (*ProfileDocument, error) {
	if len(file.Content) == 0 {
		return nil, &ValidationError{Field: "resume file", Reason: "document is empty"}
	}

	file.Field = "file"

	var raw map[string]any
	if err := c.postMultipart(parseResumePath, nil, []FilePart{file}, &raw); err != nil {
		var status *statusError
		if errors.As(err, &status) {
			return nil, &ParseError{Detail: status.Detail}
		}
		return nil, err
	}

	return decodeProfileDocument(raw)
}

// CreateProfile stores a first-time profile document.
func (c *Client) CreateProfile(doc *ProfileDocument) error {
	if err := c.postJSON(saveProfilePath, doc, nil); err != nil {
		var status *statusError
		if errors.As(err, &status) {
			return &PersistError{Detail: status.Detail}
		}
		return err
	}

	return nil
}

// UpdateProfile replaces an existing profile document wholesale.
func (c *Client) UpdateProfile(doc *ProfileDocument) error {
	if err := c.putJSON(updateProfilePath, doc, nil); err != nil {
		var status *statusError
		if errors.As(err, &status) {
			return &PersistError{Detail: status.Detail}
		}
		return err
	}

	return nil
}

// decodeProfileDocument converts the loosely-typed payload into the typed
// document. Weak decoding tolerates numeric GPA and experience values.
func decodeProfileDocument(raw map[string]any) (*ProfileDocument, error) {
	var doc ProfileDocument

	cfg := &mapstructure.DecoderConfig{
		Result:           &doc,
		TagName:          "json",
		WeaklyTypedInput: true,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding profile document: %w", err)
	}

	return &doc, nil
}
