// Package profile keeps a candidate's structured resume synchronized
// between remote-fetched data, autofill-derived data and in-progress edits,
// and reconciles them into one document persisted atomically.
package profile

import (
	"errors"
	"sync/atomic"

	"github.com/spigell/recruitmate/internal/editor"
	"github.com/spigell/recruitmate/internal/recruitment"

	"go.uber.org/zap"
)

// ErrBusy rejects a duplicate invocation while a prior remote call of the
// same kind is still in flight.
var ErrBusy = errors.New("operation already in flight")

// Gateway is the remote boundary the reconciler persists through.
type Gateway interface {
	FetchProfile() (*recruitment.ProfileDocument, error)
	ParseResume(file recruitment.FilePart) (*recruitment.ProfileDocument, error)
	CreateProfile(doc *recruitment.ProfileDocument) error
	UpdateProfile(doc *recruitment.ProfileDocument) error
}

// BasicInfo holds the scalar profile fields edited outside the collections.
type BasicInfo struct {
	Name                   string
	LinkedIn               string
	GitHub                 string
	TotalYearsOfExperience string
}

// Reconciler owns the in-memory profile draft for one edit session. All
// mutation is driven by the single interactive thread of control; the
// atomic guards only serialize duplicate submissions of the same operation.
type Reconciler struct {
	gw     Gateway
	logger *zap.Logger

	Basic      BasicInfo
	Skills     []string
	Education  *editor.Editor[recruitment.EducationEntry]
	Experience *editor.Editor[recruitment.ExperienceEntry]
	Projects   *editor.Editor[recruitment.ProjectEntry]

	resumeLink string
	isNew      bool
	dirty      bool

	saving    atomic.Bool
	filling   atomic.Bool
	refreshed bool
}

func New(gw Gateway, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		gw:         gw,
		logger:     logger,
		isNew:      true,
		Education:  editor.New[recruitment.EducationEntry](),
		Experience: editor.New[recruitment.ExperienceEntry](),
		Projects:   editor.New[recruitment.ProjectEntry](),
	}
}

// IsNew reports whether the next Save must create rather than update.
func (r *Reconciler) IsNew() bool { return r.isNew }

// ResumeLink returns the storage link of the last uploaded resume, empty
// when none was ever uploaded.
func (r *Reconciler) ResumeLink() string { return r.resumeLink }

// Dirty reports unsaved edits since the last fetch, autofill or save.
func (r *Reconciler) Dirty() bool { return r.dirty }

// MarkDirty records that the draft diverged from the last synced state.
// The interactive layer calls it after every accepted field edit.
func (r *Reconciler) MarkDirty() { r.dirty = true }

// Fetched reports whether the initial fetch already ran for this session.
func (r *Reconciler) Fetched() bool { return r.refreshed }

// Fetch pulls the stored profile and replaces the whole draft with it. A
// not-found answer is not an error: the draft stays empty and the next
// Save will create the profile.
func (r *Reconciler) Fetch() error {
	doc, err := r.gw.FetchProfile()
	if err != nil {
		if errors.Is(err, recruitment.ErrProfileNotFound) {
			r.logger.Info("no stored profile, starting a new draft")
			r.isNew = true
			r.refreshed = true
			return nil
		}
		return err
	}

	r.isNew = false
	r.refreshed = true
	r.applyBasic(&doc.ParsedResume)
	r.Education.Load(doc.ParsedResume.Education)
	r.Experience.Load(doc.ParsedResume.Experience)
	r.Projects.Load(doc.ParsedResume.Projects)
	r.resumeLink = doc.ResumeLink
	r.dirty = false

	r.logger.Info("loaded stored profile",
		zap.Int("education", r.Education.Len()),
		zap.Int("experience", r.Experience.Len()),
		zap.Int("projects", r.Projects.Len()),
	)

	return nil
}

// Autofill sends a resume document to the backend parser and overwrites
// the draft with whatever sections it returns. Sections missing from the
// answer keep their current contents. Unsaved edits to replaced sections
// are discarded: last write wins in this single-session model.
func (r *Reconciler) Autofill(file recruitment.FilePart) error {
	if !r.filling.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer r.filling.Store(false)

	if len(file.Content) == 0 {
		return &recruitment.ValidationError{Field: "resume file", Reason: "document is empty"}
	}

	doc, err := r.gw.ParseResume(file)
	if err != nil {
		return err
	}

	r.applyBasic(&doc.ParsedResume)
	if len(doc.ParsedResume.Education) > 0 {
		r.Education.Load(doc.ParsedResume.Education)
	}
	if len(doc.ParsedResume.Experience) > 0 {
		r.Experience.Load(doc.ParsedResume.Experience)
	}
	if len(doc.ParsedResume.Projects) > 0 {
		r.Projects.Load(doc.ParsedResume.Projects)
	}
	if doc.ResumeLink != "" {
		r.resumeLink = doc.ResumeLink
	}
	r.dirty = false

	r.logger.Info("autofilled profile from resume", zap.String("file", file.Name))

	return nil
}

// Save assembles the full document and persists it, creating on the first
// save of a new profile and updating afterwards. On failure the draft is
// left untouched so the user can correct and resubmit.
func (r *Reconciler) Save() error {
	if !r.saving.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer r.saving.Store(false)

	doc := r.Document()

	var err error
	if r.isNew {
		err = r.gw.CreateProfile(doc)
	} else {
		err = r.gw.UpdateProfile(doc)
	}
	if err != nil {
		return err
	}

	r.isNew = false
	r.dirty = false

	r.logger.Info("profile saved",
		zap.Int("education", r.Education.Len()),
		zap.Int("experience", r.Experience.Len()),
		zap.Int("projects", r.Projects.Len()),
	)

	return nil
}

// Document snapshots the draft in the platform wire shape, with collection
// order derived from the editors' current positional order.
func (r *Reconciler) Document() *recruitment.ProfileDocument {
	return &recruitment.ProfileDocument{
		ParsedResume: recruitment.ParsedResume{
			Name:                   r.Basic.Name,
			LinkedIn:               r.Basic.LinkedIn,
			GitHub:                 r.Basic.GitHub,
			TotalYearsOfExperience: r.Basic.TotalYearsOfExperience,
			Skills:                 r.Skills,
			Education:              r.Education.Values(),
			Experience:             r.Experience.Values(),
			Projects:               r.Projects.Values(),
		},
		ResumeLink: r.resumeLink,
	}
}

func (r *Reconciler) applyBasic(resume *recruitment.ParsedResume) {
	r.Basic = BasicInfo{
		Name:                   resume.Name,
		LinkedIn:               resume.LinkedIn,
		GitHub:                 resume.GitHub,
		TotalYearsOfExperience: resume.TotalYearsOfExperience,
	}
	r.Skills = resume.Skills
}
