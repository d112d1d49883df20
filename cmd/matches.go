package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spigell/recruitmate/internal/editor"
	"github.com/spigell/recruitmate/internal/matching"
	"github.com/spigell/recruitmate/internal/recruitment"
	"github.com/spigell/recruitmate/internal/session"

	"github.com/manifoldco/promptui"
)

// dashboardScreen is the candidate landing screen: score yourself against
// a job posting, or move on to the profile.
func dashboardScreen(sess *session.Session, matcher *matching.Orchestrator) error {
	prompt := promptui.Select{
		Label: "Candidate Dashboard",
		Items: []string{"Find match score for a job", "My Profile", PromptLogout, PromptExit},
	}

	_, action, err := prompt.Run()
	if err != nil {
		return err
	}

	switch action {
	case "Find match score for a job":
		return selfMatch(matcher)
	case "My Profile":
		sess.NavigateTo(session.ViewCandidateProfile)
	case PromptLogout:
		sess.Logout()
	case PromptExit:
		return errExit
	}

	return nil
}

func selfMatch(matcher *matching.Orchestrator) error {
	jobLink, err := promptOptional("Enter Job Link", "")
	if err != nil {
		return err
	}

	strictness, err := promptStrictness()
	if err != nil {
		return err
	}

	score, err := matcher.Score(jobLink, strictness)
	if err != nil {
		showError(err)
		return nil
	}

	fmt.Printf("Your match score for this job is: %.0f\n", score)

	return nil
}

// matchesScreen is the recruiter landing screen.
func matchesScreen(sess *session.Session, matcher *matching.Orchestrator) error {
	prompt := promptui.Select{
		Label: "Find Matches",
		Items: []string{"New match search", PromptLogout, PromptExit},
	}

	_, action, err := prompt.Run()
	if err != nil {
		return err
	}

	switch action {
	case "New match search":
		return findMatches(matcher)
	case PromptLogout:
		sess.Logout()
	case PromptExit:
		return errExit
	}

	return nil
}

func findMatches(matcher *matching.Orchestrator) error {
	// Presence is checked by the orchestrator before dispatch, so an
	// empty link surfaces as a validation failure without a request.
	jobLink, err := promptOptional("Enter Job Link (required)", "")
	if err != nil {
		return err
	}

	strictness, err := promptStrictness()
	if err != nil {
		return err
	}

	includeStored, err := confirm("Include existing resumes stored in database?")
	if err != nil {
		return err
	}

	files, err := collectResumeFiles()
	if err != nil {
		return err
	}
	if files == nil {
		// A file could not be read; the message is already shown.
		return nil
	}

	outcome, err := matcher.Find(recruitment.MatchQuery{
		JobLink:              jobLink,
		Strictness:           strictness,
		IncludeStoredResumes: includeStored,
		Resumes:              files.parts,
	})
	if err != nil {
		showError(err)
		return nil
	}

	if outcome.Empty() {
		fmt.Println("No matches found for this job posting")
		return nil
	}

	fmt.Printf("Found %d matches!\n", len(outcome.Results))

	return browseResults(outcome)
}

type resumeFiles struct {
	parts []recruitment.FilePart
}

// collectResumeFiles prompts for zero or more resume documents to attach.
// Returns nil without error when a listed file could not be read.
func collectResumeFiles() (*resumeFiles, error) {
	raw, err := promptOptional("Resume files to upload (comma separated paths, empty for none)", "")
	if err != nil {
		return nil, err
	}

	files := &resumeFiles{}
	for _, path := range editor.SplitComma(raw) {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			showError(readErr)
			return nil, nil
		}

		files.parts = append(files.parts, recruitment.FilePart{
			Name:    filepath.Base(path),
			Content: data,
		})
	}

	return files, nil
}

// browseResults renders the ranked list in the order received and lets the
// user expand single results until they go back.
func browseResults(outcome *matching.Outcome) error {
	for {
		items := make([]string, 0, len(outcome.Results)+1)
		for _, result := range outcome.Results {
			items = append(items, fmt.Sprintf("Match Score: %d%%", result.Score))
		}
		items = append(items, PromptBack)

		prompt := promptui.Select{
			Label: "Matches (best first)",
			Items: items,
			Size:  10,
		}

		idx, choice, err := prompt.Run()
		if err != nil {
			return err
		}

		if choice == PromptBack {
			return nil
		}

		result := outcome.Results[idx]
		fmt.Printf("Match Score: %d%%\n", result.Score)
		if result.ResumeLink != "" {
			fmt.Printf("Resume: %s\n", result.ResumeLink)
		}
		renderResume(os.Stdout, result.Profile)
	}
}

func promptStrictness() (recruitment.Strictness, error) {
	prompt := promptui.Select{
		Label: "Select Match Criteria",
		Items: recruitment.StrictnessNames(),
		// Default to Moderate.
		CursorPos: 1,
	}

	_, name, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return recruitment.ParseStrictness(name)
}
