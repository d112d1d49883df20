package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spigell/recruitmate/internal/editor"
	"github.com/spigell/recruitmate/internal/profile"
	"github.com/spigell/recruitmate/internal/recruitment"
	"github.com/spigell/recruitmate/internal/session"

	"github.com/manifoldco/promptui"
)

// profileScreen drives the candidate profile draft: basic fields, skills,
// the three record collections, autofill and save.
func profileScreen(sess *session.Session, rec *profile.Reconciler) error {
	if !rec.Fetched() {
		if err := rec.Fetch(); err != nil {
			showError(err)
			sess.NavigateTo(session.ViewCandidateDashboard)
			return nil
		}
	}

	for {
		prompt := promptui.Select{
			Label: "Candidate Profile",
			Items: []string{
				"Show profile",
				"Edit basic information",
				"Edit skills",
				"Education",
				"Experience",
				"Projects & Accomplishments",
				"Autofill profile with resume",
				"Save profile",
				"Dashboard",
				PromptLogout,
				PromptExit,
			},
			Size: 11,
		}

		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case "Show profile":
			renderResume(os.Stdout, rec.Document().ParsedResume)
			if link := rec.ResumeLink(); link != "" {
				fmt.Printf("View Resume: %s\n", link)
			}
		case "Edit basic information":
			if err := editBasicInfo(rec); err != nil {
				return err
			}
		case "Edit skills":
			if err := editSkills(rec); err != nil {
				return err
			}
		case "Education":
			err = manageCollection("Education History", rec.Education, educationSummary, educationForm, rec.MarkDirty)
			if err != nil {
				return err
			}
		case "Experience":
			err = manageCollection("Work Experience", rec.Experience, experienceSummary, experienceForm, rec.MarkDirty)
			if err != nil {
				return err
			}
		case "Projects & Accomplishments":
			err = manageCollection("Projects and Accomplishments", rec.Projects, projectSummary, projectForm, rec.MarkDirty)
			if err != nil {
				return err
			}
		case "Autofill profile with resume":
			if err := autofill(rec); err != nil {
				return err
			}
		case "Save profile":
			if err := rec.Save(); err != nil {
				showError(err)
				continue
			}
			fmt.Println("Profile saved successfully!")
		case "Dashboard":
			sess.NavigateTo(session.ViewCandidateDashboard)
			return nil
		case PromptLogout:
			sess.Logout()
			return nil
		case PromptExit:
			return errExit
		}
	}
}

func editBasicInfo(rec *profile.Reconciler) error {
	name, err := promptOptional("Full Name", rec.Basic.Name)
	if err != nil {
		return err
	}

	linkedin, err := promptOptional("LinkedIn URL", rec.Basic.LinkedIn)
	if err != nil {
		return err
	}

	github, err := promptOptional("GitHub URL", rec.Basic.GitHub)
	if err != nil {
		return err
	}

	totalExp, err := promptOptional("Total Years of Experience", rec.Basic.TotalYearsOfExperience)
	if err != nil {
		return err
	}

	rec.Basic = profile.BasicInfo{
		Name:                   name,
		LinkedIn:               linkedin,
		GitHub:                 github,
		TotalYearsOfExperience: totalExp,
	}
	rec.MarkDirty()

	return nil
}

func editSkills(rec *profile.Reconciler) error {
	skills, err := promptOptional("Skills (comma separated)", strings.Join(rec.Skills, ", "))
	if err != nil {
		return err
	}

	rec.Skills = editor.SplitComma(skills)
	rec.MarkDirty()

	return nil
}

func autofill(rec *profile.Reconciler) error {
	if rec.Dirty() {
		proceed, err := confirm("Unsaved edits will be overwritten by parsed resume data. Continue?")
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	path, err := promptRequired("Path to resume file (PDF)")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		showError(err)
		return nil
	}

	if err := rec.Autofill(recruitment.FilePart{Name: filepath.Base(path), Content: data}); err != nil {
		showError(err)
		return nil
	}

	fmt.Println("Resume parsed successfully!")

	return nil
}

// manageCollection runs the list screen for one record collection: pick an
// entry to edit or remove, or append a new one. Mutations are keyed by the
// entry identifier, so stale list positions cannot hit the wrong record.
func manageCollection[T any](title string, ed *editor.Editor[T], summarize func(T) string, form func(T) (T, error), markDirty func()) error {
	for {
		entries := ed.Entries()

		items := make([]string, 0, len(entries)+2)
		for i, entry := range entries {
			items = append(items, fmt.Sprintf("%d. %s", i+1, summarize(entry.Value)))
		}
		items = append(items, "Add new", PromptBack)

		prompt := promptui.Select{
			Label: title,
			Items: items,
			Size:  10,
		}

		idx, choice, err := prompt.Run()
		if err != nil {
			return err
		}

		switch choice {
		case "Add new":
			entry := ed.Add()
			value, err := form(entry.Value)
			if err != nil {
				return err
			}
			if err := ed.SetByID(entry.ID, value); err != nil {
				return err
			}
			markDirty()
		case PromptBack:
			return nil
		default:
			entry := entries[idx]

			actionPrompt := promptui.Select{
				Label: summarize(entry.Value),
				Items: []string{"Edit", "Remove", PromptBack},
			}
			_, action, err := actionPrompt.Run()
			if err != nil {
				return err
			}

			switch action {
			case "Edit":
				value, err := form(entry.Value)
				if err != nil {
					return err
				}
				if err := ed.SetByID(entry.ID, value); err != nil {
					return err
				}
				markDirty()
			case "Remove":
				if err := ed.RemoveByID(entry.ID); err != nil {
					return err
				}
				markDirty()
			}
		}
	}
}

func educationSummary(e recruitment.EducationEntry) string {
	return summary(e.Degree, e.Institution)
}

func educationForm(e recruitment.EducationEntry) (recruitment.EducationEntry, error) {
	var err error
	if e.Institution, err = promptOptional("Institution", e.Institution); err != nil {
		return e, err
	}
	if e.Degree, err = promptOptional("Degree", e.Degree); err != nil {
		return e, err
	}
	if e.GPA, err = promptOptional("GPA", e.GPA); err != nil {
		return e, err
	}
	if e.Graduation, err = promptOptional("Graduation Date", e.Graduation); err != nil {
		return e, err
	}

	coursework, err := promptOptional("Relevant Coursework (comma separated)", strings.Join(e.Coursework, ", "))
	if err != nil {
		return e, err
	}
	e.Coursework = editor.SplitComma(coursework)

	return e, nil
}

func experienceSummary(e recruitment.ExperienceEntry) string {
	return summary(e.Role, e.Organization)
}

func experienceForm(e recruitment.ExperienceEntry) (recruitment.ExperienceEntry, error) {
	var err error
	if e.Role, err = promptOptional("Role/Position", e.Role); err != nil {
		return e, err
	}
	if e.Organization, err = promptOptional("Organization", e.Organization); err != nil {
		return e, err
	}
	if e.Timeline.Start, err = promptOptional("Start Date", e.Timeline.Start); err != nil {
		return e, err
	}
	if e.Timeline.End, err = promptOptional("End Date", e.Timeline.End); err != nil {
		return e, err
	}

	if e.Details, err = readBullets("Details", e.Details); err != nil {
		return e, err
	}

	skills, err := promptOptional("Skills Used (comma separated)", strings.Join(e.SkillsRelated, ", "))
	if err != nil {
		return e, err
	}
	e.SkillsRelated = editor.SplitComma(skills)

	return e, nil
}

func projectSummary(e recruitment.ProjectEntry) string {
	return summary(e.Name)
}

func projectForm(e recruitment.ProjectEntry) (recruitment.ProjectEntry, error) {
	var err error
	if e.Name, err = promptOptional("Project Name", e.Name); err != nil {
		return e, err
	}

	skills, err := promptOptional("Skills Used (comma separated)", strings.Join(e.SkillsRelated, ", "))
	if err != nil {
		return e, err
	}
	e.SkillsRelated = editor.SplitComma(skills)

	if e.Details, err = readBullets("Details", e.Details); err != nil {
		return e, err
	}

	return e, nil
}

// readBullets collects newline-delimited narrative details from stdin. An
// immediate empty line keeps the current list.
func readBullets(label string, current []string) ([]string, error) {
	if len(current) > 0 {
		fmt.Printf("Current %s:\n", strings.ToLower(label))
		for _, line := range current {
			fmt.Printf("  - %s\n", line)
		}
	}

	fmt.Printf("%s (one per line, empty line to finish; empty input keeps current):\n", label)

	scanner := bufio.NewScanner(os.Stdin)
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return current, nil
	}

	return editor.SplitLines(strings.Join(lines, "\n")), nil
}

// summary joins the non-empty parts for a list label.
func summary(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}

	if len(kept) == 0 {
		return "(empty)"
	}

	return strings.Join(kept, " at ")
}
