package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spigell/recruitmate/internal/recruitment"
)

// renderResume prints a read-only projection of a parsed resume. The same
// layout serves the candidate's own profile and match results.
func renderResume(w io.Writer, r recruitment.ParsedResume) {
	fmt.Fprintf(w, "Name: %s\n", r.Name)
	fmt.Fprintf(w, "LinkedIn: %s\n", r.LinkedIn)
	fmt.Fprintf(w, "GitHub: %s\n", r.GitHub)
	fmt.Fprintf(w, "Total Years of Experience: %s\n", r.TotalYearsOfExperience)

	fmt.Fprintln(w, "Skills:")
	if len(r.Skills) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(r.Skills, ", "))
	}

	fmt.Fprintln(w, "Education:")
	for _, edu := range r.Education {
		fmt.Fprintf(w, "  - %s from %s (GPA: %s)\n", edu.Degree, edu.Institution, edu.GPA)
		if len(edu.Coursework) > 0 {
			fmt.Fprintf(w, "    Coursework: %s\n", strings.Join(edu.Coursework, ", "))
		}
	}

	fmt.Fprintln(w, "Experience:")
	for _, exp := range r.Experience {
		fmt.Fprintf(w, "  - %s at %s (%s to %s)\n", exp.Role, exp.Organization, exp.Timeline.Start, exp.Timeline.End)
		for _, detail := range exp.Details {
			fmt.Fprintf(w, "    * %s\n", detail)
		}
		if len(exp.SkillsRelated) > 0 {
			fmt.Fprintf(w, "    Skills: %s\n", strings.Join(exp.SkillsRelated, ", "))
		}
	}

	fmt.Fprintln(w, "Projects & Accomplishments:")
	for _, proj := range r.Projects {
		fmt.Fprintf(w, "  - %s: %s\n", proj.Name, strings.Join(proj.Details, " "))
		if len(proj.SkillsRelated) > 0 {
			fmt.Fprintf(w, "    Skills: %s\n", strings.Join(proj.SkillsRelated, ", "))
		}
	}
}
