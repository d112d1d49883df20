package recruitment

import (
	"net/http"
	"testing"
)

func TestParseStrictness(t *testing.T) {
	tests := []struct {
		name     string
		expected Strictness
	}{
		{"Strict", StrictnessStrict},
		{"Moderate", StrictnessModerate},
		{"Flexible", StrictnessFlexible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrictness(tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %d, want %d", got, tt.expected)
			}
		})
	}

	if _, err := ParseStrictness("Casual"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestFindMatchesEncodesQueryAndFiles(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("job_link") != "https://example.com/job" {
			t.Errorf("unexpected job_link: %q", q.Get("job_link"))
		}
		if q.Get("match_criteria") != "3" {
			t.Errorf("expected Strict to map to 3, got %q", q.Get("match_criteria"))
		}
		if q.Get("include_existing_resumes") != "true" {
			t.Errorf("unexpected include_existing_resumes: %q", q.Get("include_existing_resumes"))
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart form: %v", err)
		}
		files := r.MultipartForm.File["resume_files"]
		if len(files) != 2 {
			t.Errorf("expected 2 parts under one field name, got %d", len(files))
		}

		w.Write([]byte(`[{"match_score": 91.0, "resume_link": "https://storage.example/a.pdf", "user_profile": {"name": "A"}},
			{"match_score": 75, "resume_link": "https://storage.example/b.pdf", "user_profile": {"name": "B"}}]`))
	}))

	results, err := client.FindMatches(MatchQuery{
		JobLink:              "https://example.com/job",
		Strictness:           StrictnessStrict,
		IncludeStoredResumes: true,
		Resumes: []FilePart{
			{Name: "a.pdf", Content: []byte("%PDF-a")},
			{Name: "b.pdf", Content: []byte("%PDF-b")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Score != 91 || results[1].Score != 75 {
		t.Fatalf("scores decoded wrong: %d, %d", results[0].Score, results[1].Score)
	}
	if results[0].Profile.Name != "A" {
		t.Fatalf("profile projection not decoded: %+v", results[0].Profile)
	}
}

func TestFindMatchesFlexibleMapsToOne(t *testing.T) {
	var criteria string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		criteria = r.URL.Query().Get("match_criteria")
		w.Write([]byte(`[]`))
	}))

	results, err := client.FindMatches(MatchQuery{
		JobLink:    "https://example.com/job",
		Strictness: StrictnessFlexible,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if criteria != "1" {
		t.Fatalf("expected Flexible to map to 1, got %q", criteria)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result list, got %d", len(results))
	}
}

func TestMatchWithJobReturnsScore(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/candidate/match_with_job" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("match_criteria"); got != "2" {
			t.Errorf("expected Moderate to map to 2, got %q", got)
		}
		w.Write([]byte(`87`))
	}))

	score, err := client.MatchWithJob("https://example.com/job", StrictnessModerate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 87 {
		t.Fatalf("unexpected score: %v", score)
	}
}
