package session

import (
	"testing"

	"github.com/spigell/recruitmate/internal/recruitment"
)

func TestResolveForcesLoginWhenUnauthenticated(t *testing.T) {
	sess := New()
	sess.Current = ViewCandidateProfile

	if got := sess.Resolve(); got != ViewLogin {
		t.Fatalf("expected login view, got %q", got)
	}
}

func TestAuthenticateLandsOnRoleDefault(t *testing.T) {
	tests := []struct {
		role     recruitment.Role
		expected View
	}{
		{recruitment.RoleCandidate, ViewCandidateDashboard},
		{recruitment.RoleRecruiter, ViewRecruiterMatches},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			sess := New()
			sess.Authenticate("token", &recruitment.User{ID: "u1", Role: tt.role})

			if got := sess.Resolve(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestResolveFallsBackOnDisallowedView(t *testing.T) {
	sess := New()
	sess.Authenticate("token", &recruitment.User{ID: "u1", Role: recruitment.RoleRecruiter})

	// A recruiter cannot open candidate screens.
	sess.NavigateTo(ViewCandidateProfile)

	if got := sess.Resolve(); got != ViewRecruiterMatches {
		t.Fatalf("expected recruiter default, got %q", got)
	}
}

func TestResolveHonorsAllowedNavigation(t *testing.T) {
	sess := New()
	sess.Authenticate("token", &recruitment.User{ID: "u1", Role: recruitment.RoleCandidate})

	sess.NavigateTo(ViewCandidateProfile)

	if got := sess.Resolve(); got != ViewCandidateProfile {
		t.Fatalf("expected profile view, got %q", got)
	}
}

func TestLogoutResetsEverything(t *testing.T) {
	sess := New()
	sess.Authenticate("token", &recruitment.User{ID: "u1", Role: recruitment.RoleCandidate})
	sess.NavigateTo(ViewCandidateProfile)

	sess.Logout()

	if sess.Authenticated() {
		t.Fatalf("expected unauthenticated session")
	}
	if sess.Token != "" || sess.UserID != "" || sess.Role != "" {
		t.Fatalf("identity not cleared: %+v", sess)
	}
	if sess.Current != ViewLogin {
		t.Fatalf("expected login view, got %q", sess.Current)
	}
}

func TestViewsPerRole(t *testing.T) {
	if views := Views(recruitment.RoleCandidate); len(views) != 2 {
		t.Fatalf("unexpected candidate views: %v", views)
	}
	if views := Views(recruitment.RoleRecruiter); len(views) != 1 {
		t.Fatalf("unexpected recruiter views: %v", views)
	}
	if views := Views(recruitment.Role("unknown")); views != nil {
		t.Fatalf("expected no views for unknown role, got %v", views)
	}
}
