// Package session holds the authenticated identity and the navigation
// state for one interactive session.
package session

import "github.com/spigell/recruitmate/internal/recruitment"

type View string

const (
	ViewLogin              View = "login"
	ViewCandidateDashboard View = "candidate_dashboard"
	ViewCandidateProfile   View = "candidate_profile"
	ViewRecruiterMatches   View = "recruiter_find_matches"
)

// Views returns the screens a role is allowed to open.
func Views(role recruitment.Role) []View {
	switch role {
	case recruitment.RoleCandidate:
		return []View{ViewCandidateDashboard, ViewCandidateProfile}
	case recruitment.RoleRecruiter:
		return []View{ViewRecruiterMatches}
	default:
		return nil
	}
}

// DefaultView returns the landing screen for a role.
func DefaultView(role recruitment.Role) View {
	if role == recruitment.RoleRecruiter {
		return ViewRecruiterMatches
	}

	return ViewCandidateDashboard
}

// Session spans one authenticated run: token, identity and the current
// navigation target. It is created on login and torn down on logout; no
// state survives it.
type Session struct {
	Token   string
	UserID  string
	Role    recruitment.Role
	Current View
}

func New() *Session {
	return &Session{Current: ViewLogin}
}

func (s *Session) Authenticated() bool {
	return s.Token != ""
}

// Authenticate installs the identity and moves navigation to the role's
// default screen.
func (s *Session) Authenticate(token string, user *recruitment.User) {
	s.Token = token
	s.UserID = user.ID
	s.Role = user.Role
	s.Current = DefaultView(user.Role)
}

// NavigateTo records an explicit navigation request. Resolve decides
// whether it is honored.
func (s *Session) NavigateTo(view View) {
	s.Current = view
}

// Resolve maps the session state to the screen that must render: the login
// screen while unauthenticated, the requested screen when the role allows
// it, the role default otherwise.
func (s *Session) Resolve() View {
	if !s.Authenticated() {
		return ViewLogin
	}

	for _, v := range Views(s.Role) {
		if v == s.Current {
			return v
		}
	}

	return DefaultView(s.Role)
}

// Logout resets the session to its initial unauthenticated state.
func (s *Session) Logout() {
	*s = Session{Current: ViewLogin}
}
