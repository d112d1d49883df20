package recruitment

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL    = "https://ai-driven-recruitment.onrender.com"
	userAgent = "spigell/recruitmate"
)

const (
	tokenPath         = "/token"
	signupPath        = "/signup"
	currentUserPath   = "/me"
	getProfilePath    = "/candidate/get_profile"
	parseResumePath   = "/candidate/parse_resume"
	saveProfilePath   = "/candidate/save_profile"
	updateProfilePath = "/candidate/update_profile"
	matchWithJobPath  = "/candidate/match_with_job"
	findMatchesPath   = "/recruiter/find_matches"
)

// Client talks to the recruitment platform API. All calls except Login and
// Signup require a bearer token set via SetToken.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(ctx context.Context, logger *zap.Logger) *Client {
	return &Client{
		ctx:    ctx,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// SetToken installs the bearer credential used by all authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}
