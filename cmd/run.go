package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/recruitmate/internal/logger"
	"github.com/spigell/recruitmate/internal/matching"
	"github.com/spigell/recruitmate/internal/profile"
	"github.com/spigell/recruitmate/internal/recruitment"
	"github.com/spigell/recruitmate/internal/secrets"
	"github.com/spigell/recruitmate/internal/session"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes    = "Yes"
	PromptNo     = "No"
	PromptBack   = "Back"
	PromptExit   = "Exit"
	PromptLogout = "Logout"
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive recruitmate session",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// run is the main interactive loop: one authenticated session at a time,
// screens dispatched from the navigation state.
func run() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting recruitmate", zap.String("version", version))

	client := recruitment.New(ctx, logger)
	if config.APIURL != "" {
		client.APIURL = config.APIURL
	}
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	sess := session.New()
	resumeSavedSession(client, sess, config, logger)

	// Created on login, dropped on logout. The reconciler holds the
	// profile draft for exactly one authenticated session.
	var rec *profile.Reconciler
	var matcher *matching.Orchestrator

	for {
		view := sess.Resolve()

		if view == session.ViewLogin {
			rec, matcher = nil, nil
			if err := loginScreen(client, sess, logger); err != nil {
				if errors.Is(err, errExit) {
					return
				}
				logger.Fatal("login failed", zap.Error(err))
			}
			continue
		}

		if rec == nil {
			rec = profile.New(client, logger)
			matcher = matching.New(client, logger)
		}

		switch view {
		case session.ViewCandidateDashboard:
			err = dashboardScreen(sess, matcher)
		case session.ViewCandidateProfile:
			err = profileScreen(sess, rec)
		case session.ViewRecruiterMatches:
			err = matchesScreen(sess, matcher)
		default:
			err = fmt.Errorf("no screen for view %q", view)
		}

		if err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// resumeSavedSession tries to reuse a token saved in the configured token
// file. Any failure falls back to the interactive login.
func resumeSavedSession(client *recruitment.Client, sess *session.Session, config *Config, logger *zap.Logger) {
	if config.TokenFile == "" {
		return
	}

	token, err := secrets.Load("api token", config.TokenFile)
	if err != nil {
		logger.Warn("skipping saved token", zap.Error(err))
		return
	}

	client.SetToken(token)

	user, err := client.CurrentUser()
	if err != nil {
		logger.Warn("saved token rejected, falling back to login", zap.Error(err))
		client.SetToken("")
		return
	}

	sess.Authenticate(token, user)
	logger.Info("resumed saved session", zap.String("role", string(user.Role)))
}

func loginScreen(client *recruitment.Client, sess *session.Session, logger *zap.Logger) error {
	prompt := promptui.Select{
		Label: "AI-Driven Recruitment Platform",
		Items: []string{"Login", "Sign up", PromptExit},
	}

	_, action, err := prompt.Run()
	if err != nil {
		return err
	}

	switch action {
	case "Login":
		return login(client, sess, logger)
	case "Sign up":
		return signup(client, sess, logger)
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func login(client *recruitment.Client, sess *session.Session, logger *zap.Logger) error {
	username, err := promptRequired("Username")
	if err != nil {
		return err
	}

	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	token, err := client.Login(username, password)
	if err != nil {
		showError(err)
		return nil
	}

	return establishSession(client, sess, logger, token)
}

func signup(client *recruitment.Client, sess *session.Session, logger *zap.Logger) error {
	username, err := promptRequired("Username")
	if err != nil {
		return err
	}

	email, err := promptRequired("Email")
	if err != nil {
		return err
	}

	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	rolePrompt := promptui.Select{
		Label: "User Role",
		Items: []string{string(recruitment.RoleCandidate), string(recruitment.RoleRecruiter)},
	}
	_, role, err := rolePrompt.Run()
	if err != nil {
		return err
	}

	token, err := client.Signup(recruitment.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     recruitment.Role(role),
	})
	if err != nil {
		showError(err)
		return nil
	}

	fmt.Println("Account created successfully!")

	return establishSession(client, sess, logger, token)
}

func establishSession(client *recruitment.Client, sess *session.Session, logger *zap.Logger, token string) error {
	client.SetToken(token)

	user, err := client.CurrentUser()
	if err != nil {
		showError(err)
		client.SetToken("")
		return nil
	}

	sess.Authenticate(token, user)
	logger.Info("logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

	return nil
}

func promptRequired(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("%s must not be empty", strings.ToLower(label))
			}
			return nil
		},
	}

	return prompt.Run()
}

func promptPassword(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return errors.New("password must not be empty")
			}
			return nil
		},
	}

	return prompt.Run()
}

func promptOptional(label, def string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: def,
	}

	return prompt.Run()
}

func confirm(label string) (bool, error) {
	prompt := promptui.Select{
		Label: label,
		Items: []string{PromptYes, PromptNo},
	}

	_, answer, err := prompt.Run()
	if err != nil {
		return false, err
	}

	return answer == PromptYes, nil
}

// showError renders a failure next to the triggering control without
// clearing any entered state.
func showError(err error) {
	fmt.Printf("Error: %v\n", err)
}
