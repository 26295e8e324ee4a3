package delivery

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v58/github"
	"golang.org/x/oauth2"

	"github.com/qbox/qadocgen/internal/config"
)

// Authenticator yields an authenticated GitHub client. Two implementations
// exist: personal access token and GitHub App installation.
type Authenticator interface {
	GitHubClient(ctx context.Context) (*github.Client, error)
}

// NewAuthenticator picks App auth when an app is configured, PAT otherwise.
func NewAuthenticator(cfg config.GitHubConfig) (Authenticator, error) {
	if cfg.AppID != 0 && cfg.PrivateKeyPath != "" {
		if cfg.InstallationID == 0 {
			return nil, fmt.Errorf("github app auth requires installation_id")
		}
		return &appAuthenticator{
			appID:          cfg.AppID,
			installationID: cfg.InstallationID,
			privateKeyPath: cfg.PrivateKeyPath,
		}, nil
	}
	if cfg.Token != "" {
		return &patAuthenticator{token: cfg.Token}, nil
	}
	return nil, fmt.Errorf("github delivery requires a token or app credentials")
}

type patAuthenticator struct {
	token string
}

func (a *patAuthenticator) GitHubClient(ctx context.Context) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: a.token})
	return github.NewClient(oauth2.NewClient(ctx, ts)), nil
}

type appAuthenticator struct {
	appID          int64
	installationID int64
	privateKeyPath string
}

func (a *appAuthenticator) GitHubClient(ctx context.Context) (*github.Client, error) {
	itr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, a.appID, a.installationID, a.privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create installation transport: %w", err)
	}
	return github.NewClient(&http.Client{Transport: itr}), nil
}
