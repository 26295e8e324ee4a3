// Package delivery turns staged artifacts into retrievable locations.
// Publishers are strategies selected by configuration: local download links,
// Google cloud documents, or files committed to a GitHub repository.
package delivery

import (
	"context"
	"fmt"

	"github.com/qbox/qadocgen/internal/config"
	"github.com/qbox/qadocgen/internal/gdocs"
	"github.com/qbox/qadocgen/internal/render"
	"github.com/qbox/qadocgen/internal/staging"
	"github.com/qbox/qadocgen/pkg/models"
)

// Links 三个产物各自的可获取位置
type Links struct {
	TestPlan           models.DocumentLink
	TestCases          models.DocumentLink
	ExploratoryTesting models.DocumentLink
}

// Publisher 投递策略接口
type Publisher interface {
	Name() string
	Publish(ctx context.Context, set *models.DocumentSet, staged *staging.StagedSet, out *render.Output) (*Links, error)
}

// NewPublisher builds the configured publisher. Collaborator-backed
// publishers are wrapped with a fallback to local links, so delivery never
// hard-fails on an external service.
func NewPublisher(ctx context.Context, cfg *config.Config) (Publisher, error) {
	local := NewLocalPublisher(cfg.Server.BaseURL)

	switch cfg.Delivery.Provider {
	case "", "local":
		return local, nil
	case "google":
		credsJSON, err := gdocs.CredentialsJSON(cfg.Google.CredentialsFile)
		if err != nil {
			return nil, err
		}
		client, err := gdocs.NewClient(ctx, credsJSON)
		if err != nil {
			return nil, err
		}
		return WithFallback(NewGooglePublisher(client, cfg.Delivery.Timeout), local), nil
	case "github":
		auth, err := NewAuthenticator(cfg.GitHub)
		if err != nil {
			return nil, err
		}
		return WithFallback(NewGitHubPublisher(auth, cfg.GitHub, cfg.Delivery.Timeout), local), nil
	default:
		return nil, fmt.Errorf("unknown delivery provider: %s", cfg.Delivery.Provider)
	}
}

func titles(set *models.DocumentSet) (plan, cases, charters string) {
	return set.FeatureName + " - Test Plan",
		set.FeatureName + " - Test Cases",
		set.FeatureName + " - Exploratory Testing"
}
