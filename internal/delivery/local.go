package delivery

import (
	"context"
	"fmt"
	"strings"

	"github.com/qbox/qadocgen/internal/render"
	"github.com/qbox/qadocgen/internal/staging"
	"github.com/qbox/qadocgen/pkg/models"
)

// LocalPublisher serves staged files through the server's /files routes.
// It never fails and is the fallback for every other strategy.
type LocalPublisher struct {
	baseURL string
}

func NewLocalPublisher(baseURL string) *LocalPublisher {
	return &LocalPublisher{baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (p *LocalPublisher) Name() string { return "local" }

func (p *LocalPublisher) Publish(ctx context.Context, set *models.DocumentSet, staged *staging.StagedSet, out *render.Output) (*Links, error) {
	planTitle, casesTitle, chartersTitle := titles(set)
	session := staging.SanitizeSessionID(set.SessionID)

	link := func(title string, file staging.StagedFile) models.DocumentLink {
		return models.DocumentLink{
			Title:       title,
			Filename:    file.Filename,
			DownloadURL: fmt.Sprintf("%s/files/%s/%s", p.baseURL, session, file.Filename),
		}
	}

	return &Links{
		TestPlan:           link(planTitle, staged.TestPlan),
		TestCases:          link(casesTitle, staged.TestCases),
		ExploratoryTesting: link(chartersTitle, staged.Charters),
	}, nil
}
