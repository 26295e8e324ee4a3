package delivery

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/go-github/v58/github"

	"github.com/qbox/qadocgen/internal/config"
	"github.com/qbox/qadocgen/internal/render"
	"github.com/qbox/qadocgen/internal/staging"
	"github.com/qbox/qadocgen/internal/trace"
	"github.com/qbox/qadocgen/pkg/models"
)

// GitHubPublisher commits the three artifacts to a repository via the
// contents API and links to the committed files. Timestamped filenames under
// session paths keep commits conflict-free.
type GitHubPublisher struct {
	auth     Authenticator
	owner    string
	repo     string
	branch   string
	basePath string
	timeout  time.Duration
}

func NewGitHubPublisher(auth Authenticator, cfg config.GitHubConfig, timeout time.Duration) *GitHubPublisher {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &GitHubPublisher{
		auth:     auth,
		owner:    cfg.Owner,
		repo:     cfg.Repo,
		branch:   cfg.Branch,
		basePath: cfg.BasePath,
		timeout:  timeout,
	}
}

func (p *GitHubPublisher) Name() string { return "github" }

func (p *GitHubPublisher) Publish(ctx context.Context, set *models.DocumentSet, staged *staging.StagedSet, out *render.Output) (*Links, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	client, err := p.auth.GitHubClient(ctx)
	if err != nil {
		return nil, err
	}

	planTitle, casesTitle, chartersTitle := titles(set)
	session := staging.SanitizeSessionID(set.SessionID)

	commit := func(title string, file staging.StagedFile, content []byte) (models.DocumentLink, error) {
		target := path.Join(p.basePath, session, file.Filename)
		resp, _, err := client.Repositories.CreateFile(ctx, p.owner, p.repo, target, &github.RepositoryContentFileOptions{
			Message: github.String(fmt.Sprintf("Add QA artifact %s", file.Filename)),
			Content: content,
			Branch:  github.String(p.branch),
		})
		if err != nil {
			return models.DocumentLink{}, fmt.Errorf("failed to commit %s: %w", target, err)
		}
		trace.Info(ctx, "Committed artifact to GitHub: %s", target)
		return models.DocumentLink{
			Title:       title,
			Filename:    file.Filename,
			DownloadURL: resp.Content.GetHTMLURL(),
			ID:          resp.Content.GetSHA(),
		}, nil
	}

	links := &Links{}
	if links.TestPlan, err = commit(planTitle, staged.TestPlan, out.TestPlan); err != nil {
		return nil, err
	}
	if links.TestCases, err = commit(casesTitle, staged.TestCases, out.TestCases); err != nil {
		return nil, err
	}
	if links.ExploratoryTesting, err = commit(chartersTitle, staged.Charters, out.Charters); err != nil {
		return nil, err
	}
	return links, nil
}
