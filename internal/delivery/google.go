package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/qbox/qadocgen/internal/gdocs"
	"github.com/qbox/qadocgen/internal/render"
	"github.com/qbox/qadocgen/internal/staging"
	"github.com/qbox/qadocgen/internal/trace"
	"github.com/qbox/qadocgen/pkg/models"
)

// DocumentCreator is the slice of the gdocs client the publisher needs.
type DocumentCreator interface {
	CreateDocument(ctx context.Context, title, content string) (*gdocs.Document, error)
	CreateSpreadsheet(ctx context.Context, title string, rows [][]string) (*gdocs.Document, error)
}

// GooglePublisher creates shared cloud documents for the three artifacts.
// The whole publish is bounded by a single deadline; on expiry the caller's
// fallback takes over.
type GooglePublisher struct {
	creator DocumentCreator
	timeout time.Duration
}

func NewGooglePublisher(creator DocumentCreator, timeout time.Duration) *GooglePublisher {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &GooglePublisher{creator: creator, timeout: timeout}
}

func (p *GooglePublisher) Name() string { return "google" }

func (p *GooglePublisher) Publish(ctx context.Context, set *models.DocumentSet, staged *staging.StagedSet, out *render.Output) (*Links, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	planTitle, casesTitle, chartersTitle := titles(set)

	planDoc, err := p.creator.CreateDocument(ctx, planTitle, string(out.TestPlan))
	if err != nil {
		return nil, fmt.Errorf("failed to create test plan document: %w", err)
	}
	trace.Info(ctx, "Created Google Doc for test plan: %s", planDoc.ID)

	sheet, err := p.creator.CreateSpreadsheet(ctx, casesTitle, out.TestCaseRows)
	if err != nil {
		return nil, fmt.Errorf("failed to create test case spreadsheet: %w", err)
	}
	trace.Info(ctx, "Created Google Sheet for test cases: %s", sheet.ID)

	charterDoc, err := p.creator.CreateDocument(ctx, chartersTitle, string(out.Charters))
	if err != nil {
		return nil, fmt.Errorf("failed to create charters document: %w", err)
	}
	trace.Info(ctx, "Created Google Doc for charters: %s", charterDoc.ID)

	link := func(doc *gdocs.Document, file staging.StagedFile) models.DocumentLink {
		return models.DocumentLink{
			Title:       doc.Title,
			Filename:    file.Filename,
			DownloadURL: doc.URL,
			ID:          doc.ID,
		}
	}

	return &Links{
		TestPlan:           link(planDoc, staged.TestPlan),
		TestCases:          link(sheet, staged.TestCases),
		ExploratoryTesting: link(charterDoc, staged.Charters),
	}, nil
}
