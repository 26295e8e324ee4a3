package delivery

import (
	"context"

	"github.com/qbox/qadocgen/internal/render"
	"github.com/qbox/qadocgen/internal/staging"
	"github.com/qbox/qadocgen/internal/trace"
	"github.com/qbox/qadocgen/pkg/models"
)

// fallbackPublisher downgrades to the fallback strategy when the primary
// fails or times out. The caller always gets links; collaborator outages are
// logged, never surfaced.
type fallbackPublisher struct {
	primary  Publisher
	fallback Publisher
}

// WithFallback wraps primary so that any publish error falls back.
func WithFallback(primary, fallback Publisher) Publisher {
	return &fallbackPublisher{primary: primary, fallback: fallback}
}

func (p *fallbackPublisher) Name() string { return p.primary.Name() }

func (p *fallbackPublisher) Publish(ctx context.Context, set *models.DocumentSet, staged *staging.StagedSet, out *render.Output) (*Links, error) {
	links, err := p.primary.Publish(ctx, set, staged, out)
	if err == nil {
		return links, nil
	}
	trace.Warn(ctx, "Publisher %s failed, falling back to %s: %v", p.primary.Name(), p.fallback.Name(), err)
	return p.fallback.Publish(ctx, set, staged, out)
}
