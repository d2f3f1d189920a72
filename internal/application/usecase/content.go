package usecase

import (
	"context"
	"time"

	"github.com/tesso57/flank/internal/domain/content"
)

// ContentLoader loads a collection from an origin.
type ContentLoader func(ctx context.Context, origin string) (*content.Collection, error)

// ContentService loads what the panes display.
type ContentService struct {
	Load    ContentLoader
	Origin  string
	Timeout time.Duration
}

// NewContentService constructs a ContentService.
func NewContentService(load ContentLoader, origin string, timeout time.Duration) ContentService {
	return ContentService{Load: load, Origin: origin, Timeout: timeout}
}

// Fetch loads the configured origin.
func (s ContentService) Fetch(ctx context.Context) (*content.Collection, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	return s.Load(ctx, s.Origin)
}
