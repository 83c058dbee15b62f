package service

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/domain/analytics"
)

type EventPublisher interface {
	Publish(ctx context.Context, event analytics.Event) error
}
