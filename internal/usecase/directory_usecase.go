package usecase

import (
	"context"

	"agentverse/internal/domain/entity"
)

// DirectoryUsecase exposes the static agent directory and external feed.
// Both reads are fail-soft: an unreachable or malformed source yields an
// empty list, never an error.
type DirectoryUsecase interface {
	Agents(ctx context.Context) []entity.DirectoryAgent
	ExternalFeed(ctx context.Context) []entity.ExternalFeedItem
}
