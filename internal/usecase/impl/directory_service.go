package impl

import (
	"context"

	"agentverse/internal/domain/entity"
	"agentverse/internal/infra/directory"
	"agentverse/internal/usecase"
)

// directoryService implements the DirectoryUsecase interface by
// delegating to the static asset loader.
type directoryService struct {
	loader *directory.Loader
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(loader *directory.Loader) usecase.DirectoryUsecase {
	return &directoryService{loader: loader}
}

func (srv *directoryService) Agents(ctx context.Context) []entity.DirectoryAgent {
	return srv.loader.Agents(ctx)
}

func (srv *directoryService) ExternalFeed(ctx context.Context) []entity.ExternalFeedItem {
	return srv.loader.ExternalFeed(ctx)
}
