// Package firestore implements the persistence layer on Google Cloud
// Firestore, reached through the Firebase app bootstrap.
package firestore

import (
	"context"
	"log/slog"

	"agentverse/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names. Every document this system owns lives in one of these.
const (
	principalsCollection     = "principals"
	principalEmailCollection = "principal_emails"
	profilesCollection       = "profiles"
	postsCollection          = "posts"
	friendRequestsCollection = "friend_requests"
	registrationsCollection  = "registrations"
	settingsCollection       = "settings"
)

// Params holds dependencies for the Firestore client, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New initializes the Firebase app and returns its Firestore client.
// The client is closed on fx shutdown.
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firestore configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Logger.Info("Firestore client initialized",
		slog.String("project_id", cfg.ProjectID),
	)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
