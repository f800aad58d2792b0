// Package firestore contains the Cloud Firestore implementation of the persistence layer.
package firestore

import (
	"context"
	"log/slog"

	"truefans/config"
	"truefans/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names shared with the restaurant dashboard.
const (
	passCollection       = "digitalPasses"
	restaurantCollection = "restaurants"
	brandCollection      = "brands"
	locationCollection   = "locations"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client through the Firebase Admin SDK.
func New(ctx context.Context, params Params) (*firestore.Client, error) {
	var opts []option.ClientOption
	if params.Config.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: params.Config.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// classify maps gRPC deadline and cancellation statuses onto the context errors
// the use cases match on. Other errors are returned unchanged.
func classify(err error) error {
	switch status.Code(err) {
	case codes.DeadlineExceeded:
		return errors.Wrap(context.DeadlineExceeded, err.Error())
	case codes.Canceled:
		return errors.Wrap(context.Canceled, err.Error())
	default:
		return err
	}
}
