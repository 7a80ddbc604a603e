package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// SessionRunner runs a function inside a Mongo session transaction. Every
// multi-document mutation in the services goes through this; a failure in
// any step aborts the whole transaction, so no partial membership update
// ever commits.
type SessionRunner struct {
	Client *mongo.Client
}

func (r SessionRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc context.Context) (any, error) {
		return nil, fn(sc)
	})
	return err
}
