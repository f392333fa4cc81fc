package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakelabs/staking-ledger/internal/db/model"
)

func (db *Database) SaveTransition(
	ctx context.Context, transitionDoc *model.TransitionDocument,
) error {
	_, err := db.collection(model.TransitionCollection).
		InsertOne(ctx, transitionDoc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     transitionDoc.TransitionID,
						Message: "transition already archived",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetTransitionByID(
	ctx context.Context, transitionID string,
) (*model.TransitionDocument, error) {
	filter := bson.M{"_id": transitionID}
	res := db.collection(model.TransitionCollection).FindOne(ctx, filter)

	var doc model.TransitionDocument
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     transitionID,
				Message: "transition not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}

// GetTransitionsByOwner returns the owner's archived transitions, newest
// first.
func (db *Database) GetTransitionsByOwner(
	ctx context.Context, owner string,
) ([]model.TransitionDocument, error) {
	filter := bson.M{"owner": owner}
	opts := options.Find().SetSort(bson.M{"timestamp": -1})

	cursor, err := db.collection(model.TransitionCollection).
		Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transitions []model.TransitionDocument
	if err := cursor.All(ctx, &transitions); err != nil {
		return nil, err
	}
	return transitions, nil
}
