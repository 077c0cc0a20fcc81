package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"plant-exchange/internal/domain"
)

type PlantRepo struct {
	collection *mongo.Collection
}

func NewPlantRepo(collection *mongo.Collection) *PlantRepo {
	return &PlantRepo{collection: collection}
}

func (r *PlantRepo) Create(ctx context.Context, plant *domain.Plant) error {
	_, err := r.collection.InsertOne(ctx, plant)
	return err
}

func (r *PlantRepo) FindByID(ctx context.Context, id string) (*domain.Plant, error) {
	var plant domain.Plant
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&plant)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrPlantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *PlantRepo) FindAll(ctx context.Context) ([]domain.Plant, error) {
	return r.find(ctx, bson.M{})
}

func (r *PlantRepo) FindByOwner(ctx context.Context, ownerID string) ([]domain.Plant, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *PlantRepo) find(ctx context.Context, filter bson.M) ([]domain.Plant, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plants := []domain.Plant{}
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

// AddLike records userID in the liker set and bumps the counter in a single
// conditional update. The filter excludes documents that already contain the
// user, so two racing likes from the same user can never double-increment:
// only the one whose filter matched changes anything.
func (r *PlantRepo) AddLike(ctx context.Context, plantID, userID string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"id": plantID, "liked_by": bson.M{"$ne": userID}},
		bson.M{
			"$addToSet": bson.M{"liked_by": userID},
			"$inc":      bson.M{"likes_count": 1},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.classifyMiss(ctx, plantID, domain.ErrAlreadyLiked)
	}
	return nil
}

// RemoveLike is the exact inverse of AddLike: the filter requires the user to
// be present, and the update removes them while decrementing the counter.
func (r *PlantRepo) RemoveLike(ctx context.Context, plantID, userID string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"id": plantID, "liked_by": userID},
		bson.M{
			"$pull": bson.M{"liked_by": userID},
			"$inc":  bson.M{"likes_count": -1},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.classifyMiss(ctx, plantID, domain.ErrNotLiked)
	}
	return nil
}

// classifyMiss tells a missing document apart from a filter that failed on the
// liked_by condition.
func (r *PlantRepo) classifyMiss(ctx context.Context, plantID string, likeErr error) error {
	err := r.collection.FindOne(ctx, bson.M{"id": plantID}).Err()
	if err == mongo.ErrNoDocuments {
		return domain.ErrPlantNotFound
	}
	if err != nil {
		return err
	}
	return likeErr
}
