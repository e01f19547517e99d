package repository

import (
	"context"
	"errors"
	"time"

	"wisdomcircle/internal/apperr"
	"wisdomcircle/internal/db"
	"wisdomcircle/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Неявный потолок выдачи каталога.
const videoListCap = 100

type VideoRepo interface {
	Create(ctx context.Context, v *models.Video) (*models.Video, error)
	GetByID(ctx context.Context, id string) (*models.Video, error)
	List(ctx context.Context, category string) ([]*models.Video, error)
	Update(ctx context.Context, v *models.Video) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categorySlug string) (int64, error)
}

type videoRepo struct {
	coll *mongo.Collection
}

func NewVideoRepo(conn *db.Mongo) VideoRepo {
	return &videoRepo{coll: conn.Database.Collection(models.Video{}.Collection())}
}

func (r *videoRepo) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, v)
	if err != nil {
		return nil, err
	}
	v.ID = res.InsertedID.(primitive.ObjectID)
	return v, nil
}

func (r *videoRepo) GetByID(ctx context.Context, id string) (*models.Video, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Video not found")
	}

	var v models.Video
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Video not found")
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *videoRepo) List(ctx context.Context, category string) ([]*models.Video, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(videoListCap)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []*models.Video
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *videoRepo) Update(ctx context.Context, v *models.Video) error {
	v.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": v.ID}, v)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Video not found")
	}
	return nil
}

func (r *videoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Video not found")
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("Video not found")
	}
	return nil
}

func (r *videoRepo) CountByCategory(ctx context.Context, categorySlug string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"category": categorySlug})
}
