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

type TalkRepo interface {
	Create(ctx context.Context, talk *models.Talk) (*models.Talk, error)
	GetByID(ctx context.Context, id string) (*models.Talk, error)
	List(ctx context.Context, onlyPublic bool) ([]*models.Talk, error)
	Update(ctx context.Context, talk *models.Talk) error
}

type talkRepo struct {
	coll *mongo.Collection
}

func NewTalkRepo(conn *db.Mongo) TalkRepo {
	return &talkRepo{coll: conn.Database.Collection(models.Talk{}.Collection())}
}

func (r *talkRepo) Create(ctx context.Context, talk *models.Talk) (*models.Talk, error) {
	now := time.Now().UTC()
	talk.CreatedAt = now
	talk.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, talk)
	if err != nil {
		return nil, err
	}
	talk.ID = res.InsertedID.(primitive.ObjectID)
	return talk, nil
}

func (r *talkRepo) GetByID(ctx context.Context, id string) (*models.Talk, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Невалидный hex не может указывать на документ
		return nil, apperr.NotFound("Talk not found")
	}

	var talk models.Talk
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&talk)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Talk not found")
	}
	if err != nil {
		return nil, err
	}
	return &talk, nil
}

// List возвращает обсуждения по дате убыванием; при равных датах — по порядку
// вставки (новые раньше). onlyPublic отсекает приватные и мягко удалённые.
func (r *talkRepo) List(ctx context.Context, onlyPublic bool) ([]*models.Talk, error) {
	filter := bson.M{}
	if onlyPublic {
		filter["visibility"] = models.VisibilityPublic
		filter["status"] = bson.M{"$ne": models.StatusDeleted}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var talks []*models.Talk
	if err := cur.All(ctx, &talks); err != nil {
		return nil, err
	}
	return talks, nil
}

func (r *talkRepo) Update(ctx context.Context, talk *models.Talk) error {
	talk.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": talk.ID}, talk)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Talk not found")
	}
	return nil
}
