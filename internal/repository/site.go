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

type SettingsRepo interface {
	// Get возвращает (nil, nil), если документа ещё нет — ленивое создание
	// остаётся за сервисом.
	Get(ctx context.Context) (*models.Settings, error)
	Create(ctx context.Context, s *models.Settings) (*models.Settings, error)
	Update(ctx context.Context, s *models.Settings) error
}

type settingsRepo struct {
	coll *mongo.Collection
}

func NewSettingsRepo(conn *db.Mongo) SettingsRepo {
	return &settingsRepo{coll: conn.Database.Collection(models.Settings{}.Collection())}
}

func (r *settingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Create(ctx context.Context, s *models.Settings) (*models.Settings, error) {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return nil, err
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return s, nil
}

func (r *settingsRepo) Update(ctx context.Context, s *models.Settings) error {
	s.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Settings not found")
	}
	return nil
}

type AnnouncementRepo interface {
	Create(ctx context.Context, a *models.Announcement) (*models.Announcement, error)
	ListActive(ctx context.Context) ([]*models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type announcementRepo struct {
	coll *mongo.Collection
}

func NewAnnouncementRepo(conn *db.Mongo) AnnouncementRepo {
	return &announcementRepo{coll: conn.Database.Collection(models.Announcement{}.Collection())}
}

func (r *announcementRepo) Create(ctx context.Context, a *models.Announcement) (*models.Announcement, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (r *announcementRepo) ListActive(ctx context.Context) ([]*models.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []*models.Announcement
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *announcementRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Announcement not found")
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("Announcement not found")
	}
	return nil
}
