package repository

import (
	"context"
	"errors"
	"time"

	"wisdomcircle/internal/db"
	"wisdomcircle/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	// GetAdmin возвращает (nil, nil), если админ ещё не создан.
	GetAdmin(ctx context.Context) (*models.User, error)
	Create(ctx context.Context, u *models.User) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}

type userRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(conn *db.Mongo) UserRepo {
	return &userRepo{coll: conn.Database.Collection(models.User{}.Collection())}
}

func (r *userRepo) GetAdmin(ctx context.Context) (*models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"role": "admin"}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": passwordHash, "updated_at": time.Now().UTC()}},
	)
	return err
}
