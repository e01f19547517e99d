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

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	// GetApprovedBySlugAndView атомарно инкрементирует счётчик просмотров и
	// возвращает обновлённый документ; смотрит только на одобренные статьи.
	GetApprovedBySlugAndView(ctx context.Context, slug string) (*models.Article, error)
	List(ctx context.Context, approved *bool, limit int, excludeContent bool) ([]*models.Article, error)
	SetApproved(ctx context.Context, id string, approved bool) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.ArticleStats, error)
}

type articleRepo struct {
	coll *mongo.Collection
}

func NewArticleRepo(conn *db.Mongo) ArticleRepo {
	return &articleRepo{coll: conn.Database.Collection(models.Article{}.Collection())}
}

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
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

func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Article not found")
	}

	var a models.Article
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Article not found")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) GetApprovedBySlugAndView(ctx context.Context, slug string) (*models.Article, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a models.Article
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"slug": slug, "approved": true},
		bson.M{
			"$inc": bson.M{"views": 1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		opts,
	).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Article not found")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) List(ctx context.Context, approved *bool, limit int, excludeContent bool) ([]*models.Article, error) {
	filter := bson.M{}
	if approved != nil {
		filter["approved"] = *approved
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if excludeContent {
		// Списку полный текст не нужен — его отдаёт детальная выборка
		opts.SetProjection(bson.M{"content": 0})
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []*models.Article
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *articleRepo) SetApproved(ctx context.Context, id string, approved bool) (*models.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Article not found")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a models.Article
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"approved": approved, "updated_at": time.Now().UTC()}},
		opts,
	).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Article not found")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Article not found")
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("Article not found")
	}
	return nil
}

func (r *articleRepo) Stats(ctx context.Context) (*models.ArticleStats, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	approved, err := r.coll.CountDocuments(ctx, bson.M{"approved": true})
	if err != nil {
		return nil, err
	}

	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$views"}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var agg []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &agg); err != nil {
		return nil, err
	}

	stats := &models.ArticleStats{
		TotalArticles:    total,
		ApprovedArticles: approved,
		PendingArticles:  total - approved,
	}
	if len(agg) > 0 {
		stats.TotalViews = agg[0].Total
	}
	return stats, nil
}
