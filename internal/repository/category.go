package repository

import (
	"context"
	"errors"
	"time"

	"wisdomcircle/internal/apperr"
	"wisdomcircle/internal/db"
	"wisdomcircle/internal/logger"
	"wisdomcircle/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const categoryListCap = 20

type CategoryRepo interface {
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	CreateMany(ctx context.Context, cats []*models.Category) ([]*models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error)
}

type categoryRepo struct {
	coll *mongo.Collection
}

func NewCategoryRepo(conn *db.Mongo) CategoryRepo {
	coll := conn.Database.Collection(models.Category{}.Collection())
	ensureCategoryIndexes(coll)
	return &categoryRepo{coll: coll}
}

// Уникальность имени и slug держит сама база; ветки IsDuplicateKeyError в
// Create/Update рассчитывают на эти индексы.
func ensureCategoryIndexes(coll *mongo.Collection) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		logger.WithCtx(ctx).Warn("Не удалось создать индексы рубрик", zap.Error(err))
	}
}

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperr.Conflict("Category with this name or slug already exists")
	}
	if err != nil {
		return nil, err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return c, nil
}

func (r *categoryRepo) CreateMany(ctx context.Context, cats []*models.Category) ([]*models.Category, error) {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(cats))
	for _, c := range cats {
		c.CreatedAt = now
		c.UpdatedAt = now
		docs = append(docs, c)
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	for i, id := range res.InsertedIDs {
		cats[i].ID = id.(primitive.ObjectID)
	}
	return cats, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Category not found")
	}

	var c models.Category
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Category not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}}).
		SetLimit(categoryListCap)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []*models.Category
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *categoryRepo) Update(ctx context.Context, c *models.Category) error {
	c.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("Category with this name or slug already exists")
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Category not found")
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Category not found")
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("Category not found")
	}
	return nil
}

func (r *categoryRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *categoryRepo) ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{
		"$or": []bson.M{{"name": name}, {"slug": slug}},
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
