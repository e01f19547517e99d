package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Article struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content,omitempty" json:"content,omitempty"`
	Author    string             `bson:"author" json:"author"`
	Slug      string             `bson:"slug" json:"slug"`
	ImageURL  string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Views     int                `bson:"views" json:"views"`
	Approved  bool               `bson:"approved" json:"approved"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (Article) Collection() string { return "articles" }

// swagger:model SubmitArticleRequest
type SubmitArticleRequest struct {
	Title    string `json:"title" example:"لماذا نفكر؟"`
	Content  string `json:"content" example:"نص المقال بصيغة ماركداون"`
	Author   string `json:"author" example:"مجهول"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type ArticleStats struct {
	TotalArticles    int64 `json:"totalArticles"`
	ApprovedArticles int64 `json:"approvedArticles"`
	PendingArticles  int64 `json:"pendingArticles"`
	TotalViews       int64 `json:"totalViews"`
}
