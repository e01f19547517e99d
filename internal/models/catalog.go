package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	Icon      string             `bson:"icon" json:"icon"`
	Color     string             `bson:"color" json:"color"`
	Active    bool               `bson:"active" json:"active"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (Category) Collection() string { return "categories" }

type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	YouTubeURL  string             `bson:"youtube_url" json:"youtubeUrl"`
	YouTubeID   string             `bson:"youtube_id" json:"youtubeId"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Thumbnail   string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (Video) Collection() string { return "videos" }

// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Order  *int   `json:"order,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// swagger:model CreateVideoRequest
type CreateVideoRequest struct {
	Title       string `json:"title"`
	YouTubeURL  string `json:"youtubeUrl"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title,omitempty"`
	YouTubeURL  *string `json:"youtubeUrl,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
}
