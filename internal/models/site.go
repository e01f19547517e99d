package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialLinks struct {
	Discord   string `bson:"discord,omitempty" json:"discord,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	TikTok    string `bson:"tiktok,omitempty" json:"tiktok,omitempty"`
}

// Settings — единственный документ с настройками сайта.
type Settings struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FooterText           string             `bson:"footer_text" json:"footerText"`
	AboutText            string             `bson:"about_text" json:"aboutText"`
	CommunityDescription string             `bson:"community_description" json:"communityDescription"`
	SocialLinks          SocialLinks        `bson:"social_links" json:"socialLinks"`
	PodcastHighlights    []string           `bson:"podcast_highlights" json:"podcastHighlights"`
	CreatedAt            time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (Settings) Collection() string { return "settings" }

type UpdateSettingsRequest struct {
	FooterText           *string      `json:"footerText,omitempty"`
	AboutText            *string      `json:"aboutText,omitempty"`
	CommunityDescription *string      `json:"communityDescription,omitempty"`
	SocialLinks          *SocialLinks `json:"socialLinks,omitempty"`
	PodcastHighlights    *[]string    `json:"podcastHighlights,omitempty"`
}

type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"lastUpdated"`
}

func (Announcement) Collection() string { return "announcements" }
