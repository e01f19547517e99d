package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Видимость и статус модерации обсуждения.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"

	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusResponded = "responded"
	StatusDeleted   = "deleted"
)

// Дефолты для сериализации: приватные сообщения отдаются без личных полей.
const (
	DefaultTalkTitle    = "مشاركة خاصة"
	DefaultTalkNickname = "مجهول"
	DefaultTalkCategory = "أخرى"
)

type Comment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Nickname string             `bson:"nickname,omitempty"`
	Text     string             `bson:"text"`
	Date     time.Time          `bson:"date"`
}

type Talk struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title,omitempty"`
	Text       string             `bson:"text"`
	Nickname   string             `bson:"nickname,omitempty"`
	Category   string             `bson:"category,omitempty"`
	Visibility string             `bson:"visibility"`
	Date       time.Time          `bson:"date"`
	Likes      int                `bson:"likes"`
	Comments   []Comment          `bson:"comments"`
	Status     string             `bson:"status"`
	Slug       string             `bson:"slug,omitempty"`
	// Email хранится только для приватных сообщений и наружу не отдаётся.
	Email     string    `bson:"email,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (Talk) Collection() string { return "talks" }

type CommentResponse struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Text     string `json:"text"`
	Date     string `json:"date"`
}

type TalkResponse struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Text       string            `json:"text"`
	Nickname   string            `json:"nickname"`
	Category   string            `json:"category"`
	Visibility string            `json:"visibility"`
	Date       string            `json:"date"`
	Likes      int               `json:"likes"`
	Comments   []CommentResponse `json:"comments"`
	Status     string            `json:"status"`
	Slug       string            `json:"slug,omitempty"`
	Email      string            `json:"email,omitempty"`
}

// Serialize собирает ответ API с дефолтами вместо пустых полей.
// Email попадает в ответ только при includeEmail (модераторская выборка).
func (t *Talk) Serialize(includeEmail bool) TalkResponse {
	resp := TalkResponse{
		ID:         t.ID.Hex(),
		Title:      orDefault(t.Title, DefaultTalkTitle),
		Text:       t.Text,
		Nickname:   orDefault(t.Nickname, DefaultTalkNickname),
		Category:   orDefault(t.Category, DefaultTalkCategory),
		Visibility: t.Visibility,
		Date:       talkDate(t).UTC().Format(time.RFC3339),
		Likes:      t.Likes,
		Comments:   make([]CommentResponse, 0, len(t.Comments)),
		Status:     t.Status,
		Slug:       t.Slug,
	}
	for _, c := range t.Comments {
		resp.Comments = append(resp.Comments, CommentResponse{
			ID:       c.ID.Hex(),
			Nickname: orDefault(c.Nickname, DefaultTalkNickname),
			Text:     c.Text,
			Date:     c.Date.UTC().Format(time.RFC3339),
		})
	}
	if includeEmail {
		resp.Email = t.Email
	}
	return resp
}

func talkDate(t *Talk) time.Time {
	if !t.Date.IsZero() {
		return t.Date
	}
	if !t.CreatedAt.IsZero() {
		return t.CreatedAt
	}
	return time.Now()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
