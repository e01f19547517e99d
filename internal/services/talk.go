package services

import (
	"context"
	"strings"
	"time"

	"wisdomcircle/internal/apperr"
	"wisdomcircle/internal/logger"
	"wisdomcircle/internal/models"
	"wisdomcircle/internal/repository"
	"wisdomcircle/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateTalkRequest — пользовательская заявка на обсуждение.
// swagger:model CreateTalkRequest
type CreateTalkRequest struct {
	Title      string `json:"title,omitempty"`
	Text       string `json:"text"`
	Nickname   string `json:"nickname,omitempty"`
	Name       string `json:"name,omitempty"`
	Category   string `json:"category,omitempty"`
	Visibility string `json:"visibility"`
	Email      string `json:"email,omitempty"`
}

type CommentPayload struct {
	Nickname string `json:"nickname"`
	Text     string `json:"text"`
}

// EngagementRequest — публичная правка обсуждения: лайки и комментарии.
// Статус здесь сознательно не принимается: все переходы статуса идут только
// через Moderate.
// swagger:model EngagementRequest
type EngagementRequest struct {
	Likes   *int            `json:"likes,omitempty"`
	Comment *CommentPayload `json:"comment,omitempty"`
}

type TalkService interface {
	Create(ctx context.Context, req CreateTalkRequest) (*models.Talk, error)
	Get(ctx context.Context, id string) (*models.Talk, error)
	List(ctx context.Context, onlyPublic bool) ([]*models.Talk, error)
	UpdateEngagement(ctx context.Context, id string, req EngagementRequest) (*models.Talk, error)
	Moderate(ctx context.Context, id, action string) (*models.Talk, error)
	SoftDelete(ctx context.Context, id string) (*models.Talk, error)
	DeleteComment(ctx context.Context, talkID, commentID string) (*models.Talk, error)
}

type talkService struct {
	repo repository.TalkRepo
}

func NewTalkService(repo repository.TalkRepo) TalkService {
	return &talkService{repo: repo}
}

func (s *talkService) Create(ctx context.Context, req CreateTalkRequest) (*models.Talk, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание обсуждения",
		zap.String("visibility", req.Visibility),
		zap.String("category", req.Category),
	)

	talk := &models.Talk{
		Title:      strings.TrimSpace(req.Title),
		Text:       req.Text,
		Nickname:   strings.TrimSpace(req.Nickname),
		Category:   strings.TrimSpace(req.Category),
		Visibility: req.Visibility,
		Date:       time.Now().UTC(),
		Likes:      0,
		Comments:   []models.Comment{},
		Status:     models.StatusPending,
	}
	if talk.Nickname == "" {
		talk.Nickname = strings.TrimSpace(req.Name)
	}

	switch req.Visibility {
	case models.VisibilityPublic:
		if talk.Title == "" || talk.Text == "" || talk.Nickname == "" || talk.Category == "" {
			log.Warn("Валидация не пройдена: публичное обсуждение без обязательных полей")
			return nil, apperr.Validation("Missing required fields for public post")
		}
		talk.Slug = utils.MakeSlug(talk.Title)

	case models.VisibilityPrivate:
		if talk.Text == "" {
			log.Warn("Валидация не пройдена: приватное обсуждение без текста")
			return nil, apperr.Validation("Text is required for private submission")
		}
		email := strings.TrimSpace(req.Email)
		if !utils.IsValidEmail(email) {
			log.Warn("Валидация не пройдена: невалидный email приватного обсуждения")
			return nil, apperr.Validation("Valid email is required for private submission")
		}
		talk.Email = email

	default:
		log.Warn("Валидация не пройдена: неизвестная видимость", zap.String("visibility", req.Visibility))
		return nil, apperr.Validation("Invalid visibility")
	}

	created, err := s.repo.Create(ctx, talk)
	if err != nil {
		log.Error("Ошибка создания обсуждения (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Обсуждение создано",
		zap.String("id", created.ID.Hex()),
		zap.String("visibility", created.Visibility),
		zap.String("slug", created.Slug),
	)
	return created, nil
}

func (s *talkService) Get(ctx context.Context, id string) (*models.Talk, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение обсуждения", zap.String("id", id))

	talk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Обсуждение не найдено (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return talk, nil
}

func (s *talkService) List(ctx context.Context, onlyPublic bool) ([]*models.Talk, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка обсуждений", zap.Bool("only_public", onlyPublic))

	talks, err := s.repo.List(ctx, onlyPublic)
	if err != nil {
		log.Error("Ошибка получения списка обсуждений (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список обсуждений получен", zap.Int("count", len(talks)))
	return talks, nil
}

func (s *talkService) UpdateEngagement(ctx context.Context, id string, req EngagementRequest) (*models.Talk, error) {
	log := logger.WithCtx(ctx)

	talk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Обсуждение для правки не найдено (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Likes != nil {
		if *req.Likes < 0 {
			log.Warn("Валидация не пройдена: отрицательные лайки", zap.Int("likes", *req.Likes))
			return nil, apperr.Validation("Likes must be a non-negative number")
		}
		// Клиент присылает абсолютное значение (current ± 1), перезаписываем
		talk.Likes = *req.Likes
	}

	if req.Comment != nil && req.Comment.Text != "" && req.Comment.Nickname != "" {
		talk.Comments = append(talk.Comments, models.Comment{
			ID:       primitive.NewObjectID(),
			Nickname: req.Comment.Nickname,
			Text:     req.Comment.Text,
			Date:     time.Now().UTC(),
		})
	}
	// Неполный комментарий молча игнорируется — без ошибки

	if err := s.repo.Update(ctx, talk); err != nil {
		log.Error("Ошибка сохранения обсуждения (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Обсуждение обновлено",
		zap.String("id", id),
		zap.Int("likes", talk.Likes),
		zap.Int("comments", len(talk.Comments)),
	)
	return talk, nil
}

// Moderate — единственная операция смены статуса. Словарь действий закрыт,
// повторное применение того же действия идемпотентно.
func (s *talkService) Moderate(ctx context.Context, id, action string) (*models.Talk, error) {
	log := logger.WithCtx(ctx)
	log.Info("Модерация обсуждения", zap.String("id", id), zap.String("action", action))

	var status string
	switch action {
	case "approve":
		status = models.StatusApproved
	case "responded":
		status = models.StatusResponded
	case "delete":
		status = models.StatusDeleted
	default:
		log.Warn("Неизвестное действие модерации", zap.String("action", action))
		return nil, apperr.Validation("Invalid action")
	}

	talk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Обсуждение для модерации не найдено (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	talk.Status = status
	if err := s.repo.Update(ctx, talk); err != nil {
		log.Error("Ошибка сохранения статуса (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Статус обсуждения изменён", zap.String("id", id), zap.String("status", status))
	return talk, nil
}

func (s *talkService) SoftDelete(ctx context.Context, id string) (*models.Talk, error) {
	return s.Moderate(ctx, id, "delete")
}

func (s *talkService) DeleteComment(ctx context.Context, talkID, commentID string) (*models.Talk, error) {
	log := logger.WithCtx(ctx)
	log.Info("Удаление комментария", zap.String("talk_id", talkID), zap.String("comment_id", commentID))

	talk, err := s.repo.GetByID(ctx, talkID)
	if err != nil {
		log.Warn("Обсуждение не найдено (repo)", zap.String("talk_id", talkID), zap.Error(err))
		return nil, err
	}

	idx := -1
	for i, c := range talk.Comments {
		if c.ID.Hex() == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Warn("Комментарий не найден", zap.String("comment_id", commentID))
		return nil, apperr.NotFound("Comment not found")
	}

	talk.Comments = append(talk.Comments[:idx], talk.Comments[idx+1:]...)

	if err := s.repo.Update(ctx, talk); err != nil {
		log.Error("Ошибка сохранения после удаления комментария (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Комментарий удалён", zap.String("talk_id", talkID), zap.String("comment_id", commentID))
	return talk, nil
}
