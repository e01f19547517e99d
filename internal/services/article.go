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

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type ArticleService interface {
	Submit(ctx context.Context, req models.SubmitArticleRequest) (*models.Article, error)
	ListPublic(ctx context.Context, limit int) ([]*models.Article, error)
	ListAdmin(ctx context.Context, approved *bool) ([]*models.Article, error)
	// ViewDetail отдаёт одобренную статью по slug и засчитывает просмотр.
	ViewDetail(ctx context.Context, slug string) (*models.Article, error)
	SetApproved(ctx context.Context, id string, approved bool) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.ArticleStats, error)
}

type articleService struct {
	repo   repository.ArticleRepo
	policy *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepo) ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &articleService{repo: repo, policy: p}
}

func (s *articleService) Submit(ctx context.Context, req models.SubmitArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Приём статьи",
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.String("author", strings.TrimSpace(req.Author)),
	)

	title := strings.TrimSpace(req.Title)
	author := strings.TrimSpace(req.Author)
	if title == "" || strings.TrimSpace(req.Content) == "" || author == "" {
		log.Warn("Валидация не пройдена: статья без обязательных полей")
		return nil, apperr.Validation("Missing required fields")
	}

	a := &models.Article{
		Title:    title,
		Content:  s.policy.Sanitize(req.Content),
		Author:   author,
		ImageURL: strings.TrimSpace(req.ImageURL),
		Slug:     utils.ArticleSlug(title, time.Now()),
		Views:    0,
		Approved: false,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Статья принята на модерацию",
		zap.String("id", created.ID.Hex()),
		zap.String("slug", created.Slug),
	)
	return created, nil
}

func (s *articleService) ListPublic(ctx context.Context, limit int) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Публичный список статей", zap.Int("limit", limit))

	approved := true
	list, err := s.repo.List(ctx, &approved, limit, true)
	if err != nil {
		log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список статей получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *articleService) ListAdmin(ctx context.Context, approved *bool) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Модераторский список статей", zap.Any("approved", approved))

	list, err := s.repo.List(ctx, approved, 0, false)
	if err != nil {
		log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *articleService) ViewDetail(ctx context.Context, slug string) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Просмотр статьи", zap.String("slug", slug))

	// Каждый просмотр засчитывается, без дедупликации
	a, err := s.repo.GetApprovedBySlugAndView(ctx, slug)
	if err != nil {
		log.Warn("Статья не найдена или не одобрена (repo)", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	log.Debug("Статья получена", zap.String("slug", slug), zap.Int("views", a.Views))
	return a, nil
}

func (s *articleService) SetApproved(ctx context.Context, id string, approved bool) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Изменение статуса одобрения статьи", zap.String("id", id), zap.Bool("approved", approved))

	a, err := s.repo.SetApproved(ctx, id, approved)
	if err != nil {
		log.Warn("Статья для одобрения не найдена (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Статус одобрения изменён", zap.String("id", id), zap.Bool("approved", a.Approved))
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.String("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления статьи (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("Статья удалена", zap.String("id", id))
	return nil
}

func (s *articleService) Stats(ctx context.Context) (*models.ArticleStats, error) {
	log := logger.WithCtx(ctx)

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		log.Error("Ошибка подсчёта статистики статей (repo)", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
