package services

import (
	"context"
	"strings"

	"wisdomcircle/internal/apperr"
	"wisdomcircle/internal/logger"
	"wisdomcircle/internal/models"
	"wisdomcircle/internal/repository"
	"wisdomcircle/internal/utils"

	"go.uber.org/zap"
)

// Стартовый набор рубрик; создаётся один раз на пустом каталоге.
var defaultCategories = []models.Category{
	{Name: "Comedy", Icon: "😄", Color: "from-yellow-400 to-orange-500", Order: 1, Active: true},
	{Name: "Gaming", Icon: "🎮", Color: "from-purple-400 to-pink-500", Order: 2, Active: true},
	{Name: "Debates", Icon: "💬", Color: "from-blue-400 to-cyan-500", Order: 3, Active: true},
	{Name: "Podcasts", Icon: "🎙️", Color: "from-green-400 to-emerald-500", Order: 4, Active: true},
	{Name: "Competitions", Icon: "🏆", Color: "from-amber-400 to-yellow-500", Order: 5, Active: true},
}

type CatalogService interface {
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req models.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error)
	InitDefaultCategories(ctx context.Context) ([]*models.Category, error)

	CreateVideo(ctx context.Context, req models.CreateVideoRequest) (*models.Video, error)
	UpdateVideo(ctx context.Context, id string, req models.UpdateVideoRequest) (*models.Video, error)
	DeleteVideo(ctx context.Context, id string) error
	ListVideos(ctx context.Context, category string) ([]*models.Video, error)
}

type catalogService struct {
	categories repository.CategoryRepo
	videos     repository.VideoRepo
}

func NewCatalogService(categories repository.CategoryRepo, videos repository.VideoRepo) CatalogService {
	return &catalogService{categories: categories, videos: videos}
}

// categorySlug — нижний регистр, пробельные последовательности в дефис.
func categorySlug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (s *catalogService) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание рубрики", zap.String("name", req.Name))

	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(req.Icon) == "" || strings.TrimSpace(req.Color) == "" {
		log.Warn("Валидация не пройдена: рубрика без обязательных полей")
		return nil, apperr.Validation("Name, icon, and color are required")
	}

	slug := categorySlug(name)
	exists, err := s.categories.ExistsByNameOrSlug(ctx, name, slug)
	if err != nil {
		log.Error("Ошибка проверки уникальности рубрики (repo)", zap.Error(err))
		return nil, err
	}
	if exists {
		log.Warn("Рубрика уже существует", zap.String("slug", slug))
		return nil, apperr.Conflict("Category with this name or slug already exists")
	}

	c := &models.Category{
		Name:   name,
		Slug:   slug,
		Icon:   strings.TrimSpace(req.Icon),
		Color:  strings.TrimSpace(req.Color),
		Active: true,
	}
	if req.Order != nil {
		c.Order = *req.Order
	}
	if req.Active != nil {
		c.Active = *req.Active
	}

	created, err := s.categories.Create(ctx, c)
	if err != nil {
		log.Error("Ошибка создания рубрики (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Рубрика создана", zap.String("id", created.ID.Hex()), zap.String("slug", created.Slug))
	return created, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, req models.CreateCategoryRequest) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление рубрики", zap.String("id", id))

	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		log.Warn("Рубрика не найдена (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		c.Name = name
		c.Slug = categorySlug(name)
	}
	if icon := strings.TrimSpace(req.Icon); icon != "" {
		c.Icon = icon
	}
	if color := strings.TrimSpace(req.Color); color != "" {
		c.Color = color
	}
	if req.Order != nil {
		c.Order = *req.Order
	}
	if req.Active != nil {
		c.Active = *req.Active
	}

	if err := s.categories.Update(ctx, c); err != nil {
		log.Error("Ошибка обновления рубрики (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Рубрика обновлена", zap.String("id", id), zap.String("slug", c.Slug))
	return c, nil
}

// DeleteCategory отказывает, пока на slug рубрики ссылается хотя бы одно видео.
func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление рубрики", zap.String("id", id))

	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		log.Warn("Рубрика не найдена (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	n, err := s.videos.CountByCategory(ctx, c.Slug)
	if err != nil {
		log.Error("Ошибка подсчёта видео рубрики (repo)", zap.Error(err))
		return err
	}
	if n > 0 {
		log.Warn("Рубрика занята видео", zap.String("slug", c.Slug), zap.Int64("videos", n))
		return apperr.Conflict("Cannot delete category. It has %d video(s). Please delete or move videos first.", n)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления рубрики (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("Рубрика удалена", zap.String("id", id), zap.String("slug", c.Slug))
	return nil
}

func (s *catalogService) ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение рубрик", zap.Bool("active_only", activeOnly))

	list, err := s.categories.List(ctx, activeOnly)
	if err != nil {
		log.Error("Ошибка получения рубрик (repo)", zap.Error(err))
		return nil, err
	}

	// Пустой активный каталог заполняем стартовым набором
	if len(list) == 0 && activeOnly {
		if seeded, err := s.seedDefaults(ctx); err == nil {
			return seeded, nil
		}
		// При гонке вставки просто перечитываем
		return s.categories.List(ctx, activeOnly)
	}

	return list, nil
}

func (s *catalogService) InitDefaultCategories(ctx context.Context) ([]*models.Category, error) {
	log := logger.WithCtx(ctx)

	n, err := s.categories.Count(ctx)
	if err != nil {
		log.Error("Ошибка подсчёта рубрик (repo)", zap.Error(err))
		return nil, err
	}
	if n > 0 {
		return nil, apperr.Conflict("Categories already exist. Use the admin panel to manage them.")
	}

	return s.seedDefaults(ctx)
}

func (s *catalogService) seedDefaults(ctx context.Context) ([]*models.Category, error) {
	log := logger.WithCtx(ctx)

	cats := make([]*models.Category, 0, len(defaultCategories))
	for _, d := range defaultCategories {
		c := d
		c.Slug = categorySlug(c.Name)
		cats = append(cats, &c)
	}

	created, err := s.categories.CreateMany(ctx, cats)
	if err != nil {
		log.Warn("Не удалось создать стартовые рубрики", zap.Error(err))
		return nil, err
	}

	log.Info("Созданы стартовые рубрики", zap.Int("count", len(created)))
	return created, nil
}

func (s *catalogService) CreateVideo(ctx context.Context, req models.CreateVideoRequest) (*models.Video, error) {
	log := logger.WithCtx(ctx)
	log.Info("Добавление видео", zap.String("title", req.Title), zap.String("category", req.Category))

	title := strings.TrimSpace(req.Title)
	url := strings.TrimSpace(req.YouTubeURL)
	category := strings.TrimSpace(req.Category)
	if title == "" || url == "" || category == "" {
		log.Warn("Валидация не пройдена: видео без обязательных полей")
		return nil, apperr.Validation("Title, YouTube URL, and category are required")
	}

	youtubeID := utils.ExtractYouTubeID(url)
	if youtubeID == "" {
		log.Warn("Не удалось извлечь идентификатор ролика", zap.String("url", url))
		return nil, apperr.Validation("Invalid YouTube URL. Please provide a valid YouTube video URL (e.g., https://www.youtube.com/watch?v=VIDEO_ID or https://youtu.be/VIDEO_ID)")
	}

	v := &models.Video{
		Title:       title,
		YouTubeURL:  url,
		YouTubeID:   youtubeID,
		Thumbnail:   utils.ThumbnailURL(youtubeID),
		Category:    category,
		Description: strings.TrimSpace(req.Description),
	}

	created, err := s.videos.Create(ctx, v)
	if err != nil {
		log.Error("Ошибка создания видео (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Видео добавлено", zap.String("id", created.ID.Hex()), zap.String("youtube_id", youtubeID))
	return created, nil
}

func (s *catalogService) UpdateVideo(ctx context.Context, id string, req models.UpdateVideoRequest) (*models.Video, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление видео", zap.String("id", id))

	v, err := s.videos.GetByID(ctx, id)
	if err != nil {
		log.Warn("Видео не найдено (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		v.Title = strings.TrimSpace(*req.Title)
	}
	if req.YouTubeURL != nil {
		v.YouTubeURL = strings.TrimSpace(*req.YouTubeURL)
	}
	if req.Description != nil {
		v.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		v.Category = strings.TrimSpace(*req.Category)
	}

	if err := s.videos.Update(ctx, v); err != nil {
		log.Error("Ошибка обновления видео (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Видео обновлено", zap.String("id", id))
	return v, nil
}

func (s *catalogService) DeleteVideo(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление видео", zap.String("id", id))

	if err := s.videos.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления видео (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("Видео удалено", zap.String("id", id))
	return nil
}

func (s *catalogService) ListVideos(ctx context.Context, category string) ([]*models.Video, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение видео", zap.String("category", category))

	list, err := s.videos.List(ctx, category)
	if err != nil {
		log.Error("Ошибка получения видео (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список видео получен", zap.Int("count", len(list)))
	return list, nil
}
