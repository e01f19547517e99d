package services

import (
	"context"
	"strings"

	"wisdomcircle/internal/apperr"
	"wisdomcircle/internal/logger"
	"wisdomcircle/internal/models"
	"wisdomcircle/internal/repository"

	"go.uber.org/zap"
)

const (
	defaultFooterText           = "This website does not collect or store personal user information. All content is shared by the community for educational and philosophical discussion."
	defaultAboutText            = "Wisdom Circle – Malahida is a community dedicated to philosophy, freethought, atheism, rationalism, and Amazigh intellectual culture."
	defaultCommunityDescription = "A space for Moroccan atheists, Amazigh philosophers, freethinkers, and rationalists to share ideas and engage in meaningful discourse."
)

func defaultSocialLinks() models.SocialLinks {
	return models.SocialLinks{
		Discord:   "https://discord.gg/W5qJ4hgFxp",
		Instagram: "https://www.instagram.com/wisdom_circle0?igsh=aXFyam5iMWl2ZzZ0",
		Facebook:  "https://web.facebook.com/mazigh.apollo",
		TikTok:    "https://www.tiktok.com/@wisdomcircle1",
	}
}

type SiteService interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) (*models.Settings, error)

	ListAnnouncements(ctx context.Context) ([]*models.Announcement, error)
	CreateAnnouncement(ctx context.Context, title, message string) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}

type siteService struct {
	settings      repository.SettingsRepo
	announcements repository.AnnouncementRepo
}

func NewSiteService(settings repository.SettingsRepo, announcements repository.AnnouncementRepo) SiteService {
	return &siteService{settings: settings, announcements: announcements}
}

// GetSettings лениво создаёт единственный документ настроек с дефолтами.
func (s *siteService) GetSettings(ctx context.Context) (*models.Settings, error) {
	log := logger.WithCtx(ctx)

	settings, err := s.settings.Get(ctx)
	if err != nil {
		log.Error("Ошибка чтения настроек (repo)", zap.Error(err))
		return nil, err
	}
	if settings == nil {
		settings = &models.Settings{
			FooterText:           defaultFooterText,
			AboutText:            defaultAboutText,
			CommunityDescription: defaultCommunityDescription,
			SocialLinks:          defaultSocialLinks(),
			PodcastHighlights:    []string{},
		}
		created, err := s.settings.Create(ctx, settings)
		if err != nil {
			log.Error("Ошибка создания настроек (repo)", zap.Error(err))
			return nil, err
		}
		log.Info("Созданы настройки по умолчанию", zap.String("id", created.ID.Hex()))
		return created, nil
	}

	// В ответе дефолтные ссылки всегда заполнены
	settings.SocialLinks = mergeSocialLinks(defaultSocialLinks(), settings.SocialLinks)
	return settings, nil
}

func (s *siteService) UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) (*models.Settings, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление настроек сайта")

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.FooterText != nil {
		settings.FooterText = *req.FooterText
	}
	if req.AboutText != nil {
		settings.AboutText = *req.AboutText
	}
	if req.CommunityDescription != nil {
		settings.CommunityDescription = *req.CommunityDescription
	}
	if req.SocialLinks != nil {
		settings.SocialLinks = mergeSocialLinks(settings.SocialLinks, *req.SocialLinks)
	}
	if req.PodcastHighlights != nil {
		settings.PodcastHighlights = *req.PodcastHighlights
	}

	if err := s.settings.Update(ctx, settings); err != nil {
		log.Error("Ошибка сохранения настроек (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Настройки сохранены")
	return settings, nil
}

// mergeSocialLinks — поключевое слияние: непустые значения patch побеждают.
func mergeSocialLinks(base, patch models.SocialLinks) models.SocialLinks {
	pick := func(b, p string) string {
		if p != "" {
			return p
		}
		return b
	}
	return models.SocialLinks{
		Discord:   pick(base.Discord, patch.Discord),
		YouTube:   pick(base.YouTube, patch.YouTube),
		Instagram: pick(base.Instagram, patch.Instagram),
		Twitter:   pick(base.Twitter, patch.Twitter),
		Facebook:  pick(base.Facebook, patch.Facebook),
		TikTok:    pick(base.TikTok, patch.TikTok),
	}
}

func (s *siteService) ListAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	log := logger.WithCtx(ctx)

	list, err := s.announcements.ListActive(ctx)
	if err != nil {
		log.Error("Ошибка получения объявлений (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *siteService) CreateAnnouncement(ctx context.Context, title, message string) (*models.Announcement, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание объявления", zap.String("title", strings.TrimSpace(title)))

	if strings.TrimSpace(title) == "" || strings.TrimSpace(message) == "" {
		log.Warn("Валидация не пройдена: объявление без заголовка или текста")
		return nil, apperr.Validation("Title and message are required")
	}

	a := &models.Announcement{
		Title:   strings.TrimSpace(title),
		Message: message,
		Active:  true,
	}

	created, err := s.announcements.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка создания объявления (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Объявление создано", zap.String("id", created.ID.Hex()))
	return created, nil
}

func (s *siteService) DeleteAnnouncement(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление объявления", zap.String("id", id))

	if err := s.announcements.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления объявления (repo)", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
