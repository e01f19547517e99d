package services

import (
	"context"
	"testing"

	"wisdomcircle/internal/apperr"
	"wisdomcircle/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Мок-репозитории (заглушки)
type mockSettingsRepo struct {
	stored *models.Settings
}

func (m *mockSettingsRepo) Get(_ context.Context) (*models.Settings, error) {
	if m.stored == nil {
		return nil, nil
	}
	cp := *m.stored
	return &cp, nil
}

func (m *mockSettingsRepo) Create(_ context.Context, s *models.Settings) (*models.Settings, error) {
	s.ID = primitive.NewObjectID()
	cp := *s
	m.stored = &cp
	return s, nil
}

func (m *mockSettingsRepo) Update(_ context.Context, s *models.Settings) error {
	if m.stored == nil || m.stored.ID != s.ID {
		return apperr.NotFound("Settings not found")
	}
	cp := *s
	m.stored = &cp
	return nil
}

type mockAnnouncementRepo struct {
	items map[string]*models.Announcement
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{items: make(map[string]*models.Announcement)}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *models.Announcement) (*models.Announcement, error) {
	a.ID = primitive.NewObjectID()
	cp := *a
	m.items[a.ID.Hex()] = &cp
	return a, nil
}

func (m *mockAnnouncementRepo) ListActive(_ context.Context) ([]*models.Announcement, error) {
	var out []*models.Announcement
	for _, a := range m.items {
		if !a.Active {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return apperr.NotFound("Announcement not found")
	}
	delete(m.items, id)
	return nil
}

func TestGetSettings_LazyCreate(t *testing.T) {
	repo := &mockSettingsRepo{}
	service := NewSiteService(repo, newMockAnnouncementRepo())

	s, err := service.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("ошибка получения настроек: %v", err)
	}
	if repo.stored == nil {
		t.Fatal("настройки должны создаваться лениво")
	}
	if s.SocialLinks.Discord == "" || s.SocialLinks.Instagram == "" {
		t.Fatalf("дефолтные соцсети должны быть заполнены: %+v", s.SocialLinks)
	}
	if s.FooterText == "" || s.AboutText == "" {
		t.Fatal("дефолтные тексты должны быть заполнены")
	}
}

func TestGetSettings_MergesDefaultLinks(t *testing.T) {
	repo := &mockSettingsRepo{stored: &models.Settings{
		ID:          primitive.NewObjectID(),
		FooterText:  "свой футер",
		SocialLinks: models.SocialLinks{YouTube: "https://youtube.com/@custom"},
	}}
	service := NewSiteService(repo, newMockAnnouncementRepo())

	s, err := service.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("ошибка получения настроек: %v", err)
	}
	if s.SocialLinks.YouTube != "https://youtube.com/@custom" {
		t.Fatalf("своя ссылка должна сохраняться: %q", s.SocialLinks.YouTube)
	}
	if s.SocialLinks.Discord == "" {
		t.Fatal("незаполненные ссылки должны браться из дефолтов")
	}
}

func TestUpdateSettings_PartialPatch(t *testing.T) {
	repo := &mockSettingsRepo{}
	service := NewSiteService(repo, newMockAnnouncementRepo())

	footer := "новый футер"
	links := models.SocialLinks{Twitter: "https://x.com/wisdom"}
	s, err := service.UpdateSettings(context.Background(), models.UpdateSettingsRequest{
		FooterText:  &footer,
		SocialLinks: &links,
	})
	if err != nil {
		t.Fatalf("ошибка обновления настроек: %v", err)
	}
	if s.FooterText != "новый футер" {
		t.Fatalf("футер не обновлён: %q", s.FooterText)
	}
	if s.SocialLinks.Twitter != "https://x.com/wisdom" {
		t.Fatalf("twitter не обновлён: %q", s.SocialLinks.Twitter)
	}
	if s.SocialLinks.Discord == "" {
		t.Fatal("слияние соцсетей не должно затирать остальные ключи")
	}
	if s.AboutText == "" {
		t.Fatal("нетронутые тексты должны сохраняться")
	}
}

func TestAnnouncements(t *testing.T) {
	service := NewSiteService(&mockSettingsRepo{}, newMockAnnouncementRepo())

	if _, err := service.CreateAnnouncement(context.Background(), " ", "текст"); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("пустой заголовок должен давать ошибку валидации, получено: %v", err)
	}

	a, err := service.CreateAnnouncement(context.Background(), "Событие", "в пятницу")
	if err != nil {
		t.Fatalf("ошибка создания объявления: %v", err)
	}
	if !a.Active {
		t.Fatal("новое объявление должно быть активным")
	}

	list, _ := service.ListAnnouncements(context.Background())
	if len(list) != 1 {
		t.Fatalf("ожидалось одно объявление: %d", len(list))
	}

	if err := service.DeleteAnnouncement(context.Background(), a.ID.Hex()); err != nil {
		t.Fatalf("ошибка удаления объявления: %v", err)
	}
	list, _ = service.ListAnnouncements(context.Background())
	if len(list) != 0 {
		t.Fatalf("объявление не удалено: %d", len(list))
	}
}
