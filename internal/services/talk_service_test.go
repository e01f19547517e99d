package services

import (
	"context"
	"testing"
	"time"

	"wisdomcircle/internal/apperr"
	"wisdomcircle/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Мок-репозиторий (заглушка)
type mockTalkRepo struct {
	talks map[string]*models.Talk
}

func newMockTalkRepo() *mockTalkRepo {
	return &mockTalkRepo{talks: make(map[string]*models.Talk)}
}

func (m *mockTalkRepo) Create(_ context.Context, talk *models.Talk) (*models.Talk, error) {
	talk.ID = primitive.NewObjectID()
	talk.CreatedAt = time.Now().UTC()
	talk.UpdatedAt = talk.CreatedAt
	cp := *talk
	m.talks[talk.ID.Hex()] = &cp
	return talk, nil
}

func (m *mockTalkRepo) GetByID(_ context.Context, id string) (*models.Talk, error) {
	t, ok := m.talks[id]
	if !ok {
		return nil, apperr.NotFound("Talk not found")
	}
	cp := *t
	return &cp, nil
}

func (m *mockTalkRepo) List(_ context.Context, onlyPublic bool) ([]*models.Talk, error) {
	var out []*models.Talk
	for _, t := range m.talks {
		if onlyPublic && (t.Visibility != models.VisibilityPublic || t.Status == models.StatusDeleted) {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockTalkRepo) Update(_ context.Context, talk *models.Talk) error {
	if _, ok := m.talks[talk.ID.Hex()]; !ok {
		return apperr.NotFound("Talk not found")
	}
	cp := *talk
	m.talks[talk.ID.Hex()] = &cp
	return nil
}

func TestCreateTalk_PublicRequiresFields(t *testing.T) {
	service := NewTalkService(newMockTalkRepo())

	_, err := service.Create(context.Background(), CreateTalkRequest{
		Visibility: models.VisibilityPublic,
		Text:       "текст без заголовка",
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("ожидалась ошибка валидации, получено: %v", err)
	}
}

func TestCreateTalk_PublicSlugArabic(t *testing.T) {
	service := NewTalkService(newMockTalkRepo())

	talk, err := service.Create(context.Background(), CreateTalkRequest{
		Title:      "مرحبا بالعالم",
		Text:       "نص",
		Nickname:   "زائر",
		Category:   "أخرى",
		Visibility: models.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}
	if talk.Slug != "مرحبا-بالعالم" {
		t.Fatalf("неверный slug: %q", talk.Slug)
	}
	if talk.Status != models.StatusPending {
		t.Fatalf("новое обсуждение должно быть pending, получено: %q", talk.Status)
	}
}

func TestCreateTalk_NameFallback(t *testing.T) {
	service := NewTalkService(newMockTalkRepo())

	talk, err := service.Create(context.Background(), CreateTalkRequest{
		Title:      "Заголовок",
		Text:       "Текст",
		Name:       "Пётр",
		Category:   "أخرى",
		Visibility: models.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}
	if talk.Nickname != "Пётр" {
		t.Fatalf("поле name должно подставляться как nickname, получено: %q", talk.Nickname)
	}
}

func TestCreateTalk_PrivateEmail(t *testing.T) {
	service := NewTalkService(newMockTalkRepo())

	// без текста
	_, err := service.Create(context.Background(), CreateTalkRequest{
		Visibility: models.VisibilityPrivate,
		Email:      "a@b.co",
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("ожидалась ошибка валидации (нет текста), получено: %v", err)
	}

	// невалидный email
	_, err = service.Create(context.Background(), CreateTalkRequest{
		Visibility: models.VisibilityPrivate,
		Text:       "وصية خاصة",
		Email:      "not-an-email",
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("ожидалась ошибка валидации (email), получено: %v", err)
	}

	// валидный
	talk, err := service.Create(context.Background(), CreateTalkRequest{
		Visibility: models.VisibilityPrivate,
		Text:       "وصية خاصة",
		Email:      "a@b.co",
	})
	if err != nil {
		t.Fatalf("ошибка создания приватного обсуждения: %v", err)
	}
	if talk.Email != "a@b.co" {
		t.Fatalf("email не сохранён: %q", talk.Email)
	}
	if talk.Slug != "" {
		t.Fatalf("приватное обсуждение не должно получать slug, получено: %q", talk.Slug)
	}
}

func TestCreateTalk_InvalidVisibility(t *testing.T) {
	service := NewTalkService(newMockTalkRepo())

	_, err := service.Create(context.Background(), CreateTalkRequest{
		Visibility: "friends-only",
		Text:       "текст",
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("ожидалась ошибка валидации, получено: %v", err)
	}
}

func TestSerialize_DefaultsAndEmail(t *testing.T) {
	talk := &models.Talk{
		ID:         primitive.NewObjectID(),
		Text:       "نص",
		Visibility: models.VisibilityPrivate,
		Email:      "secret@example.com",
		Date:       time.Now().UTC(),
	}

	pub := talk.Serialize(false)
	if pub.Email != "" {
		t.Fatal("email не должен попадать в публичную сериализацию")
	}
	if pub.Title != models.DefaultTalkTitle || pub.Nickname != models.DefaultTalkNickname || pub.Category != models.DefaultTalkCategory {
		t.Fatalf("пустые поля должны заполняться значениями по умолчанию: %+v", pub)
	}

	adm := talk.Serialize(true)
	if adm.Email != "secret@example.com" {
		t.Fatalf("админская сериализация должна включать email, получено: %q", adm.Email)
	}
}

func TestModerate_TransitionsAndIdempotence(t *testing.T) {
	repo := newMockTalkRepo()
	service := NewTalkService(repo)

	created, err := service.Create(context.Background(), CreateTalkRequest{
		Title:      "Заголовок",
		Text:       "Текст",
		Nickname:   "ник",
		Category:   "أخرى",
		Visibility: models.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}
	id := created.ID.Hex()

	talk, err := service.Moderate(context.Background(), id, "approve")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if talk.Status != models.StatusApproved {
		t.Fatalf("approve: status=%q", talk.Status)
	}

	// повторное применение того же действия не ошибка
	talk, err = service.Moderate(context.Background(), id, "approve")
	if err != nil {
		t.Fatalf("повторный approve: %v", err)
	}
	if talk.Status != models.StatusApproved {
		t.Fatalf("повторный approve: status=%q", talk.Status)
	}

	if _, err := service.Moderate(context.Background(), id, "publish"); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("неизвестное действие должно давать ошибку валидации, получено: %v", err)
	}

	talk, err = service.SoftDelete(context.Background(), id)
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if talk.Status != models.StatusDeleted {
		t.Fatalf("soft delete: status=%q", talk.Status)
	}
}

func TestUpdateEngagement(t *testing.T) {
	repo := newMockTalkRepo()
	service := NewTalkService(repo)

	created, _ := service.Create(context.Background(), CreateTalkRequest{
		Title:      "Заголовок",
		Text:       "Текст",
		Nickname:   "ник",
		Category:   "أخرى",
		Visibility: models.VisibilityPublic,
	})
	id := created.ID.Hex()

	likes := 5
	talk, err := service.UpdateEngagement(context.Background(), id, EngagementRequest{
		Likes:   &likes,
		Comment: &CommentPayload{Nickname: "гость", Text: "отличная тема"},
	})
	if err != nil {
		t.Fatalf("ошибка правки: %v", err)
	}
	if talk.Likes != 5 {
		t.Fatalf("likes=%d, ожидалось 5", talk.Likes)
	}
	if len(talk.Comments) != 1 || talk.Comments[0].ID.IsZero() {
		t.Fatalf("комментарий не добавлен или без id: %+v", talk.Comments)
	}

	// неполный комментарий молча игнорируется
	talk, err = service.UpdateEngagement(context.Background(), id, EngagementRequest{
		Comment: &CommentPayload{Text: "без ника"},
	})
	if err != nil {
		t.Fatalf("неполный комментарий не должен быть ошибкой: %v", err)
	}
	if len(talk.Comments) != 1 {
		t.Fatalf("неполный комментарий не должен добавляться: %d", len(talk.Comments))
	}

	negative := -1
	if _, err := service.UpdateEngagement(context.Background(), id, EngagementRequest{Likes: &negative}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("отрицательные лайки должны давать ошибку валидации, получено: %v", err)
	}
}

func TestDeleteComment(t *testing.T) {
	repo := newMockTalkRepo()
	service := NewTalkService(repo)

	created, _ := service.Create(context.Background(), CreateTalkRequest{
		Title:      "Заголовок",
		Text:       "Текст",
		Nickname:   "ник",
		Category:   "أخرى",
		Visibility: models.VisibilityPublic,
	})
	id := created.ID.Hex()

	likes := 0
	talk, _ := service.UpdateEngagement(context.Background(), id, EngagementRequest{
		Likes:   &likes,
		Comment: &CommentPayload{Nickname: "гость", Text: "комментарий"},
	})
	commentID := talk.Comments[0].ID.Hex()

	if _, err := service.DeleteComment(context.Background(), id, primitive.NewObjectID().Hex()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("чужой comment_id должен давать not found, получено: %v", err)
	}

	talk, err := service.DeleteComment(context.Background(), id, commentID)
	if err != nil {
		t.Fatalf("ошибка удаления комментария: %v", err)
	}
	if len(talk.Comments) != 0 {
		t.Fatalf("комментарий не удалён: %d", len(talk.Comments))
	}
}

func TestListTalks_PublicFilter(t *testing.T) {
	repo := newMockTalkRepo()
	service := NewTalkService(repo)

	pub, _ := service.Create(context.Background(), CreateTalkRequest{
		Title: "Публичная", Text: "т", Nickname: "н", Category: "أخرى",
		Visibility: models.VisibilityPublic,
	})
	_, _ = service.Create(context.Background(), CreateTalkRequest{
		Visibility: models.VisibilityPrivate, Text: "приватная", Email: "a@b.co",
	})
	deleted, _ := service.Create(context.Background(), CreateTalkRequest{
		Title: "Удалённая", Text: "т", Nickname: "н", Category: "أخرى",
		Visibility: models.VisibilityPublic,
	})
	_, _ = service.SoftDelete(context.Background(), deleted.ID.Hex())

	public, err := service.List(context.Background(), true)
	if err != nil {
		t.Fatalf("ошибка списка: %v", err)
	}
	if len(public) != 1 || public[0].ID != pub.ID {
		t.Fatalf("публичный список должен содержать только одно обсуждение: %d", len(public))
	}

	all, _ := service.List(context.Background(), false)
	if len(all) != 3 {
		t.Fatalf("полный список должен содержать все обсуждения: %d", len(all))
	}
}
