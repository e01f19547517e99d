package services

import (
	"context"
	"testing"

	"wisdomcircle/internal/apperr"
	"wisdomcircle/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Мок-репозитории (заглушки)
type mockCategoryRepo struct {
	cats map[string]*models.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{cats: make(map[string]*models.Category)}
}

// hasDuplicate имитирует уникальные индексы по name и slug.
func (m *mockCategoryRepo) hasDuplicate(c *models.Category) bool {
	for _, other := range m.cats {
		if other.ID == c.ID {
			continue
		}
		if other.Name == c.Name || other.Slug == c.Slug {
			return true
		}
	}
	return false
}

func (m *mockCategoryRepo) Create(_ context.Context, c *models.Category) (*models.Category, error) {
	c.ID = primitive.NewObjectID()
	if m.hasDuplicate(c) {
		return nil, apperr.Conflict("Category with this name or slug already exists")
	}
	cp := *c
	m.cats[c.ID.Hex()] = &cp
	return c, nil
}

func (m *mockCategoryRepo) CreateMany(_ context.Context, cats []*models.Category) ([]*models.Category, error) {
	out := make([]*models.Category, 0, len(cats))
	for _, c := range cats {
		created, _ := m.Create(context.Background(), c)
		out = append(out, created)
	}
	return out, nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	c, ok := m.cats[id]
	if !ok {
		return nil, apperr.NotFound("Category not found")
	}
	cp := *c
	return &cp, nil
}

func (m *mockCategoryRepo) List(_ context.Context, activeOnly bool) ([]*models.Category, error) {
	var out []*models.Category
	for _, c := range m.cats {
		if activeOnly && !c.Active {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, c *models.Category) error {
	if _, ok := m.cats[c.ID.Hex()]; !ok {
		return apperr.NotFound("Category not found")
	}
	if m.hasDuplicate(c) {
		return apperr.Conflict("Category with this name or slug already exists")
	}
	cp := *c
	m.cats[c.ID.Hex()] = &cp
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.cats[id]; !ok {
		return apperr.NotFound("Category not found")
	}
	delete(m.cats, id)
	return nil
}

func (m *mockCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.cats)), nil
}

func (m *mockCategoryRepo) ExistsByNameOrSlug(_ context.Context, name, slug string) (bool, error) {
	for _, c := range m.cats {
		if c.Name == name || c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

type mockVideoRepo struct {
	videos map[string]*models.Video
}

func newMockVideoRepo() *mockVideoRepo {
	return &mockVideoRepo{videos: make(map[string]*models.Video)}
}

func (m *mockVideoRepo) Create(_ context.Context, v *models.Video) (*models.Video, error) {
	v.ID = primitive.NewObjectID()
	cp := *v
	m.videos[v.ID.Hex()] = &cp
	return v, nil
}

func (m *mockVideoRepo) GetByID(_ context.Context, id string) (*models.Video, error) {
	v, ok := m.videos[id]
	if !ok {
		return nil, apperr.NotFound("Video not found")
	}
	cp := *v
	return &cp, nil
}

func (m *mockVideoRepo) List(_ context.Context, category string) ([]*models.Video, error) {
	var out []*models.Video
	for _, v := range m.videos {
		if category != "" && v.Category != category {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockVideoRepo) Update(_ context.Context, v *models.Video) error {
	if _, ok := m.videos[v.ID.Hex()]; !ok {
		return apperr.NotFound("Video not found")
	}
	cp := *v
	m.videos[v.ID.Hex()] = &cp
	return nil
}

func (m *mockVideoRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.videos[id]; !ok {
		return apperr.NotFound("Video not found")
	}
	delete(m.videos, id)
	return nil
}

func (m *mockVideoRepo) CountByCategory(_ context.Context, categorySlug string) (int64, error) {
	var n int64
	for _, v := range m.videos {
		if v.Category == categorySlug {
			n++
		}
	}
	return n, nil
}

func newCatalogForTest() (CatalogService, *mockCategoryRepo, *mockVideoRepo) {
	cats := newMockCategoryRepo()
	vids := newMockVideoRepo()
	return NewCatalogService(cats, vids), cats, vids
}

func TestCreateCategory_SlugAndConflict(t *testing.T) {
	service, _, _ := newCatalogForTest()

	c, err := service.CreateCategory(context.Background(), models.CreateCategoryRequest{
		Name:  "Live Shows",
		Icon:  "🎤",
		Color: "from-red-400 to-rose-500",
	})
	if err != nil {
		t.Fatalf("ошибка создания рубрики: %v", err)
	}
	if c.Slug != "live-shows" {
		t.Fatalf("неверный slug: %q", c.Slug)
	}
	if !c.Active {
		t.Fatal("новая рубрика должна быть активной по умолчанию")
	}

	_, err = service.CreateCategory(context.Background(), models.CreateCategoryRequest{
		Name:  "live  shows",
		Icon:  "🎤",
		Color: "from-red-400 to-rose-500",
	})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("дубль по slug должен давать конфликт, получено: %v", err)
	}
}

func TestUpdateCategory_RenameConflict(t *testing.T) {
	service, _, _ := newCatalogForTest()

	_, err := service.CreateCategory(context.Background(), models.CreateCategoryRequest{
		Name: "Comedy", Icon: "😄", Color: "from-yellow-400 to-orange-500",
	})
	if err != nil {
		t.Fatalf("ошибка создания рубрики: %v", err)
	}
	other, err := service.CreateCategory(context.Background(), models.CreateCategoryRequest{
		Name: "Gaming", Icon: "🎮", Color: "from-purple-400 to-pink-500",
	})
	if err != nil {
		t.Fatalf("ошибка создания рубрики: %v", err)
	}

	// Переименование во взятое имя упирается в уникальный индекс
	_, err = service.UpdateCategory(context.Background(), other.ID.Hex(), models.CreateCategoryRequest{
		Name: "Comedy",
	})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("переименование в существующее имя должно давать конфликт, получено: %v", err)
	}
}

func TestCreateCategory_Validation(t *testing.T) {
	service, _, _ := newCatalogForTest()

	_, err := service.CreateCategory(context.Background(), models.CreateCategoryRequest{Name: "Без иконки"})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("ожидалась ошибка валидации, получено: %v", err)
	}
}

func TestDeleteCategory_GuardedByVideos(t *testing.T) {
	service, _, _ := newCatalogForTest()

	c, err := service.CreateCategory(context.Background(), models.CreateCategoryRequest{
		Name: "Podcasts", Icon: "🎙️", Color: "from-green-400 to-emerald-500",
	})
	if err != nil {
		t.Fatalf("ошибка создания рубрики: %v", err)
	}

	v, err := service.CreateVideo(context.Background(), models.CreateVideoRequest{
		Title:      "Выпуск 1",
		YouTubeURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Category:   "podcasts",
	})
	if err != nil {
		t.Fatalf("ошибка создания видео: %v", err)
	}

	if err := service.DeleteCategory(context.Background(), c.ID.Hex()); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("занятая рубрика должна давать конфликт, получено: %v", err)
	}

	if err := service.DeleteVideo(context.Background(), v.ID.Hex()); err != nil {
		t.Fatalf("ошибка удаления видео: %v", err)
	}
	if err := service.DeleteCategory(context.Background(), c.ID.Hex()); err != nil {
		t.Fatalf("пустая рубрика должна удаляться: %v", err)
	}
}

func TestListCategories_SeedsDefaults(t *testing.T) {
	service, cats, _ := newCatalogForTest()

	list, err := service.ListCategories(context.Background(), true)
	if err != nil {
		t.Fatalf("ошибка получения рубрик: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("пустой каталог должен заполняться стартовым набором: %d", len(list))
	}

	n, _ := cats.Count(context.Background())
	if n != 5 {
		t.Fatalf("в репозитории должно быть 5 рубрик: %d", n)
	}
}

func TestInitDefaultCategories_ConflictWhenNotEmpty(t *testing.T) {
	service, _, _ := newCatalogForTest()

	if _, err := service.InitDefaultCategories(context.Background()); err != nil {
		t.Fatalf("инициализация пустого каталога: %v", err)
	}
	if _, err := service.InitDefaultCategories(context.Background()); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("повторная инициализация должна давать конфликт, получено: %v", err)
	}
}

func TestCreateVideo_ExtractsID(t *testing.T) {
	service, _, _ := newCatalogForTest()

	v, err := service.CreateVideo(context.Background(), models.CreateVideoRequest{
		Title:      "Ролик",
		YouTubeURL: "https://youtu.be/dQw4w9WgXcQ",
		Category:   "comedy",
	})
	if err != nil {
		t.Fatalf("ошибка создания видео: %v", err)
	}
	if v.YouTubeID != "dQw4w9WgXcQ" {
		t.Fatalf("неверный youtube_id: %q", v.YouTubeID)
	}
	if v.Thumbnail != "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
		t.Fatalf("неверный thumbnail: %q", v.Thumbnail)
	}
}

func TestCreateVideo_InvalidURL(t *testing.T) {
	service, _, _ := newCatalogForTest()

	_, err := service.CreateVideo(context.Background(), models.CreateVideoRequest{
		Title:      "Ролик",
		YouTubeURL: "https://vimeo.com/123456",
		Category:   "comedy",
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("чужой URL должен давать ошибку валидации, получено: %v", err)
	}
}

func TestUpdateVideo_PartialPatch(t *testing.T) {
	service, _, _ := newCatalogForTest()

	v, _ := service.CreateVideo(context.Background(), models.CreateVideoRequest{
		Title:      "Старое название",
		YouTubeURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Category:   "comedy",
	})

	title := "Новое название"
	updated, err := service.UpdateVideo(context.Background(), v.ID.Hex(), models.UpdateVideoRequest{Title: &title})
	if err != nil {
		t.Fatalf("ошибка обновления видео: %v", err)
	}
	if updated.Title != "Новое название" {
		t.Fatalf("название не обновлено: %q", updated.Title)
	}
	if updated.Category != "comedy" || updated.YouTubeID != "dQw4w9WgXcQ" {
		t.Fatalf("нетронутые поля должны сохраняться: %+v", updated)
	}
}
