package routes

import (
	"wisdomcircle/internal/handlers"
	"wisdomcircle/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	talkHandler *handlers.TalkHandler,
	articleHandler *handlers.ArticleHandler,
	catalogHandler *handlers.CatalogHandler,
	siteHandler *handlers.SiteHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/admin/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/admin/logout", authHandler.Logout).Methods("POST")

	// Защищённый subrouter создаётся раньше /talks/{id}, иначе шаблон
	// перехватит /talks/admin.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireAdmin(jwtSecret))

	protected.HandleFunc("/talks/admin", talkHandler.AdminList).Methods("GET")
	protected.HandleFunc("/talks/admin", talkHandler.Moderate).Methods("PUT")

	api.HandleFunc("/talks", talkHandler.List).Methods("GET")
	api.HandleFunc("/talks", talkHandler.Create).Methods("POST")
	api.HandleFunc("/talks/{id}", talkHandler.Get).Methods("GET")
	api.HandleFunc("/talks/{id}", talkHandler.UpdateEngagement).Methods("PUT")
	api.HandleFunc("/talks/{id}", talkHandler.SoftDelete).Methods("DELETE")
	api.HandleFunc("/talks/{id}/comments/{commentId}", talkHandler.DeleteComment).Methods("DELETE")

	api.HandleFunc("/articles", articleHandler.ListPublic).Methods("GET")
	api.HandleFunc("/articles", articleHandler.Submit).Methods("POST")
	api.HandleFunc("/articles/{slug}", articleHandler.ViewDetail).Methods("GET")

	api.HandleFunc("/categories", catalogHandler.ListCategories).Methods("GET")
	api.HandleFunc("/categories/init", catalogHandler.InitCategories).Methods("POST")

	api.HandleFunc("/videos", catalogHandler.ListVideos).Methods("GET")

	api.HandleFunc("/settings", siteHandler.GetSettings).Methods("GET")
	api.HandleFunc("/announcements", siteHandler.ListAnnouncements).Methods("GET")

	// --- Защищённые сессионной кукой ---
	protected.HandleFunc("/admin/articles", articleHandler.AdminList).Methods("GET")
	protected.HandleFunc("/admin/articles/{id}/approve", articleHandler.Approve).Methods("PUT")
	protected.HandleFunc("/admin/articles/{id}", articleHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/admin/stats", articleHandler.Stats).Methods("GET")

	protected.HandleFunc("/categories", catalogHandler.CreateCategory).Methods("POST")
	protected.HandleFunc("/categories/{id}/update", catalogHandler.UpdateCategory).Methods("PUT")
	protected.HandleFunc("/categories/{id}/delete", catalogHandler.DeleteCategory).Methods("DELETE")

	protected.HandleFunc("/videos", catalogHandler.CreateVideo).Methods("POST")
	protected.HandleFunc("/videos/{id}/update", catalogHandler.UpdateVideo).Methods("PUT")
	protected.HandleFunc("/videos/{id}/delete", catalogHandler.DeleteVideo).Methods("DELETE")

	protected.HandleFunc("/settings", siteHandler.UpdateSettings).Methods("PUT")

	protected.HandleFunc("/announcements", siteHandler.CreateAnnouncement).Methods("POST")
	protected.HandleFunc("/announcements/{id}/delete", siteHandler.DeleteAnnouncement).Methods("DELETE")
}
