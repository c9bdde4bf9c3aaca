package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, staticDir string, activityHandler *ActivityHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Mergington High School API", "1.0.0")
	api := humachi.New(r, config)

	// Front end
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/static/index.html", http.StatusTemporaryRedirect)
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("OK"))
	})

	// Activity routes
	huma.Get(api, "/activities", activityHandler.HandleListActivities)
	huma.Post(api, "/activities/{activity_name}/signup", activityHandler.HandleSignup)
	huma.Delete(api, "/activities/{activity_name}/participants/{email}", activityHandler.HandleUnregister)
}
