package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"github.com/formlet/formlet/app"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Post("/forms", CreateForm(app))
	api.Get("/forms", ListForms(app))
	api.Get("/forms/{id}", GetForm(app))
	api.Delete("/forms/{id}", DeleteForm(app))

	api.Post("/forms/{id}/responses", SubmitResponse(app))
	api.Get("/forms/{id}/responses", ListResponses(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
