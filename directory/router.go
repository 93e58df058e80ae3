package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solanaappkit/directory/internal/httpx"
)

// Routes registers the API surface on r.
func Routes(r chi.Router, env *Env) {
	envFn := func(r *http.Request) *Env { return env }

	r.Route("/apps", func(r chi.Router) {
		r.Get("/", httpx.HandlerFunc(envFn, AppsIndex))
		r.Post("/", httpx.HandlerFunc(envFn, AppsCreate))
		r.Get("/{id}", httpx.HandlerFunc(envFn, AppsShow))
		r.Patch("/{id}", httpx.HandlerFunc(envFn, AppsUpdate))
		r.Delete("/{id}", httpx.HandlerFunc(envFn, AppsDestroy))
	})
	r.Route("/admin/apps", func(r chi.Router) {
		r.Get("/", httpx.HandlerFunc(envFn, AdminAppsIndex))
		r.Post("/{id}/toggle-visibility", httpx.HandlerFunc(envFn, AppsToggleVisibility))
	})
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", httpx.HandlerFunc(envFn, CategoriesIndex))
		r.Post("/", httpx.HandlerFunc(envFn, CategoriesCreate))
		r.Get("/{id}", httpx.HandlerFunc(envFn, CategoriesShow))
		r.Patch("/{id}", httpx.HandlerFunc(envFn, CategoriesUpdate))
		r.Delete("/{id}", httpx.HandlerFunc(envFn, CategoriesDestroy))
	})
	r.Route("/screenshots", func(r chi.Router) {
		r.Post("/", httpx.HandlerFunc(envFn, ScreenshotsCreate))
		r.Patch("/{id}", httpx.HandlerFunc(envFn, ScreenshotsUpdate))
		r.Delete("/{id}", httpx.HandlerFunc(envFn, ScreenshotsDestroy))
	})
	r.Get("/clicks", httpx.HandlerFunc(envFn, ClicksShow))
	r.Post("/clicks", httpx.HandlerFunc(envFn, ClicksCreate))
	r.Get("/waitlist", httpx.HandlerFunc(envFn, WaitlistShow))
	r.Post("/waitlist", httpx.HandlerFunc(envFn, WaitlistCreate))
	r.Post("/upload", httpx.HandlerFunc(envFn, UploadCreate))
	r.Get("/excel-data", httpx.HandlerFunc(envFn, ProtocolsIndex))
}
