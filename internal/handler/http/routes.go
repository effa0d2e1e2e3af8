package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Get("/healthz", h.healthz)
	router.Handle("/metrics", promhttp.Handler())

	// public content reads, session endpoints, contact relay and
	// deployment status
	router.Group(func(r chi.Router) {
		r.Get("/api/services", h.listServices)
		r.Get("/api/education", h.listEducation)
		r.Get("/api/tech-stack", h.listTechStack)
		r.Get("/api/projects", h.listProjects)
		r.Get("/api/testimonials", h.listTestimonials)
		r.Get("/api/articles", h.listArticles)
		r.Get("/api/articles/{slug}", h.getArticle)
		r.Get("/api/experience", h.listExperience)
		r.Get("/api/settings", h.getSettings)

		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)

		r.Post("/api/contact", h.contact)
		r.Get("/api/database-status", h.databaseStatus)
		r.Get("/api/email-status", h.emailStatus)
	})

	// management API: every route requires a verified session, writes get
	// an audit line naming the acting user
	router.Route("/api/cms", func(r chi.Router) {
		r.Use(h.withSession)
		r.Use(withAudit)

		r.Get("/services", h.cmsListServices)
		r.Post("/services", h.createService)
		r.Put("/services/{id}", h.updateService)
		r.Delete("/services/{id}", h.deleteService)

		r.Get("/education", h.cmsListEducation)
		r.Post("/education", h.createEducation)
		r.Put("/education/{id}", h.updateEducation)
		r.Delete("/education/{id}", h.deleteEducation)

		r.Get("/tech-stack", h.cmsListTechStack)
		r.Post("/tech-stack", h.createTechStack)
		r.Put("/tech-stack/{id}", h.updateTechStack)
		r.Delete("/tech-stack/{id}", h.deleteTechStack)

		r.Get("/projects", h.cmsListProjects)
		r.Post("/projects", h.createProject)
		r.Put("/projects/{id}", h.updateProject)
		r.Delete("/projects/{id}", h.deleteProject)

		r.Get("/testimonials", h.cmsListTestimonials)
		r.Post("/testimonials", h.createTestimonial)
		r.Put("/testimonials/{id}", h.updateTestimonial)
		r.Delete("/testimonials/{id}", h.deleteTestimonial)

		r.Get("/articles", h.cmsListArticles)
		r.Post("/articles", h.createArticle)
		r.Put("/articles/{id}", h.updateArticle)
		r.Delete("/articles/{id}", h.deleteArticle)

		r.Get("/experience", h.cmsListExperience)
		r.Post("/experience", h.createExperience)
		r.Put("/experience/{id}", h.updateExperience)
		r.Delete("/experience/{id}", h.deleteExperience)

		r.Get("/settings", h.cmsGetSettings)
		r.Put("/settings", h.updateSettings)
	})

	// static site. The /cms subtree sits behind the session guard; the
	// guard only checks cookie presence, full verification happens on the
	// management API above.
	fileServer := http.FileServer(http.Dir(h.server.StaticDir))
	router.Group(func(r chi.Router) {
		r.Use(h.guardCMS)
		r.Handle("/cms", fileServer)
		r.Handle("/cms/*", fileServer)
	})
	router.NotFound(fileServer.ServeHTTP)

	return router
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
