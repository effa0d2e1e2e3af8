package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Oisamaye1/myportfolio/internal/store"
	"github.com/Oisamaye1/myportfolio/internal/utils"
)

// Public content reads. Every listing is restricted to rows visible on the
// site (active, published); the management counterparts in cms.go return
// everything.

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.ContentService.ListServices(r.Context(), true)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, services, http.StatusOK)
}

func (h *Handler) listEducation(w http.ResponseWriter, r *http.Request) {
	education, err := h.services.ContentService.ListEducation(r.Context(), true)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, education, http.StatusOK)
}

func (h *Handler) listTechStack(w http.ResponseWriter, r *http.Request) {
	stack, err := h.services.ContentService.ListTechStack(r.Context(), true)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, stack, http.StatusOK)
}

// featuredParam reports whether the request asks for featured entries only.
func featuredParam(r *http.Request) bool {
	v := r.URL.Query().Get("featured")
	return v == "true" || v == "1"
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	featuredOnly := featuredParam(r)

	projects, err := h.services.ContentService.ListProjects(r.Context(), true, featuredOnly)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) listTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.services.ContentService.ListTestimonials(r.Context(), true)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, testimonials, http.StatusOK)
}

func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	featuredOnly := featuredParam(r)

	articles, err := h.services.ContentService.ListArticles(r.Context(), true, featuredOnly)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, articles, http.StatusOK)
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := h.services.ContentService.GetArticleBySlug(r.Context(), slug)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// unpublished articles are invisible on the public site
	if !article.IsPublished {
		respondError(w, r, store.ErrNotFound)
		return
	}

	utils.WriteJSON(w, article, http.StatusOK)
}

func (h *Handler) listExperience(w http.ResponseWriter, r *http.Request) {
	experience, err := h.services.ContentService.ListExperience(r.Context(), true)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, experience, http.StatusOK)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.ContentService.GetSettings(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, settings, http.StatusOK)
}
