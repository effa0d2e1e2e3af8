package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/service"
	"github.com/Oisamaye1/myportfolio/internal/utils"
	"github.com/Oisamaye1/myportfolio/models"
)

// Management API handlers. All of them run behind withSession, listings
// include inactive and unpublished rows.

var errInvalidID = errors.New("invalid id")

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, apiResponse{Message: "Invalid request body"}, http.StatusBadRequest)
		return false
	}
	return true
}

func respondInvalidID(w http.ResponseWriter) {
	utils.WriteJSON(w, apiResponse{Message: "Invalid id"}, http.StatusBadRequest)
}

func respondDeleted(w http.ResponseWriter) {
	utils.WriteJSON(w, apiResponse{Success: true, Message: "Deleted"}, http.StatusOK)
}

// ── services ──

func (h *Handler) cmsListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.ContentService.ListServices(r.Context(), false)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, services, http.StatusOK)
}

func (h *Handler) createService(w http.ResponseWriter, r *http.Request) {
	var svc models.Service
	if !decodeBody(w, r, &svc) {
		return
	}

	created, err := h.services.ContentService.CreateService(r.Context(), svc)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateService(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	var patch models.ServicePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := h.services.ContentService.UpdateService(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteService(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	if err := h.services.ContentService.DeleteService(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondDeleted(w)
}

// ── education ──

func (h *Handler) cmsListEducation(w http.ResponseWriter, r *http.Request) {
	education, err := h.services.ContentService.ListEducation(r.Context(), false)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, education, http.StatusOK)
}

func (h *Handler) createEducation(w http.ResponseWriter, r *http.Request) {
	var education models.Education
	if !decodeBody(w, r, &education) {
		return
	}

	created, err := h.services.ContentService.CreateEducation(r.Context(), education)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateEducation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	var patch models.EducationPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := h.services.ContentService.UpdateEducation(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEducation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	if err := h.services.ContentService.DeleteEducation(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondDeleted(w)
}

// ── tech stack ──

func (h *Handler) cmsListTechStack(w http.ResponseWriter, r *http.Request) {
	stack, err := h.services.ContentService.ListTechStack(r.Context(), false)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, stack, http.StatusOK)
}

func (h *Handler) createTechStack(w http.ResponseWriter, r *http.Request) {
	var tech models.TechStack
	if !decodeBody(w, r, &tech) {
		return
	}

	created, err := h.services.ContentService.CreateTechStack(r.Context(), tech)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateTechStack(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	var patch models.TechStackPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := h.services.ContentService.UpdateTechStack(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTechStack(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	if err := h.services.ContentService.DeleteTechStack(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondDeleted(w)
}

// ── projects ──

func (h *Handler) cmsListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ContentService.ListProjects(r.Context(), false, false)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if !decodeBody(w, r, &project) {
		return
	}

	created, err := h.services.ContentService.CreateProject(r.Context(), project)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	var patch models.ProjectPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := h.services.ContentService.UpdateProject(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	if err := h.services.ContentService.DeleteProject(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondDeleted(w)
}

// ── testimonials ──

func (h *Handler) cmsListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.services.ContentService.ListTestimonials(r.Context(), false)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, testimonials, http.StatusOK)
}

func (h *Handler) createTestimonial(w http.ResponseWriter, r *http.Request) {
	var testimonial models.Testimonial
	if !decodeBody(w, r, &testimonial) {
		return
	}

	created, err := h.services.ContentService.CreateTestimonial(r.Context(), testimonial)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	var patch models.TestimonialPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := h.services.ContentService.UpdateTestimonial(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	if err := h.services.ContentService.DeleteTestimonial(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondDeleted(w)
}

// ── articles ──

func (h *Handler) cmsListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.services.ContentService.ListArticles(r.Context(), false, false)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, articles, http.StatusOK)
}

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	var article models.Article
	if !decodeBody(w, r, &article) {
		return
	}

	created, err := h.services.ContentService.CreateArticle(r.Context(), article)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	var patch models.ArticlePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := h.services.ContentService.UpdateArticle(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	if err := h.services.ContentService.DeleteArticle(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondDeleted(w)
}

// ── experience ──

func (h *Handler) cmsListExperience(w http.ResponseWriter, r *http.Request) {
	experience, err := h.services.ContentService.ListExperience(r.Context(), false)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, experience, http.StatusOK)
}

func (h *Handler) createExperience(w http.ResponseWriter, r *http.Request) {
	var experience models.Experience
	if !decodeBody(w, r, &experience) {
		return
	}

	created, err := h.services.ContentService.CreateExperience(r.Context(), experience)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	var patch models.ExperiencePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := h.services.ContentService.UpdateExperience(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondInvalidID(w)
		return
	}

	if err := h.services.ContentService.DeleteExperience(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondDeleted(w)
}

// ── site settings ──

func (h *Handler) cmsGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.ContentService.GetSettings(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings map[string]string
	if !decodeBody(w, r, &settings) {
		return
	}

	if err := h.services.ContentService.UpsertSettings(r.Context(), settings); err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			utils.WriteJSON(w, apiResponse{Message: "No settings provided"}, http.StatusBadRequest)
			return
		}
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, apiResponse{Success: true, Message: "Settings saved"}, http.StatusOK)
}
