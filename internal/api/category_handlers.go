package api

import (
	"encoding/json"
	"net/http"

	"taskboard/internal/service"
	"taskboard/internal/validation"
)

type categoryPayload struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (p *categoryPayload) validate(requireName bool) error {
	if p.Name == nil {
		if requireName {
			return validation.CategoryName("")
		}
		return nil
	}
	return validation.CategoryName(*p.Name)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.ListCategories(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, categories, http.StatusOK)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}
	if err := payload.validate(true); err != nil {
		WriteError(w, err)
		return
	}

	input := service.CreateCategoryInput{Name: *payload.Name}
	if payload.Color != nil {
		input.Color = *payload.Color
	}

	category, err := s.categories.CreateCategory(r.Context(), input)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, category, http.StatusCreated)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	category, err := s.categories.GetCategory(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, category, http.StatusOK)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}
	if err := payload.validate(false); err != nil {
		WriteError(w, err)
		return
	}

	category, err := s.categories.UpdateCategory(r.Context(), id, service.UpdateCategoryInput{
		Name:  payload.Name,
		Color: payload.Color,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, category, http.StatusOK)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := s.categories.DeleteCategory(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
