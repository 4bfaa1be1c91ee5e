package api

import (
	"encoding/json"
	"net/http"
	"time"

	"taskboard/internal/service"
	"taskboard/internal/validation"
)

// taskPayload is the wire shape of task create/update bodies. Every field
// is a pointer so partial updates can tell "omitted" from "zero".
type taskPayload struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CategoryID  *uint      `json:"category_id"`
}

// validate runs the boundary checks before the payload reaches a service.
func (p *taskPayload) validate(requireTitle bool) error {
	if p.Title == nil {
		if requireTitle {
			return validation.TaskTitle("")
		}
	} else if err := validation.TaskTitle(*p.Title); err != nil {
		return err
	}
	if p.Priority != nil {
		if err := validation.TaskPriority(*p.Priority); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	filter, page, err := s.parseListParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := s.tasks.ListTasks(r.Context(), filter, page)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, result, http.StatusOK)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var payload taskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}
	if err := payload.validate(true); err != nil {
		WriteError(w, err)
		return
	}

	input := service.CreateTaskInput{
		Title:      *payload.Title,
		DueDate:    payload.DueDate,
		CategoryID: payload.CategoryID,
	}
	if payload.Description != nil {
		input.Description = *payload.Description
	}
	if payload.Priority != nil {
		input.Priority = *payload.Priority
	}

	task, err := s.tasks.CreateTask(r.Context(), input)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, task, http.StatusCreated)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	task, err := s.tasks.GetTask(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, task, http.StatusOK)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var payload taskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}
	if err := payload.validate(false); err != nil {
		WriteError(w, err)
		return
	}

	task, err := s.tasks.UpdateTask(r.Context(), id, service.UpdateTaskInput{
		Title:       payload.Title,
		Description: payload.Description,
		Completed:   payload.Completed,
		Priority:    payload.Priority,
		DueDate:     payload.DueDate,
		CategoryID:  payload.CategoryID,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, task, http.StatusOK)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	task, err := s.tasks.ToggleTask(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, task, http.StatusOK)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := s.tasks.DeleteTask(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
