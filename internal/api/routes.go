package api

import "net/http"

// registerRoutes registers all API routes.
func (s *Server) registerRoutes() {
	s.router.HandleFunc("GET /health", s.handleHealth)

	s.router.HandleFunc("GET /api/tasks", s.handleListTasks)
	s.router.HandleFunc("POST /api/tasks", s.handleCreateTask)
	s.router.HandleFunc("GET /api/tasks/{id}", s.handleGetTask)
	s.router.HandleFunc("PUT /api/tasks/{id}", s.handleUpdateTask)
	s.router.HandleFunc("PATCH /api/tasks/{id}/toggle", s.handleToggleTask)
	s.router.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)

	s.router.HandleFunc("GET /api/categories", s.handleListCategories)
	s.router.HandleFunc("POST /api/categories", s.handleCreateCategory)
	s.router.HandleFunc("GET /api/categories/{id}", s.handleGetCategory)
	s.router.HandleFunc("PUT /api/categories/{id}", s.handleUpdateCategory)
	s.router.HandleFunc("DELETE /api/categories/{id}", s.handleDeleteCategory)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
