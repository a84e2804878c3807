package corehandler

import (
	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/core"
	"backoffice/internal/transport/http/middleware"
)

type Handler struct {
	Store core.StoreAPI
}

func NewHandler(store core.StoreAPI) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.With(middleware.RequireAdmin).Get("/export/csv", h.handleExportEmployees)
		r.Get("/{id}", h.handleGetEmployee)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreateEmployee)
		r.With(middleware.RequireAdmin).Put("/{id}", h.handleUpdateEmployee)
		r.With(middleware.RequireAdmin).Delete("/{id}", h.handleDeleteEmployee)
	})

	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.handleListDepartments)
		r.Get("/{id}", h.handleGetDepartment)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreateDepartment)
		r.With(middleware.RequireAdmin).Put("/{id}", h.handleUpdateDepartment)
		r.With(middleware.RequireAdmin).Delete("/{id}", h.handleDeleteDepartment)
	})

	r.Route("/positions", func(r chi.Router) {
		r.Get("/", h.handleListPositions)
		r.Get("/{id}", h.handleGetPosition)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreatePosition)
		r.With(middleware.RequireAdmin).Put("/{id}", h.handleUpdatePosition)
		r.With(middleware.RequireAdmin).Delete("/{id}", h.handleDeletePosition)
	})
}
