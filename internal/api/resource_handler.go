package api

import (
	"net/http"

	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/phrazzld/mindset-api/internal/resources"
)

// ResourceHandler serves the static growth-mindset resources.
type ResourceHandler struct {
	library *resources.Library
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(library *resources.Library) *ResourceHandler {
	return &ResourceHandler{library: library}
}

// List handles GET /api/resources.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.library)
}
