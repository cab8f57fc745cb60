package handler

import (
	"encoding/json"
	"net/http"

	"campuspark/internal/directory/service"
	apperrors "campuspark/pkg/errors"
	httputil "campuspark/pkg/http"
	"campuspark/pkg/logger"
	"campuspark/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type DirectoryHandler struct {
	service service.DirectoryService
	log     *logger.Logger
}

func NewDirectoryHandler(service service.DirectoryService, log *logger.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		log:     log,
	}
}

func (h *DirectoryHandler) CreateLot(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var lot model.Lot
	if err := json.NewDecoder(r.Body).Decode(&lot); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CreateLot", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.CreateLot(r.Context(), &lot); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateLot", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, lot); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateLot", "operation", "WriteCreated", "error", err)
	}
}

func (h *DirectoryHandler) GetLot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lot, err := h.service.GetLot(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetLot", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, lot); err != nil {
		h.log.Error("failed to write success response", "handler", "GetLot", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DirectoryHandler) ListLots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListLots", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	lots, total, err := h.service.ListLots(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListLots", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, lots, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "ListLots", "operation", "WritePaginated", "error", err)
	}
}

func (h *DirectoryHandler) CreatePermit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var permit model.Permit
	if err := json.NewDecoder(r.Body).Decode(&permit); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CreatePermit", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.CreatePermit(r.Context(), &permit); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreatePermit", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, permit); err != nil {
		h.log.Error("failed to write created response", "handler", "CreatePermit", "operation", "WriteCreated", "error", err)
	}
}

func (h *DirectoryHandler) GetPermitsByUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("'user_id' query parameter is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetPermitsByUser", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	permits, err := h.service.GetPermitsByUser(r.Context(), userID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetPermitsByUser", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, permits); err != nil {
		h.log.Error("failed to write success response", "handler", "GetPermitsByUser", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DirectoryHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/lots", h.CreateLot)
	router.GET("/api/v1/lots", h.ListLots)
	router.GET("/api/v1/lots/id/:id", h.GetLot)
	router.POST("/api/v1/permits", h.CreatePermit)
	router.GET("/api/v1/permits", h.GetPermitsByUser)
}
