// internal/handler/log.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/service"
)

type LogHandler struct {
	logService *service.LogService
}

func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// List returns the organisation's audit trail, newest first.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, total, err := h.logService.List(r.Context(), id.OrganisationID, offset, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		Logs  []*model.Log `json:"logs"`
		Total int64        `json:"total"`
	}{logs, total})
}
