// internal/handler/team.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/service"
)

type TeamHandler struct {
	teamService       *service.TeamService
	assignmentService *service.AssignmentService
}

func NewTeamHandler(teamService *service.TeamService, assignmentService *service.AssignmentService) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		assignmentService: assignmentService,
	}
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	var input service.CreateTeamInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	team, err := h.teamService.Create(r.Context(), id.OrganisationID, id.UserID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, struct {
		Message string      `json:"message"`
		Team    *model.Team `json:"team"`
	}{"Team created successfully", team})
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	teams, err := h.teamService.List(r.Context(), id.OrganisationID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		Teams []model.TeamWithEmployees `json:"teams"`
	}{teams})
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	teamID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	var input service.UpdateTeamInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	team, err := h.teamService.Update(r.Context(), id.OrganisationID, id.UserID, teamID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		Message string      `json:"message"`
		Team    *model.Team `json:"team"`
	}{"Team updated successfully", team})
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	teamID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	if err := h.teamService.Delete(r.Context(), id.OrganisationID, id.UserID, teamID); err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Team deleted successfully"})
}

// AssignmentRequest carries the ids for assign/unassign. Both arrive as
// strings so a missing field is distinguishable from a malformed one.
type AssignmentRequest struct {
	TeamID     string `json:"teamId"`
	EmployeeID string `json:"employeeId"`
}

func (h *TeamHandler) parseAssignment(w http.ResponseWriter, r *http.Request) (teamID, employeeID uuid.UUID, ok bool) {
	var req AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.TeamID == "" || req.EmployeeID == "" {
		respondWithError(w, http.StatusBadRequest, "Team ID and Employee ID are required")
		return
	}

	teamID, err := uuid.Parse(req.TeamID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team ID")
		return
	}
	employeeID, err = uuid.Parse(req.EmployeeID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	return teamID, employeeID, true
}

func (h *TeamHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	teamID, employeeID, ok := h.parseAssignment(w, r)
	if !ok {
		return
	}

	assignment, err := h.assignmentService.Assign(r.Context(), id.OrganisationID, id.UserID, teamID, employeeID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, struct {
		Message    string              `json:"message"`
		Assignment *model.EmployeeTeam `json:"assignment"`
	}{"Employee assigned to team successfully", assignment})
}

func (h *TeamHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	teamID, employeeID, ok := h.parseAssignment(w, r)
	if !ok {
		return
	}

	if err := h.assignmentService.Unassign(r.Context(), id.OrganisationID, id.UserID, teamID, employeeID); err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Employee unassigned from team successfully"})
}
