// internal/handler/employee.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/service"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	var input service.CreateEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	employee, err := h.employeeService.Create(r.Context(), id.OrganisationID, id.UserID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, struct {
		Message  string          `json:"message"`
		Employee *model.Employee `json:"employee"`
	}{"Employee created successfully", employee})
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	employees, err := h.employeeService.List(r.Context(), id.OrganisationID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		Employees []model.EmployeeWithTeams `json:"employees"`
	}{employees})
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	employeeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var input service.UpdateEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	employee, err := h.employeeService.Update(r.Context(), id.OrganisationID, id.UserID, employeeID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		Message  string          `json:"message"`
		Employee *model.Employee `json:"employee"`
	}{"Employee updated successfully", employee})
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := identity(r)

	employeeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	if err := h.employeeService.Delete(r.Context(), id.OrganisationID, id.UserID, employeeID); err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}
