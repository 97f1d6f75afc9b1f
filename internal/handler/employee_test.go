package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opshive/hrms/internal/audit"
	"github.com/opshive/hrms/internal/domain"
	"github.com/opshive/hrms/internal/handler"
	"github.com/opshive/hrms/internal/middleware"
	"github.com/opshive/hrms/internal/mocks"
	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/service"
)

// identityInjector stands in for the auth middleware so handler tests can
// exercise routing and status mapping without minting tokens.
func identityInjector(id middleware.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithIdentity(r.Context(), id)))
		})
	}
}

func newEmployeeRouter(repo *mocks.MockEmployeeRepositoryIface, id middleware.Identity) http.Handler {
	h := handler.NewEmployeeHandler(service.NewEmployeeService(repo, audit.NoopRecorder{}))

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(identityInjector(id))
		r.Route("/api/employees", func(r chi.Router) {
			r.Get("/", h.List)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
	return r
}

func TestEmployeeEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := middleware.Identity{UserID: uuid.New(), OrganisationID: uuid.New()}

	t.Run("create returns 201 with the employee", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *model.Employee) error {
				e.ID = uuid.New()
				return nil
			})

		router := newEmployeeRouter(repo, id)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(
			`{"first_name":"Bob","last_name":"Builder","email":"bob@acme.com"}`))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Message  string          `json:"message"`
			Employee *model.Employee `json:"employee"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Employee created successfully", body.Message)
		assert.Equal(t, "Bob", body.Employee.FirstName)
	})

	t.Run("create with missing fields returns 400", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		router := newEmployeeRouter(repo, id)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(`{"first_name":"Bob"}`))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list returns tenant employees with teams", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		repo.EXPECT().
			FindByOrganisation(gomock.Any(), id.OrganisationID).
			Return([]model.EmployeeWithTeams{
				{Employee: model.Employee{ID: uuid.New(), FirstName: "Bob"}, Teams: []model.AssignedTeam{}},
			}, nil)

		router := newEmployeeRouter(repo, id)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Employees []model.EmployeeWithTeams `json:"employees"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Employees, 1)
		assert.NotNil(t, body.Employees[0].Teams)
	})

	t.Run("update with malformed id returns 400", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		router := newEmployeeRouter(repo, id)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/employees/not-a-uuid", strings.NewReader(`{}`))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body handler.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid employee ID", body.Error)
	})

	t.Run("update of unknown employee returns 404", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		employeeID := uuid.New()
		repo.EXPECT().
			FindByIDAndOrg(gomock.Any(), employeeID, id.OrganisationID).
			Return(nil, domain.ErrEmployeeNotFound)

		router := newEmployeeRouter(repo, id)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/employees/"+employeeID.String(), strings.NewReader(`{"first_name":"Rob"}`))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete returns confirmation", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		employeeID := uuid.New()
		gomock.InOrder(
			repo.EXPECT().
				FindByIDAndOrg(gomock.Any(), employeeID, id.OrganisationID).
				Return(&model.Employee{ID: employeeID, OrganisationID: id.OrganisationID}, nil),
			repo.EXPECT().
				Delete(gomock.Any(), employeeID, id.OrganisationID).
				Return(nil),
		)

		router := newEmployeeRouter(repo, id)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/employees/"+employeeID.String(), nil)
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Employee deleted successfully"}`, w.Body.String())
	})
}
