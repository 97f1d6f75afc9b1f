package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opshive/hrms/internal/audit"
	"github.com/opshive/hrms/internal/domain"
	"github.com/opshive/hrms/internal/mocks"
	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/service"
)

func TestEmployeeCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	userID := uuid.New()

	t.Run("creates employee scoped to organisation", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		recorder := mocks.NewMockRecorder(ctrl)

		gomock.InOrder(
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, e *model.Employee) error {
					assert.Equal(t, orgID, e.OrganisationID)
					e.ID = uuid.New()
					return nil
				}),

			recorder.EXPECT().
				Record(gomock.Any(), orgID, &userID, audit.ActionEmployeeCreate, gomock.Any()).
				Return(nil),
		)

		svc := service.NewEmployeeService(repo, recorder)

		employee, err := svc.Create(context.Background(), orgID, userID, service.CreateEmployeeInput{
			FirstName: "Bob",
			LastName:  "Builder",
			Email:     "bob@acme.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bob", employee.FirstName)
		assert.Nil(t, employee.Phone)
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		svc := service.NewEmployeeService(repo, audit.NoopRecorder{})

		_, err := svc.Create(context.Background(), orgID, userID, service.CreateEmployeeInput{
			FirstName: "Bob",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEmployeeUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	userID := uuid.New()
	employeeID := uuid.New()

	phone := "+1 555 0100"
	existing := func() *model.Employee {
		p := phone
		return &model.Employee{
			ID:             employeeID,
			OrganisationID: orgID,
			FirstName:      "Bob",
			LastName:       "Builder",
			Email:          "bob@acme.com",
			Phone:          &p,
		}
	}

	t.Run("blank fields keep prior values", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		recorder := mocks.NewMockRecorder(ctrl)

		var saved *model.Employee
		gomock.InOrder(
			repo.EXPECT().
				FindByIDAndOrg(gomock.Any(), employeeID, orgID).
				Return(existing(), nil),

			repo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, e *model.Employee) error {
					saved = e
					return nil
				}),

			recorder.EXPECT().
				Record(gomock.Any(), orgID, &userID, audit.ActionEmployeeUpdate, gomock.Any()).
				Return(nil),
		)

		svc := service.NewEmployeeService(repo, recorder)

		var input service.UpdateEmployeeInput
		require.NoError(t, json.Unmarshal([]byte(`{"first_name":"","email":"robert@acme.com"}`), &input))

		_, err := svc.Update(context.Background(), orgID, userID, employeeID, input)
		require.NoError(t, err)
		assert.Equal(t, "Bob", saved.FirstName, "blank first_name keeps prior value")
		assert.Equal(t, "robert@acme.com", saved.Email)
		require.NotNil(t, saved.Phone, "omitted phone keeps prior value")
		assert.Equal(t, phone, *saved.Phone)
	})

	t.Run("explicit null clears phone", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		recorder := mocks.NewMockRecorder(ctrl)

		var saved *model.Employee
		gomock.InOrder(
			repo.EXPECT().
				FindByIDAndOrg(gomock.Any(), employeeID, orgID).
				Return(existing(), nil),

			repo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, e *model.Employee) error {
					saved = e
					return nil
				}),

			recorder.EXPECT().
				Record(gomock.Any(), orgID, &userID, audit.ActionEmployeeUpdate, gomock.Any()).
				Return(nil),
		)

		svc := service.NewEmployeeService(repo, recorder)

		var input service.UpdateEmployeeInput
		require.NoError(t, json.Unmarshal([]byte(`{"phone":null}`), &input))

		_, err := svc.Update(context.Background(), orgID, userID, employeeID, input)
		require.NoError(t, err)
		assert.Nil(t, saved.Phone)
	})

	t.Run("employee of another organisation is not found", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		otherOrg := uuid.New()
		repo.EXPECT().
			FindByIDAndOrg(gomock.Any(), employeeID, otherOrg).
			Return(nil, domain.ErrEmployeeNotFound)

		svc := service.NewEmployeeService(repo, audit.NoopRecorder{})

		_, err := svc.Update(context.Background(), otherOrg, userID, employeeID, service.UpdateEmployeeInput{})
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	})
}

func TestEmployeeDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	userID := uuid.New()
	employeeID := uuid.New()

	t.Run("delete checks ownership then cascades", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		recorder := mocks.NewMockRecorder(ctrl)

		gomock.InOrder(
			repo.EXPECT().
				FindByIDAndOrg(gomock.Any(), employeeID, orgID).
				Return(&model.Employee{ID: employeeID, OrganisationID: orgID}, nil),

			repo.EXPECT().
				Delete(gomock.Any(), employeeID, orgID).
				Return(nil),

			recorder.EXPECT().
				Record(gomock.Any(), orgID, &userID, audit.ActionEmployeeDelete, gomock.Any()).
				Return(nil),
		)

		svc := service.NewEmployeeService(repo, recorder)

		err := svc.Delete(context.Background(), orgID, userID, employeeID)
		assert.NoError(t, err)
	})

	t.Run("delete of unknown employee is not found", func(t *testing.T) {
		repo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		repo.EXPECT().
			FindByIDAndOrg(gomock.Any(), employeeID, orgID).
			Return(nil, domain.ErrEmployeeNotFound)

		svc := service.NewEmployeeService(repo, audit.NoopRecorder{})

		err := svc.Delete(context.Background(), orgID, userID, employeeID)
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	})
}
