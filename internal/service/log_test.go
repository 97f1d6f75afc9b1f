package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opshive/hrms/internal/mocks"
	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/service"
)

func TestLogList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("passes pagination through", func(t *testing.T) {
		repo := mocks.NewMockLogRepositoryIface(ctrl)

		repo.EXPECT().
			FindByOrganisationPaginated(gomock.Any(), orgID, 10, 25).
			Return([]*model.Log{{OrganisationID: orgID}}, int64(42), nil)

		svc := service.NewLogService(repo)

		logs, total, err := svc.List(context.Background(), orgID, 10, 25)
		require.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, int64(42), total)
	})

	t.Run("clamps out of range pagination", func(t *testing.T) {
		repo := mocks.NewMockLogRepositoryIface(ctrl)

		repo.EXPECT().
			FindByOrganisationPaginated(gomock.Any(), orgID, 0, 50).
			Return(nil, int64(0), nil)
		repo.EXPECT().
			FindByOrganisationPaginated(gomock.Any(), orgID, 0, 200).
			Return(nil, int64(0), nil)

		svc := service.NewLogService(repo)

		_, _, err := svc.List(context.Background(), orgID, -5, 0)
		require.NoError(t, err)

		_, _, err = svc.List(context.Background(), orgID, 0, 1000)
		require.NoError(t, err)
	})
}
