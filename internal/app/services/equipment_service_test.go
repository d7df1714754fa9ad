package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/pkg/apperrors"
)

func newTestEquipmentService() (EquipmentService, *fakeEquipmentRepo, *fakeOrganizationRepo) {
	equipmentRepo := newFakeEquipmentRepo()
	orgRepo := newFakeOrganizationRepo()
	svc := NewEquipmentService(equipmentRepo, orgRepo, zerolog.Nop())
	return svc, equipmentRepo, orgRepo
}

func TestEquipmentCreateDefaultsToAvailable(t *testing.T) {
	svc, _, orgRepo := newTestEquipmentService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")

	equipment, err := svc.Create(context.Background(), owner, &dto.CreateEquipmentRequest{
		Name:        "Projector",
		Description: "Full HD projector",
	})
	require.NoError(t, err)

	assert.Equal(t, owner, equipment.OrganizationID)
	assert.Equal(t, models.EquipmentStatusAvailable, equipment.Status)
}

func TestEquipmentUpdateOwnerOnly(t *testing.T) {
	svc, _, orgRepo := newTestEquipmentService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")
	other := addOrg(orgRepo, "Design Club", "designclub")

	equipment, err := svc.Create(context.Background(), owner, &dto.CreateEquipmentRequest{
		Name:        "Projector",
		Description: "Full HD projector",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), other, equipment.ID, &dto.UpdateEquipmentRequest{
		Name: strPtr("Stolen Projector"),
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.Update(context.Background(), owner, equipment.ID, &dto.UpdateEquipmentRequest{
		Status: strPtr("MAINTENANCE"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.EquipmentStatusMaintenance, updated.Status)
	assert.Equal(t, "Projector", updated.Name)
}

func TestEquipmentStatusChangeWhileBorrowedConflicts(t *testing.T) {
	svc, equipmentRepo, orgRepo := newTestEquipmentService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")

	equipment, err := svc.Create(context.Background(), owner, &dto.CreateEquipmentRequest{
		Name:        "Projector",
		Description: "Full HD projector",
	})
	require.NoError(t, err)

	equipmentRepo.items[equipment.ID].Status = models.EquipmentStatusBorrowed

	_, err = svc.Update(context.Background(), owner, equipment.ID, &dto.UpdateEquipmentRequest{
		Status: strPtr("MAINTENANCE"),
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestEquipmentDeleteOwnerOnly(t *testing.T) {
	svc, _, orgRepo := newTestEquipmentService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")
	other := addOrg(orgRepo, "Design Club", "designclub")

	equipment, err := svc.Create(context.Background(), owner, &dto.CreateEquipmentRequest{
		Name:        "Projector",
		Description: "Full HD projector",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), other, equipment.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.Delete(context.Background(), owner, equipment.ID))

	_, err = svc.GetByID(context.Background(), equipment.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestEquipmentGetAllStatusFilter(t *testing.T) {
	svc, equipmentRepo, orgRepo := newTestEquipmentService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")

	first, err := svc.Create(context.Background(), owner, &dto.CreateEquipmentRequest{
		Name: "Projector", Description: "d",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), owner, &dto.CreateEquipmentRequest{
		Name: "Camera", Description: "d",
	})
	require.NoError(t, err)

	equipmentRepo.items[first.ID].Status = models.EquipmentStatusMaintenance

	available, err := svc.GetAll(context.Background(), &dto.EquipmentFilter{Status: strPtr("AVAILABLE")})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Camera", available[0].Name)
}
