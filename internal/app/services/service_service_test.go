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

func newTestServiceService() (ServiceService, *fakeServiceRepo, *fakeOrganizationRepo) {
	serviceRepo := newFakeServiceRepo()
	orgRepo := newFakeOrganizationRepo()
	svc := NewServiceService(serviceRepo, orgRepo, zerolog.Nop())
	return svc, serviceRepo, orgRepo
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestServiceCreateDefaults(t *testing.T) {
	svc, _, orgRepo := newTestServiceService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")

	service, err := svc.Create(context.Background(), owner, &dto.CreateServiceRequest{
		Title:       "Web Workshop",
		Description: "Intro to web development",
		ServiceType: "workshop",
		IsFree:      boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, owner, service.OrganizationID)
	assert.Equal(t, models.ServiceStatusActive, service.Status)
	assert.True(t, service.IsFree)
	assert.Nil(t, service.Price)
}

func TestServiceCreateFreeDropsPrice(t *testing.T) {
	svc, _, orgRepo := newTestServiceService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")

	service, err := svc.Create(context.Background(), owner, &dto.CreateServiceRequest{
		Title:       "Free Tutoring",
		Description: "Math tutoring",
		ServiceType: "tutoring",
		IsFree:      boolPtr(true),
		Price:       intPtr(20),
	})
	require.NoError(t, err)
	assert.Nil(t, service.Price)
}

func TestServiceCreatePaidRequiresPrice(t *testing.T) {
	svc, _, orgRepo := newTestServiceService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")

	_, err := svc.Create(context.Background(), owner, &dto.CreateServiceRequest{
		Title:       "Poster Design",
		Description: "Custom posters",
		ServiceType: "design",
		IsFree:      boolPtr(false),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestServiceUpdateOwnerOnly(t *testing.T) {
	svc, _, orgRepo := newTestServiceService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")
	other := addOrg(orgRepo, "Design Club", "designclub")

	service, err := svc.Create(context.Background(), owner, &dto.CreateServiceRequest{
		Title:       "Web Workshop",
		Description: "Intro",
		ServiceType: "workshop",
		IsFree:      boolPtr(true),
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), other, service.ID, &dto.UpdateServiceRequest{
		Title: strPtr("Hijacked"),
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.Update(context.Background(), owner, service.ID, &dto.UpdateServiceRequest{
		Title:  strPtr("Advanced Web Workshop"),
		Status: strPtr("INACTIVE"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Advanced Web Workshop", updated.Title)
	assert.Equal(t, models.ServiceStatusInactive, updated.Status)
	// Untouched fields survive the partial update
	assert.Equal(t, "Intro", updated.Description)
}

func TestServiceUpdatePaidRequiresPrice(t *testing.T) {
	svc, _, orgRepo := newTestServiceService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")

	service, err := svc.Create(context.Background(), owner, &dto.CreateServiceRequest{
		Title:       "Free Tutoring",
		Description: "Math tutoring",
		ServiceType: "tutoring",
		IsFree:      boolPtr(true),
	})
	require.NoError(t, err)

	// Flipping to paid without supplying a price leaves the merged state
	// priceless, which is invalid
	_, err = svc.Update(context.Background(), owner, service.ID, &dto.UpdateServiceRequest{
		IsFree: boolPtr(false),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	updated, err := svc.Update(context.Background(), owner, service.ID, &dto.UpdateServiceRequest{
		IsFree: boolPtr(false),
		Price:  intPtr(15),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsFree)
	require.NotNil(t, updated.Price)
	assert.Equal(t, 15, *updated.Price)
}

func TestServiceUpdateTurningFreeClearsPrice(t *testing.T) {
	svc, serviceRepo, orgRepo := newTestServiceService()
	owner := addOrg(orgRepo, "Design Club", "designclub")

	service, err := svc.Create(context.Background(), owner, &dto.CreateServiceRequest{
		Title:       "Poster Design",
		Description: "Custom posters",
		ServiceType: "design",
		IsFree:      boolPtr(false),
		Price:       intPtr(25),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), owner, service.ID, &dto.UpdateServiceRequest{
		IsFree: boolPtr(true),
		Price:  intPtr(30),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsFree)
	assert.Nil(t, updated.Price)

	// The stale price is gone from the store as well
	stored, err := serviceRepo.GetByID(context.Background(), service.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Price)

	// A later price change on a free service does not stick either
	updated, err = svc.Update(context.Background(), owner, service.ID, &dto.UpdateServiceRequest{
		Price: intPtr(40),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Price)
}

func TestServiceDeleteOwnerOnly(t *testing.T) {
	svc, _, orgRepo := newTestServiceService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")
	other := addOrg(orgRepo, "Design Club", "designclub")

	service, err := svc.Create(context.Background(), owner, &dto.CreateServiceRequest{
		Title:       "Web Workshop",
		Description: "Intro",
		ServiceType: "workshop",
		IsFree:      boolPtr(true),
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), other, service.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.Delete(context.Background(), owner, service.ID))

	_, err = svc.GetByID(context.Background(), service.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestServiceGetByIDAttachesOwner(t *testing.T) {
	svc, _, orgRepo := newTestServiceService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")

	service, err := svc.Create(context.Background(), owner, &dto.CreateServiceRequest{
		Title:       "Web Workshop",
		Description: "Intro",
		ServiceType: "workshop",
		IsFree:      boolPtr(true),
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(context.Background(), service.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Organization)
	assert.Equal(t, "techsociety", fetched.Organization.Username)
}

func TestServiceGetAllFilters(t *testing.T) {
	svc, _, orgRepo := newTestServiceService()
	owner := addOrg(orgRepo, "Tech Society", "techsociety")

	_, err := svc.Create(context.Background(), owner, &dto.CreateServiceRequest{
		Title: "Workshop", Description: "d", ServiceType: "workshop", IsFree: boolPtr(true),
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), owner, &dto.CreateServiceRequest{
		Title: "Design", Description: "d", ServiceType: "design", IsFree: boolPtr(false), Price: intPtr(10),
	})
	require.NoError(t, err)

	all, err := svc.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	workshops, err := svc.GetAll(context.Background(), &dto.ServiceFilter{ServiceType: strPtr("workshop")})
	require.NoError(t, err)
	require.Len(t, workshops, 1)
	assert.Equal(t, "Workshop", workshops[0].Title)

	paid, err := svc.GetAll(context.Background(), &dto.ServiceFilter{IsFree: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "Design", paid[0].Title)
}
