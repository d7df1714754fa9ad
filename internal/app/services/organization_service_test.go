package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/pkg/apperrors"
)

type organizationFixture struct {
	svc            OrganizationService
	orgRepo        *fakeOrganizationRepo
	serviceRepo    *fakeServiceRepo
	equipmentRepo  *fakeEquipmentRepo
	connectionRepo *fakeConnectionRepo
	messageRepo    *fakeMessageRepo
}

func newOrganizationFixture() *organizationFixture {
	orgRepo := newFakeOrganizationRepo()
	serviceRepo := newFakeServiceRepo()
	equipmentRepo := newFakeEquipmentRepo()
	connectionRepo := newFakeConnectionRepo()
	messageRepo := newFakeMessageRepo()

	svc := NewOrganizationService(orgRepo, serviceRepo, equipmentRepo, connectionRepo, messageRepo, zerolog.Nop())
	return &organizationFixture{
		svc:            svc,
		orgRepo:        orgRepo,
		serviceRepo:    serviceRepo,
		equipmentRepo:  equipmentRepo,
		connectionRepo: connectionRepo,
		messageRepo:    messageRepo,
	}
}

func TestOrganizationGetAll(t *testing.T) {
	f := newOrganizationFixture()
	addOrg(f.orgRepo, "Tech Society", "techsociety")
	addOrg(f.orgRepo, "Design Club", "designclub")

	profiles, err := f.svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "techsociety", profiles[0].Username)
}

func TestOrganizationGetByID(t *testing.T) {
	f := newOrganizationFixture()
	id := addOrg(f.orgRepo, "Tech Society", "techsociety")

	profile, err := f.svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Tech Society", profile.Name)

	_, err = f.svc.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
}

func TestOrganizationListingsRequireExistingOrganization(t *testing.T) {
	f := newOrganizationFixture()

	_, err := f.svc.GetServices(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)

	_, err = f.svc.GetEquipment(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
}

func TestDashboardStats(t *testing.T) {
	f := newOrganizationFixture()
	alice := addOrg(f.orgRepo, "Tech Society", "techsociety")
	bob := addOrg(f.orgRepo, "Design Club", "designclub")
	carol := addOrg(f.orgRepo, "Chess Club", "chessclub")

	ctx := context.Background()

	// Two services, one inactive
	require.NoError(t, f.serviceRepo.Create(ctx, &models.Service{
		OrganizationID: alice, Title: "Workshop", Status: models.ServiceStatusActive,
	}))
	require.NoError(t, f.serviceRepo.Create(ctx, &models.Service{
		OrganizationID: alice, Title: "Old Workshop", Status: models.ServiceStatusInactive,
	}))

	require.NoError(t, f.equipmentRepo.Create(ctx, &models.Equipment{
		OrganizationID: alice, Name: "Projector", Status: models.EquipmentStatusAvailable,
	}))

	// One accepted connection, one still pending
	accepted := &models.Connection{RequesterID: alice, ReceiverID: bob, Status: models.ConnectionStatusAccepted}
	require.NoError(t, f.connectionRepo.Create(ctx, accepted))
	pending := &models.Connection{RequesterID: carol, ReceiverID: alice, Status: models.ConnectionStatusPending}
	require.NoError(t, f.connectionRepo.Create(ctx, pending))

	require.NoError(t, f.messageRepo.Create(ctx, &models.Message{
		SenderID: bob, ReceiverID: alice, Content: "hi",
	}))

	stats, err := f.svc.GetDashboardStats(ctx, alice)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ActiveServices)
	assert.Equal(t, 1, stats.EquipmentCount)
	assert.Equal(t, 1, stats.AcceptedConnections)
	assert.Equal(t, 1, stats.UnreadMessages)
}
