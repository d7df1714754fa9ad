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

func newTestConnectionService() (ConnectionService, *fakeConnectionRepo, *fakeOrganizationRepo) {
	connectionRepo := newFakeConnectionRepo()
	orgRepo := newFakeOrganizationRepo()
	svc := NewConnectionService(connectionRepo, orgRepo, zerolog.Nop())
	return svc, connectionRepo, orgRepo
}

func TestConnectionRequest(t *testing.T) {
	svc, _, orgRepo := newTestConnectionService()
	alice := addOrg(orgRepo, "Tech Society", "techsociety")
	bob := addOrg(orgRepo, "Design Club", "designclub")

	connection, err := svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: bob})
	require.NoError(t, err)

	assert.Equal(t, alice, connection.RequesterID)
	assert.Equal(t, bob, connection.ReceiverID)
	assert.Equal(t, models.ConnectionStatusPending, connection.Status)
}

func TestConnectionRequestSelf(t *testing.T) {
	svc, _, orgRepo := newTestConnectionService()
	alice := addOrg(orgRepo, "Tech Society", "techsociety")

	_, err := svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: alice})
	assert.ErrorIs(t, err, apperrors.ErrSelfConnection)
}

func TestConnectionRequestUnknownReceiver(t *testing.T) {
	svc, _, orgRepo := newTestConnectionService()
	alice := addOrg(orgRepo, "Tech Society", "techsociety")

	_, err := svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: 9999})
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
}

func TestConnectionPairIsUniqueEitherDirection(t *testing.T) {
	svc, _, orgRepo := newTestConnectionService()
	alice := addOrg(orgRepo, "Tech Society", "techsociety")
	bob := addOrg(orgRepo, "Design Club", "designclub")

	_, err := svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: bob})
	require.NoError(t, err)

	_, err = svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: bob})
	assert.ErrorIs(t, err, apperrors.ErrConnectionExists)

	// The reverse direction is the same pair
	_, err = svc.Request(context.Background(), bob, &dto.CreateConnectionRequest{ReceiverID: alice})
	assert.ErrorIs(t, err, apperrors.ErrConnectionExists)
}

func TestConnectionResolvedPairCannotBeRerequested(t *testing.T) {
	svc, _, orgRepo := newTestConnectionService()
	alice := addOrg(orgRepo, "Tech Society", "techsociety")
	bob := addOrg(orgRepo, "Design Club", "designclub")

	connection, err := svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: bob})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), bob, connection.ID, models.ConnectionStatusRejected)
	require.NoError(t, err)

	_, err = svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: bob})
	assert.ErrorIs(t, err, apperrors.ErrConnectionExists)
}

func TestConnectionReceiverOnlyResolution(t *testing.T) {
	svc, _, orgRepo := newTestConnectionService()
	alice := addOrg(orgRepo, "Tech Society", "techsociety")
	bob := addOrg(orgRepo, "Design Club", "designclub")

	connection, err := svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: bob})
	require.NoError(t, err)

	// The requester cannot accept its own request
	_, err = svc.UpdateStatus(context.Background(), alice, connection.ID, models.ConnectionStatusAccepted)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.UpdateStatus(context.Background(), bob, connection.ID, models.ConnectionStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusAccepted, updated.Status)
}

func TestConnectionResolutionIsTerminal(t *testing.T) {
	svc, _, orgRepo := newTestConnectionService()
	alice := addOrg(orgRepo, "Tech Society", "techsociety")
	bob := addOrg(orgRepo, "Design Club", "designclub")

	connection, err := svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: bob})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), bob, connection.ID, models.ConnectionStatusAccepted)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), bob, connection.ID, models.ConnectionStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestConnectionStatusGuardsAgainstStaleWrites(t *testing.T) {
	svc, connectionRepo, orgRepo := newTestConnectionService()
	alice := addOrg(orgRepo, "Tech Society", "techsociety")
	bob := addOrg(orgRepo, "Design Club", "designclub")

	connection, err := svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: bob})
	require.NoError(t, err)

	// A second resolver that read the connection while it was still pending
	// loses the race: the store only applies the transition when the current
	// status still matches
	_, err = connectionRepo.UpdateStatus(context.Background(), connection.ID,
		models.ConnectionStatusPending, models.ConnectionStatusAccepted)
	require.NoError(t, err)

	_, err = connectionRepo.UpdateStatus(context.Background(), connection.ID,
		models.ConnectionStatusPending, models.ConnectionStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	stored, err := connectionRepo.GetByID(context.Background(), connection.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusAccepted, stored.Status)
}

func TestConnectionListAttachesProfiles(t *testing.T) {
	svc, _, orgRepo := newTestConnectionService()
	alice := addOrg(orgRepo, "Tech Society", "techsociety")
	bob := addOrg(orgRepo, "Design Club", "designclub")
	carol := addOrg(orgRepo, "Chess Club", "chessclub")

	_, err := svc.Request(context.Background(), alice, &dto.CreateConnectionRequest{ReceiverID: bob})
	require.NoError(t, err)
	_, err = svc.Request(context.Background(), carol, &dto.CreateConnectionRequest{ReceiverID: alice})
	require.NoError(t, err)

	connections, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, connections, 2)

	require.NotNil(t, connections[0].Requester)
	require.NotNil(t, connections[0].Receiver)
	assert.Equal(t, "techsociety", connections[0].Requester.Username)
	assert.Equal(t, "designclub", connections[0].Receiver.Username)

	// Bob sees only his own connection
	bobConnections, err := svc.List(context.Background(), bob)
	require.NoError(t, err)
	assert.Len(t, bobConnections, 1)
}
