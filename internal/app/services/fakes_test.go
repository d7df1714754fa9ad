package services

import (
	"context"
	"sort"
	"time"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the error contracts of the
// PostgreSQL implementations so services can be exercised without a database.

// addOrg seeds an organization and returns its id
func addOrg(repo *fakeOrganizationRepo, name, username string) int64 {
	org := &models.Organization{Name: name, Username: username, PasswordHash: "x"}
	_ = repo.Create(context.Background(), org)
	return org.ID
}

type fakeOrganizationRepo struct {
	nextID int64
	orgs   map[int64]*models.Organization
}

func newFakeOrganizationRepo() *fakeOrganizationRepo {
	return &fakeOrganizationRepo{orgs: make(map[int64]*models.Organization)}
}

func (f *fakeOrganizationRepo) Create(_ context.Context, org *models.Organization) error {
	for _, existing := range f.orgs {
		if existing.Username == org.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
	}
	f.nextID++
	org.ID = f.nextID
	org.CreatedAt = time.Now()
	copied := *org
	f.orgs[org.ID] = &copied
	return nil
}

func (f *fakeOrganizationRepo) GetByID(_ context.Context, id int64) (*models.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return nil, apperrors.ErrOrganizationNotFound
	}
	copied := *org
	return &copied, nil
}

func (f *fakeOrganizationRepo) GetByUsername(_ context.Context, username string) (*models.Organization, error) {
	for _, org := range f.orgs {
		if org.Username == username {
			copied := *org
			return &copied, nil
		}
	}
	return nil, apperrors.ErrOrganizationNotFound
}

func (f *fakeOrganizationRepo) GetAll(_ context.Context) ([]*models.Organization, error) {
	ids := make([]int64, 0, len(f.orgs))
	for id := range f.orgs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*models.Organization, 0, len(ids))
	for _, id := range ids {
		copied := *f.orgs[id]
		out = append(out, &copied)
	}
	return out, nil
}

type fakeTokenRepo struct {
	nextID int64
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (f *fakeTokenRepo) Store(_ context.Context, token *models.RefreshToken) error {
	f.nextID++
	token.ID = f.nextID
	copied := *token
	f.tokens[token.Token] = &copied
	return nil
}

func (f *fakeTokenRepo) Get(_ context.Context, token string) (*models.RefreshToken, error) {
	stored, ok := f.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeTokenRepo) Delete(_ context.Context, token string) error {
	if _, ok := f.tokens[token]; !ok {
		return apperrors.ErrTokenNotFound
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeTokenRepo) DeleteByOrganization(_ context.Context, organizationID int64) error {
	for key, stored := range f.tokens {
		if stored.OrganizationID == organizationID {
			delete(f.tokens, key)
		}
	}
	return nil
}

type fakeServiceRepo struct {
	nextID   int64
	services map[int64]*models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[int64]*models.Service)}
}

func (f *fakeServiceRepo) Create(_ context.Context, service *models.Service) error {
	f.nextID++
	service.ID = f.nextID
	service.CreatedAt = time.Now()
	copied := *service
	f.services[service.ID] = &copied
	return nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*models.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *service
	return &copied, nil
}

func (f *fakeServiceRepo) GetAll(_ context.Context, filter *dto.ServiceFilter) ([]*models.Service, error) {
	out := make([]*models.Service, 0, len(f.services))
	for _, service := range f.sorted() {
		if filter != nil {
			if filter.ServiceType != nil && service.ServiceType != *filter.ServiceType {
				continue
			}
			if filter.IsFree != nil && service.IsFree != *filter.IsFree {
				continue
			}
		}
		copied := *service
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByOrganization(_ context.Context, organizationID int64) ([]*models.Service, error) {
	out := []*models.Service{}
	for _, service := range f.sorted() {
		if service.OrganizationID == organizationID {
			copied := *service
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, id int64, upd *dto.UpdateServiceRequest) (*models.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	if upd.Title != nil {
		service.Title = *upd.Title
	}
	if upd.Description != nil {
		service.Description = *upd.Description
	}
	if upd.ServiceType != nil {
		service.ServiceType = *upd.ServiceType
	}
	if upd.IsFree != nil {
		service.IsFree = *upd.IsFree
		if service.IsFree {
			service.Price = nil
		}
	}
	if upd.Price != nil && (upd.IsFree == nil || !*upd.IsFree) {
		service.Price = upd.Price
	}
	if upd.Availability != nil {
		service.Availability = *upd.Availability
	}
	if upd.Capacity != nil {
		service.Capacity = upd.Capacity
	}
	if upd.Status != nil {
		service.Status = models.ServiceStatus(*upd.Status)
	}
	copied := *service
	return &copied, nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.services[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) sorted() []*models.Service {
	ids := make([]int64, 0, len(f.services))
	for id := range f.services {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*models.Service, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.services[id])
	}
	return out
}

type fakeEquipmentRepo struct {
	nextID int64
	items  map[int64]*models.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: make(map[int64]*models.Equipment)}
}

func (f *fakeEquipmentRepo) Create(_ context.Context, equipment *models.Equipment) error {
	f.nextID++
	equipment.ID = f.nextID
	equipment.CreatedAt = time.Now()
	copied := *equipment
	f.items[equipment.ID] = &copied
	return nil
}

func (f *fakeEquipmentRepo) GetByID(_ context.Context, id int64) (*models.Equipment, error) {
	equipment, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *equipment
	return &copied, nil
}

func (f *fakeEquipmentRepo) GetAll(_ context.Context, filter *dto.EquipmentFilter) ([]*models.Equipment, error) {
	out := make([]*models.Equipment, 0, len(f.items))
	for _, equipment := range f.sorted() {
		if filter != nil && filter.Status != nil && string(equipment.Status) != *filter.Status {
			continue
		}
		copied := *equipment
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeEquipmentRepo) GetByOrganization(_ context.Context, organizationID int64) ([]*models.Equipment, error) {
	out := []*models.Equipment{}
	for _, equipment := range f.sorted() {
		if equipment.OrganizationID == organizationID {
			copied := *equipment
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeEquipmentRepo) Update(_ context.Context, id int64, upd *dto.UpdateEquipmentRequest) (*models.Equipment, error) {
	equipment, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	if upd.Status != nil && equipment.Status == models.EquipmentStatusBorrowed {
		return nil, apperrors.NewConflictError("equipment is currently borrowed")
	}
	if upd.Name != nil {
		equipment.Name = *upd.Name
	}
	if upd.Description != nil {
		equipment.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		equipment.ImageURL = *upd.ImageURL
	}
	if upd.Status != nil {
		equipment.Status = models.EquipmentStatus(*upd.Status)
	}
	if upd.AvailableUntil != nil {
		equipment.AvailableUntil = upd.AvailableUntil
	}
	if upd.Deposit != nil {
		equipment.Deposit = upd.Deposit
	}
	if upd.Conditions != nil {
		equipment.Conditions = upd.Conditions
	}
	copied := *equipment
	return &copied, nil
}

func (f *fakeEquipmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeEquipmentRepo) sorted() []*models.Equipment {
	ids := make([]int64, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*models.Equipment, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.items[id])
	}
	return out
}

type fakeConnectionRepo struct {
	nextID      int64
	connections map[int64]*models.Connection
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{connections: make(map[int64]*models.Connection)}
}

func (f *fakeConnectionRepo) Create(_ context.Context, connection *models.Connection) error {
	for _, existing := range f.connections {
		if samePair(existing, connection.RequesterID, connection.ReceiverID) {
			return apperrors.ErrConnectionExists
		}
	}
	f.nextID++
	connection.ID = f.nextID
	connection.CreatedAt = time.Now()
	copied := *connection
	f.connections[connection.ID] = &copied
	return nil
}

func (f *fakeConnectionRepo) GetByID(_ context.Context, id int64) (*models.Connection, error) {
	connection, ok := f.connections[id]
	if !ok {
		return nil, apperrors.ErrConnectionNotFound
	}
	copied := *connection
	return &copied, nil
}

func (f *fakeConnectionRepo) GetByOrganization(_ context.Context, organizationID int64) ([]*models.Connection, error) {
	ids := make([]int64, 0, len(f.connections))
	for id := range f.connections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []*models.Connection{}
	for _, id := range ids {
		connection := f.connections[id]
		if connection.RequesterID == organizationID || connection.ReceiverID == organizationID {
			copied := *connection
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeConnectionRepo) FindByPair(_ context.Context, orgA, orgB int64) (*models.Connection, error) {
	for _, connection := range f.connections {
		if samePair(connection, orgA, orgB) {
			copied := *connection
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeConnectionRepo) UpdateStatus(_ context.Context, id int64, from, to models.ConnectionStatus) (*models.Connection, error) {
	connection, ok := f.connections[id]
	if !ok {
		return nil, apperrors.ErrConnectionNotFound
	}
	if connection.Status != from {
		return nil, apperrors.ErrInvalidTransition
	}
	connection.Status = to
	copied := *connection
	return &copied, nil
}

func samePair(c *models.Connection, orgA, orgB int64) bool {
	return (c.RequesterID == orgA && c.ReceiverID == orgB) ||
		(c.RequesterID == orgB && c.ReceiverID == orgA)
}

type fakeServiceRequestRepo struct {
	nextID      int64
	requests    map[int64]*models.ServiceRequest
	serviceRepo *fakeServiceRepo
}

func newFakeServiceRequestRepo(serviceRepo *fakeServiceRepo) *fakeServiceRequestRepo {
	return &fakeServiceRequestRepo{
		requests:    make(map[int64]*models.ServiceRequest),
		serviceRepo: serviceRepo,
	}
}

func (f *fakeServiceRequestRepo) Create(_ context.Context, request *models.ServiceRequest) error {
	f.nextID++
	request.ID = f.nextID
	request.CreatedAt = time.Now()
	copied := *request
	f.requests[request.ID] = &copied
	return nil
}

func (f *fakeServiceRequestRepo) GetByID(_ context.Context, id int64) (*models.ServiceRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *request
	return &copied, nil
}

func (f *fakeServiceRequestRepo) GetByService(_ context.Context, serviceID int64) ([]*models.ServiceRequest, error) {
	out := []*models.ServiceRequest{}
	for _, request := range f.sorted() {
		if request.ServiceID == serviceID {
			copied := *request
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeServiceRequestRepo) GetByOrganization(_ context.Context, organizationID int64) ([]*models.ServiceRequest, error) {
	out := []*models.ServiceRequest{}
	for _, request := range f.sorted() {
		if request.RequesterID == organizationID {
			copied := *request
			out = append(out, &copied)
			continue
		}
		if service, ok := f.serviceRepo.services[request.ServiceID]; ok && service.OrganizationID == organizationID {
			copied := *request
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeServiceRequestRepo) UpdateStatus(_ context.Context, id int64, from, to models.ServiceRequestStatus) (*models.ServiceRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	if request.Status != from {
		return nil, apperrors.ErrInvalidTransition
	}
	request.Status = to
	copied := *request
	return &copied, nil
}

func (f *fakeServiceRequestRepo) sorted() []*models.ServiceRequest {
	ids := make([]int64, 0, len(f.requests))
	for id := range f.requests {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*models.ServiceRequest, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.requests[id])
	}
	return out
}

type fakeBorrowingRepo struct {
	nextID        int64
	borrowings    map[int64]*models.EquipmentBorrowing
	equipmentRepo *fakeEquipmentRepo
}

func newFakeBorrowingRepo(equipmentRepo *fakeEquipmentRepo) *fakeBorrowingRepo {
	return &fakeBorrowingRepo{
		borrowings:    make(map[int64]*models.EquipmentBorrowing),
		equipmentRepo: equipmentRepo,
	}
}

func (f *fakeBorrowingRepo) Create(_ context.Context, borrowing *models.EquipmentBorrowing) error {
	f.nextID++
	borrowing.ID = f.nextID
	borrowing.CreatedAt = time.Now()
	copied := *borrowing
	f.borrowings[borrowing.ID] = &copied
	return nil
}

func (f *fakeBorrowingRepo) GetByID(_ context.Context, id int64) (*models.EquipmentBorrowing, error) {
	borrowing, ok := f.borrowings[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *borrowing
	return &copied, nil
}

func (f *fakeBorrowingRepo) GetByEquipment(_ context.Context, equipmentID int64) ([]*models.EquipmentBorrowing, error) {
	out := []*models.EquipmentBorrowing{}
	for _, borrowing := range f.sorted() {
		if borrowing.EquipmentID == equipmentID {
			copied := *borrowing
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBorrowingRepo) GetByOrganization(_ context.Context, organizationID int64) ([]*models.EquipmentBorrowing, error) {
	out := []*models.EquipmentBorrowing{}
	for _, borrowing := range f.sorted() {
		if borrowing.BorrowerID == organizationID {
			copied := *borrowing
			out = append(out, &copied)
			continue
		}
		if equipment, ok := f.equipmentRepo.items[borrowing.EquipmentID]; ok && equipment.OrganizationID == organizationID {
			copied := *borrowing
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBorrowingRepo) Approve(_ context.Context, id int64) (*models.EquipmentBorrowing, error) {
	borrowing, ok := f.borrowings[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	if borrowing.Status != models.BorrowingStatusPending {
		return nil, apperrors.ErrInvalidTransition
	}
	equipment, ok := f.equipmentRepo.items[borrowing.EquipmentID]
	if !ok || equipment.Status != models.EquipmentStatusAvailable {
		return nil, apperrors.ErrEquipmentUnavailable
	}
	borrowing.Status = models.BorrowingStatusApproved
	equipment.Status = models.EquipmentStatusBorrowed
	copied := *borrowing
	return &copied, nil
}

func (f *fakeBorrowingRepo) Return(_ context.Context, id int64) (*models.EquipmentBorrowing, error) {
	borrowing, ok := f.borrowings[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	if borrowing.Status != models.BorrowingStatusApproved {
		return nil, apperrors.ErrInvalidTransition
	}
	borrowing.Status = models.BorrowingStatusReturned
	if equipment, ok := f.equipmentRepo.items[borrowing.EquipmentID]; ok {
		equipment.Status = models.EquipmentStatusAvailable
	}
	copied := *borrowing
	return &copied, nil
}

func (f *fakeBorrowingRepo) Reject(_ context.Context, id int64) (*models.EquipmentBorrowing, error) {
	borrowing, ok := f.borrowings[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	if borrowing.Status != models.BorrowingStatusPending {
		return nil, apperrors.ErrInvalidTransition
	}
	borrowing.Status = models.BorrowingStatusRejected
	copied := *borrowing
	return &copied, nil
}

func (f *fakeBorrowingRepo) sorted() []*models.EquipmentBorrowing {
	ids := make([]int64, 0, len(f.borrowings))
	for id := range f.borrowings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*models.EquipmentBorrowing, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.borrowings[id])
	}
	return out
}

type fakeMessageRepo struct {
	nextID   int64
	messages map[int64]*models.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[int64]*models.Message)}
}

func (f *fakeMessageRepo) Create(_ context.Context, message *models.Message) error {
	f.nextID++
	message.ID = f.nextID
	message.CreatedAt = time.Now()
	copied := *message
	f.messages[message.ID] = &copied
	return nil
}

func (f *fakeMessageRepo) GetByID(_ context.Context, id int64) (*models.Message, error) {
	message, ok := f.messages[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *message
	return &copied, nil
}

func (f *fakeMessageRepo) GetConversation(_ context.Context, orgA, orgB int64) ([]*models.Message, error) {
	out := []*models.Message{}
	for _, message := range f.sorted() {
		if (message.SenderID == orgA && message.ReceiverID == orgB) ||
			(message.SenderID == orgB && message.ReceiverID == orgA) {
			copied := *message
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) MarkConversationRead(_ context.Context, readerID, otherID int64) error {
	for _, message := range f.messages {
		if message.ReceiverID == readerID && message.SenderID == otherID {
			message.Read = true
		}
	}
	return nil
}

func (f *fakeMessageRepo) MarkRead(_ context.Context, id int64) error {
	message, ok := f.messages[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	message.Read = true
	return nil
}

func (f *fakeMessageRepo) UnreadCount(_ context.Context, organizationID int64) (int, error) {
	count := 0
	for _, message := range f.messages {
		if message.ReceiverID == organizationID && !message.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeMessageRepo) sorted() []*models.Message {
	ids := make([]int64, 0, len(f.messages))
	for id := range f.messages {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*models.Message, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.messages[id])
	}
	return out
}
