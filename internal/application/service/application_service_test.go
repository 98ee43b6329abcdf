package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/home4paws/home4paws/internal/application/dto"
	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

type memApplicationRepo struct {
	apps   map[uint]*models.Application
	nextID uint
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{apps: map[uint]*models.Application{}, nextID: 1}
}

func (m *memApplicationRepo) FindAll(ctx context.Context) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range m.apps {
		out = append(out, a)
	}
	return out, nil
}

func (m *memApplicationRepo) FindByID(ctx context.Context, id uint) (*models.Application, error) {
	if a, ok := m.apps[id]; ok {
		return a, nil
	}
	return nil, errors.ErrResourceNotFound("application", id)
}

func (m *memApplicationRepo) FindByUserID(ctx context.Context, userID uint) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range m.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memApplicationRepo) FindByStatus(ctx context.Context, status models.ApplicationStatus) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range m.apps {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memApplicationRepo) Save(ctx context.Context, app *models.Application) error {
	app.ID = m.nextID
	m.nextID++
	m.apps[app.ID] = app
	return nil
}

func (m *memApplicationRepo) Update(ctx context.Context, app *models.Application) error {
	m.apps[app.ID] = app
	return nil
}

func (m *memApplicationRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.apps[id]; !ok {
		return errors.ErrResourceNotFound("application", id)
	}
	delete(m.apps, id)
	return nil
}

type appFixture struct {
	svc     *ApplicationService
	dogs    *memDogRepo
	users   *memUserRepo
	strayID uint
	saleID  uint
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	dogs := newMemDogRepo()
	users := newMemUserRepo()
	apps := newMemApplicationRepo()
	ctx := context.Background()

	require.NoError(t, users.Save(ctx, &models.User{Username: "alice", Email: "alice@example.com", Enabled: true}))

	stray := &models.Dog{Name: "Rex", Status: models.DogStatusAvailable, IsStray: true}
	sale := &models.Dog{Name: "Bella", Status: models.DogStatusAvailable, IsStray: false, Price: 400}
	require.NoError(t, dogs.Save(ctx, stray))
	require.NoError(t, dogs.Save(ctx, sale))

	return &appFixture{
		svc:     NewApplicationService(apps, dogs, users, logger.NewNoopLogger()),
		dogs:    dogs,
		users:   users,
		strayID: stray.ID,
		saleID:  sale.ID,
	}
}

func validRequest(dogID uint, appType string) *dto.ApplicationRequest {
	return &dto.ApplicationRequest{
		DogID:       dogID,
		Type:        appType,
		FullName:    "Alice A",
		Email:       "alice@example.com",
		PhoneNumber: "555-0100",
		Address:     "1 Main St",
	}
}

func TestSubmit_AdoptionForStrayDog(t *testing.T) {
	f := newAppFixture(t)

	app, err := f.svc.Submit(context.Background(), "alice", validRequest(f.strayID, "ADOPTION"))
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, models.ApplicationTypeAdoption, app.Type)
}

func TestSubmit_TypeMustMatchListing(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, "alice", validRequest(f.strayID, "PURCHASE"))
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	_, err = f.svc.Submit(ctx, "alice", validRequest(f.saleID, "ADOPTION"))
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	_, err = f.svc.Submit(ctx, "alice", validRequest(f.strayID, "RENT"))
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestSubmit_UnavailableDogRejected(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	f.dogs.dogs[f.strayID].Status = models.DogStatusAdopted
	_, err := f.svc.Submit(ctx, "alice", validRequest(f.strayID, "ADOPTION"))
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	_, err = f.svc.Submit(ctx, "alice", validRequest(9999, "ADOPTION"))
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestReview_ApprovalMarksDog(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	app, err := f.svc.Submit(ctx, "alice", validRequest(f.strayID, "ADOPTION"))
	require.NoError(t, err)

	reviewed, err := f.svc.Review(ctx, app.ID, &dto.ApplicationStatusUpdateRequest{
		Status:     "APPROVED",
		AdminNotes: "home visit done",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ProcessedAt)
	assert.Equal(t, models.DogStatusAdopted, f.dogs.dogs[f.strayID].Status)
}

func TestGet_OwnershipEnforced(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Save(ctx, &models.User{Username: "bob", Email: "bob@example.com", Enabled: true}))

	app, err := f.svc.Submit(ctx, "alice", validRequest(f.strayID, "ADOPTION"))
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, models.Principal{Username: "bob", Roles: []models.Role{models.RoleUser}}, app.ID)
	assert.ErrorIs(t, err, errors.ErrNotFound)

	got, err := f.svc.Get(ctx, models.Principal{Username: "alice", Roles: []models.Role{models.RoleUser}}, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, got.ID)

	got, err = f.svc.Get(ctx, models.Principal{Username: "bob", Roles: []models.Role{models.RoleUser, models.RoleAdmin}}, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, got.ID)
}
