package gormdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/home4paws/home4paws/internal/config"
	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/internal/infrastructure/crypto"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestUserRepository_CRUDAndRoles(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testDB(t), logger.NewNoopLogger())

	user := &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Enabled:      true,
	}
	require.NoError(t, repo.Save(ctx, user))
	require.NotZero(t, user.ID)

	require.NoError(t, repo.AssignRole(ctx, user.ID, models.RoleUser))
	require.NoError(t, repo.AssignRole(ctx, user.ID, models.RoleAdmin))

	loaded, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.ID)
	assert.ElementsMatch(t, []models.Role{models.RoleUser, models.RoleAdmin}, loaded.RoleSet())
	assert.True(t, loaded.HasRole(models.RoleAdmin))

	exists, err := repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, errors.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), errors.ErrNotFound)
}

func TestUserRepository_UnknownStoredRoleDropped(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewUserRepository(db, logger.NewNoopLogger())

	user := &models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "hash", Enabled: true}
	require.NoError(t, repo.Save(ctx, user))
	require.NoError(t, repo.AssignRole(ctx, user.ID, models.RoleUser))

	// Inject a role name outside the vocabulary directly into the store.
	bogus := models.RoleRecord{Name: "ROLE_SUPERUSER"}
	require.NoError(t, db.Create(&bogus).Error)
	require.NoError(t, db.Model(&models.User{ID: user.ID}).Association("Roles").Append(&bogus))

	loaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Role{models.RoleUser}, loaded.RoleSet())
}

func TestDogRepository_StatusAndStrayFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewDogRepository(testDB(t), logger.NewNoopLogger())

	dogs := []*models.Dog{
		{Name: "Rex", Breed: "Mixed", Status: models.DogStatusAvailable, IsStray: true},
		{Name: "Bella", Breed: "Labrador", Status: models.DogStatusAdopted, IsStray: false},
		{Name: "Max", Breed: "Beagle", Status: models.DogStatusAvailable, IsStray: false},
	}
	for _, d := range dogs {
		require.NoError(t, repo.Save(ctx, d))
	}

	available, err := repo.FindByStatus(ctx, models.DogStatusAvailable)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	strays, err := repo.FindByStray(ctx, true)
	require.NoError(t, err)
	require.Len(t, strays, 1)
	assert.Equal(t, "Rex", strays[0].Name)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestSurrenderRepository_UrgentQueue(t *testing.T) {
	ctx := context.Background()
	repo := NewSurrenderRepository(testDB(t), logger.NewNoopLogger())

	reqs := []*models.SurrenderRequest{
		{OwnerName: "A", OwnerPhone: "1", OwnerEmail: "a@x.com", DogName: "D1", SurrenderReason: "moving", IsUrgent: true, Status: models.SurrenderStatusPending},
		{OwnerName: "B", OwnerPhone: "2", OwnerEmail: "b@x.com", DogName: "D2", SurrenderReason: "allergy", IsUrgent: false, Status: models.SurrenderStatusPending},
		{OwnerName: "C", OwnerPhone: "3", OwnerEmail: "c@x.com", DogName: "D3", SurrenderReason: "moving", IsUrgent: true, Status: models.SurrenderStatusCompleted},
	}
	for _, req := range reqs {
		require.NoError(t, repo.Save(ctx, req))
	}

	urgent, err := repo.FindUrgent(ctx)
	require.NoError(t, err)
	require.Len(t, urgent, 1)
	assert.Equal(t, "D1", urgent[0].DogName)

	pending, err := repo.FindByStatus(ctx, models.SurrenderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestReportRepository_PhotoListRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository(testDB(t), logger.NewNoopLogger())

	report := &models.Report{
		Name:        "Finder",
		Phone:       "555-0100",
		Description: "Stray near the park",
		Location:    "Central Park",
		Photos:      models.StringList{"/uploads/reports/a.jpg", "/uploads/reports/b.jpg"},
		Status:      models.ReportStatusPending,
	}
	require.NoError(t, repo.Save(ctx, report))

	loaded, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Photos, loaded.Photos)
}

func TestSeed_CreatesAccountsOnce(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewUserRepository(db, logger.NewNoopLogger())
	hasher := crypto.NewPasswordHasher()

	cfg := &config.SeedConfig{
		Enabled:       true,
		AdminUsername: "admin",
		AdminEmail:    "admin@home4paws.org",
		AdminPassword: "Admin123!",
		DemoUsername:  "demo",
		DemoEmail:     "demo@home4paws.org",
		DemoPassword:  "Demo123!",
	}

	require.NoError(t, Seed(ctx, cfg, repo, hasher, logger.NewNoopLogger()))

	admin, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.HasRole(models.RoleAdmin))
	assert.True(t, hasher.Verify("Admin123!", admin.PasswordHash))

	demo, err := repo.FindByUsername(ctx, "demo")
	require.NoError(t, err)
	assert.False(t, demo.HasRole(models.RoleAdmin))

	// Second run must not duplicate accounts or fail on unique indexes.
	require.NoError(t, Seed(ctx, cfg, repo, hasher, logger.NewNoopLogger()))
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
