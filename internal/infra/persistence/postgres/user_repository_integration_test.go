package postgres

import (
	"context"
	"os"
	"testing"

	"hifybe/internal/infra/persistence/model"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// These tests run the real upsert SQL and need a reachable PostgreSQL,
// e.g. HIFYBE_TEST_DATABASE_DSN="host=localhost user=hifybe password=hifybe
// dbname=hifybe_test sslmode=disable". They are skipped otherwise.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("HIFYBE_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("HIFYBE_TEST_DATABASE_DSN not set; skipping database integration test")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}))

	return db
}

func uniqueEmail() string {
	return "it-" + uuid.NewString() + "@example.com"
}

func deleteTestUser(t *testing.T, db *gorm.DB, email string) {
	t.Helper()
	db.Where("email = ?", email).Delete(&model.UserModel{})
}

func TestUserRepository_ReconcileFederated_CreatesAccount(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	email := uniqueEmail()
	t.Cleanup(func() { deleteTestUser(t, db, email) })

	user, err := repo.ReconcileFederated(context.Background(), &entity.User{
		Email:        email,
		AuthProvider: entity.AuthProviderGoogle,
		PasswordHash: "placeholder-hash",
		GoogleID:     "g-" + email,
		GivenName:    "Ana",
		FamilyName:   "García",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, entity.AuthProviderGoogle, user.AuthProvider)
	assert.Equal(t, "g-"+email, user.GoogleID)
	assert.False(t, user.LastSeenAt.IsZero())
}

func TestUserRepository_ReconcileFederated_BackfillsOnlyAbsentSubject(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	email := uniqueEmail()
	t.Cleanup(func() { deleteTestUser(t, db, email) })

	local := &entity.User{
		Email:        email,
		AuthProvider: entity.AuthProviderLocal,
		PasswordHash: "hashed-password",
		GivenName:    "Ana",
		FamilyName:   "García",
	}
	require.NoError(t, repo.Create(context.Background(), local))

	// First federated login against an existing local account: the subject
	// id is written, the customized names and auth provider are not.
	merged, err := repo.ReconcileFederated(context.Background(), &entity.User{
		Email:        email,
		AuthProvider: entity.AuthProviderGoogle,
		PasswordHash: "placeholder-hash",
		GoogleID:     "g-first",
		GivenName:    "Otra",
		FamilyName:   "Persona",
	})
	require.NoError(t, err)
	assert.Equal(t, local.ID, merged.ID)
	assert.Equal(t, entity.AuthProviderLocal, merged.AuthProvider)
	assert.Equal(t, "g-first", merged.GoogleID)
	assert.Equal(t, "Ana", merged.GivenName)
	assert.Equal(t, "García", merged.FamilyName)
	assert.Equal(t, "hashed-password", merged.PasswordHash)

	// A later login with a different subject never overwrites the stored one.
	again, err := repo.ReconcileFederated(context.Background(), &entity.User{
		Email:        email,
		AuthProvider: entity.AuthProviderGoogle,
		PasswordHash: "placeholder-hash",
		GoogleID:     "g-second",
	})
	require.NoError(t, err)
	assert.Equal(t, "g-first", again.GoogleID)
}

func TestUserRepository_ReconcileFederated_ReplacesPlaceholderNames(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	email := uniqueEmail()
	t.Cleanup(func() { deleteTestUser(t, db, email) })

	_, err := repo.ReconcileFederated(context.Background(), &entity.User{
		Email:        email,
		AuthProvider: entity.AuthProviderSpotify,
		PasswordHash: "placeholder-hash",
		SpotifyID:    "s-" + email,
		GivenName:    entity.DefaultGivenName,
		FamilyName:   entity.DefaultFamilyName,
	})
	require.NoError(t, err)

	// A provider that later supplies real names fills the placeholders in.
	updated, err := repo.ReconcileFederated(context.Background(), &entity.User{
		Email:        email,
		AuthProvider: entity.AuthProviderSpotify,
		PasswordHash: "placeholder-hash",
		SpotifyID:    "s-" + email,
		GivenName:    "Ana",
		FamilyName:   "García",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.GivenName)
	assert.Equal(t, "García", updated.FamilyName)
}

func TestUserRepository_ReconcileFederated_RefreshesLastSeen(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	email := uniqueEmail()
	t.Cleanup(func() { deleteTestUser(t, db, email) })

	candidate := &entity.User{
		Email:        email,
		AuthProvider: entity.AuthProviderGoogle,
		PasswordHash: "placeholder-hash",
		GoogleID:     "g-" + email,
	}

	first, err := repo.ReconcileFederated(context.Background(), candidate)
	require.NoError(t, err)

	second, err := repo.ReconcileFederated(context.Background(), candidate)
	require.NoError(t, err)

	assert.False(t, second.LastSeenAt.Before(first.LastSeenAt))
}
