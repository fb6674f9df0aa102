// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
// Callers are expected to pass the email already lowercased.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// List retrieves every user record ordered by registration date.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("fecha_registro ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated values
	user.ID = userM.ID
	user.RegisteredAt = userM.RegisteredAt

	return nil
}

// Update applies the allow-listed profile changes to one user and returns
// the resulting record.
func (repo *userRepository) Update(ctx context.Context, id uuid.UUID, update *repository.UserUpdate) (*entity.User, error) {
	assignments := map[string]any{}
	if update.GivenName != nil {
		assignments["nombre"] = *update.GivenName
	}
	if update.FamilyName != nil {
		assignments["apellidos"] = *update.FamilyName
	}
	if update.Biography != nil {
		assignments["biografia"] = *update.Biography
	}
	if update.AvatarURL != nil {
		assignments["foto_perfil"] = *update.AvatarURL
	}
	if update.Latitude != nil {
		assignments["ubicacion_lat"] = *update.Latitude
	}
	if update.Longitude != nil {
		assignments["ubicacion_lon"] = *update.Longitude
	}
	if update.PasswordHash != nil {
		assignments["password_hash"] = *update.PasswordHash
	}

	if len(assignments) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("id = ?", id).
			Updates(assignments)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrUserNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a user record.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// TouchLastSeen sets the last-seen timestamp to now.
func (repo *userRepository) TouchLastSeen(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("ultima_conexion", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch last seen")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ReconcileFederated resolves a federated login in one conditional upsert
// keyed by email. A fresh account inserts the candidate as-is. An existing
// account keeps its auth provider and password; the provider subject id is
// backfilled only when absent, and the name fields only while they still
// hold the placeholder values. Running the whole reconciliation as a single
// statement closes the race between two concurrent first logins.
func (repo *userRepository) ReconcileFederated(ctx context.Context, candidate *entity.User) (*entity.User, error) {
	userM := fromUserDomain(candidate)
	now := time.Now()
	userM.LastSeenAt = now

	subjectColumn := "google_id"
	if candidate.AuthProvider == entity.AuthProviderSpotify {
		subjectColumn = "spotify_id"
	}

	assignments := map[string]any{
		subjectColumn: gorm.Expr(
			"COALESCE(usuarios."+subjectColumn+", excluded."+subjectColumn+")",
		),
		"nombre": gorm.Expr(
			"CASE WHEN usuarios.nombre IN ('', ?) THEN excluded.nombre ELSE usuarios.nombre END",
			entity.DefaultGivenName,
		),
		"apellidos": gorm.Expr(
			"CASE WHEN usuarios.apellidos IN ('', ?) THEN excluded.apellidos ELSE usuarios.apellidos END",
			entity.DefaultFamilyName,
		),
		"ultima_conexion": now,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(userM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to reconcile federated login")
	}

	// Re-read the authoritative row; on the update path the in-memory model
	// does not reflect the conditional assignments.
	return repo.FindByEmail(ctx, candidate.Email)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                  data.ID,
		Email:               data.Email,
		AuthProvider:        entity.AuthProvider(data.AuthProvider),
		PasswordHash:        data.PasswordHash,
		GoogleID:            fromNullableString(data.GoogleID),
		SpotifyID:           fromNullableString(data.SpotifyID),
		GivenName:           data.GivenName,
		FamilyName:          data.FamilyName,
		Biography:           data.Biography,
		AvatarURL:           data.AvatarURL,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		RegisteredAt:        data.RegisteredAt,
		LastSeenAt:          data.LastSeenAt,
		PasswordResetToken:  data.PasswordResetToken,
		PasswordResetExpiry: data.PasswordResetExpiry,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                  data.ID,
		Email:               data.Email,
		AuthProvider:        string(data.AuthProvider),
		PasswordHash:        data.PasswordHash,
		GoogleID:            toNullableString(data.GoogleID),
		SpotifyID:           toNullableString(data.SpotifyID),
		GivenName:           data.GivenName,
		FamilyName:          data.FamilyName,
		Biography:           data.Biography,
		AvatarURL:           data.AvatarURL,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		RegisteredAt:        data.RegisteredAt,
		LastSeenAt:          data.LastSeenAt,
		PasswordResetToken:  data.PasswordResetToken,
		PasswordResetExpiry: data.PasswordResetExpiry,
	}
}

// toNullableString maps an empty string to NULL so sparse unique indexes
// never collide on the empty value.
func toNullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func fromNullableString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
