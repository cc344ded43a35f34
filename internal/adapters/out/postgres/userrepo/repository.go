package userrepo

import (
	"context"
	"errors"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserResolver.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindUserIDByEmail matches the email case-insensitively.
func (r *GormUserRepository) FindUserIDByEmail(ctx context.Context, email string) (kernel.UUID, bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return kernel.UUID{}, false, nil
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).Select("id").First(&dto, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.UUID{}, false, nil
	}
	if err != nil {
		return kernel.UUID{}, false, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return kernel.UUID{}, false, err
	}
	return id, true, nil
}

func (r *GormUserRepository) FindEmailByUserID(ctx context.Context, id kernel.UUID) (string, bool, error) {
	if id.IsZero() {
		return "", false, nil
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).Select("email").First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return dto.Email, true, nil
}

// Save inserts or replaces a directory entry. The order service never calls
// it on a request path; it exists for seeding and tests.
func (r *GormUserRepository) Save(ctx context.Context, id kernel.UUID, email, name string, role kernel.Role) error {
	if err := id.Validate(); err != nil {
		return err
	}
	email = normalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	dto := UserDTO{ID: id.Bytes(), Email: email, Name: strings.TrimSpace(name), Role: string(role)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
