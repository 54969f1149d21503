package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/domain"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/user"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *UserGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Preload("ProfileImage").First(&u, id).Error; err != nil {
		return nil, translate("get user", err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Preload("ProfileImage").
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, translate("get user by username", err)
	}
	return &u, nil
}

func (r *UserGormRepository) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, translate("check username", err)
	}
	return n > 0, nil
}

func (r *UserGormRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := r.db.WithContext(ctx).Preload("ProfileImage").Order("id").Find(&out).Error
	return out, translate("list users", err)
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return translate("create user", r.db.WithContext(ctx).Omit("ProfileImage").Create(u).Error)
}

func (r *UserGormRepository) Save(ctx context.Context, u *models.User) error {
	return translate("save user", r.db.WithContext(ctx).Omit("ProfileImage").Save(u).Error)
}

func (r *UserGormRepository) UpdateRole(ctx context.Context, id uint, role string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return translate("update role", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserGormRepository) ReplaceProfileImage(
	ctx context.Context,
	userID uint,
	img *models.Image,
) (*models.Image, error) {

	var previous *models.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old models.Image
		err := tx.Where("user_id = ?", userID).First(&old).Error
		switch {
		case err == nil:
			if err := tx.Delete(&old).Error; err != nil {
				return err
			}
			previous = &old
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		img.UserID = &userID
		return tx.Create(img).Error
	})
	if err != nil {
		return nil, translate("replace profile image", err)
	}
	return previous, nil
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (r *UserGormRepository) Counts(ctx context.Context) (user.Stats, error) {
	var s user.Stats
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Count(&s.TotalUsers).Error; err != nil {
		return s, translate("count users", err)
	}
	if err := db.Model(&models.Business{}).Count(&s.TotalBusinesses).Error; err != nil {
		return s, translate("count businesses", err)
	}
	if err := db.Model(&models.Appointment{}).Count(&s.TotalAppointments).Error; err != nil {
		return s, translate("count appointments", err)
	}
	return s, nil
}

var _ user.Repository = (*UserGormRepository)(nil)
