package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/domain/business"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type BusinessGormRepository struct {
	db *gorm.DB
}

func NewBusinessGormRepository(db *gorm.DB) *BusinessGormRepository {
	return &BusinessGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BusinessGormRepository) GetBusiness(ctx context.Context, id uint) (*models.Business, error) {
	var b models.Business
	if err := withBusinessRelations(r.db.WithContext(ctx)).First(&b, id).Error; err != nil {
		return nil, translate("get business", err)
	}
	return &b, nil
}

func (r *BusinessGormRepository) ListBusinesses(ctx context.Context) ([]models.Business, error) {
	var out []models.Business
	err := withBusinessRelations(r.db.WithContext(ctx)).Order("id").Find(&out).Error
	return out, translate("list businesses", err)
}

func (r *BusinessGormRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Business, error) {
	var out []models.Business
	err := withBusinessRelations(r.db.WithContext(ctx)).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&out).Error
	return out, translate("list owner businesses", err)
}

func withBusinessRelations(q *gorm.DB) *gorm.DB {
	return q.Preload("Image").
		Preload("Employees", func(db *gorm.DB) *gorm.DB { return db.Select("id", "business_id").Order("id") }).
		Preload("ServiceTypes", func(db *gorm.DB) *gorm.DB { return db.Select("id", "business_id").Order("id") })
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *BusinessGormRepository) Search(
	ctx context.Context,
	query string,
	offset, limit int,
) ([]models.Business, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Business{})
	if query != "" {
		pattern := "%" + likeEscaper.Replace(query) + "%"
		q = q.Where(
			`name LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR city LIKE ? ESCAPE '\' OR address LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern,
		)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("count businesses", err)
	}

	var out []models.Business
	if err := withBusinessRelations(q).Offset(offset).Limit(limit).Find(&out).Error; err != nil {
		return nil, 0, translate("search businesses", err)
	}
	return out, total, nil
}

func (r *BusinessGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate("get user", err)
	}
	return &u, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *BusinessGormRepository) CreateWithImage(
	ctx context.Context,
	b *models.Business,
	img *models.Image,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Image", "Employees", "ServiceTypes", "Owner").Create(b).Error; err != nil {
			return err
		}
		if img == nil {
			return nil
		}
		img.BusinessID = &b.ID
		if err := tx.Create(img).Error; err != nil {
			return err
		}
		b.Image = img
		return nil
	})
	return translate("create business", err)
}

func (r *BusinessGormRepository) UpdateWithImage(
	ctx context.Context,
	b *models.Business,
	img *models.Image,
) (*models.Image, error) {

	var previous *models.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Image", "Employees", "ServiceTypes", "Owner").Save(b).Error; err != nil {
			return err
		}
		if img == nil {
			return nil
		}

		var old models.Image
		err := tx.Where("business_id = ?", b.ID).First(&old).Error
		switch {
		case err == nil:
			if err := tx.Delete(&old).Error; err != nil {
				return err
			}
			previous = &old
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		img.BusinessID = &b.ID
		if err := tx.Create(img).Error; err != nil {
			return err
		}
		b.Image = img
		return nil
	})
	if err != nil {
		return nil, translate("update business", err)
	}
	return previous, nil
}

var _ business.Repository = (*BusinessGormRepository)(nil)
