package repo

import (
	"time"

	"news-app/backend/app/models"

	"gorm.io/gorm"
)

type NewsRepository struct{ db *gorm.DB }

func NewNewsRepository(db *gorm.DB) *NewsRepository { return &NewsRepository{db: db} }

func (r *NewsRepository) Create(n *models.News) error {
	return r.db.Omit("Author").Create(n).Error
}

func (r *NewsRepository) FindByID(id uint) (*models.News, error) {
	var n models.News
	if err := r.db.Preload("Author").First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// ListActive lists every article that has not been soft deleted.
func (r *NewsRepository) ListActive() ([]models.News, error) {
	var out []models.News
	err := r.db.Preload("Author").
		Where("deleted = ?", false).
		Order("publish_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *NewsRepository) ListActiveByStatus(status models.NewsStatus) ([]models.News, error) {
	var out []models.News
	err := r.db.Preload("Author").
		Where("status = ? AND deleted = ?", status, false).
		Order("publish_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

// FindExpired returns live articles whose publish date lies before today.
func (r *NewsRepository) FindExpired(today time.Time) ([]models.News, error) {
	var out []models.News
	err := r.db.Where("publish_date < ? AND deleted = ?", models.DateOnly(today), false).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *NewsRepository) MarkDeleted(id uint) error {
	return r.db.Model(&models.News{}).
		Where("id = ?", id).
		Update("deleted", true).Error
}

func (r *NewsRepository) UpdateStatus(id uint, status models.NewsStatus) error {
	return r.db.Model(&models.News{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes the row for good; admins and writers use it, the expiry
// sweep does not.
func (r *NewsRepository) Delete(id uint) error {
	return r.db.Delete(&models.News{}, id).Error
}
