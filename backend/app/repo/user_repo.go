package repo

import (
	"news-app/backend/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
}

func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	count, err := r.CountByUsername(username)
	return count > 0, err
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Create inserts the user together with its role links.
func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.Preload("Roles").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Preload("Roles").Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Preload("Roles").Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Roles").Order("id ASC").Find(&users).Error
	return users, err
}

// Save updates the user's columns and replaces its role set.
func (r *UserRepository) Save(u *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		roles := u.Roles
		if err := tx.Omit("Roles").Save(u).Error; err != nil {
			return err
		}
		if err := tx.Model(u).Association("Roles").Replace(roles); err != nil {
			return err
		}
		u.Roles = roles
		return nil
	})
}

// Delete removes the user, its role links and every article it authored.
func (r *UserRepository) Delete(id uint) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&models.News{}).Error; err != nil {
			return err
		}
		u := models.User{ID: id}
		if err := tx.Model(&u).Association("Roles").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
