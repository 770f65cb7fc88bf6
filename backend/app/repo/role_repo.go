package repo

import (
	"news-app/backend/app/models"

	"gorm.io/gorm"
)

type RoleRepository struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) *RoleRepository { return &RoleRepository{db: db} }

func (r *RoleRepository) FindByName(name models.RoleName) (*models.Role, error) {
	var role models.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByNames loads the roles with the given names; names without a row are
// simply absent from the result.
func (r *RoleRepository) FindByNames(names []models.RoleName) ([]models.Role, error) {
	var roles []models.Role
	if len(names) == 0 {
		return roles, nil
	}
	err := r.db.Where("name IN ?", names).Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *RoleRepository) List() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("id ASC").Find(&roles).Error
	return roles, err
}
