package repositories

import (
	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := orm.Gorm().First(&user, id).Error
	return user, err
}

func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := orm.Gorm().Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := orm.Gorm().Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Create(user *models.User) error {
	return orm.Gorm().Create(user).Error
}
