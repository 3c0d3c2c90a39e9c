package repositories

import (
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists")
)

type CompanyRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Company, error)
	FindByEmail(db *gorm.DB, email string) (*models.Company, error)
	Create(db *gorm.DB, company *models.Company) error
	EmailTakenByOther(db *gorm.DB, email string, excludeID uint) (bool, error)
	UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) (int64, error)
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	// Pre-check keeps the error dialect-independent; the unique index is
	// still the last line of defense.
	var existing models.Company
	if err := db.Where("email = ?", company.Email).First(&existing).Error; err == nil {
		return ErrCompanyAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(company).Error
}

func (r *CompanyRepositoryImpl) EmailTakenByOther(db *gorm.DB, email string, excludeID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Company{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *CompanyRepositoryImpl) UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) (int64, error) {
	res := db.Model(&models.Company{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}
