package repositories

import (
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInternshipNotFound = errors.New("internship not found")

type InternshipRepository interface {
	Create(db *gorm.DB, internship *models.Internship) error
	FindByID(db *gorm.DB, id uint) (*models.Internship, error)
	ListByCompany(db *gorm.DB, companyID uint) ([]models.Internship, error)
	ListAllWithCompany(db *gorm.DB) ([]models.InternshipWithCompany, error)
	// UpdateOwned overwrites the mutable fields with an ownership guard in
	// the WHERE clause; the returned row count is the authorization
	// outcome's source of truth.
	UpdateOwned(db *gorm.DB, id, companyID uint, fields map[string]interface{}) (int64, error)
	DeleteOwned(db *gorm.DB, id, companyID uint) (int64, error)
}

type InternshipRepositoryImpl struct{}

func NewInternshipRepository() InternshipRepository {
	return &InternshipRepositoryImpl{}
}

func (r *InternshipRepositoryImpl) Create(db *gorm.DB, internship *models.Internship) error {
	return db.Create(internship).Error
}

func (r *InternshipRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Internship, error) {
	var internship models.Internship
	err := db.First(&internship, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return &internship, nil
}

func (r *InternshipRepositoryImpl) ListByCompany(db *gorm.DB, companyID uint) ([]models.Internship, error) {
	internships := []models.Internship{}
	err := db.Where("company_id = ?", companyID).
		Order("posted_at DESC").
		Find(&internships).Error
	return internships, err
}

func (r *InternshipRepositoryImpl) ListAllWithCompany(db *gorm.DB) ([]models.InternshipWithCompany, error) {
	rows := []models.InternshipWithCompany{}
	err := db.Model(&models.Internship{}).
		Select("internships.*, companies.company_name").
		Joins("JOIN companies ON companies.id = internships.company_id").
		Order("internships.posted_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *InternshipRepositoryImpl) UpdateOwned(db *gorm.DB, id, companyID uint, fields map[string]interface{}) (int64, error) {
	res := db.Model(&models.Internship{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *InternshipRepositoryImpl) DeleteOwned(db *gorm.DB, id, companyID uint) (int64, error) {
	res := db.Where("id = ? AND company_id = ?", id, companyID).
		Delete(&models.Internship{})
	return res.RowsAffected, res.Error
}
