package repositories

import (
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id uint) (*models.Application, error)
	ExistsForPair(db *gorm.DB, studentID, internshipID uint) (bool, error)
	ListByInternship(db *gorm.DB, internshipID uint) ([]models.ApplicationWithStudent, error)
	ListByStudent(db *gorm.DB, studentID uint) ([]models.ApplicationWithInternship, error)
	ListByCompany(db *gorm.DB, companyID uint) ([]models.CompanyApplicationRow, error)
	// UpdateStatusOwned guards the write with the application -> internship
	// -> company ownership chain inside the statement itself.
	UpdateStatusOwned(db *gorm.DB, id uint, status models.ApplicationStatus, companyID uint) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Application, error) {
	var application models.Application
	err := db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ExistsForPair(db *gorm.DB, studentID, internshipID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("student_id = ? AND internship_id = ?", studentID, internshipID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) ListByInternship(db *gorm.DB, internshipID uint) ([]models.ApplicationWithStudent, error) {
	rows := []models.ApplicationWithStudent{}
	err := db.Model(&models.Application{}).
		Select("applications.*, students.first_name, students.last_name, students.email, students.major, students.university, students.gpa").
		Joins("JOIN students ON students.id = applications.student_id").
		Where("applications.internship_id = ?", internshipID).
		Order("applications.applied_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ApplicationRepositoryImpl) ListByStudent(db *gorm.DB, studentID uint) ([]models.ApplicationWithInternship, error) {
	rows := []models.ApplicationWithInternship{}
	err := db.Model(&models.Application{}).
		Select("applications.*, internships.title AS internship_title, internships.location AS internship_location, internships.type AS internship_type, companies.company_name").
		Joins("JOIN internships ON internships.id = applications.internship_id").
		Joins("JOIN companies ON companies.id = internships.company_id").
		Where("applications.student_id = ?", studentID).
		Order("applications.applied_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ApplicationRepositoryImpl) ListByCompany(db *gorm.DB, companyID uint) ([]models.CompanyApplicationRow, error) {
	rows := []models.CompanyApplicationRow{}
	err := db.Model(&models.Application{}).
		Select("applications.*, students.first_name, students.last_name, students.email, students.major, students.university, students.gpa, internships.title AS internship_title").
		Joins("JOIN internships ON internships.id = applications.internship_id").
		Joins("JOIN students ON students.id = applications.student_id").
		Where("internships.company_id = ?", companyID).
		Order("applications.applied_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ApplicationRepositoryImpl) UpdateStatusOwned(db *gorm.DB, id uint, status models.ApplicationStatus, companyID uint) (int64, error) {
	owned := db.Model(&models.Internship{}).
		Select("id").
		Where("company_id = ?", companyID)

	res := db.Model(&models.Application{}).
		Where("id = ? AND internship_id IN (?)", id, owned).
		Update("status", status)
	return res.RowsAffected, res.Error
}
