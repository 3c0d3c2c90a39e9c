package repositories

import (
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyExists = errors.New("student already exists")
)

type StudentRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Student, error)
	FindByEmail(db *gorm.DB, email string) (*models.Student, error)
	Create(db *gorm.DB, student *models.Student) error
	EmailTakenByOther(db *gorm.DB, email string, excludeID uint) (bool, error)
	UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) (int64, error)
}

type StudentRepositoryImpl struct{}

func NewStudentRepository() StudentRepository {
	return &StudentRepositoryImpl{}
}

func (r *StudentRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Student, error) {
	var student models.Student
	err := db.First(&student, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Student, error) {
	var student models.Student
	err := db.First(&student, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepositoryImpl) Create(db *gorm.DB, student *models.Student) error {
	var existing models.Student
	if err := db.Where("email = ?", student.Email).First(&existing).Error; err == nil {
		return ErrStudentAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(student).Error
}

func (r *StudentRepositoryImpl) EmailTakenByOther(db *gorm.DB, email string, excludeID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Student{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *StudentRepositoryImpl) UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) (int64, error) {
	res := db.Model(&models.Student{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}
