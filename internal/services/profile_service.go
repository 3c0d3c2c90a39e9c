package services

import (
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetStudent(db *gorm.DB, id uint) (*models.Student, error)
	UpdateStudent(db *gorm.DB, id uint, req *dto.UpdateStudentProfileRequest) error
	GetCompany(db *gorm.DB, id uint) (*models.Company, error)
	UpdateCompany(db *gorm.DB, id uint, req *dto.UpdateCompanyProfileRequest) error
}

type ProfileServiceImpl struct {
	companyRepo repositories.CompanyRepository
	studentRepo repositories.StudentRepository
}

func NewProfileService(
	companyRepo repositories.CompanyRepository,
	studentRepo repositories.StudentRepository,
) ProfileService {
	return &ProfileServiceImpl{
		companyRepo: companyRepo,
		studentRepo: studentRepo,
	}
}

func (s *ProfileServiceImpl) GetStudent(db *gorm.DB, id uint) (*models.Student, error) {
	student, err := s.studentRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return student, nil
}

func (s *ProfileServiceImpl) UpdateStudent(db *gorm.DB, id uint, req *dto.UpdateStudentProfileRequest) error {
	fields := req.Fields()
	if len(fields) == 0 {
		return apperrors.ErrNoUpdateFields
	}

	if req.Email != nil {
		taken, err := s.studentRepo.EmailTakenByOther(db, *req.Email, id)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if taken {
			return apperrors.ErrEmailTaken
		}
	}

	// Existence is confirmed before the write so a zero row count from an
	// unchanged update is not mistaken for a missing profile.
	if _, err := s.studentRepo.FindByID(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.studentRepo.UpdateFields(db, id, fields); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) GetCompany(db *gorm.DB, id uint) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *ProfileServiceImpl) UpdateCompany(db *gorm.DB, id uint, req *dto.UpdateCompanyProfileRequest) error {
	fields := req.Fields()
	if len(fields) == 0 {
		return apperrors.ErrNoUpdateFields
	}

	if req.Email != nil {
		taken, err := s.companyRepo.EmailTakenByOther(db, *req.Email, id)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if taken {
			return apperrors.ErrEmailTaken
		}
	}

	if _, err := s.companyRepo.FindByID(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.companyRepo.UpdateFields(db, id, fields); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
