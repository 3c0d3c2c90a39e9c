package services

import (
	"internhub_backend/internal/auth"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AccountService handles signup and login for both account kinds. Email
// uniqueness is per kind: a company and a student may share an address.
type AccountService interface {
	SignupCompany(db *gorm.DB, req *dto.CompanySignupRequest) (*dto.CompanyAuthResponse, error)
	LoginCompany(db *gorm.DB, req *dto.LoginRequest) (*dto.CompanyAuthResponse, error)
	SignupStudent(db *gorm.DB, req *dto.StudentSignupRequest) (*dto.StudentAuthResponse, error)
	LoginStudent(db *gorm.DB, req *dto.LoginRequest) (*dto.StudentAuthResponse, error)
}

type AccountServiceImpl struct {
	companyRepo repositories.CompanyRepository
	studentRepo repositories.StudentRepository
}

func NewAccountService(
	companyRepo repositories.CompanyRepository,
	studentRepo repositories.StudentRepository,
) AccountService {
	return &AccountServiceImpl{
		companyRepo: companyRepo,
		studentRepo: studentRepo,
	}
}

func (s *AccountServiceImpl) SignupCompany(db *gorm.DB, req *dto.CompanySignupRequest) (*dto.CompanyAuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	company := &models.Company{
		CompanyName:  req.CompanyName,
		Email:        req.Email,
		PasswordHash: hash,
		Location:     req.Location,
		Industry:     req.Industry,
		Website:      req.Website,
		Description:  req.Description,
	}

	if err := s.companyRepo.Create(db, company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.CompanyAuthResponse{
		Message:   "Company registered successfully!",
		CompanyID: company.ID,
	}, nil
}

func (s *AccountServiceImpl) LoginCompany(db *gorm.DB, req *dto.LoginRequest) (*dto.CompanyAuthResponse, error) {
	company, err := s.companyRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			// Same response as a wrong password; must not reveal whether
			// the account exists.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, company.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(company.ID, string(models.AccountKindCompany), company.CompanyName)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CompanyAuthResponse{
		Message:     "Company logged in successfully!",
		CompanyID:   company.ID,
		CompanyName: company.CompanyName,
		Token:       token,
	}, nil
}

func (s *AccountServiceImpl) SignupStudent(db *gorm.DB, req *dto.StudentSignupRequest) (*dto.StudentAuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	student := &models.Student{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Major:        req.Major,
		University:   req.University,
		GPA:          req.GPA,
		ResumePath:   req.ResumePath,
	}

	if err := s.studentRepo.Create(db, student); err != nil {
		if apperrors.Is(err, repositories.ErrStudentAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.StudentAuthResponse{
		Message:   "Student registered successfully!",
		StudentID: student.ID,
	}, nil
}

func (s *AccountServiceImpl) LoginStudent(db *gorm.DB, req *dto.LoginRequest) (*dto.StudentAuthResponse, error) {
	student, err := s.studentRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, student.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(student.ID, string(models.AccountKindStudent), student.FullName())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StudentAuthResponse{
		Message:     "Student logged in successfully!",
		StudentID:   student.ID,
		StudentName: student.FullName(),
		Token:       token,
	}, nil
}
