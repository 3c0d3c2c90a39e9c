package services

import (
	"time"

	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InternshipService interface {
	Create(db *gorm.DB, companyID uint, req *dto.SaveInternshipRequest) (*dto.CreateInternshipResponse, error)
	ListByCompany(db *gorm.DB, companyID uint) ([]models.Internship, error)
	ListAll(db *gorm.DB) ([]models.InternshipWithCompany, error)
	GetByID(db *gorm.DB, id uint) (*models.Internship, error)
	Update(db *gorm.DB, id, companyID uint, req *dto.SaveInternshipRequest) error
	Delete(db *gorm.DB, id, companyID uint) error
}

type InternshipServiceImpl struct {
	internshipRepo repositories.InternshipRepository
}

func NewInternshipService(internshipRepo repositories.InternshipRepository) InternshipService {
	return &InternshipServiceImpl{internshipRepo: internshipRepo}
}

func parseDeadline(value string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return datatypes.Date{}, apperrors.NewBadRequestError("Invalid deadline: use YYYY-MM-DD")
	}
	return datatypes.Date(t), nil
}

func (s *InternshipServiceImpl) Create(db *gorm.DB, companyID uint, req *dto.SaveInternshipRequest) (*dto.CreateInternshipResponse, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	internship := &models.Internship{
		CompanyID:      companyID,
		Title:          req.Title,
		Location:       req.Location,
		Type:           req.Type,
		RequiredSkills: req.RequiredSkills,
		Salary:         req.Salary,
		Duration:       req.Duration,
		Deadline:       deadline,
		Description:    req.Description,
	}

	if err := s.internshipRepo.Create(db, internship); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateInternshipResponse{
		Message:      "Internship created successfully!",
		InternshipID: internship.ID,
	}, nil
}

func (s *InternshipServiceImpl) ListByCompany(db *gorm.DB, companyID uint) ([]models.Internship, error) {
	internships, err := s.internshipRepo.ListByCompany(db, companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return internships, nil
}

func (s *InternshipServiceImpl) ListAll(db *gorm.DB) ([]models.InternshipWithCompany, error) {
	internships, err := s.internshipRepo.ListAllWithCompany(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return internships, nil
}

func (s *InternshipServiceImpl) GetByID(db *gorm.DB, id uint) (*models.Internship, error) {
	internship, err := s.internshipRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return internship, nil
}

// Update overwrites all mutable fields. The preceding read only decides
// between 404 and 403; the conditional write is the actual guard, so a row
// that vanishes in between surfaces as 404, never as a cross-tenant write.
func (s *InternshipServiceImpl) Update(db *gorm.DB, id, companyID uint, req *dto.SaveInternshipRequest) error {
	existing, err := s.internshipRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return apperrors.ErrInternshipNotFound
		}
		return apperrors.InternalError(err)
	}
	if existing.CompanyID != companyID {
		return apperrors.ErrNotInternshipOwner
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{
		"title":           req.Title,
		"location":        req.Location,
		"type":            req.Type,
		"required_skills": req.RequiredSkills,
		"salary":          req.Salary,
		"duration":        req.Duration,
		"deadline":        deadline,
		"description":     req.Description,
	}

	rows, err := s.internshipRepo.UpdateOwned(db, id, companyID, fields)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if rows == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}

func (s *InternshipServiceImpl) Delete(db *gorm.DB, id, companyID uint) error {
	existing, err := s.internshipRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return apperrors.ErrInternshipNotFound
		}
		return apperrors.InternalError(err)
	}
	if existing.CompanyID != companyID {
		return apperrors.ErrNotInternshipOwner
	}

	rows, err := s.internshipRepo.DeleteOwned(db, id, companyID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if rows == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}
