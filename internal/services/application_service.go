package services

import (
	"fmt"

	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
	"internhub_backend/internal/notify"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, studentID uint, req *dto.ApplyRequest) (*dto.ApplyResponse, error)
	ListForInternship(db *gorm.DB, internshipID, companyID uint) ([]models.ApplicationWithStudent, error)
	ListForStudent(db *gorm.DB, studentID uint) ([]models.ApplicationWithInternship, error)
	ListForCompany(db *gorm.DB, companyID uint) ([]models.CompanyApplicationRow, error)
	UpdateStatus(db *gorm.DB, applicationID uint, status string, companyID uint) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	internshipRepo  repositories.InternshipRepository
	studentRepo     repositories.StudentRepository
	companyRepo     repositories.CompanyRepository
	mailer          notify.Sender
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	internshipRepo repositories.InternshipRepository,
	studentRepo repositories.StudentRepository,
	companyRepo repositories.CompanyRepository,
	mailer notify.Sender,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		studentRepo:     studentRepo,
		companyRepo:     companyRepo,
		mailer:          mailer,
	}
}

func (s *ApplicationServiceImpl) Apply(db *gorm.DB, studentID uint, req *dto.ApplyRequest) (*dto.ApplyResponse, error) {
	internship, err := s.internshipRepo.FindByID(db, req.InternshipID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	student, err := s.studentRepo.FindByID(db, studentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.applicationRepo.ExistsForPair(db, studentID, req.InternshipID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		StudentID:    studentID,
		InternshipID: req.InternshipID,
		ResumePath:   req.ResumePath,
		CoverLetter:  req.CoverLetter,
		Status:       models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyCompany(db, internship, student)

	return &dto.ApplyResponse{
		Message:       "Application submitted successfully!",
		ApplicationID: application.ID,
	}, nil
}

func (s *ApplicationServiceImpl) ListForInternship(db *gorm.DB, internshipID, companyID uint) ([]models.ApplicationWithStudent, error) {
	internship, err := s.internshipRepo.FindByID(db, internshipID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if internship.CompanyID != companyID {
		return nil, apperrors.ErrNotInternshipOwner
	}

	rows, err := s.applicationRepo.ListByInternship(db, internshipID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rows, nil
}

func (s *ApplicationServiceImpl) ListForStudent(db *gorm.DB, studentID uint) ([]models.ApplicationWithInternship, error) {
	if _, err := s.studentRepo.FindByID(db, studentID); err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	rows, err := s.applicationRepo.ListByStudent(db, studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rows, nil
}

// ListForCompany returns every application across the company's
// internships in a single joined query, replacing the per-internship
// fetch loop the clients used to run.
func (s *ApplicationServiceImpl) ListForCompany(db *gorm.DB, companyID uint) ([]models.CompanyApplicationRow, error) {
	rows, err := s.applicationRepo.ListByCompany(db, companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rows, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, applicationID uint, status string, companyID uint) error {
	if !models.ValidApplicationStatus(status) {
		return apperrors.ErrInvalidApplicationStatus
	}

	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}

	internship, err := s.internshipRepo.FindByID(db, application.InternshipID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			// Internship vanished under the application; treat as gone.
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	if internship.CompanyID != companyID {
		return apperrors.ErrNotInternshipOwner
	}

	rows, err := s.applicationRepo.UpdateStatusOwned(db, applicationID, models.ApplicationStatus(status), companyID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if rows == 0 {
		return apperrors.ErrApplicationNotFound
	}

	s.notifyStudent(db, application.StudentID, internship, status)

	return nil
}

// Mail is best effort: fired async, failures only logged.

func (s *ApplicationServiceImpl) notifyCompany(db *gorm.DB, internship *models.Internship, student *models.Student) {
	company, err := s.companyRepo.FindByID(db, internship.CompanyID)
	if err != nil {
		logger.Warn("skipping application mail, owner lookup failed", "error", err.Error())
		return
	}

	subject := fmt.Sprintf("New application for %q", internship.Title)
	body := fmt.Sprintf("<p>%s has applied to your internship <b>%s</b>.</p>",
		student.FullName(), internship.Title)

	go func() {
		if err := s.mailer.Send(company.Email, subject, body); err != nil {
			logger.Warn("failed to send application mail", "error", err.Error())
		}
	}()
}

func (s *ApplicationServiceImpl) notifyStudent(db *gorm.DB, studentID uint, internship *models.Internship, status string) {
	student, err := s.studentRepo.FindByID(db, studentID)
	if err != nil {
		logger.Warn("skipping status mail, student lookup failed", "error", err.Error())
		return
	}

	subject := fmt.Sprintf("Your application for %q was updated", internship.Title)
	body := fmt.Sprintf("<p>The status of your application for <b>%s</b> is now: <b>%s</b>.</p>",
		internship.Title, status)

	go func() {
		if err := s.mailer.Send(student.Email, subject, body); err != nil {
			logger.Warn("failed to send status mail", "error", err.Error())
		}
	}()
}
