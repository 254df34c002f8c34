package services

import (
	"errors"
	"fmt"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

func (s *StudentService) Create(student *models.Student) error {
	return s.DB.Create(student).Error
}

func (s *StudentService) GetByID(id uint) (*models.Student, error) {
	var student models.Student
	if err := s.DB.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to retrieve student: %w", err)
	}
	return &student, nil
}

func (s *StudentService) List(page, limit int) ([]models.Student, int64, error) {
	page, limit = normalizePage(page, limit, 10)

	var total int64
	if err := s.DB.Model(&models.Student{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	var students []models.Student
	if err := s.DB.
		Order("full_name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&students).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve students: %w", err)
	}
	return students, total, nil
}
