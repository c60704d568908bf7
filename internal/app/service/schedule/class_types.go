package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/logctx"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
)

type ClassTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Service) ListClassTypes(ctx context.Context) ([]*models.ClassType, error) {
	var classTypes []*models.ClassType
	if err := s.db.WithContext(ctx).Order("name").Find(&classTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to list class types: %w", err)
	}
	return classTypes, nil
}

func (s *Service) CreateClassType(ctx context.Context, req *ClassTypeRequest) (*models.ClassType, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	var existing models.ClassType
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("a class type with this name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check class type name: %w", err)
	}

	classType := &models.ClassType{
		ID:          tool.GenerateUUIDV7(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.db.WithContext(ctx).Create(classType).Error; err != nil {
		return nil, fmt.Errorf("failed to create class type: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("class type created", "class_type_id", classType.ID, "name", name)
	return classType, nil
}

func (s *Service) UpdateClassType(ctx context.Context, id string, req *ClassTypeRequest) (*models.ClassType, error) {
	var classType models.ClassType
	if err := s.db.WithContext(ctx).First(&classType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("class type")
		}
		return nil, fmt.Errorf("failed to load class type: %w", err)
	}

	if req.Name != "" {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return nil, apperr.Validation("name cannot be empty")
		}
		var existing models.ClassType
		err := s.db.WithContext(ctx).Where("name = ? AND id <> ?", name, id).First(&existing).Error
		if err == nil {
			return nil, apperr.Conflict("a class type with this name already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check class type name: %w", err)
		}
		classType.Name = name
	}
	if req.Description != "" {
		classType.Description = strings.TrimSpace(req.Description)
	}

	if err := s.db.WithContext(ctx).Save(&classType).Error; err != nil {
		return nil, fmt.Errorf("failed to update class type: %w", err)
	}
	return &classType, nil
}

// DeleteClassType removes a class type no active session references.
func (s *Service) DeleteClassType(ctx context.Context, id string) error {
	var classType models.ClassType
	if err := s.db.WithContext(ctx).First(&classType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("class type")
		}
		return fmt.Errorf("failed to load class type: %w", err)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Session{}).
		Where("class_type_id = ? AND is_active = ?", id, true).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count sessions: %w", err)
	}
	if count > 0 {
		return apperr.Validation("cannot delete class type: %d active session(s) are using it", count)
	}

	if err := s.db.WithContext(ctx).Delete(&classType).Error; err != nil {
		return fmt.Errorf("failed to delete class type: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("class type deleted", "class_type_id", id)
	return nil
}
