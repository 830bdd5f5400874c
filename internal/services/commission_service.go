package services

import (
	"context"
	"fmt"

	"travelconsole/internal/domain"
	"travelconsole/internal/domain/models"
	"travelconsole/internal/forms"
	"travelconsole/internal/repositories"
	"travelconsole/internal/utils"
)

// CommissionService edits commission rules on a writable source.
type CommissionService struct {
	Source    repositories.Source[models.Commission]
	RequestID string
}

func (s CommissionService) writer() (repositories.Writer[models.Commission], error) {
	w, ok := s.Source.(repositories.Writer[models.Commission])
	if !ok {
		return nil, domain.ConflictError{Resource: "commission rule", Msg: "the configured data source is read-only"}
	}
	return w, nil
}

// Create validates f and appends a rule under the next free id.
func (s CommissionService) Create(ctx context.Context, f forms.CommissionForm) (models.Commission, string, error) {
	w, err := s.writer()
	if err != nil {
		return models.Commission{}, "", err
	}
	if err := forms.Validate(&f); err != nil {
		return models.Commission{}, "", err
	}
	saved, err := w.Create(ctx, func(id string) models.Commission {
		return commissionFromForm(id, f)
	})
	if err != nil {
		return models.Commission{}, "", fmt.Errorf("create commission: %w", err)
	}
	utils.LogFields(s.RequestID, "commission", "create", "id", saved.ID)
	return saved, f.Success(false), nil
}

// Update replaces rule id with the values of f.
func (s CommissionService) Update(ctx context.Context, id string, f forms.CommissionForm) (models.Commission, string, error) {
	w, err := s.writer()
	if err != nil {
		return models.Commission{}, "", err
	}
	if err := forms.Validate(&f); err != nil {
		return models.Commission{}, "", err
	}
	saved, err := w.Update(ctx, id, func(models.Commission) models.Commission {
		return commissionFromForm(id, f)
	})
	if err != nil {
		return models.Commission{}, "", fmt.Errorf("update commission %s: %w", id, err)
	}
	utils.LogFields(s.RequestID, "commission", "update", "id", id)
	return saved, f.Success(true), nil
}

// Toggle flips IsActive on rule id.
func (s CommissionService) Toggle(ctx context.Context, id string) (models.Commission, string, error) {
	w, err := s.writer()
	if err != nil {
		return models.Commission{}, "", err
	}
	saved, err := w.Update(ctx, id, func(c models.Commission) models.Commission {
		c.IsActive = !c.IsActive
		return c
	})
	if err != nil {
		return models.Commission{}, "", fmt.Errorf("toggle commission %s: %w", id, err)
	}
	msg := "Commission rule deactivated successfully"
	if saved.IsActive {
		msg = "Commission rule activated successfully"
	}
	utils.LogFields(s.RequestID, "commission", "toggle", "id", id, "active", saved.IsActive)
	return saved, msg, nil
}

func commissionFromForm(id string, f forms.CommissionForm) models.Commission {
	c := models.Commission{
		ID:              id,
		ServiceType:     domain.ServiceLabel(f.ServiceType),
		CommissionType:  "Fixed",
		CommissionValue: f.CommissionValue,
		StartDate:       f.StartDate,
		IsActive:        f.IsActive,
	}
	if f.CommissionType == "percentage" {
		c.CommissionType = "Percentage"
	}
	if f.EndDate != "" {
		end := f.EndDate
		c.EndDate = &end
	}
	return c
}
