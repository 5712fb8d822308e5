package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
)

const (
	maxReasonLen      = 100
	maxNameLen        = 100
	maxDescriptionLen = 200
)

// ValidateAdjustment checks a manual point adjustment before it reaches the
// ledger. Zero deltas and empty reasons are rejected.
func ValidateAdjustment(delta int64, reason string) error {
	if delta == 0 {
		return fmt.Errorf("%w: delta must not be zero", domainErrors.ErrValidation)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: reason must not be empty", domainErrors.ErrValidation)
	}
	if len(reason) > maxReasonLen {
		return fmt.Errorf("%w: reason exceeds %d characters", domainErrors.ErrValidation, maxReasonLen)
	}
	return nil
}

// ValidateReward checks reward attributes shared by create and update.
func ValidateReward(name string, price, stock int64, description string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", domainErrors.ErrValidation)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", domainErrors.ErrValidation, maxNameLen)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be positive", domainErrors.ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domainErrors.ErrValidation)
	}
	if len(description) > maxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", domainErrors.ErrValidation, maxDescriptionLen)
	}
	return nil
}

// ValidateRewardPatch checks only the fields the patch provides.
func ValidateRewardPatch(patch model.RewardPatch) error {
	if patch.Empty() {
		return fmt.Errorf("%w: no fields to update", domainErrors.ErrValidation)
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return fmt.Errorf("%w: name must not be empty", domainErrors.ErrValidation)
		}
		if len(*patch.Name) > maxNameLen {
			return fmt.Errorf("%w: name exceeds %d characters", domainErrors.ErrValidation, maxNameLen)
		}
	}
	if patch.Price != nil && *patch.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", domainErrors.ErrValidation)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domainErrors.ErrValidation)
	}
	if patch.Description != nil && len(*patch.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", domainErrors.ErrValidation, maxDescriptionLen)
	}
	return nil
}

// ValidateNames checks the couple display names supplied at registration.
func ValidateNames(name1, name2 string) error {
	if strings.TrimSpace(name1) == "" || strings.TrimSpace(name2) == "" {
		return fmt.Errorf("%w: both display names are required", domainErrors.ErrValidation)
	}
	return nil
}
