package usecase

import (
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
)

func TestValidateAdjustment(t *testing.T) {
	if err := ValidateAdjustment(10, "walked the dog"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateAdjustment(0, "nothing"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation for zero delta, got %v", err)
	}
	if err := ValidateAdjustment(5, strings.Repeat("x", maxReasonLen+1)); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation for long reason, got %v", err)
	}
}

func TestValidateRewardPatch(t *testing.T) {
	price := int64(10)
	if err := ValidateRewardPatch(model.RewardPatch{Price: &price}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateRewardPatch(model.RewardPatch{}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty patch, got %v", err)
	}
	blank := "  "
	if err := ValidateRewardPatch(model.RewardPatch{Name: &blank}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank name, got %v", err)
	}
	negative := int64(-1)
	if err := ValidateRewardPatch(model.RewardPatch{Stock: &negative}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation for negative stock, got %v", err)
	}
}
