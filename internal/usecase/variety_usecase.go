package usecase

import (
	"context"
	"strings"

	"github.com/iho/fishtrade/internal/domain"
)

// VarietyUseCase maintains the fish variety registry.
type VarietyUseCase struct {
	varieties VarietyRepository
}

// NewVarietyUseCase creates a new VarietyUseCase.
func NewVarietyUseCase(varieties VarietyRepository) *VarietyUseCase {
	return &VarietyUseCase{varieties: varieties}
}

// AddVariety registers a variety code. Codes are stored uppercased so item
// lines match the registry regardless of how they were typed.
func (uc *VarietyUseCase) AddVariety(ctx context.Context, code, name string) (domain.FishVariety, error) {
	variety := domain.FishVariety{
		Code: strings.ToUpper(strings.TrimSpace(code)),
		Name: strings.TrimSpace(name),
	}

	if err := variety.Validate(); err != nil {
		return domain.FishVariety{}, err
	}

	if err := uc.varieties.Create(ctx, variety); err != nil {
		return domain.FishVariety{}, err
	}

	return variety, nil
}

// ListVarieties returns the registry ordered by name.
func (uc *VarietyUseCase) ListVarieties(ctx context.Context) ([]domain.FishVariety, error) {
	return uc.varieties.List(ctx)
}
