package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/usecase"
	"github.com/iho/fishtrade/internal/usecase/mocks"
)

func TestVarietyUseCase_AddVariety(t *testing.T) {
	t.Run("uppercases the code", func(t *testing.T) {
		uc := usecase.NewVarietyUseCase(mocks.NewMockVarietyRepository())

		variety, err := uc.AddVariety(context.Background(), " rohu ", " Rohu ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if variety.Code != "ROHU" || variety.Name != "Rohu" {
			t.Errorf("expected ROHU/Rohu, got %s/%s", variety.Code, variety.Name)
		}
	})

	t.Run("rejects a blank code or name", func(t *testing.T) {
		uc := usecase.NewVarietyUseCase(mocks.NewMockVarietyRepository())

		if _, err := uc.AddVariety(context.Background(), "  ", "Rohu"); !errors.Is(err, domain.ErrInvalidVariety) {
			t.Errorf("expected ErrInvalidVariety, got %v", err)
		}
		if _, err := uc.AddVariety(context.Background(), "ROHU", ""); !errors.Is(err, domain.ErrInvalidVariety) {
			t.Errorf("expected ErrInvalidVariety, got %v", err)
		}
	})

	t.Run("rejects a duplicate code regardless of case", func(t *testing.T) {
		uc := usecase.NewVarietyUseCase(mocks.NewMockVarietyRepository())

		if _, err := uc.AddVariety(context.Background(), "ROHU", "Rohu"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.AddVariety(context.Background(), "rohu", "Rohu"); !errors.Is(err, domain.ErrDuplicateVariety) {
			t.Errorf("expected ErrDuplicateVariety, got %v", err)
		}
	})
}

func TestVarietyUseCase_ListVarieties(t *testing.T) {
	uc := usecase.NewVarietyUseCase(mocks.NewMockVarietyRepository())

	for _, v := range []struct{ code, name string }{
		{"ROHU", "Rohu"},
		{"KATLA", "Katla"},
	} {
		if _, err := uc.AddVariety(context.Background(), v.code, v.name); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	varieties, err := uc.ListVarieties(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(varieties) != 2 {
		t.Fatalf("expected 2 varieties, got %d", len(varieties))
	}
}
