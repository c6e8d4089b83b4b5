package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lovematch/backend/internal/domain"
	"github.com/lovematch/backend/internal/repository"

	"github.com/google/uuid"
)

const historyLimit = 10

type calculationService struct {
	calculationRepository repository.Calculations
	accountRepository     repository.Accounts
}

func newCalculationService(calculationRepository repository.Calculations,
	accountRepository repository.Accounts,
) *calculationService {
	return &calculationService{
		calculationRepository: calculationRepository,
		accountRepository:     accountRepository,
	}
}

// Save scores the submission server-side and persists it for the owning pin.
// Any client-supplied percentage is ignored.
func (s *calculationService) Save(ctx context.Context, input CalculationInput) (*domain.Calculation, error) {
	if _, err := s.accountRepository.GetByPin(ctx, input.Pin); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrWrongPin
		}
		return nil, fmt.Errorf("get account by pin failed: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate calculation id failed: %w", err)
	}

	calculation := &domain.Calculation{
		ID:                 id,
		Pin:                input.Pin,
		YourName:           input.YourName,
		YourAge:            input.YourAge,
		YourEducation:      input.YourEducation,
		CrushName:          input.CrushName,
		CrushAge:           input.CrushAge,
		CrushEducation:     input.CrushEducation,
		RelationshipMonths: input.RelationshipMonths,
		RelationshipDays:   input.RelationshipDays,
		LovePercentage: CompatibilityScore(ScoreInput{
			YourName:           input.YourName,
			CrushName:          input.CrushName,
			YourAge:            input.YourAge,
			CrushAge:           input.CrushAge,
			YourEducation:      input.YourEducation,
			CrushEducation:     input.CrushEducation,
			RelationshipMonths: input.RelationshipMonths,
			RelationshipDays:   input.RelationshipDays,
		}),
		CalculatedAt: time.Now(),
	}

	if err := s.calculationRepository.Create(ctx, calculation); err != nil {
		return nil, fmt.Errorf("create calculation failed: %w", err)
	}

	return calculation, nil
}

func (s *calculationService) History(ctx context.Context, pin string) ([]domain.Calculation, error) {
	calculations, err := s.calculationRepository.ListByPin(ctx, pin, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("list calculations failed: %w", err)
	}

	return calculations, nil
}

func (s *calculationService) Delete(ctx context.Context, pin string, id uuid.UUID) error {
	if err := s.calculationRepository.DeleteByIDAndPin(ctx, id, pin); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrCalculationNotFound
		}
		return fmt.Errorf("delete calculation failed: %w", err)
	}

	return nil
}
