package service

import (
	"context"
	"strconv"

	"github.com/Behyna/university-finance/internal/config"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/metrics"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/Behyna/university-finance/pkg/lock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	budgetOpCommit  = "commit"
	budgetOpRelease = "release"
	budgetOpSpend   = "spend"
)

type BudgetService interface {
	Create(ctx context.Context, cmd CreateBudgetCommand) (model.Budget, error)
	Get(ctx context.Context, id int64) (model.Budget, error)
	List(ctx context.Context, query ListBudgetsQuery) ([]model.Budget, error)
	Update(ctx context.Context, cmd UpdateBudgetCommand) (model.Budget, error)
	Delete(ctx context.Context, id int64) error
	CanSpend(ctx context.Context, id int64, amount decimal.Decimal) (bool, error)
	Commit(ctx context.Context, cmd BudgetAmountCommand) (BudgetOperationResult, error)
	ReleaseCommitment(ctx context.Context, cmd BudgetAmountCommand) (BudgetOperationResult, error)
	Spend(ctx context.Context, cmd BudgetAmountCommand) (BudgetOperationResult, error)
}

type budgetService struct {
	txManager  repository.TxManager
	budgetRepo repository.BudgetRepository
	locker     lock.Locker
	policy     model.SpendPolicy
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewBudgetService(txManager repository.TxManager, budgetRepo repository.BudgetRepository, locker lock.Locker,
	cfg *config.Config, logger *zap.Logger, metrics *metrics.Metrics) BudgetService {
	policy := model.SpendLenient
	if cfg.Finance.StrictSpend {
		policy = model.SpendStrict
	}

	return &budgetService{
		txManager:  txManager,
		budgetRepo: budgetRepo,
		locker:     locker,
		policy:     policy,
		logger:     logger,
		metrics:    metrics,
	}
}

func (s *budgetService) Create(ctx context.Context, cmd CreateBudgetCommand) (model.Budget, error) {
	budget := model.Budget{
		Department:      cmd.Department,
		BudgetType:      cmd.BudgetType,
		Year:            cmd.Year,
		AllocatedAmount: cmd.AllocatedAmount,
		Description:     cmd.Description,
		IsActive:        true,
	}
	if budget.BudgetType == "" {
		budget.BudgetType = model.BudgetTypeOperational
	}
	if cmd.IsActive != nil {
		budget.IsActive = *cmd.IsActive
	}

	if err := model.ValidateBudget(budget); err != nil {
		return model.Budget{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	if err := s.budgetRepo.Create(ctx, &budget); err != nil {
		s.logger.Error("Failed to create budget", zap.String("department", string(budget.Department)), zap.Error(err))
		return model.Budget{}, toServiceError(err)
	}

	s.logger.Info("Budget created",
		zap.Int64("budgetID", budget.ID),
		zap.String("department", string(budget.Department)),
		zap.Int("year", budget.Year),
		zap.String("allocated", budget.AllocatedAmount.String()))

	return budget, nil
}

func (s *budgetService) Get(ctx context.Context, id int64) (model.Budget, error) {
	budget, err := s.budgetRepo.GetByID(ctx, id)
	if err != nil {
		return model.Budget{}, toServiceError(err)
	}

	return *budget, nil
}

func (s *budgetService) List(ctx context.Context, query ListBudgetsQuery) ([]model.Budget, error) {
	budgets, err := s.budgetRepo.List(ctx, repository.BudgetFilter{
		Department: query.Department,
		BudgetType: query.BudgetType,
		Year:       query.Year,
		ActiveOnly: query.ActiveOnly,
	})
	if err != nil {
		s.logger.Error("Failed to list budgets", zap.Error(err))
		return nil, toServiceError(err)
	}

	return budgets, nil
}

// Update applies administrative edits. It goes through the same lock as the ledger operations.
func (s *budgetService) Update(ctx context.Context, cmd UpdateBudgetCommand) (model.Budget, error) {
	var updated model.Budget

	err := s.withBudget(ctx, cmd.BudgetID, func(ctx context.Context, budget model.Budget) error {
		if cmd.AllocatedAmount != nil {
			budget.AllocatedAmount = *cmd.AllocatedAmount
		}
		if cmd.SpentAmount != nil {
			budget.SpentAmount = *cmd.SpentAmount
		}
		if cmd.CommittedAmount != nil {
			budget.CommittedAmount = *cmd.CommittedAmount
		}
		if cmd.Description != nil {
			budget.Description = *cmd.Description
		}
		if cmd.IsActive != nil {
			budget.IsActive = *cmd.IsActive
		}

		if err := model.ValidateBudget(budget); err != nil {
			return err
		}

		updated = budget
		return s.budgetRepo.Save(ctx, &updated)
	})
	if err != nil {
		s.logger.Warn("Failed to update budget", zap.Int64("budgetID", cmd.BudgetID), zap.Error(err))
		return model.Budget{}, toServiceError(err)
	}

	s.logger.Info("Budget updated", zap.Int64("budgetID", updated.ID))

	return updated, nil
}

func (s *budgetService) Delete(ctx context.Context, id int64) error {
	if err := s.budgetRepo.Delete(ctx, id); err != nil {
		s.logger.Warn("Failed to delete budget", zap.Int64("budgetID", id), zap.Error(err))
		return toServiceError(err)
	}

	s.logger.Info("Budget deleted", zap.Int64("budgetID", id))

	return nil
}

func (s *budgetService) CanSpend(ctx context.Context, id int64, amount decimal.Decimal) (bool, error) {
	budget, err := s.budgetRepo.GetByID(ctx, id)
	if err != nil {
		return false, toServiceError(err)
	}

	return budget.CanSpend(amount), nil
}

func (s *budgetService) Commit(ctx context.Context, cmd BudgetAmountCommand) (BudgetOperationResult, error) {
	return s.apply(ctx, budgetOpCommit, cmd, func(b model.Budget) (model.Budget, bool) {
		return b.Commit(cmd.Amount)
	})
}

func (s *budgetService) ReleaseCommitment(ctx context.Context, cmd BudgetAmountCommand) (BudgetOperationResult, error) {
	return s.apply(ctx, budgetOpRelease, cmd, func(b model.Budget) (model.Budget, bool) {
		return b.ReleaseCommitment(cmd.Amount)
	})
}

func (s *budgetService) Spend(ctx context.Context, cmd BudgetAmountCommand) (BudgetOperationResult, error) {
	return s.apply(ctx, budgetOpSpend, cmd, func(b model.Budget) (model.Budget, bool) {
		return b.Spend(cmd.Amount, cmd.Matched, s.policy)
	})
}

func (s *budgetService) apply(ctx context.Context, operation string, cmd BudgetAmountCommand,
	fn func(model.Budget) (model.Budget, bool)) (BudgetOperationResult, error) {
	if !cmd.Amount.IsPositive() {
		err := model.NewValidationError("amount", "amount must be positive")
		return BudgetOperationResult{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	var result BudgetOperationResult

	err := s.withBudget(ctx, cmd.BudgetID, func(ctx context.Context, budget model.Budget) error {
		updated, applied := fn(budget)
		result = BudgetOperationResult{Applied: applied, Budget: updated}
		if !applied {
			return nil
		}

		return s.budgetRepo.Save(ctx, &result.Budget)
	})
	if err != nil {
		s.logger.Error("Budget operation failed",
			zap.String("operation", operation),
			zap.Int64("budgetID", cmd.BudgetID),
			zap.Error(err))
		return BudgetOperationResult{}, toServiceError(err)
	}

	s.metrics.RecordBudgetOperation(operation, result.Applied)

	fields := []zap.Field{
		zap.String("operation", operation),
		zap.Int64("budgetID", cmd.BudgetID),
		zap.String("amount", cmd.Amount.String()),
		zap.String("spent", result.Budget.SpentAmount.String()),
		zap.String("committed", result.Budget.CommittedAmount.String()),
	}
	if result.Applied {
		s.logger.Info("Budget operation applied", fields...)
	} else {
		s.logger.Warn("Budget operation rejected", fields...)
	}

	return result, nil
}

// withBudget hands fn the row locked both in the database and under the budget key.
func (s *budgetService) withBudget(ctx context.Context, id int64, fn func(ctx context.Context, budget model.Budget) error) error {
	key := constants.BudgetLockPrefix + strconv.FormatInt(id, 10)

	return s.locker.WithLock(ctx, key, func(ctx context.Context) error {
		return s.txManager.WithTx(ctx, func(ctx context.Context) error {
			budget, err := s.budgetRepo.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}

			return fn(ctx, *budget)
		})
	})
}
