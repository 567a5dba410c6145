package service

import (
	"context"
	"fmt"

	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/metrics"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"go.uber.org/zap"
)

type SalaryService interface {
	Create(ctx context.Context, cmd CreateSalaryCommand) (model.Salary, error)
	Get(ctx context.Context, id int64) (model.Salary, error)
	List(ctx context.Context, query ListSalariesQuery) ([]model.Salary, error)
	Pay(ctx context.Context, cmd PaySalaryCommand) (PaySalaryResult, error)
}

type salaryService struct {
	txManager    repository.TxManager
	salaryRepo   repository.SalaryRepository
	transactions TransactionService
	budgets      BudgetService
	clock        Clock
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

func NewSalaryService(txManager repository.TxManager, salaryRepo repository.SalaryRepository, transactions TransactionService,
	budgets BudgetService, clock Clock, logger *zap.Logger, metrics *metrics.Metrics) SalaryService {
	return &salaryService{
		txManager:    txManager,
		salaryRepo:   salaryRepo,
		transactions: transactions,
		budgets:      budgets,
		clock:        clock,
		logger:       logger,
		metrics:      metrics,
	}
}

func (s *salaryService) Create(ctx context.Context, cmd CreateSalaryCommand) (model.Salary, error) {
	salary := model.Salary{
		TeacherID:     cmd.TeacherID,
		Month:         cmd.Month,
		Year:          cmd.Year,
		BaseSalary:    cmd.BaseSalary,
		Bonus:         cmd.Bonus,
		Deductions:    cmd.Deductions,
		NetSalary:     cmd.NetSalary,
		PaymentMethod: cmd.PaymentMethod,
		Comments:      cmd.Comments,
	}

	if err := model.ValidateSalary(salary); err != nil {
		return model.Salary{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	salary = model.PrepareSalary(salary, s.clock.Today())

	if err := s.salaryRepo.Create(ctx, &salary); err != nil {
		s.logger.Warn("Failed to create salary",
			zap.Int64("teacherID", salary.TeacherID),
			zap.Int("month", salary.Month),
			zap.Int("year", salary.Year),
			zap.Error(err))
		return model.Salary{}, toServiceError(err)
	}

	s.logger.Info("Salary created",
		zap.Int64("salaryID", salary.ID),
		zap.Int64("teacherID", salary.TeacherID),
		zap.String("net", salary.NetSalary.String()))

	return salary, nil
}

func (s *salaryService) Get(ctx context.Context, id int64) (model.Salary, error) {
	salary, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return model.Salary{}, toServiceError(err)
	}

	return *salary, nil
}

func (s *salaryService) List(ctx context.Context, query ListSalariesQuery) ([]model.Salary, error) {
	salaries, err := s.salaryRepo.List(ctx, repository.SalaryFilter{
		TeacherID: query.TeacherID,
		Year:      query.Year,
		Month:     query.Month,
		Status:    query.Status,
	})
	if err != nil {
		s.logger.Error("Failed to list salaries", zap.Error(err))
		return nil, toServiceError(err)
	}

	return salaries, nil
}

// Pay books the salary as a fully paid ledger entry and, when asked, charges the budget.
// Either everything is persisted or nothing is.
func (s *salaryService) Pay(ctx context.Context, cmd PaySalaryCommand) (PaySalaryResult, error) {
	var result PaySalaryResult

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		salary, err := s.salaryRepo.GetByIDForUpdate(ctx, cmd.SalaryID)
		if err != nil {
			return err
		}

		switch salary.Status {
		case model.SalaryStatusPaid:
			return NewServiceError(constants.ErrCodeSalaryAlreadyPaid, ErrSalaryAlreadyPaid)
		case model.SalaryStatusCancelled:
			return model.NewValidationError("status", "a cancelled salary cannot be paid")
		}

		method := cmd.Method
		if method == model.PaymentMethodNone {
			method = salary.PaymentMethod
		}

		if cmd.BudgetID != nil {
			spend, err := s.budgets.Spend(ctx, BudgetAmountCommand{BudgetID: *cmd.BudgetID, Amount: salary.NetSalary})
			if err != nil {
				return err
			}
			if !spend.Applied {
				return NewServiceError(constants.ErrCodeInsufficientFunds, ErrInsufficientFunds)
			}
		}

		tx, err := s.transactions.Create(ctx, CreateTransactionCommand{
			TransactionType: model.TransactionTypeSalary,
			Amount:          salary.NetSalary,
			PaidAmount:      salary.NetSalary,
			TeacherID:       &salary.TeacherID,
			Method:          method,
			Description:     fmt.Sprintf("Salary %02d/%d", salary.Month, salary.Year),
		})
		if err != nil {
			return err
		}

		salary.Status = model.SalaryStatusPaid
		salary.PaymentMethod = method
		salary.TransactionID = &tx.ID
		salary.PaymentDate = nil
		*salary = model.PrepareSalary(*salary, s.clock.Today())

		if err := s.salaryRepo.Save(ctx, salary); err != nil {
			return err
		}

		result = PaySalaryResult{Salary: *salary, Transaction: tx}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to pay salary", zap.Int64("salaryID", cmd.SalaryID), zap.Error(err))
		return PaySalaryResult{}, toServiceError(err)
	}

	s.metrics.RecordSalaryPaid()
	s.logger.Info("Salary paid",
		zap.Int64("salaryID", result.Salary.ID),
		zap.Int64("transactionID", result.Transaction.ID),
		zap.String("net", result.Salary.NetSalary.String()))

	return result, nil
}
