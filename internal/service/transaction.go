package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Behyna/university-finance/internal/config"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/metrics"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"go.uber.org/zap"
)

type TransactionService interface {
	Create(ctx context.Context, cmd CreateTransactionCommand) (model.Transaction, error)
	Get(ctx context.Context, id int64) (model.Transaction, error)
	List(ctx context.Context, query ListTransactionsQuery) (ListTransactionsResult, error)
	Update(ctx context.Context, cmd UpdateTransactionCommand) (model.Transaction, error)
	RecordPayment(ctx context.Context, cmd RecordPaymentCommand) (model.Transaction, error)
	Cancel(ctx context.Context, id int64) (model.Transaction, error)
	Delete(ctx context.Context, id int64) error
	SweepOverdue(ctx context.Context, today time.Time, limit int) ([]model.Transaction, error)
}

type transactionService struct {
	txManager       repository.TxManager
	transactionRepo repository.TransactionRepository
	reminderRepo    repository.PaymentReminderRepository
	numberRetries   int
	rnd             func(n int) int
	clock           Clock
	logger          *zap.Logger
	metrics         *metrics.Metrics
}

func NewTransactionService(txManager repository.TxManager, transactionRepo repository.TransactionRepository,
	reminderRepo repository.PaymentReminderRepository, cfg *config.Config, clock Clock, logger *zap.Logger,
	metrics *metrics.Metrics) TransactionService {
	retries := cfg.Finance.NumberRetries
	if retries <= 0 {
		retries = 1
	}

	return &transactionService{
		txManager:       txManager,
		transactionRepo: transactionRepo,
		reminderRepo:    reminderRepo,
		numberRetries:   retries,
		rnd:             rand.Intn,
		clock:           clock,
		logger:          logger,
		metrics:         metrics,
	}
}

func (s *transactionService) Create(ctx context.Context, cmd CreateTransactionCommand) (model.Transaction, error) {
	start := time.Now()
	today := s.clock.Today()

	tx := model.Transaction{
		TransactionType:  cmd.TransactionType,
		Category:         cmd.Category,
		Amount:           cmd.Amount,
		PaidAmount:       cmd.PaidAmount,
		StudentID:        cmd.StudentID,
		TeacherID:        cmd.TeacherID,
		Date:             today,
		DueDate:          dateOrNil(cmd.DueDate),
		PaymentDate:      dateOrNil(cmd.PaymentDate),
		Status:           cmd.Status,
		Method:           cmd.Method,
		Description:      cmd.Description,
		ReceiptNumber:    cmd.ReceiptNumber,
		InvoiceNumber:    cmd.InvoiceNumber,
		IsRecurring:      cmd.IsRecurring,
		RecurrencePeriod: cmd.RecurrencePeriod,
	}
	if cmd.Date != nil {
		tx.Date = model.DateOf(*cmd.Date)
	}

	if err := model.ValidateTransaction(tx); err != nil {
		s.logger.Warn("Rejected transaction", zap.String("type", string(tx.TransactionType)), zap.Error(err))
		s.metrics.RecordTransactionError("create", constants.ErrCodeValidationFailed)
		return model.Transaction{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	tx = model.PrepareForSave(tx, today)

	for attempt := 1; attempt <= s.numberRetries; attempt++ {
		tx.ID = 0
		tx.TransactionNumber = model.GenerateTransactionNumber(tx.Date, s.rnd)

		err := s.transactionRepo.Create(ctx, &tx)
		if err == nil {
			s.metrics.RecordTransactionCreated(string(tx.TransactionType))
			s.logger.Info("Transaction created",
				zap.Int64("transactionID", tx.ID),
				zap.String("transactionNumber", tx.TransactionNumber),
				zap.String("status", string(tx.Status)),
				zap.Int("attempt", attempt),
				zap.Duration("duration", time.Since(start)))

			return tx, nil
		}

		if !errors.Is(err, repository.ErrTransactionNumberExists) {
			s.logger.Error("Failed to create transaction", zap.Error(err))
			s.metrics.RecordTransactionError("create", constants.ErrCodeOperationFailed)
			return model.Transaction{}, NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		s.metrics.RecordNumberCollision()
		s.logger.Warn("Transaction number collision, regenerating",
			zap.String("transactionNumber", tx.TransactionNumber),
			zap.Int("attempt", attempt))
	}

	s.logger.Error("Could not allocate a transaction number", zap.Int("maxRetries", s.numberRetries))
	s.metrics.RecordTransactionError("create", constants.ErrCodeTransactionNumberConflict)

	return model.Transaction{}, NewServiceError(constants.ErrCodeTransactionNumberConflict,
		fmt.Errorf("%w after %d attempts", ErrNumberConflict, s.numberRetries))
}

func (s *transactionService) Get(ctx context.Context, id int64) (model.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug("Transaction lookup failed", zap.Int64("transactionID", id), zap.Error(err))
		return model.Transaction{}, toServiceError(err)
	}

	return *tx, nil
}

func (s *transactionService) List(ctx context.Context, query ListTransactionsQuery) (ListTransactionsResult, error) {
	filter := repository.TransactionFilter{
		Type:      query.Type,
		Category:  query.Category,
		Status:    query.Status,
		Method:    query.Method,
		StudentID: query.StudentID,
		TeacherID: query.TeacherID,
		From:      query.From,
		To:        query.To,
		Limit:     query.Limit,
		Offset:    query.Offset,
	}
	if query.OverdueOnly {
		today := s.clock.Today()
		filter.OverdueAt = &today
	}

	txs, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list transactions", zap.Error(err))
		return ListTransactionsResult{}, toServiceError(err)
	}

	total, err := s.transactionRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count transactions", zap.Error(err))
		return ListTransactionsResult{}, toServiceError(err)
	}

	return ListTransactionsResult{Transactions: txs, Total: total}, nil
}

func (s *transactionService) Update(ctx context.Context, cmd UpdateTransactionCommand) (model.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, cmd.TransactionID)
	if err != nil {
		return model.Transaction{}, toServiceError(err)
	}

	if cmd.Status != nil && *cmd.Status != model.TransactionStatusPending && *cmd.Status != model.TransactionStatusCancelled {
		err := model.NewValidationError("status", "status can only be set to pending or cancelled")
		return model.Transaction{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	updated := applyUpdate(*tx, cmd)

	return s.save(ctx, "update", updated)
}

func (s *transactionService) RecordPayment(ctx context.Context, cmd RecordPaymentCommand) (model.Transaction, error) {
	if !cmd.Amount.IsPositive() {
		err := model.NewValidationError("amount", "payment amount must be positive")
		return model.Transaction{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	tx, err := s.transactionRepo.GetByID(ctx, cmd.TransactionID)
	if err != nil {
		return model.Transaction{}, toServiceError(err)
	}

	tx.PaidAmount = tx.PaidAmount.Add(cmd.Amount)
	if cmd.Method != model.PaymentMethodNone {
		tx.Method = cmd.Method
	}
	if cmd.ReceiptNumber != "" {
		tx.ReceiptNumber = cmd.ReceiptNumber
	}
	if cmd.PaymentDate != nil {
		tx.PaymentDate = dateOrNil(cmd.PaymentDate)
	}

	saved, err := s.save(ctx, "payment", *tx)
	if err != nil {
		return model.Transaction{}, err
	}

	s.metrics.RecordPayment(string(saved.Method))

	return saved, nil
}

func (s *transactionService) Cancel(ctx context.Context, id int64) (model.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return model.Transaction{}, toServiceError(err)
	}

	tx.Status = model.TransactionStatusCancelled

	return s.save(ctx, "cancel", *tx)
}

func (s *transactionService) Delete(ctx context.Context, id int64) error {
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.reminderRepo.DeleteByTransactionID(ctx, id); err != nil {
			return err
		}

		return s.transactionRepo.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Warn("Failed to delete transaction", zap.Int64("transactionID", id), zap.Error(err))
		return toServiceError(err)
	}

	s.logger.Info("Transaction deleted", zap.Int64("transactionID", id))

	return nil
}

// SweepOverdue re-derives open entries whose due date has passed and queues an overdue reminder for each.
func (s *transactionService) SweepOverdue(ctx context.Context, today time.Time, limit int) ([]model.Transaction, error) {
	candidates, err := s.transactionRepo.FindOverdueCandidates(ctx, today, limit)
	if err != nil {
		s.logger.Error("Failed to find overdue candidates", zap.Error(err))
		return nil, toServiceError(err)
	}

	if len(candidates) == 0 {
		s.logger.Debug("No overdue transactions found")
		return nil, nil
	}

	swept := make([]model.Transaction, 0, len(candidates))
	for _, candidate := range candidates {
		tx := model.PrepareForSave(candidate, today)
		if tx.Status != model.TransactionStatusOverdue {
			continue
		}

		err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
			if err := s.transactionRepo.Save(ctx, &tx); err != nil {
				return err
			}

			exists, err := s.reminderRepo.ExistsForTransaction(ctx, tx.ID, model.ReminderTypeOverdue)
			if err != nil || exists {
				return err
			}

			reminder := model.PaymentReminder{
				TransactionID: &tx.ID,
				ReminderDate:  model.DateOf(today),
				ReminderType:  model.ReminderTypeOverdue,
				Notes:         fmt.Sprintf("%s is %d days overdue", tx.TransactionNumber, tx.DaysOverdue(today)),
			}

			return s.reminderRepo.Create(ctx, &reminder)
		})
		if err != nil {
			s.logger.Error("Failed to mark transaction overdue",
				zap.Int64("transactionID", tx.ID),
				zap.Error(err))
			continue
		}

		swept = append(swept, tx)
	}

	s.metrics.RecordOverdueSwept(len(swept))
	s.logger.Info("Overdue sweep finished",
		zap.Int("candidates", len(candidates)),
		zap.Int("swept", len(swept)))

	return swept, nil
}

func (s *transactionService) save(ctx context.Context, operation string, tx model.Transaction) (model.Transaction, error) {
	if err := model.ValidateTransaction(tx); err != nil {
		s.metrics.RecordTransactionError(operation, constants.ErrCodeValidationFailed)
		return model.Transaction{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	tx = model.PrepareForSave(tx, s.clock.Today())

	if err := s.transactionRepo.Save(ctx, &tx); err != nil {
		serviceErr := toServiceError(err)
		s.logger.Error("Failed to save transaction",
			zap.String("operation", operation),
			zap.Int64("transactionID", tx.ID),
			zap.Error(err))
		s.metrics.RecordTransactionError(operation, ErrorCode(serviceErr))
		return model.Transaction{}, serviceErr
	}

	s.logger.Info("Transaction saved",
		zap.String("operation", operation),
		zap.Int64("transactionID", tx.ID),
		zap.String("status", string(tx.Status)))

	return tx, nil
}

// applyUpdate copies the provided fields. A type change without an explicit category drops a
// category that was only derived from the old type so it is derived again.
func applyUpdate(tx model.Transaction, cmd UpdateTransactionCommand) model.Transaction {
	if cmd.TransactionType != nil && *cmd.TransactionType != tx.TransactionType {
		if cmd.Category == nil && tx.Category == model.CategoryForType(tx.TransactionType) {
			tx.Category = model.CategoryUnset
		}
		tx.TransactionType = *cmd.TransactionType
	}
	if cmd.Category != nil {
		tx.Category = *cmd.Category
	}
	if cmd.Amount != nil {
		tx.Amount = *cmd.Amount
	}
	if cmd.StudentID != nil {
		tx.StudentID = cmd.StudentID
	}
	if cmd.TeacherID != nil {
		tx.TeacherID = cmd.TeacherID
	}
	if cmd.Date != nil {
		tx.Date = model.DateOf(*cmd.Date)
	}
	if cmd.DueDate != nil {
		tx.DueDate = dateOrNil(cmd.DueDate)
	}
	if cmd.Status != nil {
		tx.Status = *cmd.Status
	}
	if cmd.Method != nil {
		tx.Method = *cmd.Method
	}
	if cmd.Description != nil {
		tx.Description = *cmd.Description
	}
	if cmd.ReceiptNumber != nil {
		tx.ReceiptNumber = *cmd.ReceiptNumber
	}
	if cmd.InvoiceNumber != nil {
		tx.InvoiceNumber = *cmd.InvoiceNumber
	}
	if cmd.IsRecurring != nil {
		tx.IsRecurring = *cmd.IsRecurring
	}
	if cmd.RecurrencePeriod != nil {
		tx.RecurrencePeriod = *cmd.RecurrencePeriod
	}

	return tx
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	d := model.DateOf(*t)
	return &d
}
