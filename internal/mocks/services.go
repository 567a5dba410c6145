package mocks

import (
	"context"
	"time"

	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type TransactionService struct {
	mock.Mock
}

func (m *TransactionService) Create(ctx context.Context, cmd service.CreateTransactionCommand) (model.Transaction, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionService) Get(ctx context.Context, id int64) (model.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionService) List(ctx context.Context, query service.ListTransactionsQuery) (service.ListTransactionsResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(service.ListTransactionsResult), args.Error(1)
}

func (m *TransactionService) Update(ctx context.Context, cmd service.UpdateTransactionCommand) (model.Transaction, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionService) RecordPayment(ctx context.Context, cmd service.RecordPaymentCommand) (model.Transaction, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionService) Cancel(ctx context.Context, id int64) (model.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TransactionService) SweepOverdue(ctx context.Context, today time.Time, limit int) ([]model.Transaction, error) {
	args := m.Called(ctx, today, limit)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

type BudgetService struct {
	mock.Mock
}

func (m *BudgetService) Create(ctx context.Context, cmd service.CreateBudgetCommand) (model.Budget, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.Budget), args.Error(1)
}

func (m *BudgetService) Get(ctx context.Context, id int64) (model.Budget, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Budget), args.Error(1)
}

func (m *BudgetService) List(ctx context.Context, query service.ListBudgetsQuery) ([]model.Budget, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]model.Budget), args.Error(1)
}

func (m *BudgetService) Update(ctx context.Context, cmd service.UpdateBudgetCommand) (model.Budget, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.Budget), args.Error(1)
}

func (m *BudgetService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BudgetService) CanSpend(ctx context.Context, id int64, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, id, amount)
	return args.Bool(0), args.Error(1)
}

func (m *BudgetService) Commit(ctx context.Context, cmd service.BudgetAmountCommand) (service.BudgetOperationResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.BudgetOperationResult), args.Error(1)
}

func (m *BudgetService) ReleaseCommitment(ctx context.Context, cmd service.BudgetAmountCommand) (service.BudgetOperationResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.BudgetOperationResult), args.Error(1)
}

func (m *BudgetService) Spend(ctx context.Context, cmd service.BudgetAmountCommand) (service.BudgetOperationResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.BudgetOperationResult), args.Error(1)
}

type SalaryService struct {
	mock.Mock
}

func (m *SalaryService) Create(ctx context.Context, cmd service.CreateSalaryCommand) (model.Salary, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.Salary), args.Error(1)
}

func (m *SalaryService) Get(ctx context.Context, id int64) (model.Salary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Salary), args.Error(1)
}

func (m *SalaryService) List(ctx context.Context, query service.ListSalariesQuery) ([]model.Salary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]model.Salary), args.Error(1)
}

func (m *SalaryService) Pay(ctx context.Context, cmd service.PaySalaryCommand) (service.PaySalaryResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.PaySalaryResult), args.Error(1)
}

type SettingService struct {
	mock.Mock
}

func (m *SettingService) Get(ctx context.Context, key string) (service.SettingResult, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(service.SettingResult), args.Error(1)
}

func (m *SettingService) List(ctx context.Context) ([]service.SettingResult, error) {
	args := m.Called(ctx)
	return args.Get(0).([]service.SettingResult), args.Error(1)
}

func (m *SettingService) Upsert(ctx context.Context, cmd service.UpsertSettingCommand) (service.SettingResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.SettingResult), args.Error(1)
}

func (m *SettingService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type ReportService struct {
	mock.Mock
}

func (m *ReportService) Statistics(ctx context.Context, today time.Time) (service.Statistics, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(service.Statistics), args.Error(1)
}

func (m *ReportService) Generate(ctx context.Context, cmd service.GenerateReportCommand) (model.FinancialReport, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.FinancialReport), args.Error(1)
}

func (m *ReportService) GetReport(ctx context.Context, id int64) (model.FinancialReport, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.FinancialReport), args.Error(1)
}

func (m *ReportService) ListReports(ctx context.Context, query service.ListReportsQuery) ([]model.FinancialReport, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]model.FinancialReport), args.Error(1)
}

type ReminderQueueService struct {
	mock.Mock
}

func (m *ReminderQueueService) FindRemindersToQueue(ctx context.Context, limit int) ([]service.ReminderCommand, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]service.ReminderCommand), args.Error(1)
}

func (m *ReminderQueueService) MarkReminderAsQueued(ctx context.Context, reminderID int64) error {
	args := m.Called(ctx, reminderID)
	return args.Error(0)
}

type ReminderService struct {
	mock.Mock
}

func (m *ReminderService) Dispatch(ctx context.Context, cmd service.ReminderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
