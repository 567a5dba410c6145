package service

import (
	"context"
	"slices"
	"time"

	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const statisticsMonths = 6

type ReportService interface {
	Statistics(ctx context.Context, today time.Time) (Statistics, error)
	Generate(ctx context.Context, cmd GenerateReportCommand) (model.FinancialReport, error)
	GetReport(ctx context.Context, id int64) (model.FinancialReport, error)
	ListReports(ctx context.Context, query ListReportsQuery) ([]model.FinancialReport, error)
}

type reportService struct {
	transactionRepo repository.TransactionRepository
	budgetRepo      repository.BudgetRepository
	reportRepo      repository.FinancialReportRepository
	clock           Clock
	logger          *zap.Logger
}

func NewReportService(transactionRepo repository.TransactionRepository, budgetRepo repository.BudgetRepository,
	reportRepo repository.FinancialReportRepository, clock Clock, logger *zap.Logger) ReportService {
	return &reportService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		reportRepo:      reportRepo,
		clock:           clock,
		logger:          logger,
	}
}

func (s *reportService) Statistics(ctx context.Context, today time.Time) (Statistics, error) {
	today = model.DateOf(today)

	paid, err := s.transactionRepo.FindByStatus(ctx, model.TransactionStatusPaid)
	if err != nil {
		s.logger.Error("Failed to load paid transactions", zap.Error(err))
		return Statistics{}, toServiceError(err)
	}

	open, err := s.transactionRepo.FindByStatus(ctx,
		model.TransactionStatusPending, model.TransactionStatusPartial, model.TransactionStatusOverdue)
	if err != nil {
		s.logger.Error("Failed to load open transactions", zap.Error(err))
		return Statistics{}, toServiceError(err)
	}

	budgets, err := s.budgetRepo.List(ctx, repository.BudgetFilter{Year: today.Year(), ActiveOnly: true})
	if err != nil {
		s.logger.Error("Failed to load budgets", zap.Error(err))
		return Statistics{}, toServiceError(err)
	}

	stats := Statistics{
		Totals:                  sumByCategory(paid),
		PendingAmount:           decimal.Zero,
		OverdueAmount:           decimal.Zero,
		TransactionDistribution: distributionByType(paid),
		BudgetUtilization:       utilization(budgets),
	}

	for _, tx := range open {
		if tx.Status != model.TransactionStatusOverdue {
			stats.PendingCount++
			stats.PendingAmount = stats.PendingAmount.Add(tx.Amount)
		}

		if tx.Status == model.TransactionStatusOverdue || tx.IsOverdue(today) {
			stats.OverdueCount++
			stats.OverdueAmount = stats.OverdueAmount.Add(tx.Amount)
		}
	}

	stats.MonthlyIncome, stats.MonthlyExpenses = monthlySeries(paid, today)

	s.logger.Debug("Statistics computed",
		zap.Int("paid", len(paid)),
		zap.Int("open", len(open)),
		zap.Int("budgets", len(budgets)))

	return stats, nil
}

func (s *reportService) Generate(ctx context.Context, cmd GenerateReportCommand) (model.FinancialReport, error) {
	report := model.FinancialReport{
		ReportType:  cmd.ReportType,
		PeriodStart: model.DateOf(cmd.PeriodStart),
		PeriodEnd:   model.DateOf(cmd.PeriodEnd),
		Notes:       cmd.Notes,
	}

	if err := model.ValidateReport(report); err != nil {
		return model.FinancialReport{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	txs, err := s.transactionRepo.FindPaidBetween(ctx, report.PeriodStart, report.PeriodEnd)
	if err != nil {
		s.logger.Error("Failed to load transactions for report", zap.Error(err))
		return model.FinancialReport{}, toServiceError(err)
	}

	totals := sumByCategory(txs)
	report.TotalIncome = totals.Income
	report.TotalExpenses = totals.Expenses
	report.TotalSalaries = totals.Salaries
	report.TotalScholarships = totals.Scholarships
	report.NetBalance = totals.NetBalance()
	report.TransactionsCount = len(txs)
	report.GeneratedAt = s.clock()

	if err := s.reportRepo.Create(ctx, &report); err != nil {
		s.logger.Error("Failed to save report", zap.Error(err))
		return model.FinancialReport{}, toServiceError(err)
	}

	s.logger.Info("Financial report generated",
		zap.Int64("reportID", report.ID),
		zap.String("type", string(report.ReportType)),
		zap.Int("transactions", report.TransactionsCount),
		zap.String("net", report.NetBalance.String()))

	return report, nil
}

func (s *reportService) GetReport(ctx context.Context, id int64) (model.FinancialReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return model.FinancialReport{}, toServiceError(err)
	}

	return *report, nil
}

func (s *reportService) ListReports(ctx context.Context, query ListReportsQuery) ([]model.FinancialReport, error) {
	reports, err := s.reportRepo.List(ctx, query.ReportType, query.Limit, query.Offset)
	if err != nil {
		s.logger.Error("Failed to list reports", zap.Error(err))
		return nil, toServiceError(err)
	}

	return reports, nil
}

func sumByCategory(txs []model.Transaction) CategoryTotals {
	totals := CategoryTotals{
		Income:       decimal.Zero,
		Expenses:     decimal.Zero,
		Salaries:     decimal.Zero,
		Scholarships: decimal.Zero,
	}

	for _, tx := range txs {
		switch tx.Category {
		case model.CategoryIncome:
			totals.Income = totals.Income.Add(tx.Amount)
		case model.CategoryExpense:
			totals.Expenses = totals.Expenses.Add(tx.Amount)
		case model.CategorySalary:
			totals.Salaries = totals.Salaries.Add(tx.Amount)
		case model.CategoryScholarship:
			totals.Scholarships = totals.Scholarships.Add(tx.Amount)
		}
	}

	return totals
}

// distributionByType is sorted by total, largest first.
func distributionByType(txs []model.Transaction) []TypeDistribution {
	index := make(map[model.TransactionType]int)
	var dist []TypeDistribution

	for _, tx := range txs {
		i, ok := index[tx.TransactionType]
		if !ok {
			i = len(dist)
			index[tx.TransactionType] = i
			dist = append(dist, TypeDistribution{TransactionType: tx.TransactionType, Total: decimal.Zero})
		}

		dist[i].Total = dist[i].Total.Add(tx.Amount)
		dist[i].Count++
	}

	slices.SortStableFunc(dist, func(a, b TypeDistribution) int {
		return b.Total.Cmp(a.Total)
	})

	return dist
}

// monthlySeries covers the current calendar month and the five before it, oldest first.
func monthlySeries(paid []model.Transaction, today time.Time) (income, expenses []MonthlyAmount) {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	income = make([]MonthlyAmount, statisticsMonths)
	expenses = make([]MonthlyAmount, statisticsMonths)
	slot := make(map[string]int, statisticsMonths)

	for i := 0; i < statisticsMonths; i++ {
		month := first.AddDate(0, i-statisticsMonths+1, 0).Format("2006-01")
		income[i] = MonthlyAmount{Month: month, Amount: decimal.Zero}
		expenses[i] = MonthlyAmount{Month: month, Amount: decimal.Zero}
		slot[month] = i
	}

	for _, tx := range paid {
		i, ok := slot[model.DateOf(tx.Date).Format("2006-01")]
		if !ok {
			continue
		}

		switch tx.Category {
		case model.CategoryIncome:
			income[i].Amount = income[i].Amount.Add(tx.Amount)
		case model.CategoryExpense:
			expenses[i].Amount = expenses[i].Amount.Add(tx.Amount)
		}
	}

	return income, expenses
}

func utilization(budgets []model.Budget) []BudgetUtilization {
	out := make([]BudgetUtilization, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, BudgetUtilization{
			BudgetID:    b.ID,
			Department:  b.Department,
			BudgetType:  b.BudgetType,
			Allocated:   b.AllocatedAmount,
			Spent:       b.SpentAmount,
			Committed:   b.CommittedAmount,
			Remaining:   b.RemainingAmount(),
			Utilization: b.UtilizationPercentage(),
		})
	}

	return out
}
