package v1

import (
	"time"

	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type TransactionResponse struct {
	ID                int64   `json:"id"`
	TransactionNumber string  `json:"transaction_number"`
	TransactionType   string  `json:"transaction_type"`
	Category          string  `json:"category"`
	Status            string  `json:"status"`
	Amount            string  `json:"amount"`
	PaidAmount        string  `json:"paid_amount"`
	RemainingAmount   string  `json:"remaining_amount"`
	PaymentPercentage string  `json:"payment_percentage"`
	IsOverdue         bool    `json:"is_overdue"`
	DaysOverdue       int     `json:"days_overdue"`
	StudentID         *int64  `json:"student_id,omitempty"`
	TeacherID         *int64  `json:"teacher_id,omitempty"`
	Date              string  `json:"date"`
	DueDate           *string `json:"due_date,omitempty"`
	PaymentDate       *string `json:"payment_date,omitempty"`
	Method            string  `json:"method,omitempty"`
	Description       string  `json:"description,omitempty"`
	ReceiptNumber     string  `json:"receipt_number,omitempty"`
	InvoiceNumber     string  `json:"invoice_number,omitempty"`
	IsRecurring       bool    `json:"is_recurring"`
	RecurrencePeriod  string  `json:"recurrence_period,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

type BudgetResponse struct {
	ID                    int64  `json:"id"`
	Department            string `json:"department"`
	BudgetType            string `json:"budget_type"`
	Year                  int    `json:"year"`
	AllocatedAmount       string `json:"allocated_amount"`
	SpentAmount           string `json:"spent_amount"`
	CommittedAmount       string `json:"committed_amount"`
	RemainingAmount       string `json:"remaining_amount"`
	AvailableAmount       string `json:"available_amount"`
	UtilizationPercentage string `json:"utilization_percentage"`
	CommitmentPercentage  string `json:"commitment_percentage"`
	Description           string `json:"description,omitempty"`
	IsActive              bool   `json:"is_active"`
}

type CanSpendResponse struct {
	BudgetID int64  `json:"budget_id"`
	Amount   string `json:"amount"`
	CanSpend bool   `json:"can_spend"`
}

type SalaryResponse struct {
	ID            int64   `json:"id"`
	TeacherID     int64   `json:"teacher_id"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	BaseSalary    string  `json:"base_salary"`
	Bonus         string  `json:"bonus"`
	Deductions    string  `json:"deductions"`
	GrossSalary   string  `json:"gross_salary"`
	NetSalary     string  `json:"net_salary"`
	TaxPercentage string  `json:"tax_percentage"`
	Status        string  `json:"status"`
	PaymentDate   *string `json:"payment_date,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	TransactionID *int64  `json:"transaction_id,omitempty"`
	Comments      string  `json:"comments,omitempty"`
}

type PaySalaryResponse struct {
	Salary      SalaryResponse      `json:"salary"`
	Transaction TransactionResponse `json:"transaction"`
}

type SettingResponse struct {
	Key         string `json:"key"`
	Type        string `json:"type"`
	Value       any    `json:"value"`
	RawValue    string `json:"raw_value"`
	Description string `json:"description,omitempty"`
}

type ReportResponse struct {
	ID                   int64  `json:"id"`
	ReportType           string `json:"report_type"`
	PeriodStart          string `json:"period_start"`
	PeriodEnd            string `json:"period_end"`
	PeriodDuration       int    `json:"period_duration"`
	TotalIncome          string `json:"total_income"`
	TotalExpenses        string `json:"total_expenses"`
	TotalSalaries        string `json:"total_salaries"`
	TotalScholarships    string `json:"total_scholarships"`
	NetBalance           string `json:"net_balance"`
	DailyAverageIncome   string `json:"daily_average_income"`
	DailyAverageExpenses string `json:"daily_average_expenses"`
	ProfitMargin         string `json:"profit_margin"`
	TransactionsCount    int    `json:"transactions_count"`
	Notes                string `json:"notes,omitempty"`
	GeneratedAt          string `json:"generated_at"`
}

type DistributionResponse struct {
	TransactionType string `json:"transaction_type"`
	Total           string `json:"total"`
	Count           int    `json:"count"`
}

type MonthlyAmountResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

type BudgetUtilizationResponse struct {
	BudgetID    int64  `json:"budget_id"`
	Department  string `json:"department"`
	BudgetType  string `json:"budget_type"`
	Allocated   string `json:"allocated"`
	Spent       string `json:"spent"`
	Committed   string `json:"committed"`
	Remaining   string `json:"remaining"`
	Utilization string `json:"utilization"`
}

type StatisticsResponse struct {
	TotalIncome             string                      `json:"total_income"`
	TotalExpenses           string                      `json:"total_expenses"`
	TotalSalaries           string                      `json:"total_salaries"`
	TotalScholarships       string                      `json:"total_scholarships"`
	NetBalance              string                      `json:"net_balance"`
	PendingCount            int                         `json:"pending_count"`
	PendingAmount           string                      `json:"pending_amount"`
	OverdueCount            int                         `json:"overdue_count"`
	OverdueAmount           string                      `json:"overdue_amount"`
	TransactionDistribution []DistributionResponse      `json:"transaction_distribution"`
	MonthlyIncome           []MonthlyAmountResponse     `json:"monthly_income"`
	MonthlyExpenses         []MonthlyAmountResponse     `json:"monthly_expenses"`
	BudgetUtilization       []BudgetUtilizationResponse `json:"budget_utilization"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(3)
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func newTransactionResponse(t model.Transaction, today time.Time) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		TransactionNumber: t.TransactionNumber,
		TransactionType:   string(t.TransactionType),
		Category:          string(t.Category),
		Status:            string(t.Status),
		Amount:            money(t.Amount),
		PaidAmount:        money(t.PaidAmount),
		RemainingAmount:   money(t.RemainingAmount()),
		PaymentPercentage: percent(t.PaymentPercentage()),
		IsOverdue:         t.IsOverdue(today),
		DaysOverdue:       t.DaysOverdue(today),
		StudentID:         t.StudentID,
		TeacherID:         t.TeacherID,
		Date:              t.Date.Format(dateLayout),
		DueDate:           formatDate(t.DueDate),
		PaymentDate:       formatDate(t.PaymentDate),
		Method:            string(t.Method),
		Description:       t.Description,
		ReceiptNumber:     t.ReceiptNumber,
		InvoiceNumber:     t.InvoiceNumber,
		IsRecurring:       t.IsRecurring,
		RecurrencePeriod:  string(t.RecurrencePeriod),
	}
}

func newBudgetResponse(b model.Budget) BudgetResponse {
	return BudgetResponse{
		ID:                    b.ID,
		Department:            string(b.Department),
		BudgetType:            string(b.BudgetType),
		Year:                  b.Year,
		AllocatedAmount:       money(b.AllocatedAmount),
		SpentAmount:           money(b.SpentAmount),
		CommittedAmount:       money(b.CommittedAmount),
		RemainingAmount:       money(b.RemainingAmount()),
		AvailableAmount:       money(b.AvailableAmount()),
		UtilizationPercentage: percent(b.UtilizationPercentage()),
		CommitmentPercentage:  percent(b.CommitmentPercentage()),
		Description:           b.Description,
		IsActive:              b.IsActive,
	}
}

func newSalaryResponse(s model.Salary) SalaryResponse {
	return SalaryResponse{
		ID:            s.ID,
		TeacherID:     s.TeacherID,
		Month:         s.Month,
		Year:          s.Year,
		BaseSalary:    money(s.BaseSalary),
		Bonus:         money(s.Bonus),
		Deductions:    money(s.Deductions),
		GrossSalary:   money(s.GrossSalary()),
		NetSalary:     money(s.NetSalary),
		TaxPercentage: percent(s.TaxPercentage()),
		Status:        string(s.Status),
		PaymentDate:   formatDate(s.PaymentDate),
		PaymentMethod: string(s.PaymentMethod),
		TransactionID: s.TransactionID,
		Comments:      s.Comments,
	}
}

func newSettingResponse(r service.SettingResult) SettingResponse {
	value := r.Value.Interface()
	if n, ok := value.(decimal.Decimal); ok {
		value = n.String()
	}

	return SettingResponse{
		Key:         r.Setting.Key,
		Type:        string(r.Setting.Type),
		Value:       value,
		RawValue:    r.Setting.Value,
		Description: r.Setting.Description,
	}
}

func newReportResponse(r model.FinancialReport) ReportResponse {
	return ReportResponse{
		ID:                   r.ID,
		ReportType:           string(r.ReportType),
		PeriodStart:          r.PeriodStart.Format(dateLayout),
		PeriodEnd:            r.PeriodEnd.Format(dateLayout),
		PeriodDuration:       r.PeriodDuration(),
		TotalIncome:          money(r.TotalIncome),
		TotalExpenses:        money(r.TotalExpenses),
		TotalSalaries:        money(r.TotalSalaries),
		TotalScholarships:    money(r.TotalScholarships),
		NetBalance:           money(r.NetBalance),
		DailyAverageIncome:   money(r.DailyAverageIncome()),
		DailyAverageExpenses: money(r.DailyAverageExpenses()),
		ProfitMargin:         percent(r.ProfitMargin()),
		TransactionsCount:    r.TransactionsCount,
		Notes:                r.Notes,
		GeneratedAt:          r.GeneratedAt.Format(time.RFC3339),
	}
}

func newStatisticsResponse(s service.Statistics) StatisticsResponse {
	res := StatisticsResponse{
		TotalIncome:             money(s.Totals.Income),
		TotalExpenses:           money(s.Totals.Expenses),
		TotalSalaries:           money(s.Totals.Salaries),
		TotalScholarships:       money(s.Totals.Scholarships),
		NetBalance:              money(s.Totals.NetBalance()),
		PendingCount:            s.PendingCount,
		PendingAmount:           money(s.PendingAmount),
		OverdueCount:            s.OverdueCount,
		OverdueAmount:           money(s.OverdueAmount),
		TransactionDistribution: make([]DistributionResponse, 0, len(s.TransactionDistribution)),
		MonthlyIncome:           monthly(s.MonthlyIncome),
		MonthlyExpenses:         monthly(s.MonthlyExpenses),
		BudgetUtilization:       make([]BudgetUtilizationResponse, 0, len(s.BudgetUtilization)),
	}

	for _, d := range s.TransactionDistribution {
		res.TransactionDistribution = append(res.TransactionDistribution, DistributionResponse{
			TransactionType: string(d.TransactionType),
			Total:           money(d.Total),
			Count:           d.Count,
		})
	}

	for _, u := range s.BudgetUtilization {
		res.BudgetUtilization = append(res.BudgetUtilization, BudgetUtilizationResponse{
			BudgetID:    u.BudgetID,
			Department:  string(u.Department),
			BudgetType:  string(u.BudgetType),
			Allocated:   money(u.Allocated),
			Spent:       money(u.Spent),
			Committed:   money(u.Committed),
			Remaining:   money(u.Remaining),
			Utilization: percent(u.Utilization),
		})
	}

	return res
}

func monthly(series []service.MonthlyAmount) []MonthlyAmountResponse {
	out := make([]MonthlyAmountResponse, 0, len(series))
	for _, m := range series {
		out = append(out, MonthlyAmountResponse{Month: m.Month, Amount: money(m.Amount)})
	}
	return out
}
