package api

import (
	v1 "github.com/Behyna/university-finance/internal/api/v1"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefixV1 = "api/v1/finance/"

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post(prefixV1+"transactions", handler.CreateTransaction)
	app.Get(prefixV1+"transactions", handler.ListTransactions)
	app.Get(prefixV1+"transactions/:id", handler.GetTransaction)
	app.Put(prefixV1+"transactions/:id", handler.UpdateTransaction)
	app.Post(prefixV1+"transactions/:id/payments", handler.RecordPayment)
	app.Post(prefixV1+"transactions/:id/cancel", handler.CancelTransaction)
	app.Delete(prefixV1+"transactions/:id", handler.DeleteTransaction)

	app.Post(prefixV1+"budgets", handler.CreateBudget)
	app.Get(prefixV1+"budgets", handler.ListBudgets)
	app.Get(prefixV1+"budgets/:id", handler.GetBudget)
	app.Put(prefixV1+"budgets/:id", handler.UpdateBudget)
	app.Delete(prefixV1+"budgets/:id", handler.DeleteBudget)
	app.Get(prefixV1+"budgets/:id/can-spend", handler.CanSpend)
	app.Post(prefixV1+"budgets/:id/commit", handler.CommitBudget)
	app.Post(prefixV1+"budgets/:id/release", handler.ReleaseCommitment)
	app.Post(prefixV1+"budgets/:id/spend", handler.SpendBudget)

	app.Post(prefixV1+"salaries", handler.CreateSalary)
	app.Get(prefixV1+"salaries", handler.ListSalaries)
	app.Get(prefixV1+"salaries/:id", handler.GetSalary)
	app.Post(prefixV1+"salaries/:id/pay", handler.PaySalary)

	app.Get(prefixV1+"settings", handler.ListSettings)
	app.Get(prefixV1+"settings/:key", handler.GetSetting)
	app.Put(prefixV1+"settings/:key", handler.UpsertSetting)
	app.Delete(prefixV1+"settings/:key", handler.DeleteSetting)

	app.Get(prefixV1+"statistics", handler.Statistics)
	app.Post(prefixV1+"reports", handler.GenerateReport)
	app.Get(prefixV1+"reports", handler.ListReports)
	app.Get(prefixV1+"reports/:id", handler.GetReport)
}
