package v1

import (
	"net/http"

	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) Statistics(c *fiber.Ctx) error {
	stats, err := h.reports.Statistics(c.UserContext(), h.clock.Today())
	if err != nil {
		h.logger.Error("Failed to compute statistics", zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusOK, constants.StatisticsReady, newStatisticsResponse(stats))
}

func (h *Handler) GenerateReport(c *fiber.Ctx) error {
	var request GenerateReportRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	start, err := parseDate("period_start", request.PeriodStart)
	if err != nil {
		return err
	}
	end, err := parseDate("period_end", request.PeriodEnd)
	if err != nil {
		return err
	}

	report, err := h.reports.Generate(c.UserContext(), service.GenerateReportCommand{
		ReportType:  model.ReportType(request.ReportType),
		PeriodStart: *start,
		PeriodEnd:   *end,
		Notes:       request.Notes,
	})
	if err != nil {
		h.logger.Error("Failed to generate report",
			zap.String("type", request.ReportType),
			zap.String("start", request.PeriodStart),
			zap.String("end", request.PeriodEnd),
			zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusCreated, constants.ReportGenerated, newReportResponse(report))
}

func (h *Handler) GetReport(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	report, err := h.reports.GetReport(c.UserContext(), id)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, constants.ReportRetrieved, newReportResponse(report))
}

func (h *Handler) ListReports(c *fiber.Ctx) error {
	var request ListReportsRequest

	responseError := h.XValidator.ValidateQuery(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	reports, err := h.reports.ListReports(c.UserContext(), service.ListReportsQuery{
		ReportType: model.ReportType(request.ReportType),
		Limit:      request.Limit,
		Offset:     request.Offset,
	})
	if err != nil {
		h.logger.Error("Failed to list reports", zap.Error(err))
		return err
	}

	res := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		res = append(res, newReportResponse(r))
	}

	return h.respond(c, http.StatusOK, constants.ReportsListed, res)
}
