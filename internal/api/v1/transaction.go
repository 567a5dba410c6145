package v1

import (
	"net/http"

	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) CreateTransaction(c *fiber.Ctx) error {
	var request CreateTransactionRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	date, err := parseDate("date", request.Date)
	if err != nil {
		return err
	}
	dueDate, err := parseDate("due_date", request.DueDate)
	if err != nil {
		return err
	}
	paymentDate, err := parseDate("payment_date", request.PaymentDate)
	if err != nil {
		return err
	}

	cmd := service.CreateTransactionCommand{
		TransactionType:  model.TransactionType(request.TransactionType),
		Category:         model.Category(request.Category),
		Amount:           request.Amount,
		PaidAmount:       request.PaidAmount,
		StudentID:        request.StudentID,
		TeacherID:        request.TeacherID,
		Date:             date,
		DueDate:          dueDate,
		PaymentDate:      paymentDate,
		Status:           model.TransactionStatus(request.Status),
		Method:           model.PaymentMethod(request.Method),
		Description:      request.Description,
		ReceiptNumber:    request.ReceiptNumber,
		InvoiceNumber:    request.InvoiceNumber,
		IsRecurring:      request.IsRecurring,
		RecurrencePeriod: model.RecurrencePeriod(request.RecurrencePeriod),
	}

	tx, err := h.transactions.Create(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Failed to create transaction",
			zap.String("type", request.TransactionType),
			zap.String("amount", request.Amount.String()),
			zap.Error(err))
		return err
	}

	h.logger.Info("Transaction created",
		zap.Int64("id", tx.ID),
		zap.String("number", tx.TransactionNumber),
		zap.String("status", string(tx.Status)))

	return h.respond(c, http.StatusCreated, constants.TransactionCreated, newTransactionResponse(tx, h.clock.Today()))
}

func (h *Handler) GetTransaction(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	tx, err := h.transactions.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, constants.TransactionRetrieved, newTransactionResponse(tx, h.clock.Today()))
}

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	var request ListTransactionsRequest

	responseError := h.XValidator.ValidateQuery(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	from, err := parseDate("from", request.From)
	if err != nil {
		return err
	}
	to, err := parseDate("to", request.To)
	if err != nil {
		return err
	}

	result, err := h.transactions.List(c.UserContext(), service.ListTransactionsQuery{
		Type:        model.TransactionType(request.Type),
		Category:    model.Category(request.Category),
		Status:      model.TransactionStatus(request.Status),
		Method:      model.PaymentMethod(request.Method),
		StudentID:   optionalID(request.StudentID),
		TeacherID:   optionalID(request.TeacherID),
		OverdueOnly: request.OverdueOnly,
		From:        from,
		To:          to,
		Limit:       request.Limit,
		Offset:      request.Offset,
	})
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return err
	}

	today := h.clock.Today()
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, 0, len(result.Transactions)),
		Total:        result.Total,
	}
	for _, tx := range result.Transactions {
		res.Transactions = append(res.Transactions, newTransactionResponse(tx, today))
	}

	return h.respond(c, http.StatusOK, constants.TransactionsListed, res)
}

func (h *Handler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request UpdateTransactionRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	date, err := parseDatePtr("date", request.Date)
	if err != nil {
		return err
	}
	dueDate, err := parseDatePtr("due_date", request.DueDate)
	if err != nil {
		return err
	}

	cmd := service.UpdateTransactionCommand{
		TransactionID:    id,
		TransactionType:  castPtr[model.TransactionType](request.TransactionType),
		Category:         castPtr[model.Category](request.Category),
		Amount:           request.Amount,
		StudentID:        request.StudentID,
		TeacherID:        request.TeacherID,
		Date:             date,
		DueDate:          dueDate,
		Status:           castPtr[model.TransactionStatus](request.Status),
		Method:           castPtr[model.PaymentMethod](request.Method),
		Description:      request.Description,
		ReceiptNumber:    request.ReceiptNumber,
		InvoiceNumber:    request.InvoiceNumber,
		IsRecurring:      request.IsRecurring,
		RecurrencePeriod: castPtr[model.RecurrencePeriod](request.RecurrencePeriod),
	}

	tx, err := h.transactions.Update(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Failed to update transaction", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusOK, constants.TransactionUpdated, newTransactionResponse(tx, h.clock.Today()))
}

func (h *Handler) RecordPayment(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request RecordPaymentRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	paymentDate, err := parseDate("payment_date", request.PaymentDate)
	if err != nil {
		return err
	}

	tx, err := h.transactions.RecordPayment(c.UserContext(), service.RecordPaymentCommand{
		TransactionID: id,
		Amount:        request.Amount,
		Method:        model.PaymentMethod(request.Method),
		ReceiptNumber: request.ReceiptNumber,
		PaymentDate:   paymentDate,
	})
	if err != nil {
		h.logger.Error("Failed to record payment",
			zap.Int64("id", id),
			zap.String("amount", request.Amount.String()),
			zap.Error(err))
		return err
	}

	h.logger.Info("Payment recorded",
		zap.Int64("id", tx.ID),
		zap.String("paid", tx.PaidAmount.String()),
		zap.String("status", string(tx.Status)))

	return h.respond(c, http.StatusOK, constants.PaymentRecorded, newTransactionResponse(tx, h.clock.Today()))
}

func (h *Handler) CancelTransaction(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	tx, err := h.transactions.Cancel(c.UserContext(), id)
	if err != nil {
		h.logger.Error("Failed to cancel transaction", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusOK, constants.TransactionCancelled, newTransactionResponse(tx, h.clock.Today()))
}

func (h *Handler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.transactions.Delete(c.UserContext(), id); err != nil {
		h.logger.Error("Failed to delete transaction", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusOK, constants.TransactionDeleted, nil)
}
