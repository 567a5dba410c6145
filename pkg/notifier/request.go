package notifier

type ReminderNotification struct {
	EventID           string `json:"event_id"`
	ReminderID        int64  `json:"reminder_id"`
	ReminderType      string `json:"reminder_type"`
	TransactionID     *int64 `json:"transaction_id,omitempty"`
	TransactionNumber string `json:"transaction_number,omitempty"`
	StudentID         *int64 `json:"student_id,omitempty"`
	TeacherID         *int64 `json:"teacher_id,omitempty"`
	AmountDue         string `json:"amount_due,omitempty"`
	DueDate           string `json:"due_date,omitempty"`
	DaysOverdue       int    `json:"days_overdue"`
	Notes             string `json:"notes,omitempty"`
}

type Response struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Result  Result `json:"result,omitempty"`
}

type Result struct {
	NotificationID string `json:"notification_id"`
}
