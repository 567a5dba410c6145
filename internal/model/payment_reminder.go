package model

import "time"

type ReminderType string

const (
	ReminderTypeFirst   ReminderType = "first"
	ReminderTypeSecond  ReminderType = "second"
	ReminderTypeFinal   ReminderType = "final"
	ReminderTypeOverdue ReminderType = "overdue"
)

func (r ReminderType) Valid() bool {
	switch r {
	case ReminderTypeFirst, ReminderTypeSecond, ReminderTypeFinal, ReminderTypeOverdue:
		return true
	}
	return false
}

// PaymentReminder doubles as an outbox row: Published tracks the queue hand-off, SentAt the delivery.
type PaymentReminder struct {
	ID            int64        `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TransactionID *int64       `gorm:"column:transaction_id;index"`
	ReminderDate  time.Time    `gorm:"column:reminder_date;type:date;not null"`
	ReminderType  ReminderType `gorm:"column:reminder_type;type:varchar(20);not null"`
	Published     bool         `gorm:"column:published;not null;default:false;index"`
	PublishedAt   *time.Time   `gorm:"column:published_at"`
	SentAt        *time.Time   `gorm:"column:sent_at"`
	Notes         string       `gorm:"column:notes;type:text"`
	CreatedAt     time.Time    `gorm:"column:created_at"`

	Transaction *Transaction `gorm:"foreignKey:TransactionID"`
}

func (PaymentReminder) TableName() string {
	return "payment_reminders"
}
