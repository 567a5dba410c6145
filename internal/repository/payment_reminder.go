package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/university-finance/internal/model"
	"gorm.io/gorm"
)

var ErrReminderNotFound = errors.New("REMINDER_NOT_FOUND")

type PaymentReminderRepository interface {
	Create(ctx context.Context, reminder *model.PaymentReminder) error
	GetByID(ctx context.Context, id int64) (*model.PaymentReminder, error)
	ExistsForTransaction(ctx context.Context, transactionID int64, reminderType model.ReminderType) (bool, error)
	FindUnpublished(ctx context.Context, limit int) ([]model.PaymentReminder, error)
	MarkPublished(ctx context.Context, id int64, at time.Time) error
	MarkSent(ctx context.Context, id int64, at time.Time) error
	DeleteByTransactionID(ctx context.Context, transactionID int64) error
}

type PaymentReminder struct {
	db *gorm.DB
}

func NewPaymentReminderRepository(db *gorm.DB) PaymentReminderRepository {
	return &PaymentReminder{db: db}
}

func (r *PaymentReminder) Create(ctx context.Context, reminder *model.PaymentReminder) error {
	return GetTx(ctx, r.db).Omit("Transaction").Create(reminder).Error
}

func (r *PaymentReminder) GetByID(ctx context.Context, id int64) (*model.PaymentReminder, error) {
	var reminder model.PaymentReminder

	err := GetTx(ctx, r.db).Preload("Transaction").Where("id = ?", id).First(&reminder).Error
	if err == nil {
		return &reminder, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReminderNotFound
	}

	return nil, err
}

func (r *PaymentReminder) ExistsForTransaction(ctx context.Context, transactionID int64, reminderType model.ReminderType) (bool, error) {
	var count int64

	err := GetTx(ctx, r.db).Model(&model.PaymentReminder{}).
		Where("transaction_id = ? AND reminder_type = ?", transactionID, reminderType).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *PaymentReminder) FindUnpublished(ctx context.Context, limit int) ([]model.PaymentReminder, error) {
	var reminders []model.PaymentReminder

	err := GetTx(ctx, r.db).
		Preload("Transaction").
		Where("published = ?", false).
		Order("id ASC").
		Limit(limit).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}

	return reminders, nil
}

func (r *PaymentReminder) MarkPublished(ctx context.Context, id int64, at time.Time) error {
	return r.update(ctx, id, map[string]any{"published": true, "published_at": at})
}

func (r *PaymentReminder) MarkSent(ctx context.Context, id int64, at time.Time) error {
	return r.update(ctx, id, map[string]any{"sent_at": at})
}

func (r *PaymentReminder) update(ctx context.Context, id int64, values map[string]any) error {
	result := GetTx(ctx, r.db).Model(&model.PaymentReminder{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrReminderNotFound
	}

	return nil
}

func (r *PaymentReminder) DeleteByTransactionID(ctx context.Context, transactionID int64) error {
	return GetTx(ctx, r.db).Where("transaction_id = ?", transactionID).Delete(&model.PaymentReminder{}).Error
}
