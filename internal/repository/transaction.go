package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/university-finance/internal/model"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")
var ErrTransactionNumberExists = errors.New("TRANSACTION_NUMBER_EXISTS")

type TransactionFilter struct {
	Type      model.TransactionType
	Category  model.Category
	Status    model.TransactionStatus
	Method    model.PaymentMethod
	StudentID *int64
	TeacherID *int64
	// OverdueAt keeps only entries whose due date is before this day and are still open.
	OverdueAt *time.Time
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	Save(ctx context.Context, tx *model.Transaction) error
	GetByID(ctx context.Context, id int64) (*model.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	Count(ctx context.Context, filter TransactionFilter) (int64, error)
	Delete(ctx context.Context, id int64) error
	FindOverdueCandidates(ctx context.Context, today time.Time, limit int) ([]model.Transaction, error)
	FindByStatus(ctx context.Context, statuses ...model.TransactionStatus) ([]model.Transaction, error)
	FindPaidBetween(ctx context.Context, from, to time.Time) ([]model.Transaction, error)
}

type Transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &Transaction{db: db}
}

func (r *Transaction) Create(ctx context.Context, tx *model.Transaction) error {
	err := GetTx(ctx, r.db).Create(tx).Error
	if err == nil {
		return nil
	}

	if isDuplicateKey(err) {
		return ErrTransactionNumberExists
	}

	return err
}

func (r *Transaction) Save(ctx context.Context, tx *model.Transaction) error {
	result := GetTx(ctx, r.db).Model(tx).Where("id = ?", tx.ID).Select("*").Omit("id", "transaction_number", "created_at").Updates(tx)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

func (r *Transaction) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	var tx model.Transaction

	err := GetTx(ctx, r.db).Where("id = ?", id).First(&tx).Error
	if err == nil {
		return &tx, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

func (r *Transaction) List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	var txs []model.Transaction

	query := r.filtered(ctx, filter).Order("date DESC").Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&txs).Error; err != nil {
		return nil, err
	}

	return txs, nil
}

func (r *Transaction) Count(ctx context.Context, filter TransactionFilter) (int64, error) {
	var count int64

	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Transaction) Delete(ctx context.Context, id int64) error {
	result := GetTx(ctx, r.db).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

func (r *Transaction) FindOverdueCandidates(ctx context.Context, today time.Time, limit int) ([]model.Transaction, error) {
	var txs []model.Transaction

	err := GetTx(ctx, r.db).
		Where("due_date < ? AND status IN ?", model.DateOf(today),
			[]model.TransactionStatus{model.TransactionStatusPending, model.TransactionStatusPartial}).
		Order("due_date ASC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}

	return txs, nil
}

func (r *Transaction) FindByStatus(ctx context.Context, statuses ...model.TransactionStatus) ([]model.Transaction, error) {
	var txs []model.Transaction

	if err := GetTx(ctx, r.db).Where("status IN ?", statuses).Find(&txs).Error; err != nil {
		return nil, err
	}

	return txs, nil
}

// FindPaidBetween returns paid entries whose date falls in [from, to].
func (r *Transaction) FindPaidBetween(ctx context.Context, from, to time.Time) ([]model.Transaction, error) {
	var txs []model.Transaction

	err := GetTx(ctx, r.db).
		Where("status = ? AND date >= ? AND date <= ?", model.TransactionStatusPaid, model.DateOf(from), model.DateOf(to)).
		Order("date ASC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}

	return txs, nil
}

func (r *Transaction) filtered(ctx context.Context, filter TransactionFilter) *gorm.DB {
	query := GetTx(ctx, r.db).Model(&model.Transaction{})

	if filter.Type != "" {
		query = query.Where("transaction_type = ?", filter.Type)
	}
	if filter.Category != model.CategoryUnset {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Method != model.PaymentMethodNone {
		query = query.Where("method = ?", filter.Method)
	}
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.TeacherID != nil {
		query = query.Where("teacher_id = ?", *filter.TeacherID)
	}
	if filter.OverdueAt != nil {
		query = query.Where("due_date < ? AND status NOT IN ?", model.DateOf(*filter.OverdueAt),
			[]model.TransactionStatus{model.TransactionStatusPaid, model.TransactionStatusCancelled})
	}
	if filter.From != nil {
		query = query.Where("date >= ?", model.DateOf(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", model.DateOf(*filter.To))
	}

	return query
}
