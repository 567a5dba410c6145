package repository

import (
	"context"
	"errors"

	"github.com/Behyna/university-finance/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBudgetNotFound = errors.New("BUDGET_NOT_FOUND")

type BudgetFilter struct {
	Department model.Department
	BudgetType model.BudgetType
	Year       int
	ActiveOnly bool
}

type BudgetRepository interface {
	Create(ctx context.Context, budget *model.Budget) error
	Save(ctx context.Context, budget *model.Budget) error
	GetByID(ctx context.Context, id int64) (*model.Budget, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Budget, error)
	List(ctx context.Context, filter BudgetFilter) ([]model.Budget, error)
	Delete(ctx context.Context, id int64) error
}

type Budget struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &Budget{db: db}
}

func (r *Budget) Create(ctx context.Context, budget *model.Budget) error {
	return GetTx(ctx, r.db).Create(budget).Error
}

func (r *Budget) Save(ctx context.Context, budget *model.Budget) error {
	result := GetTx(ctx, r.db).Model(budget).Where("id = ?", budget.ID).Select("*").Omit("id", "created_at").Updates(budget)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}

func (r *Budget) GetByID(ctx context.Context, id int64) (*model.Budget, error) {
	return r.get(GetTx(ctx, r.db), id)
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Budget) GetByIDForUpdate(ctx context.Context, id int64) (*model.Budget, error) {
	return r.get(GetTx(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *Budget) get(db *gorm.DB, id int64) (*model.Budget, error) {
	var budget model.Budget

	err := db.Where("id = ?", id).First(&budget).Error
	if err == nil {
		return &budget, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBudgetNotFound
	}

	return nil, err
}

func (r *Budget) List(ctx context.Context, filter BudgetFilter) ([]model.Budget, error) {
	var budgets []model.Budget

	query := GetTx(ctx, r.db).Model(&model.Budget{})
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.BudgetType != "" {
		query = query.Where("budget_type = ?", filter.BudgetType)
	}
	if filter.Year > 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("year DESC").Order("department ASC").Order("id ASC").Find(&budgets).Error; err != nil {
		return nil, err
	}

	return budgets, nil
}

func (r *Budget) Delete(ctx context.Context, id int64) error {
	result := GetTx(ctx, r.db).Delete(&model.Budget{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}
