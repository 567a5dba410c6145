package repository

import (
	"context"
	"errors"

	"github.com/Behyna/university-finance/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSalaryNotFound = errors.New("SALARY_NOT_FOUND")
var ErrSalaryExists = errors.New("SALARY_EXISTS")

type SalaryFilter struct {
	TeacherID *int64
	Year      int
	Month     int
	Status    model.SalaryStatus
}

type SalaryRepository interface {
	Create(ctx context.Context, salary *model.Salary) error
	Save(ctx context.Context, salary *model.Salary) error
	GetByID(ctx context.Context, id int64) (*model.Salary, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Salary, error)
	List(ctx context.Context, filter SalaryFilter) ([]model.Salary, error)
}

type Salary struct {
	db *gorm.DB
}

func NewSalaryRepository(db *gorm.DB) SalaryRepository {
	return &Salary{db: db}
}

func (r *Salary) Create(ctx context.Context, salary *model.Salary) error {
	err := GetTx(ctx, r.db).Create(salary).Error
	if err == nil {
		return nil
	}

	if isDuplicateKey(err) {
		return ErrSalaryExists
	}

	return err
}

func (r *Salary) Save(ctx context.Context, salary *model.Salary) error {
	result := GetTx(ctx, r.db).Model(salary).Where("id = ?", salary.ID).Select("*").Omit("id", "created_at").Updates(salary)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return ErrSalaryExists
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSalaryNotFound
	}

	return nil
}

func (r *Salary) GetByID(ctx context.Context, id int64) (*model.Salary, error) {
	return r.get(GetTx(ctx, r.db), id)
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Salary) GetByIDForUpdate(ctx context.Context, id int64) (*model.Salary, error) {
	return r.get(GetTx(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *Salary) get(db *gorm.DB, id int64) (*model.Salary, error) {
	var salary model.Salary

	err := db.Where("id = ?", id).First(&salary).Error
	if err == nil {
		return &salary, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSalaryNotFound
	}

	return nil, err
}

func (r *Salary) List(ctx context.Context, filter SalaryFilter) ([]model.Salary, error) {
	var salaries []model.Salary

	query := GetTx(ctx, r.db).Model(&model.Salary{})
	if filter.TeacherID != nil {
		query = query.Where("teacher_id = ?", *filter.TeacherID)
	}
	if filter.Year > 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.Month > 0 {
		query = query.Where("month = ?", filter.Month)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Order("year DESC").Order("month DESC").Order("teacher_id ASC").Find(&salaries).Error; err != nil {
		return nil, err
	}

	return salaries, nil
}
