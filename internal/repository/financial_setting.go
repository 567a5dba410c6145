package repository

import (
	"context"
	"errors"

	"github.com/Behyna/university-finance/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSettingNotFound = errors.New("SETTING_NOT_FOUND")

type FinancialSettingRepository interface {
	GetByKey(ctx context.Context, key string) (*model.FinancialSetting, error)
	List(ctx context.Context) ([]model.FinancialSetting, error)
	Upsert(ctx context.Context, setting *model.FinancialSetting) error
	DeleteByKey(ctx context.Context, key string) error
}

type FinancialSetting struct {
	db *gorm.DB
}

func NewFinancialSettingRepository(db *gorm.DB) FinancialSettingRepository {
	return &FinancialSetting{db: db}
}

func (r *FinancialSetting) GetByKey(ctx context.Context, key string) (*model.FinancialSetting, error) {
	var setting model.FinancialSetting

	err := GetTx(ctx, r.db).Where("setting_key = ?", key).First(&setting).Error
	if err == nil {
		return &setting, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSettingNotFound
	}

	return nil, err
}

func (r *FinancialSetting) List(ctx context.Context) ([]model.FinancialSetting, error) {
	var settings []model.FinancialSetting

	if err := GetTx(ctx, r.db).Order("setting_key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

func (r *FinancialSetting) Upsert(ctx context.Context, setting *model.FinancialSetting) error {
	return GetTx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "setting_type", "description", "updated_at"}),
	}).Create(setting).Error
}

func (r *FinancialSetting) DeleteByKey(ctx context.Context, key string) error {
	result := GetTx(ctx, r.db).Where("setting_key = ?", key).Delete(&model.FinancialSetting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
