package mocks

import (
	"context"

	"github.com/Behyna/university-finance/internal/model"
	"github.com/stretchr/testify/mock"
)

type FinancialSettingRepository struct {
	mock.Mock
}

func (m *FinancialSettingRepository) GetByKey(ctx context.Context, key string) (*model.FinancialSetting, error) {
	args := m.Called(ctx, key)
	setting, _ := args.Get(0).(*model.FinancialSetting)
	return setting, args.Error(1)
}

func (m *FinancialSettingRepository) List(ctx context.Context) ([]model.FinancialSetting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.FinancialSetting), args.Error(1)
}

func (m *FinancialSettingRepository) Upsert(ctx context.Context, setting *model.FinancialSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *FinancialSettingRepository) DeleteByKey(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
