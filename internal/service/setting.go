package service

import (
	"context"

	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/repository"
	"go.uber.org/zap"
)

type SettingService interface {
	Get(ctx context.Context, key string) (SettingResult, error)
	List(ctx context.Context) ([]SettingResult, error)
	Upsert(ctx context.Context, cmd UpsertSettingCommand) (SettingResult, error)
	Delete(ctx context.Context, key string) error
}

type settingService struct {
	settingRepo repository.FinancialSettingRepository
	logger      *zap.Logger
}

func NewSettingService(settingRepo repository.FinancialSettingRepository, logger *zap.Logger) SettingService {
	return &settingService{settingRepo: settingRepo, logger: logger}
}

func (s *settingService) Get(ctx context.Context, key string) (SettingResult, error) {
	setting, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		return SettingResult{}, toServiceError(err)
	}

	return s.decode(*setting)
}

func (s *settingService) List(ctx context.Context) ([]SettingResult, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list settings", zap.Error(err))
		return nil, toServiceError(err)
	}

	results := make([]SettingResult, 0, len(settings))
	for _, setting := range settings {
		result, err := s.decode(setting)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *settingService) Upsert(ctx context.Context, cmd UpsertSettingCommand) (SettingResult, error) {
	setting := model.FinancialSetting{
		Key:         cmd.Key,
		Value:       cmd.Value,
		Type:        cmd.Type,
		Description: cmd.Description,
	}
	if setting.Type == "" {
		setting.Type = model.SettingTypeString
	}

	if err := model.ValidateSetting(setting); err != nil {
		s.logger.Warn("Rejected setting", zap.String("key", setting.Key), zap.Error(err))
		return SettingResult{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	if err := s.settingRepo.Upsert(ctx, &setting); err != nil {
		s.logger.Error("Failed to save setting", zap.String("key", setting.Key), zap.Error(err))
		return SettingResult{}, toServiceError(err)
	}

	s.logger.Info("Setting saved", zap.String("key", setting.Key), zap.String("type", string(setting.Type)))

	return s.decode(setting)
}

func (s *settingService) Delete(ctx context.Context, key string) error {
	if err := s.settingRepo.DeleteByKey(ctx, key); err != nil {
		return toServiceError(err)
	}

	s.logger.Info("Setting deleted", zap.String("key", key))

	return nil
}

// decode only fails for rows written behind the service's back.
func (s *settingService) decode(setting model.FinancialSetting) (SettingResult, error) {
	value, err := setting.Decode()
	if err != nil {
		s.logger.Error("Stored setting does not match its type",
			zap.String("key", setting.Key),
			zap.String("type", string(setting.Type)),
			zap.Error(err))
		return SettingResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return SettingResult{Setting: setting, Value: value}, nil
}
