package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Behyna/university-finance/internal/api/v1"
	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func settingResult(t *testing.T, s model.FinancialSetting) service.SettingResult {
	t.Helper()

	v, err := s.Decode()
	require.NoError(t, err)
	return service.SettingResult{Setting: s, Value: v}
}

func TestHandler_UpsertSetting(t *testing.T) {
	t.Run("stores a typed value", func(t *testing.T) {
		env := newTestEnv(t)

		stored := model.FinancialSetting{Key: "late_fee_rate", Value: "2.5", Type: model.SettingTypeNumber}
		env.settings.On("Upsert", mock.Anything, service.UpsertSettingCommand{
			Key:   "late_fee_rate",
			Value: "2.5",
			Type:  model.SettingTypeNumber,
		}).Return(settingResult(t, stored), nil).Once()

		status, res := env.do(t, http.MethodPut, "settings/late_fee_rate", `{"value":"2.5","type":"number"}`)

		assert.Equal(t, http.StatusOK, status)

		out := decodeResult[v1.SettingResponse](t, res)
		assert.Equal(t, "2.5", out.Value)
		assert.Equal(t, "number", out.Type)
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		env := newTestEnv(t)

		status, res := env.do(t, http.MethodPut, "settings/k", `{"value":"x","type":"binary"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, res.Code)
	})

	t.Run("surfaces value errors", func(t *testing.T) {
		env := newTestEnv(t)

		env.settings.On("Upsert", mock.Anything, mock.Anything).Return(service.SettingResult{},
			service.NewServiceError(constants.ErrCodeValidationFailed, model.NewValidationError("value", "not a number"))).Once()

		status, res := env.do(t, http.MethodPut, "settings/k", `{"value":"abc","type":"number"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Contains(t, res.Error, "not a number")
	})
}

func TestHandler_GetSetting(t *testing.T) {
	env := newTestEnv(t)

	stored := model.FinancialSetting{Key: "fiscal_year_start", Value: "2025-09-01", Type: model.SettingTypeDate}
	env.settings.On("Get", mock.Anything, "fiscal_year_start").Return(settingResult(t, stored), nil).Once()
	env.settings.On("Get", mock.Anything, "missing").Return(service.SettingResult{},
		service.NewServiceError(constants.ErrCodeSettingNotFound, assert.AnError)).Once()

	status, res := env.do(t, http.MethodGet, "settings/fiscal_year_start", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2025-09-01", decodeResult[v1.SettingResponse](t, res).Value)

	status, res = env.do(t, http.MethodGet, "settings/missing", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, constants.ErrCodeSettingNotFound, res.Code)
}

func TestHandler_ListAndDeleteSettings(t *testing.T) {
	env := newTestEnv(t)

	stored := model.FinancialSetting{Key: "auto_reminders", Value: "true", Type: model.SettingTypeBoolean}
	env.settings.On("List", mock.Anything).Return([]service.SettingResult{settingResult(t, stored)}, nil).Once()
	env.settings.On("Delete", mock.Anything, "auto_reminders").Return(nil).Once()

	status, res := env.do(t, http.MethodGet, "settings", "")
	assert.Equal(t, http.StatusOK, status)

	list := decodeResult[[]v1.SettingResponse](t, res)
	require.Len(t, list, 1)
	assert.Equal(t, true, list[0].Value)

	status, _ = env.do(t, http.MethodDelete, "settings/auto_reminders", "")
	assert.Equal(t, http.StatusOK, status)
}
