package v1

import (
	"net/http"
	"strings"

	"github.com/Behyna/university-finance/internal/constants"
	"github.com/Behyna/university-finance/internal/model"
	"github.com/Behyna/university-finance/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const maxSettingKeyLength = 100

func settingKey(c *fiber.Ctx) (string, error) {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" || len(key) > maxSettingKeyLength {
		return "", service.NewServiceError(constants.ErrCodeValidationFailed,
			model.NewValidationError("key", "setting key must be 1 to 100 characters"))
	}
	return key, nil
}

func (h *Handler) ListSettings(c *fiber.Ctx) error {
	settings, err := h.settings.List(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to list settings", zap.Error(err))
		return err
	}

	res := make([]SettingResponse, 0, len(settings))
	for _, s := range settings {
		res = append(res, newSettingResponse(s))
	}

	return h.respond(c, http.StatusOK, constants.SettingsListed, res)
}

func (h *Handler) GetSetting(c *fiber.Ctx) error {
	key, err := settingKey(c)
	if err != nil {
		return err
	}

	setting, err := h.settings.Get(c.UserContext(), key)
	if err != nil {
		return err
	}

	return h.respond(c, http.StatusOK, constants.SettingRetrieved, newSettingResponse(setting))
}

func (h *Handler) UpsertSetting(c *fiber.Ctx) error {
	key, err := settingKey(c)
	if err != nil {
		return err
	}

	var request UpsertSettingRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return h.rejected(c, responseError, request)
	}

	setting, err := h.settings.Upsert(c.UserContext(), service.UpsertSettingCommand{
		Key:         key,
		Value:       request.Value,
		Type:        model.SettingType(request.Type),
		Description: request.Description,
	})
	if err != nil {
		h.logger.Error("Failed to save setting", zap.String("key", key), zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusOK, constants.SettingSaved, newSettingResponse(setting))
}

func (h *Handler) DeleteSetting(c *fiber.Ctx) error {
	key, err := settingKey(c)
	if err != nil {
		return err
	}

	if err := h.settings.Delete(c.UserContext(), key); err != nil {
		h.logger.Error("Failed to delete setting", zap.String("key", key), zap.Error(err))
		return err
	}

	return h.respond(c, http.StatusOK, constants.SettingDeleted, nil)
}
