package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialSettingDecode(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		v, err := FinancialSetting{Key: "currency", Value: "TND", Type: SettingTypeString}.Decode()
		require.NoError(t, err)

		s, err := v.AsString()
		require.NoError(t, err)
		assert.Equal(t, "TND", s)

		_, err = v.AsNumber()
		assert.ErrorIs(t, err, ErrSettingTypeMismatch)
	})

	t.Run("number", func(t *testing.T) {
		v, err := FinancialSetting{Key: "late_fee", Value: " 12.500 ", Type: SettingTypeNumber}.Decode()
		require.NoError(t, err)

		n, err := v.AsNumber()
		require.NoError(t, err)
		assert.True(t, n.Equal(dec("12.5")))
	})

	t.Run("boolean accepts known spellings", func(t *testing.T) {
		for _, raw := range []string{"true", "1", "yes", "oui", "TRUE"} {
			v, err := FinancialSetting{Key: "k", Value: raw, Type: SettingTypeBoolean}.Decode()
			require.NoError(t, err, raw)
			b, _ := v.AsBool()
			assert.True(t, b, raw)
		}

		v, err := FinancialSetting{Key: "k", Value: "no", Type: SettingTypeBoolean}.Decode()
		require.NoError(t, err)
		b, _ := v.AsBool()
		assert.False(t, b)
	})

	t.Run("json", func(t *testing.T) {
		v, err := FinancialSetting{Key: "k", Value: `{"a":1}`, Type: SettingTypeJSON}.Decode()
		require.NoError(t, err)

		raw, err := v.AsJSON()
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(`{"a":1}`), raw)
	})

	t.Run("date", func(t *testing.T) {
		v, err := FinancialSetting{Key: "k", Value: "2025-09-01", Type: SettingTypeDate}.Decode()
		require.NoError(t, err)

		d, err := v.AsDate()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), d)
		assert.Equal(t, "2025-09-01", v.Interface())
	})

	invalid := []FinancialSetting{
		{Key: "k", Value: "abc", Type: SettingTypeNumber},
		{Key: "k", Value: "maybe", Type: SettingTypeBoolean},
		{Key: "k", Value: "{", Type: SettingTypeJSON},
		{Key: "k", Value: "01/09/2025", Type: SettingTypeDate},
		{Key: "k", Value: "x", Type: "binary"},
	}

	for _, setting := range invalid {
		t.Run("rejects "+string(setting.Type)+" "+setting.Value, func(t *testing.T) {
			err := ValidateSetting(setting)
			var validationErr ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	t.Run("requires key", func(t *testing.T) {
		err := ValidateSetting(FinancialSetting{Value: "x", Type: SettingTypeString})
		assert.Error(t, err)
	})
}
