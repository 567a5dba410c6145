package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type SettingType string

const (
	SettingTypeString  SettingType = "string"
	SettingTypeNumber  SettingType = "number"
	SettingTypeBoolean SettingType = "boolean"
	SettingTypeJSON    SettingType = "json"
	SettingTypeDate    SettingType = "date"
)

const SettingDateLayout = "2006-01-02"

func (t SettingType) Valid() bool {
	switch t {
	case SettingTypeString, SettingTypeNumber, SettingTypeBoolean, SettingTypeJSON, SettingTypeDate:
		return true
	}
	return false
}

type FinancialSetting struct {
	ID          int64       `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Key         string      `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex"`
	Value       string      `gorm:"column:value;type:text;not null"`
	Type        SettingType `gorm:"column:setting_type;type:varchar(20);not null;default:'string'"`
	Description string      `gorm:"column:description;type:text"`
	CreatedAt   time.Time   `gorm:"column:created_at"`
	UpdatedAt   time.Time   `gorm:"column:updated_at"`
}

func (FinancialSetting) TableName() string {
	return "financial_settings"
}

// SettingValue is a decoded setting. Exactly one accessor matches Type.
type SettingValue struct {
	Type    SettingType
	str     string
	number  decimal.Decimal
	boolean bool
	raw     json.RawMessage
	date    time.Time
}

var ErrSettingTypeMismatch = errors.New("SETTING_TYPE_MISMATCH")

func (v SettingValue) AsString() (string, error) {
	if v.Type != SettingTypeString {
		return "", ErrSettingTypeMismatch
	}
	return v.str, nil
}

func (v SettingValue) AsNumber() (decimal.Decimal, error) {
	if v.Type != SettingTypeNumber {
		return decimal.Zero, ErrSettingTypeMismatch
	}
	return v.number, nil
}

func (v SettingValue) AsBool() (bool, error) {
	if v.Type != SettingTypeBoolean {
		return false, ErrSettingTypeMismatch
	}
	return v.boolean, nil
}

func (v SettingValue) AsJSON() (json.RawMessage, error) {
	if v.Type != SettingTypeJSON {
		return nil, ErrSettingTypeMismatch
	}
	return v.raw, nil
}

func (v SettingValue) AsDate() (time.Time, error) {
	if v.Type != SettingTypeDate {
		return time.Time{}, ErrSettingTypeMismatch
	}
	return v.date, nil
}

// Interface returns the decoded value as a plain Go value for serialization.
func (v SettingValue) Interface() any {
	switch v.Type {
	case SettingTypeNumber:
		return v.number
	case SettingTypeBoolean:
		return v.boolean
	case SettingTypeJSON:
		return v.raw
	case SettingTypeDate:
		return v.date.Format(SettingDateLayout)
	default:
		return v.str
	}
}

// Decode parses the stored value according to its type tag.
func (s FinancialSetting) Decode() (SettingValue, error) {
	v := SettingValue{Type: s.Type}

	switch s.Type {
	case SettingTypeString:
		v.str = s.Value
	case SettingTypeNumber:
		n, err := decimal.NewFromString(strings.TrimSpace(s.Value))
		if err != nil {
			return v, NewValidationError("value", fmt.Sprintf("%q is not a number", s.Value))
		}
		v.number = n
	case SettingTypeBoolean:
		b, err := parseSettingBool(s.Value)
		if err != nil {
			return v, err
		}
		v.boolean = b
	case SettingTypeJSON:
		if !json.Valid([]byte(s.Value)) {
			return v, NewValidationError("value", "value is not valid JSON")
		}
		v.raw = json.RawMessage(s.Value)
	case SettingTypeDate:
		d, err := time.Parse(SettingDateLayout, strings.TrimSpace(s.Value))
		if err != nil {
			return v, NewValidationError("value", fmt.Sprintf("%q is not a YYYY-MM-DD date", s.Value))
		}
		v.date = d
	default:
		return v, NewValidationError("setting_type", fmt.Sprintf("unknown setting type %q", s.Type))
	}

	return v, nil
}

func parseSettingBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "oui":
		return true, nil
	case "false", "0", "no", "non":
		return false, nil
	}
	return false, NewValidationError("value", fmt.Sprintf("%q is not a boolean", raw))
}

func ValidateSetting(s FinancialSetting) error {
	if strings.TrimSpace(s.Key) == "" {
		return NewValidationError("key", "key is required")
	}

	_, err := s.Decode()
	return err
}
