package service

import (
	"context"
	"strconv"

	"github.com/pveldman/studioadmin/internal/domain/repository"
	"github.com/pveldman/studioadmin/pkg/apperror"
)

// Business configuration keys in the settings store.
const (
	KeyCompanyName  = "company_name"
	KeyAdminName    = "admin_name"
	KeyBaseLanguage = "base_lang"
	KeyVATRate      = "vat_rate"
)

// Defaults applied when a key has never been written.
const (
	DefaultLanguage = "nl"
	DefaultVATRate  = 21.0
)

// SettingsService owns the flat key-value business configuration: company
// identity, base language and the VAT rate. Every write commits immediately.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Settings is the typed view over the key-value store.
type Settings struct {
	CompanyName  string  `json:"company_name"`
	AdminName    string  `json:"admin_name"`
	BaseLanguage string  `json:"base_lang"`
	VATRate      float64 `json:"vat_rate"`
}

// Get reads all business settings, applying defaults for unset keys.
func (s *SettingsService) Get(ctx context.Context) (*Settings, error) {
	company, _, err := s.settingsRepo.Get(ctx, KeyCompanyName)
	if err != nil {
		return nil, err
	}
	admin, _, err := s.settingsRepo.Get(ctx, KeyAdminName)
	if err != nil {
		return nil, err
	}
	lang, ok, err := s.settingsRepo.Get(ctx, KeyBaseLanguage)
	if err != nil {
		return nil, err
	}
	if !ok || lang == "" {
		lang = DefaultLanguage
	}
	rate, err := s.VATRate(ctx)
	if err != nil {
		return nil, err
	}

	return &Settings{
		CompanyName:  company,
		AdminName:    admin,
		BaseLanguage: lang,
		VATRate:      rate,
	}, nil
}

// VATRate returns the currently configured VAT rate percentage.
func (s *SettingsService) VATRate(ctx context.Context) (float64, error) {
	value, ok, err := s.settingsRepo.Get(ctx, KeyVATRate)
	if err != nil {
		return 0, err
	}
	if !ok || value == "" {
		return DefaultVATRate, nil
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return DefaultVATRate, nil
	}
	return rate, nil
}

// UpdateSettingsInput represents a partial settings update; nil fields are
// left untouched.
type UpdateSettingsInput struct {
	CompanyName  *string
	AdminName    *string
	BaseLanguage *string
	VATRate      *float64
}

// Update validates and writes the provided settings. An out-of-range VAT rate
// is rejected, never clamped, and nothing is written for that key.
func (s *SettingsService) Update(ctx context.Context, input *UpdateSettingsInput) (*Settings, error) {
	if input.VATRate != nil {
		if *input.VATRate < 0 || *input.VATRate > 100 {
			return nil, apperror.NewBadRequestError("VAT rate must lie between 0 and 100")
		}
	}

	if input.CompanyName != nil {
		if err := s.settingsRepo.Set(ctx, KeyCompanyName, *input.CompanyName); err != nil {
			return nil, err
		}
	}
	if input.AdminName != nil {
		if err := s.settingsRepo.Set(ctx, KeyAdminName, *input.AdminName); err != nil {
			return nil, err
		}
	}
	if input.BaseLanguage != nil {
		if err := s.settingsRepo.Set(ctx, KeyBaseLanguage, *input.BaseLanguage); err != nil {
			return nil, err
		}
	}
	if input.VATRate != nil {
		value := strconv.FormatFloat(*input.VATRate, 'f', -1, 64)
		if err := s.settingsRepo.Set(ctx, KeyVATRate, value); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx)
}
