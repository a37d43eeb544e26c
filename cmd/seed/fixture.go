package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
)

// fixture datos iniciales de un salón. Los montos van como texto para no perder precisión.
type fixture struct {
	Salon struct {
		Name     string `yaml:"name"`
		Document string `yaml:"document"`
		Phone    string `yaml:"phone"`
		Email    string `yaml:"email"`
	} `yaml:"salon"`
	Owner struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"owner"`
	PaymentMethods []struct {
		Name         string `yaml:"name"`
		Active       bool   `yaml:"active"`
		Distribution string `yaml:"distribution"`
		TaxRate      string `yaml:"tax_rate"`
	} `yaml:"payment_methods"`
	Settings struct {
		DesiredProfit     string `yaml:"lucro_desejado"`
		IndirectExpenses  string `yaml:"despesas_indiretas"`
		TaxRate           string `yaml:"impostos_rate"`
		MobilizedValue    string `yaml:"valor_mobilizado"`
		TotalToDepreciate string `yaml:"total_depreciar"`
		TeamSize          int    `yaml:"team_size"`
		Weekdays          []int  `yaml:"weekdays"` // 0 = domingo
		Holidays          []struct {
			Date string `yaml:"date"`
			Name string `yaml:"name"`
		} `yaml:"holidays"`
	} `yaml:"settings"`
	Goal struct {
		Type   string `yaml:"type"`
		Target string `yaml:"target"`
	} `yaml:"goal"`
	Tiers []struct {
		Name      string `yaml:"name"`
		Threshold string `yaml:"threshold"`
		Icon      string `yaml:"icon"`
	} `yaml:"tiers"`
}

// seedData fixture ya convertido a las entradas de los casos de uso.
type seedData struct {
	Salon          dto.CreateSalonRequest
	Owner          dto.RegisterRequest // SalonID se completa después del alta
	PaymentMethods []dto.PaymentMethodRequest
	Settings       dto.SettingsRequest
	Goal           dto.GoalRequest
	Tiers          dto.TierTableRequest
}

func loadFixture(path string) (*seedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer fixture: %w", err)
	}
	return parseFixture(raw)
}

func parseFixture(raw []byte) (*seedData, error) {
	var f fixture
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if f.Salon.Name == "" || f.Salon.Document == "" {
		return nil, fmt.Errorf("salon.name y salon.document son requeridos")
	}

	var firstErr error
	dec := func(field, s string) decimal.Decimal {
		if s == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %q no es un número", field, s)
		}
		return d
	}

	out := &seedData{
		Salon: dto.CreateSalonRequest{
			Name:     f.Salon.Name,
			Document: f.Salon.Document,
			Phone:    f.Salon.Phone,
			Email:    f.Salon.Email,
		},
		Owner: dto.RegisterRequest{
			Email:    f.Owner.Email,
			Password: f.Owner.Password,
			Name:     f.Owner.Name,
			Role:     "owner",
		},
		Settings: dto.SettingsRequest{
			DesiredProfitPct:   dec("settings.lucro_desejado", f.Settings.DesiredProfit),
			IndirectExpensePct: dec("settings.despesas_indiretas", f.Settings.IndirectExpenses),
			TaxRatePct:         dec("settings.impostos_rate", f.Settings.TaxRate),
			MobilizedValue:     dec("settings.valor_mobilizado", f.Settings.MobilizedValue),
			TotalToDepreciate:  dec("settings.total_depreciar", f.Settings.TotalToDepreciate),
			TeamSize:           f.Settings.TeamSize,
			Holidays:           []dto.HolidayDTO{},
		},
		Goal: dto.GoalRequest{
			Type:   f.Goal.Type,
			Target: dec("goal.target", f.Goal.Target),
		},
	}
	for _, wd := range f.Settings.Weekdays {
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("settings.weekdays: %d fuera de rango 0-6", wd)
		}
		out.Settings.Weekdays[wd] = true
	}
	for _, h := range f.Settings.Holidays {
		out.Settings.Holidays = append(out.Settings.Holidays, dto.HolidayDTO{Date: h.Date, Name: h.Name})
	}
	for _, pm := range f.PaymentMethods {
		out.PaymentMethods = append(out.PaymentMethods, dto.PaymentMethodRequest{
			Name:            pm.Name,
			IsActive:        pm.Active,
			DistributionPct: dec("payment_methods."+pm.Name+".distribution", pm.Distribution),
			TaxRate:         dec("payment_methods."+pm.Name+".tax_rate", pm.TaxRate),
		})
	}
	for _, t := range f.Tiers {
		out.Tiers.Tiers = append(out.Tiers.Tiers, dto.TierDTO{
			Name:         t.Name,
			MinThreshold: dec("tiers."+t.Name+".threshold", t.Threshold),
			Icon:         t.Icon,
		})
	}
	if out.Goal.Type == "" {
		out.Goal.Type = "faturamento"
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
