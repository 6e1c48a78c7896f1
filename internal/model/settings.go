package model

const (
	StorageLocal = "local"
	StorageCloud = "cloud"
)

// RatePreset is a named hourly rate.
type RatePreset struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

type Settings struct {
	WeekStartDay  string       `json:"weekStartDay"`
	StandardRates []RatePreset `json:"standardRates"`
	OvertimeRates []RatePreset `json:"overtimeRates"`
	EnableTax     bool         `json:"enableTax"`
	TaxRate       float64      `json:"taxRate"`
	EnableNI      bool         `json:"enableNI"`
	Currency      string       `json:"currency"`
	WeeklyGoal    float64      `json:"weeklyGoal"`
	MonthlyGoal   float64      `json:"monthlyGoal"`
	DarkMode      bool         `json:"darkMode"`
	StorageMode   string       `json:"storageMode"`
}

// DefaultSettings is what a driver starts with before changing anything.
func DefaultSettings() Settings {
	return Settings{
		WeekStartDay:  "monday",
		StandardRates: []RatePreset{{Name: "Standard", Rate: 12.50}},
		OvertimeRates: []RatePreset{{Name: "Overtime", Rate: 18.75}},
		EnableTax:     false,
		TaxRate:       0.20,
		EnableNI:      false,
		Currency:      "GBP",
		StorageMode:   StorageLocal,
	}
}

// StandardRate returns the first standard preset, or 0 when none exist.
func (s Settings) StandardRate() float64 {
	if len(s.StandardRates) == 0 {
		return 0
	}
	return s.StandardRates[0].Rate
}

// OvertimeRate returns the first overtime preset, or 0 when none exist.
func (s Settings) OvertimeRate() float64 {
	if len(s.OvertimeRates) == 0 {
		return 0
	}
	return s.OvertimeRates[0].Rate
}
