package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// RoleRequirement is one role's headcount on a templated shift
type RoleRequirement struct {
	Role  string `yaml:"role" validate:"required,oneof='Shift Leader' 'Driver' 'Care Staff'"`
	Count int    `yaml:"count" validate:"required,min=1"`
}

// ShiftTemplate describes a recurring shift to lay out when a week is created.
// The rrule selects the days within the week the shift runs on.
type ShiftTemplate struct {
	RRule        string            `yaml:"rrule" validate:"required"`
	Slot         string            `yaml:"slot" validate:"required,oneof=Morning Evening Night"`
	Requirements []RoleRequirement `yaml:"requirements" validate:"required,min=1,dive"`
}

// SchedulingPolicy holds the home's hard staffing rules
type SchedulingPolicy struct {
	// MaxConsecutiveDays is the longest run of days anyone may work
	MaxConsecutiveDays int `yaml:"maxConsecutiveDays" validate:"required,min=1,max=14"`

	// MinRestHours is the smallest gap allowed between two shifts
	MinRestHours float64 `yaml:"minRestHours" validate:"required,min=1"`

	// MaxWeeklyHours caps hours per person per week; 0 means no cap
	MaxWeeklyHours float64 `yaml:"maxWeeklyHours,omitempty" validate:"min=0"`
}

// Config represents the application configuration
type Config struct {
	Site           string           `yaml:"site" validate:"required"`
	WeekStartDay   string           `yaml:"weekStartDay,omitempty" validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	DatabaseURL    string           `yaml:"databaseURL" validate:"required"`
	StaffSheetID   string           `yaml:"staffSheetID" validate:"required"`
	StaffTab       string           `yaml:"staffTab" validate:"required"`
	Scheduling     SchedulingPolicy `yaml:"scheduling"`
	ShiftTemplates []ShiftTemplate  `yaml:"shiftTemplates,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// WeekStart returns the configured first day of the rota week. It defaults
// to Monday when the config leaves the day unset.
func (c *Config) WeekStart() time.Weekday {
	switch c.WeekStartDay {
	case "Sunday":
		return time.Sunday
	case "Tuesday":
		return time.Tuesday
	case "Wednesday":
		return time.Wednesday
	case "Thursday":
		return time.Thursday
	case "Friday":
		return time.Friday
	case "Saturday":
		return time.Saturday
	default:
		return time.Monday
	}
}

// Load loads and validates the configuration from care_rota_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each shift template
	for i, template := range cfg.ShiftTemplates {
		if _, err := rrule.StrToRRule(template.RRule); err != nil {
			return fmt.Errorf("invalid rrule in shiftTemplates[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for care_rota_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "care_rota_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
