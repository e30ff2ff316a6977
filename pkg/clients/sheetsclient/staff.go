package sheetsclient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// Columns the staff sheet must carry
var requiredStaffFields = []string{
	"Staff ID",
	"First name",
	"Last name",
	"Status",
	"Roles",
	"Contracted hours",
}

// Columns the staff sheet may carry; missing ones leave the zero value
var optionalStaffFields = []string{
	"Preferred slots",
	"Preferred sites",
	"Unavailable dates",
	"Flexible hours",
	"Nights only",
	"Max consecutive days",
	"Min rest hours",
	"Attendance rate",
	"Punctuality rate",
	"Completion rate",
	"Feedback score",
}

// ListStaff retrieves and parses the care team from the configured spreadsheet
func (c *Client) ListStaff(cfg *config.Config) ([]model.Staff, error) {
	values, err := c.GetValues(cfg.StaffSheetID, cfg.StaffTab)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff data: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("staff sheet is empty")
	}

	staff, err := parseStaff(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse staff sheet: %w", err)
	}

	return staff, nil
}

// parseStaff converts raw spreadsheet data into Staff records
func parseStaff(raw [][]interface{}) ([]model.Staff, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	// Build field index map from header row
	fieldIndexes := make(map[string]int)
	headerRow := raw[0]

	findColumn := func(field string) int {
		for i, cell := range headerRow {
			if cellStr, ok := cell.(string); ok && cellStr == field {
				return i
			}
		}
		return -1
	}

	for _, field := range requiredStaffFields {
		index := findColumn(field)
		if index == -1 {
			return nil, fmt.Errorf("missing required field in header: %s", field)
		}
		fieldIndexes[field] = index
	}
	for _, field := range optionalStaffFields {
		if index := findColumn(field); index != -1 {
			fieldIndexes[field] = index
		}
	}

	// Helper to get field value from row
	getField := func(field string, row []interface{}) string {
		index, ok := fieldIndexes[field]
		if !ok {
			return ""
		}
		if index >= len(row) {
			return ""
		}
		if str, ok := row[index].(string); ok {
			return strings.TrimSpace(str)
		}
		return ""
	}

	// Parse data rows
	staff := make([]model.Staff, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		firstName := getField("First name", row)
		// Skip empty rows (rows with no first name)
		if firstName == "" {
			continue
		}

		roles, err := parseRoles(getField("Roles", row))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		contracted, err := parseRate(getField("Contracted hours", row))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid contracted hours: %w", i+1, err)
		}

		member := model.Staff{
			ID:              getField("Staff ID", row),
			FirstName:       firstName,
			LastName:        getField("Last name", row),
			Status:          getField("Status", row),
			Roles:           roles,
			ContractedHours: contracted,
		}

		member.Preferences, err = parsePreferences(getField, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		member.Metrics, err = parseMetrics(getField, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		staff = append(staff, member)
	}

	return staff, nil
}

func parsePreferences(getField func(string, []interface{}) string, row []interface{}) (model.Preferences, error) {
	prefs := model.Preferences{
		PreferredSites:   splitList(getField("Preferred sites", row)),
		UnavailableDates: splitList(getField("Unavailable dates", row)),
		FlexibleHours:    parseFlag(getField("Flexible hours", row)),
		NightsOnly:       parseFlag(getField("Nights only", row)),
	}

	for _, name := range splitList(getField("Preferred slots", row)) {
		slot := model.Slot(name)
		if !slot.IsValid() {
			return model.Preferences{}, fmt.Errorf("unknown slot in preferences: %s", name)
		}
		prefs.PreferredSlots = append(prefs.PreferredSlots, slot)
	}

	if raw := getField("Max consecutive days", row); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return model.Preferences{}, fmt.Errorf("invalid max consecutive days: %w", err)
		}
		prefs.MaxConsecutiveDays = days
	}

	if raw := getField("Min rest hours", row); raw != "" {
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Preferences{}, fmt.Errorf("invalid min rest hours: %w", err)
		}
		prefs.MinRestHours = hours
	}

	return prefs, nil
}

func parseMetrics(getField func(string, []interface{}) string, row []interface{}) (model.PerformanceMetrics, error) {
	var metrics model.PerformanceMetrics
	fields := []struct {
		column string
		target *float64
	}{
		{"Attendance rate", &metrics.AttendanceRate},
		{"Punctuality rate", &metrics.PunctualityRate},
		{"Completion rate", &metrics.CompletionRate},
		{"Feedback score", &metrics.FeedbackScore},
	}

	for _, field := range fields {
		raw := getField(field.column, row)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.PerformanceMetrics{}, fmt.Errorf("invalid %s: %w", strings.ToLower(field.column), err)
		}
		*field.target = value
	}

	return metrics, nil
}

func parseRoles(raw string) ([]model.Role, error) {
	var roles []model.Role
	for _, name := range splitList(raw) {
		role := model.Role(name)
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role: %s", name)
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func parseRate(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// parseFlag reads the loose yes/no values people type into spreadsheets
func parseFlag(raw string) bool {
	switch strings.ToLower(raw) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}

// splitList splits a comma-separated cell into trimmed entries
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var entries []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}
