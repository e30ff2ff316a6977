package model

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the lifecycle operations and rota stores.
var (
	ErrRotaNotFound     = errors.New("rota not found")
	ErrRotaExists       = errors.New("a rota already exists for that week")
	ErrRotaPublished    = errors.New("rota is published")
	ErrRotaNotPublished = errors.New("rota is not published")
	ErrRotaConflict     = errors.New("rota was modified concurrently")
	ErrShiftNotFound    = errors.New("shift not found")
	ErrStaffNotFound    = errors.New("staff member not found")
)

// ConfigurationError reports a malformed shift or rota construction, such as
// requirement counts that do not sum to the declared headcount.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// DuplicateAssignmentError reports an attempt to assign a staff member to a
// shift they are already on.
type DuplicateAssignmentError struct {
	ShiftID string
	StaffID string
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("staff %s is already assigned to shift %s", e.StaffID, e.ShiftID)
}
