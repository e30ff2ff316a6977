package model

import "time"

// Slot is a named time-of-day work period within a shift day.
type Slot string

const (
	SlotMorning Slot = "Morning"
	SlotEvening Slot = "Evening"
	SlotNight   Slot = "Night"
)

// ShiftType classifies a slot as day or night work.
type ShiftType string

const (
	ShiftTypeDay   ShiftType = "Day"
	ShiftTypeNight ShiftType = "Night"
)

func (s Slot) IsValid() bool {
	return s == SlotMorning || s == SlotEvening || s == SlotNight
}

// Classification returns the shift type the slot counts as.
func (s Slot) Classification() ShiftType {
	if s == SlotNight {
		return ShiftTypeNight
	}
	return ShiftTypeDay
}

// Window returns the slot's clock window as offsets from midnight on the
// shift date. Adjacent slots overlap by an hour for handover, and the night
// slot runs into the following morning.
func (s Slot) Window() (start, end time.Duration) {
	switch s {
	case SlotMorning:
		return 7 * time.Hour, 15 * time.Hour
	case SlotEvening:
		return 14 * time.Hour, 22 * time.Hour
	case SlotNight:
		return 21 * time.Hour, 31 * time.Hour
	}
	return 0, 0
}

// Hours returns the slot's length in hours.
func (s Slot) Hours() float64 {
	start, end := s.Window()
	return (end - start).Hours()
}

// SlotOrder returns slots in start-time order within a day.
func SlotOrder() []Slot {
	return []Slot{SlotMorning, SlotEvening, SlotNight}
}
