// Package validation holds the pure field checks applied before persistence.
package validation

import (
	"fmt"
	"time"
)

// Bounds for profile and weekly update fields.
const (
	MinAge    = 10
	MaxAge    = 120
	MinHeight = 50.0
	MaxHeight = 300.0
	MinWeight = 20.0
	MaxWeight = 500.0

	MinEnergyLevel     = 1
	MaxEnergyLevel     = 10
	MinComplianceScore = 0
	MaxComplianceScore = 100

	// UpdateInterval is the minimum spacing between weekly updates.
	UpdateInterval = 7 * 24 * time.Hour
)

func Age(age int) error {
	if age < MinAge || age > MaxAge {
		return fmt.Errorf("age must be between %d and %d", MinAge, MaxAge)
	}
	return nil
}

// Height is validated in centimeters.
func Height(height float64) error {
	if height < MinHeight || height > MaxHeight {
		return fmt.Errorf("height must be between %.0f and %.0f cm", MinHeight, MaxHeight)
	}
	return nil
}

// Weight is validated in kilograms.
func Weight(weight float64) error {
	if weight < MinWeight || weight > MaxWeight {
		return fmt.Errorf("weight must be between %.0f and %.0f kg", MinWeight, MaxWeight)
	}
	return nil
}

func EnergyLevel(level int) error {
	if level < MinEnergyLevel || level > MaxEnergyLevel {
		return fmt.Errorf("energy_level must be between %d and %d", MinEnergyLevel, MaxEnergyLevel)
	}
	return nil
}

func ComplianceScore(score int) error {
	if score < MinComplianceScore || score > MaxComplianceScore {
		return fmt.Errorf("compliance_score must be between %d and %d", MinComplianceScore, MaxComplianceScore)
	}
	return nil
}

// ErrUpdateTooSoon rejects a weekly update submitted before the throttle
// window has elapsed. NextAllowed is the first permitted date.
type ErrUpdateTooSoon struct {
	NextAllowed time.Time
}

func (e *ErrUpdateTooSoon) Error() string {
	return fmt.Sprintf("you can submit your next weekly update on %s", e.NextAllowed.Format("2006-01-02"))
}

// CheckUpdateWindow enforces the 7-day throttle. last is the date of the
// caller's most recent update; exactly 7 days apart is allowed. Comparison is
// on calendar dates, not clock times.
func CheckUpdateWindow(last, now time.Time) error {
	lastDay := truncateToDay(last)
	if truncateToDay(now).Sub(lastDay) < UpdateInterval {
		return &ErrUpdateTooSoon{NextAllowed: lastDay.Add(UpdateInterval)}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
