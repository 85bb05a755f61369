package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAge(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		wantErr bool
	}{
		{name: "valid age", age: 30, wantErr: false},
		{name: "minimum age", age: 10, wantErr: false},
		{name: "maximum age", age: 120, wantErr: false},
		{name: "too young", age: 5, wantErr: true},
		{name: "too old", age: 121, wantErr: true},
		{name: "negative", age: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Age(tt.age)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		name    string
		height  float64
		wantErr bool
	}{
		{name: "valid height", height: 180, wantErr: false},
		{name: "minimum height", height: 50, wantErr: false},
		{name: "maximum height", height: 300, wantErr: false},
		{name: "too short", height: 40, wantErr: true},
		{name: "too tall", height: 400, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Height(tt.height)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		wantErr bool
	}{
		{name: "valid weight", weight: 75, wantErr: false},
		{name: "minimum weight", weight: 20, wantErr: false},
		{name: "maximum weight", weight: 500, wantErr: false},
		{name: "too light", weight: 10, wantErr: true},
		{name: "too heavy", weight: 600, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Weight(tt.weight)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnergyLevel(t *testing.T) {
	assert.NoError(t, EnergyLevel(1))
	assert.NoError(t, EnergyLevel(10))
	assert.Error(t, EnergyLevel(0))
	assert.Error(t, EnergyLevel(11))
}

func TestComplianceScore(t *testing.T) {
	assert.NoError(t, ComplianceScore(0))
	assert.NoError(t, ComplianceScore(100))
	assert.Error(t, ComplianceScore(-1))
	assert.Error(t, ComplianceScore(101))
}

func TestCheckUpdateWindow(t *testing.T) {
	last := time.Date(2023, 6, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{
			name:    "same day",
			now:     time.Date(2023, 6, 1, 18, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "six days later",
			now:     time.Date(2023, 6, 7, 9, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "exactly seven days later",
			now:     time.Date(2023, 6, 8, 0, 0, 0, 0, time.UTC),
			wantErr: false,
		},
		{
			name:    "seven days later by calendar despite earlier clock time",
			now:     time.Date(2023, 6, 8, 6, 0, 0, 0, time.UTC),
			wantErr: false,
		},
		{
			name:    "well past the window",
			now:     time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckUpdateWindow(last, tt.now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckUpdateWindowNextAllowedDate(t *testing.T) {
	last := time.Date(2023, 6, 1, 14, 30, 0, 0, time.UTC)
	now := time.Date(2023, 6, 3, 10, 0, 0, 0, time.UTC)

	err := CheckUpdateWindow(last, now)
	assert.Error(t, err)

	var tooSoon *ErrUpdateTooSoon
	assert.True(t, errors.As(err, &tooSoon))
	assert.Equal(t, time.Date(2023, 6, 8, 0, 0, 0, 0, time.UTC), tooSoon.NextAllowed)
	assert.Contains(t, tooSoon.Error(), "2023-06-08")
}
