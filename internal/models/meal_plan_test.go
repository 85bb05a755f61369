package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredPlanValue(t *testing.T) {
	plan := StructuredPlan{
		"monday": {"breakfast": 1, "lunch": 2},
	}

	value, err := plan.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"monday":{"breakfast":1,"lunch":2}}`, string(value.([]byte)))
}

func TestStructuredPlanValueNil(t *testing.T) {
	var plan StructuredPlan
	value, err := plan.Value()
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func TestStructuredPlanScan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{name: "bytes", input: []byte(`{"monday":{"dinner":3}}`)},
		{name: "string", input: `{"monday":{"dinner":3}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var plan StructuredPlan
			err := plan.Scan(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, uint(3), plan["monday"]["dinner"])
		})
	}
}

func TestStructuredPlanScanNil(t *testing.T) {
	plan := StructuredPlan{"monday": {"dinner": 3}}
	err := plan.Scan(nil)
	assert.NoError(t, err)
	assert.Nil(t, map[string]map[string]uint(plan))
}

func TestStructuredPlanScanUnsupportedType(t *testing.T) {
	var plan StructuredPlan
	err := plan.Scan(42)
	assert.Error(t, err)
}
