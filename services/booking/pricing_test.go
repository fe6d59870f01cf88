package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name   string
		length string
		width  string
		rate   float64
		want   float64
		ok     bool
	}{
		{name: "three by two at rate four", length: "3", width: "2", rate: 4, want: 24, ok: true},
		{name: "decimal dimensions", length: "2.5", width: "1.5", rate: 4, want: 15, ok: true},
		{name: "rounded to cents", length: "1.11", width: "1.11", rate: 4, want: 4.93, ok: true},
		{name: "zero area prices at zero", length: "0", width: "3", rate: 4, want: 0, ok: true},
		{name: "missing length", length: "", width: "2", rate: 4, ok: false},
		{name: "missing width", length: "3", width: "", rate: 4, ok: false},
		{name: "both missing", length: "", width: "", rate: 4, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Estimate(tt.length, tt.width, tt.rate)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		estimate float64
		flatFee  float64
		discount float64
		want     float64
	}{
		{name: "estimate plus flat fee", estimate: 24, flatFee: 10, discount: 0, want: 34},
		{name: "percent discount applied", estimate: 24, flatFee: 10, discount: 3.4, want: 30.6},
		{name: "discount larger than total clamps to zero", estimate: 2, flatFee: 1, discount: 10, want: 0},
		{name: "zero estimate still pays the fee", estimate: 0, flatFee: 10, discount: 0, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Total(tt.estimate, tt.flatFee, tt.discount), 0.001)
		})
	}
}
