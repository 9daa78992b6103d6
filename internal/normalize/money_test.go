package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{name: "whole dollars", amount: "12", want: 1200},
		{name: "two decimals", amount: "12.34", want: 1234},
		{name: "one decimal", amount: "0.5", want: 50},
		{name: "three decimals rounds up", amount: "12.345", want: 1235},
		{name: "tie rounds away from zero", amount: "19.995", want: 2000},
		{name: "below tie rounds down", amount: "19.994", want: 1999},
		{name: "positive half cent", amount: "0.005", want: 1},
		{name: "negative half cent rounds away from zero", amount: "-0.005", want: -1},
		{name: "negative amount", amount: "-45.67", want: -4567},
		{name: "negative tie", amount: "-19.995", want: -2000},
		{name: "zero", amount: "0", want: 0},
		{name: "leading plus", amount: "+3.10", want: 310},
		{name: "surrounding whitespace", amount: "  7.25 ", want: 725},
		{name: "long mantissa stays exact", amount: "12345678901234.56", want: 1234567890123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToCents(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToCentsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{name: "empty", amount: ""},
		{name: "whitespace only", amount: "   "},
		{name: "not a number", amount: "12.3.4"},
		{name: "text", amount: "free lunch"},
		{name: "currency symbol", amount: "$5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToCents(tt.amount)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}
