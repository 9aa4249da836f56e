package currency

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFunding(t *testing.T) {
	testCases := []struct {
		amount   int64
		expected string
	}{
		{0, "0"},
		{1, "0.000001"},
		{1_000_000, "1"},
		{10_500_000, "10.5"},
		{123_456_789, "123.456789"},
		{-2_500_000, "-2.5"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatFunding(sdkmath.NewInt(tc.amount)))
	}
}

func TestFormatGas(t *testing.T) {
	assert.Equal(t, "0.00002", FormatGas(sdkmath.NewInt(20_000_000_000_000)))
	assert.Equal(t, "1", FormatGas(sdkmath.NewIntWithDecimal(1, GasDecimals)))
}

func TestParseFunding(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"10", 10_000_000},
			{"10.5", 10_500_000},
			{"0.000001", 1},
			{".5", 500_000},
			{"0", 0},
		}

		for _, tc := range testCases {
			amount, err := ParseFunding(tc.input)
			require.NoError(t, err, tc.input)
			assert.Equal(t, sdkmath.NewInt(tc.expected).String(), amount.String(), tc.input)
		}
	})
	t.Run("errors", func(t *testing.T) {
		for _, input := range []string{"", "abc", "1.2345678", "1.2.3"} {
			_, err := ParseFunding(input)
			assert.Error(t, err, input)
		}
	})
}
