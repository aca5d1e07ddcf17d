// internal/pkg/validation/validation_test.go
package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("cashier@example.com"))
	assert.True(t, IsEmail("ventas.mostrador+pos@ferreteria.mx"))
	assert.False(t, IsEmail(""))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("missing@domain"))
}

func TestIsRFC(t *testing.T) {
	assert.True(t, IsRFC("XAXX010101000"))
	assert.True(t, IsRFC("GODE561231GR8"))
	// Lowercase input is uppercased before matching.
	assert.True(t, IsRFC("gode561231gr8"))
	assert.False(t, IsRFC(""))
	assert.False(t, IsRFC("12345"))
	assert.False(t, IsRFC("TOOLONGRFC561231GR8X"))
}

func TestParseQuantity(t *testing.T) {
	qty, err := ParseQuantity(" 6 ")
	require.NoError(t, err)
	assert.Equal(t, 6, qty)

	_, err = ParseQuantity("0")
	assert.Error(t, err)

	_, err = ParseQuantity("-3")
	assert.Error(t, err)

	_, err = ParseQuantity("2.5")
	assert.Error(t, err)

	_, err = ParseQuantity("abc")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("120.50")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("120.50")))

	_, err = ParseAmount("-1")
	assert.Error(t, err)

	_, err = ParseAmount("twelve")
	assert.Error(t, err)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"8.64", "$8.64"},
		{"111.36", "$111.36"},
		{"1234.5", "$1,234.50"},
		{"1234567.89", "$1,234,567.89"},
		{"-950", "-$950.00"},
	}
	for _, tt := range tests {
		got := FormatCurrency(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got)
	}
}
