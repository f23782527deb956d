package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streetbites/streetbites/utils"
)

func TestValidPhone(t *testing.T) {
	assert.True(t, utils.ValidPhone("9876543210"))
	assert.False(t, utils.ValidPhone("12345"))
	assert.False(t, utils.ValidPhone("98765432101"))
	assert.False(t, utils.ValidPhone("98765abc10"))
	assert.False(t, utils.ValidPhone(""))
}

func TestLast10(t *testing.T) {
	assert.Equal(t, "9876543210", utils.Last10("+919876543210"))
	assert.Equal(t, "9876543210", utils.Last10("9876543210"))
	assert.Equal(t, "12345", utils.Last10("12345"))
}

func TestFormatCurrencyINR(t *testing.T) {
	assert.Equal(t, "INR 0", utils.FormatCurrencyINR(0))
	assert.Equal(t, "INR 140", utils.FormatCurrencyINR(140))
	assert.Equal(t, "INR 1,234", utils.FormatCurrencyINR(1234))
	assert.Equal(t, "INR 1,23,456.50", utils.FormatCurrencyINR(123456.50))
	assert.Equal(t, "INR 10,00,000", utils.FormatCurrencyINR(1000000))
	assert.Equal(t, "INR 1,034", utils.FormatCurrencyINR(1034))
	// Paise at or above .995 carry into the rupee part, never a third digit.
	assert.Equal(t, "INR 140", utils.FormatCurrencyINR(139.995))
	assert.Equal(t, "INR 1,000", utils.FormatCurrencyINR(999.999))
	assert.Equal(t, "INR 139.99", utils.FormatCurrencyINR(139.994))
}

func TestTokenLifecycle(t *testing.T) {
	secret := []byte("test-secret")

	token, err := utils.GenerateToken(secret, 1, "meena@example.com", "manager", "MG Road")
	assert.NoError(t, err)
	assert.False(t, utils.TokenExpired(token))

	claims, err := utils.ParseToken(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "MG Road", claims.Branch)

	_, err = utils.ParseToken([]byte("other-secret"), token)
	assert.Error(t, err)

	assert.True(t, utils.TokenExpired("not-a-token"))
}
