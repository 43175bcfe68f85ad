package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failureCodes(t *testing.T, password, username string) []string {
	t.Helper()
	failures := ValidatePassword(password, username)
	codes := make([]string, 0, len(failures))
	for _, f := range failures {
		codes = append(codes, f.Code)
	}
	return codes
}

func TestPasswordMissingDigitAndSymbol(t *testing.T) {
	codes := failureCodes(t, "abcdefghijkl", "alice")
	assert.Contains(t, codes, CodePasswordNoNumber)
	assert.Contains(t, codes, CodePasswordNoSymbol)
	assert.GreaterOrEqual(t, len(codes), 2)
}

func TestPasswordAccepted(t *testing.T) {
	failures := ValidatePassword("abc123!@#XYZ", "alice")
	assert.Empty(t, failures)
}

func TestPasswordTooShort(t *testing.T) {
	codes := failureCodes(t, "a1!", "alice")
	assert.Contains(t, codes, CodePasswordTooShort)
}

func TestPasswordEntirelyNumeric(t *testing.T) {
	codes := failureCodes(t, "123456789012", "alice")
	assert.Contains(t, codes, CodePasswordEntirelyNumeric)
	assert.Contains(t, codes, CodePasswordNoSymbol)
}

func TestPasswordTooCommon(t *testing.T) {
	codes := failureCodes(t, "password123", "alice")
	assert.Contains(t, codes, CodePasswordTooCommon)
}

func TestPasswordSimilarToUsername(t *testing.T) {
	codes := failureCodes(t, "Bobbert99!xx", "bobbert")
	assert.Contains(t, codes, CodePasswordTooSimilar)
}

func TestPasswordAllRulesAggregated(t *testing.T) {
	// Short, common, numeric, no symbol: every failing rule must surface.
	failures := ValidatePassword("123456", "alice")
	require.NotEmpty(t, failures)
	codes := make(map[string]bool)
	for _, f := range failures {
		codes[f.Code] = true
	}
	assert.True(t, codes[CodePasswordTooShort])
	assert.True(t, codes[CodePasswordTooCommon])
	assert.True(t, codes[CodePasswordEntirelyNumeric])
	assert.True(t, codes[CodePasswordNoSymbol])
}
