package passwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	t.Run("CorrectPassword", func(t *testing.T) {
		assert.True(t, Verify("code relay", "RELAY2025"))
	})

	t.Run("EventNameIsCaseInsensitive", func(t *testing.T) {
		assert.True(t, Verify("Code Relay", "RELAY2025"))
		assert.True(t, Verify("CODE RELAY", "RELAY2025"))
	})

	t.Run("PasswordIsCaseSensitive", func(t *testing.T) {
		assert.False(t, Verify("code relay", "relay2025"))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		assert.False(t, Verify("code relay", "WING2025"))
	})

	t.Run("UnknownEvent", func(t *testing.T) {
		assert.False(t, Verify("chess blitz", "RELAY2025"))
		// ห้าม match รหัส default ด้วย
		assert.False(t, Verify("chess blitz", "DEFAULT2025"))
	})
}

func TestGetEventPassword(t *testing.T) {
	assert.Equal(t, "AAVI2025", GetEventPassword("Aavishkar"))
	assert.Equal(t, "DEFAULT2025", GetEventPassword("chess blitz"))
}
