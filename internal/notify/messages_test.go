package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemExpiredMessage(t *testing.T) {
	subject, body := ItemExpiredMessage("Kulmasohva")

	assert.Contains(t, subject, "Kulmasohva")
	assert.Contains(t, body, "Kulmasohva")
	assert.Contains(t, body, "renew")
}

func TestHoundItemFoundMessage(t *testing.T) {
	subject, body := HoundItemFoundMessage("https://marketplace.example.com", "Kulmasohva", "abc-123")

	assert.NotEmpty(t, subject)
	assert.Contains(t, body, "Kulmasohva")
	assert.Contains(t, body, "https://marketplace.example.com/item/abc-123")
}
