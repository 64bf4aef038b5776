package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCustomID(t *testing.T) {
	kind, payload := decodeCustomID("order")
	assert.Equal(t, compOrder, kind)
	assert.Empty(t, payload)

	kind, payload = decodeCustomID(continueCustomID("guild-1"))
	assert.Equal(t, compContinue, kind)
	assert.Equal(t, "guild-1", payload)

	kind, payload = decodeCustomID(notifyCustomID(42))
	assert.Equal(t, compNotify, kind)
	assert.Equal(t, "42", payload)

	kind, payload = decodeCustomID(orderFormCustomID("guild-1"))
	assert.Equal(t, modalOrderForm, string(kind))
	assert.Equal(t, "guild-1", payload)
}
