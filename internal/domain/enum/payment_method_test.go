package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	m, ok := ParsePaymentMethod("CASH")
	assert.True(t, ok)
	assert.Equal(t, PaymentMethodCash, m)

	m, ok = ParsePaymentMethod("card")
	assert.True(t, ok)
	assert.Equal(t, PaymentMethodCard, m)

	_, ok = ParsePaymentMethod("cheque")
	assert.False(t, ok)
}

func TestPaymentMethodJSON(t *testing.T) {
	data, err := json.Marshal(PaymentMethodCard)
	require.NoError(t, err)
	assert.Equal(t, `"card"`, string(data))

	var m PaymentMethod
	require.NoError(t, json.Unmarshal([]byte(`"card"`), &m))
	assert.Equal(t, PaymentMethodCard, m)

	// Legacy documents stored the numeric form
	require.NoError(t, json.Unmarshal([]byte(`1`), &m))
	assert.Equal(t, PaymentMethodCard, m)
}
