package enum

import (
	"encoding/json"
	"strings"
)

// PaymentMethod represents how a sale was paid.
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = 0
	PaymentMethodCard PaymentMethod = 1
)

func (m PaymentMethod) String() string {
	names := [...]string{"cash", "card"}
	if int(m) < 0 || int(m) >= len(names) {
		return "cash"
	}
	return names[m]
}

// ParsePaymentMethod converts a string into a PaymentMethod. The second
// return value is false for anything other than "cash" or "card".
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch strings.ToLower(s) {
	case "cash":
		return PaymentMethodCash, true
	case "card":
		return PaymentMethodCard, true
	}
	return PaymentMethodCash, false
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	if parsed, ok := ParsePaymentMethod(str); ok {
		*m = parsed
	}
	return nil
}
