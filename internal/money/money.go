// Package money carries monetary values as fixed-point decimals with two
// fraction digits, rounded half away from zero.
package money

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	// Places is the number of fraction digits every Amount carries.
	Places = 2

	// MaxDigits is the most significant digits a DynamoDB number can hold.
	MaxDigits = 38

	maxTextLen  = 64
	minExponent = -maxTextLen
	maxExponent = MaxDigits
)

var ErrInvalidAmount = errors.New("invalid decimal amount")

type Amount struct {
	d decimal.Decimal
}

// Parse reads a decimal numeral and rounds it half-up to two places.
// Values that would need more than MaxDigits after rounding are rejected
// without being expanded.
func Parse(text string) (Amount, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Amount{}, ErrInvalidAmount
	}
	if len(text) > maxTextLen {
		return Amount{}, fmt.Errorf("%w: numeral longer than %d characters", ErrInvalidAmount, maxTextLen)
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return Amount{}, fmt.Errorf("%w %q", ErrInvalidAmount, text)
	}
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return Amount{}, fmt.Errorf("%w %q: exponent out of range", ErrInvalidAmount, text)
	}

	a := Amount{d: d.Round(Places)}
	if digits(a.d) > MaxDigits {
		return Amount{}, fmt.Errorf("%w %q: more than %d digits", ErrInvalidAmount, text, MaxDigits)
	}

	return a, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(text string) Amount {
	a, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return a
}

func digits(d decimal.Decimal) int {
	return len(strings.TrimPrefix(d.Coefficient().String(), "-"))
}

func (a Amount) String() string {
	return a.d.StringFixed(Places)
}

// Float64 is the display value; it may lose precision.
func (a Amount) Float64() float64 {
	f, _ := a.d.Float64()
	return f
}

func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// MarshalJSON writes the amount as a bare JSON number with two fraction digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}

	parsed, err := Parse(string(bytes.Trim(data, `"`)))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalDynamoDBAttributeValue stores the amount as a DynamoDB number.
func (a Amount) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: a.String()}, nil
}

// UnmarshalDynamoDBAttributeValue accepts numbers and numeric strings.
func (a *Amount) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		*a = Amount{}
		return nil
	default:
		return fmt.Errorf("%w: unsupported attribute type %T", ErrInvalidAmount, av)
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
