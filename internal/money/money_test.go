package money

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10.00"},
		{"10.0049999", "10.00"},
		{"10.015", "10.02"},
		{"10.025", "10.03"},
		{"0.125", "0.13"},
		{"-1.005", "-1.01"},
		{"-1.004", "-1.00"},
		{"7", "7.00"},
		{"1e3", "1000.00"},
		{"  12.5  ", "12.50"},
		{"1e35", "100000000000000000000000000000000000.00"},
		{"1e-60", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"", "   ", "abc", "12.3.4", "NaN", "Infinity", "1,50",
		"1e50", "1e36", "1e9999999", "1e-9999999", "-1e9999999",
		"123456789012345678901234567890123456789",
		"1" + strings.Repeat("0", 100),
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)

			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestParse_HugeExponentIsCheap(t *testing.T) {
	start := time.Now()

	_, err := Parse("1e9999999")

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestParse_LargestAcceptedFitsInStore(t *testing.T) {
	a, err := Parse("999999999999999999999999999999999999.99")

	require.NoError(t, err)
	assert.Equal(t, MaxDigits, digits(a.d))

	_, err = Parse("999999999999999999999999999999999999.995")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "3.50", MustParse("3.5").String())
	assert.Panics(t, func() { MustParse("x") })
}

func TestAmount_Float64(t *testing.T) {
	assert.Equal(t, 12.99, MustParse("12.99").Float64())
	assert.Equal(t, 0.0, Amount{}.Float64())
}

func TestAmount_JSON(t *testing.T) {
	t.Run("Marshal as number", func(t *testing.T) {
		b, err := json.Marshal(map[string]Amount{"total": MustParse("10.5")})

		require.NoError(t, err)
		assert.JSONEq(t, `{"total": 10.50}`, string(b))
	})

	t.Run("Unmarshal number and string", func(t *testing.T) {
		var v struct {
			A Amount `json:"a"`
			B Amount `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a": 1.005, "b": "2.345"}`), &v))

		assert.Equal(t, "1.01", v.A.String())
		assert.Equal(t, "2.35", v.B.String())
	})

	t.Run("Unmarshal garbage", func(t *testing.T) {
		var a Amount
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &a))
	})
}

func TestAmount_DynamoDB(t *testing.T) {
	type record struct {
		Price Amount `dynamodbav:"price"`
	}

	t.Run("Marshal as N", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(record{Price: MustParse("9.999")})

		require.NoError(t, err)
		assert.Equal(t, &types.AttributeValueMemberN{Value: "10.00"}, item["price"])
	})

	t.Run("Unmarshal N and S", func(t *testing.T) {
		var fromN, fromS record
		require.NoError(t, attributevalue.UnmarshalMap(map[string]types.AttributeValue{
			"price": &types.AttributeValueMemberN{Value: "4.5"},
		}, &fromN))
		require.NoError(t, attributevalue.UnmarshalMap(map[string]types.AttributeValue{
			"price": &types.AttributeValueMemberS{Value: "4.555"},
		}, &fromS))

		assert.Equal(t, "4.50", fromN.Price.String())
		assert.Equal(t, "4.56", fromS.Price.String())
	})

	t.Run("Unmarshal unsupported type", func(t *testing.T) {
		var r record
		err := attributevalue.UnmarshalMap(map[string]types.AttributeValue{
			"price": &types.AttributeValueMemberBOOL{Value: true},
		}, &r)

		assert.Error(t, err)
	})
}
