package mpesa

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successBody = `{
  "Body": {
    "stkCallback": {
      "MerchantRequestID": "29115-34620561-1",
      "CheckoutRequestID": "ws_CO_191220191020363925",
      "ResultCode": 0,
      "ResultDesc": "The service request is processed successfully.",
      "CallbackMetadata": {
        "Item": [
          {"Name": "Amount", "Value": 1500.00},
          {"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
          {"Name": "TransactionDate", "Value": 20191219102115},
          {"Name": "PhoneNumber", "Value": 254708374149}
        ]
      }
    }
  }
}`

const failureBody = `{
  "Body": {
    "stkCallback": {
      "MerchantRequestID": "29115-34620561-1",
      "CheckoutRequestID": "ws_CO_191220191020363925",
      "ResultCode": 1032,
      "ResultDesc": "Request cancelled by user."
    }
  }
}`

func TestParseCallback(t *testing.T) {
	t.Parallel()

	t.Run("should parse successful callback with metadata", func(t *testing.T) {
		cb, err := ParseCallback([]byte(successBody))

		require.NoError(t, err)
		assert.Equal(t, "29115-34620561-1", cb.MerchantRequestID)
		assert.Equal(t, "ws_CO_191220191020363925", cb.CheckoutRequestID)
		assert.Equal(t, 0, cb.ResultCode)
		assert.Equal(t, "The service request is processed successfully.", cb.ResultDesc)
		assert.Equal(t, "NLJ7RT61SV", cb.ReceiptNumber)
		assert.Equal(t, "254708374149", cb.PayerReference)
		assert.True(t, cb.Amount.Equal(decimal.RequireFromString("1500")))
		assert.Equal(t, "2019-12-19T10:21:15", cb.TransactionDate)
	})

	t.Run("should skip metadata for failed callback", func(t *testing.T) {
		cb, err := ParseCallback([]byte(failureBody))

		require.NoError(t, err)
		assert.Equal(t, 1032, cb.ResultCode)
		assert.Empty(t, cb.ReceiptNumber)
		assert.Empty(t, cb.PayerReference)
		assert.True(t, cb.Amount.IsZero())
		assert.Empty(t, cb.TransactionDate)
	})

	t.Run("should skip metadata on failure even when block is present", func(t *testing.T) {
		body := `{"Body":{"stkCallback":{
			"MerchantRequestID":"m","CheckoutRequestID":"c","ResultCode":1,"ResultDesc":"failed",
			"CallbackMetadata":{"Item":[{"Name":"PhoneNumber","Value":254708374149}]}}}}`

		cb, err := ParseCallback([]byte(body))

		require.NoError(t, err)
		assert.Empty(t, cb.PayerReference)
	})

	t.Run("should coerce string amount and phone", func(t *testing.T) {
		body := `{"Body":{"stkCallback":{
			"MerchantRequestID":"m","CheckoutRequestID":"c","ResultCode":0,"ResultDesc":"ok",
			"CallbackMetadata":{"Item":[
				{"Name":"Amount","Value":"250.50"},
				{"Name":"PhoneNumber","Value":"0712345678"},
				{"Name":"MpesaReceiptNumber","Value":"ABC123"}
			]}}}}`

		cb, err := ParseCallback([]byte(body))

		require.NoError(t, err)
		assert.True(t, cb.Amount.Equal(decimal.RequireFromString("250.50")))
		assert.Equal(t, "254712345678", cb.PayerReference)
		assert.Equal(t, "ABC123", cb.ReceiptNumber)
	})

	t.Run("should ignore unknown metadata names and missing items", func(t *testing.T) {
		body := `{"Body":{"stkCallback":{
			"MerchantRequestID":"m","CheckoutRequestID":"c","ResultCode":0,"ResultDesc":"ok",
			"CallbackMetadata":{"Item":[
				{"Name":"Balance","Value":100},
				{"Name":"Amount","Value":10}
			]}}}}`

		cb, err := ParseCallback([]byte(body))

		require.NoError(t, err)
		assert.True(t, cb.Amount.Equal(decimal.NewFromInt(10)))
		assert.Empty(t, cb.ReceiptNumber)
		assert.Empty(t, cb.PayerReference)
	})

	t.Run("should reject malformed envelopes", func(t *testing.T) {
		testCases := []struct {
			name string
			body string
		}{
			{name: "empty object", body: `{}`},
			{name: "missing stkCallback", body: `{"Body":{}}`},
			{name: "not JSON", body: `not json`},
			{name: "missing ResultCode", body: `{"Body":{"stkCallback":{"MerchantRequestID":"m","CheckoutRequestID":"c","ResultDesc":"ok"}}}`},
			{name: "missing ResultDesc", body: `{"Body":{"stkCallback":{"MerchantRequestID":"m","CheckoutRequestID":"c","ResultCode":0}}}`},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ParseCallback([]byte(tc.body))
				assert.ErrorIs(t, err, ErrMalformedCallback)
			})
		}
	})
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "local format", raw: "0712345678", expected: "254712345678"},
		{name: "already canonical", raw: "254712345678", expected: "254712345678"},
		{name: "bare subscriber digits", raw: "712345678", expected: "254712345678"},
		{name: "empty stays empty", raw: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizePhone(tc.raw))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "compact provider timestamp", raw: "20191219102115", expected: "2019-12-19T10:21:15"},
		{name: "wrong length passes through", raw: "2019-12-19", expected: "2019-12-19"},
		{name: "non-digits pass through", raw: "2019121910211x", expected: "2019121910211x"},
		{name: "empty stays empty", raw: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatTimestamp(tc.raw))
		})
	}
}
