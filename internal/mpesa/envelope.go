// Package mpesa parses the provider's STK callback envelope into the
// canonical callback consumed by the reconciliation service.
package mpesa

// Envelope is the wire shape of an STK push callback:
// {Body: {stkCallback: {..., CallbackMetadata: {Item: [{Name, Value}]}}}}.
// Required fields are pointers so absence can be told apart from zero values.
type Envelope struct {
	Body struct {
		StkCallback *StkCallback `json:"stkCallback"`
	} `json:"Body"`
}

type StkCallback struct {
	MerchantRequestID *string           `json:"MerchantRequestID"`
	CheckoutRequestID *string           `json:"CheckoutRequestID"`
	ResultCode        *int              `json:"ResultCode"`
	ResultDesc        *string           `json:"ResultDesc"`
	CallbackMetadata  *CallbackMetadata `json:"CallbackMetadata,omitempty"`
}

// CallbackMetadata carries auxiliary fields as a list of name/value pairs
// rather than a flat object.
type CallbackMetadata struct {
	Item []MetadataItem `json:"Item"`
}

// MetadataItem values arrive as strings or numbers depending on the field;
// the parser decodes numbers as json.Number to keep phone numbers and
// amounts exact.
type MetadataItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

// Metadata item names the parser extracts. Unknown names are ignored.
const (
	itemReceiptNumber   = "MpesaReceiptNumber"
	itemPhoneNumber     = "PhoneNumber"
	itemAmount          = "Amount"
	itemTransactionDate = "TransactionDate"
)
