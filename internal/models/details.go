package models

// Details holds the structured fields pulled out of the free-text details cell.
// Empty strings mean the field was not found.
type Details struct {
	Raw             string `json:"raw" yaml:"raw"`
	MCC             string `json:"mcc,omitempty" yaml:"mcc,omitempty"`
	Bank            string `json:"bank,omitempty" yaml:"bank,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty" yaml:"payment_method,omitempty"`
	ReceiverAccount string `json:"receiver_account,omitempty" yaml:"receiver_account,omitempty"`
	Merchant        string `json:"merchant,omitempty" yaml:"merchant,omitempty"`
}

// HasMCC reports whether a merchant category code was found.
func (d Details) HasMCC() bool {
	return d.MCC != ""
}

// IsTransfer reports whether the details describe a transfer to a receiver account.
func (d Details) IsTransfer() bool {
	return d.ReceiverAccount != ""
}

// OptionalString converts an empty string to nil so JSON renders it as null.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
