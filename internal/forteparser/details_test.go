package forteparser

import (
	"testing"

	"fjacquet/budged/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseDetails_Receiver(t *testing.T) {
	d := ParseDetails("Receiver: 440043******8791")
	assert.Equal(t, "440043******8791", d.ReceiverAccount)
	assert.Empty(t, d.Merchant)
	assert.Empty(t, d.MCC)
	assert.Equal(t, "Receiver: 440043******8791", d.Raw)
}

func TestParseDetails_Purchase(t *testing.T) {
	d := ParseDetails("MAGNUM CASH&CARRY, JSC Halyk Bank, MCC: 5411, APPLE PAY")
	assert.Equal(t, models.Details{
		Raw:           "MAGNUM CASH&CARRY, JSC Halyk Bank, MCC: 5411, APPLE PAY",
		MCC:           "5411",
		Bank:          "Halyk Bank",
		PaymentMethod: WalletApplePay,
		Merchant:      "MAGNUM CASH&CARRY",
	}, d)
}

func TestParseDetails_ReceiverWithCommaNeverGuessesMerchant(t *testing.T) {
	d := ParseDetails("Receiver: 440043******8791, Kaspi Bank")
	assert.Equal(t, "440043******8791", d.ReceiverAccount)
	assert.Empty(t, d.Merchant)
	assert.Equal(t, "Kaspi Bank", d.Bank)
}

func TestParseDetails_MCC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"latin", "SHOP, MCC: 5812", "5812"},
		{"lowercase", "shop, mcc:5812", "5812"},
		{"cyrillic", "SHOP, МСС: 5995", "5995"},
		{"first wins", "MCC: 1111 MCC: 2222", "1111"},
		{"too short", "MCC: 123", ""},
		{"absent", "SHOP", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDetails(tt.input).MCC)
		})
	}
}

func TestParseDetails_Bank(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"JSC Halyk Bank, Kaspi Bank", "Halyk Bank"},
		{"BCC Kaspi Bank", "Kaspi Bank"},
		{"Transfer via BCC", "BCC"},
		{"Bereke Bank and Jusan Bank", "Jusan Bank"},
		{"Freedom Bank", "Freedom Bank"},
		{"halyk bank", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDetails(tt.input).Bank)
		})
	}
}

func TestParseDetails_Wallet(t *testing.T) {
	assert.Equal(t, WalletApplePay, ParseDetails("SHOP apple pay").PaymentMethod)
	assert.Empty(t, ParseDetails("SHOP GOOGLE PAY").PaymentMethod)
}

func TestParseDetails_MerchantTrimmed(t *testing.T) {
	assert.Equal(t, "SMALL SHOP", ParseDetails("  SMALL SHOP , MCC: 9999").Merchant)
	assert.Empty(t, ParseDetails("NO COMMA HERE").Merchant)
}

func TestCleanDetails(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mid-token wrap", "JSC Halyk\nBank", "JSC Halyk Bank"},
		{"after comma", "MAGNUM,\nMCC: 5411", "MAGNUM, MCC: 5411"},
		{"after period", "Ltd.\nAlmaty", "Ltd. Almaty"},
		{"collapse runs", "A   B\t\tC", "A B C"},
		{"single tab kept", "A\tB", "A\tB"},
		{"trim", "  A  ", "A"},
		{"blank lines", "A\n\n\nB", "A B"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDetails(tt.input))
		})
	}
}

func TestCleanDetails_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"MAGNUM CASH&CARRY, JSC Halyk\nBank, MCC: 5411,\nAPPLE PAY",
		"a,\n\nb.\n c",
		"\r\n\tx   y\n",
		"  leading and trailing  \n",
		"tab\tsingle",
	}
	for _, in := range inputs {
		once := CleanDetails(in)
		assert.Equal(t, once, CleanDetails(once), "input %q", in)
		assert.NotContains(t, once, "\n")
	}
}
