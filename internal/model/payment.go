package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment method codes with dedicated serialization rules
const (
	// PaymentMethodNone is tPag 90 (no payment); its amount is always zero
	PaymentMethodNone = "90"
	// PaymentMethodOther is tPag 99; the only code carrying a description
	PaymentMethodOther = "99"
)

// Payment is the pag group. The paid amount is derived from the document
// total; adjustment and return documents force the no-payment shape.
type Payment struct {
	// Indicator is indPag (0 cash, 1 installments); nil omits the element
	Indicator *int
	// Method is the raw tPag code, zero-padded to two digits on output
	Method string
	// Description is xPag, emitted for PaymentMethodOther only (60 chars max)
	Description string
	Card        *Card
	// Change is vTroco, emitted only when strictly positive
	Change decimal.Decimal
}

// Card is the card sub-group of a payment detail
type Card struct {
	IntegrationType int // tpIntegra
	CNPJ            string
	Brand           string // tBand
	Authorization   string // cAut, truncated to 20
	ReceiverCNPJ    string // CNPJReceb
	Terminal        string // idTermPag, truncated to 40
}

// Billing is the cobr group: the invoice header plus its installments
type Billing struct {
	Number        string // nFat
	OriginalValue decimal.Decimal
	Discount      decimal.Decimal
	NetValue      decimal.Decimal
	Installments  []Installment
}

// Installment is one dup entry
type Installment struct {
	Number  string // nDup
	DueDate time.Time
	Value   decimal.Decimal
}
