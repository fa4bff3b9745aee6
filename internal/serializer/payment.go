package serializer

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/rezonia/nfe-serializer/internal/format"
	"github.com/rezonia/nfe-serializer/internal/model"
)

// buildBilling writes the cobr section when the document carries an
// invoice number with an original value.
func (s *Serializer) buildBilling(inf *etree.Element, doc *model.Document) {
	b := doc.Billing
	if b == nil || b.Number == "" || b.OriginalValue.IsZero() {
		return
	}
	cobr := inf.CreateElement("cobr")
	fat := cobr.CreateElement("fat")
	addText(fat, "nFat", b.Number)
	addText(fat, "vOrig", format.Decimal2(b.OriginalValue))
	addText(fat, "vDesc", format.Decimal2(b.Discount))
	addText(fat, "vLiq", format.Decimal2(b.NetValue))
	for _, in := range b.Installments {
		dup := cobr.CreateElement("dup")
		addText(dup, "nDup", in.Number)
		addText(dup, "dVenc", format.Date(in.DueDate))
		addText(dup, "vDup", format.Decimal2(in.Value))
	}
}

// buildPayment writes the pag section. Adjustment and return documents
// always declare the no-payment method with a zero value; otherwise the
// paid amount is the document grand total.
func (s *Serializer) buildPayment(inf *etree.Element, doc *model.Document) {
	p := &doc.Payment
	pag := inf.CreateElement("pag")
	det := pag.CreateElement("detPag")
	if p.Indicator != nil {
		addText(det, "indPag", strconv.Itoa(*p.Indicator))
	}

	if doc.Purpose == model.PurposeAdjustment || doc.Purpose == model.PurposeReturn {
		addText(det, "tPag", model.PaymentMethodNone)
		addText(det, "vPag", "0.00")
		return
	}

	method := format.ZeroPad(p.Method, 2)
	addText(det, "tPag", method)
	if method == model.PaymentMethodOther && p.Description != "" {
		addText(det, "xPag", format.Truncate(p.Description, 60))
	}
	if method == model.PaymentMethodNone {
		addText(det, "vPag", "0.00")
	} else {
		addText(det, "vPag", format.Decimal2(doc.Totals.DocumentTotal))
	}

	if c := p.Card; c != nil && c.IntegrationType != 0 {
		card := det.CreateElement("card")
		addText(card, "tpIntegra", strconv.Itoa(c.IntegrationType))
		if c.CNPJ != "" {
			addText(card, "CNPJ", format.Digits(c.CNPJ))
		}
		addOptional(card, "tBand", c.Brand)
		if c.Authorization != "" {
			addText(card, "cAut", format.Truncate(c.Authorization, 20))
		}
		if c.ReceiverCNPJ != "" {
			addText(card, "CNPJReceb", format.Digits(c.ReceiverCNPJ))
		}
		if c.Terminal != "" {
			addText(card, "idTermPag", format.Truncate(c.Terminal, 40))
		}
	}

	if p.Change.IsPositive() {
		addText(pag, "vTroco", format.Decimal2(p.Change))
	}
}

// buildIntermediary writes infIntermed for marketplace-brokered invoices.
func (s *Serializer) buildIntermediary(inf *etree.Element, doc *model.Document) {
	im := doc.Intermediary
	if doc.Model != model.ModelNFe || im == nil || im.CNPJ == "" {
		return
	}
	n := inf.CreateElement("infIntermed")
	addText(n, "CNPJ", format.Truncate(format.Digits(im.CNPJ), 14))
	addText(n, "idCadIntTran", format.Truncate(im.Registration, 60))
}

// buildAdditionalInfo writes infAdic when either free-text block is set.
func (s *Serializer) buildAdditionalInfo(inf *etree.Element, doc *model.Document) {
	ai := doc.AdditionalInfo
	if ai == nil || (ai.FiscalInfo == "" && ai.ComplementaryInfo == "") {
		return
	}
	n := inf.CreateElement("infAdic")
	addOptional(n, "infAdFisco", ai.FiscalInfo)
	addOptional(n, "infCpl", ai.ComplementaryInfo)
}
