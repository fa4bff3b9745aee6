package serializer

import (
	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/nfe-serializer/internal/format"
	"github.com/rezonia/nfe-serializer/internal/model"
)

// contributionNotTaxed holds the PIS/COFINS situation codes whose node
// carries the code alone.
var contributionNotTaxed = map[string]bool{
	"04": true,
	"05": true,
	"06": true,
	"07": true,
	"08": true,
	"09": true,
}

// ipiTaxed holds the IPI situation codes that emit base and rate.
var ipiTaxed = map[string]bool{
	"00": true,
	"49": true,
	"50": true,
	"99": true,
}

// contribution carries the shared shape of the PIS and COFINS families.
type contribution struct {
	code  string
	base  decimal.Decimal
	rate  decimal.Decimal
	value decimal.Decimal
}

func buildPIS(imposto *etree.Element, item *model.Item) error {
	t := item.PIS
	return buildContribution(imposto, "PIS", contribution{t.SituationCode, t.Base, t.Rate, t.Value}, item.CommercialQuantity)
}

func buildCOFINS(imposto *etree.Element, item *model.Item) error {
	t := item.COFINS
	return buildContribution(imposto, "COFINS", contribution{t.SituationCode, t.Base, t.Rate, t.Value}, item.CommercialQuantity)
}

// buildContribution writes one PIS or COFINS sub-tree. Both families
// share the dispatch: a fixed not-taxed set, the rate basis for 01/02,
// the quantity basis for 03, and a rate-or-quantity fallback keyed on
// whether the declared rate is zero.
func buildContribution(imposto *etree.Element, family string, t contribution, qty decimal.Decimal) error {
	if t.code == "" {
		return model.NewMissingRequiredFieldError("CST", family)
	}
	group := imposto.CreateElement(family)
	switch {
	case contributionNotTaxed[t.code]:
		n := group.CreateElement(family + "NT")
		addText(n, "CST", t.code)
	case t.code == "01" || t.code == "02":
		n := group.CreateElement(family + "Aliq")
		addText(n, "CST", t.code)
		addText(n, "vBC", format.Decimal2(t.base))
		addText(n, "p"+family, format.Decimal2(t.rate))
		addText(n, "v"+family, format.Decimal2(t.value))
	case t.code == "03":
		n := group.CreateElement(family + "Qtde")
		addText(n, "CST", t.code)
		addText(n, "qBCProd", format.Decimal4(qty))
		addText(n, "vAliqProd", format.Decimal4(t.rate))
		addText(n, "v"+family, format.Decimal2(t.value))
	default:
		n := group.CreateElement(family + "Outr")
		addText(n, "CST", t.code)
		if t.rate.IsZero() {
			addText(n, "qBCProd", format.Decimal4(qty))
			addText(n, "vAliqProd", format.Decimal4(t.rate))
		} else {
			addText(n, "vBC", format.Decimal2(t.base))
			addText(n, "p"+family, format.Decimal2(t.rate))
		}
		addText(n, "v"+family, format.Decimal2(t.value))
	}
	return nil
}

// buildIPI writes the IPI sub-tree. Items under ICMS non-incidence
// (code 41) and items without a framing code carry no IPI node at all.
func buildIPI(imposto *etree.Element, item *model.Item) error {
	if item.IPI == nil || item.IPI.FramingCode == "" || item.ICMS.Regime == "41" {
		return nil
	}
	t := item.IPI
	if t.SituationCode == "" {
		return model.NewMissingRequiredFieldError("CST", "IPI")
	}
	ipi := imposto.CreateElement("IPI")
	addText(ipi, "cEnq", t.FramingCode)
	if ipiTaxed[t.SituationCode] {
		n := ipi.CreateElement("IPITrib")
		addText(n, "CST", t.SituationCode)
		addText(n, "vBC", format.Decimal2(t.Base))
		addText(n, "pIPI", format.Decimal2(t.Rate))
		addText(n, "vIPI", format.Decimal2(t.Value))
		return nil
	}
	n := ipi.CreateElement("IPINT")
	addText(n, "CST", t.SituationCode)
	return nil
}
