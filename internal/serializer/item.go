package serializer

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/nfe-serializer/internal/format"
	"github.com/rezonia/nfe-serializer/internal/model"
)

// cestRegimes lists the ICMS regimes whose items carry the CEST code
var cestRegimes = map[model.ICMSRegime]bool{
	"41": true, "60": true, "70": true, "201": true, "400": true, "500": true,
}

func (s *Serializer) buildItem(inf *etree.Element, n int, item *model.Item, doc *model.Document) error {
	det := inf.CreateElement("det")
	det.CreateAttr("nItem", strconv.Itoa(n))

	buildProduct(det, item)
	if err := s.buildItemTaxes(det, item, doc); err != nil {
		return err
	}
	buildReturnedTax(det, item)
	addOptional(det, "infAdProd", item.AdditionalInfo)
	return nil
}

func buildProduct(det *etree.Element, item *model.Item) {
	prod := det.CreateElement("prod")
	addText(prod, "cProd", item.Code)
	addText(prod, "cEAN", item.EAN)
	addText(prod, "xProd", item.Description)
	addText(prod, "NCM", item.NCM)
	if item.CEST != "" && cestRegimes[item.ICMS.Regime] {
		addText(prod, "CEST", item.CEST)
	}
	addOptional(prod, "cBenef", item.BenefitCode)
	addText(prod, "CFOP", item.CFOP)
	addText(prod, "uCom", item.CommercialUnit)
	addText(prod, "qCom", format.Decimal4(item.CommercialQuantity))
	addText(prod, "vUnCom", format.Decimal4(item.CommercialUnitValue))
	addText(prod, "vProd", format.Decimal2(item.GrossTotal))
	addText(prod, "cEANTrib", item.TaxableEAN)
	addText(prod, "uTrib", item.TaxableUnit)
	addText(prod, "qTrib", format.Decimal4(item.TaxableQuantity))
	addText(prod, "vUnTrib", format.Decimal4(item.TaxableUnitValue))
	addNonZero2(prod, "vFrete", item.Freight)
	addNonZero2(prod, "vDesc", item.Discount)
	addNonZero2(prod, "vOutro", item.OtherExpenses)
	addText(prod, "indTot", strconv.Itoa(item.IncludeInTotal))
	addOptional(prod, "xPed", item.PurchaseOrder)
	addOptional(prod, "nItemPed", item.PurchaseOrderItem)
	addOptional(prod, "nFCI", item.FCI)
}

// buildItemTaxes writes the imposto group. A service item carries ISSQN
// alone; goods items dispatch through the per-family rule tables.
func (s *Serializer) buildItemTaxes(det *etree.Element, item *model.Item, doc *model.Document) error {
	imposto := det.CreateElement("imposto")
	if !item.ApproxTaxes.IsZero() {
		addText(imposto, "vTotTrib", format.Decimal2(item.ApproxTaxes))
	}

	if item.Service != nil {
		buildISSQN(imposto, item.Service)
		return nil
	}

	if err := buildICMS(imposto, doc, item); err != nil {
		return err
	}
	if err := buildIPI(imposto, item); err != nil {
		return err
	}
	if doc.Model == model.ModelNFe {
		if err := buildPIS(imposto, item); err != nil {
			return err
		}
		if err := buildCOFINS(imposto, item); err != nil {
			return err
		}
		buildDestinationShare(imposto, item)
	}
	return nil
}

func buildISSQN(imposto *etree.Element, sv *model.ServiceTax) {
	n := imposto.CreateElement("ISSQN")
	addText(n, "vBC", format.Decimal2(sv.Base))
	addText(n, "vAliq", format.Decimal2(sv.Rate))
	addText(n, "vISSQN", format.Decimal2(sv.Value))
	addText(n, "cMunFG", sv.MunicipalityCode)
	addText(n, "cListServ", sv.ServiceListCode)
	addText(n, "indISS", sv.TaxabilityIndicator)
	addText(n, "indIncentivo", sv.IncentiveIndicator)
}

func buildDestinationShare(imposto *etree.Element, item *model.Item) {
	d := item.DestinationShare
	if d == nil {
		return
	}
	n := imposto.CreateElement("ICMSUFDest")
	addText(n, "vBCUFDest", format.Decimal2(d.Base))
	if d.FCPBase.Valid {
		addText(n, "vBCFCPUFDest", format.Decimal2(d.FCPBase.Decimal))
	}
	addText(n, "pFCPUFDest", format.Decimal4(d.FCPRate))
	addText(n, "pICMSUFDest", format.Decimal4(d.DestinationRate))
	addText(n, "pICMSInter", format.Decimal2(d.InterstateRate))
	addText(n, "pICMSInterPart", format.Decimal4(d.ShareRate))
	if d.FCPValue.Valid {
		addText(n, "vFCPUFDest", format.Decimal2(d.FCPValue.Decimal))
	}
	addText(n, "vICMSUFDest", format.Decimal2(d.DestinationValue))
	addText(n, "vICMSUFRemet", format.Decimal2(d.OriginValue))
}

// buildReturnedTax writes impostoDevol for returned-goods documents
func buildReturnedTax(det *etree.Element, item *model.Item) {
	if item.ReturnedIPI.IsZero() {
		return
	}
	percent := decimal.NewFromInt(100)
	if item.ReturnedPercent.Valid {
		percent = item.ReturnedPercent.Decimal
	}
	n := det.CreateElement("impostoDevol")
	addText(n, "pDevol", format.Decimal2(percent))
	ipi := n.CreateElement("IPI")
	addText(ipi, "vIPIDevol", format.Decimal2(item.ReturnedIPI))
}
