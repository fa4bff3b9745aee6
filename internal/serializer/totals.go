package serializer

import (
	"github.com/beevik/etree"

	"github.com/rezonia/nfe-serializer/internal/format"
	"github.com/rezonia/nfe-serializer/internal/model"
)

// buildTotals writes the total section. ICMSTot is always present with
// every aggregate field; the interstate-split and approximate-tax
// fields appear only when non-zero, and ISSQNtot only when the document
// carries a service base.
func (s *Serializer) buildTotals(inf *etree.Element, doc *model.Document) {
	t := &doc.Totals
	total := inf.CreateElement("total")

	icms := total.CreateElement("ICMSTot")
	addText(icms, "vBC", format.Decimal2(t.ICMSBase))
	addText(icms, "vICMS", format.Decimal2(t.ICMSValue))
	addText(icms, "vICMSDeson", format.Decimal2(t.ICMSExempted))
	addNonZero2(icms, "vFCPUFDest", t.FCPDestinationValue)
	addNonZero2(icms, "vICMSUFDest", t.ICMSDestinationValue)
	addNonZero2(icms, "vICMSUFRemet", t.ICMSOriginValue)
	addText(icms, "vFCP", format.Decimal2(t.FCPValue))
	addText(icms, "vBCST", format.Decimal2(t.STBase))
	addText(icms, "vST", format.Decimal2(t.STValue))
	addText(icms, "vFCPST", format.Decimal2(t.FCPSTValue))
	addText(icms, "vFCPSTRet", format.Decimal2(t.FCPSTRetainedValue))
	addText(icms, "vProd", format.Decimal2(t.GoodsTotal.Abs()))
	addText(icms, "vFrete", format.Decimal2(t.FreightTotal))
	addText(icms, "vSeg", format.Decimal2(t.InsuranceTotal))
	addText(icms, "vDesc", format.Decimal2(t.DiscountTotal))
	addText(icms, "vII", format.Decimal2(t.IITotal))
	addText(icms, "vIPI", format.Decimal2(t.IPITotal))
	addText(icms, "vIPIDevol", format.Decimal2(t.IPIReturnedTotal))
	addText(icms, "vPIS", format.Decimal2(t.PISTotal))
	addText(icms, "vCOFINS", format.Decimal2(t.COFINSTotal))
	addText(icms, "vOutro", format.Decimal2(t.OtherTotal))
	addText(icms, "vNF", format.Decimal2(t.DocumentTotal))
	addNonZero2(icms, "vTotTrib", t.ApproxTaxes)

	if t.ServiceBase.IsZero() {
		return
	}
	iss := total.CreateElement("ISSQNtot")
	addText(iss, "vServ", format.Decimal2(t.ServiceBase))
	addText(iss, "vBC", format.Decimal2(t.ServiceBase))
	addNonZero2(iss, "vISS", t.ServiceValue)
	addNonZero2(iss, "vPIS", t.ServicePIS)
	addNonZero2(iss, "vCOFINS", t.ServiceCOFINS)
	competence := doc.IssuedAt
	if t.ServiceCompetence != nil {
		competence = *t.ServiceCompetence
	}
	addText(iss, "dCompet", format.Date(competence))
	addNonZero2(iss, "vISSRet", t.ServiceRetained)
	addOptional(iss, "cRegTrib", t.ServiceRegimeCode)
}
