package serializer

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/nfe-serializer/internal/format"
	"github.com/rezonia/nfe-serializer/internal/model"
)

// icmsBuilder writes the regime-specific sub-tree under ICMS. Builders
// are append-only: every field they emit is mandated for the code, in
// schema order, so nothing is ever inserted and removed again.
type icmsBuilder func(icms *etree.Element, doc *model.Document, t *model.ICMSTax)

// icmsBuilders is the regime decision table. One entry per supported
// code; a lookup miss is an unknown-regime error, never a fallback shape.
var icmsBuilders = map[model.ICMSRegime]icmsBuilder{
	"00": buildICMS00,
	"10": buildICMS10,
	"20": buildICMS20,
	"30": buildICMS30,
	"40": buildICMSExempt,
	"41": buildICMSExempt,
	"50": buildICMSExempt,
	"51": buildICMS51,
	"60": buildICMS60,
	"70": buildICMS70,
	"90": buildICMS90,

	"101": buildICMSSN101,
	"102": buildICMSSN102,
	"103": buildICMSSN102,
	"201": buildICMSSN201,
	"300": buildICMSSN102,
	"400": buildICMSSN102,
	"500": buildICMSSN500,
	"900": buildICMSSN900,

	model.RegimeST: buildICMSSubstitution,
}

func buildICMS(imposto *etree.Element, doc *model.Document, item *model.Item) error {
	build, ok := icmsBuilders[item.ICMS.Regime]
	if !ok {
		return model.NewUnknownTaxRegimeError(string(item.ICMS.Regime), "ICMS")
	}
	icms := imposto.CreateElement("ICMS")
	build(icms, doc, &item.ICMS)
	return nil
}

// newRegimeNode opens the per-regime sub-tree with the origin and the
// regime code under the given tag (CST or CSOSN)
func newRegimeNode(icms *etree.Element, name, codeTag string, t *model.ICMSTax) *etree.Element {
	n := icms.CreateElement(name)
	addText(n, "orig", strconv.Itoa(t.Origin))
	addText(n, codeTag, string(t.Regime))
	return n
}

func buildICMS00(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMS00", "CST", t)
	addText(n, "modBC", strconv.Itoa(t.BCMode))
	addText(n, "vBC", format.Decimal2(t.Base))
	addText(n, "pICMS", format.Decimal2(t.Rate))
	addText(n, "vICMS", format.Decimal2(t.Value))
}

func buildICMS10(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMS10", "CST", t)
	addText(n, "modBC", strconv.Itoa(t.BCMode))
	addText(n, "vBC", format.Decimal2(t.Base))
	addText(n, "pICMS", format.Decimal2(t.Rate))
	addText(n, "vICMS", format.Decimal2(t.Value))
	addSubstitutionBlock(n, t)
}

func buildICMS20(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMS20", "CST", t)
	addText(n, "modBC", strconv.Itoa(t.BCMode))
	addText(n, "pRedBC", format.Decimal4(t.BaseReduction))
	addText(n, "vBC", format.Decimal2(t.Base))
	addText(n, "pICMS", format.Decimal2(t.Rate))
	addText(n, "vICMS", format.Decimal2(t.Value))
	addPovertyFund(n, t)
}

// buildICMS30 covers substitution-only taxation; the shape has no own-tax
// fields and never carries modBC
func buildICMS30(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMS30", "CST", t)
	addText(n, "modBCST", strconv.Itoa(t.STBCMode))
	addText(n, "vBCST", format.Decimal2(t.STBase))
	addText(n, "pICMSST", format.Decimal4(t.STRate))
	addText(n, "vICMSST", format.Decimal2(t.STValue))
}

// buildICMSExempt covers codes 40, 41 and 50 (exemption, non-incidence
// and suspension): origin and code only
func buildICMSExempt(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	newRegimeNode(icms, "ICMS40", "CST", t)
}

func buildICMS51(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMS51", "CST", t)
	addText(n, "modBC", strconv.Itoa(t.BCMode))
	addText(n, "pRedBC", format.Decimal4(t.BaseReduction))
	addText(n, "vBC", format.Decimal2(t.Base))
	addText(n, "pICMS", format.Decimal2(t.Rate))
	addText(n, "vICMS", format.Decimal2(t.Value))
}

func buildICMS60(icms *etree.Element, doc *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMS60", "CST", t)
	addRetainedBlock(n, doc, t)
}

func buildICMS70(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMS70", "CST", t)
	addText(n, "modBC", strconv.Itoa(t.BCMode))
	addText(n, "pRedBC", format.Decimal4(t.BaseReduction))
	addText(n, "vBC", format.Decimal2(t.Base))
	addText(n, "pICMS", format.Decimal2(t.Rate))
	addText(n, "vICMS", format.Decimal2(t.Value))
	addSubstitutionBlock(n, t)
	addPovertyFund(n, t)
}

func buildICMS90(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMS90", "CST", t)
	addText(n, "modBC", strconv.Itoa(t.BCMode))
	addText(n, "vBC", format.Decimal2(t.Base))
	addText(n, "pICMS", format.Decimal2(t.Rate))
	addText(n, "vICMS", format.Decimal2(t.Value))
	addText(n, "modBCST", strconv.Itoa(t.STBCMode))
	addText(n, "vBCST", format.Decimal2(t.STBase))
	addText(n, "pICMSST", format.Decimal4(t.STRate))
	addText(n, "vICMSST", format.Decimal2(t.STValue))
}

// buildICMSSubstitution is the ICMSST shape of documents that carry
// goods whose tax was withheld before (wire code 41)
func buildICMSSubstitution(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := icms.CreateElement("ICMSST")
	addText(n, "orig", strconv.Itoa(t.Origin))
	addText(n, "CST", "41")
	addText(n, "vBCSTRet", format.Decimal2(t.RetainedBase))
	addText(n, "vICMSSTRet", format.Decimal2(t.RetainedValue))
	addText(n, "vBCSTDest", format.Decimal2(t.DestinationBase))
	addText(n, "vICMSSTDest", format.Decimal2(t.DestinationValue))
}

func buildICMSSN101(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMSSN101", "CSOSN", t)
	addText(n, "pCredSN", format.Decimal2(t.CreditRate))
	addText(n, "vCredICMSSN", format.Decimal2(t.CreditValue))
}

// buildICMSSN102 covers the no-field CSOSN group 102/103/300/400
func buildICMSSN102(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	newRegimeNode(icms, "ICMSSN102", "CSOSN", t)
}

func buildICMSSN201(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMSSN201", "CSOSN", t)
	addText(n, "modBCST", strconv.Itoa(t.STBCMode))
	addText(n, "pMVAST", format.Decimal2(t.STMVA))
	addText(n, "pRedBCST", format.Decimal2(t.STBaseReduction))
	addText(n, "vBCST", format.Decimal2(t.STBase))
	addText(n, "pICMSST", format.Decimal4(t.STRate))
	addText(n, "vICMSST", format.Decimal2(t.STValue))
	addPovertyFund(n, t)
	addText(n, "pCredSN", format.Decimal2(t.CreditRate))
	addText(n, "vCredICMSSN", format.Decimal2(t.CreditValue))
}

func buildICMSSN500(icms *etree.Element, doc *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMSSN500", "CSOSN", t)
	addRetainedBlock(n, doc, t)
}

func buildICMSSN900(icms *etree.Element, _ *model.Document, t *model.ICMSTax) {
	n := newRegimeNode(icms, "ICMSSN900", "CSOSN", t)
	addText(n, "modBC", strconv.Itoa(t.BCMode))
	addText(n, "vBC", format.Decimal2(t.Base))
	addText(n, "pRedBC", format.Decimal4(t.BaseReduction))
	addText(n, "pICMS", format.Decimal2(t.Rate))
	addText(n, "vICMS", format.Decimal2(t.Value))
	addText(n, "modBCST", strconv.Itoa(t.STBCMode))
	addText(n, "pMVAST", format.Decimal4(t.STMVA))
	addText(n, "pRedBCST", format.Decimal4(t.STBaseReduction))
	addText(n, "vBCST", format.Decimal2(t.STBase))
	addText(n, "pICMSST", format.Decimal4(t.STRate))
	addText(n, "vICMSST", format.Decimal2(t.STValue))
}

// addSubstitutionBlock writes the forward-substitution fields of codes
// 10 and 70; percentage fields appear only when set
func addSubstitutionBlock(n *etree.Element, t *model.ICMSTax) {
	addText(n, "modBCST", strconv.Itoa(t.STBCMode))
	if !t.STMVA.IsZero() {
		addText(n, "pMVAST", format.Decimal2(t.STMVA))
	}
	if !t.STBaseReduction.IsZero() {
		addText(n, "pRedBCST", format.Decimal2(t.STBaseReduction))
	}
	addText(n, "vBCST", format.Decimal2(t.STBase))
	addText(n, "pICMSST", format.Decimal4(t.STRate))
	addText(n, "vICMSST", format.Decimal2(t.STValue))
}

// addRetainedBlock writes the earlier-withheld substitution fields of
// codes 60 and 500. Final-consumer sales without withheld tax present
// the zeroed retention plus the effective-tax group; everything else
// carries the computed retention forward.
func addRetainedBlock(n *etree.Element, doc *model.Document, t *model.ICMSTax) {
	if doc.FinalConsumer && !t.STWithheld {
		addText(n, "vBCSTRet", format.Decimal2(decimal.Zero))
		addText(n, "pST", format.Decimal4(decimal.Zero))
		addText(n, "vICMSSubstituto", format.Decimal2(t.SubstituteValue))
		addText(n, "vICMSSTRet", format.Decimal2(decimal.Zero))
		addText(n, "pRedBCEfet", format.Decimal4(t.EffectiveBaseReduction))
		addText(n, "vBCEfet", format.Decimal2(t.EffectiveBase))
		addText(n, "pICMSEfet", format.Decimal4(t.EffectiveRate))
		addText(n, "vICMSEfet", format.Decimal2(t.EffectiveValue))
		return
	}
	addText(n, "vBCSTRet", format.Decimal2(t.RetainedBase))
	addText(n, "pST", format.Decimal4(t.RetainedRate))
	addText(n, "vICMSSubstituto", format.Decimal2(t.SubstituteValue))
	addText(n, "vICMSSTRet", format.Decimal2(t.RetainedValue))
}

// addPovertyFund writes the FCP trio when the fund value is present
func addPovertyFund(n *etree.Element, t *model.ICMSTax) {
	if t.FCPValue.IsZero() {
		return
	}
	addText(n, "vBCFCP", format.Decimal2(t.FCPBase))
	addText(n, "pFCP", format.Decimal2(t.FCPRate))
	addText(n, "vFCP", format.Decimal2(t.FCPValue))
}
