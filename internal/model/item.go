package model

import "github.com/shopspring/decimal"

// ICMSRegime is the ICMS tributary situation of a line item: a CST code
// under the standard regime, a CSOSN code under Simples Nacional, or the
// substitution placeholder "ST".
type ICMSRegime string

// ICMSRegimeKind classifies an ICMSRegime code
type ICMSRegimeKind int

const (
	RegimeUnknown ICMSRegimeKind = iota
	RegimeStandard
	RegimeSimples
	RegimeSubstitution
)

// RegimeST is the substitution placeholder regime
const RegimeST ICMSRegime = "ST"

var standardRegimes = map[ICMSRegime]bool{
	"00": true, "10": true, "20": true, "30": true, "40": true, "41": true,
	"50": true, "51": true, "60": true, "70": true, "90": true,
}

var simplesRegimes = map[ICMSRegime]bool{
	"101": true, "102": true, "103": true, "201": true, "300": true,
	"400": true, "500": true, "900": true,
}

// Kind classifies the regime code
func (r ICMSRegime) Kind() ICMSRegimeKind {
	switch {
	case standardRegimes[r]:
		return RegimeStandard
	case simplesRegimes[r]:
		return RegimeSimples
	case r == RegimeST:
		return RegimeSubstitution
	default:
		return RegimeUnknown
	}
}

// Valid reports whether the code belongs to the supported set
func (r ICMSRegime) Valid() bool {
	return r.Kind() != RegimeUnknown
}

// ParseICMSRegime validates a regime code at construction time
func ParseICMSRegime(code string) (ICMSRegime, error) {
	r := ICMSRegime(code)
	if !r.Valid() {
		return "", NewUnknownTaxRegimeError(code, "ICMS")
	}
	return r, nil
}

// Item is one document line (det). A non-nil Service marks the line as a
// municipal-service item: ISSQN replaces every goods tax group for it.
type Item struct {
	Code        string // cProd
	EAN         string // cEAN
	Description string // xProd
	NCM         string
	CEST        string
	BenefitCode string // cBenef
	CFOP        string

	CommercialUnit      string
	CommercialQuantity  decimal.Decimal
	CommercialUnitValue decimal.Decimal
	GrossTotal          decimal.Decimal // vProd

	TaxableEAN       string // cEANTrib
	TaxableUnit      string
	TaxableQuantity  decimal.Decimal
	TaxableUnitValue decimal.Decimal

	Freight       decimal.Decimal
	Discount      decimal.Decimal
	OtherExpenses decimal.Decimal

	// IncludeInTotal is the indTot flag (1 composes the document total)
	IncludeInTotal int

	PurchaseOrder     string // xPed
	PurchaseOrderItem string // nItemPed
	FCI               string // nFCI

	// ApproxTaxes is the approximate total tax burden (vTotTrib)
	ApproxTaxes decimal.Decimal

	ICMS   ICMSTax
	IPI    *IPITax
	PIS    PISTax
	COFINS COFINSTax

	// Service selects the ISSQN group and suppresses ICMS/IPI/PIS/COFINS
	Service *ServiceTax

	// DestinationShare selects the interstate ICMS sharing group (invoices only)
	DestinationShare *DestinationShare

	// ReturnedIPI triggers the impostoDevol group when non-zero
	ReturnedIPI decimal.Decimal
	// ReturnedPercent is pDevol; when not supplied, 100 is emitted
	ReturnedPercent decimal.NullDecimal

	AdditionalInfo string // infAdProd
}

// ICMSTax carries every field any ICMS regime shape can draw from; the
// regime code decides which subset is written out.
type ICMSTax struct {
	Regime ICMSRegime
	Origin int // orig

	BCMode        int             // modBC
	BaseReduction decimal.Decimal // pRedBC
	Base          decimal.Decimal // vBC
	Rate          decimal.Decimal // pICMS
	Value         decimal.Decimal // vICMS

	STBCMode        int             // modBCST
	STMVA           decimal.Decimal // pMVAST, market-value-added percentage
	STBaseReduction decimal.Decimal // pRedBCST
	STBase          decimal.Decimal // vBCST
	STRate          decimal.Decimal // pICMSST
	STValue         decimal.Decimal // vICMSST

	FCPBase  decimal.Decimal // vBCFCP
	FCPRate  decimal.Decimal // pFCP
	FCPValue decimal.Decimal // vFCP

	// Simples Nacional credit transfer
	CreditRate  decimal.Decimal // pCredSN
	CreditValue decimal.Decimal // vCredICMSSN

	// Substitution withheld earlier in the chain (codes 60/500)
	STWithheld      bool
	RetainedBase    decimal.Decimal // vBCSTRet
	RetainedRate    decimal.Decimal // pST
	SubstituteValue decimal.Decimal // vICMSSubstituto
	RetainedValue   decimal.Decimal // vICMSSTRet

	EffectiveBaseReduction decimal.Decimal // pRedBCEfet
	EffectiveBase          decimal.Decimal // vBCEfet
	EffectiveRate          decimal.Decimal // pICMSEfet
	EffectiveValue         decimal.Decimal // vICMSEfet

	// Destination pair of the ICMSST shape
	DestinationBase  decimal.Decimal // vBCSTDest
	DestinationValue decimal.Decimal // vICMSSTDest
}

// IPITax is the IPI group; the situation code splits taxed from not-taxed
type IPITax struct {
	FramingCode   string // cEnq
	SituationCode string // CST
	Base          decimal.Decimal
	Rate          decimal.Decimal
	Value         decimal.Decimal
}

// PISTax group. Rate is a percentage on the rate basis and a per-unit
// currency amount on the quantity basis.
type PISTax struct {
	SituationCode string // CST
	Base          decimal.Decimal
	Rate          decimal.Decimal
	Value         decimal.Decimal
}

// COFINSTax group, same shape rules as PIS
type COFINSTax struct {
	SituationCode string // CST
	Base          decimal.Decimal
	Rate          decimal.Decimal
	Value         decimal.Decimal
}

// ServiceTax is the municipal-service ISSQN group
type ServiceTax struct {
	Base                decimal.Decimal
	Rate                decimal.Decimal
	Value               decimal.Decimal
	MunicipalityCode    string // cMunFG
	ServiceListCode     string // cListServ
	TaxabilityIndicator string // indISS
	IncentiveIndicator  string // indIncentivo
}

// DestinationShare is the interstate ICMS sharing group (ICMSUFDest).
// The two FCP fields distinguish "supplied" from zero.
type DestinationShare struct {
	Base             decimal.Decimal     // vBCUFDest
	FCPBase          decimal.NullDecimal // vBCFCPUFDest
	FCPRate          decimal.Decimal     // pFCPUFDest
	DestinationRate  decimal.Decimal     // pICMSUFDest
	InterstateRate   decimal.Decimal     // pICMSInter
	ShareRate        decimal.Decimal     // pICMSInterPart
	FCPValue         decimal.NullDecimal // vFCPUFDest
	DestinationValue decimal.Decimal     // vICMSUFDest
	OriginValue      decimal.Decimal     // vICMSUFRemet
}
