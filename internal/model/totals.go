package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals aggregates the document-level tax totals (ICMSTot and, when a
// service base is present, ISSQNtot). Values are supplied by the caller;
// the engine formats, it does not compute.
type Totals struct {
	ICMSBase     decimal.Decimal // vBC
	ICMSValue    decimal.Decimal // vICMS
	ICMSExempted decimal.Decimal // vICMSDeson

	// Interstate sharing totals, written only when non-zero
	FCPDestinationValue  decimal.Decimal // vFCPUFDest
	ICMSDestinationValue decimal.Decimal // vICMSUFDest
	ICMSOriginValue      decimal.Decimal // vICMSUFRemet

	FCPValue           decimal.Decimal // vFCP
	STBase             decimal.Decimal // vBCST
	STValue            decimal.Decimal // vST
	FCPSTValue         decimal.Decimal // vFCPST
	FCPSTRetainedValue decimal.Decimal // vFCPSTRet

	GoodsTotal       decimal.Decimal // vProd, emitted as absolute value
	FreightTotal     decimal.Decimal // vFrete
	InsuranceTotal   decimal.Decimal // vSeg
	DiscountTotal    decimal.Decimal // vDesc
	IITotal          decimal.Decimal // vII
	IPITotal         decimal.Decimal // vIPI
	IPIReturnedTotal decimal.Decimal // vIPIDevol
	PISTotal         decimal.Decimal // vPIS
	COFINSTotal      decimal.Decimal // vCOFINS
	OtherTotal       decimal.Decimal // vOutro
	DocumentTotal    decimal.Decimal // vNF
	ApproxTaxes      decimal.Decimal // vTotTrib, written only when non-zero

	// Service totals; a non-zero ServiceBase selects the ISSQNtot group
	ServiceBase       decimal.Decimal // feeds both vServ and vBC
	ServiceValue      decimal.Decimal // vISS
	ServicePIS        decimal.Decimal // vPIS
	ServiceCOFINS     decimal.Decimal // vCOFINS
	ServiceRetained   decimal.Decimal // vISSRet
	ServiceRegimeCode string          // cRegTrib
	// ServiceCompetence defaults to the document emission date when nil
	ServiceCompetence *time.Time // dCompet
}
