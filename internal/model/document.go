package model

import "time"

// Model identifies the fiscal document model
type Model int

const (
	// ModelNFe is the electronic invoice (NF-e, model 55)
	ModelNFe Model = 55
	// ModelNFCe is the electronic consumer receipt (NFC-e, model 65)
	ModelNFCe Model = 65
)

// Environment selects the authority environment a document is emitted for
type Environment int

const (
	EnvironmentProduction   Environment = 1
	EnvironmentHomologation Environment = 2
)

// Purpose is the emission purpose (finNFe)
type Purpose int

const (
	PurposeNormal        Purpose = 1
	PurposeComplementary Purpose = 2
	PurposeAdjustment    Purpose = 3
	PurposeReturn        Purpose = 4
)

// OperationType distinguishes inbound from outbound operations (tpNF)
type OperationType int

const (
	OperationInbound  OperationType = 0
	OperationOutbound OperationType = 1
)

// EmissionType is the emission mode (tpEmis). EmissionNormal switches to
// EmissionOfflineContingency when the serializer is configured for
// contingency operation.
type EmissionType int

const (
	EmissionNormal             EmissionType = 1
	EmissionOfflineContingency EmissionType = 9
)

// Document is a fiscal document (NF-e or NFC-e) ready for serialization.
// All monetary and quantity fields use decimal values; the serializer
// applies per-field fixed precision when writing them out.
type Document struct {
	// AccessKey is the 44-digit access key (without the "NFe" prefix)
	AccessKey string
	// RandomCode is the 8-digit numeric code (cNF)
	RandomCode string
	// CheckDigit is the access-key check digit (cDV)
	CheckDigit string

	OperationNature string // natOp
	Model           Model
	Series          string
	Number          string

	// IssuedAt carries the emission instant; its location supplies the
	// timezone offset written into dhEmi
	IssuedAt    time.Time
	DepartureAt *time.Time // dhSaiEnt, invoices only

	OperationType        OperationType
	DestinationIndicator int           // idDest, forced to 1 for receipts
	UF                   string        // emitting federative unit, resolved to cUF
	MunicipalityCode     string        // cMunFG
	PrintFormat          int           // tpImp
	EmissionType         EmissionType
	Purpose              Purpose
	FinalConsumer        bool
	PresenceIndicator    int           // indPres, forced to 1 for receipts
	EmissionProcess      int           // procEmi
	ProcessVersion       string

	// ReferencedKeys lists access keys of referenced documents (invoices only)
	ReferencedKeys []string

	Emitter    Party
	Recipient  *Party
	Authorized []AuthorizedParty
	Pickup     *Location
	Delivery   *Location

	Items []Item

	Totals    Totals
	Transport Transport
	Billing   *Billing
	Payment   Payment

	Intermediary         *Intermediary
	AdditionalInfo       *AdditionalInfo
	TechnicalResponsible *TechnicalResponsible
}

// Intermediary identifies a marketplace or ordering platform (infIntermed)
type Intermediary struct {
	CNPJ         string
	Registration string // idCadIntTran
}

// AdditionalInfo carries free-text blocks of the infAdic group
type AdditionalInfo struct {
	FiscalInfo        string // infAdFisco
	ComplementaryInfo string // infCpl
}

// TechnicalResponsible identifies the software maintainer (infRespTec)
type TechnicalResponsible struct {
	CNPJ    string
	Contact string
	Email   string
	Phone   string
}
