// Package nfelib provides a public API for serializing Brazilian fiscal
// documents (NFe model 55 and NFCe model 65) into the authority XML
// layout, including emission events and NFCe QR-code generation.
//
// Example usage:
//
//	srz, err := nfelib.New(resolver, nfelib.WithHomologation())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tree, err := srz.Serialize(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	xml, _ := tree.WriteToString()
//	fmt.Println(xml)
package nfelib

import (
	"github.com/rezonia/nfe-serializer/internal/model"
	"github.com/rezonia/nfe-serializer/internal/qrcode"
	"github.com/rezonia/nfe-serializer/internal/serializer"
)

// Re-export core types for public API
type (
	Document             = model.Document
	Party                = model.Party
	Address              = model.Address
	AuthorizedParty      = model.AuthorizedParty
	Location             = model.Location
	Item                 = model.Item
	ICMSTax              = model.ICMSTax
	IPITax               = model.IPITax
	PISTax               = model.PISTax
	COFINSTax            = model.COFINSTax
	ServiceTax           = model.ServiceTax
	DestinationShare     = model.DestinationShare
	Totals               = model.Totals
	Transport            = model.Transport
	Carrier              = model.Carrier
	Vehicle              = model.Vehicle
	Volume               = model.Volume
	Payment              = model.Payment
	Card                 = model.Card
	Billing              = model.Billing
	Installment          = model.Installment
	Intermediary         = model.Intermediary
	AdditionalInfo       = model.AdditionalInfo
	TechnicalResponsible = model.TechnicalResponsible
	Event                = model.Event
	AccessKeyParams      = model.AccessKeyParams
)

// Re-export enumerations
type (
	Model          = model.Model
	Environment    = model.Environment
	Purpose        = model.Purpose
	OperationType  = model.OperationType
	EmissionType   = model.EmissionType
	EventType      = model.EventType
	ICMSRegime     = model.ICMSRegime
	ICMSRegimeKind = model.ICMSRegimeKind
)

// Re-export document models
const (
	ModelNFe  = model.ModelNFe
	ModelNFCe = model.ModelNFCe
)

// Re-export environments
const (
	EnvironmentProduction   = model.EnvironmentProduction
	EnvironmentHomologation = model.EnvironmentHomologation
)

// Re-export emission purposes
const (
	PurposeNormal        = model.PurposeNormal
	PurposeComplementary = model.PurposeComplementary
	PurposeAdjustment    = model.PurposeAdjustment
	PurposeReturn        = model.PurposeReturn
)

// Re-export operation directions
const (
	OperationInbound  = model.OperationInbound
	OperationOutbound = model.OperationOutbound
)

// Re-export emission modes
const (
	EmissionNormal             = model.EmissionNormal
	EmissionOfflineContingency = model.EmissionOfflineContingency
)

// Re-export event types
const (
	EventCancellation = model.EventCancellation
	EventCorrection   = model.EventCorrection
	EventNotRealized  = model.EventNotRealized
)

// Re-export tax regime kinds and the substitution marker
const (
	RegimeUnknown      = model.RegimeUnknown
	RegimeStandard     = model.RegimeStandard
	RegimeSimples      = model.RegimeSimples
	RegimeSubstitution = model.RegimeSubstitution
	RegimeST           = model.RegimeST
)

// Re-export payment methods with dedicated behavior
const (
	PaymentMethodNone  = model.PaymentMethodNone
	PaymentMethodOther = model.PaymentMethodOther
)

// Re-export layout constants
const (
	NamespaceNFe       = serializer.NamespaceNFe
	LayoutVersion      = serializer.LayoutVersion
	EventLayoutVersion = serializer.EventLayoutVersion
	QRCodeVersion      = qrcode.Version
)

// Re-export error types
type (
	MissingRequiredFieldError    = model.MissingRequiredFieldError
	UnknownTaxRegimeError        = model.UnknownTaxRegimeError
	UnknownEventTypeError        = model.UnknownEventTypeError
	UnsupportedJurisdictionError = model.UnsupportedJurisdictionError
	ConsistencyError             = model.ConsistencyError
)

// Re-export the serialization engine
type (
	Serializer = serializer.Serializer
	Option     = serializer.Option
	Resolver   = serializer.Resolver
)

// Re-export the QR-code generator
type (
	QRGenerator       = qrcode.Generator
	QRGeneratorOption = qrcode.GeneratorOption
	QRRequest         = qrcode.Request
	QRResult          = qrcode.Result
)

// Re-export constructors, options and access-key helpers
var (
	New                  = serializer.New
	WithHomologation     = serializer.WithHomologation
	WithContingency      = serializer.WithContingency
	WithCPFOnlyRecipient = serializer.WithCPFOnlyRecipient
	WithApplicationName  = serializer.WithApplicationName
	WithLogger           = serializer.WithLogger

	NewQRGenerator = qrcode.NewGenerator
	WithQRLogger   = qrcode.WithLogger

	BuildAccessKey    = model.BuildAccessKey
	ComputeCheckDigit = model.ComputeCheckDigit
	ValidAccessKey    = model.ValidAccessKey
	ParseICMSRegime   = model.ParseICMSRegime
)
