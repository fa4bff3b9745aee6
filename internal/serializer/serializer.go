// Package serializer turns fiscal documents and their events into the
// authority XML layout. It owns element ordering, per-field formatting
// and the tax-group decision tables; signing and transmission happen
// elsewhere.
package serializer

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/nfe-serializer/internal/format"
	"github.com/rezonia/nfe-serializer/internal/jurisdiction"
	"github.com/rezonia/nfe-serializer/internal/model"
)

const (
	// NamespaceNFe is the fiscal-document XML namespace
	NamespaceNFe = "http://www.portalfiscal.inf.br/nfe"

	// LayoutVersion is the document schema layout generated here
	LayoutVersion = "4.00"
	// EventLayoutVersion is the event schema layout
	EventLayoutVersion = "1.00"

	// DefaultApplicationName prefixes the verProc software identification
	DefaultApplicationName = "nfe-serializer"
)

// Resolver supplies the municipality and country lookups the serializer
// does not own. Implementations typically wrap the IBGE tables.
type Resolver interface {
	// MunicipalityCode resolves a municipality name within a state to its code
	MunicipalityCode(municipality, uf string) (string, error)

	// MunicipalityName resolves a municipality code within a state to its name
	MunicipalityName(code, uf string) (string, error)

	// CountryName resolves a country code to its name
	CountryName(code string) (string, error)
}

// Serializer builds authority XML trees from documents. Configuration is
// fixed at construction; instances are safe for concurrent use and never
// retain or mutate the documents they serialize.
type Serializer struct {
	resolver    Resolver
	env         model.Environment
	contingency string
	cpfOnly     bool
	appName     string
	logger      *slog.Logger
}

// Option configures a Serializer at construction time
type Option func(*Serializer)

// WithHomologation targets the authority test environment
func WithHomologation() Option {
	return func(s *Serializer) {
		s.env = model.EnvironmentHomologation
	}
}

// WithContingency switches emission to offline contingency with the
// given justification text
func WithContingency(justification string) Option {
	return func(s *Serializer) {
		s.contingency = justification
	}
}

// WithCPFOnlyRecipient reduces recipients to their CPF element, the
// simplified shape consumer receipts may use
func WithCPFOnlyRecipient() Option {
	return func(s *Serializer) {
		s.cpfOnly = true
	}
}

// WithApplicationName overrides the software name written into verProc
func WithApplicationName(name string) Option {
	return func(s *Serializer) {
		s.appName = name
	}
}

// WithLogger attaches a structured logger; the default discards
func WithLogger(logger *slog.Logger) Option {
	return func(s *Serializer) {
		s.logger = logger
	}
}

// New creates a Serializer targeting production unless configured otherwise
func New(resolver Resolver, opts ...Option) (*Serializer, error) {
	s := &Serializer{
		resolver: resolver,
		env:      model.EnvironmentProduction,
		appName:  DefaultApplicationName,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		return nil, model.NewMissingRequiredFieldError("resolver", "serializer construction")
	}
	if s.contingency != "" {
		if n := len([]rune(s.contingency)); n < 15 || n > 256 {
			return nil, model.NewConsistencyError("contingency justification must have 15 to 256 characters")
		}
	}
	return s, nil
}

// Environment returns the configured authority environment
func (s *Serializer) Environment() model.Environment {
	return s.env
}

// Serialize builds the complete NFe tree of one document. The returned
// tree is exclusively owned by the caller.
func (s *Serializer) Serialize(doc *model.Document) (*etree.Document, error) {
	if err := s.checkDocument(doc); err != nil {
		return nil, err
	}

	xml := etree.NewDocument()
	nfe := xml.CreateElement("NFe")
	nfe.CreateAttr("xmlns", NamespaceNFe)

	inf := nfe.CreateElement("infNFe")
	inf.CreateAttr("Id", "NFe"+doc.AccessKey)
	inf.CreateAttr("versao", LayoutVersion)

	if err := s.buildIdentification(inf, doc); err != nil {
		return nil, err
	}
	if err := s.buildEmitter(inf, doc); err != nil {
		return nil, err
	}
	if err := s.buildRecipient(inf, doc); err != nil {
		return nil, err
	}
	s.buildAuthorized(inf, doc)
	if err := s.buildLocation(inf, "retirada", doc.Pickup); err != nil {
		return nil, err
	}
	if err := s.buildLocation(inf, "entrega", doc.Delivery); err != nil {
		return nil, err
	}
	for i := range doc.Items {
		if err := s.buildItem(inf, i+1, &doc.Items[i], doc); err != nil {
			return nil, err
		}
	}
	s.buildTotals(inf, doc)
	s.buildTransport(inf, doc)
	s.buildBilling(inf, doc)
	s.buildPayment(inf, doc)
	s.buildIntermediary(inf, doc)
	s.buildAdditionalInfo(inf, doc)
	s.buildTechnicalResponsible(inf, doc)

	s.logger.Debug("document serialized",
		"model", int(doc.Model),
		"series", doc.Series,
		"number", doc.Number,
	)
	return xml, nil
}

func (s *Serializer) checkDocument(doc *model.Document) error {
	if doc.Model != model.ModelNFe && doc.Model != model.ModelNFCe {
		return model.NewConsistencyError(fmt.Sprintf("unknown document model %d", doc.Model))
	}
	if doc.Model == model.ModelNFe && doc.Recipient == nil {
		return model.NewMissingRequiredFieldError("Recipient", "invoices require a recipient")
	}
	return nil
}

// effectiveEmission applies the contingency configuration without
// touching the input document
func (s *Serializer) effectiveEmission(doc *model.Document) (model.EmissionType, error) {
	if s.contingency == "" {
		return doc.EmissionType, nil
	}
	if doc.EmissionType != model.EmissionNormal {
		return 0, model.NewConsistencyError(fmt.Sprintf(
			"contingency is configured but the document carries emission type %d", doc.EmissionType))
	}
	return model.EmissionOfflineContingency, nil
}

func (s *Serializer) buildIdentification(inf *etree.Element, doc *model.Document) error {
	emission, err := s.effectiveEmission(doc)
	if err != nil {
		return err
	}
	stateCode, ok := jurisdiction.Code(doc.UF)
	if !ok {
		return model.NewUnsupportedJurisdictionError(doc.UF)
	}

	receipt := doc.Model == model.ModelNFCe
	issued := format.DateTime(doc.IssuedAt)

	ide := inf.CreateElement("ide")
	addText(ide, "cUF", stateCode)
	addText(ide, "cNF", doc.RandomCode)
	addText(ide, "natOp", doc.OperationNature)
	addText(ide, "mod", strconv.Itoa(int(doc.Model)))
	addText(ide, "serie", doc.Series)
	addText(ide, "nNF", doc.Number)
	addText(ide, "dhEmi", issued)
	if !receipt && doc.DepartureAt != nil {
		addText(ide, "dhSaiEnt", format.DateTime(*doc.DepartureAt))
	}
	addText(ide, "tpNF", strconv.Itoa(int(doc.OperationType)))
	if receipt {
		addText(ide, "idDest", "1")
	} else {
		addText(ide, "idDest", strconv.Itoa(doc.DestinationIndicator))
	}
	addText(ide, "cMunFG", doc.MunicipalityCode)
	addText(ide, "tpImp", strconv.Itoa(doc.PrintFormat))
	addText(ide, "tpEmis", strconv.Itoa(int(emission)))
	addText(ide, "cDV", doc.CheckDigit)
	addText(ide, "tpAmb", strconv.Itoa(int(s.env)))
	addText(ide, "finNFe", strconv.Itoa(int(doc.Purpose)))
	if receipt {
		addText(ide, "indFinal", "1")
		addText(ide, "indPres", "1")
	} else {
		addText(ide, "indFinal", boolFlag(doc.FinalConsumer))
		addText(ide, "indPres", strconv.Itoa(doc.PresenceIndicator))
	}
	addText(ide, "procEmi", strconv.Itoa(doc.EmissionProcess))
	addText(ide, "verProc", s.processIdentification(doc))

	if !receipt {
		for _, key := range doc.ReferencedKeys {
			ref := ide.CreateElement("NFref")
			addText(ref, "refNFe", key)
		}
	}
	if emission == model.EmissionOfflineContingency && s.contingency != "" {
		addText(ide, "dhCont", issued)
		addText(ide, "xJust", s.contingency)
	}
	return nil
}

func (s *Serializer) processIdentification(doc *model.Document) string {
	if doc.ProcessVersion == "" {
		return s.appName
	}
	return s.appName + " " + doc.ProcessVersion
}

// addText appends a child element carrying plain text
func addText(parent *etree.Element, tag, text string) *etree.Element {
	e := parent.CreateElement(tag)
	e.SetText(text)
	return e
}

// addOptional appends the element only when the text is non-empty
func addOptional(parent *etree.Element, tag, text string) {
	if text != "" {
		addText(parent, tag, text)
	}
}

// addNonZero2 appends a two-decimal value only when it is non-zero
func addNonZero2(parent *etree.Element, tag string, d decimal.Decimal) {
	if !d.IsZero() {
		addText(parent, tag, format.Decimal2(d))
	}
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
