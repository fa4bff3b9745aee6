package serializer_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nfe-serializer/internal/model"
	"github.com/rezonia/nfe-serializer/internal/serializer"
)

func TestNew_RequiresResolver(t *testing.T) {
	_, err := serializer.New(nil)
	require.Error(t, err)

	var missing *model.MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "resolver", missing.Field)
}

func TestNew_ContingencyJustificationLength(t *testing.T) {
	tests := []struct {
		name          string
		justification string
		wantErr       bool
	}{
		{"too short", "falha na rede", true},
		{"minimum length", "falha de conexao com a SEFAZ", false},
		{"too long", strings.Repeat("x", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := serializer.New(fakeResolver{}, serializer.WithContingency(tt.justification))
			if tt.wantErr {
				var consistency *model.ConsistencyError
				require.ErrorAs(t, err, &consistency)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSerialize_DocumentShape(t *testing.T) {
	doc := receiptDocument()
	tree := serialize(t, doc)

	nfe := tree.SelectElement("NFe")
	require.NotNil(t, nfe)
	assert.Equal(t, "http://www.portalfiscal.inf.br/nfe", nfe.SelectAttrValue("xmlns", ""))

	inf := nfe.SelectElement("infNFe")
	require.NotNil(t, inf)
	assert.Equal(t, "NFe"+doc.AccessKey, inf.SelectAttrValue("Id", ""))
	assert.Equal(t, "4.00", inf.SelectAttrValue("versao", ""))
}

func TestSerialize_SectionOrder(t *testing.T) {
	doc := invoiceDocument()
	doc.Authorized = []model.AuthorizedParty{{CNPJ: "55444333000122"}}
	doc.Pickup = fixtureLocation()
	doc.Delivery = fixtureLocation()
	doc.Billing = &model.Billing{
		Number:        "F-100",
		OriginalValue: num("100"),
		NetValue:      num("100"),
	}
	doc.Intermediary = &model.Intermediary{CNPJ: "10999888000177", Registration: "loja-virtual"}
	doc.AdditionalInfo = &model.AdditionalInfo{ComplementaryInfo: "Pedido 5512"}
	doc.TechnicalResponsible = &model.TechnicalResponsible{
		CNPJ:    "10111222000133",
		Contact: "Suporte",
		Email:   "suporte@example.com",
		Phone:   "1133334444",
	}

	tree := serialize(t, doc)
	inf := tree.FindElement("//infNFe")
	require.NotNil(t, inf)

	assert.Equal(t, []string{
		"ide", "emit", "dest", "autXML", "retirada", "entrega", "det",
		"total", "transp", "cobr", "pag", "infIntermed", "infAdic", "infRespTec",
	}, childTags(inf))
}

func TestSerialize_Identification(t *testing.T) {
	doc := invoiceDocument()
	departure := doc.IssuedAt.Add(2 * time.Hour)
	doc.DepartureAt = &departure
	tree := serialize(t, doc)

	ide := tree.FindElement("//ide")
	require.NotNil(t, ide)
	assert.Equal(t, []string{
		"cUF", "cNF", "natOp", "mod", "serie", "nNF", "dhEmi", "dhSaiEnt",
		"tpNF", "idDest", "cMunFG", "tpImp", "tpEmis", "cDV", "tpAmb",
		"finNFe", "indFinal", "indPres", "procEmi", "verProc",
	}, childTags(ide))

	assert.Equal(t, "35", findText(t, tree, "//ide/cUF"))
	assert.Equal(t, "12345678", findText(t, tree, "//ide/cNF"))
	assert.Equal(t, "VENDA DE MERCADORIA", findText(t, tree, "//ide/natOp"))
	assert.Equal(t, "55", findText(t, tree, "//ide/mod"))
	assert.Equal(t, "1", findText(t, tree, "//ide/serie"))
	assert.Equal(t, "42", findText(t, tree, "//ide/nNF"))
	assert.Equal(t, "2025-08-14T11:30:00-03:00", findText(t, tree, "//ide/dhEmi"))
	assert.Equal(t, "2025-08-14T13:30:00-03:00", findText(t, tree, "//ide/dhSaiEnt"))
	assert.Equal(t, "1", findText(t, tree, "//ide/tpNF"))
	assert.Equal(t, "1", findText(t, tree, "//ide/idDest"))
	assert.Equal(t, "3550308", findText(t, tree, "//ide/cMunFG"))
	assert.Equal(t, "1", findText(t, tree, "//ide/tpEmis"))
	assert.Equal(t, doc.CheckDigit, findText(t, tree, "//ide/cDV"))
	assert.Equal(t, "1", findText(t, tree, "//ide/tpAmb"))
	assert.Equal(t, "1", findText(t, tree, "//ide/finNFe"))
	assert.Equal(t, "0", findText(t, tree, "//ide/indFinal"))
	assert.Equal(t, "9", findText(t, tree, "//ide/indPres"))
	assert.Equal(t, "0", findText(t, tree, "//ide/procEmi"))
	assert.Equal(t, "nfe-serializer", findText(t, tree, "//ide/verProc"))
}

func TestSerialize_ReceiptForcesConsumerPresence(t *testing.T) {
	doc := receiptDocument()
	doc.DestinationIndicator = 2 // receipts ignore the supplied values
	doc.FinalConsumer = false
	doc.PresenceIndicator = 9
	departure := doc.IssuedAt.Add(time.Hour)
	doc.DepartureAt = &departure
	doc.ReferencedKeys = []string{doc.AccessKey}

	tree := serialize(t, doc)

	assert.Equal(t, "65", findText(t, tree, "//ide/mod"))
	assert.Equal(t, "1", findText(t, tree, "//ide/idDest"))
	assert.Equal(t, "1", findText(t, tree, "//ide/indFinal"))
	assert.Equal(t, "1", findText(t, tree, "//ide/indPres"))
	assert.Nil(t, tree.FindElement("//ide/dhSaiEnt"))
	assert.Nil(t, tree.FindElement("//ide/NFref"))
}

func TestSerialize_ReferencedKeys(t *testing.T) {
	doc := invoiceDocument()
	doc.Purpose = model.PurposeReturn
	doc.ReferencedKeys = []string{
		"35250811222333000181550010000000011123456784",
		"35250811222333000181550010000000021123456785",
	}

	tree := serialize(t, doc)

	refs := tree.FindElements("//ide/NFref/refNFe")
	require.Len(t, refs, 2)
	assert.Equal(t, doc.ReferencedKeys[0], refs[0].Text())
	assert.Equal(t, doc.ReferencedKeys[1], refs[1].Text())

	// Referenced keys trail the fixed fields
	ide := tree.FindElement("//ide")
	tags := childTags(ide)
	assert.Equal(t, "verProc", tags[len(tags)-3])
	assert.Equal(t, "NFref", tags[len(tags)-1])
}

func TestSerialize_UnknownModel(t *testing.T) {
	doc := receiptDocument()
	doc.Model = 21

	s, err := serializer.New(fakeResolver{})
	require.NoError(t, err)
	_, err = s.Serialize(doc)

	var consistency *model.ConsistencyError
	require.ErrorAs(t, err, &consistency)
}

func TestSerialize_InvoiceRequiresRecipient(t *testing.T) {
	doc := invoiceDocument()
	doc.Recipient = nil

	s, err := serializer.New(fakeResolver{})
	require.NoError(t, err)
	_, err = s.Serialize(doc)

	var missing *model.MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Recipient", missing.Field)
}

func TestSerialize_ReceiptOmitsRecipient(t *testing.T) {
	doc := receiptDocument()
	require.Nil(t, doc.Recipient)

	tree := serialize(t, doc)
	assert.Nil(t, tree.FindElement("//dest"))
}

func TestSerialize_UnsupportedJurisdiction(t *testing.T) {
	doc := receiptDocument()
	doc.UF = "ZZ"

	s, err := serializer.New(fakeResolver{})
	require.NoError(t, err)
	_, err = s.Serialize(doc)

	var unsupported *model.UnsupportedJurisdictionError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "ZZ", unsupported.UF)
}

func TestSerialize_Contingency(t *testing.T) {
	justification := "falha de conexao com a SEFAZ de origem"
	doc := receiptDocument()

	s, err := serializer.New(fakeResolver{}, serializer.WithContingency(justification))
	require.NoError(t, err)
	tree, err := s.Serialize(doc)
	require.NoError(t, err)

	assert.Equal(t, "9", findText(t, tree, "//ide/tpEmis"))
	assert.Equal(t, findText(t, tree, "//ide/dhEmi"), findText(t, tree, "//ide/dhCont"))
	assert.Equal(t, justification, findText(t, tree, "//ide/xJust"))

	// The input document is never mutated
	assert.Equal(t, model.EmissionNormal, doc.EmissionType)
}

func TestSerialize_ContingencyRejectsExplicitEmissionType(t *testing.T) {
	doc := receiptDocument()
	doc.EmissionType = model.EmissionOfflineContingency

	s, err := serializer.New(fakeResolver{},
		serializer.WithContingency("falha de conexao com a SEFAZ de origem"))
	require.NoError(t, err)
	_, err = s.Serialize(doc)

	var consistency *model.ConsistencyError
	require.ErrorAs(t, err, &consistency)
}

func TestSerialize_NoContingencyKeepsEmissionType(t *testing.T) {
	doc := receiptDocument()
	doc.EmissionType = model.EmissionOfflineContingency

	tree := serialize(t, doc)

	assert.Equal(t, "9", findText(t, tree, "//ide/tpEmis"))
	// Without configured contingency there is no justification block
	assert.Nil(t, tree.FindElement("//ide/dhCont"))
	assert.Nil(t, tree.FindElement("//ide/xJust"))
}

func TestSerialize_ProcessIdentification(t *testing.T) {
	doc := receiptDocument()
	tree := serialize(t, doc)
	assert.Equal(t, "nfe-serializer", findText(t, tree, "//ide/verProc"))

	doc.ProcessVersion = "2.1.0"
	tree = serialize(t, doc)
	assert.Equal(t, "nfe-serializer 2.1.0", findText(t, tree, "//ide/verProc"))

	tree = serialize(t, doc, serializer.WithApplicationName("caixa-pdv"))
	assert.Equal(t, "caixa-pdv 2.1.0", findText(t, tree, "//ide/verProc"))
}

func TestSerialize_Homologation(t *testing.T) {
	doc := receiptDocument()
	tree := serialize(t, doc, serializer.WithHomologation())
	assert.Equal(t, "2", findText(t, tree, "//ide/tpAmb"))

	s, err := serializer.New(fakeResolver{}, serializer.WithHomologation())
	require.NoError(t, err)
	assert.Equal(t, model.EnvironmentHomologation, s.Environment())
}

// fakeResolver satisfies serializer.Resolver with fixed answers
type fakeResolver struct {
	fail bool
}

func (r fakeResolver) MunicipalityCode(municipality, uf string) (string, error) {
	if r.fail {
		return "", errors.New("unknown municipality")
	}
	return "3550308", nil
}

func (r fakeResolver) MunicipalityName(code, uf string) (string, error) {
	if r.fail {
		return "", errors.New("unknown municipality code")
	}
	return "Sao Paulo", nil
}

func (r fakeResolver) CountryName(code string) (string, error) {
	if r.fail {
		return "", errors.New("unknown country")
	}
	return "BRASIL", nil
}

func num(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func serialize(t *testing.T, doc *model.Document, opts ...serializer.Option) *etree.Document {
	t.Helper()
	s, err := serializer.New(fakeResolver{}, opts...)
	require.NoError(t, err)
	tree, err := s.Serialize(doc)
	require.NoError(t, err)
	return tree
}

func childTags(e *etree.Element) []string {
	var tags []string
	for _, c := range e.ChildElements() {
		tags = append(tags, c.Tag)
	}
	return tags
}

func findText(t *testing.T, tree *etree.Document, path string) string {
	t.Helper()
	e := tree.FindElement(path)
	require.NotNil(t, e, "missing element %s", path)
	return e.Text()
}

func fixtureEmitter() model.Party {
	return model.Party{
		CNPJ: "11.222.333/0001-81",
		Name: "Mercado Central Ltda",
		Address: model.Address{
			Street:       "Rua Augusta",
			Number:       "1500",
			District:     "Consolacao",
			Municipality: "Sao Paulo",
			UF:           "SP",
			PostalCode:   "01304-001",
			CountryCode:  "1058",
		},
		StateRegistration: "123456789012",
		TaxRegimeCode:     "3",
	}
}

func fixtureItem() model.Item {
	return model.Item{
		Code:                "SKU001",
		EAN:                 "SEM GTIN",
		Description:         "CAFE TORRADO 500G",
		NCM:                 "09012100",
		CFOP:                "5102",
		CommercialUnit:      "UN",
		CommercialQuantity:  num("2"),
		CommercialUnitValue: num("50"),
		GrossTotal:          num("100"),
		TaxableEAN:          "SEM GTIN",
		TaxableUnit:         "UN",
		TaxableQuantity:     num("2"),
		TaxableUnitValue:    num("50"),
		IncludeInTotal:      1,
		ICMS: model.ICMSTax{
			Regime: "00",
			Origin: 0,
			BCMode: 3,
			Base:   num("100"),
			Rate:   num("18"),
			Value:  num("18"),
		},
		PIS: model.PISTax{
			SituationCode: "01",
			Base:          num("100"),
			Rate:          num("1.65"),
			Value:         num("1.65"),
		},
		COFINS: model.COFINSTax{
			SituationCode: "01",
			Base:          num("100"),
			Rate:          num("7.60"),
			Value:         num("7.60"),
		},
	}
}

func fixtureLocation() *model.Location {
	return &model.Location{
		CNPJ:             "11222333000181",
		Street:           "Av Paulista",
		Number:           "900",
		District:         "Bela Vista",
		MunicipalityCode: "3550308",
		UF:               "SP",
	}
}

func fixtureTotals() model.Totals {
	return model.Totals{
		ICMSBase:      num("100"),
		ICMSValue:     num("18"),
		GoodsTotal:    num("100"),
		PISTotal:      num("1.65"),
		COFINSTotal:   num("7.60"),
		DocumentTotal: num("100"),
	}
}

// invoiceDocument builds a minimal valid model-55 document
func invoiceDocument() *model.Document {
	issued := time.Date(2025, 8, 14, 11, 30, 0, 0, time.FixedZone("-03", -3*3600))
	key := model.BuildAccessKey(model.AccessKeyParams{
		StateCode:    "35",
		Issued:       issued,
		CNPJ:         "11222333000181",
		Model:        model.ModelNFe,
		Series:       "1",
		Number:       "42",
		EmissionType: model.EmissionNormal,
		RandomCode:   "12345678",
	})
	return &model.Document{
		AccessKey:            key,
		RandomCode:           "12345678",
		CheckDigit:           key[43:],
		OperationNature:      "VENDA DE MERCADORIA",
		Model:                model.ModelNFe,
		Series:               "1",
		Number:               "42",
		IssuedAt:             issued,
		OperationType:        model.OperationOutbound,
		DestinationIndicator: 1,
		UF:                   "SP",
		MunicipalityCode:     "3550308",
		PrintFormat:          1,
		EmissionType:         model.EmissionNormal,
		Purpose:              model.PurposeNormal,
		PresenceIndicator:    9,
		Emitter:              fixtureEmitter(),
		Recipient: &model.Party{
			CNPJ: "99.888.777/0001-66",
			Name: "Distribuidora Sul Ltda",
			Address: model.Address{
				Street:       "Rua XV de Novembro",
				Number:       "220",
				District:     "Centro",
				Municipality: "Sao Paulo",
				UF:           "SP",
				PostalCode:   "01013-000",
				CountryCode:  "1058",
			},
			StateRegistration:          "987654321098",
			StateRegistrationIndicator: 1,
		},
		Items:   []model.Item{fixtureItem()},
		Totals:  fixtureTotals(),
		Payment: model.Payment{Method: "15"},
	}
}

// receiptDocument builds a minimal valid model-65 document
func receiptDocument() *model.Document {
	issued := time.Date(2025, 8, 14, 11, 30, 0, 0, time.FixedZone("-03", -3*3600))
	key := model.BuildAccessKey(model.AccessKeyParams{
		StateCode:    "35",
		Issued:       issued,
		CNPJ:         "11222333000181",
		Model:        model.ModelNFCe,
		Series:       "1",
		Number:       "42",
		EmissionType: model.EmissionNormal,
		RandomCode:   "12345678",
	})
	item := fixtureItem()
	item.ICMS = model.ICMSTax{Regime: "102", Origin: 0}
	return &model.Document{
		AccessKey:         key,
		RandomCode:        "12345678",
		CheckDigit:        key[43:],
		OperationNature:   "VENDA",
		Model:             model.ModelNFCe,
		Series:            "1",
		Number:            "42",
		IssuedAt:          issued,
		OperationType:     model.OperationOutbound,
		UF:                "SP",
		MunicipalityCode:  "3550308",
		PrintFormat:       4,
		EmissionType:      model.EmissionNormal,
		Purpose:           model.PurposeNormal,
		FinalConsumer:     true,
		PresenceIndicator: 1,
		Emitter:           fixtureEmitter(),
		Items:             []model.Item{item},
		Totals:            fixtureTotals(),
		Payment:           model.Payment{Method: "01"},
	}
}
