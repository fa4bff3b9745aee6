package qrcode_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nfe-serializer/internal/model"
	"github.com/rezonia/nfe-serializer/internal/qrcode"
)

const receiptKey = "35250811222333000181650010000000421123456780"

// receiptTree hand-builds the slice of a serialized receipt the
// generator reads: the access key, emission data and grand total
func receiptTree(env string) *etree.Document {
	doc := etree.NewDocument()
	nfe := doc.CreateElement("NFe")
	inf := nfe.CreateElement("infNFe")
	inf.CreateAttr("Id", "NFe"+receiptKey)

	ide := inf.CreateElement("ide")
	ide.CreateElement("cUF").SetText("35")
	ide.CreateElement("dhEmi").SetText("2025-08-14T11:30:00-03:00")
	ide.CreateElement("tpAmb").SetText(env)

	total := inf.CreateElement("total")
	icms := total.CreateElement("ICMSTot")
	icms.CreateElement("vNF").SetText("100.00")
	return doc
}

// signTree appends a minimal XMLDSig envelope carrying the digest
func signTree(doc *etree.Document, digest string, prefix string) {
	nfe := doc.SelectElement("NFe")
	sig := nfe.CreateElement(prefix + "Signature")
	info := sig.CreateElement(prefix + "SignedInfo")
	ref := info.CreateElement(prefix + "Reference")
	ref.CreateElement(prefix + "DigestValue").SetText(digest)
}

var hashSuffix = regexp.MustCompile(`\|[0-9A-F]{40}$`)

func TestGenerate_Online(t *testing.T) {
	doc := receiptTree("2")
	res, err := qrcode.NewGenerator().Generate(doc, qrcode.Request{Token: "000001", CSC: "SEGREDO"})
	require.NoError(t, err)

	// Staging base, layout version 2, token with leading zeros stripped
	wantPrefix := "https://www.homologacao.nfce.fazenda.sp.gov.br/qrcode?p=" + receiptKey + "|2|2|1|"
	assert.True(t, strings.HasPrefix(res.QRCode, wantPrefix), res.QRCode)
	assert.Regexp(t, hashSuffix, res.QRCode)
	assert.Equal(t, "https://www.homologacao.nfce.fazenda.sp.gov.br/consulta", res.LookupURL)
}

func TestGenerate_OnlineProduction(t *testing.T) {
	doc := receiptTree("1")
	res, err := qrcode.NewGenerator().Generate(doc, qrcode.Request{Token: "1", CSC: "SEGREDO"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.QRCode, "https://www.nfce.fazenda.sp.gov.br/qrcode?p="), res.QRCode)
	assert.Contains(t, res.QRCode, "|2|1|1|")
	assert.Equal(t, "https://www.nfce.fazenda.sp.gov.br/consulta", res.LookupURL)
}

func TestGenerate_Deterministic(t *testing.T) {
	req := qrcode.Request{Token: "1", CSC: "SEGREDO"}
	first, err := qrcode.NewGenerator().Generate(receiptTree("2"), req)
	require.NoError(t, err)
	second, err := qrcode.NewGenerator().Generate(receiptTree("2"), req)
	require.NoError(t, err)

	assert.Equal(t, first.QRCode, second.QRCode)
}

func TestGenerate_HashCoversCSC(t *testing.T) {
	first, err := qrcode.NewGenerator().Generate(receiptTree("2"), qrcode.Request{Token: "1", CSC: "SEGREDO"})
	require.NoError(t, err)
	second, err := qrcode.NewGenerator().Generate(receiptTree("2"), qrcode.Request{Token: "1", CSC: "OUTRO"})
	require.NoError(t, err)

	// Same payload, different security code, different hash
	payload := func(qr string) string { return qr[:strings.LastIndex(qr, "|")] }
	assert.Equal(t, payload(first.QRCode), payload(second.QRCode))
	assert.NotEqual(t, first.QRCode, second.QRCode)
}

func TestGenerate_Offline(t *testing.T) {
	doc := receiptTree("2")
	signTree(doc, "ABC+def=", "")

	res, err := qrcode.NewGenerator().Generate(doc, qrcode.Request{Token: "1", CSC: "SEGREDO", Offline: true})
	require.NoError(t, err)

	// Emission day, total and the hex of the lowercased digest join the payload
	wantPrefix := "https://www.homologacao.nfce.fazenda.sp.gov.br/qrcode?p=" +
		receiptKey + "|2|2|14|100.00|6162632b6465663d|1|"
	assert.True(t, strings.HasPrefix(res.QRCode, wantPrefix), res.QRCode)
	assert.Regexp(t, hashSuffix, res.QRCode)
}

func TestGenerate_OfflinePrefixedSignature(t *testing.T) {
	doc := receiptTree("2")
	signTree(doc, "ABC+def=", "ds:")

	res, err := qrcode.NewGenerator().Generate(doc, qrcode.Request{Token: "1", CSC: "SEGREDO", Offline: true})
	require.NoError(t, err)
	assert.Contains(t, res.QRCode, "|6162632b6465663d|")
}

func TestGenerate_OfflineRequiresSignature(t *testing.T) {
	doc := receiptTree("2")
	_, err := qrcode.NewGenerator().Generate(doc, qrcode.Request{Token: "1", CSC: "SEGREDO", Offline: true})

	var missingErr *model.MissingRequiredFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "DigestValue", missingErr.Field)
}

func TestGenerate_MissingCredentials(t *testing.T) {
	tests := []struct {
		name  string
		req   qrcode.Request
		field string
	}{
		{"missing token", qrcode.Request{CSC: "SEGREDO"}, "Token"},
		{"missing csc", qrcode.Request{Token: "1"}, "CSC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := qrcode.NewGenerator().Generate(receiptTree("2"), tt.req)

			var missingErr *model.MissingRequiredFieldError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.field, missingErr.Field)
			assert.Equal(t, "qr code request", missingErr.Context)
		})
	}
}

func TestGenerate_JurisdictionWithoutProgram(t *testing.T) {
	doc := receiptTree("2")
	doc.FindElement("//ide/cUF").SetText("42") // SC has no consumer-receipt program

	_, err := qrcode.NewGenerator().Generate(doc, qrcode.Request{Token: "1", CSC: "SEGREDO"})

	var jurisErr *model.UnsupportedJurisdictionError
	require.ErrorAs(t, err, &jurisErr)
	assert.Equal(t, "SC", jurisErr.UF)
}

func TestGenerate_UnknownStateCode(t *testing.T) {
	doc := receiptTree("2")
	doc.FindElement("//ide/cUF").SetText("99")

	_, err := qrcode.NewGenerator().Generate(doc, qrcode.Request{Token: "1", CSC: "SEGREDO"})

	var jurisErr *model.UnsupportedJurisdictionError
	require.ErrorAs(t, err, &jurisErr)
	assert.Equal(t, "99", jurisErr.UF)
}

func TestGenerate_MissingTotal(t *testing.T) {
	doc := receiptTree("2")
	icms := doc.FindElement("//total/ICMSTot")
	icms.RemoveChild(icms.SelectElement("vNF"))

	_, err := qrcode.NewGenerator().Generate(doc, qrcode.Request{Token: "1", CSC: "SEGREDO"})

	var missingErr *model.MissingRequiredFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "total/ICMSTot/vNF", missingErr.Field)
}

func TestGenerate_EmbedsSupplementBeforeSignature(t *testing.T) {
	doc := receiptTree("2")
	signTree(doc, "ABC+def=", "")

	res, err := qrcode.NewGenerator().Generate(doc, qrcode.Request{Token: "1", CSC: "SEGREDO"})
	require.NoError(t, err)

	nfe := doc.SelectElement("NFe")
	var tags []string
	for _, child := range nfe.ChildElements() {
		tags = append(tags, child.Tag)
	}
	assert.Equal(t, []string{"infNFe", "infNFeSupl", "Signature"}, tags)

	supl := nfe.SelectElement("infNFeSupl")
	assert.Equal(t, res.QRCode, supl.SelectElement("qrCode").Text())
	assert.Equal(t, res.LookupURL, supl.SelectElement("urlChave").Text())

	// The QR payload is wrapped in CDATA on the wire
	out, err := doc.WriteToString()
	require.NoError(t, err)
	assert.Contains(t, out, "<![CDATA[")
}
