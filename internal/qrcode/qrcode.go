// Package qrcode augments serialized consumer receipts with the
// infNFeSupl block: the authority QR-code payload and the human lookup
// URL for the emitting jurisdiction.
package qrcode

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/beevik/etree"

	"github.com/rezonia/nfe-serializer/internal/jurisdiction"
	"github.com/rezonia/nfe-serializer/internal/model"
)

// Version is the QR-code payload layout emitted here
const Version = "2"

// Request carries the per-emitter security credentials and the
// contingency mode for one generation call.
type Request struct {
	// Token is the CSC identifier assigned by the jurisdiction; leading
	// zeros are stripped on the wire
	Token string
	// CSC is the taxpayer security code appended before hashing, never
	// written into the document
	CSC string
	// Offline selects the contingency payload, which requires the
	// document to be signed beforehand
	Offline bool
}

// Result reports what was embedded into the document
type Result struct {
	QRCode    string
	LookupURL string
}

// GeneratorOption configures a Generator at construction time
type GeneratorOption func(*Generator)

// WithLogger attaches a structured logger; the default discards
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// Generator computes and embeds QR payloads. Instances are stateless
// apart from logging and safe for concurrent use.
type Generator struct {
	logger *slog.Logger
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate reads the serialized receipt, computes the QR payload and
// inserts infNFeSupl between infNFe and the signature. The environment
// and jurisdiction come from the document itself.
func (g *Generator) Generate(doc *etree.Document, req Request) (*Result, error) {
	if req.Token == "" {
		return nil, model.NewMissingRequiredFieldError("Token", "qr code request")
	}
	if req.CSC == "" {
		return nil, model.NewMissingRequiredFieldError("CSC", "qr code request")
	}

	nfe := doc.SelectElement("NFe")
	if nfe == nil {
		return nil, model.NewMissingRequiredFieldError("NFe", "serialized document")
	}
	inf := nfe.SelectElement("infNFe")
	if inf == nil {
		return nil, model.NewMissingRequiredFieldError("infNFe", "serialized document")
	}
	key := strings.TrimPrefix(inf.SelectAttrValue("Id", ""), "NFe")
	if key == "" {
		return nil, model.NewMissingRequiredFieldError("Id", "serialized document")
	}

	issued, err := elementText(inf, "ide/dhEmi")
	if err != nil {
		return nil, err
	}
	env, err := elementText(inf, "ide/tpAmb")
	if err != nil {
		return nil, err
	}
	stateCode, err := elementText(inf, "ide/cUF")
	if err != nil {
		return nil, err
	}
	total, err := elementText(inf, "total/ICMSTot/vNF")
	if err != nil {
		return nil, err
	}

	uf, ok := jurisdiction.UF(stateCode)
	if !ok {
		return nil, model.NewUnsupportedJurisdictionError(stateCode)
	}
	endpoints, ok := jurisdiction.NFCeEndpoints(uf)
	if !ok {
		return nil, model.NewUnsupportedJurisdictionError(uf)
	}
	qrBase, lookup := endpoints.ForEnvironment(env == "1")

	token := strings.TrimLeft(req.Token, "0")
	parts := []string{key, Version, env, token}
	if req.Offline {
		if len(issued) < 10 {
			return nil, model.NewConsistencyError(fmt.Sprintf("malformed emission timestamp %q", issued))
		}
		digest, err := signatureDigest(nfe)
		if err != nil {
			return nil, err
		}
		parts = []string{key, Version, env, issued[8:10], total, digest, token}
	}
	payload := strings.Join(parts, "|")

	sum := sha1.Sum([]byte(payload + req.CSC))
	qr := fmt.Sprintf("%sp=%s|%X", qrBase, payload, sum)

	supl := etree.NewElement("infNFeSupl")
	supl.CreateElement("qrCode").CreateCData(qr)
	supl.CreateElement("urlChave").SetText(lookup)
	nfe.InsertChildAt(1, supl)

	g.logger.Debug("qr code embedded",
		"uf", uf,
		"offline", req.Offline,
	)
	return &Result{QRCode: qr, LookupURL: lookup}, nil
}

func elementText(inf *etree.Element, path string) (string, error) {
	e := inf.FindElement(path)
	if e == nil {
		return "", model.NewMissingRequiredFieldError(path, "serialized document")
	}
	return e.Text(), nil
}

// signatureDigest pulls the XMLDSig digest and re-encodes it the way
// offline payloads expect: the hex bytes of the lowercased base64 text
func signatureDigest(nfe *etree.Element) (string, error) {
	e := nfe.FindElement("Signature/SignedInfo/Reference/DigestValue")
	if e == nil {
		e = nfe.FindElement("ds:Signature/ds:SignedInfo/ds:Reference/ds:DigestValue")
	}
	if e == nil {
		return "", model.NewMissingRequiredFieldError("DigestValue", "offline mode requires a signed document")
	}
	return hex.EncodeToString([]byte(strings.ToLower(e.Text()))), nil
}
