package serializer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/rezonia/nfe-serializer/internal/format"
	"github.com/rezonia/nfe-serializer/internal/model"
)

func (s *Serializer) buildEmitter(inf *etree.Element, doc *model.Document) error {
	e := &doc.Emitter
	if e.CNPJ == "" {
		return model.NewMissingRequiredFieldError("Emitter.CNPJ", "emitters are identified by CNPJ")
	}

	emit := inf.CreateElement("emit")
	addText(emit, "CNPJ", format.Digits(e.CNPJ))
	addText(emit, "xNome", e.Name)
	addOptional(emit, "xFant", e.TradeName)

	if err := s.buildAddress(emit, "enderEmit", &e.Address); err != nil {
		return err
	}

	addText(emit, "IE", e.StateRegistration)
	addOptional(emit, "IEST", e.StateRegistrationST)
	if e.MunicipalRegistration != "" {
		addText(emit, "IM", e.MunicipalRegistration)
		addOptional(emit, "CNAE", e.CNAE)
	}
	addText(emit, "CRT", e.TaxRegimeCode)
	return nil
}

// buildAddress writes the shared street-address group used by emitter and
// recipient; the municipality code comes from the resolver.
func (s *Serializer) buildAddress(parent *etree.Element, tag string, a *model.Address) error {
	code, err := s.resolver.MunicipalityCode(a.Municipality, a.UF)
	if err != nil {
		return fmt.Errorf("resolving municipality %q (%s): %w", a.Municipality, a.UF, err)
	}
	country, err := s.resolver.CountryName(a.CountryCode)
	if err != nil {
		return fmt.Errorf("resolving country %q: %w", a.CountryCode, err)
	}

	ender := parent.CreateElement(tag)
	addText(ender, "xLgr", a.Street)
	addText(ender, "nro", a.Number)
	addOptional(ender, "xCpl", a.Complement)
	addText(ender, "xBairro", a.District)
	addText(ender, "cMun", code)
	addText(ender, "xMun", a.Municipality)
	addText(ender, "UF", a.UF)
	addText(ender, "CEP", format.Digits(a.PostalCode))
	addText(ender, "cPais", a.CountryCode)
	addText(ender, "xPais", country)
	addOptional(ender, "fone", a.Phone)
	return nil
}

func (s *Serializer) buildRecipient(inf *etree.Element, doc *model.Document) error {
	r := doc.Recipient
	if r == nil {
		return nil // receipts may omit the recipient entirely
	}

	dest := inf.CreateElement("dest")
	switch {
	case r.CNPJ != "":
		addText(dest, "CNPJ", format.Digits(r.CNPJ))
	case r.CPF != "":
		addText(dest, "CPF", format.Digits(r.CPF))
	default:
		return model.NewMissingRequiredFieldError("Recipient.CNPJ/CPF", "recipients need a CNPJ or CPF")
	}
	if s.cpfOnly {
		return nil
	}

	addOptional(dest, "xNome", r.Name)
	if err := s.buildAddress(dest, "enderDest", &r.Address); err != nil {
		return err
	}
	buildRegistrationIndicator(dest, r)
	addOptional(dest, "ISUF", r.SUFRAMA)
	addOptional(dest, "IM", r.MunicipalRegistration)
	addOptional(dest, "email", r.Email)
	return nil
}

// buildRegistrationIndicator writes indIEDest: non-contributors carry the
// bare indicator, exempt recipients are forced to "2", everyone else
// carries the indicator plus the registration itself.
func buildRegistrationIndicator(dest *etree.Element, r *model.Party) {
	exempt := r.ICMSExempt || strings.EqualFold(r.StateRegistration, "ISENTO")
	switch {
	case r.StateRegistrationIndicator == 9:
		addText(dest, "indIEDest", "9")
	case r.StateRegistrationIndicator == 2 || exempt:
		addText(dest, "indIEDest", "2")
	default:
		addText(dest, "indIEDest", strconv.Itoa(r.StateRegistrationIndicator))
		addText(dest, "IE", r.StateRegistration)
	}
}

func (s *Serializer) buildAuthorized(inf *etree.Element, doc *model.Document) {
	if doc.Model != model.ModelNFe {
		return
	}
	for _, a := range doc.Authorized {
		aut := inf.CreateElement("autXML")
		if a.CNPJ != "" {
			addText(aut, "CNPJ", format.Digits(a.CNPJ))
		} else {
			addText(aut, "CPF", format.Digits(a.CPF))
		}
	}
}

func (s *Serializer) buildLocation(inf *etree.Element, tag string, loc *model.Location) error {
	if loc == nil {
		return nil
	}
	name, err := s.resolver.MunicipalityName(loc.MunicipalityCode, loc.UF)
	if err != nil {
		return fmt.Errorf("resolving municipality code %q (%s): %w", loc.MunicipalityCode, loc.UF, err)
	}

	e := inf.CreateElement(tag)
	if loc.CNPJ != "" {
		addText(e, "CNPJ", format.Digits(loc.CNPJ))
	} else {
		addText(e, "CPF", format.Digits(loc.CPF))
	}
	addText(e, "xLgr", loc.Street)
	addText(e, "nro", loc.Number)
	addOptional(e, "xCpl", loc.Complement)
	addText(e, "xBairro", loc.District)
	addText(e, "cMun", loc.MunicipalityCode)
	addText(e, "xMun", name)
	addText(e, "UF", loc.UF)
	return nil
}

func (s *Serializer) buildTechnicalResponsible(inf *etree.Element, doc *model.Document) {
	rt := doc.TechnicalResponsible
	if rt == nil {
		return
	}
	resp := inf.CreateElement("infRespTec")
	addText(resp, "CNPJ", format.Digits(rt.CNPJ))
	addText(resp, "xContato", rt.Contact)
	addText(resp, "email", rt.Email)
	addText(resp, "fone", rt.Phone)
}
