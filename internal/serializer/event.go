package serializer

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/rezonia/nfe-serializer/internal/format"
	"github.com/rezonia/nfe-serializer/internal/jurisdiction"
	"github.com/rezonia/nfe-serializer/internal/model"
)

// SerializeEvent builds the signed-event envelope for cancellations,
// correction letters and not-realized declarations. Required payload
// fields are checked before any element is created, so an invalid event
// never yields a partial tree.
func (s *Serializer) SerializeEvent(ev *model.Event) (*etree.Document, error) {
	code := ev.Type.Code()
	if code == "" {
		return nil, model.NewUnknownEventTypeError(ev.Type)
	}
	orgao, ok := jurisdiction.Code(ev.UF)
	if !ok {
		return nil, model.NewUnsupportedJurisdictionError(ev.UF)
	}
	if err := checkEventPayload(ev); err != nil {
		return nil, err
	}

	xml := etree.NewDocument()
	evento := xml.CreateElement("evento")
	evento.CreateAttr("versao", EventLayoutVersion)
	evento.CreateAttr("xmlns", NamespaceNFe)

	inf := evento.CreateElement("infEvento")
	inf.CreateAttr("Id", eventIdentifier(ev, code))
	addText(inf, "cOrgao", orgao)
	addText(inf, "tpAmb", strconv.Itoa(int(s.env)))
	addText(inf, "CNPJ", format.Digits(ev.CNPJ))
	addText(inf, "chNFe", ev.AccessKey)
	addText(inf, "dhEvento", format.DateTime(ev.IssuedAt))
	addText(inf, "tpEvento", code)
	addText(inf, "nSeqEvento", strconv.Itoa(ev.Sequence))
	addText(inf, "verEvento", EventLayoutVersion)

	det := inf.CreateElement("detEvento")
	det.CreateAttr("versao", EventLayoutVersion)
	addText(det, "descEvento", ev.Type.Description())
	switch ev.Type {
	case model.EventCancellation:
		addText(det, "nProt", ev.Protocol)
		addText(det, "xJust", ev.Justification)
	case model.EventCorrection:
		addText(det, "xCorrecao", format.StripControl(format.RemoveAccents(ev.Correction)))
		terms := ev.UsageTerms
		if terms == "" {
			terms = model.DefaultCorrectionTerms
		}
		addText(det, "xCondUso", terms)
	case model.EventNotRealized:
		addText(det, "xJust", ev.Justification)
	}

	s.logger.Debug("event serialized",
		"type", code,
		"key", ev.AccessKey,
		"sequence", ev.Sequence,
	)
	return xml, nil
}

func checkEventPayload(ev *model.Event) error {
	switch ev.Type {
	case model.EventCancellation:
		if ev.Protocol == "" {
			return model.NewMissingRequiredFieldError("nProt", "cancellation event")
		}
		if ev.Justification == "" {
			return model.NewMissingRequiredFieldError("xJust", "cancellation event")
		}
	case model.EventCorrection:
		if ev.Correction == "" {
			return model.NewMissingRequiredFieldError("xCorrecao", "correction event")
		}
	case model.EventNotRealized:
		if ev.Justification == "" {
			return model.NewMissingRequiredFieldError("xJust", "not-realized event")
		}
	}
	return nil
}

// eventIdentifier keeps a caller-chosen Id or derives the canonical
// "ID" + event code + access key + two-digit sequence form
func eventIdentifier(ev *model.Event, code string) string {
	if ev.Identifier != "" {
		return ev.Identifier
	}
	return fmt.Sprintf("ID%s%s%02d", code, ev.AccessKey, ev.Sequence)
}
