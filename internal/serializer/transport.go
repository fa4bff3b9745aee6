package serializer

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/rezonia/nfe-serializer/internal/format"
	"github.com/rezonia/nfe-serializer/internal/model"
)

// buildTransport writes the transp section. Consumer receipts carry the
// freight mode alone; carrier, vehicle and volume detail is an invoice
// concern.
func (s *Serializer) buildTransport(inf *etree.Element, doc *model.Document) {
	t := &doc.Transport
	transp := inf.CreateElement("transp")
	addText(transp, "modFrete", strconv.Itoa(t.FreightMode))
	if doc.Model != model.ModelNFe {
		return
	}

	if c := t.Carrier; c != nil {
		carrier := transp.CreateElement("transporta")
		if c.CNPJ != "" {
			addText(carrier, "CNPJ", format.Digits(c.CNPJ))
		} else if c.CPF != "" {
			addText(carrier, "CPF", format.Digits(c.CPF))
		}
		addOptional(carrier, "xNome", c.Name)
		addOptional(carrier, "IE", c.StateRegistration)
		addOptional(carrier, "xEnder", c.Address)
		addOptional(carrier, "xMun", c.Municipality)
		addOptional(carrier, "UF", c.UF)
	}

	buildVehicle(transp, "veicTransp", t.Vehicle)
	buildVehicle(transp, "reboque", t.Trailer)

	for _, v := range t.Volumes {
		if v.Count <= 0 {
			continue
		}
		vol := transp.CreateElement("vol")
		addText(vol, "qVol", strconv.FormatInt(v.Count, 10))
		addText(vol, "esp", v.Kind)
		addOptional(vol, "marca", v.Brand)
		addOptional(vol, "nVol", v.Numbering)
		addText(vol, "pesoL", format.Decimal3(v.NetWeight))
		addText(vol, "pesoB", format.Decimal3(v.GrossWeight))
		for _, seal := range v.Seals {
			lacres := vol.CreateElement("lacres")
			addText(lacres, "nLacre", seal)
		}
	}
}

func buildVehicle(transp *etree.Element, tag string, v *model.Vehicle) {
	if v == nil || v.Plate == "" || v.UF == "" {
		return
	}
	n := transp.CreateElement(tag)
	addText(n, "placa", v.Plate)
	addText(n, "UF", v.UF)
	addOptional(n, "RNTC", v.RNTC)
}
