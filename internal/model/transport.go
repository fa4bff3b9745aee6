package model

import "github.com/shopspring/decimal"

// Transport is the transp group. Carrier, vehicles and volumes are
// invoice-only; receipts carry the freight mode alone.
type Transport struct {
	FreightMode int // modFrete
	Carrier     *Carrier
	Vehicle     *Vehicle
	Trailer     *Vehicle
	Volumes     []Volume
}

// Carrier identifies the transporter (transporta)
type Carrier struct {
	CNPJ              string
	CPF               string
	Name              string
	StateRegistration string
	Address           string // xEnder, single line
	Municipality      string
	UF                string
}

// Vehicle is a truck or trailer (veicTransp/reboque)
type Vehicle struct {
	Plate string
	UF    string
	RNTC  string
}

// Volume is one transported volume (vol); Seals become nested lacres
type Volume struct {
	Count       int64           // qVol
	Kind        string          // esp
	Brand       string          // marca
	Numbering   string          // nVol
	NetWeight   decimal.Decimal // pesoL
	GrossWeight decimal.Decimal // pesoB
	Seals       []string
}
