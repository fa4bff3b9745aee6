package model

// Party is an emitter or recipient of a fiscal document
type Party struct {
	// Exactly one of CNPJ/CPF identifies the party. Emitters always use CNPJ.
	CNPJ string
	CPF  string

	Name      string // xNome
	TradeName string // xFant, emitter only
	Address   Address

	StateRegistration     string // IE
	StateRegistrationST   string // IEST, emitter only
	MunicipalRegistration string // IM
	CNAE                  string // emitted only together with IM
	TaxRegimeCode         string // CRT, emitter only

	// StateRegistrationIndicator is the indIEDest value (1, 2 or 9)
	StateRegistrationIndicator int
	// ICMSExempt marks the recipient as ICMS-exempt regardless of indicator
	ICMSExempt bool

	SUFRAMA string // ISUF
	Email   string
}

// Address is a full street address of the enderEmit/enderDest groups
type Address struct {
	Street       string // xLgr
	Number       string // nro
	Complement   string // xCpl
	District     string // xBairro
	Municipality string // xMun, plain name; the code is resolved at serialization
	UF           string
	PostalCode   string // CEP
	CountryCode  string // cPais
	Phone        string
}

// AuthorizedParty may retrieve the document XML from the authority (autXML)
type AuthorizedParty struct {
	CNPJ string
	CPF  string
}

// Location is a pickup or delivery place (retirada/entrega)
type Location struct {
	CNPJ             string
	CPF              string
	Street           string
	Number           string
	Complement       string
	District         string
	MunicipalityCode string // cMun, supplied as code; the name is resolved at serialization
	UF               string
}
