package jurisdiction

// Endpoints holds the NFC-e web addresses of one federative unit. QR
// bases end at the query marker; the token builder appends "p=...".
// A few states publish structurally different production and staging
// hosts, so every entry carries all four addresses explicitly.
type Endpoints struct {
	QRCode        string
	QRCodeStaging string
	Lookup        string
	LookupStaging string
}

// ForEnvironment selects the QR base and lookup page for one environment
func (e Endpoints) ForEnvironment(production bool) (qrBase, lookup string) {
	if production {
		return e.QRCode, e.Lookup
	}
	return e.QRCodeStaging, e.LookupStaging
}

// nfceEndpoints lists the published NFC-e consultation addresses.
// SC has no NFC-e program and deliberately has no entry.
var nfceEndpoints = map[string]Endpoints{
	"AC": {
		QRCode:        "http://www.sefaznet.ac.gov.br/nfce/qrcode?",
		QRCodeStaging: "http://hml.sefaznet.ac.gov.br/nfce/qrcode?",
		Lookup:        "http://www.sefaznet.ac.gov.br/nfce/consulta",
		LookupStaging: "http://hml.sefaznet.ac.gov.br/nfce/consulta",
	},
	"AL": {
		QRCode:        "http://nfce.sefaz.al.gov.br/QRCode/consultarNFCe.jsp?",
		QRCodeStaging: "http://nfcehml.sefaz.al.gov.br/QRCode/consultarNFCe.jsp?",
		Lookup:        "http://nfce.sefaz.al.gov.br/consultaNFCe.htm",
		LookupStaging: "http://nfcehml.sefaz.al.gov.br/consultaNFCe.htm",
	},
	"AM": {
		QRCode:        "http://sistemas.sefaz.am.gov.br/nfceweb/consultarNFCe.jsp?",
		QRCodeStaging: "http://homnfce.sefaz.am.gov.br/nfceweb/consultarNFCe.jsp?",
		Lookup:        "http://sistemas.sefaz.am.gov.br/nfceweb/formConsulta.do",
		LookupStaging: "http://homnfce.sefaz.am.gov.br/nfceweb/formConsulta.do",
	},
	"AP": {
		QRCode:        "https://www.sefaz.ap.gov.br/nfce/nfcep.php?",
		QRCodeStaging: "https://www.sefaz.ap.gov.br/nfcehml/nfcep.php?",
		Lookup:        "https://www.sefaz.ap.gov.br/nfce/consulta",
		LookupStaging: "https://www.sefaz.ap.gov.br/nfcehml/consulta",
	},
	"BA": {
		QRCode:        "https://nfe.sefaz.ba.gov.br/servicos/nfce/qrcode.aspx?",
		QRCodeStaging: "http://hnfe.sefaz.ba.gov.br/servicos/nfce/qrcode.aspx?",
		Lookup:        "http://www.sefaz.ba.gov.br/nfce/consulta",
		LookupStaging: "http://www.sefaz.ba.gov.br/nfce/consulta",
	},
	"CE": {
		QRCode:        "http://nfce.sefaz.ce.gov.br/pages/ShowNFCe.html?",
		QRCodeStaging: "http://nfce.sefaz.ce.gov.br/pages/ShowNFCe.html?",
		Lookup:        "http://nfce.sefaz.ce.gov.br/pages/consultaNota.jsf",
		LookupStaging: "http://nfce.sefaz.ce.gov.br/pages/consultaNota.jsf",
	},
	"DF": {
		QRCode:        "http://www.fazenda.df.gov.br/nfce/qrcode?",
		QRCodeStaging: "http://www.fazenda.df.gov.br/nfce/qrcode?",
		Lookup:        "http://www.fazenda.df.gov.br/nfce/consulta",
		LookupStaging: "http://www.fazenda.df.gov.br/nfce/consulta",
	},
	"ES": {
		QRCode:        "http://app.sefaz.es.gov.br/ConsultaNFCe/qrcode.aspx?",
		QRCodeStaging: "http://homologacao.sefaz.es.gov.br/ConsultaNFCe/qrcode.aspx?",
		Lookup:        "http://app.sefaz.es.gov.br/ConsultaNFCe",
		LookupStaging: "http://homologacao.sefaz.es.gov.br/ConsultaNFCe",
	},
	"GO": {
		QRCode:        "http://nfe.sefaz.go.gov.br/nfeweb/sites/nfce/danfeNFCe?",
		QRCodeStaging: "http://homolog.sefaz.go.gov.br/nfeweb/sites/nfce/danfeNFCe?",
		Lookup:        "http://www.sefaz.go.gov.br/nfce/consulta",
		LookupStaging: "http://homolog.sefaz.go.gov.br/nfce/consulta",
	},
	"MA": {
		QRCode:        "http://www.nfce.sefaz.ma.gov.br/portal/consultarNFCe.jsp?",
		QRCodeStaging: "http://www.hom.nfce.sefaz.ma.gov.br/portal/consultarNFCe.jsp?",
		Lookup:        "http://www.nfce.sefaz.ma.gov.br/portal/consultaNFe.do",
		LookupStaging: "http://www.hom.nfce.sefaz.ma.gov.br/portal/consultaNFe.do",
	},
	"MG": {
		QRCode:        "https://nfce.fazenda.mg.gov.br/portalnfce/sistema/qrcode.xhtml?",
		QRCodeStaging: "https://hnfce.fazenda.mg.gov.br/portalnfce/sistema/qrcode.xhtml?",
		Lookup:        "https://nfce.fazenda.mg.gov.br/portalnfce",
		LookupStaging: "https://hnfce.fazenda.mg.gov.br/portalnfce",
	},
	"MS": {
		QRCode:        "http://www.dfe.ms.gov.br/nfce/qrcode?",
		QRCodeStaging: "http://www.dfe.ms.gov.br/nfce/qrcode?",
		Lookup:        "http://www.dfe.ms.gov.br/nfce/consulta",
		LookupStaging: "http://www.dfe.ms.gov.br/nfce/consulta",
	},
	"MT": {
		QRCode:        "http://www.sefaz.mt.gov.br/nfce/consultanfce?",
		QRCodeStaging: "http://homologacao.sefaz.mt.gov.br/nfce/consultanfce?",
		Lookup:        "http://www.sefaz.mt.gov.br/nfce/consultanfce",
		LookupStaging: "http://homologacao.sefaz.mt.gov.br/nfce/consultanfce",
	},
	"PA": {
		QRCode:        "https://appnfc.sefa.pa.gov.br/portal/view/consultas/nfce/qrcodeNFCe?",
		QRCodeStaging: "https://appnfc.sefa.pa.gov.br/portal-homologacao/view/consultas/nfce/qrcodeNFCe?",
		Lookup:        "https://appnfc.sefa.pa.gov.br/portal/view/consultas/nfce/consultanfce",
		LookupStaging: "https://appnfc.sefa.pa.gov.br/portal-homologacao/view/consultas/nfce/consultanfce",
	},
	"PB": {
		QRCode:        "http://www.receita.pb.gov.br/nfce?",
		QRCodeStaging: "http://www.receita.pb.gov.br/nfcehml?",
		Lookup:        "http://www.receita.pb.gov.br/nfce/consulta",
		LookupStaging: "http://www.receita.pb.gov.br/nfcehml/consulta",
	},
	"PE": {
		QRCode:        "http://nfce.sefaz.pe.gov.br/nfce/consulta?",
		QRCodeStaging: "http://nfcehomolog.sefaz.pe.gov.br/nfce/consulta?",
		Lookup:        "http://nfce.sefaz.pe.gov.br/nfce/consulta",
		LookupStaging: "http://nfcehomolog.sefaz.pe.gov.br/nfce/consulta",
	},
	"PI": {
		QRCode:        "http://www.sefaz.pi.gov.br/nfce/qrcode?",
		QRCodeStaging: "http://www.sefaz.pi.gov.br/nfcehml/qrcode?",
		Lookup:        "http://www.sefaz.pi.gov.br/nfce/consulta",
		LookupStaging: "http://www.sefaz.pi.gov.br/nfcehml/consulta",
	},
	"PR": {
		QRCode:        "http://www.fazenda.pr.gov.br/nfce/qrcode?",
		QRCodeStaging: "http://www.fazenda.pr.gov.br/nfce/qrcode?",
		Lookup:        "http://www.fazenda.pr.gov.br/nfce/consulta",
		LookupStaging: "http://www.fazenda.pr.gov.br/nfce/consulta",
	},
	"RJ": {
		QRCode:        "http://www4.fazenda.rj.gov.br/consultaNFCe/QRCode?",
		QRCodeStaging: "http://www4.fazenda.rj.gov.br/consultaNFCe/QRCode?",
		Lookup:        "http://www4.fazenda.rj.gov.br/consultaNFCe/consulta",
		LookupStaging: "http://www4.fazenda.rj.gov.br/consultaNFCe/consulta",
	},
	"RN": {
		QRCode:        "http://nfce.set.rn.gov.br/consultarNFCe.aspx?",
		QRCodeStaging: "http://hom.nfce.set.rn.gov.br/consultarNFCe.aspx?",
		Lookup:        "http://nfce.set.rn.gov.br/portalDFE/NFCe/ConsultaNFCe.aspx",
		LookupStaging: "http://hom.nfce.set.rn.gov.br/portalDFE/NFCe/ConsultaNFCe.aspx",
	},
	"RO": {
		QRCode:        "http://www.nfce.sefin.ro.gov.br/consultanfce/consulta.jsp?",
		QRCodeStaging: "http://www.nfce.sefin.ro.gov.br/consultanfce/consulta.jsp?",
		Lookup:        "http://www.nfce.sefin.ro.gov.br",
		LookupStaging: "http://www.nfce.sefin.ro.gov.br",
	},
	"RR": {
		QRCode:        "https://www.sefaz.rr.gov.br/nfce/servlet/qrcode?",
		QRCodeStaging: "http://200.174.88.103:8080/nfce/servlet/qrcode?",
		Lookup:        "https://www.sefaz.rr.gov.br/nfce/servlet/wp_consulta_nfce",
		LookupStaging: "http://200.174.88.103:8080/nfce/servlet/wp_consulta_nfce",
	},
	"RS": {
		QRCode:        "https://www.sefaz.rs.gov.br/NFCE/NFCE-COM.aspx?",
		QRCodeStaging: "https://www.sefaz.rs.gov.br/NFCE/NFCE-COM.aspx?",
		Lookup:        "https://www.sefaz.rs.gov.br/NFE/NFE-NFC.aspx",
		LookupStaging: "https://www.sefaz.rs.gov.br/NFE/NFE-NFC.aspx",
	},
	"SE": {
		QRCode:        "http://www.nfce.se.gov.br/nfce/qrcode?",
		QRCodeStaging: "http://www.hom.nfe.se.gov.br/nfce/qrcode?",
		Lookup:        "http://www.nfce.se.gov.br/nfce/consulta",
		LookupStaging: "http://www.hom.nfe.se.gov.br/nfce/consulta",
	},
	"SP": {
		QRCode:        "https://www.nfce.fazenda.sp.gov.br/qrcode?",
		QRCodeStaging: "https://www.homologacao.nfce.fazenda.sp.gov.br/qrcode?",
		Lookup:        "https://www.nfce.fazenda.sp.gov.br/consulta",
		LookupStaging: "https://www.homologacao.nfce.fazenda.sp.gov.br/consulta",
	},
	"TO": {
		QRCode:        "http://www.sefaz.to.gov.br/nfce/qrcode?",
		QRCodeStaging: "http://homologacao.sefaz.to.gov.br/nfce/qrcode?",
		Lookup:        "http://www.sefaz.to.gov.br/nfce/consulta.jsf",
		LookupStaging: "http://homologacao.sefaz.to.gov.br/nfce/consulta.jsf",
	},
}

// NFCeEndpoints returns the consultation endpoints of a federative unit
func NFCeEndpoints(uf string) (Endpoints, bool) {
	e, ok := nfceEndpoints[uf]
	return e, ok
}
