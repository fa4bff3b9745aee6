// Package jurisdiction embeds the per-state reference data the engine
// needs offline: IBGE state codes and the NFC-e consultation endpoints.
package jurisdiction

// stateCodes maps federative-unit abbreviations to IBGE numeric codes
var stateCodes = map[string]string{
	"AC": "12", "AL": "27", "AM": "13", "AP": "16",
	"BA": "29", "CE": "23", "DF": "53", "ES": "32",
	"GO": "52", "MA": "21", "MG": "31", "MS": "50",
	"MT": "51", "PA": "15", "PB": "25", "PE": "26",
	"PI": "22", "PR": "41", "RJ": "33", "RN": "24",
	"RO": "11", "RR": "14", "RS": "43", "SC": "42",
	"SE": "28", "SP": "35", "TO": "17",
}

// Code returns the IBGE code of a federative unit
func Code(uf string) (string, bool) {
	code, ok := stateCodes[uf]
	return code, ok
}

// UF returns the federative unit of an IBGE code
func UF(code string) (string, bool) {
	for uf, c := range stateCodes {
		if c == code {
			return uf, true
		}
	}
	return "", false
}
