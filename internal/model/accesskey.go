package model

import (
	"strconv"
	"strings"
	"time"
)

// AccessKeyParams holds the components of a 44-digit access key.
// Layout: cUF(2) AAMM(4) CNPJ(14) mod(2) serie(3) nNF(9) tpEmis(1) cNF(8) cDV(1).
type AccessKeyParams struct {
	StateCode    string
	Issued       time.Time
	CNPJ         string
	Model        Model
	Series       string
	Number       string
	EmissionType EmissionType
	RandomCode   string
}

// BuildAccessKey assembles the full access key, check digit included
func BuildAccessKey(p AccessKeyParams) string {
	body := zeroPad(p.StateCode, 2) +
		p.Issued.Format("0601") +
		zeroPad(p.CNPJ, 14) +
		zeroPad(strconv.Itoa(int(p.Model)), 2) +
		zeroPad(p.Series, 3) +
		zeroPad(p.Number, 9) +
		strconv.Itoa(int(p.EmissionType)) +
		zeroPad(p.RandomCode, 8)
	return body + ComputeCheckDigit(body)
}

// ComputeCheckDigit returns the modulo-11 check digit of a 43-digit key
// body. Weights cycle 2 through 9 starting from the rightmost digit; a
// remainder below 2 yields digit 0.
func ComputeCheckDigit(body string) string {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	rem := sum % 11
	if rem < 2 {
		return "0"
	}
	return strconv.Itoa(11 - rem)
}

// ValidAccessKey reports whether a key is 44 digits with a correct check digit
func ValidAccessKey(key string) bool {
	if len(key) != 44 {
		return false
	}
	if strings.IndexFunc(key, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return false
	}
	return ComputeCheckDigit(key[:43]) == key[43:]
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
