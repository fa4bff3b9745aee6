package model

import "time"

// EventType enumerates the supported post-emission events
type EventType int

const (
	EventCancellation EventType = iota + 1
	EventCorrection
	EventNotRealized
)

// Code returns the authority event code (tpEvento)
func (t EventType) Code() string {
	switch t {
	case EventCancellation:
		return "110111"
	case EventCorrection:
		return "110110"
	case EventNotRealized:
		return "110130"
	default:
		return ""
	}
}

// Description returns the wire descEvento text
func (t EventType) Description() string {
	switch t {
	case EventCancellation:
		return "Cancelamento"
	case EventCorrection:
		return "Carta de Correcao"
	case EventNotRealized:
		return "Operacao nao Realizada"
	default:
		return ""
	}
}

// DefaultCorrectionTerms is the mandatory legal text of a correction
// letter (xCondUso), fixed by Convenio S/N of 1970, art. 7, paragraph 1-A.
const DefaultCorrectionTerms = "A Carta de Correcao e disciplinada pelo paragrafo 1o-A do art. 7o " +
	"do Convenio S/N, de 15 de dezembro de 1970 e pode ser utilizada para regularizacao de erro " +
	"ocorrido na emissao de documento fiscal, desde que o erro nao esteja relacionado com: I - as " +
	"variaveis que determinam o valor do imposto tais como: base de calculo, aliquota, diferenca " +
	"de preco, quantidade, valor da operacao ou da prestacao; II - a correcao de dados cadastrais " +
	"que implique mudanca do remetente ou do destinatario; III - a data de emissao ou de saida."

// Event is a post-emission document event (cancellation, correction
// letter or operation-not-realized notice).
type Event struct {
	Type EventType

	// Identifier is the infEvento Id; when empty it is derived as
	// "ID" + event code + access key + two-digit sequence
	Identifier string

	UF        string // authority organ, resolved to cOrgao
	CNPJ      string // author
	AccessKey string // chNFe of the referenced document
	IssuedAt  time.Time
	Sequence  int // nSeqEvento

	// Cancellation fields
	Protocol      string // nProt
	Justification string // xJust, also used by the not-realized event

	// Correction-letter fields
	Correction string // xCorrecao
	// UsageTerms defaults to DefaultCorrectionTerms when empty
	UsageTerms string // xCondUso
}
