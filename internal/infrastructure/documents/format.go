package documents

import (
	"strconv"
	"time"

	"gestao_obras/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

const brTimeLayout = "02/01/2006 15:04"

var brLocation = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}()

func formatMoney(v float64) string {
	return brl.Sprintf("R$ %.2f", v)
}

func formatQuantity(v float64) string {
	return brl.Sprintf("%v", v)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(brLocation).Format(brTimeLayout)
}

func statusLabel(s entities.LPUStatus) string {
	switch s {
	case entities.LPUStatusDraft, "":
		return "Rascunho"
	case entities.LPUStatusWaiting:
		return "Aguardando fornecedor"
	case entities.LPUStatusSubmitted:
		return "Enviada pelo fornecedor"
	case entities.LPUStatusApproved:
		return "Aprovada"
	default:
		return string(s)
	}
}

func revisionLabel(n int) string {
	return "Revisão " + strconv.Itoa(n)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
