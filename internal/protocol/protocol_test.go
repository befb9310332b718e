package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, input string) []string {
	t.Helper()
	var out strings.Builder
	err := Run(strings.NewReader(input), &out)
	assert.NoError(t, err)
	trimmed := strings.TrimRight(out.String(), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestCourierShipsThreeOrdersAtIntervalBoundary(t *testing.T) {
	input := `5 100
aggiungi_ricetta cake flour 2 sugar 1
rifornimento flour 10 100 sugar 10 100
ordine cake 1
ordine cake 1
ordine cake 1
ordine cake 1
`
	lines := run(t, input)
	assert.Equal(t, []string{
		"aggiunta",
		"rifornito",
		"accettato",
		"accettato",
		"accettato",
		"2 cake 1",
		"3 cake 1",
		"4 cake 1",
		"accettato",
	}, lines)
}

func TestPendingOrderPromotedAfterReplenishment(t *testing.T) {
	input := `2 50
aggiungi_ricetta bun flour 5
ordine bun 1
rifornimento flour 5 100
`
	lines := run(t, input)
	assert.Equal(t, []string{
		"aggiunta",
		"accettato",
		"camioncino vuoto",
		"rifornito",
	}, lines)
}

func TestRemoveRecipeRefusedWithOutstandingOrders(t *testing.T) {
	input := `10 100
aggiungi_ricetta x a 1
rifornimento a 10 999
ordine x 1
rimuovi_ricetta x
`
	lines := run(t, input)
	assert.Equal(t, []string{
		"aggiunta",
		"rifornito",
		"accettato",
		"ordini in sospeso",
	}, lines)
}

func TestLotExpiringOnAdmissionTickIsNotUsable(t *testing.T) {
	// The ordine is admitted at tick 2, the lot's expiration tick, so the
	// order stays Pending and the courier at tick 3 finds nothing to ship.
	input := `3 100
aggiungi_ricetta y a 1
rifornimento a 5 2
ordine y 1
`
	lines := run(t, input)
	assert.Equal(t, []string{
		"aggiunta",
		"rifornito",
		"accettato",
		"camioncino vuoto",
	}, lines)
}

func TestUnknownRecipeIsRejected(t *testing.T) {
	input := `10 100
ordine ghost 1
`
	lines := run(t, input)
	assert.Equal(t, []string{"rifiutato"}, lines)
}

func TestDuplicateRecipeIsIgnored(t *testing.T) {
	input := `10 100
aggiungi_ricetta cake flour 2
aggiungi_ricetta cake flour 999
`
	lines := run(t, input)
	assert.Equal(t, []string{"aggiunta", "ignorato"}, lines)
}

func TestMalformedHeaderIsAnError(t *testing.T) {
	err := Run(strings.NewReader("not_a_number 10\n"), &strings.Builder{})
	assert.Error(t, err)
}

func TestMalformedCommandIsAnError(t *testing.T) {
	err := Run(strings.NewReader("10 100\nordine only_one_field\n"), &strings.Builder{})
	assert.Error(t, err)
}

func TestMissingHeaderIsAnError(t *testing.T) {
	err := Run(strings.NewReader(""), &strings.Builder{})
	assert.Error(t, err)
}

func TestBlankLinesAreSkipped(t *testing.T) {
	input := "10 100\n\naggiungi_ricetta cake flour 1\n\n"
	lines := run(t, input)
	assert.Equal(t, []string{"aggiunta"}, lines)
}
