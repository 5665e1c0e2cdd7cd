package transfer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdiallo/papistock-api/internal/domain"
)

func TestFoldHeader_AccentsEtCasse(t *testing.T) {
	assert.Equal(t, "quantite", foldHeader("Quantité"))
	assert.Equal(t, "quantite", foldHeader("quantite"))
	assert.Equal(t, "quantite", foldHeader("  QUANTITÉ "))
	assert.Equal(t, "abreviation", foldHeader("Abréviation"))
	assert.Equal(t, "poid", foldHeader("Poid"))
}

func TestNormalizeTable_Alias(t *testing.T) {
	for _, alias := range []string{"item", "items", "Articles", "ARTICLE"} {
		got, err := normalizeTable(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, TableItem, got)
	}

	got, err := normalizeTable("mouvements")
	require.NoError(t, err)
	assert.Equal(t, TableMovement, got)

	_, err = normalizeTable("clients")
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
}

func TestParseDate_FormatsAcceptes(t *testing.T) {
	for _, s := range []string{
		"2026-03-10T14:30:00Z",
		"2026-03-10 14:30:00",
		"2026-03-10",
		"10/03/2026",
	} {
		d, err := parseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, 2026, d.Year())
		assert.Equal(t, time.March, d.Month())
		assert.Equal(t, 10, d.Day())
	}

	_, err := parseDate("pas une date")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalizeNumber_VirguleFrancaise(t *testing.T) {
	assert.Equal(t, "120.5", normalizeNumber("120,5"))
	assert.Equal(t, "90", normalizeNumber("90"))
}
