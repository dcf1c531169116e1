package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mfarias/recibos-api/internal/models"
)

func item(id uint, concept string, amount string, period string) models.PaymentItem {
	return models.PaymentItem{
		ID:      id,
		Concept: concept,
		Amount:  decimal.RequireFromString(amount),
		Period:  period,
	}
}

func TestComposeClausesSingleItem(t *testing.T) {
	out, err := ComposeClauses([]models.PaymentItem{
		item(1, "Agua", "15000", "01/2025"),
	})

	assert.NoError(t, err)
	assert.Equal(t,
		"la suma de pesos quince mil ($15.000,00) a fin de abonar parte proporcional de Agua correspondiente al periodo 01/2025",
		out,
	)
	assert.False(t, strings.HasPrefix(out, "y "))
}

func TestComposeClausesTwoItems(t *testing.T) {
	out, err := ComposeClauses([]models.PaymentItem{
		item(1, "Agua", "15000", "01/2025"),
		item(2, "Luz", "8000", "01/2025"),
	})

	assert.NoError(t, err)
	// No comma before the "y" with exactly two items.
	assert.Equal(t,
		"la suma de pesos quince mil ($15.000,00) a fin de abonar parte proporcional de Agua correspondiente al periodo 01/2025"+
			" y la suma de pesos ocho mil ($8.000,00) a fin de abonar parte proporcional de Luz correspondiente al periodo 01/2025",
		out,
	)
	assert.NotContains(t, out, ", y ")
}

func TestComposeClausesThreeItems(t *testing.T) {
	out, err := ComposeClauses([]models.PaymentItem{
		item(1, "Agua", "1500.25", "02/2025"),
		item(2, "Luz", "8000", "02/2025"),
		item(3, "Alquiler", "250000", "02/2025"),
	})

	assert.NoError(t, err)
	// "c1, c2 y c3": commas between non-last clauses, "y" before the last.
	assert.Equal(t, 1, strings.Count(out, ", la suma de pesos"))
	assert.Equal(t, 1, strings.Count(out, " y la suma de pesos"))
	assert.Contains(t, out, "la suma de pesos mil quinientos ($1.500,25)")
	assert.True(t, strings.HasSuffix(out, "a fin de abonar parte proporcional de Alquiler correspondiente al periodo 02/2025"))
}

func TestComposeClausesFractionNotSpelled(t *testing.T) {
	out, err := ComposeClauses([]models.PaymentItem{
		item(1, "Expensas", "1234.56", "03/2025"),
	})

	assert.NoError(t, err)
	// Only the integer part in words; the cents live in the numeral.
	assert.Contains(t, out, "mil doscientos treinta y cuatro ($1.234,56)")
	assert.NotContains(t, out, "cincuenta y seis centavos")
}

func TestComposeClausesEmpty(t *testing.T) {
	out, err := ComposeClauses(nil)
	assert.ErrorIs(t, err, ErrEmptyItems)
	assert.Empty(t, out)
}

func TestComposeClausesInvalidAmountIdentifiesItem(t *testing.T) {
	_, err := ComposeClauses([]models.PaymentItem{
		item(1, "Agua", "15000", "01/2025"),
		item(7, "Luz", "-10", "01/2025"),
	})

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Contains(t, err.Error(), "concepto 7")
}

func TestComposeClausesOversizedAmountPropagates(t *testing.T) {
	_, err := ComposeClauses([]models.PaymentItem{
		item(3, "Alquiler", "1000000000", "01/2025"),
	})

	assert.ErrorIs(t, err, ErrUnsupportedMagnitude)
	assert.Contains(t, err.Error(), "concepto 3")
}
