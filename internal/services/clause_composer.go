package services

import (
	"fmt"
	"strings"

	"github.com/mfarias/recibos-api/internal/models"
)

// ComposeClauses joins the payment items into one fluent clause sequence.
// Non-last clauses are separated by ", " and the last one is prefixed with
// "y " instead of being preceded by a comma, so two items read
// "<clause> y <clause>".
func ComposeClauses(items []models.PaymentItem) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyItems
	}

	clauses := make([]string, 0, len(items))
	for _, item := range items {
		clause, err := composeClause(item)
		if err != nil {
			return "", fmt.Errorf("concepto %d (%s): %w", item.ID, item.Concept, err)
		}
		clauses = append(clauses, clause)
	}

	if len(clauses) == 1 {
		return clauses[0], nil
	}
	last := len(clauses) - 1
	return strings.Join(clauses[:last], ", ") + " y " + clauses[last], nil
}

// composeClause spells one item. Only the integer part of the amount is
// converted to words; the parenthetical numeral carries the full precise
// amount.
func composeClause(item models.PaymentItem) (string, error) {
	if err := ValidateAmount(item.Amount); err != nil {
		return "", err
	}

	words, err := NumberToWords(item.Amount.IntPart())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"la suma de pesos %s (%s) a fin de abonar parte proporcional de %s correspondiente al periodo %s",
		words, FormatAmount(item.Amount), item.Concept, item.Period,
	), nil
}
