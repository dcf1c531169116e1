package services

import (
	"fmt"
	"time"
)

var monthNames = []string{
	"", "enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// DateToLegalPhrase converts a calendar date to its legal Spanish phrase,
// with the year spelled out: "5 de marzo del año dos mil veinticinco".
// The day stays a numeral.
func DateToLegalPhrase(t time.Time) (string, error) {
	if t.IsZero() {
		return "", fmt.Errorf("%w: fecha cero", ErrInvalidDate)
	}
	year, err := NumberToWords(int64(t.Year()))
	if err != nil {
		return "", fmt.Errorf("%w: año %d", ErrInvalidDate, t.Year())
	}
	return fmt.Sprintf("%d de %s del año %s", t.Day(), monthNames[t.Month()], year), nil
}

// ContractStartPhrase is the variant used only when referencing the lease
// start date: it carries a leading "día" token the acknowledgment date
// never gets.
func ContractStartPhrase(t time.Time) (string, error) {
	phrase, err := DateToLegalPhrase(t)
	if err != nil {
		return "", err
	}
	return "día " + phrase, nil
}
