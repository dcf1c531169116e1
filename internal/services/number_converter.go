package services

import "fmt"

// MaxSpellableAmount is the exclusive upper bound of the converter. Values
// at or beyond it return ErrUnsupportedMagnitude, never a truncated reading.
const MaxSpellableAmount int64 = 1_000_000_000

// NumberToWords converts a non-negative integer to its Spanish cardinal
// reading in lowercase. Example: 15000 -> "quince mil".
func NumberToWords(n int64) (string, error) {
	if n < 0 || n >= MaxSpellableAmount {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedMagnitude, n)
	}
	return spellCardinal(n), nil
}

// spellCardinal peels magnitudes from the largest order down. The grammar
// irregularities (10-29, "cien" vs "ciento", the "y" joiner for 31-99) are
// table lookups so each rule stays auditable on its own.
func spellCardinal(n int64) string {
	if n == 0 {
		return "cero"
	}

	if n < 10 {
		return unitWords[n]
	}

	// 10-29 are fixed forms: the teens are irregular and 21-29 fuse into a
	// single word ("veintiuno", never "veinte y uno").
	if n < 30 {
		return teenWords[n]
	}

	if n < 100 {
		u := n % 10
		t := n / 10
		if u == 0 {
			return tensWords[t]
		}
		return fmt.Sprintf("%s y %s", tensWords[t], unitWords[u])
	}

	if n < 1000 {
		h := n / 100
		remainder := n % 100
		if remainder == 0 {
			// "cien" applies to any segment equal to exactly 100, also as a
			// remainder inside a larger compound ("mil cien").
			return hundredsWords[h]
		}
		if h == 1 {
			return "ciento " + spellCardinal(remainder)
		}
		return fmt.Sprintf("%s %s", hundredsWords[h], spellCardinal(remainder))
	}

	if n < 1_000_000 {
		thousands := n / 1000
		remainder := n % 1000

		text := "mil"
		if thousands > 1 {
			text = spellCardinal(thousands) + " mil"
		}
		if remainder == 0 {
			return text
		}
		return fmt.Sprintf("%s %s", text, spellCardinal(remainder))
	}

	millions := n / 1_000_000
	remainder := n % 1_000_000

	text := "un millón"
	if millions > 1 {
		text = spellCardinal(millions) + " millones"
	}
	if remainder == 0 {
		return text
	}
	return fmt.Sprintf("%s %s", text, spellCardinal(remainder))
}

var unitWords = []string{
	"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
}

var teenWords = map[int64]string{
	10: "diez", 11: "once", 12: "doce", 13: "trece", 14: "catorce", 15: "quince",
	16: "dieciséis", 17: "diecisiete", 18: "dieciocho", 19: "diecinueve",
	20: "veinte", 21: "veintiuno", 22: "veintidós", 23: "veintitrés", 24: "veinticuatro",
	25: "veinticinco", 26: "veintiséis", 27: "veintisiete", 28: "veintiocho", 29: "veintinueve",
}

var tensWords = []string{
	"", "", "veinte", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa",
}

var hundredsWords = []string{
	"", "cien", "doscientos", "trescientos", "cuatrocientos", "quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos",
}
