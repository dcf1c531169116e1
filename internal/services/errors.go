package services

import "errors"

// Common service errors
var (
	ErrInvalidAmount        = errors.New("importe inválido")
	ErrUnsupportedMagnitude = errors.New("importe fuera del rango convertible a letras")
	ErrInvalidDate          = errors.New("fecha inválida")
	ErrEmptyItems           = errors.New("el recibo no contiene conceptos a abonar")
	ErrInvalidPeriod        = errors.New("periodo inválido, se espera MM/AAAA")
)
