package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentItem represents one billable concept acknowledged in a receipt:
// a utility charge for a period, or a rent installment.
type PaymentItem struct {
	ID      uint            `json:"id"`
	Concept string          `json:"concept"`
	Amount  decimal.Decimal `json:"amount"`
	Period  string          `json:"period"` // "MM/YYYY", emitted verbatim
}

// PartyRecord identifies one contracting party (landlord or tenant).
type PartyRecord struct {
	LastName      string `json:"last_name"`
	FirstName     string `json:"first_name"`
	NationalID    string `json:"national_id"`
	StreetAddress string `json:"street_address"`
	Neighborhood  string `json:"neighborhood"`
}

// ContractContext holds the minimal lease facts referenced in the prose.
type ContractContext struct {
	StartDate   time.Time `json:"start_date"`
	PropertyUse string    `json:"property_use"`
}

// ReceiptRequest is the single input value to the receipt engine. It is
// built fresh per generation call from already-validated data, consumed
// once and discarded; the engine holds no state across calls.
type ReceiptRequest struct {
	Period          string          `json:"period"`
	Items           []PaymentItem   `json:"items"`
	Contract        ContractContext `json:"contract"`
	Landlord        PartyRecord     `json:"landlord"`
	Tenant          PartyRecord     `json:"tenant"`
	PropertyAddress string          `json:"property_address"`
	Category        string          `json:"category"` // file token category; defaults to the first item's concept
}

// ReceiptDocument is the engine output: the final legal paragraph plus
// the derived artifact file token.
type ReceiptDocument struct {
	GUID        string    `json:"guid"`
	Body        string    `json:"body"`
	Filename    string    `json:"filename"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ReceiptResponse is the JSON response format
type ReceiptResponse struct {
	GUID        string    `json:"guid"`
	Body        string    `json:"body"`
	Filename    string    `json:"filename"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ToResponse converts ReceiptDocument to ReceiptResponse
func (d *ReceiptDocument) ToResponse() ReceiptResponse {
	return ReceiptResponse{
		GUID:        d.GUID,
		Body:        d.Body,
		Filename:    d.Filename,
		GeneratedAt: d.GeneratedAt,
	}
}
