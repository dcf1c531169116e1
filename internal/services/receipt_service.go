package services

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/mfarias/recibos-api/internal/models"
)

// receiptSkeleton is the fixed shape of the acknowledgment paragraph. Every
// placeholder is a fully rendered segment so the legal-document layout can
// be reviewed in one place.
const receiptSkeleton = `{{.Location}}, {{.Date}}. Recibo en nombre y representación de la parte locadora, {{.Clauses}}. Dicho pago tiene como causa contrato de locación que comenzó a regir el {{.ContractStart}} y suscripto entre {{.Landlord}} como LOCADORA y {{.Tenant}} como LOCATARIA del inmueble ubicado en {{.PropertyAddress}}, destinado a {{.PropertyUse}}.`

var (
	receiptTemplate = template.Must(template.New("receipt").Parse(receiptSkeleton))
	periodPattern   = regexp.MustCompile(`^(\d{2})/(\d{4})$`)
)

type receiptSegments struct {
	Location        string
	Date            string
	Clauses         string
	ContractStart   string
	Landlord        string
	Tenant          string
	PropertyAddress string
	PropertyUse     string
}

// ReceiptService assembles payment-acknowledgment receipts. It is pure
// apart from the clock, which is injectable so generated documents are
// reproducible under test.
type ReceiptService struct {
	location string
	now      func() time.Time
}

// NewReceiptService creates a receipt service issuing documents for the
// given city.
func NewReceiptService(location string) *ReceiptService {
	return &ReceiptService{
		location: location,
		now:      time.Now,
	}
}

// AssembleReceipt produces the final receipt paragraph and its derived
// artifact file token. Any component failure aborts assembly; no partial
// document is ever returned.
func (s *ReceiptService) AssembleReceipt(req models.ReceiptRequest) (*models.ReceiptDocument, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}

	month, year, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	generatedAt := s.now()
	datePhrase, err := DateToLegalPhrase(generatedAt)
	if err != nil {
		return nil, err
	}

	startPhrase, err := ContractStartPhrase(req.Contract.StartDate)
	if err != nil {
		return nil, fmt.Errorf("inicio de contrato: %w", err)
	}

	clauses, err := ComposeClauses(req.Items)
	if err != nil {
		return nil, err
	}

	segments := receiptSegments{
		Location:        s.location,
		Date:            datePhrase,
		Clauses:         clauses,
		ContractStart:   startPhrase,
		Landlord:        s.identityBlock(req.Landlord, "con domicilio en"),
		Tenant:          s.identityBlock(req.Tenant, "con domicilio real en"),
		PropertyAddress: req.PropertyAddress,
		PropertyUse:     strings.ToLower(req.Contract.PropertyUse),
	}

	var body strings.Builder
	if err := receiptTemplate.Execute(&body, segments); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = req.Items[0].Concept
	}

	return &models.ReceiptDocument{
		GUID:        uuid.New().String(),
		Body:        body.String(),
		Filename:    buildFilename(category, req.Tenant.LastName, month, year),
		GeneratedAt: generatedAt,
	}, nil
}

// identityBlock formats the name/ID/address fragment for one party. The
// connector differs per role ("con domicilio en" for the landlord,
// "con domicilio real en" for the tenant) and must not be merged.
func (s *ReceiptService) identityBlock(party models.PartyRecord, connector string) string {
	return fmt.Sprintf("%s %s DNI %s %s %s de barrio %s de la Ciudad de %s",
		strings.ToUpper(party.LastName),
		strings.ToUpper(party.FirstName),
		party.NationalID,
		connector,
		party.StreetAddress,
		party.Neighborhood,
		s.location,
	)
}

// buildFilename derives the deterministic artifact token the rendering
// collaborator uses verbatim to name the produced file.
func buildFilename(category, lastName, month, year string) string {
	return fmt.Sprintf("Receipt_%s_%s_%s_%s",
		sanitizeToken(category),
		sanitizeToken(lastName),
		month,
		year,
	)
}

// parsePeriod splits the "MM/YYYY" token. The period is otherwise opaque
// to the engine and emitted verbatim in the prose.
func parsePeriod(period string) (month, year string, err error) {
	m := periodPattern.FindStringSubmatch(period)
	if m == nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	return m[1], m[2], nil
}

// sanitizeToken strips every rune that is not a letter or digit so
// interpolated fields stay filesystem-safe inside artifact names.
func sanitizeToken(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
