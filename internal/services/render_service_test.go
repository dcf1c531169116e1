package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	svc := newTestReceiptService()
	doc, err := svc.AssembleReceipt(sampleRequest())
	require.NoError(t, err)

	data, filename, err := NewRenderService().RenderPDF(doc)

	assert.NoError(t, err)
	assert.Greater(t, len(data), 0, "PDF output should not be empty")
	assert.Equal(t, "Receipt_Agua_Perez_01_2025.pdf", filename)
	assert.Equal(t, "%PDF", string(data[:4]))
}
