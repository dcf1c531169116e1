package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type bindTarget struct {
	Concept string `json:"concept"`
	Period  string `json:"period"`
}

func TestBindNestedOrFlat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		key         string
		body        string
		expected    bindTarget
		expectError bool
	}{
		{
			name:     "nested structure",
			key:      "receipt",
			body:     `{"receipt": {"concept": "Agua", "period": "01/2025"}}`,
			expected: bindTarget{Concept: "Agua", Period: "01/2025"},
		},
		{
			name:     "flat structure",
			key:      "receipt",
			body:     `{"concept": "Luz", "period": "02/2025"}`,
			expected: bindTarget{Concept: "Luz", Period: "02/2025"},
		},
		{
			name:     "missing key falls back to flat",
			key:      "receipt",
			body:     `{"other": true, "concept": "Expensas", "period": "03/2025"}`,
			expected: bindTarget{Concept: "Expensas", Period: "03/2025"},
		},
		{
			name:        "type mismatch",
			key:         "receipt",
			body:        `{"concept": 42}`,
			expectError: true,
		},
		{
			name:        "malformed json",
			key:         "receipt",
			body:        `{"concept": "Agua"`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body))

			var target bindTarget
			err := BindNestedOrFlat(c, tt.key, &target)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, target)
		})
	}
}
