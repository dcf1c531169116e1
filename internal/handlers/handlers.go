package handlers

import (
	"github.com/mfarias/recibos-api/internal/services"
	"github.com/mfarias/recibos-api/internal/storage"
)

// Handlers holds all handler instances
type Handlers struct {
	Health  *HealthHandler
	Receipt *ReceiptHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, storage *storage.LocalStorage) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(),
		Receipt: NewReceiptHandler(svcs.Receipt, svcs.Render, svcs.Export, storage),
	}
}
