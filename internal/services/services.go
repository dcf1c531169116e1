package services

import (
	"github.com/mfarias/recibos-api/internal/config"
)

// Services holds all service instances
type Services struct {
	Receipt *ReceiptService
	Render  *RenderService
	Export  *ExportService
}

// NewServices creates all service instances
func NewServices(cfg *config.Config) *Services {
	return &Services{
		Receipt: NewReceiptService(cfg.LocationName),
		Render:  NewRenderService(),
		Export:  NewExportService(),
	}
}
