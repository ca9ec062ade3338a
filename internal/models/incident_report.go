package models

import (
	"time"

	"github.com/google/uuid"
)

// WaterDepthNotApplicable используется, когда на снимке нет подтопления
const WaterDepthNotApplicable = "N/A"

// IncidentReport - классифицированный и геопривязанный инцидент инфраструктуры.
// Создается один раз на успешный анализ и после этого не изменяется.
type IncidentReport struct {
	ID                    uuid.UUID `json:"id"`
	CreatedAt             time.Time `json:"created_at"`
	Latitude              float64   `json:"latitude"`
	Longitude             float64   `json:"longitude"`
	Severity              int       `json:"severity"`
	Type                  string    `json:"type"`
	WaterDepthEstimate    string    `json:"water_depth_estimate,omitempty"`
	Description           string    `json:"description"`
	Thumbnail             []byte    `json:"thumbnail,omitempty"`
	ThumbnailMIMEType     string    `json:"thumbnail_mime_type,omitempty"`
	Address               string    `json:"address,omitempty"`
	GoogleMapsURL         string    `json:"google_maps_url,omitempty"`
	RepairCostEstimate    string    `json:"repair_cost_estimate,omitempty"`
	Department            string    `json:"department,omitempty"`
	DepartmentBudgetTotal float64   `json:"department_budget_total"`
}

// Classification - структурированный ответ визуальной классификации
type Classification struct {
	Type        string `json:"type"`
	Severity    int    `json:"severity"`
	WaterDepth  string `json:"waterDepth"`
	Description string `json:"description"`
	RepairCost  string `json:"repairCost"`
	Department  string `json:"department"`
}

// Location - результат разрешения адреса в координаты
type Location struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	GoogleMapsURL string  `json:"google_maps_url,omitempty"`
}
