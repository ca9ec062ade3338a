package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// SetTabRequest DTO для переключения вкладки
// @Description DTO для переключения вкладки
type SetTabRequest struct {
	Tab string `json:"tab" validate:"required,oneof=map budget spatial"`
}

// ChatRequest DTO для вопроса бюджетному ассистенту
// @Description DTO для вопроса бюджетному ассистенту
type ChatRequest struct {
	Query string `json:"query" validate:"required,max=4000"`
}

// BudgetFilterRequest DTO для переключения фильтра по статусу. Пустой статус снимает фильтр.
// @Description DTO для переключения фильтра по статусу
type BudgetFilterRequest struct {
	Status string `json:"status" validate:"omitempty,oneof='Planned' 'In Progress' 'Completed' 'Over Budget'"`
}

// IncidentReportResponse DTO для ответа с отчетом об инциденте
// @Description DTO для ответа с отчетом об инциденте
type IncidentReportResponse struct {
	ID                    uuid.UUID `json:"id"`
	CreatedAt             time.Time `json:"created_at"`
	Latitude              float64   `json:"latitude"`
	Longitude             float64   `json:"longitude"`
	Severity              int       `json:"severity"`
	SeverityColor         string    `json:"severity_color"`
	Type                  string    `json:"type"`
	WaterDepthEstimate    string    `json:"water_depth_estimate,omitempty"`
	Description           string    `json:"description"`
	Thumbnail             string    `json:"thumbnail,omitempty"` // data URL
	Address               string    `json:"address,omitempty"`
	GoogleMapsURL         string    `json:"google_maps_url,omitempty"`
	RepairCostEstimate    string    `json:"repair_cost_estimate,omitempty"`
	Department            string    `json:"department,omitempty"`
	DepartmentBudgetTotal float64   `json:"department_budget_total"`
}

// BoundingBoxResponse DTO для рамки на снимке
// @Description Нормированные координаты рамки [0,1]
type BoundingBoxResponse struct {
	YMin      float64 `json:"ymin"`
	XMin      float64 `json:"xmin"`
	YMax      float64 `json:"ymax"`
	XMax      float64 `json:"xmax"`
	Label     string  `json:"label"`
	Reasoning string  `json:"reasoning"`
}

// SpatialFindingResponse DTO для результата пространственного анализа
// @Description DTO для результата пространственного анализа
type SpatialFindingResponse struct {
	Image     string                `json:"image"` // data URL
	Summary   string                `json:"summary"`
	Boxes     []BoundingBoxResponse `json:"boxes"`
	CreatedAt time.Time             `json:"created_at"`
}

// ChatMessageResponse DTO для сообщения переписки
type ChatMessageResponse struct {
	ID      uuid.UUID `json:"id"`
	Role    string    `json:"role"`
	Content string    `json:"content"`
}

// SessionResponse DTO для снимка сессии
// @Description DTO для снимка сессии
type SessionResponse struct {
	ID           uuid.UUID               `json:"id"`
	ActiveTab    string                  `json:"active_tab"`
	BudgetFilter *string                 `json:"budget_filter"`
	ReportCount  int                     `json:"report_count"`
	Transcript   []ChatMessageResponse   `json:"transcript"`
	Finding      *SpatialFindingResponse `json:"finding,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// BudgetItemResponse DTO для строки бюджета
type BudgetItemResponse struct {
	Department string  `json:"department"`
	Project    string  `json:"project"`
	Cost       float64 `json:"cost"`
	Status     string  `json:"status"`
	Year       int     `json:"year"`
}

// BudgetStatsResponse DTO для сводки бюджета
type BudgetStatsResponse struct {
	TotalAllocated  float64 `json:"total_allocated"`
	ActiveProjects  int     `json:"active_projects"`
	OverBudgetCount int     `json:"over_budget_count"`
}

// BudgetResponse DTO для таблицы бюджета
// @Description Строки с учетом фильтра и сводка по всей таблице
type BudgetResponse struct {
	Filter *string              `json:"filter"`
	Items  []BudgetItemResponse `json:"items"`
	Stats  BudgetStatsResponse  `json:"stats"`
}

// MapResponse DTO для слоя карты
// @Description Маркеры отчетов в GeoJSON, центр и масштаб карты
type MapResponse struct {
	Center  [2]float64                 `json:"center"` // [lat, lng]
	Zoom    int                        `json:"zoom"`
	TileURL string                     `json:"tile_url"`
	Markers *geojson.FeatureCollection `json:"markers" swaggertype:"object"`
}
