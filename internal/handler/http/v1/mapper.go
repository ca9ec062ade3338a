package v1

import (
	"encoding/base64"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/infra_vision/internal/analysis"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/shenikar/infra_vision/internal/service"
)

const (
	defaultZoom = 13
	reportZoom  = 16
)

// severityColor возвращает цвет маркера по серьезности инцидента
func severityColor(severity int) string {
	switch {
	case severity >= 8:
		return "red"
	case severity >= 5:
		return "orange"
	default:
		return "green"
	}
}

func dataURL(mimeType string, data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// ModelToReportResponse преобразует отчет в DTO для ответа
func ModelToReportResponse(report *models.IncidentReport) *IncidentReportResponse {
	return &IncidentReportResponse{
		ID:                    report.ID,
		CreatedAt:             report.CreatedAt,
		Latitude:              report.Latitude,
		Longitude:             report.Longitude,
		Severity:              report.Severity,
		SeverityColor:         severityColor(report.Severity),
		Type:                  report.Type,
		WaterDepthEstimate:    report.WaterDepthEstimate,
		Description:           report.Description,
		Thumbnail:             dataURL(report.ThumbnailMIMEType, report.Thumbnail),
		Address:               report.Address,
		GoogleMapsURL:         report.GoogleMapsURL,
		RepairCostEstimate:    report.RepairCostEstimate,
		Department:            report.Department,
		DepartmentBudgetTotal: report.DepartmentBudgetTotal,
	}
}

// ModelsToReportResponses преобразует слайс отчетов в слайс DTO
func ModelsToReportResponses(reports []models.IncidentReport) []*IncidentReportResponse {
	responses := make([]*IncidentReportResponse, len(reports))
	for i := range reports {
		responses[i] = ModelToReportResponse(&reports[i])
	}
	return responses
}

func ModelToFindingResponse(finding *models.SpatialFinding) *SpatialFindingResponse {
	if finding == nil {
		return nil
	}
	boxes := make([]BoundingBoxResponse, len(finding.Boxes))
	for i, b := range finding.Boxes {
		boxes[i] = BoundingBoxResponse{
			YMin:      b.YMin,
			XMin:      b.XMin,
			YMax:      b.YMax,
			XMax:      b.XMax,
			Label:     b.Label,
			Reasoning: b.Reasoning,
		}
	}
	return &SpatialFindingResponse{
		Image:     dataURL(finding.ImageMIMEType, finding.Image),
		Summary:   finding.Summary,
		Boxes:     boxes,
		CreatedAt: finding.CreatedAt,
	}
}

func ModelsToChatResponses(messages []models.ChatMessage) []ChatMessageResponse {
	responses := make([]ChatMessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = ChatMessageResponse{ID: m.ID, Role: string(m.Role), Content: m.Content}
	}
	return responses
}

// ModelToSessionResponse преобразует сессию в DTO. Отчеты отдаются отдельным маршрутом.
func ModelToSessionResponse(session *models.Session) *SessionResponse {
	return &SessionResponse{
		ID:           session.ID,
		ActiveTab:    string(session.ActiveTab),
		BudgetFilter: statusPtr(session.BudgetFilter),
		ReportCount:  len(session.Reports),
		Transcript:   ModelsToChatResponses(session.Transcript),
		Finding:      ModelToFindingResponse(session.Finding),
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

func BudgetViewToResponse(view *service.BudgetView) *BudgetResponse {
	items := make([]BudgetItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = BudgetItemResponse{
			Department: item.Department,
			Project:    item.Project,
			Cost:       item.Cost,
			Status:     string(item.Status),
			Year:       item.Year,
		}
	}
	return &BudgetResponse{
		Filter: statusPtr(view.Filter),
		Items:  items,
		Stats: BudgetStatsResponse{
			TotalAllocated:  view.Stats.TotalAllocated,
			ActiveProjects:  view.Stats.ActiveCount,
			OverBudgetCount: view.Stats.OverBudgetCount,
		},
	}
}

// ReportsToMapResponse строит слой маркеров. Карта центрируется на последнем отчете,
// без отчетов используется центр округа по умолчанию.
func ReportsToMapResponse(reports []models.IncidentReport, tileURL string) *MapResponse {
	fc := geojson.NewFeatureCollection()
	for _, r := range reports {
		// GeoJSON хранит координаты в порядке [lng, lat]
		f := geojson.NewFeature(orb.Point{r.Longitude, r.Latitude})
		f.ID = r.ID.String()
		f.Properties["type"] = r.Type
		f.Properties["severity"] = r.Severity
		f.Properties["color"] = severityColor(r.Severity)
		f.Properties["description"] = r.Description
		f.Properties["address"] = r.Address
		f.Properties["water_depth_estimate"] = r.WaterDepthEstimate
		f.Properties["repair_cost_estimate"] = r.RepairCostEstimate
		f.Properties["department"] = r.Department
		f.Properties["department_budget_total"] = r.DepartmentBudgetTotal
		f.Properties["google_maps_url"] = r.GoogleMapsURL
		f.Properties["created_at"] = r.CreatedAt
		fc.Append(f)
	}

	resp := &MapResponse{
		Center:  [2]float64{analysis.DefaultCenter.Latitude, analysis.DefaultCenter.Longitude},
		Zoom:    defaultZoom,
		TileURL: tileURL,
		Markers: fc,
	}
	if n := len(reports); n > 0 {
		latest := reports[n-1]
		resp.Center = [2]float64{latest.Latitude, latest.Longitude}
		resp.Zoom = reportZoom
	}
	return resp
}

func statusPtr(status *models.BudgetStatus) *string {
	if status == nil {
		return nil
	}
	s := string(*status)
	return &s
}
