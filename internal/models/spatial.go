package models

import "time"

// BoundingBox - прямоугольник в нормированных координатах изображения [0,1].
// Значения приходят от внешнего сервиса и не проверяются.
type BoundingBox struct {
	YMin      float64 `json:"ymin"`
	XMin      float64 `json:"xmin"`
	YMax      float64 `json:"ymax"`
	XMax      float64 `json:"xmax"`
	Label     string  `json:"label"`
	Reasoning string  `json:"reasoning"`
}

// SpatialDetection - ответ внешнего сервиса о "транспортных пустынях"
type SpatialDetection struct {
	Summary string        `json:"summary"`
	Boxes   []BoundingBox `json:"boxes"`
}

// SpatialFinding - результат пространственного анализа вместе с исходным снимком
type SpatialFinding struct {
	Image         []byte        `json:"image"`
	ImageMIMEType string        `json:"image_mime_type"`
	Summary       string        `json:"summary"`
	Boxes         []BoundingBox `json:"boxes"`
	CreatedAt     time.Time     `json:"created_at"`
}
