package views

import (
	"math"

	"alfredoptarigan/ats-scorer/internal/models"
)

const (
	colorGreen  = "#4CAF50"
	colorOrange = "#FF9800"
	colorRed    = "#F44336"

	gaugeRadius = 80.0
)

type ScoreBand struct {
	Color   string
	Message string
}

// BandFor picks the colour and caption of a score.
func BandFor(score int) ScoreBand {
	switch {
	case score >= 75:
		return ScoreBand{Color: colorGreen, Message: "Excellent match!"}
	case score >= 60:
		return ScoreBand{Color: colorOrange, Message: "Good match with room for improvement"}
	default:
		return ScoreBand{Color: colorRed, Message: "Needs significant improvement"}
	}
}

// Gauge is the geometry of the circular score indicator.
type Gauge struct {
	Radius        float64
	Circumference float64
	DashOffset    float64
}

// GaugeFor computes the arc for score. Only the drawn arc is limited to a
// full circle; the score itself is displayed as returned.
func GaugeFor(score int) Gauge {
	circumference := 2 * math.Pi * gaugeRadius
	fill := math.Max(0, math.Min(100, float64(score)))
	return Gauge{
		Radius:        gaugeRadius,
		Circumference: circumference,
		DashOffset:    circumference - circumference*fill/100,
	}
}

type ReportView struct {
	ID                 string
	Score              int
	Band               ScoreBand
	Gauge              Gauge
	Analysis           string
	MatchingSkills     []string
	MissingSkills      []string
	ImprovementSummary string
	Warnings           []string
	DownloadURL        string
}

func NewReportView(analysis *models.Analysis) *ReportView {
	result := analysis.Result
	id := analysis.ID.String()
	return &ReportView{
		ID:                 id,
		Score:              result.OverallScore,
		Band:               BandFor(result.OverallScore),
		Gauge:              GaugeFor(result.OverallScore),
		Analysis:           result.Analysis,
		MatchingSkills:     result.MatchingSkills,
		MissingSkills:      result.MissingSkills,
		ImprovementSummary: result.ImprovementSummary,
		Warnings:           analysis.Warnings,
		DownloadURL:        "/download/" + id,
	}
}
