package handlers

import "github.com/gpedrosad/mapra2/internal/config"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
}

// AnalyticsFromConfig builds Analytics from loaded configuration.
func AnalyticsFromConfig(cfg config.AnalyticsConfig) Analytics {
	return Analytics{
		GA4MeasurementID: cfg.GAMeasurementID,
		GTMContainerID:   cfg.GTMContainerID,
	}
}

// Enabled reports whether any tag is configured.
func (a Analytics) Enabled() bool {
	return a.GA4MeasurementID != "" || a.GTMContainerID != ""
}
