package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Extraction and download metrics
var (
	ExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subrip_extractions_total",
			Help: "Total number of metadata extractions by source and outcome.",
		},
		[]string{"source", "status"},
	)

	SegmentDownloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subrip_segment_downloads_total",
			Help: "Total number of subtitle segment downloads.",
		},
		[]string{"status"},
	)

	SubtitleDownloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subrip_subtitle_downloads_total",
			Help: "Total number of completed subtitle downloads by format.",
		},
		[]string{"format", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		ExtractionsTotal,
		SegmentDownloadsTotal,
		SubtitleDownloadsTotal,
	)
}
