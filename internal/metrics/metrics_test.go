package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersRegistered(t *testing.T) {
	ExtractionsTotal.WithLabelValues("itunes", "success").Inc()
	SegmentDownloadsTotal.WithLabelValues("success").Add(3)
	SubtitleDownloadsTotal.WithLabelValues("vtt", "success").Inc()

	if got := testutil.ToFloat64(ExtractionsTotal.WithLabelValues("itunes", "success")); got < 1 {
		t.Errorf("ExtractionsTotal = %v, want >= 1", got)
	}
	if got := testutil.ToFloat64(SegmentDownloadsTotal.WithLabelValues("success")); got < 3 {
		t.Errorf("SegmentDownloadsTotal = %v, want >= 3", got)
	}
	if got := testutil.ToFloat64(SubtitleDownloadsTotal.WithLabelValues("vtt", "success")); got < 1 {
		t.Errorf("SubtitleDownloadsTotal = %v, want >= 1", got)
	}
}
