package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	cacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subrip_cache_hits_total",
			Help: "Total number of cache hits.",
		},
		[]string{"cache"},
	)
	cacheMissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subrip_cache_misses_total",
			Help: "Total number of cache misses.",
		},
		[]string{"cache"},
	)
)

func init() {
	prometheus.MustRegister(cacheHitsTotal, cacheMissesTotal)
}

// instrumentedCache wraps a Cache with Prometheus hit/miss counters.
type instrumentedCache struct {
	inner Cache
	group string
}

func newInstrumentedCache(inner Cache, group string) Cache {
	return &instrumentedCache{inner: inner, group: group}
}

func (i *instrumentedCache) Get(key string) ([]byte, bool) {
	val, ok := i.inner.Get(key)
	if ok {
		cacheHitsTotal.WithLabelValues(i.group).Inc()
	} else {
		cacheMissesTotal.WithLabelValues(i.group).Inc()
	}
	return val, ok
}

func (i *instrumentedCache) Set(key string, value []byte) {
	i.inner.Set(key, value)
}

func (i *instrumentedCache) Len() int {
	return i.inner.Len()
}

func (i *instrumentedCache) Close() error {
	return i.inner.Close()
}
