package service

import "github.com/prometheus/client_golang/prometheus"

// RejectedCounter exposes the per-enumeration rejection counter to external tests.
func RejectedCounter(enumeration string) prometheus.Counter {
	return rejectedValuesTotal.WithLabelValues(enumeration)
}
