// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package metrics exports Prometheus counters for configuration loading and
// guest device resolution.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultHit   = "hit"
	ResultMiss  = "miss"
)

// Kind label values. Input kinds match config.InputKind.
const (
	KindConnector = "connector"
	KindKeyboard  = "keyboard"
	KindPointer   = "pointer"
	KindTouch     = "touch"
)

const labelUnknown = "unknown"

var (
	ConfigLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "displbe_config_loads_total",
		Help: "Total number of configuration loads by result",
	}, []string{"result"})

	ConfigReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "displbe_config_reloads_total",
		Help: "Total number of configuration reloads by result",
	}, []string{"result"})

	ResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "displbe_resolutions_total",
		Help: "Total number of guest device resolutions by kind and result",
	}, []string{"kind", "result"})
)

// IncConfigLoad records a Load or Parse outcome: result ∈ {ok,error}.
func IncConfigLoad(result string) {
	ConfigLoadsTotal.WithLabelValues(normalizeOutcome(result)).Inc()
}

// IncConfigReload records a holder reload outcome: result ∈ {ok,error}.
func IncConfigReload(result string) {
	ConfigReloadsTotal.WithLabelValues(normalizeOutcome(result)).Inc()
}

// IncResolution records a resolution.
// Label allowlists cap cardinality:
// kind ∈ {connector,keyboard,pointer,touch,unknown}
// result ∈ {hit,miss,unknown}
func IncResolution(kind, result string) {
	ResolutionsTotal.WithLabelValues(normalizeKind(kind), normalizeHit(result)).Inc()
}

func normalizeOutcome(result string) string {
	switch r := strings.ToLower(strings.TrimSpace(result)); r {
	case ResultOK, ResultError:
		return r
	default:
		return labelUnknown
	}
}

func normalizeHit(result string) string {
	switch r := strings.ToLower(strings.TrimSpace(result)); r {
	case ResultHit, ResultMiss:
		return r
	default:
		return labelUnknown
	}
}

func normalizeKind(kind string) string {
	switch k := strings.ToLower(strings.TrimSpace(kind)); k {
	case KindConnector, KindKeyboard, KindPointer, KindTouch:
		return k
	default:
		return labelUnknown
	}
}
