// Package metrics defines and registers all custom Prometheus metrics for the
// content API. It is the single source of truth for metric names, labels and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package init
// (promauto) and exposed on /metrics by the echoprometheus handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/quillpress/content-api/internal/core/domain"
)

const namespace = "content"

// ── Authentication metrics ───────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer tokens checked by the identity resolver.
// Label:
//   - result: "valid", "missing", "malformed", "bad_signature" or "expired"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, labelled by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts accounts created.
// Label:
//   - role: "CLIENT" or "ADMIN"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// ── Authorization metrics ────────────────────────────────────────────────────

// AuthzDecisionsTotal counts ownership decisions.
// Labels:
//   - kind: "user", "article" or "comment"
//   - op: "view", "edit", "delete" or "publish"
//   - decision: "allowed", "forbidden" or "not_found"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of ownership authorization decisions.",
	},
	[]string{"kind", "op", "decision"},
)

// OwnershipCacheTotal counts ownership-record cache lookups.
// Label:
//   - result: "hit" or "miss"
var OwnershipCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ownership_cache_total",
		Help:      "Total number of ownership cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// Recorder feeds ownership decisions into AuthzDecisionsTotal.
type Recorder struct{}

func (Recorder) RecordDecision(kind domain.ResourceKind, op domain.Operation, d domain.Decision) {
	AuthzDecisionsTotal.WithLabelValues(string(kind), string(op), d.String()).Inc()
}
