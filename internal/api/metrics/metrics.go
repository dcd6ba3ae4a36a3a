// Package metrics defines and registers all custom Prometheus metrics
// for the fund-nexus API. It is the single source of truth for metric
// names, labels, and help strings; HTTP-level request metrics come from
// the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fundnexus"

// LoginsTotal counts authentication attempts.
// Label:
//   - outcome: "accepted" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RecordsCreatedTotal counts records created through the API.
// Labels:
//   - entity: "contribution", "mentor", or "locality"
//   - village: the village the stored record carries
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by entity and village.",
	},
	[]string{"entity", "village"},
)

// RecordsDeletedTotal counts hard deletes (ADMIN only).
// Label:
//   - entity: "contribution", "mentor", or "locality"
var RecordsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of records deleted, by entity.",
	},
	[]string{"entity"},
)

// ForbiddenTotal counts requests rejected by the access policy.
// Label:
//   - path: the route that rejected the request
var ForbiddenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_total",
		Help:      "Total number of requests rejected with 403 by the access policy.",
	},
	[]string{"path"},
)

// ContributionAmountTotal accumulates the amounts of created
// contributions, by village. Together with records_created_total it
// gives a live view of fund intake without querying the store.
var ContributionAmountTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contribution_amount_total",
		Help:      "Sum of contribution amounts recorded, by village.",
	},
	[]string{"village"},
)
