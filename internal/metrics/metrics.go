package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "event_management"

// Registry holds every metric the server exposes on /metrics.
var Registry = prometheus.NewRegistry()

// AppInfo exposes the build version as a label, always set to 1.
var AppInfo = promauto.With(Registry).NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "app_info",
		Help:      "Application version information",
	},
	[]string{"version"},
)

// Domain metrics
var (
	UsersRegistered = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Total number of registered users",
		},
	)

	AdminPromotions = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_promotions_total",
			Help:      "Admin grants by how they happened",
		},
		[]string{"source"}, // bootstrap|api|cli
	)

	AuthFailures = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Rejected credentials by scheme",
		},
		[]string{"scheme"}, // basic|bearer|none
	)

	EventsCreated = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_created_total",
			Help:      "Total number of events created",
		},
	)

	EventJoins = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_joins_total",
			Help:      "Join attempts by outcome",
		},
		[]string{"outcome"}, // joined|duplicate
	)

	FeedbackSubmissions = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_submissions_total",
			Help:      "Feedback submissions by outcome",
		},
		[]string{"outcome"}, // accepted|duplicate
	)

	ReportExports = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_exports_total",
			Help:      "Attendee exports by format",
		},
		[]string{"format"},
	)
)

// Init registers the runtime collectors and records the build version.
func Init(version string) {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	AppInfo.WithLabelValues(version).Set(1)
}
