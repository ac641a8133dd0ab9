package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credsession_registrations_total",
			Help: "Total number of successful identity registrations",
		},
	)

	RegistrationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credsession_registration_failures_total",
			Help: "Total number of failed registrations by error code",
		},
		[]string{"code"},
	)

	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credsession_verifications_total",
			Help: "Total number of credential verifications by result",
		},
		[]string{"result"},
	)

	PasswordChangesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credsession_password_changes_total",
			Help: "Total number of successful password changes",
		},
	)

	SessionLoginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credsession_session_logins_total",
			Help: "Total number of sessions established",
		},
	)

	SessionLogoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credsession_session_logouts_total",
			Help: "Total number of sessions cleared",
		},
	)

	ResolverLookupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credsession_resolver_lookups_total",
			Help: "Total number of identity lookups performed by resolvers",
		},
	)

	ResolverMemoHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credsession_resolver_memo_hits_total",
			Help: "Total number of resolver calls served from the per-request memo",
		},
	)

	DBPoolAcquiredConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "credsession_db_pool_acquired_connections",
			Help: "Number of currently acquired database connections",
		},
	)

	DBPoolIdleConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "credsession_db_pool_idle_connections",
			Help: "Number of currently idle database connections",
		},
	)

	DBPoolMaxConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "credsession_db_pool_max_connections",
			Help: "Maximum size of the database connection pool",
		},
	)

	DBPoolTotalConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "credsession_db_pool_total_connections",
			Help: "Total number of database connections in the pool",
		},
	)
)
