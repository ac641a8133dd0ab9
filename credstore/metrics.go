package credstore

import (
	"github.com/ovdenko/credsession/autherrors"
	"github.com/ovdenko/credsession/metrics"
)

func incrementRegistrations() {
	metrics.RegistrationsTotal.Inc()
}

func incrementRegistrationFailures(err error) {
	code := "INTERNAL"
	if de, ok := autherrors.As(err); ok {
		code = de.Code()
	}
	metrics.RegistrationFailuresTotal.WithLabelValues(code).Inc()
}

func incrementVerifications(result string) {
	metrics.VerificationsTotal.WithLabelValues(result).Inc()
}

func incrementPasswordChanges() {
	metrics.PasswordChangesTotal.Inc()
}
