// Package metrics exposes prometheus instrumentation for the listing
// workflows.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type WorkflowCollector struct {
	SubmissionsReceived prometheus.Counter
	SubmissionsSpam     prometheus.Counter
	ModerationActions   *prometheus.CounterVec
	ClaimsCreated       *prometheus.CounterVec
	ClaimsResolved      *prometheus.CounterVec
	EmailsSent          *prometheus.CounterVec
	EmailsFailed        *prometheus.CounterVec
	GeocodeFallbacks    prometheus.Counter
	CacheHits           *prometheus.CounterVec
	CacheMisses         *prometheus.CounterVec
}

var globalCollector *WorkflowCollector

// Collector returns the process-wide workflow collector, registering the
// metrics on first use.
func Collector() *WorkflowCollector {
	if globalCollector == nil {
		globalCollector = &WorkflowCollector{
			SubmissionsReceived: promauto.NewCounter(prometheus.CounterOpts{
				Name: "club_submissions_received_total",
				Help: "The total number of club submissions accepted for moderation",
			}),
			SubmissionsSpam: promauto.NewCounter(prometheus.CounterOpts{
				Name: "club_submissions_spam_total",
				Help: "The total number of submissions silently dropped by the honeypot",
			}),
			ModerationActions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "club_moderation_actions_total",
					Help: "The total number of moderation decisions",
				},
				[]string{"action"},
			),
			ClaimsCreated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "club_claims_created_total",
					Help: "The total number of ownership claims created",
				},
				[]string{"method"},
			),
			ClaimsResolved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "club_claims_resolved_total",
					Help: "The total number of ownership claims resolved",
				},
				[]string{"outcome"},
			),
			EmailsSent: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "notification_emails_sent_total",
					Help: "The total number of notification emails sent",
				},
				[]string{"template"},
			),
			EmailsFailed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "notification_emails_failed_total",
					Help: "The total number of notification emails that failed to send",
				},
				[]string{"template"},
			),
			GeocodeFallbacks: promauto.NewCounter(prometheus.CounterOpts{
				Name: "geocode_city_fallbacks_total",
				Help: "The total number of geocode lookups that fell back to a city centre",
			}),
			CacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "listing_cache_hits_total",
					Help: "The total number of cache hits",
				},
				[]string{"cache"},
			),
			CacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "listing_cache_misses_total",
					Help: "The total number of cache misses",
				},
				[]string{"cache"},
			),
		}
	}
	return globalCollector
}
