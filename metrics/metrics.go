package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConversationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "volunteerhub_conversations_created_total",
			Help: "Total conversations created",
		},
	)

	ParticipantsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "volunteerhub_participants_added_total",
			Help: "Total participants added to conversations",
		},
	)

	MessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "volunteerhub_messages_sent_total",
			Help: "Total messages persisted",
		},
	)

	PublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "volunteerhub_publish_failures_total",
			Help: "Total realtime publish failures (messages were still persisted)",
		},
	)

	ListingSignups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "volunteerhub_listing_signups_total",
			Help: "Total volunteer signups on listings",
		},
	)
)
