package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated is a Prometheus counter for tracking the total number of products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created",
	})

	// PhotoUploads is a Prometheus counter for tracking the total number of photos uploaded.
	PhotoUploads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photo_uploads_total",
		Help: "The total number of photos uploaded",
	})

	// AIRequests is a Prometheus counter for tracking the total number of AI proxy requests served.
	AIRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ai_requests_total",
		Help: "The total number of AI proxy requests served",
	})
)
