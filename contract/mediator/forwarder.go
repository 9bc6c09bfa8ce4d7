package mediator

import "context"

// Routable is implemented by notifications that should additionally be
// mirrored to an external broker after local fan-out. Topic() guides routing.
type Routable interface {
	Topic() string
}

// ForwardOptions controls outbound notification forwarding.
type ForwardOptions struct {
	TopicOverride string
	Key           string
	Headers       map[string]string
}

// Forwarder abstracts publishing notifications to a broker/transport.
// Library users provide an implementation that maps to NATS/RabbitMQ/Kafka etc.
type Forwarder interface {
	Forward(ctx context.Context, n Notification, opts ForwardOptions) error
}
