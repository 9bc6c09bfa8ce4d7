/*
Package rabbitmq provides a RabbitMQ forwarder for the mediator.
It maps notification forwarding to AMQP publishes, includes an auto-reconnect
publisher, and supports optional header propagation via a mediator.HeaderPropagator.
*/
package rabbitmq
