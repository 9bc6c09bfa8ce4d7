package mediator

// Request is a marker interface for requests (an action to perform).
// A request expects exactly one response from exactly one handler.
type Request interface{}

// Notification is a marker interface for notifications (something that already
// happened). Notifications carry no response and may be handled by zero or more handlers.
type Notification interface{}
