/*
Package mediator provides the in-process dispatch core: requests are routed to
exactly one handler, notifications fan out to zero or more handlers, and
handler resolution is delegated to an injected Resolver.
*/
package mediator
