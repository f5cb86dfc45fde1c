/*
Package observability turns runtime lifecycle events into Prometheus metrics.

Metrics.Hooks returns a domain.LifecycleHooks value that can be passed to the
engine with WithLifecycleHooks. Hooks from several sources are merged with
Combine.
*/
package observability
