/*
Package observability turns host lifecycle hooks into Prometheus metrics.

Metrics implements domain.LifecycleHooks; Combine fans one set of hook
events out to several consumers (metrics, logging, event streams).
*/
package observability
