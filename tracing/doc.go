// Package tracing wires OpenTelemetry into fixture generation. Spans are
// no-ops until Init or InitWithExporter installs a provider.
package tracing
