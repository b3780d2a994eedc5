// Package queue defines message payloads exchanged over the message broker
// and the consumer that drains them.
package queue

// RequestServedEvent is published after the server has answered a request.
// It carries enough to reconstruct an access log line downstream; the
// server itself never reads it back.
type RequestServedEvent struct {
	RequestID string `json:"request_id"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Route     string `json:"route"`
	Status    int    `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	RemoteIP  string `json:"remote_ip"`
	ServedAt  string `json:"served_at"`
}
