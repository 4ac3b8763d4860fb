package entity

import "time"

// AgentRegistration is an anonymous self-registration record created by
// the public registration endpoint. No authentication guards it.
type AgentRegistration struct {
	ID         string // Document key, generated by the store.
	Name       string
	Capability string
	CreatedAt  time.Time // Server-assigned.
}
