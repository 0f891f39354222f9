package models

import "time"

// Subscription espelha a linha da tabela subscriptions: os campos nulos
// significam "registro ainda não provisionado" e liberam o acesso.
type Subscription struct {
	UserID     string     `json:"user_id"`
	TrialStart *time.Time `json:"trial_start"`
	TrialEnd   *time.Time `json:"trial_end"`
	IsPaid     bool       `json:"is_paid"`
	PaidUntil  *time.Time `json:"paid_until"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
