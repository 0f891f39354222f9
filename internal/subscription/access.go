// Package subscription concentra a regra de acesso assinatura/trial.
// É a ÚNICA implementação da regra — o gate do admin, o cardápio público
// e o endpoint de status da loja chamam todos este avaliador.
package subscription

import (
	"time"

	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

// AllowedAt decide se a conta pode ser usada no instante dado.
//
// Liberado quando:
//   - o registro nunca foi provisionado (tudo nulo/false) — política de
//     tolerância para não bloquear contas antes do registro ser criado
//   - ainda dentro do trial (comparação inclusiva: trial_end == agora libera)
//   - assinatura paga e dentro da validade
func AllowedAt(sub models.Subscription, now time.Time) bool {
	noRecordYet := sub.TrialEnd == nil && sub.PaidUntil == nil && !sub.IsPaid

	inTrial := sub.TrialEnd != nil && !now.After(*sub.TrialEnd)

	paidActive := sub.IsPaid && sub.PaidUntil != nil && !now.After(*sub.PaidUntil)

	return noRecordYet || inTrial || paidActive
}

// IsAllowed avalia a assinatura contra o relógio do sistema.
func IsAllowed(sub models.Subscription) bool {
	return AllowedAt(sub, time.Now())
}

// DaysLeftTrial devolve os dias restantes de trial, arredondando para cima.
// Pode ser negativo depois do vencimento — quem exibe precisa truncar em zero.
func DaysLeftTrial(sub models.Subscription, now time.Time) int {
	if sub.TrialEnd == nil {
		return 0
	}
	diff := sub.TrialEnd.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
