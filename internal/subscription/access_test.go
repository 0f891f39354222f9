package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

func TestAllowedAt(t *testing.T) {
	tests := []struct {
		name string
		sub  models.Subscription
		want bool
	}{
		{
			name: "registro nunca provisionado libera",
			sub:  models.Subscription{},
			want: true,
		},
		{
			name: "trial vigente libera",
			sub:  models.Subscription{TrialEnd: ptr(now.Add(72 * time.Hour))},
			want: true,
		},
		{
			name: "trial terminando exatamente agora ainda libera",
			sub:  models.Subscription{TrialEnd: ptr(now)},
			want: true,
		},
		{
			name: "trial vencido bloqueia",
			sub:  models.Subscription{TrialEnd: ptr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))},
			want: false,
		},
		{
			name: "pago com validade futura libera mesmo com trial vencido",
			sub: models.Subscription{
				TrialEnd:  ptr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
				IsPaid:    true,
				PaidUntil: ptr(now.Add(24 * time.Hour)),
			},
			want: true,
		},
		{
			name: "pago vencido bloqueia",
			sub: models.Subscription{
				IsPaid:    true,
				PaidUntil: ptr(now.Add(-time.Minute)),
			},
			want: false,
		},
		{
			name: "is_paid sem paid_until nao libera",
			sub:  models.Subscription{IsPaid: true},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedAt(tt.sub, now))
		})
	}
}

func TestDaysLeftTrial(t *testing.T) {
	assert.Equal(t, 0, DaysLeftTrial(models.Subscription{}, now))

	// 36h restantes → arredonda para 2 dias
	sub := models.Subscription{TrialEnd: ptr(now.Add(36 * time.Hour))}
	assert.Equal(t, 2, DaysLeftTrial(sub, now))

	// exatamente 24h → 1 dia
	sub = models.Subscription{TrialEnd: ptr(now.Add(24 * time.Hour))}
	assert.Equal(t, 1, DaysLeftTrial(sub, now))

	// vencido → negativo (quem exibe trunca em zero)
	sub = models.Subscription{TrialEnd: ptr(now.Add(-36 * time.Hour))}
	assert.Less(t, DaysLeftTrial(sub, now), 0)
}
