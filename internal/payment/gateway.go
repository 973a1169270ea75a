package payment

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrDeclined возвращается при отклонённом платеже
var ErrDeclined = errors.New("card declined")

// Gateway имитирует платёжный шлюз: выдерживает фиксированную задержку и
// разрешает платёж с заданной вероятностью. Денег не двигает.
type Gateway struct {
	delay       time.Duration
	successRate float64
	log         zerolog.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(delay time.Duration, successRate float64, log zerolog.Logger) *Gateway {
	return &Gateway{
		delay:       delay,
		successRate: successRate,
		log:         log,
		rnd:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Attempt проводит платёж на указанную сумму. Задержка прерывается только
// отменой контекста; сам результат розыгрыша отменить нельзя.
func (g *Gateway) Attempt(ctx context.Context, amount decimal.Decimal) error {
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	g.mu.Lock()
	roll := g.rnd.Float64()
	g.mu.Unlock()

	if roll >= g.successRate {
		g.log.Debug().Str("amount", amount.String()).Msg("payment declined")
		return ErrDeclined
	}
	g.log.Debug().Str("amount", amount.String()).Msg("payment approved")
	return nil
}
