package game

import "time"

// TickRate is the number of simulation ticks per second.
const TickRate = 60

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type clock struct {
	*time.Ticker
}

func NewTicker(rate int) Ticker {
	return &clock{Ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

func (c *clock) C() <-chan time.Time {
	return c.Ticker.C
}
