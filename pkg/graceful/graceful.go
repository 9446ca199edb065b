package graceful

import (
	"context"
	"os"
	"os/signal"
	"time"
)

// Idle calls tick every interval until ctx is done.
func Idle(ctx context.Context, interval time.Duration, tick func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for ctx.Err() == nil {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick()
		}
	}
}

// IdleUntilInterrupt 空闲循环，收到中断信号后执行 fn 并返回
func IdleUntilInterrupt(interval time.Duration, tick func(), fn func()) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	Idle(ctx, interval, tick)
	fn()
}
