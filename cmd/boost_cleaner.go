package main

import (
	"context"
	"log"
	"time"

	"maxdata/internal/services"
)

func startBoostCleaner(ctx context.Context, svc *services.CheckoutService, interval, timeout time.Duration, infoLog, errorLog *log.Logger) {
	if svc == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		run := func() {
			runCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			cleared, err := svc.ClearExpiredBoosts(runCtx, time.Now())
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("boost cleaner: failed to expire boosts: %v", err)
				}
				return
			}
			if cleared > 0 && infoLog != nil {
				infoLog.Printf("boost cleaner: expired %d boosts", cleared)
			}
		}

		run()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
