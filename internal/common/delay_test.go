package common

import (
	"context"
	"testing"
	"time"
)

// TestWaitRandomMSCancelled проверяет, что отменённый контекст прерывает ожидание сразу.
func TestWaitRandomMSCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := WaitRandomMS(ctx, 5000, 10000)
	if err == nil {
		t.Fatalf("ожидалась ошибка контекста, но её нет")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("ожидание не прервалось вовремя")
	}
}

// TestWaitRandomMSSwappedRange проверяет, что перепутанные границы не ломают ожидание.
func TestWaitRandomMSSwappedRange(t *testing.T) {
	if err := WaitRandomMS(context.Background(), 2, 1); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
}
