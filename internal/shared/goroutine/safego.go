// Package goroutine launches background work that must not crash the process.
package goroutine

import (
	"fmt"
	"runtime/debug"
	"sync"

	"helpcenter/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine and logs any panic with its stack.
func SafeGo(log logger.Interface, name string, fn func()) {
	go Recover(log, name, fn)
}

// SafeGoWG is SafeGo tracked by wg.
func SafeGoWG(wg *sync.WaitGroup, log logger.Interface, name string, fn func()) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		Recover(log, name, fn)
	}()
}

// Recover calls fn on the current goroutine, turning a panic into an error log.
func Recover(log logger.Interface, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}
