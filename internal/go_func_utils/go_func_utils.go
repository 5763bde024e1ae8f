package go_func_utils

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"
)

// Guard runs fn and turns a panic into an error, logging the stack
func Guard(logger *log.Logger, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("PANIC: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

// SafeGo runs fn on a new goroutine tracked by wg. A panic in fn is logged
// and handed to onErr together with ordinary errors, instead of crashing the
// process.
func SafeGo(logger *log.Logger, wg *sync.WaitGroup, fn func() error, onErr func(error)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := Guard(logger, fn); err != nil && onErr != nil {
			onErr(err)
		}
	}()
}
