//go:build debug
// +build debug

package polytope4d

import (
	"fmt"
	"sync"
	"time"
)

var debugStart = time.Now()

// DebugLog always prints in debug builds, stamped with the time since start.
func DebugLog(format string, args ...interface{}) {
	fmt.Printf("[DEBUG %8.3fs] "+format+"\n", append([]interface{}{time.Since(debugStart).Seconds()}, args...)...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	once.Do(func() {
		DebugLog(format, args...)
	})
}
