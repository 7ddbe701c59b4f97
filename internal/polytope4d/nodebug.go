//go:build !debug
// +build !debug

package polytope4d

import (
	"fmt"
	"sync"
)

// DebugLog prints only when the runtime Debug switch is on; build with
// -tags debug to print unconditionally.
func DebugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
