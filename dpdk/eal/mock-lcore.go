package eal

/*
#include "../../csrc/core/common.h"
#include <rte_lcore.h>

static void c_setMockLCore(unsigned id) { RTE_PER_LCORE(_lcore_id) = id; }
*/
import "C"
import (
	"runtime"
)

// SetMockLCore forces the calling thread's lcore ID, so that CurrentLCore
// observes the given value on this thread until changed again.
//
// This writes the EAL's per-thread lcore slot directly. It exists for unit
// tests that exercise lcore-dependent code on threads not managed by the EAL,
// and must not be used on EAL-managed lcores.
// Caller should invoke runtime.LockOSThread() to stay on the same thread.
func SetMockLCore(lc LCore) {
	if !lc.Valid() {
		C.c_setMockLCore(C.LCORE_ID_ANY)
		return
	}
	C.c_setMockLCore(C.uint(lc.ID()))
}

// MockLCoreScope forces the calling goroutine onto one OS thread and assigns
// a mock lcore ID. The returned function reverts both.
func MockLCoreScope(lc LCore) (revert func()) {
	runtime.LockOSThread()
	SetMockLCore(lc)
	return func() {
		SetMockLCore(LCore{})
		runtime.UnlockOSThread()
	}
}
