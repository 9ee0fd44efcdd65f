package eal

/*
#include "../../csrc/core/common.h"

#include <rte_launch.h>
#include <rte_lcore.h>

extern int go_lcoreLaunch(void*);
*/
import "C"
import (
	"fmt"
	"strconv"
	"unsafe"

	"github.com/packetplane/rtebind/core/cptr"
	"go.uber.org/zap/zapcore"
)

// LCore represents a logical core.
// Zero value is invalid lcore.
type LCore struct {
	v int // lcore ID + 1
}

// LCoreFromID converts lcore ID to LCore.
func LCoreFromID(id int) (lc LCore) {
	if id < 0 || id > C.RTE_MAX_LCORE {
		return lc
	}
	lc.v = id + 1
	return lc
}

// CurrentLCore returns the lcore assigned to the calling thread.
// This reads per-thread state maintained by the EAL; the result is invalid if
// the thread is not registered with the EAL and no mock lcore is set.
func CurrentLCore() LCore {
	return LCoreFromID(int(C.rte_lcore_id()))
}

// ID returns lcore ID.
func (lc LCore) ID() int {
	return lc.v - 1
}

// Valid returns true if this is a valid lcore (not zero value).
func (lc LCore) Valid() bool {
	return lc.v != 0
}

func (lc LCore) String() string {
	if !lc.Valid() {
		return "invalid"
	}
	return strconv.Itoa(lc.ID())
}

// IsMain returns true if this is the main lcore.
func (lc LCore) IsMain() bool {
	return lc.Valid() && lc.v == MainLCore.v
}

// NumaSocket returns the NUMA socket where this lcore is located.
func (lc LCore) NumaSocket() (socket NumaSocket) {
	if !lc.Valid() {
		return socket
	}
	if id, ok := lcoreToSocket[lc.ID()]; ok {
		return NumaSocketFromID(id)
	}
	return NumaSocketFromID(int(C.rte_lcore_to_socket_id(C.uint(lc.ID()))))
}

// IsBusy returns true if this lcore is running a function.
func (lc LCore) IsBusy() bool {
	panicInWorker("LCore.IsBusy()")
	return C.rte_eal_get_lcore_state(C.uint(lc.ID())) != C.WAIT
}

// RemoteLaunch asynchronously launches a function on this lcore.
// Errors if the lcore is not in WAIT state.
func (lc LCore) RemoteLaunch(f func() int) error {
	panicInWorker("LCore.RemoteLaunch()")
	if !lc.Valid() {
		panic("invalid lcore")
	}
	ctx := cptr.CtxPut(f)
	res := C.rte_eal_remote_launch((*C.lcore_function_t)(C.go_lcoreLaunch), ctx, C.uint(lc.ID()))
	if res != 0 {
		cptr.CtxClear(ctx)
		return MakeErrno(res)
	}
	return nil
}

// Wait blocks until this lcore finishes running, and returns lcore function's return value.
// If this lcore is not running, returns 0 immediately.
func (lc LCore) Wait() int {
	panicInWorker("LCore.Wait()")
	return int(C.rte_eal_wait_lcore(C.uint(lc.ID())))
}

// WaitAll blocks until all worker lcores finish running.
func WaitAll() {
	panicInWorker("WaitAll()")
	C.rte_eal_mp_wait_lcore()
}

//export go_lcoreLaunch
func go_lcoreLaunch(ctx unsafe.Pointer) C.int {
	f := cptr.CtxPop(ctx).(func() int)
	return C.int(f())
}

// Prevent a function from executing in worker lcore.
func panicInWorker(funcName string) {
	lc := CurrentLCore()
	if main := MainLCore; lc.Valid() && main.Valid() && lc.v != main.v {
		panic(fmt.Sprintf("%s is unavailable in worker lcore; current=%s main=%s",
			funcName, lc, main))
	}
	// 'invalid' lcore is permitted, because Go runtime could use another thread
}

// LCores is a list of LCores.
type LCores []LCore

// MarshalLogArray implements zapcore.ArrayMarshaler.
func (lcores LCores) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, lc := range lcores {
		enc.AppendInt(lc.ID())
	}
	return nil
}

// NumaSocketsOf maps lcores into NUMA sockets.
func (lcores LCores) NumaSocketsOf() (a []NumaSocket) {
	a = make([]NumaSocket, len(lcores))
	for i, lcore := range lcores {
		a[i] = lcore.NumaSocket()
	}
	return a
}
