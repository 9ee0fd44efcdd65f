// Package ealinit initializes DPDK environment abstraction layer.
package ealinit

/*
#cgo pkg-config: libdpdk

#include "../../csrc/core/common.h"

#include <rte_eal.h>
#include <rte_launch.h>
#include <rte_lcore.h>
#include <rte_version.h>
*/
import "C"
import (
	"fmt"
	"runtime"
	"sync"

	"github.com/packetplane/rtebind/core/cptr"
	"github.com/packetplane/rtebind/core/logging"
	"github.com/packetplane/rtebind/dpdk/eal"
	"github.com/packetplane/rtebind/dpdk/ealconfig"
	"go.uber.org/zap"
)

var logger = logging.New("ealinit")

var (
	initOnce   sync.Once
	initResult error
)

// Init initializes DPDK.
// Only the first call performs initialization; subsequent calls return the
// first outcome and ignore cfg.
func Init(cfg ealconfig.Config) error {
	initOnce.Do(func() {
		initResult = initOnceDo(cfg)
	})
	return initResult
}

func initOnceDo(cfg ealconfig.Config) error {
	if e := initLogStream(); e != nil {
		logger.Warn("cannot redirect DPDK log stream", zap.Error(e))
	}

	args, e := cfg.Args(nil)
	if e != nil {
		return fmt.Errorf("ealconfig: %w", e)
	}
	logger.Info("EAL initializing", zap.Strings("args", args))

	done := make(chan error)
	go func() {
		// rte_eal_init registers the calling thread as the main lcore.
		// Keep this thread locked and parked so the main lcore stays valid.
		runtime.LockOSThread()
		a := cptr.NewCArgs(append([]string{"rtebind"}, args...))
		defer a.Close()
		res := C.rte_eal_init(C.int(a.Argc), (**C.char)(a.Argv))
		if res < 0 {
			done <- fmt.Errorf("rte_eal_init: %w", eal.GetErrno())
			return
		}
		done <- nil
		select {}
	}()
	if e := <-done; e != nil {
		return e
	}

	eal.Version = C.GoString(C.rte_version())

	lcoreSockets := map[int]int{}
	for id := 0; id < C.RTE_MAX_LCORE; id++ {
		if C.rte_lcore_is_enabled(C.uint(id)) == 0 {
			continue
		}
		lcoreSockets[id] = int(C.rte_lcore_to_socket_id(C.uint(id)))
	}
	eal.UpdateLCoreSockets(lcoreSockets, int(C.rte_get_main_lcore()))

	logger.Info("EAL ready",
		zap.String("version", eal.Version),
		zap.Int("main", eal.MainLCore.ID()),
		zap.Array("workers", eal.Workers),
	)
	return nil
}
