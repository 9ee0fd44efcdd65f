// Package ealtestenv initializes EAL for unit testing.
package ealtestenv

import (
	"os"
	"strconv"

	"github.com/packetplane/rtebind/core/hwinfo"
	"github.com/packetplane/rtebind/dpdk/ealconfig"
	"github.com/packetplane/rtebind/dpdk/ealinit"
	"github.com/pkg/math"
)

// EnvCpus is the environment variable to reduce the number of usable CPU cores.
const EnvCpus = "EALTESTENV_CPUS"

// WantLCores is the number of lcores desired by unit tests.
var WantLCores = 6

// Init initializes EAL for unit testing.
// Panics on failure.
func Init() {
	cores := hwinfo.Default.Cores()
	usableCores := len(cores)
	if env, ok := os.LookupEnv(EnvCpus); ok {
		limit, e := strconv.Atoi(env)
		if e != nil || limit < 1 {
			panic(EnvCpus + ": invalid value")
		}
		usableCores = math.MinInt(usableCores, limit)
	}

	var cfg ealconfig.Config
	cfg.DisableHugeIPC = true
	if usableCores >= WantLCores {
		for _, core := range cores[:usableCores] {
			cfg.Cores = append(cfg.Cores, core.ID)
		}
	} else {
		// not enough processors, create floating lcores instead
		cfg.LCoresPerNuma = map[int]int{cores[0].NumaSocket: WantLCores}
	}

	if e := ealinit.Init(cfg); e != nil {
		panic(e)
	}
}
