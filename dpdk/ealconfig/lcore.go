package ealconfig

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/packetplane/rtebind/core/hwinfo"
)

// LCoreConfig contains CPU and logical core related configuration.
type LCoreConfig struct {
	// Cores is the list of processors (hardware cores) available to DPDK.
	// Note that Go code is not restricted to these cores.
	//
	// The default is allowing all cores, subject to CPU affinity configured in
	// systemd or Docker. If this list contains a non-existent core, it is skipped.
	Cores []int `json:"cores,omitempty"`

	// CoresPerNuma maps from NUMA socket ID to the number of cores available to DPDK.
	// This is ignored if Cores is specified.
	//
	// Example:
	//  CoresPerNuma[0] = 10     allows up to 10 cores on socket 0.
	//  CoresPerNuma[1] = -2     allows all but 2 cores on socket 1.
	//  CoresPerNuma[2] = 0      disallows all cores on socket 2.
	//  Omitting CoresPerNuma[3] allows all cores on socket 3.
	//
	// If this map contains a non-existent NUMA socket, it is skipped.
	CoresPerNuma map[int]int `json:"coresPerNuma,omitempty"`

	// LCoresPerNuma maps from NUMA socket ID to the number of lcores created in DPDK.
	//
	// For each NUMA socket, the specified number of lcores are created as threads,
	// floating among all available processors on that NUMA socket. These lcores are
	// numbered from 0 consecutively starting from the lowest numbered NUMA socket.
	// Note that using threads can lead to suboptimal performance.
	//
	// If there are already enough processors, this should be left empty.
	LCoresPerNuma map[int]int `json:"lcoresPerNuma,omitempty"`

	// LCoreMain is the DPDK main lcore ID.
	LCoreMain *int `json:"lcoreMain,omitempty"`

	// LCoreFlags is lcore-related flags passed to DPDK.
	// This replaces all other options.
	LCoreFlags string `json:"lcoreFlags,omitempty"`
}

func (cfg LCoreConfig) args(hwInfo hwinfo.Provider) (args []string, e error) {
	if cfg.LCoreFlags != "" {
		return shellSplit("LCoreFlags", cfg.LCoreFlags)
	}

	avail := cfg.gatherAvail(hwInfo)
	if len(cfg.LCoresPerNuma) == 0 {
		var l commaSeparated
		availSockets := make([]int, 0, len(avail))
		for socket := range avail {
			availSockets = append(availSockets, socket)
		}
		sort.Ints(availSockets)
		for _, socket := range availSockets {
			l.AppendInt(avail[socket]...)
		}
		if len(l) == 0 {
			return nil, errors.New("no processor available")
		}
		args = append(args, "-l", l.String())
	} else {
		demandSockets := []int{}
		for socket, demand := range cfg.LCoresPerNuma {
			if demand == 0 {
				return nil, fmt.Errorf("LCoresPerNuma[%d] should not be zero", socket)
			}
			if len(avail[socket]) == 0 {
				return nil, fmt.Errorf("no processor available on NUMA socket %d", socket)
			}
			demandSockets = append(demandSockets, socket)
		}
		sort.Ints(demandSockets)

		var lcores commaSeparated
		nextLCoreID := 0
		for _, socket := range demandSockets {
			var slcores, savail commaSeparated
			for i := 0; i < cfg.LCoresPerNuma[socket]; i++ {
				slcores.AppendInt(nextLCoreID)
				nextLCoreID++
			}
			savail.AppendInt(avail[socket]...)
			lcores = append(lcores, fmt.Sprintf("(%s)@(%s)", slcores, savail))
		}
		args = append(args, "--lcores", lcores.String())
	}

	if cfg.LCoreMain != nil {
		args = append(args, "--main-lcore", strconv.Itoa(*cfg.LCoreMain))
	}

	return args, nil
}

func (cfg LCoreConfig) gatherAvail(hwInfo hwinfo.Provider) (availBySocket map[int][]int) {
	availBySocket = map[int][]int{}
	if len(cfg.Cores) > 0 {
		hwCores := hwInfo.Cores().ByID()
		for _, coreID := range cfg.Cores {
			if hwCore, found := hwCores[coreID]; found {
				availBySocket[hwCore.NumaSocket] = append(availBySocket[hwCore.NumaSocket], coreID)
			}
		}
	} else {
		for socket, hwCores := range hwInfo.Cores().ByNumaSocket() {
			socketCores := append(hwCores.ListPrimary(), hwCores.ListSecondary()...)
			pref, hasPref := cfg.CoresPerNuma[socket]
			switch {
			case !hasPref: // allow all cores
			case pref == 0: // disallow all cores
				socketCores = nil
			case pref < 0: // disallow some cores
				pref += len(socketCores)
				if pref <= 0 { // all cores disallowed
					socketCores = nil
					break
				}
				fallthrough
			case pref > 0: // allow some cores
				if len(socketCores) > pref {
					socketCores = socketCores[:pref]
				}
			}
			availBySocket[socket] = socketCores
		}
	}
	return availBySocket
}
