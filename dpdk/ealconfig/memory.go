package ealconfig

import (
	"strconv"

	"github.com/packetplane/rtebind/core/hwinfo"
)

// MemoryConfig contains memory related configuration.
type MemoryConfig struct {
	// MemChannels is the number of memory channels.
	// This is ignored if MemFlags is specified.
	MemChannels int `json:"memChannels,omitempty"`

	// MemPerNuma maps from NUMA socket ID to the maximum amount of hugepage
	// memory (in MiB) that DPDK may use on that socket.
	//
	// The default is no limit. If this map contains a non-existent NUMA socket,
	// it is skipped. This is ignored if MemFlags is specified.
	MemPerNuma map[int]int `json:"memPerNuma,omitempty"`

	// FilePrefix is the shared data file prefix.
	// This is ignored if MemFlags is specified.
	FilePrefix string `json:"filePrefix,omitempty"`

	// DisableHugeIPC, if set along with MemFlags empty, disables hugepages and
	// multi-process shared memory. This is intended for unit testing.
	DisableHugeIPC bool `json:"-"`

	// MemFlags is memory-related flags passed to DPDK.
	// This replaces all other options.
	MemFlags string `json:"memFlags,omitempty"`
}

func (cfg MemoryConfig) args(hwInfo hwinfo.Provider) (args []string, e error) {
	if cfg.MemFlags != "" {
		return shellSplit("MemFlags", cfg.MemFlags)
	}

	if cfg.MemChannels > 0 {
		args = append(args, "-n", strconv.Itoa(cfg.MemChannels))
	}

	if len(cfg.MemPerNuma) > 0 {
		var socketLimit commaSeparated
		for socket, last := 0, maxNumaSocket(hwInfo); socket <= last; socket++ {
			if limit, ok := cfg.MemPerNuma[socket]; ok {
				socketLimit.AppendInt(limit)
			} else {
				socketLimit.AppendInt(0) // 0 means no limit
			}
		}
		args = append(args, "--socket-limit", socketLimit.String())
	}

	if cfg.FilePrefix != "" {
		args = append(args, "--file-prefix", cfg.FilePrefix)
	}

	if cfg.DisableHugeIPC {
		args = append(args, "--no-huge", "--no-shconf", "-m", "2048")
	}

	return args, nil
}
