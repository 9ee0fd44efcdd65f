// Package eal contains bindings of DPDK Environment Abstraction Layer.
package eal

import (
	"sort"

	"github.com/packetplane/rtebind/core/logging"
)

var logger = logging.New("eal")

// Version is the DPDK version.
// This is populated by package ealinit.
var Version string

// EAL variables, available after ealinit.Init().
var (
	// MainLCore is the main lcore.
	MainLCore LCore
	// Workers are worker lcores.
	Workers LCores
	// Sockets are NUMA sockets of worker lcores.
	Sockets []NumaSocket
)

var lcoreToSocket = map[int]int{}

// UpdateLCoreSockets saves lcore and NUMA socket information.
// If this is used for mocking in unit tests, an undo function is provided to revert the changes.
func UpdateLCoreSockets(lcoreSockets map[int]int, mainLCoreID int) (undo func()) {
	oldMainLCore, oldWorkers, oldSockets, oldLCoreToSocket := MainLCore, Workers, Sockets, lcoreToSocket
	undo = func() {
		MainLCore, Workers, Sockets, lcoreToSocket = oldMainLCore, oldWorkers, oldSockets, oldLCoreToSocket
	}

	MainLCore, Workers, Sockets, lcoreToSocket = LCoreFromID(mainLCoreID), nil, nil, map[int]int{}

	socketIDs := map[int]bool{}
	for lcID, socketID := range lcoreSockets {
		lcoreToSocket[lcID] = socketID
		socketIDs[socketID] = true
		if lcID != mainLCoreID {
			Workers = append(Workers, LCoreFromID(lcID))
		}
	}
	sort.Slice(Workers, func(i, j int) bool { return Workers[i].v < Workers[j].v })

	for socketID := range socketIDs {
		Sockets = append(Sockets, NumaSocketFromID(socketID))
	}
	sort.Slice(Sockets, func(i, j int) bool { return Sockets[i].v < Sockets[j].v })

	return undo
}
