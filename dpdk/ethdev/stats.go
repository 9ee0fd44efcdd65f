package ethdev

/*
#include "../../csrc/dpdk/ethdev.h"
*/
import "C"
import (
	"fmt"

	"github.com/packetplane/rtebind/core/cptr"
	"github.com/packetplane/rtebind/dpdk/eal"
)

// Stats contains basic statistics of an Ethernet port.
type Stats struct {
	Ipackets uint64 `json:"ipackets"` // successfully received packets
	Opackets uint64 `json:"opackets"` // successfully transmitted packets
	Ibytes   uint64 `json:"ibytes"`   // successfully received octets
	Obytes   uint64 `json:"obytes"`   // successfully transmitted octets
	Imissed  uint64 `json:"imissed"`  // packets dropped due to full RX queues
	Ierrors  uint64 `json:"ierrors"`  // erroneous received packets
	Oerrors  uint64 `json:"oerrors"`  // failed transmitted packets
	RxNombuf uint64 `json:"rxNombuf"` // RX mbuf allocation failures
}

func (es Stats) String() string {
	return fmt.Sprintf("RX %d pkts, %d bytes, %d missed, %d errors, %d nombuf; TX %d pkts, %d bytes, %d errors",
		es.Ipackets, es.Ibytes, es.Imissed, es.Ierrors, es.RxNombuf, es.Opackets, es.Obytes, es.Oerrors)
}

// Stats retrieves basic statistics.
func (port EthDev) Stats() (es Stats) {
	var esC C.struct_rte_eth_stats
	if res := C.rte_eth_stats_get(C.uint16_t(port.ID()), &esC); res != 0 {
		return es
	}
	return Stats{
		Ipackets: uint64(esC.ipackets),
		Opackets: uint64(esC.opackets),
		Ibytes:   uint64(esC.ibytes),
		Obytes:   uint64(esC.obytes),
		Imissed:  uint64(esC.imissed),
		Ierrors:  uint64(esC.ierrors),
		Oerrors:  uint64(esC.oerrors),
		RxNombuf: uint64(esC.rx_nombuf),
	}
}

// ResetStats clears statistics.
func (port EthDev) ResetStats() error {
	return eal.MakeErrno(C.rte_eth_stats_reset(C.uint16_t(port.ID())))
}

// Xstats retrieves extended statistics, keyed by statistic name.
// Returns nil if the statistics cannot be retrieved.
func (port EthDev) Xstats() map[string]uint64 {
	id := C.uint16_t(port.ID())
	cnt := C.rte_eth_xstats_get_names(id, nil, 0)
	if cnt <= 0 {
		return nil
	}

	names := make([]C.struct_rte_eth_xstat_name, int(cnt))
	if res := C.rte_eth_xstats_get_names(id, &names[0], C.uint(cnt)); res != cnt {
		return nil
	}

	xstats := make([]C.struct_rte_eth_xstat, int(cnt))
	res := C.rte_eth_xstats_get(id, &xstats[0], C.uint(cnt))
	if res < 0 || res > cnt {
		return nil
	}

	m := make(map[string]uint64, int(res))
	for _, xs := range xstats[:res] {
		m[cptr.GetString(names[int(xs.id)].name[:])] = uint64(xs.value)
	}
	return m
}
