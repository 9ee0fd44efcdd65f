package mbuftestenv

import (
	"github.com/packetplane/rtebind/dpdk/eal"
	"github.com/packetplane/rtebind/dpdk/pktmbuf"
)

func init() {
	// unit tests do not need large mempools
	pktmbuf.Direct.Update(pktmbuf.PoolConfig{
		Capacity: 4095,
	})
	pktmbuf.Indirect.Update(pktmbuf.PoolConfig{
		Capacity: 4095,
	})
}

// DirectMempool returns a mempool created from the DIRECT template.
func DirectMempool() *pktmbuf.Pool {
	return pktmbuf.Direct.Get(eal.NumaSocket{})
}

// IndirectMempool returns a mempool created from the INDIRECT template.
func IndirectMempool() *pktmbuf.Pool {
	return pktmbuf.Indirect.Get(eal.NumaSocket{})
}
