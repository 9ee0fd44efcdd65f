package ethringdev

import (
	"fmt"

	"github.com/packetplane/rtebind/dpdk/eal"
	"github.com/packetplane/rtebind/dpdk/ethdev"
	"github.com/packetplane/rtebind/dpdk/pktmbuf"
	"github.com/packetplane/rtebind/dpdk/ringbuffer"
	"go.uber.org/multierr"
)

// PairConfig contains configuration for Pair.
type PairConfig struct {
	NQueues       int            // number of queues on each EthDev
	RingCapacity  int            // capacity of rings connecting the pair
	QueueCapacity int            // queue capacity in each EthDev
	Socket        eal.NumaSocket // where to allocate data structures
	RxPool        *pktmbuf.Pool  // mempool for packet reception
}

func (cfg *PairConfig) applyDefaults() {
	if cfg.RxPool == nil {
		logger.Panic("cfg.RxPool is missing")
	}
	if cfg.NQueues <= 0 {
		cfg.NQueues = 1
	}
	if cfg.RingCapacity <= 0 {
		cfg.RingCapacity = 1024
	}
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = 64
	}
}

func (cfg PairConfig) toEthDevConfig() (dcfg ethdev.Config) {
	dcfg.AddRxQueues(cfg.NQueues, ethdev.RxQueueConfig{
		Capacity: cfg.QueueCapacity,
		Socket:   cfg.Socket,
		RxPool:   cfg.RxPool,
	})
	dcfg.AddTxQueues(cfg.NQueues, ethdev.TxQueueConfig{
		Capacity: cfg.QueueCapacity,
		Socket:   cfg.Socket,
	})
	return dcfg
}

// Pair represents a pair of EthDevs connected via the ring-based PMD.
// Packets transmitted on PortA appear on PortB, and vice versa.
type Pair struct {
	cfg   PairConfig
	rings []*ringbuffer.Ring

	PortA ethdev.EthDev
	PortB ethdev.EthDev
}

// EthDevConfig returns Config that can be used to start a port.
func (pair *Pair) EthDevConfig() ethdev.Config {
	return pair.cfg.toEthDevConfig()
}

// Close stops both ports and releases the rings.
func (pair *Pair) Close() (e error) {
	if pair.PortA.Valid() {
		e = multierr.Append(e, pair.PortA.Close())
	}
	if pair.PortB.Valid() {
		e = multierr.Append(e, pair.PortB.Close())
	}
	for _, r := range pair.rings {
		e = multierr.Append(e, r.Close())
	}
	pair.rings = nil
	return e
}

// NewPair creates a pair of connected EthDevs.
func NewPair(cfg PairConfig) (pair *Pair, e error) {
	cfg.applyDefaults()
	pair = &Pair{cfg: cfg}
	defer func() {
		if e != nil {
			pair.Close()
		}
	}()

	for range cfg.NQueues * 2 {
		ring, e := ringbuffer.New(cfg.RingCapacity, cfg.Socket,
			ringbuffer.ProducerSingle, ringbuffer.ConsumerSingle)
		if e != nil {
			return nil, fmt.Errorf("ringbuffer.New: %w", e)
		}
		pair.rings = append(pair.rings, ring)
	}
	ringsAB, ringsBA := pair.rings[:cfg.NQueues], pair.rings[cfg.NQueues:]

	pair.PortA, e = New(ringsAB, ringsBA, cfg.Socket)
	if e != nil {
		return nil, fmt.Errorf("ethringdev.New: %w", e)
	}
	pair.PortB, e = New(ringsBA, ringsAB, cfg.Socket)
	if e != nil {
		return nil, fmt.Errorf("ethringdev.New: %w", e)
	}

	return pair, nil
}
