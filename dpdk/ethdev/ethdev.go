// Package ethdev contains bindings of DPDK Ethernet device API.
package ethdev

/*
#cgo pkg-config: libdpdk

#include "../../csrc/dpdk/ethdev.h"
*/
import "C"
import (
	"fmt"
	"net"
	"strconv"

	"github.com/packetplane/rtebind/core/cptr"
	"github.com/packetplane/rtebind/core/logging"
	"github.com/packetplane/rtebind/dpdk/eal"
	"github.com/packetplane/rtebind/dpdk/ringbuffer"
	"go.uber.org/zap"
)

var logger = logging.New("ethdev")

// EthDev represents an Ethernet port.
// Zero value is invalid port.
type EthDev struct {
	v int // port ID + 1
}

// FromID converts port ID to EthDev.
func FromID(id int) EthDev {
	if id < 0 || id >= C.RTE_MAX_ETHPORTS {
		return EthDev{}
	}
	return EthDev{id + 1}
}

// List returns a list of Ethernet ports.
func List() (list []EthDev) {
	for p := C.rte_eth_find_next(0); p < C.RTE_MAX_ETHPORTS; p = C.rte_eth_find_next(p + 1) {
		list = append(list, FromID(int(p)))
	}
	return list
}

// Find locates an EthDev by name.
func Find(name string) EthDev {
	for _, port := range List() {
		if port.Name() == name {
			return port
		}
	}
	return EthDev{}
}

// ID returns port ID.
func (port EthDev) ID() int {
	return port.v - 1
}

// Valid returns true if this is a valid Ethernet port.
func (port EthDev) Valid() bool {
	return port.v != 0
}

func (port EthDev) String() string {
	if !port.Valid() {
		return "invalid"
	}
	return strconv.Itoa(port.ID())
}

// Name returns port name.
func (port EthDev) Name() string {
	var ifname [C.RTE_ETH_NAME_MAX_LEN]C.char
	if res := C.rte_eth_dev_get_name_by_port(C.uint16_t(port.ID()), &ifname[0]); res != 0 {
		return ""
	}
	return cptr.GetString(ifname[:])
}

// NumaSocket returns the NUMA socket where this port is located.
func (port EthDev) NumaSocket() (socket eal.NumaSocket) {
	return eal.NumaSocketFromID(int(C.rte_eth_dev_socket_id(C.uint16_t(port.ID()))))
}

// DevInfo retrieves information about the hardware device.
func (port EthDev) DevInfo() (info DevInfo) {
	var infoC C.struct_rte_eth_dev_info
	if res := C.rte_eth_dev_info_get(C.uint16_t(port.ID()), &infoC); res != 0 {
		return info
	}
	return devInfoFromC(infoC)
}

// MacAddr retrieves MAC address of this port.
func (port EthDev) MacAddr() net.HardwareAddr {
	var macC C.struct_rte_ether_addr
	C.rte_eth_macaddr_get(C.uint16_t(port.ID()), &macC)
	a := make(net.HardwareAddr, C.RTE_ETHER_ADDR_LEN)
	copy(a, cptr.AsByteSlice(macC.addr_bytes[:]))
	return a
}

// MTU retrieves MTU of this port.
func (port EthDev) MTU() int {
	var mtu C.uint16_t
	C.rte_eth_dev_get_mtu(C.uint16_t(port.ID()), &mtu)
	return int(mtu)
}

// IsDown determines whether this port is down.
func (port EthDev) IsDown() bool {
	return bool(C.EthDev_IsDown(C.uint16_t(port.ID())))
}

// Start configures and starts this port.
func (port EthDev) Start(cfg Config) error {
	info := port.DevInfo()
	if info.MaxRxQueues > 0 && len(cfg.RxQueues) > info.MaxRxQueues {
		return fmt.Errorf("cannot add more than %d RX queues", info.MaxRxQueues)
	}
	if info.MaxTxQueues > 0 && len(cfg.TxQueues) > info.MaxTxQueues {
		return fmt.Errorf("cannot add more than %d TX queues", info.MaxTxQueues)
	}

	if cfg.MTU > 0 {
		if res := C.rte_eth_dev_set_mtu(C.uint16_t(port.ID()), C.uint16_t(cfg.MTU)); res != 0 {
			if !info.canIgnoreSetMTUError() {
				return fmt.Errorf("rte_eth_dev_set_mtu(%v,%d): %w", port, cfg.MTU, eal.MakeErrno(res))
			}
			logger.Info("rte_eth_dev_set_mtu error ignored for this driver",
				port.ZapField("port"),
				zap.String("driver", info.Driver),
			)
		}
	}

	conf := (*C.struct_rte_eth_conf)(cfg.Conf)
	if conf == nil {
		conf = new(C.struct_rte_eth_conf)
		if info.HasTxMultiSegOffload() {
			conf.txmode.offloads = C.uint64_t(TxOffloadMultiSegs)
		}
	}

	res := C.rte_eth_dev_configure(C.uint16_t(port.ID()), C.uint16_t(len(cfg.RxQueues)),
		C.uint16_t(len(cfg.TxQueues)), conf)
	if res < 0 {
		return fmt.Errorf("rte_eth_dev_configure(%v): %w", port, eal.MakeErrno(res))
	}

	for i, qcfg := range cfg.RxQueues {
		capacity := info.RxDescLim.adjustQueueCapacity(ringbuffer.AlignCapacity(qcfg.Capacity))
		res = C.rte_eth_rx_queue_setup(C.uint16_t(port.ID()), C.uint16_t(i), C.uint16_t(capacity),
			C.uint(qcfg.Socket.ID()), (*C.struct_rte_eth_rxconf)(qcfg.Conf),
			(*C.struct_rte_mempool)(qcfg.RxPool.Ptr()))
		if res != 0 {
			return fmt.Errorf("rte_eth_rx_queue_setup(%v,%d): %w", port, i, eal.MakeErrno(res))
		}
	}

	for i, qcfg := range cfg.TxQueues {
		capacity := info.TxDescLim.adjustQueueCapacity(ringbuffer.AlignCapacity(qcfg.Capacity))
		res = C.rte_eth_tx_queue_setup(C.uint16_t(port.ID()), C.uint16_t(i), C.uint16_t(capacity),
			C.uint(qcfg.Socket.ID()), (*C.struct_rte_eth_txconf)(qcfg.Conf))
		if res != 0 {
			return fmt.Errorf("rte_eth_tx_queue_setup(%v,%d): %w", port, i, eal.MakeErrno(res))
		}
	}

	if cfg.Promisc {
		res = C.rte_eth_promiscuous_enable(C.uint16_t(port.ID()))
	} else {
		res = C.rte_eth_promiscuous_disable(C.uint16_t(port.ID()))
	}
	if res != 0 && !info.canIgnorePromiscError() {
		return fmt.Errorf("rte_eth_promiscuous(%v): %w", port, eal.MakeErrno(res))
	}

	if res = C.rte_eth_dev_start(C.uint16_t(port.ID())); res != 0 {
		return fmt.Errorf("rte_eth_dev_start(%v): %w", port, eal.MakeErrno(res))
	}

	logger.Info("port started",
		port.ZapField("port"),
		zap.String("driver", info.Driver),
		zap.Int("rx-queues", len(cfg.RxQueues)),
		zap.Int("tx-queues", len(cfg.TxQueues)),
	)
	return nil
}

// Stop stops this port.
// If mode is StopDetach, this port cannot be restarted.
// Otherwise, it may be re-configured and started again.
func (port EthDev) Stop(mode StopMode) error {
	if res := C.rte_eth_dev_stop(C.uint16_t(port.ID())); res != 0 {
		return fmt.Errorf("rte_eth_dev_stop(%v): %w", port, eal.MakeErrno(res))
	}
	switch mode {
	case StopDetach:
		return eal.MakeErrno(C.rte_eth_dev_close(C.uint16_t(port.ID())))
	case StopReset:
		return eal.MakeErrno(C.rte_eth_dev_reset(C.uint16_t(port.ID())))
	}
	return nil
}

// Close stops and detaches this port.
func (port EthDev) Close() error {
	return port.Stop(StopDetach)
}

// ZapField returns a zap logging field of the port.
func (port EthDev) ZapField(key string) zap.Field {
	if !port.Valid() {
		return zap.String(key, "invalid")
	}
	return zap.Int(key, port.ID())
}
