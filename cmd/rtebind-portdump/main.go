// Command rtebind-portdump receives packets on an Ethernet port and prints a
// summary of each decoded packet.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/packetplane/rtebind/core/logging"
	"github.com/packetplane/rtebind/dpdk/eal"
	"github.com/packetplane/rtebind/dpdk/ealconfig"
	"github.com/packetplane/rtebind/dpdk/ealinit"
	"github.com/packetplane/rtebind/dpdk/ethdev"
	"github.com/packetplane/rtebind/dpdk/pktmbuf"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var logger = logging.New("main")

var interrupt = make(chan os.Signal, 1)

var app = &cli.App{
	Usage: "Dump packets received on a DPDK Ethernet port.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "eal-flags",
			Usage:   "EAL `flags`, passed to DPDK verbatim.",
			EnvVars: []string{"RTEBIND_EAL_FLAGS"},
		},
		&cli.StringSliceFlag{
			Name:  "vdev",
			Usage: "Create a virtual `device`, such as net_af_packet0,iface=eth1. Repeatable.",
		},
		&cli.StringFlag{
			Name:  "port",
			Usage: "Port `name`; the default is the first available port.",
		},
		&cli.IntFlag{
			Name:  "burst",
			Usage: "RX burst `size`.",
			Value: 64,
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "Stop after receiving `n` packets; zero means run until interrupted.",
		},
		&cli.BoolFlag{
			Name:  "promisc",
			Usage: "Enable promiscuous mode.",
			Value: true,
		},
	},
	Before: func(c *cli.Context) error {
		signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
		cfg := ealconfig.Config{}
		cfg.Flags = c.String("eal-flags")
		cfg.VirtualDevices = c.StringSlice("vdev")
		return ealinit.Init(cfg)
	},
	Action: func(c *cli.Context) error {
		logger.Info("EAL initialized", zap.String("version", eal.Version))

		port, e := choosePort(c.String("port"))
		if e != nil {
			return e
		}
		logger.Info("using port",
			port.ZapField("port"),
			zap.String("name", port.Name()),
			zap.Stringer("macAddr", port.MacAddr()),
			zap.Int("mtu", port.MTU()),
		)

		pool := pktmbuf.Direct.Get(port.NumaSocket())

		var dcfg ethdev.Config
		dcfg.Promisc = c.Bool("promisc")
		dcfg.AddRxQueues(1, ethdev.RxQueueConfig{RxPool: pool, Socket: port.NumaSocket()})
		dcfg.AddTxQueues(1, ethdev.TxQueueConfig{Socket: port.NumaSocket()})
		if e := port.Start(dcfg); e != nil {
			return fmt.Errorf("port start: %w", e)
		}
		defer port.Stop(ethdev.StopDetach)

		dump(port, c.Int("burst"), c.Int("count"))

		fmt.Fprintln(os.Stderr, port.Stats())
		return nil
	},
}

func choosePort(name string) (port ethdev.EthDev, e error) {
	if name != "" {
		if port = ethdev.Find(name); !port.Valid() {
			return port, fmt.Errorf("port %q not found", name)
		}
		return port, nil
	}

	ports := ethdev.List()
	if len(ports) == 0 {
		return port, fmt.Errorf("no Ethernet ports available; create one with --vdev")
	}
	return ports[0], nil
}

func dump(port ethdev.EthDev, burst, count int) {
	rxq := port.RxQueues()[0]
	nReceived := 0
	for {
		select {
		case <-interrupt:
			return
		default:
		}

		vec := make(pktmbuf.Vector, burst)
		n := rxq.RxBurst(vec)
		if n == 0 {
			time.Sleep(time.Millisecond)
			continue
		}

		for _, pkt := range vec[:n] {
			nReceived++
			decoded := gopacket.NewPacket(pkt.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
			fmt.Printf("%6d len=%-5d %s\n", nReceived, pkt.Len(), summarize(decoded))
		}
		vec[:n].Close()

		if count > 0 && nReceived >= count {
			return
		}
	}
}

func summarize(pkt gopacket.Packet) string {
	var s string
	for i, layer := range pkt.Layers() {
		if i > 0 {
			s += " / "
		}
		s += layer.LayerType().String()
	}
	if t := pkt.TransportLayer(); t != nil {
		s += fmt.Sprintf(" %s->%s", t.TransportFlow().Src(), t.TransportFlow().Dst())
	}
	return s
}

func main() {
	if e := app.Run(os.Args); e != nil {
		logger.Fatal("exiting", zap.Error(e))
	}
}
