package ethdev_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/packetplane/rtebind/core/macaddr"
	"github.com/packetplane/rtebind/dpdk/eal"
	"github.com/packetplane/rtebind/dpdk/ethdev"
	"github.com/packetplane/rtebind/dpdk/ethdev/ethringdev"
	"github.com/packetplane/rtebind/dpdk/pktmbuf"
	"github.com/packetplane/rtebind/dpdk/pktmbuf/mbuftestenv"
)

func TestEthDev(t *testing.T) {
	assert, require := makeAR(t)
	require.GreaterOrEqual(len(eal.Workers), 2)

	pair, e := ethringdev.NewPair(ethringdev.PairConfig{
		RxPool: mbuftestenv.DirectMempool(),
	})
	require.NoError(e)
	defer pair.Close()

	portA, portB := pair.PortA, pair.PortB
	assert.True(portA.Valid())
	assert.True(portB.Valid())
	assert.NotEqual(portA.ID(), portB.ID())
	assert.NotEmpty(portA.Name())

	info := portA.DevInfo()
	assert.Equal(ethdev.DriverRing, info.Driver)
	assert.True(info.IsVDev())
	assert.True(info.HasTxMultiSegOffload())

	assert.True(macaddr.IsValid(portA.MacAddr()))

	require.NoError(portA.Start(pair.EthDevConfig()))
	require.NoError(portB.Start(pair.EthDevConfig()))
	assert.False(portA.IsDown())
	assert.False(portB.IsDown())

	rxq := portA.RxQueues()[0]
	txq := portB.TxQueues()[0]

	const rxBurstSize = 6
	const txLoops = 10000
	const txBurstSize = 10
	const maxTxRetry = 20
	const txRetryInterval = time.Millisecond
	const rxFinishWait = 10 * time.Millisecond

	var nReceived atomic.Int64
	rxQuit := make(chan struct{})
	require.NoError(eal.Workers[0].RemoteLaunch(func() int {
		for {
			vec := make(pktmbuf.Vector, rxBurstSize)
			burstSize := rxq.RxBurst(vec)
			assert.LessOrEqual(burstSize, rxBurstSize)
			for _, pkt := range vec[:burstSize] {
				if assert.NotNil(pkt) {
					n := nReceived.Add(1)
					assert.Equal(1, pkt.Len(), "bad RX length at %d", n)
				}
			}
			vec[:burstSize].Close()

			select {
			case <-rxQuit:
				return 0
			default:
			}
		}
	}))

	require.NoError(eal.Workers[1].RemoteLaunch(func() int {
		for i := range txLoops {
			vec := mbuftestenv.DirectMempool().MustAlloc(txBurstSize)
			for j := range txBurstSize {
				vec[j].Append([]byte{byte(j)})
			}

			nSent := 0
			for nRetries := 0; nRetries < maxTxRetry; nRetries++ {
				nSent += txq.TxBurst(vec[nSent:])
				if nSent == txBurstSize {
					break
				}
				time.Sleep(txRetryInterval)
			}
			if nSent < txBurstSize {
				vec[nSent:].Close()
			}
			assert.Equal(txBurstSize, nSent, "TxBurst incomplete at loop %d", i)
		}
		return 0
	}))
	eal.Workers[1].Wait()
	time.Sleep(rxFinishWait)
	close(rxQuit)
	eal.Workers[0].Wait()

	assert.Zero(rxq.RxBurst(pktmbuf.Vector{}))
	assert.Zero(txq.TxBurst(pktmbuf.Vector{}))

	nRx := int(nReceived.Load())
	statsA, statsB := portA.Stats(), portB.Stats()
	assert.NotEmpty(statsA.String())
	assert.EqualValues(nRx, statsA.Ipackets)
	assert.EqualValues(txLoops*txBurstSize, statsB.Opackets)
	assert.LessOrEqual(nRx, txLoops*txBurstSize)
	assert.InEpsilon(txLoops*txBurstSize, nRx, 0.05)

	xstats := portA.Xstats()
	if assert.NotEmpty(xstats) {
		assert.EqualValues(statsA.Ipackets, xstats["rx_good_packets"])
	}

	assert.NoError(portA.ResetStats())
	assert.Zero(portA.Stats().Ipackets)
}

func TestFromID(t *testing.T) {
	assert, _ := makeAR(t)

	var port ethdev.EthDev
	assert.False(port.Valid())
	assert.Equal("invalid", port.String())

	assert.False(ethdev.FromID(-1).Valid())
	assert.False(ethdev.Find("no-such-port").Valid())
}
