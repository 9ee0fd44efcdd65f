package ringbuffer_test

import (
	"testing"
	"unsafe"

	"github.com/packetplane/rtebind/core/testenv"
	"github.com/packetplane/rtebind/dpdk/eal"
	"github.com/packetplane/rtebind/dpdk/ealtestenv"
	"github.com/packetplane/rtebind/dpdk/mempool"
	"github.com/packetplane/rtebind/dpdk/ringbuffer"
)

func TestMain(m *testing.M) {
	ealtestenv.Init()
	testenv.Exit(m.Run())
}

var makeAR = testenv.MakeAR

func TestAlignCapacity(t *testing.T) {
	assert, _ := makeAR(t)

	assert.Equal(ringbuffer.DefaultCapacity, ringbuffer.AlignCapacity(0))
	assert.Equal(ringbuffer.MinCapacity, ringbuffer.AlignCapacity(1))
	assert.Equal(64, ringbuffer.AlignCapacity(33))
	assert.Equal(64, ringbuffer.AlignCapacity(64))
	assert.Equal(512, ringbuffer.AlignCapacity(0, 64, 512, 2048))

	assert.Panics(func() { ringbuffer.AlignCapacity(0, 3) })
}

func TestRing(t *testing.T) {
	assert, require := makeAR(t)

	mp, e := mempool.New(mempool.Config{
		Capacity:    64,
		ElementSize: 64,
		NoCache:     true,
	})
	require.NoError(e)
	defer mp.Close()

	r, e := ringbuffer.New(4, eal.NumaSocket{}, ringbuffer.ProducerSingle, ringbuffer.ConsumerSingle)
	require.NoError(e)
	defer r.Close()

	assert.Equal(4, r.Capacity())
	assert.Equal(0, r.CountInUse())
	assert.Equal(4, r.CountAvailable())

	objs := make([]unsafe.Pointer, 6)
	require.NoError(mp.Alloc(objs))
	defer mp.Free(objs)

	assert.Zero(r.Enqueue([]unsafe.Pointer{}))

	nEnqueued := r.Enqueue(objs)
	assert.Equal(4, nEnqueued)
	assert.Equal(4, r.CountInUse())
	assert.Equal(0, r.CountAvailable())

	deq := make([]unsafe.Pointer, 6)
	assert.Zero(r.Dequeue([]unsafe.Pointer{}))
	nDequeued := r.Dequeue(deq)
	assert.Equal(4, nDequeued)
	assert.Equal(0, r.CountInUse())
	assert.Equal(objs[:4], deq[:4])
}
