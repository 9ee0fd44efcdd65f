package mempool_test

import (
	"testing"
	"unsafe"

	"github.com/packetplane/rtebind/dpdk/eal"
	"github.com/packetplane/rtebind/dpdk/mempool"
)

func TestCapacity(t *testing.T) {
	assert, _ := makeAR(t)

	assert.Equal(63, mempool.ComputeOptimumCapacity(64))
	assert.Equal(65, mempool.ComputeOptimumCapacity(65))
	assert.Equal(4095, mempool.ComputeOptimumCapacity(4096))
}

func TestMempool(t *testing.T) {
	assert, require := makeAR(t)

	mp, e := mempool.New(mempool.Config{
		Capacity:    64,
		ElementSize: 256,
		NoCache:     true,
	})
	require.NoError(e)
	defer mp.Close()

	assert.Equal(256, mp.SizeofElement())
	assert.Equal(63, mp.CountAvailable())
	assert.Equal(0, mp.CountInUse())

	objs := make([]unsafe.Pointer, 63)
	require.NoError(mp.Alloc(objs))
	assert.Equal(0, mp.CountAvailable())
	assert.Equal(63, mp.CountInUse())
	for _, obj := range objs {
		assert.NotNil(obj)
	}

	one := make([]unsafe.Pointer, 1)
	assert.Error(mp.Alloc(one))

	assert.NoError(mp.Alloc([]unsafe.Pointer{}))
	mp.Free([]unsafe.Pointer{})
	assert.Equal(63, mp.CountInUse())

	mp.Free(objs)
	assert.Equal(63, mp.CountAvailable())
	assert.Equal(0, mp.CountInUse())

	mp2 := mempool.FromPtr(mp.Ptr())
	assert.Equal(mp.String(), mp2.String())
}
