package ealtest

import (
	"testing"
	"time"

	"github.com/packetplane/rtebind/dpdk/eal"
)

func TestLaunch(t *testing.T) {
	assert, require := makeAR(t)
	require.NotEmpty(eal.Workers)
	worker := eal.Workers[0]

	assert.False(worker.IsBusy())

	hasRun := false
	e := worker.RemoteLaunch(func() int {
		hasRun = true
		assert.Equal(worker.ID(), eal.CurrentLCore().ID())
		time.Sleep(10 * time.Millisecond)
		return 4466
	})
	require.NoError(e)

	assert.Equal(4466, worker.Wait())
	assert.True(hasRun)
	assert.False(worker.IsBusy())
	assert.Zero(worker.Wait())

	eal.WaitAll()
}
