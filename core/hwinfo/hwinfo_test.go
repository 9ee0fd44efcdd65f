package hwinfo_test

import (
	"testing"

	"github.com/packetplane/rtebind/core/hwinfo"
	"github.com/packetplane/rtebind/core/testenv"
)

var makeAR = testenv.MakeAR

func TestCores(t *testing.T) {
	assert, require := makeAR(t)

	cores := hwinfo.Default.Cores()
	require.NotEmpty(cores)

	byID := cores.ByID()
	assert.Len(byID, len(cores))

	nPrimary, nSecondary := len(cores.ListPrimary()), len(cores.ListSecondary())
	assert.Equal(len(cores), nPrimary+nSecondary)
	assert.GreaterOrEqual(nPrimary, nSecondary)

	maxSocket := cores.MaxNumaSocket()
	assert.GreaterOrEqual(maxSocket, 0)
	bySocket := cores.ByNumaSocket()
	assert.LessOrEqual(len(bySocket), maxSocket+1)
}
