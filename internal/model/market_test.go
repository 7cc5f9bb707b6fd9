package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotVWAP_NoVolumeFallsBackToPrice(t *testing.T) {
	snap := &Snapshot{Symbol: "02556", Price: 3.49, Amount: 0, Volume: 0}

	assert.Equal(t, 3.49, snap.VWAP())
	assert.Equal(t, 0.0, snap.VWAPBias())
}

func TestSnapshotVWAP_ComputedFromAmountAndVolume(t *testing.T) {
	snap := &Snapshot{Symbol: "02556", Price: 10, Amount: 1030000, Volume: 100000}

	assert.InDelta(t, 10.3, snap.VWAP(), 1e-9)
	assert.InDelta(t, (10.0-10.3)/10.3*100, snap.VWAPBias(), 1e-9)
}

func TestSnapshotVWAPBias_SignMatchesPriceVersusVWAP(t *testing.T) {
	below := &Snapshot{Price: 10, Amount: 1030000, Volume: 100000} // vwap 10.3
	above := &Snapshot{Price: 11, Amount: 1030000, Volume: 100000}
	at := &Snapshot{Price: 10.3, Amount: 1030000, Volume: 100000}

	assert.Negative(t, below.VWAPBias())
	assert.Positive(t, above.VWAPBias())
	assert.InDelta(t, 0, at.VWAPBias(), 1e-9)
}
