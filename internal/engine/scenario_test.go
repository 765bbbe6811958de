package engine

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestTierForTable(t *testing.T) {
    tests := []struct {
        name       string
        slot       int
        multiplier float64
        delay      int
        regret     float64
    }{
        {name: "premium safe slot", slot: 1, multiplier: 1.6, delay: 0, regret: 0.05},
        {name: "standard midday slot", slot: 2, multiplier: 1.1, delay: 10, regret: 0.15},
        {name: "standard afternoon slot", slot: 3, multiplier: 1.1, delay: 10, regret: 0.15},
        {name: "budget slot", slot: 4, multiplier: 0.8, delay: 35, regret: 0.45},
        {name: "high risk charter slot", slot: 5, multiplier: 0.6, delay: 90, regret: 0.85},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            tier := TierFor(tt.slot)
            assert.Equal(t, tt.multiplier, tier.PriceMultiplier)
            assert.Equal(t, tt.delay, tier.DelayMinutes)
            assert.Equal(t, tt.regret, tier.RegretIndex)
            assert.NotEmpty(t, tier.Note)
        })
    }
}

func TestTierForSharedStandardTier(t *testing.T) {
    // Slots 2 and 3 are the same tier by definition.
    require.Equal(t, TierFor(2), TierFor(3))
}

func TestTierForPanicsOutsideRange(t *testing.T) {
    for _, slot := range []int{-1, 0, 6, 100} {
        assert.Panics(t, func() { TierFor(slot) }, "slot %d must panic", slot)
    }
}
