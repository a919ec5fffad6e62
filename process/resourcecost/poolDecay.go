package resourcecost

import (
	"math/big"
)

// ComputePoolDecay returns the amount a pool balance decays over dt time units:
//
//	decay = min( (decayPerTimeUnit * dt * pool) >> denomShift, pool )
//
// a fixed-point multiply-shift approximation of exponential decay toward zero.
// The clamp guarantees decay never exceeds the available balance; a negative
// balance decays with symmetric sign. The function never mutates its inputs
func ComputePoolDecay(decayParams *DecayParams, currentPool *big.Int, dt uint32) *big.Int {
	if decayParams == nil || decayParams.DecayPerTimeUnit == nil || currentPool == nil {
		return big.NewInt(0)
	}

	if currentPool.Sign() < 0 {
		decayed := ComputePoolDecay(decayParams, big.NewInt(0).Neg(currentPool), dt)
		return decayed.Neg(decayed)
	}

	decayAmount := big.NewInt(0).Set(decayParams.DecayPerTimeUnit)
	decayAmount.Mul(decayAmount, big.NewInt(0).SetUint64(uint64(dt)))
	decayAmount.Mul(decayAmount, currentPool)
	decayAmount.Rsh(decayAmount, uint(decayParams.DenomShift))

	if decayAmount.Cmp(currentPool) > 0 {
		return big.NewInt(0).Set(currentPool)
	}

	return decayAmount
}
