package resourcecost

import (
	"math/big"
)

// ComputeResourceCost prices the given resource usage against the current pool
// through the bonding curve:
//
//	cost = floor( ((regenRate*coeffA >> shift) + 1) * usage / (coeffB + max(pool, 0)) ) + 1
//
// The trailing +1 keeps every positive usage strictly positive-priced, rounding
// in favor of the network. Negative usage is priced with symmetric sign so that
// refunds mirror charges. All arithmetic is wide: coefficients and pools exceed
// the 64-bit range. The function never mutates its inputs
func ComputeResourceCost(curveParams *PriceCurveParams, currentPool *big.Int, usage *big.Int, regenRate *big.Int) (*big.Int, error) {
	if curveParams == nil || curveParams.CoeffA == nil || curveParams.CoeffB == nil {
		return nil, ErrNilPriceCurveParams
	}
	if regenRate == nil {
		return nil, ErrNilRegenRate
	}
	if usage == nil || usage.Sign() == 0 {
		return big.NewInt(0), nil
	}

	if usage.Sign() < 0 {
		cost, err := ComputeResourceCost(curveParams, currentPool, big.NewInt(0).Neg(usage), regenRate)
		if err != nil {
			return nil, err
		}

		return cost.Neg(cost), nil
	}

	num := big.NewInt(0).Set(regenRate)
	num.Mul(num, curveParams.CoeffA)
	num.Rsh(num, uint(curveParams.Shift))
	num.Add(num, big.NewInt(1))
	num.Mul(num, usage)

	denom := big.NewInt(0).Set(curveParams.CoeffB)
	if currentPool != nil && currentPool.Sign() > 0 {
		denom.Add(denom, currentPool)
	}
	if denom.Sign() <= 0 {
		return nil, ErrDegeneratePriceCurve
	}

	cost := num.Quo(num, denom)

	return cost.Add(cost, big.NewInt(1)), nil
}
