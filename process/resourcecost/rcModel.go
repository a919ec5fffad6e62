package resourcecost

import (
	"math/big"
	"sync"

	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/steemit/rc-engine-go/config"
	"github.com/steemit/rc-engine-go/data/transaction"
)

var log = logger.GetOrCreate("process/resourcecost")

// blockTimeUnits is the dynamics time step: pools advance one block at a time
const blockTimeUnits = uint32(1)

// TransactionCost is the priced outcome of one cost query: the raw usage
// vector and the per-resource credit costs. The total cost is the sum of the
// cost vector
type TransactionCost struct {
	Usage UsageVector `json:"usage"`
	Cost  CostVector  `json:"cost"`
}

// ResourceDynamics describes one resource's pool transition over one block
type ResourceDynamics struct {
	Dt         uint32
	Budget     *big.Int
	Usage      *big.Int
	Decay      *big.Int
	Adjustment *big.Int // reserved extension slot, always zero
	Pool       *big.Int
	NewPool    *big.Int
}

// BlockDynamics holds the pool transitions of all resources for one block,
// indexed by ResourceType
type BlockDynamics [NumResourceTypes]ResourceDynamics

// ArgsResourceCreditModel gathers the inputs needed to create a resource credit model
type ArgsResourceCreditModel struct {
	ResourcesConfig *config.ResourcesConfig
	Pool            PoolState
	RegenRate       *big.Int
}

// resourceCreditModel composes the usage aggregation with the pricing curve
// and the pool dynamics. Cost queries are safe to run concurrently; pool state
// only changes in ApplyPoolDynamics, which the caller must invoke exactly once
// per block, in block order
type resourceCreditModel struct {
	params    *ResourceParams
	regenRate *big.Int

	mutPool sync.RWMutex
	pool    PoolState
}

// NewResourceCreditModel creates a resource credit model from the parsed
// configuration, an initial pool snapshot and the credit regeneration rate
func NewResourceCreditModel(args ArgsResourceCreditModel) (*resourceCreditModel, error) {
	params, err := NewResourceParams(args.ResourcesConfig)
	if err != nil {
		return nil, err
	}

	if args.RegenRate == nil {
		return nil, ErrNilRegenRate
	}
	if args.RegenRate.Sign() < 0 {
		return nil, ErrNegativeRegenRate
	}

	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		if args.Pool[rt] == nil {
			return nil, ErrNilResourcePool
		}
		if args.Pool[rt].Sign() < 0 {
			return nil, ErrNegativeResourcePool
		}
	}

	return &resourceCreditModel{
		params:    params,
		regenRate: big.NewInt(0).Set(args.RegenRate),
		pool:      args.Pool.Clone(),
	}, nil
}

// GetTransactionCost aggregates the transaction's resource usage and prices
// each resource against the current pool snapshot. The snapshot is never
// mutated: transactions inside a block are all priced against the pool as it
// stood before the block
func (model *resourceCreditModel) GetTransactionCost(tx *transaction.Transaction, serializedSize int64) (*TransactionCost, error) {
	usage, err := model.params.ComputeTransactionUsage(tx, serializedSize)
	if err != nil {
		return nil, err
	}

	billable := billableUsage(usage)

	model.mutPool.RLock()
	pool := model.pool.Clone()
	model.mutPool.RUnlock()

	cost := CostVector{}
	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		scaledUsage := big.NewInt(billable[rt])
		scaledUsage.Mul(scaledUsage, big.NewInt(model.params.ResourceUnit(rt)))

		cost[rt], err = ComputeResourceCost(model.params.CurveParams(rt), pool[rt], scaledUsage, model.regenRate)
		if err != nil {
			return nil, err
		}
	}

	result := &TransactionCost{
		Usage: usage,
		Cost:  cost,
	}

	log.Trace("computed transaction cost",
		"serialized size", serializedSize,
		"total cost", result.Cost.Total().String(),
	)

	return result, nil
}

// ApplyPoolDynamics advances the pool state across one block boundary: usage is
// charged, decay is applied to the post-usage balance and the budget is
// credited. This is the only pool mutation point; the new snapshot is installed
// atomically so that no cost query can observe a partially updated pool
func (model *resourceCreditModel) ApplyPoolDynamics(usage UsageVector) (*BlockDynamics, error) {
	billable := billableUsage(usage)

	model.mutPool.Lock()
	defer model.mutPool.Unlock()

	dynamics := &BlockDynamics{}
	newPool := PoolState{}
	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		pool := model.pool[rt]

		budget := big.NewInt(0).Set(model.params.BudgetPerTimeUnit(rt))
		budget.Mul(budget, big.NewInt(0).SetUint64(uint64(blockTimeUnits)))

		scaledUsage := big.NewInt(billable[rt])
		scaledUsage.Mul(scaledUsage, big.NewInt(model.params.ResourceUnit(rt)))

		decay := ComputePoolDecay(model.params.Decay(rt), big.NewInt(0).Sub(pool, scaledUsage), blockTimeUnits)

		newPool[rt] = big.NewInt(0).Set(pool)
		newPool[rt].Sub(newPool[rt], decay)
		newPool[rt].Add(newPool[rt], budget)
		newPool[rt].Sub(newPool[rt], scaledUsage)

		dynamics[rt] = ResourceDynamics{
			Dt:         blockTimeUnits,
			Budget:     budget,
			Usage:      scaledUsage,
			Decay:      decay,
			Adjustment: big.NewInt(0),
			Pool:       big.NewInt(0).Set(pool),
			NewPool:    big.NewInt(0).Set(newPool[rt]),
		}
	}

	model.pool = newPool

	log.Debug("applied rc pool dynamics",
		"new history pool", newPool[ResourceHistoryBytes].String(),
		"new state pool", newPool[ResourceStateBytes].String(),
	)

	return dynamics, nil
}

// Pool returns a deep copy of the current pool snapshot, for persistence by the caller
func (model *resourceCreditModel) Pool() PoolState {
	model.mutPool.RLock()
	defer model.mutPool.RUnlock()

	return model.pool.Clone()
}

// RegenRate returns the configured credit regeneration rate
func (model *resourceCreditModel) RegenRate() *big.Int {
	return big.NewInt(0).Set(model.regenRate)
}

// IsInterfaceNil returns true if there is no value under the interface
func (model *resourceCreditModel) IsInterfaceNil() bool {
	return model == nil
}

// billableUsage strips the dimensions that carry no credit weight. Execution
// time is accumulated and reported but not yet priced or charged to the pool
func billableUsage(usage UsageVector) UsageVector {
	usage[ResourceExecutionTime] = 0
	return usage
}
