package resourcecost

import (
	"math/big"

	"github.com/steemit/rc-engine-go/data/transaction"
)

// TransactionCostHandler computes resource credit costs for transactions and
// advances the pool state across block boundaries
type TransactionCostHandler interface {
	GetTransactionCost(tx *transaction.Transaction, serializedSize int64) (*TransactionCost, error)
	ApplyPoolDynamics(usage UsageVector) (*BlockDynamics, error)
	Pool() PoolState
	RegenRate() *big.Int
	IsInterfaceNil() bool
}
