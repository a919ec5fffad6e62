package resourcecost

import (
	"github.com/steemit/rc-engine-go/data/transaction"
)

// ComputeTransactionUsage drives the usage counter over every operation of the
// transaction, in order and exactly once, and folds in the usage derived from
// the externally measured serialized byte length. The aggregator never
// serializes: serializedSize must be obtained from the host serializer
func (params *ResourceParams) ComputeTransactionUsage(tx *transaction.Transaction, serializedSize int64) (UsageVector, error) {
	usage := UsageVector{}

	if tx == nil {
		return usage, ErrNilTransaction
	}
	if serializedSize <= 0 {
		return usage, ErrInvalidSerializedSize
	}

	counter := newOperationUsageCounter(&params.sizes, &params.execTimes)
	for _, op := range tx.Operations {
		err := counter.countOperation(op)
		if err != nil {
			return UsageVector{}, err
		}
	}

	usage[ResourceHistoryBytes] = serializedSize
	usage[ResourceNewAccounts] = counter.newAccountOps
	if counter.marketOps > 0 {
		usage[ResourceMarketBytes] = serializedSize
	}
	usage[ResourceStateBytes] = params.sizes.transactionBase +
		params.sizes.transactionByte*serializedSize +
		counter.stateBytes
	usage[ResourceExecutionTime] = counter.executionTime

	return usage, nil
}
