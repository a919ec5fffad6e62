package resourcecost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steemit/rc-engine-go/data/operation"
	"github.com/steemit/rc-engine-go/data/transaction"
	"github.com/steemit/rc-engine-go/process/resourcecost"
)

func createDummyParams(t *testing.T) *resourcecost.ResourceParams {
	params, err := resourcecost.NewResourceParams(createDummyResourcesConfig())
	require.Nil(t, err)

	return params
}

func createSingleOpTx(op operation.Operation) *transaction.Transaction {
	return &transaction.Transaction{
		RefBlockNum:    100,
		RefBlockPrefix: 200,
		Expiration:     "2018-09-28T01:02:03",
		Operations:     []operation.Operation{op},
	}
}

// state bytes charged for the transaction object itself, before any operation
func transactionOverhead(serializedSize int64) int64 {
	return 6090 + 174*serializedSize
}

func TestComputeTransactionUsage_NilTransactionShouldErr(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)

	_, err := params.ComputeTransactionUsage(nil, 100)
	assert.Equal(t, resourcecost.ErrNilTransaction, err)
}

func TestComputeTransactionUsage_NonPositiveSizeShouldErr(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.Vote{})

	_, err := params.ComputeTransactionUsage(tx, 0)
	assert.Equal(t, resourcecost.ErrInvalidSerializedSize, err)

	_, err = params.ComputeTransactionUsage(tx, -5)
	assert.Equal(t, resourcecost.ErrInvalidSerializedSize, err)
}

func TestComputeTransactionUsage_Vote(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.Vote{
		Voter:    "alice",
		Author:   "bob",
		Permlink: "a-post",
		Weight:   10000,
	})

	usage, err := params.ComputeTransactionUsage(tx, 133)
	require.Nil(t, err)

	assert.Equal(t, int64(133), usage[resourcecost.ResourceHistoryBytes])
	assert.Equal(t, int64(0), usage[resourcecost.ResourceNewAccounts])
	assert.Equal(t, int64(0), usage[resourcecost.ResourceMarketBytes])
	assert.Equal(t, transactionOverhead(133)+470000, usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(26500), usage[resourcecost.ResourceExecutionTime])
}

func TestComputeTransactionUsage_CommentChargesPermlinkBytes(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	// "caffè-review" is 12 characters but 13 bytes: sizes count encoded bytes
	tx := createSingleOpTx(&operation.Comment{
		ParentAuthor:   "",
		ParentPermlink: "food",
		Author:         "alice",
		Permlink:       "caffè-review",
		Title:          "title",
		Body:           "body",
	})

	usage, err := params.ComputeTransactionUsage(tx, 300)
	require.Nil(t, err)

	expectedState := transactionOverhead(300) + 2010000 + 10000*13 + 20000*4
	assert.Equal(t, expectedState, usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(114100), usage[resourcecost.ResourceExecutionTime])
}

func TestComputeTransactionUsage_TransferIsAMarketOperation(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.Transfer{
		From:   "alice",
		To:     "bob",
		Amount: operation.Asset{Amount: "1000", Precision: 3, Nai: "@@000000021"},
	})

	usage, err := params.ComputeTransactionUsage(tx, 282)
	require.Nil(t, err)

	assert.Equal(t, int64(282), usage[resourcecost.ResourceMarketBytes])
	assert.Equal(t, transactionOverhead(282), usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(9600), usage[resourcecost.ResourceExecutionTime])
}

func TestComputeTransactionUsage_TransferToVestingIsAMarketOperation(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.TransferToVesting{From: "alice", To: "alice"})

	usage, err := params.ComputeTransactionUsage(tx, 150)
	require.Nil(t, err)

	assert.Equal(t, int64(150), usage[resourcecost.ResourceMarketBytes])
	assert.Equal(t, int64(44400), usage[resourcecost.ResourceExecutionTime])
}

func TestComputeTransactionUsage_AccountCreateChargesAuthorities(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.AccountCreate{
		Creator:        "alice",
		NewAccountName: "carol",
		Owner: operation.Authority{
			WeightThreshold: 1,
			AccountAuths:    []operation.AccountAuth{{Account: "alice", Weight: 1}},
			KeyAuths:        []operation.KeyAuth{{Key: "STM1...", Weight: 1}, {Key: "STM2...", Weight: 1}},
		},
		Active: operation.Authority{
			WeightThreshold: 1,
			KeyAuths:        []operation.KeyAuth{{Key: "STM3...", Weight: 1}},
		},
		Posting: operation.Authority{WeightThreshold: 1},
	})

	usage, err := params.ComputeTransactionUsage(tx, 400)
	require.Nil(t, err)

	ownerBytes := int64(40000 + 180000*1 + 350000*2)
	activeBytes := int64(40000 + 350000*1)
	postingBytes := int64(40000)
	expectedState := transactionOverhead(400) +
		4800000 + 400000 + ownerBytes + activeBytes + postingBytes
	assert.Equal(t, expectedState, usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(57700), usage[resourcecost.ResourceExecutionTime])
	assert.Equal(t, int64(0), usage[resourcecost.ResourceNewAccounts])
}

func TestComputeTransactionUsage_AccountCreateWithDelegationAddsDelegationObject(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)

	plain, err := params.ComputeTransactionUsage(createSingleOpTx(&operation.AccountCreate{}), 400)
	require.Nil(t, err)

	delegated, err := params.ComputeTransactionUsage(createSingleOpTx(&operation.AccountCreateWithDelegation{}), 400)
	require.Nil(t, err)

	stateDiff := delegated[resourcecost.ResourceStateBytes] - plain[resourcecost.ResourceStateBytes]
	assert.Equal(t, int64(600000), stateDiff)
}

func TestComputeTransactionUsage_ClaimAccountSubsidizedOnlyWhenFeeIsZero(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)

	subsidized := createSingleOpTx(&operation.ClaimAccount{
		Creator: "alice",
		Fee:     operation.Asset{Amount: "0", Precision: 3, Nai: "@@000000021"},
	})
	usage, err := params.ComputeTransactionUsage(subsidized, 120)
	require.Nil(t, err)
	assert.Equal(t, int64(1), usage[resourcecost.ResourceNewAccounts])
	assert.Equal(t, int64(10000), usage[resourcecost.ResourceExecutionTime])

	paid := createSingleOpTx(&operation.ClaimAccount{
		Creator: "alice",
		Fee:     operation.Asset{Amount: "3000", Precision: 3, Nai: "@@000000021"},
	})
	usage, err = params.ComputeTransactionUsage(paid, 120)
	require.Nil(t, err)
	assert.Equal(t, int64(0), usage[resourcecost.ResourceNewAccounts])
}

func TestComputeTransactionUsage_ClaimAccountMalformedFeeShouldErr(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.ClaimAccount{
		Creator: "alice",
		Fee:     operation.Asset{Amount: "not a number"},
	})

	_, err := params.ComputeTransactionUsage(tx, 120)
	assert.ErrorIs(t, err, operation.ErrMalformedOperation)
}

func TestComputeTransactionUsage_FillOrKillOrdersCreateNoState(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)

	resting := createSingleOpTx(&operation.LimitOrderCreate{Owner: "alice", OrderID: 1})
	usage, err := params.ComputeTransactionUsage(resting, 200)
	require.Nil(t, err)
	assert.Equal(t, transactionOverhead(200)+147440, usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(200), usage[resourcecost.ResourceMarketBytes])

	fillOrKill := createSingleOpTx(&operation.LimitOrderCreate{Owner: "alice", OrderID: 2, FillOrKill: true})
	usage, err = params.ComputeTransactionUsage(fillOrKill, 200)
	require.Nil(t, err)
	assert.Equal(t, transactionOverhead(200), usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(200), usage[resourcecost.ResourceMarketBytes])
}

func TestComputeTransactionUsage_DelegateVestingSharesChargesLargerObject(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.DelegateVestingShares{Delegator: "alice", Delegatee: "bob"})

	usage, err := params.ComputeTransactionUsage(tx, 160)
	require.Nil(t, err)

	// delegation object 600000 vs expiration object 440000, the larger one is charged
	assert.Equal(t, transactionOverhead(160)+600000, usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(19900), usage[resourcecost.ResourceExecutionTime])
}

func TestComputeTransactionUsage_TransferFromSavings(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.TransferFromSavings{From: "alice", To: "bob", RequestID: 7})

	usage, err := params.ComputeTransactionUsage(tx, 180)
	require.Nil(t, err)

	assert.Equal(t, transactionOverhead(180)+14656, usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(17500), usage[resourcecost.ResourceExecutionTime])
	assert.Equal(t, int64(0), usage[resourcecost.ResourceMarketBytes])
}

func TestComputeTransactionUsage_WitnessUpdateChargesURLBytes(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.WitnessUpdate{
		Owner: "alice",
		URL:   "https://example.com/witness",
	})

	usage, err := params.ComputeTransactionUsage(tx, 250)
	require.Nil(t, err)

	expectedState := transactionOverhead(250) + 2660000 + 10000*int64(len("https://example.com/witness"))
	assert.Equal(t, expectedState, usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(9500), usage[resourcecost.ResourceExecutionTime])
}

func TestComputeTransactionUsage_CommentOptionsBeneficiaries(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.CommentOptions{
		Author:   "alice",
		Permlink: "a-post",
		Extensions: []operation.CommentOptionsExtension{
			&operation.CommentPayoutBeneficiaries{
				Beneficiaries: []operation.Beneficiary{
					{Account: "bob", Weight: 500},
					{Account: "carol", Weight: 500},
				},
			},
		},
	})

	usage, err := params.ComputeTransactionUsage(tx, 220)
	require.Nil(t, err)

	assert.Equal(t, transactionOverhead(220)+180000*2, usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(13200), usage[resourcecost.ResourceExecutionTime])
}

func TestComputeTransactionUsage_FeedPublishChargesOnlyExecution(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&operation.FeedPublish{Publisher: "alice"})

	usage, err := params.ComputeTransactionUsage(tx, 140)
	require.Nil(t, err)

	assert.Equal(t, transactionOverhead(140), usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(6200), usage[resourcecost.ResourceExecutionTime])
}

func TestComputeTransactionUsage_VirtualOperationsAreFree(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	freeOps := []operation.Operation{
		&operation.ProducerReward{},
		&operation.AuthorReward{},
		&operation.FillOrder{},
		&operation.Hardfork{},
		&operation.Pow{},
		&operation.ResetAccount{},
	}

	for _, op := range freeOps {
		usage, err := params.ComputeTransactionUsage(createSingleOpTx(op), 100)
		require.Nil(t, err, op.OperationName())

		assert.Equal(t, transactionOverhead(100), usage[resourcecost.ResourceStateBytes], op.OperationName())
		assert.Equal(t, int64(0), usage[resourcecost.ResourceExecutionTime], op.OperationName())
		assert.Equal(t, int64(0), usage[resourcecost.ResourceMarketBytes], op.OperationName())
		assert.Equal(t, int64(0), usage[resourcecost.ResourceNewAccounts], op.OperationName())
	}
}

func TestComputeTransactionUsage_UnknownOperationShouldErr(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := createSingleOpTx(&bogusOperation{})

	_, err := params.ComputeTransactionUsage(tx, 100)
	assert.ErrorIs(t, err, operation.ErrUnknownOperation)
	assert.Contains(t, err.Error(), "bogus_operation")
}

func TestComputeTransactionUsage_CoversEveryDecodableOperation(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)

	// every tag the decoder accepts must have an accounting rule
	for _, name := range operation.KnownOperationNames() {
		value := `{}`
		if name == "claim_account_operation" {
			value = `{"fee": {"amount": "0", "precision": 3, "nai": "@@000000021"}}`
		}

		op, err := operation.UnmarshalOperation([]byte(`{"type": "` + name + `", "value": ` + value + `}`))
		require.Nil(t, err, name)

		_, err = params.ComputeTransactionUsage(createSingleOpTx(op), 100)
		require.Nil(t, err, name)
	}
}

func TestComputeTransactionUsage_MultipleOperationsAccumulate(t *testing.T) {
	t.Parallel()

	params := createDummyParams(t)
	tx := &transaction.Transaction{
		Expiration: "2018-09-28T01:02:03",
		Operations: []operation.Operation{
			&operation.Vote{Voter: "alice", Author: "bob", Permlink: "a-post"},
			&operation.Transfer{From: "alice", To: "bob"},
			&operation.Vote{Voter: "alice", Author: "carol", Permlink: "another"},
		},
	}

	usage, err := params.ComputeTransactionUsage(tx, 500)
	require.Nil(t, err)

	assert.Equal(t, int64(500), usage[resourcecost.ResourceHistoryBytes])
	assert.Equal(t, int64(500), usage[resourcecost.ResourceMarketBytes])
	assert.Equal(t, transactionOverhead(500)+2*470000, usage[resourcecost.ResourceStateBytes])
	assert.Equal(t, int64(2*26500+9600), usage[resourcecost.ResourceExecutionTime])
}
