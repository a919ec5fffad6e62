package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steemit/rc-engine-go/data/operation"
)

func TestUnmarshalOperation_Vote(t *testing.T) {
	t.Parallel()

	data := `{
		"type": "vote_operation",
		"value": {
			"voter": "alice",
			"author": "bob",
			"permlink": "a-post",
			"weight": 10000
		}
	}`

	op, err := operation.UnmarshalOperation([]byte(data))
	require.Nil(t, err)

	vote, ok := op.(*operation.Vote)
	require.True(t, ok)
	assert.Equal(t, "alice", vote.Voter)
	assert.Equal(t, "bob", vote.Author)
	assert.Equal(t, "a-post", vote.Permlink)
	assert.Equal(t, int16(10000), vote.Weight)
}

func TestUnmarshalOperation_TransferWithAsset(t *testing.T) {
	t.Parallel()

	data := `{
		"type": "transfer_operation",
		"value": {
			"from": "alice",
			"to": "bob",
			"amount": {"amount": "50000111", "precision": 3, "nai": "@@000000013"},
			"memo": "rent"
		}
	}`

	op, err := operation.UnmarshalOperation([]byte(data))
	require.Nil(t, err)

	transfer, ok := op.(*operation.Transfer)
	require.True(t, ok)
	assert.Equal(t, "50000111", transfer.Amount.Amount)
	assert.Equal(t, uint8(3), transfer.Amount.Precision)
	assert.Equal(t, "@@000000013", transfer.Amount.Nai)

	amount, err := transfer.Amount.AmountBig()
	require.Nil(t, err)
	assert.Equal(t, int64(50000111), amount.Int64())
}

func TestUnmarshalOperation_AccountCreateAuthorityPairs(t *testing.T) {
	t.Parallel()

	data := `{
		"type": "account_create_operation",
		"value": {
			"fee": {"amount": "3000", "precision": 3, "nai": "@@000000021"},
			"creator": "alice",
			"new_account_name": "carol",
			"owner": {
				"weight_threshold": 1,
				"account_auths": [["alice", 1]],
				"key_auths": [["STM7abc", 1], ["STM8def", 2]]
			},
			"active": {"weight_threshold": 1, "account_auths": [], "key_auths": []},
			"posting": {"weight_threshold": 1, "account_auths": [], "key_auths": []},
			"memo_key": "STM9ghi",
			"json_metadata": ""
		}
	}`

	op, err := operation.UnmarshalOperation([]byte(data))
	require.Nil(t, err)

	accountCreate, ok := op.(*operation.AccountCreate)
	require.True(t, ok)
	require.Len(t, accountCreate.Owner.AccountAuths, 1)
	assert.Equal(t, "alice", accountCreate.Owner.AccountAuths[0].Account)
	assert.Equal(t, uint16(1), accountCreate.Owner.AccountAuths[0].Weight)
	require.Len(t, accountCreate.Owner.KeyAuths, 2)
	assert.Equal(t, "STM8def", accountCreate.Owner.KeyAuths[1].Key)
	assert.Equal(t, uint16(2), accountCreate.Owner.KeyAuths[1].Weight)
}

func TestUnmarshalOperation_MalformedAuthorityPairShouldErr(t *testing.T) {
	t.Parallel()

	data := `{
		"type": "account_create_operation",
		"value": {
			"owner": {"weight_threshold": 1, "account_auths": [["alice"]], "key_auths": []}
		}
	}`

	op, err := operation.UnmarshalOperation([]byte(data))
	assert.Nil(t, op)
	assert.ErrorIs(t, err, operation.ErrMalformedOperation)
}

func TestUnmarshalOperation_CommentOptionsWithBeneficiaries(t *testing.T) {
	t.Parallel()

	data := `{
		"type": "comment_options_operation",
		"value": {
			"author": "alice",
			"permlink": "a-post",
			"max_accepted_payout": {"amount": "1000000000", "precision": 3, "nai": "@@000000013"},
			"percent_steem_dollars": 10000,
			"allow_votes": true,
			"allow_curation_rewards": true,
			"extensions": [
				{
					"type": "comment_payout_beneficiaries",
					"value": {"beneficiaries": [{"account": "bob", "weight": 500}]}
				}
			]
		}
	}`

	op, err := operation.UnmarshalOperation([]byte(data))
	require.Nil(t, err)

	commentOptions, ok := op.(*operation.CommentOptions)
	require.True(t, ok)
	require.Len(t, commentOptions.Extensions, 1)

	beneficiaries, ok := commentOptions.Extensions[0].(*operation.CommentPayoutBeneficiaries)
	require.True(t, ok)
	require.Len(t, beneficiaries.Beneficiaries, 1)
	assert.Equal(t, "bob", beneficiaries.Beneficiaries[0].Account)
	assert.Equal(t, uint16(500), beneficiaries.Beneficiaries[0].Weight)
}

func TestUnmarshalOperation_UnknownExtensionShouldErr(t *testing.T) {
	t.Parallel()

	data := `{
		"type": "comment_options_operation",
		"value": {
			"author": "alice",
			"permlink": "a-post",
			"extensions": [{"type": "mystery_extension", "value": {}}]
		}
	}`

	op, err := operation.UnmarshalOperation([]byte(data))
	assert.Nil(t, op)

	// the inner classification survives the outer malformed-value wrap
	assert.ErrorIs(t, err, operation.ErrUnknownExtension)
	assert.ErrorIs(t, err, operation.ErrMalformedOperation)
	assert.Contains(t, err.Error(), "mystery_extension")
}

func TestUnmarshalOperation_VirtualOperation(t *testing.T) {
	t.Parallel()

	data := `{"type": "producer_reward_operation", "value": {}}`

	op, err := operation.UnmarshalOperation([]byte(data))
	require.Nil(t, err)
	assert.IsType(t, &operation.ProducerReward{}, op)
}

func TestUnmarshalOperation_UnknownTagShouldErr(t *testing.T) {
	t.Parallel()

	data := `{"type": "teleport_operation", "value": {}}`

	op, err := operation.UnmarshalOperation([]byte(data))
	assert.Nil(t, op)
	assert.ErrorIs(t, err, operation.ErrUnknownOperation)
	assert.Contains(t, err.Error(), "teleport_operation")
}

func TestUnmarshalOperation_MissingTagShouldErr(t *testing.T) {
	t.Parallel()

	data := `{"value": {"voter": "alice"}}`

	op, err := operation.UnmarshalOperation([]byte(data))
	assert.Nil(t, op)
	assert.ErrorIs(t, err, operation.ErrMalformedOperation)
}

func TestUnmarshalOperation_MalformedValueShouldErr(t *testing.T) {
	t.Parallel()

	data := `{"type": "vote_operation", "value": {"weight": "not a number"}}`

	op, err := operation.UnmarshalOperation([]byte(data))
	assert.Nil(t, op)
	assert.ErrorIs(t, err, operation.ErrMalformedOperation)
}

func TestUnmarshalOperation_InvalidJSONShouldErr(t *testing.T) {
	t.Parallel()

	op, err := operation.UnmarshalOperation([]byte(`{"type": `))
	assert.Nil(t, op)
	assert.ErrorIs(t, err, operation.ErrMalformedOperation)
}

func TestIsKnownOperationName(t *testing.T) {
	t.Parallel()

	assert.True(t, operation.IsKnownOperationName("vote_operation"))
	assert.True(t, operation.IsKnownOperationName("smt_setup_operation"))
	assert.False(t, operation.IsKnownOperationName("teleport_operation"))
}

func TestKnownOperationNames_RoundTrip(t *testing.T) {
	t.Parallel()

	names := operation.KnownOperationNames()
	assert.NotEmpty(t, names)

	for _, name := range names {
		op, err := operation.UnmarshalOperation([]byte(`{"type": "` + name + `"}`))
		require.Nil(t, err, name)
		assert.Equal(t, name, op.OperationName())
	}
}
