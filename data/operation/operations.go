package operation

import (
	"encoding/json"
)

// AccountCreate registers a new account paid for by the creator
type AccountCreate struct {
	Fee            Asset     `json:"fee"`
	Creator        string    `json:"creator"`
	NewAccountName string    `json:"new_account_name"`
	Owner          Authority `json:"owner"`
	Active         Authority `json:"active"`
	Posting        Authority `json:"posting"`
	MemoKey        string    `json:"memo_key"`
	JSONMetadata   string    `json:"json_metadata"`
}

// OperationName returns the wire tag of the operation
func (*AccountCreate) OperationName() string { return "account_create_operation" }

// AccountCreateWithDelegation registers a new account backed by a vesting delegation
type AccountCreateWithDelegation struct {
	Fee            Asset             `json:"fee"`
	Delegation     Asset             `json:"delegation"`
	Creator        string            `json:"creator"`
	NewAccountName string            `json:"new_account_name"`
	Owner          Authority         `json:"owner"`
	Active         Authority         `json:"active"`
	Posting        Authority         `json:"posting"`
	MemoKey        string            `json:"memo_key"`
	JSONMetadata   string            `json:"json_metadata"`
	Extensions     []json.RawMessage `json:"extensions"`
}

// OperationName returns the wire tag of the operation
func (*AccountCreateWithDelegation) OperationName() string {
	return "account_create_with_delegation_operation"
}

// CreateClaimedAccount registers a new account against a previously claimed slot
type CreateClaimedAccount struct {
	Creator        string            `json:"creator"`
	NewAccountName string            `json:"new_account_name"`
	Owner          Authority         `json:"owner"`
	Active         Authority         `json:"active"`
	Posting        Authority         `json:"posting"`
	MemoKey        string            `json:"memo_key"`
	JSONMetadata   string            `json:"json_metadata"`
	Extensions     []json.RawMessage `json:"extensions"`
}

// OperationName returns the wire tag of the operation
func (*CreateClaimedAccount) OperationName() string { return "create_claimed_account_operation" }

// ClaimAccount claims an account creation slot, optionally paying a fee.
// A zero declared fee consumes a subsidized slot
type ClaimAccount struct {
	Creator    string            `json:"creator"`
	Fee        Asset             `json:"fee"`
	Extensions []json.RawMessage `json:"extensions"`
}

// OperationName returns the wire tag of the operation
func (*ClaimAccount) OperationName() string { return "claim_account_operation" }

// AccountUpdate replaces account authorities and metadata
type AccountUpdate struct {
	Account      string     `json:"account"`
	Owner        *Authority `json:"owner,omitempty"`
	Active       *Authority `json:"active,omitempty"`
	Posting      *Authority `json:"posting,omitempty"`
	MemoKey      string     `json:"memo_key"`
	JSONMetadata string     `json:"json_metadata"`
}

// OperationName returns the wire tag of the operation
func (*AccountUpdate) OperationName() string { return "account_update_operation" }

// Vote casts a weighted vote on a comment
type Vote struct {
	Voter    string `json:"voter"`
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
	Weight   int16  `json:"weight"`
}

// OperationName returns the wire tag of the operation
func (*Vote) OperationName() string { return "vote_operation" }

// Comment creates or edits a post or reply
type Comment struct {
	ParentAuthor   string `json:"parent_author"`
	ParentPermlink string `json:"parent_permlink"`
	Author         string `json:"author"`
	Permlink       string `json:"permlink"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	JSONMetadata   string `json:"json_metadata"`
}

// OperationName returns the wire tag of the operation
func (*Comment) OperationName() string { return "comment_operation" }

// CommentOptions changes payout parameters of an existing comment
type CommentOptions struct {
	Author               string                    `json:"author"`
	Permlink             string                    `json:"permlink"`
	MaxAcceptedPayout    Asset                     `json:"max_accepted_payout"`
	PercentSteemDollars  uint16                    `json:"percent_steem_dollars"`
	AllowVotes           bool                      `json:"allow_votes"`
	AllowCurationRewards bool                      `json:"allow_curation_rewards"`
	Extensions           []CommentOptionsExtension `json:"extensions"`
}

// OperationName returns the wire tag of the operation
func (*CommentOptions) OperationName() string { return "comment_options_operation" }

// UnmarshalJSON decodes the operation, resolving the tagged extension envelopes
func (op *CommentOptions) UnmarshalJSON(data []byte) error {
	type commentOptionsAlias struct {
		Author               string            `json:"author"`
		Permlink             string            `json:"permlink"`
		MaxAcceptedPayout    Asset             `json:"max_accepted_payout"`
		PercentSteemDollars  uint16            `json:"percent_steem_dollars"`
		AllowVotes           bool              `json:"allow_votes"`
		AllowCurationRewards bool              `json:"allow_curation_rewards"`
		Extensions           []json.RawMessage `json:"extensions"`
	}

	alias := &commentOptionsAlias{}
	err := json.Unmarshal(data, alias)
	if err != nil {
		return err
	}

	op.Author = alias.Author
	op.Permlink = alias.Permlink
	op.MaxAcceptedPayout = alias.MaxAcceptedPayout
	op.PercentSteemDollars = alias.PercentSteemDollars
	op.AllowVotes = alias.AllowVotes
	op.AllowCurationRewards = alias.AllowCurationRewards

	op.Extensions = make([]CommentOptionsExtension, 0, len(alias.Extensions))
	for _, rawExtension := range alias.Extensions {
		extension, errDecode := UnmarshalCommentOptionsExtension(rawExtension)
		if errDecode != nil {
			return errDecode
		}

		op.Extensions = append(op.Extensions, extension)
	}

	return nil
}

// DeleteComment removes a comment that has no replies or votes
type DeleteComment struct {
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
}

// OperationName returns the wire tag of the operation
func (*DeleteComment) OperationName() string { return "delete_comment_operation" }

// Transfer moves liquid funds between accounts
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Asset  `json:"amount"`
	Memo   string `json:"memo"`
}

// OperationName returns the wire tag of the operation
func (*Transfer) OperationName() string { return "transfer_operation" }

// TransferToVesting converts liquid funds into vesting shares
type TransferToVesting struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Asset  `json:"amount"`
}

// OperationName returns the wire tag of the operation
func (*TransferToVesting) OperationName() string { return "transfer_to_vesting_operation" }

// TransferToSavings moves liquid funds into the savings balance
type TransferToSavings struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Asset  `json:"amount"`
	Memo   string `json:"memo"`
}

// OperationName returns the wire tag of the operation
func (*TransferToSavings) OperationName() string { return "transfer_to_savings_operation" }

// TransferFromSavings schedules a delayed withdrawal from the savings balance
type TransferFromSavings struct {
	From      string `json:"from"`
	RequestID uint32 `json:"request_id"`
	To        string `json:"to"`
	Amount    Asset  `json:"amount"`
	Memo      string `json:"memo"`
}

// OperationName returns the wire tag of the operation
func (*TransferFromSavings) OperationName() string { return "transfer_from_savings_operation" }

// CancelTransferFromSavings cancels a pending savings withdrawal
type CancelTransferFromSavings struct {
	From      string `json:"from"`
	RequestID uint32 `json:"request_id"`
}

// OperationName returns the wire tag of the operation
func (*CancelTransferFromSavings) OperationName() string {
	return "cancel_transfer_from_savings_operation"
}

// WithdrawVesting starts powering down vesting shares
type WithdrawVesting struct {
	Account       string `json:"account"`
	VestingShares Asset  `json:"vesting_shares"`
}

// OperationName returns the wire tag of the operation
func (*WithdrawVesting) OperationName() string { return "withdraw_vesting_operation" }

// SetWithdrawVestingRoute routes a fraction of a power down to another account
type SetWithdrawVestingRoute struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Percent     uint16 `json:"percent"`
	AutoVest    bool   `json:"auto_vest"`
}

// OperationName returns the wire tag of the operation
func (*SetWithdrawVestingRoute) OperationName() string { return "set_withdraw_vesting_route_operation" }

// DelegateVestingShares delegates vesting shares to another account
type DelegateVestingShares struct {
	Delegator     string `json:"delegator"`
	Delegatee     string `json:"delegatee"`
	VestingShares Asset  `json:"vesting_shares"`
}

// OperationName returns the wire tag of the operation
func (*DelegateVestingShares) OperationName() string { return "delegate_vesting_shares_operation" }

// WitnessUpdate registers or updates a block producer
type WitnessUpdate struct {
	Owner           string          `json:"owner"`
	URL             string          `json:"url"`
	BlockSigningKey string          `json:"block_signing_key"`
	Props           ChainProperties `json:"props"`
	Fee             Asset           `json:"fee"`
}

// OperationName returns the wire tag of the operation
func (*WitnessUpdate) OperationName() string { return "witness_update_operation" }

// WitnessSetProperties updates witness-published chain properties
type WitnessSetProperties struct {
	Owner      string            `json:"owner"`
	Props      json.RawMessage   `json:"props"`
	Extensions []json.RawMessage `json:"extensions"`
}

// OperationName returns the wire tag of the operation
func (*WitnessSetProperties) OperationName() string { return "witness_set_properties_operation" }

// AccountWitnessVote approves or disapproves a witness
type AccountWitnessVote struct {
	Account string `json:"account"`
	Witness string `json:"witness"`
	Approve bool   `json:"approve"`
}

// OperationName returns the wire tag of the operation
func (*AccountWitnessVote) OperationName() string { return "account_witness_vote_operation" }

// AccountWitnessProxy delegates witness voting to a proxy account
type AccountWitnessProxy struct {
	Account string `json:"account"`
	Proxy   string `json:"proxy"`
}

// OperationName returns the wire tag of the operation
func (*AccountWitnessProxy) OperationName() string { return "account_witness_proxy_operation" }

// Convert requests a conversion between the chain's two liquid assets
type Convert struct {
	Owner     string `json:"owner"`
	RequestID uint32 `json:"requestid"`
	Amount    Asset  `json:"amount"`
}

// OperationName returns the wire tag of the operation
func (*Convert) OperationName() string { return "convert_operation" }

// LimitOrderCreate places a limit order on the internal market
type LimitOrderCreate struct {
	Owner        string `json:"owner"`
	OrderID      uint32 `json:"orderid"`
	AmountToSell Asset  `json:"amount_to_sell"`
	MinToReceive Asset  `json:"min_to_receive"`
	FillOrKill   bool   `json:"fill_or_kill"`
	Expiration   string `json:"expiration"`
}

// OperationName returns the wire tag of the operation
func (*LimitOrderCreate) OperationName() string { return "limit_order_create_operation" }

// LimitOrderCreate2 places a limit order expressed as an exchange rate
type LimitOrderCreate2 struct {
	Owner        string `json:"owner"`
	OrderID      uint32 `json:"orderid"`
	AmountToSell Asset  `json:"amount_to_sell"`
	ExchangeRate Price  `json:"exchange_rate"`
	FillOrKill   bool   `json:"fill_or_kill"`
	Expiration   string `json:"expiration"`
}

// OperationName returns the wire tag of the operation
func (*LimitOrderCreate2) OperationName() string { return "limit_order_create2_operation" }

// LimitOrderCancel cancels an open limit order
type LimitOrderCancel struct {
	Owner   string `json:"owner"`
	OrderID uint32 `json:"orderid"`
}

// OperationName returns the wire tag of the operation
func (*LimitOrderCancel) OperationName() string { return "limit_order_cancel_operation" }

// FeedPublish publishes a witness price feed
type FeedPublish struct {
	Publisher    string `json:"publisher"`
	ExchangeRate Price  `json:"exchange_rate"`
}

// OperationName returns the wire tag of the operation
func (*FeedPublish) OperationName() string { return "feed_publish_operation" }

// EscrowTransfer opens an escrow between two parties and an agent
type EscrowTransfer struct {
	From                 string `json:"from"`
	To                   string `json:"to"`
	Agent                string `json:"agent"`
	EscrowID             uint32 `json:"escrow_id"`
	SbdAmount            Asset  `json:"sbd_amount"`
	SteemAmount          Asset  `json:"steem_amount"`
	Fee                  Asset  `json:"fee"`
	RatificationDeadline string `json:"ratification_deadline"`
	EscrowExpiration     string `json:"escrow_expiration"`
	JSONMeta             string `json:"json_meta"`
}

// OperationName returns the wire tag of the operation
func (*EscrowTransfer) OperationName() string { return "escrow_transfer_operation" }

// EscrowApprove ratifies participation in an escrow
type EscrowApprove struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Agent    string `json:"agent"`
	Who      string `json:"who"`
	EscrowID uint32 `json:"escrow_id"`
	Approve  bool   `json:"approve"`
}

// OperationName returns the wire tag of the operation
func (*EscrowApprove) OperationName() string { return "escrow_approve_operation" }

// EscrowDispute raises a dispute on an escrow, handing control to the agent
type EscrowDispute struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Agent    string `json:"agent"`
	Who      string `json:"who"`
	EscrowID uint32 `json:"escrow_id"`
}

// OperationName returns the wire tag of the operation
func (*EscrowDispute) OperationName() string { return "escrow_dispute_operation" }

// EscrowRelease releases escrowed funds to a receiver
type EscrowRelease struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Agent       string `json:"agent"`
	Who         string `json:"who"`
	Receiver    string `json:"receiver"`
	EscrowID    uint32 `json:"escrow_id"`
	SbdAmount   Asset  `json:"sbd_amount"`
	SteemAmount Asset  `json:"steem_amount"`
}

// OperationName returns the wire tag of the operation
func (*EscrowRelease) OperationName() string { return "escrow_release_operation" }

// RequestAccountRecovery asks the recovery partner to begin account recovery
type RequestAccountRecovery struct {
	RecoveryAccount   string            `json:"recovery_account"`
	AccountToRecover  string            `json:"account_to_recover"`
	NewOwnerAuthority Authority         `json:"new_owner_authority"`
	Extensions        []json.RawMessage `json:"extensions"`
}

// OperationName returns the wire tag of the operation
func (*RequestAccountRecovery) OperationName() string { return "request_account_recovery_operation" }

// ChangeRecoveryAccount designates a new recovery partner
type ChangeRecoveryAccount struct {
	AccountToRecover   string            `json:"account_to_recover"`
	NewRecoveryAccount string            `json:"new_recovery_account"`
	Extensions         []json.RawMessage `json:"extensions"`
}

// OperationName returns the wire tag of the operation
func (*ChangeRecoveryAccount) OperationName() string { return "change_recovery_account_operation" }

// DeclineVotingRights irreversibly declines governance voting rights
type DeclineVotingRights struct {
	Account string `json:"account"`
	Decline bool   `json:"decline"`
}

// OperationName returns the wire tag of the operation
func (*DeclineVotingRights) OperationName() string { return "decline_voting_rights_operation" }

// ClaimRewardBalance moves pending rewards into the account balances
type ClaimRewardBalance struct {
	Account     string `json:"account"`
	RewardSteem Asset  `json:"reward_steem"`
	RewardSbd   Asset  `json:"reward_sbd"`
	RewardVests Asset  `json:"reward_vests"`
}

// OperationName returns the wire tag of the operation
func (*ClaimRewardBalance) OperationName() string { return "claim_reward_balance_operation" }

// ClaimRewardBalance2 claims pending rewards denominated in arbitrary assets
type ClaimRewardBalance2 struct {
	Account      string            `json:"account"`
	RewardTokens []Asset           `json:"reward_tokens"`
	Extensions   []json.RawMessage `json:"extensions"`
}

// OperationName returns the wire tag of the operation
func (*ClaimRewardBalance2) OperationName() string { return "claim_reward_balance2_operation" }

// Custom carries an opaque binary payload authenticated by the listed accounts
type Custom struct {
	RequiredAuths []string `json:"required_auths"`
	ID            uint16   `json:"id"`
	Data          string   `json:"data"`
}

// OperationName returns the wire tag of the operation
func (*Custom) OperationName() string { return "custom_operation" }

// CustomJSON carries an opaque json payload authenticated by the listed accounts
type CustomJSON struct {
	RequiredAuths        []string `json:"required_auths"`
	RequiredPostingAuths []string `json:"required_posting_auths"`
	ID                   string   `json:"id"`
	JSON                 string   `json:"json"`
}

// OperationName returns the wire tag of the operation
func (*CustomJSON) OperationName() string { return "custom_json_operation" }

// CustomBinary carries an opaque binary payload with full authority lists
type CustomBinary struct {
	ID   string `json:"id"`
	Data string `json:"data"`
}

// OperationName returns the wire tag of the operation
func (*CustomBinary) OperationName() string { return "custom_binary_operation" }

// SmtSetup configures a smart media token before launch
type SmtSetup struct {
	ControlAccount string          `json:"control_account"`
	Symbol         json.RawMessage `json:"symbol"`
}

// OperationName returns the wire tag of the operation
func (*SmtSetup) OperationName() string { return "smt_setup_operation" }

// SmtCapReveal reveals a hidden smart media token cap commitment
type SmtCapReveal struct {
	ControlAccount string          `json:"control_account"`
	Symbol         json.RawMessage `json:"symbol"`
}

// OperationName returns the wire tag of the operation
func (*SmtCapReveal) OperationName() string { return "smt_cap_reveal_operation" }

// SmtRefund refunds smart media token contributions of a failed launch
type SmtRefund struct {
	ControlAccount string          `json:"control_account"`
	Symbol         json.RawMessage `json:"symbol"`
}

// OperationName returns the wire tag of the operation
func (*SmtRefund) OperationName() string { return "smt_refund_operation" }

// SmtSetupEmissions schedules smart media token emission events
type SmtSetupEmissions struct {
	ControlAccount string          `json:"control_account"`
	Symbol         json.RawMessage `json:"symbol"`
}

// OperationName returns the wire tag of the operation
func (*SmtSetupEmissions) OperationName() string { return "smt_setup_emissions_operation" }

// SmtSetSetupParameters changes smart media token pre-launch parameters
type SmtSetSetupParameters struct {
	ControlAccount string          `json:"control_account"`
	Symbol         json.RawMessage `json:"symbol"`
}

// OperationName returns the wire tag of the operation
func (*SmtSetSetupParameters) OperationName() string { return "smt_set_setup_parameters_operation" }

// SmtSetRuntimeParameters changes smart media token runtime parameters
type SmtSetRuntimeParameters struct {
	ControlAccount string          `json:"control_account"`
	Symbol         json.RawMessage `json:"symbol"`
}

// OperationName returns the wire tag of the operation
func (*SmtSetRuntimeParameters) OperationName() string { return "smt_set_runtime_parameters_operation" }

// SmtCreate reserves a smart media token symbol
type SmtCreate struct {
	ControlAccount string          `json:"control_account"`
	Symbol         json.RawMessage `json:"symbol"`
	Fee            Asset           `json:"smt_creation_fee"`
}

// OperationName returns the wire tag of the operation
func (*SmtCreate) OperationName() string { return "smt_create_operation" }

// RecoverAccount completes an account recovery. Charged no usage
type RecoverAccount struct {
	AccountToRecover     string            `json:"account_to_recover"`
	NewOwnerAuthority    Authority         `json:"new_owner_authority"`
	RecentOwnerAuthority Authority         `json:"recent_owner_authority"`
	Extensions           []json.RawMessage `json:"extensions"`
}

// OperationName returns the wire tag of the operation
func (*RecoverAccount) OperationName() string { return "recover_account_operation" }

// Pow is the legacy proof of work operation. Charged no usage
type Pow struct{}

// OperationName returns the wire tag of the operation
func (*Pow) OperationName() string { return "pow_operation" }

// Pow2 is the second generation proof of work operation. Charged no usage
type Pow2 struct{}

// OperationName returns the wire tag of the operation
func (*Pow2) OperationName() string { return "pow2_operation" }

// ReportOverProduction reports a witness double-producing blocks. Charged no usage
type ReportOverProduction struct{}

// OperationName returns the wire tag of the operation
func (*ReportOverProduction) OperationName() string { return "report_over_production_operation" }

// ResetAccount replaces an account's owner authority via its reset partner. Charged no usage
type ResetAccount struct{}

// OperationName returns the wire tag of the operation
func (*ResetAccount) OperationName() string { return "reset_account_operation" }

// SetResetAccount designates an account's reset partner. Charged no usage
type SetResetAccount struct{}

// OperationName returns the wire tag of the operation
func (*SetResetAccount) OperationName() string { return "set_reset_account_operation" }

// Virtual operations are emitted by the ledger itself, never submitted in
// transactions. They are part of the closed set so that replayed histories
// decode, and they are charged no usage.

// FillConvertRequest is the virtual settlement of a conversion request
type FillConvertRequest struct{}

// OperationName returns the wire tag of the operation
func (*FillConvertRequest) OperationName() string { return "fill_convert_request_operation" }

// AuthorReward is the virtual payout of an author reward
type AuthorReward struct{}

// OperationName returns the wire tag of the operation
func (*AuthorReward) OperationName() string { return "author_reward_operation" }

// CurationReward is the virtual payout of a curation reward
type CurationReward struct{}

// OperationName returns the wire tag of the operation
func (*CurationReward) OperationName() string { return "curation_reward_operation" }

// CommentReward is the virtual payout of a comment reward
type CommentReward struct{}

// OperationName returns the wire tag of the operation
func (*CommentReward) OperationName() string { return "comment_reward_operation" }

// LiquidityReward is the virtual payout of a market liquidity reward
type LiquidityReward struct{}

// OperationName returns the wire tag of the operation
func (*LiquidityReward) OperationName() string { return "liquidity_reward_operation" }

// Interest is the virtual payment of savings interest
type Interest struct{}

// OperationName returns the wire tag of the operation
func (*Interest) OperationName() string { return "interest_operation" }

// FillVestingWithdraw is the virtual settlement of a power down step
type FillVestingWithdraw struct{}

// OperationName returns the wire tag of the operation
func (*FillVestingWithdraw) OperationName() string { return "fill_vesting_withdraw_operation" }

// FillOrder is the virtual settlement of a matched market order
type FillOrder struct{}

// OperationName returns the wire tag of the operation
func (*FillOrder) OperationName() string { return "fill_order_operation" }

// ShutdownWitness is the virtual deactivation of a failing witness
type ShutdownWitness struct{}

// OperationName returns the wire tag of the operation
func (*ShutdownWitness) OperationName() string { return "shutdown_witness_operation" }

// FillTransferFromSavings is the virtual settlement of a savings withdrawal
type FillTransferFromSavings struct{}

// OperationName returns the wire tag of the operation
func (*FillTransferFromSavings) OperationName() string { return "fill_transfer_from_savings_operation" }

// Hardfork is the virtual marker of a protocol upgrade
type Hardfork struct{}

// OperationName returns the wire tag of the operation
func (*Hardfork) OperationName() string { return "hardfork_operation" }

// CommentPayoutUpdate is the virtual marker of a comment payout recalculation
type CommentPayoutUpdate struct{}

// OperationName returns the wire tag of the operation
func (*CommentPayoutUpdate) OperationName() string { return "comment_payout_update_operation" }

// ReturnVestingDelegation is the virtual return of an expired delegation
type ReturnVestingDelegation struct{}

// OperationName returns the wire tag of the operation
func (*ReturnVestingDelegation) OperationName() string { return "return_vesting_delegation_operation" }

// CommentBenefactorReward is the virtual payout of a beneficiary reward
type CommentBenefactorReward struct{}

// OperationName returns the wire tag of the operation
func (*CommentBenefactorReward) OperationName() string { return "comment_benefactor_reward_operation" }

// ProducerReward is the virtual payout of a block producer reward
type ProducerReward struct{}

// OperationName returns the wire tag of the operation
func (*ProducerReward) OperationName() string { return "producer_reward_operation" }

// ClearNullAccountBalance is the virtual burn of funds sent to the null account
type ClearNullAccountBalance struct{}

// OperationName returns the wire tag of the operation
func (*ClearNullAccountBalance) OperationName() string { return "clear_null_account_balance_operation" }
