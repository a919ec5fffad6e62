package operation

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Operation is one member of the closed set of ledger operation variants.
// Instances are immutable once decoded
type Operation interface {
	OperationName() string
}

// AccountAuth is one (account name, weight) authority member. On the wire it is
// encoded as a two element array
type AccountAuth struct {
	Account string
	Weight  uint16
}

// UnmarshalJSON decodes the ["name", weight] pair encoding
func (aa *AccountAuth) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	err := json.Unmarshal(data, &pair)
	if err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: account auth must be a [name, weight] pair", ErrMalformedOperation)
	}

	err = json.Unmarshal(pair[0], &aa.Account)
	if err != nil {
		return err
	}

	return json.Unmarshal(pair[1], &aa.Weight)
}

// MarshalJSON encodes the member back to the ["name", weight] pair form
func (aa AccountAuth) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{aa.Account, aa.Weight})
}

// KeyAuth is one (public key, weight) authority member, wire encoded as a pair
type KeyAuth struct {
	Key    string
	Weight uint16
}

// UnmarshalJSON decodes the ["key", weight] pair encoding
func (ka *KeyAuth) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	err := json.Unmarshal(data, &pair)
	if err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: key auth must be a [key, weight] pair", ErrMalformedOperation)
	}

	err = json.Unmarshal(pair[0], &ka.Key)
	if err != nil {
		return err
	}

	return json.Unmarshal(pair[1], &ka.Weight)
}

// MarshalJSON encodes the member back to the ["key", weight] pair form
func (ka KeyAuth) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{ka.Key, ka.Weight})
}

// Authority is a weighted threshold authority over accounts and keys
type Authority struct {
	WeightThreshold uint32        `json:"weight_threshold"`
	AccountAuths    []AccountAuth `json:"account_auths"`
	KeyAuths        []KeyAuth     `json:"key_auths"`
}

// Asset is an amount of a chain asset. The amount is a decimal string scaled by
// the asset precision, as served by the chain API
type Asset struct {
	Amount    string `json:"amount"`
	Precision uint8  `json:"precision"`
	Nai       string `json:"nai"`
}

// AmountBig parses the scaled amount into a big integer
func (a *Asset) AmountBig() (*big.Int, error) {
	amount, ok := big.NewInt(0).SetString(a.Amount, 10)
	if !ok {
		return nil, fmt.Errorf("%w: invalid asset amount %q", ErrMalformedOperation, a.Amount)
	}

	return amount, nil
}

// Price is an exchange rate between two assets
type Price struct {
	Base  Asset `json:"base"`
	Quote Asset `json:"quote"`
}

// Beneficiary routes a fraction of a comment payout to an account
type Beneficiary struct {
	Account string `json:"account"`
	Weight  uint16 `json:"weight"`
}

// ChainProperties are the witness-published chain parameters
type ChainProperties struct {
	AccountCreationFee Asset  `json:"account_creation_fee"`
	MaximumBlockSize   uint32 `json:"maximum_block_size"`
	SbdInterestRate    uint16 `json:"sbd_interest_rate"`
}

// CommentOptionsExtension is one member of the closed set of comment-options
// extension variants
type CommentOptionsExtension interface {
	ExtensionName() string
}

// CommentPayoutBeneficiaries routes comment payouts to additional accounts
type CommentPayoutBeneficiaries struct {
	Beneficiaries []Beneficiary `json:"beneficiaries"`
}

// ExtensionName returns the wire tag of the extension
func (*CommentPayoutBeneficiaries) ExtensionName() string { return "comment_payout_beneficiaries" }

// AllowedVoteAssets restricts which assets may vote on a comment
type AllowedVoteAssets struct {
	VotableAssets json.RawMessage `json:"votable_assets"`
}

// ExtensionName returns the wire tag of the extension
func (*AllowedVoteAssets) ExtensionName() string { return "allowed_vote_assets" }
