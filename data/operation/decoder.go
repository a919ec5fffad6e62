package operation

import (
	"encoding/json"
	"fmt"
)

type envelope struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// operationFactories maps every known wire tag to a constructor of the matching
// variant. Unknown tags are rejected here at decode time, so a tag missing
// from this set never reaches cost computation
var operationFactories = map[string]func() Operation{
	(&AccountCreate{}).OperationName():               func() Operation { return &AccountCreate{} },
	(&AccountCreateWithDelegation{}).OperationName(): func() Operation { return &AccountCreateWithDelegation{} },
	(&CreateClaimedAccount{}).OperationName():        func() Operation { return &CreateClaimedAccount{} },
	(&ClaimAccount{}).OperationName():                func() Operation { return &ClaimAccount{} },
	(&AccountUpdate{}).OperationName():               func() Operation { return &AccountUpdate{} },
	(&Vote{}).OperationName():                        func() Operation { return &Vote{} },
	(&Comment{}).OperationName():                     func() Operation { return &Comment{} },
	(&CommentOptions{}).OperationName():              func() Operation { return &CommentOptions{} },
	(&DeleteComment{}).OperationName():               func() Operation { return &DeleteComment{} },
	(&Transfer{}).OperationName():                    func() Operation { return &Transfer{} },
	(&TransferToVesting{}).OperationName():           func() Operation { return &TransferToVesting{} },
	(&TransferToSavings{}).OperationName():           func() Operation { return &TransferToSavings{} },
	(&TransferFromSavings{}).OperationName():         func() Operation { return &TransferFromSavings{} },
	(&CancelTransferFromSavings{}).OperationName():   func() Operation { return &CancelTransferFromSavings{} },
	(&WithdrawVesting{}).OperationName():             func() Operation { return &WithdrawVesting{} },
	(&SetWithdrawVestingRoute{}).OperationName():     func() Operation { return &SetWithdrawVestingRoute{} },
	(&DelegateVestingShares{}).OperationName():       func() Operation { return &DelegateVestingShares{} },
	(&WitnessUpdate{}).OperationName():               func() Operation { return &WitnessUpdate{} },
	(&WitnessSetProperties{}).OperationName():        func() Operation { return &WitnessSetProperties{} },
	(&AccountWitnessVote{}).OperationName():          func() Operation { return &AccountWitnessVote{} },
	(&AccountWitnessProxy{}).OperationName():         func() Operation { return &AccountWitnessProxy{} },
	(&Convert{}).OperationName():                     func() Operation { return &Convert{} },
	(&LimitOrderCreate{}).OperationName():            func() Operation { return &LimitOrderCreate{} },
	(&LimitOrderCreate2{}).OperationName():           func() Operation { return &LimitOrderCreate2{} },
	(&LimitOrderCancel{}).OperationName():            func() Operation { return &LimitOrderCancel{} },
	(&FeedPublish{}).OperationName():                 func() Operation { return &FeedPublish{} },
	(&EscrowTransfer{}).OperationName():              func() Operation { return &EscrowTransfer{} },
	(&EscrowApprove{}).OperationName():               func() Operation { return &EscrowApprove{} },
	(&EscrowDispute{}).OperationName():               func() Operation { return &EscrowDispute{} },
	(&EscrowRelease{}).OperationName():               func() Operation { return &EscrowRelease{} },
	(&RequestAccountRecovery{}).OperationName():      func() Operation { return &RequestAccountRecovery{} },
	(&ChangeRecoveryAccount{}).OperationName():       func() Operation { return &ChangeRecoveryAccount{} },
	(&DeclineVotingRights{}).OperationName():         func() Operation { return &DeclineVotingRights{} },
	(&ClaimRewardBalance{}).OperationName():          func() Operation { return &ClaimRewardBalance{} },
	(&ClaimRewardBalance2{}).OperationName():         func() Operation { return &ClaimRewardBalance2{} },
	(&Custom{}).OperationName():                      func() Operation { return &Custom{} },
	(&CustomJSON{}).OperationName():                  func() Operation { return &CustomJSON{} },
	(&CustomBinary{}).OperationName():                func() Operation { return &CustomBinary{} },
	(&SmtSetup{}).OperationName():                    func() Operation { return &SmtSetup{} },
	(&SmtCapReveal{}).OperationName():                func() Operation { return &SmtCapReveal{} },
	(&SmtRefund{}).OperationName():                   func() Operation { return &SmtRefund{} },
	(&SmtSetupEmissions{}).OperationName():           func() Operation { return &SmtSetupEmissions{} },
	(&SmtSetSetupParameters{}).OperationName():       func() Operation { return &SmtSetSetupParameters{} },
	(&SmtSetRuntimeParameters{}).OperationName():     func() Operation { return &SmtSetRuntimeParameters{} },
	(&SmtCreate{}).OperationName():                   func() Operation { return &SmtCreate{} },
	(&RecoverAccount{}).OperationName():              func() Operation { return &RecoverAccount{} },
	(&Pow{}).OperationName():                         func() Operation { return &Pow{} },
	(&Pow2{}).OperationName():                        func() Operation { return &Pow2{} },
	(&ReportOverProduction{}).OperationName():        func() Operation { return &ReportOverProduction{} },
	(&ResetAccount{}).OperationName():                func() Operation { return &ResetAccount{} },
	(&SetResetAccount{}).OperationName():             func() Operation { return &SetResetAccount{} },
	(&FillConvertRequest{}).OperationName():          func() Operation { return &FillConvertRequest{} },
	(&AuthorReward{}).OperationName():                func() Operation { return &AuthorReward{} },
	(&CurationReward{}).OperationName():              func() Operation { return &CurationReward{} },
	(&CommentReward{}).OperationName():               func() Operation { return &CommentReward{} },
	(&LiquidityReward{}).OperationName():             func() Operation { return &LiquidityReward{} },
	(&Interest{}).OperationName():                    func() Operation { return &Interest{} },
	(&FillVestingWithdraw{}).OperationName():         func() Operation { return &FillVestingWithdraw{} },
	(&FillOrder{}).OperationName():                   func() Operation { return &FillOrder{} },
	(&ShutdownWitness{}).OperationName():             func() Operation { return &ShutdownWitness{} },
	(&FillTransferFromSavings{}).OperationName():     func() Operation { return &FillTransferFromSavings{} },
	(&Hardfork{}).OperationName():                    func() Operation { return &Hardfork{} },
	(&CommentPayoutUpdate{}).OperationName():         func() Operation { return &CommentPayoutUpdate{} },
	(&ReturnVestingDelegation{}).OperationName():     func() Operation { return &ReturnVestingDelegation{} },
	(&CommentBenefactorReward{}).OperationName():     func() Operation { return &CommentBenefactorReward{} },
	(&ProducerReward{}).OperationName():              func() Operation { return &ProducerReward{} },
	(&ClearNullAccountBalance{}).OperationName():     func() Operation { return &ClearNullAccountBalance{} },
}

var extensionFactories = map[string]func() CommentOptionsExtension{
	(&CommentPayoutBeneficiaries{}).ExtensionName(): func() CommentOptionsExtension { return &CommentPayoutBeneficiaries{} },
	(&AllowedVoteAssets{}).ExtensionName():          func() CommentOptionsExtension { return &AllowedVoteAssets{} },
}

// KnownOperationNames returns the wire tags of all registered operation variants
func KnownOperationNames() []string {
	names := make([]string, 0, len(operationFactories))
	for name := range operationFactories {
		names = append(names, name)
	}

	return names
}

// IsKnownOperationName returns true if the provided wire tag has a registered variant
func IsKnownOperationName(name string) bool {
	_, ok := operationFactories[name]
	return ok
}

// UnmarshalOperation decodes one tagged operation envelope {type, value}
func UnmarshalOperation(data []byte) (Operation, error) {
	wrapper := &envelope{}
	err := json.Unmarshal(data, wrapper)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOperation, err)
	}
	if len(wrapper.Type) == 0 {
		return nil, fmt.Errorf("%w: missing operation type tag", ErrMalformedOperation)
	}

	factory, ok := operationFactories[wrapper.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, wrapper.Type)
	}

	op := factory()
	if len(wrapper.Value) > 0 {
		err = json.Unmarshal(wrapper.Value, op)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedOperation, wrapper.Type, err)
		}
	}

	return op, nil
}

// UnmarshalCommentOptionsExtension decodes one tagged extension envelope {type, value}
func UnmarshalCommentOptionsExtension(data []byte) (CommentOptionsExtension, error) {
	wrapper := &envelope{}
	err := json.Unmarshal(data, wrapper)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOperation, err)
	}
	if len(wrapper.Type) == 0 {
		return nil, fmt.Errorf("%w: missing extension type tag", ErrMalformedOperation)
	}

	factory, ok := extensionFactories[wrapper.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExtension, wrapper.Type)
	}

	extension := factory()
	if len(wrapper.Value) > 0 {
		err = json.Unmarshal(wrapper.Value, extension)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedOperation, wrapper.Type, err)
		}
	}

	return extension, nil
}
