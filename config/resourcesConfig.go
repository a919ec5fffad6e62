package config

// PriceCurveConfig holds the bonding-curve coefficients for one resource.
// CoeffA and CoeffB can exceed the 64-bit range and are carried as decimal strings
type PriceCurveConfig struct {
	CoeffA string
	CoeffB string
	Shift  uint32
}

// DecayConfig holds the fixed-point pool decay parameters for one resource
type DecayConfig struct {
	DecayPerTimeUnit           uint64
	DecayPerTimeUnitDenomShift uint32
}

// ResourceDynamicsConfig holds the per-block pool dynamics settings for one resource
type ResourceDynamicsConfig struct {
	ResourceUnit      uint64
	BudgetPerTimeUnit uint64
	PoolEq            string
	MaxPoolSize       string
	MinDecay          uint64
	Decay             DecayConfig
}

// ResourceConfig holds the complete settings of one priced resource
type ResourceConfig struct {
	Name     string
	Dynamics ResourceDynamicsConfig
	Curve    PriceCurveConfig
}

// StateObjectSizesConfig holds the state-byte size table: base and per-element
// byte sizes of the chain objects created by operations. Values are fixed-point,
// scaled by StateBytesScale; the scale only matters for display
type StateObjectSizesConfig struct {
	AuthorityBaseSize                         uint64
	AuthorityAccountMemberSize                uint64
	AuthorityKeyMemberSize                    uint64
	AccountObjectBaseSize                     uint64
	AccountAuthorityObjectBaseSize            uint64
	AccountRecoveryRequestObjectBaseSize      uint64
	CommentObjectBaseSize                     uint64
	CommentObjectPermlinkCharSize             uint64
	CommentObjectParentPermlinkCharSize       uint64
	CommentObjectBeneficiariesMemberSize      uint64
	CommentVoteObjectBaseSize                 uint64
	ConvertRequestObjectBaseSize              uint64
	DeclineVotingRightsRequestObjectBaseSize  uint64
	EscrowObjectBaseSize                      uint64
	LimitOrderObjectBaseSize                  uint64
	SavingsWithdrawObjectByteSize             uint64
	TransactionObjectBaseSize                 uint64
	TransactionObjectByteSize                 uint64
	VestingDelegationObjectBaseSize           uint64
	VestingDelegationExpirationObjectBaseSize uint64
	WithdrawVestingRouteObjectBaseSize        uint64
	WitnessObjectBaseSize                     uint64
	WitnessObjectURLCharSize                  uint64
	WitnessVoteObjectBaseSize                 uint64
	StateBytesScale                           uint64
}

// OperationExecTimesConfig holds the fixed execution-time units charged per operation kind
type OperationExecTimesConfig struct {
	AccountCreateOperationExecTime               uint64
	AccountCreateWithDelegationOperationExecTime uint64
	AccountUpdateOperationExecTime               uint64
	AccountWitnessProxyOperationExecTime         uint64
	AccountWitnessVoteOperationExecTime          uint64
	CancelTransferFromSavingsOperationExecTime   uint64
	ChangeRecoveryAccountOperationExecTime       uint64
	ClaimAccountOperationExecTime                uint64
	ClaimRewardBalanceOperationExecTime          uint64
	ClaimRewardBalance2OperationExecTime         uint64
	CommentOperationExecTime                     uint64
	CommentOptionsOperationExecTime              uint64
	ConvertOperationExecTime                     uint64
	CreateClaimedAccountOperationExecTime        uint64
	CustomOperationExecTime                      uint64
	CustomJSONOperationExecTime                  uint64
	CustomBinaryOperationExecTime                uint64
	DeclineVotingRightsOperationExecTime         uint64
	DelegateVestingSharesOperationExecTime       uint64
	DeleteCommentOperationExecTime               uint64
	EscrowApproveOperationExecTime               uint64
	EscrowDisputeOperationExecTime               uint64
	EscrowReleaseOperationExecTime               uint64
	EscrowTransferOperationExecTime              uint64
	FeedPublishOperationExecTime                 uint64
	LimitOrderCancelOperationExecTime            uint64
	LimitOrderCreateOperationExecTime            uint64
	LimitOrderCreate2OperationExecTime           uint64
	RequestAccountRecoveryOperationExecTime      uint64
	SetWithdrawVestingRouteOperationExecTime     uint64
	SmtCapRevealOperationExecTime                uint64
	SmtCreateOperationExecTime                   uint64
	SmtRefundOperationExecTime                   uint64
	SmtSetRuntimeParametersOperationExecTime     uint64
	SmtSetSetupParametersOperationExecTime       uint64
	SmtSetupOperationExecTime                    uint64
	SmtSetupEmissionsOperationExecTime           uint64
	TransferFromSavingsOperationExecTime         uint64
	TransferOperationExecTime                    uint64
	TransferToSavingsOperationExecTime           uint64
	TransferToVestingOperationExecTime           uint64
	VoteOperationExecTime                        uint64
	WithdrawVestingOperationExecTime             uint64
	WitnessSetPropertiesOperationExecTime        uint64
	WitnessUpdateOperationExecTime               uint64
}

// ResourcesConfig holds the full resource-credit parameter set
type ResourcesConfig struct {
	Resources          []ResourceConfig
	StateObjectSizes   StateObjectSizesConfig
	OperationExecTimes OperationExecTimesConfig
}
