package resourcecost

import (
	"fmt"
	"math"
	"math/big"

	"github.com/steemit/rc-engine-go/config"
)

const (
	conversionBase = 10
	maxShiftBits   = 127
)

// PriceCurveParams holds the parsed bonding-curve coefficients of one resource.
// Coefficients can exceed the 64-bit range, so all of them are wide integers
type PriceCurveParams struct {
	CoeffA *big.Int
	CoeffB *big.Int
	Shift  uint32
}

// DecayParams holds the parsed fixed-point pool decay parameters of one resource
type DecayParams struct {
	DecayPerTimeUnit *big.Int
	DenomShift       uint32
}

type resourceDynamics struct {
	resourceUnit      int64
	budgetPerTimeUnit *big.Int
	poolEq            *big.Int
	maxPoolSize       *big.Int
	minDecay          uint64
	decay             DecayParams
}

type resourceEntry struct {
	curve    PriceCurveParams
	dynamics resourceDynamics
}

type stateObjectSizes struct {
	authorityBase                   int64
	authorityAccountMember          int64
	authorityKeyMember              int64
	accountBase                     int64
	accountAuthorityBase            int64
	accountRecoveryRequestBase      int64
	commentBase                     int64
	commentPermlinkChar             int64
	commentParentPermlinkChar       int64
	commentBeneficiariesMember      int64
	commentVoteBase                 int64
	convertRequestBase              int64
	declineVotingRightsRequestBase  int64
	escrowBase                      int64
	limitOrderBase                  int64
	savingsWithdrawByte             int64
	transactionBase                 int64
	transactionByte                 int64
	vestingDelegationBase           int64
	vestingDelegationExpirationBase int64
	withdrawVestingRouteBase        int64
	witnessBase                     int64
	witnessURLChar                  int64
	witnessVoteBase                 int64
}

type operationExecTimes struct {
	accountCreate               int64
	accountCreateWithDelegation int64
	accountUpdate               int64
	accountWitnessProxy         int64
	accountWitnessVote          int64
	cancelTransferFromSavings   int64
	changeRecoveryAccount       int64
	claimAccount                int64
	claimRewardBalance          int64
	claimRewardBalance2         int64
	comment                     int64
	commentOptions              int64
	convert                     int64
	createClaimedAccount        int64
	custom                      int64
	customJSON                  int64
	customBinary                int64
	declineVotingRights         int64
	delegateVestingShares       int64
	deleteComment               int64
	escrowApprove               int64
	escrowDispute               int64
	escrowRelease               int64
	escrowTransfer              int64
	feedPublish                 int64
	limitOrderCancel            int64
	limitOrderCreate            int64
	limitOrderCreate2           int64
	requestAccountRecovery      int64
	setWithdrawVestingRoute     int64
	smtCapReveal                int64
	smtCreate                   int64
	smtRefund                   int64
	smtSetRuntimeParameters     int64
	smtSetSetupParameters       int64
	smtSetup                    int64
	smtSetupEmissions           int64
	transferFromSavings         int64
	transfer                    int64
	transferToSavings           int64
	transferToVesting           int64
	vote                        int64
	withdrawVesting             int64
	witnessSetProperties        int64
	witnessUpdate               int64
}

// ResourceParams is the parsed, validated and immutable resource parameter set.
// It is read-only for the lifetime of any cost computation
type ResourceParams struct {
	resources [NumResourceTypes]resourceEntry
	sizes     stateObjectSizes
	execTimes operationExecTimes
}

// NewResourceParams parses and validates a resources config
func NewResourceParams(resourcesConfig *config.ResourcesConfig) (*ResourceParams, error) {
	if resourcesConfig == nil {
		return nil, ErrNilResourcesConfig
	}

	params := &ResourceParams{}

	covered := [NumResourceTypes]bool{}
	for _, resourceConfig := range resourcesConfig.Resources {
		rt, err := ResourceTypeByName(resourceConfig.Name)
		if err != nil {
			return nil, err
		}
		if covered[rt] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatedResource, resourceConfig.Name)
		}
		covered[rt] = true

		entry, err := convertResourceConfig(&resourceConfig)
		if err != nil {
			return nil, fmt.Errorf("%w for %s", err, resourceConfig.Name)
		}

		params.resources[rt] = *entry
	}

	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		if !covered[rt] {
			return nil, fmt.Errorf("%w: %s", ErrMissingResource, resourceNames[rt])
		}
	}

	params.sizes = convertStateObjectSizes(&resourcesConfig.StateObjectSizes)
	params.execTimes = convertOperationExecTimes(&resourcesConfig.OperationExecTimes)

	return params, nil
}

func convertResourceConfig(resourceConfig *config.ResourceConfig) (*resourceEntry, error) {
	curve, err := convertPriceCurveConfig(&resourceConfig.Curve)
	if err != nil {
		return nil, err
	}

	dynamics, err := convertDynamicsConfig(&resourceConfig.Dynamics)
	if err != nil {
		return nil, err
	}

	return &resourceEntry{
		curve:    *curve,
		dynamics: *dynamics,
	}, nil
}

func convertPriceCurveConfig(curveConfig *config.PriceCurveConfig) (*PriceCurveParams, error) {
	coeffA, ok := big.NewInt(0).SetString(curveConfig.CoeffA, conversionBase)
	if !ok || coeffA.Sign() <= 0 {
		return nil, fmt.Errorf("%w: coeff_a %q", ErrInvalidCurveCoefficient, curveConfig.CoeffA)
	}

	coeffB, ok := big.NewInt(0).SetString(curveConfig.CoeffB, conversionBase)
	if !ok || coeffB.Sign() <= 0 {
		return nil, fmt.Errorf("%w: coeff_b %q", ErrInvalidCurveCoefficient, curveConfig.CoeffB)
	}

	if curveConfig.Shift > maxShiftBits {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCurveShift, curveConfig.Shift)
	}

	return &PriceCurveParams{
		CoeffA: coeffA,
		CoeffB: coeffB,
		Shift:  curveConfig.Shift,
	}, nil
}

func convertDynamicsConfig(dynamicsConfig *config.ResourceDynamicsConfig) (*resourceDynamics, error) {
	if dynamicsConfig.ResourceUnit == 0 || dynamicsConfig.ResourceUnit > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResourceUnit, dynamicsConfig.ResourceUnit)
	}

	if dynamicsConfig.Decay.DecayPerTimeUnitDenomShift > maxShiftBits {
		return nil, fmt.Errorf("%w: denom shift %d", ErrInvalidDecayParams, dynamicsConfig.Decay.DecayPerTimeUnitDenomShift)
	}

	poolEq, ok := big.NewInt(0).SetString(dynamicsConfig.PoolEq, conversionBase)
	if !ok || poolEq.Sign() < 0 {
		return nil, fmt.Errorf("%w: pool_eq %q", ErrInvalidDynamicsValue, dynamicsConfig.PoolEq)
	}

	maxPoolSize, ok := big.NewInt(0).SetString(dynamicsConfig.MaxPoolSize, conversionBase)
	if !ok || maxPoolSize.Sign() < 0 {
		return nil, fmt.Errorf("%w: max_pool_size %q", ErrInvalidDynamicsValue, dynamicsConfig.MaxPoolSize)
	}

	return &resourceDynamics{
		resourceUnit:      int64(dynamicsConfig.ResourceUnit),
		budgetPerTimeUnit: big.NewInt(0).SetUint64(dynamicsConfig.BudgetPerTimeUnit),
		poolEq:            poolEq,
		maxPoolSize:       maxPoolSize,
		minDecay:          dynamicsConfig.MinDecay,
		decay: DecayParams{
			DecayPerTimeUnit: big.NewInt(0).SetUint64(dynamicsConfig.Decay.DecayPerTimeUnit),
			DenomShift:       dynamicsConfig.Decay.DecayPerTimeUnitDenomShift,
		},
	}, nil
}

func convertStateObjectSizes(sizesConfig *config.StateObjectSizesConfig) stateObjectSizes {
	return stateObjectSizes{
		authorityBase:                   int64(sizesConfig.AuthorityBaseSize),
		authorityAccountMember:          int64(sizesConfig.AuthorityAccountMemberSize),
		authorityKeyMember:              int64(sizesConfig.AuthorityKeyMemberSize),
		accountBase:                     int64(sizesConfig.AccountObjectBaseSize),
		accountAuthorityBase:            int64(sizesConfig.AccountAuthorityObjectBaseSize),
		accountRecoveryRequestBase:      int64(sizesConfig.AccountRecoveryRequestObjectBaseSize),
		commentBase:                     int64(sizesConfig.CommentObjectBaseSize),
		commentPermlinkChar:             int64(sizesConfig.CommentObjectPermlinkCharSize),
		commentParentPermlinkChar:       int64(sizesConfig.CommentObjectParentPermlinkCharSize),
		commentBeneficiariesMember:      int64(sizesConfig.CommentObjectBeneficiariesMemberSize),
		commentVoteBase:                 int64(sizesConfig.CommentVoteObjectBaseSize),
		convertRequestBase:              int64(sizesConfig.ConvertRequestObjectBaseSize),
		declineVotingRightsRequestBase:  int64(sizesConfig.DeclineVotingRightsRequestObjectBaseSize),
		escrowBase:                      int64(sizesConfig.EscrowObjectBaseSize),
		limitOrderBase:                  int64(sizesConfig.LimitOrderObjectBaseSize),
		savingsWithdrawByte:             int64(sizesConfig.SavingsWithdrawObjectByteSize),
		transactionBase:                 int64(sizesConfig.TransactionObjectBaseSize),
		transactionByte:                 int64(sizesConfig.TransactionObjectByteSize),
		vestingDelegationBase:           int64(sizesConfig.VestingDelegationObjectBaseSize),
		vestingDelegationExpirationBase: int64(sizesConfig.VestingDelegationExpirationObjectBaseSize),
		withdrawVestingRouteBase:        int64(sizesConfig.WithdrawVestingRouteObjectBaseSize),
		witnessBase:                     int64(sizesConfig.WitnessObjectBaseSize),
		witnessURLChar:                  int64(sizesConfig.WitnessObjectURLCharSize),
		witnessVoteBase:                 int64(sizesConfig.WitnessVoteObjectBaseSize),
	}
}

func convertOperationExecTimes(execConfig *config.OperationExecTimesConfig) operationExecTimes {
	return operationExecTimes{
		accountCreate:               int64(execConfig.AccountCreateOperationExecTime),
		accountCreateWithDelegation: int64(execConfig.AccountCreateWithDelegationOperationExecTime),
		accountUpdate:               int64(execConfig.AccountUpdateOperationExecTime),
		accountWitnessProxy:         int64(execConfig.AccountWitnessProxyOperationExecTime),
		accountWitnessVote:          int64(execConfig.AccountWitnessVoteOperationExecTime),
		cancelTransferFromSavings:   int64(execConfig.CancelTransferFromSavingsOperationExecTime),
		changeRecoveryAccount:       int64(execConfig.ChangeRecoveryAccountOperationExecTime),
		claimAccount:                int64(execConfig.ClaimAccountOperationExecTime),
		claimRewardBalance:          int64(execConfig.ClaimRewardBalanceOperationExecTime),
		claimRewardBalance2:         int64(execConfig.ClaimRewardBalance2OperationExecTime),
		comment:                     int64(execConfig.CommentOperationExecTime),
		commentOptions:              int64(execConfig.CommentOptionsOperationExecTime),
		convert:                     int64(execConfig.ConvertOperationExecTime),
		createClaimedAccount:        int64(execConfig.CreateClaimedAccountOperationExecTime),
		custom:                      int64(execConfig.CustomOperationExecTime),
		customJSON:                  int64(execConfig.CustomJSONOperationExecTime),
		customBinary:                int64(execConfig.CustomBinaryOperationExecTime),
		declineVotingRights:         int64(execConfig.DeclineVotingRightsOperationExecTime),
		delegateVestingShares:       int64(execConfig.DelegateVestingSharesOperationExecTime),
		deleteComment:               int64(execConfig.DeleteCommentOperationExecTime),
		escrowApprove:               int64(execConfig.EscrowApproveOperationExecTime),
		escrowDispute:               int64(execConfig.EscrowDisputeOperationExecTime),
		escrowRelease:               int64(execConfig.EscrowReleaseOperationExecTime),
		escrowTransfer:              int64(execConfig.EscrowTransferOperationExecTime),
		feedPublish:                 int64(execConfig.FeedPublishOperationExecTime),
		limitOrderCancel:            int64(execConfig.LimitOrderCancelOperationExecTime),
		limitOrderCreate:            int64(execConfig.LimitOrderCreateOperationExecTime),
		limitOrderCreate2:           int64(execConfig.LimitOrderCreate2OperationExecTime),
		requestAccountRecovery:      int64(execConfig.RequestAccountRecoveryOperationExecTime),
		setWithdrawVestingRoute:     int64(execConfig.SetWithdrawVestingRouteOperationExecTime),
		smtCapReveal:                int64(execConfig.SmtCapRevealOperationExecTime),
		smtCreate:                   int64(execConfig.SmtCreateOperationExecTime),
		smtRefund:                   int64(execConfig.SmtRefundOperationExecTime),
		smtSetRuntimeParameters:     int64(execConfig.SmtSetRuntimeParametersOperationExecTime),
		smtSetSetupParameters:       int64(execConfig.SmtSetSetupParametersOperationExecTime),
		smtSetup:                    int64(execConfig.SmtSetupOperationExecTime),
		smtSetupEmissions:           int64(execConfig.SmtSetupEmissionsOperationExecTime),
		transferFromSavings:         int64(execConfig.TransferFromSavingsOperationExecTime),
		transfer:                    int64(execConfig.TransferOperationExecTime),
		transferToSavings:           int64(execConfig.TransferToSavingsOperationExecTime),
		transferToVesting:           int64(execConfig.TransferToVestingOperationExecTime),
		vote:                        int64(execConfig.VoteOperationExecTime),
		withdrawVesting:             int64(execConfig.WithdrawVestingOperationExecTime),
		witnessSetProperties:        int64(execConfig.WitnessSetPropertiesOperationExecTime),
		witnessUpdate:               int64(execConfig.WitnessUpdateOperationExecTime),
	}
}

// CurveParams returns the pricing curve parameters of the given resource
func (params *ResourceParams) CurveParams(rt ResourceType) *PriceCurveParams {
	return &params.resources[rt].curve
}

// Decay returns the pool decay parameters of the given resource
func (params *ResourceParams) Decay(rt ResourceType) *DecayParams {
	return &params.resources[rt].dynamics.decay
}

// ResourceUnit returns the usage scaling unit of the given resource
func (params *ResourceParams) ResourceUnit(rt ResourceType) int64 {
	return params.resources[rt].dynamics.resourceUnit
}

// BudgetPerTimeUnit returns the pool budget of the given resource
func (params *ResourceParams) BudgetPerTimeUnit(rt ResourceType) *big.Int {
	return params.resources[rt].dynamics.budgetPerTimeUnit
}

// PoolEq returns the configured equilibrium pool size of the given resource
func (params *ResourceParams) PoolEq(rt ResourceType) *big.Int {
	return params.resources[rt].dynamics.poolEq
}

// MaxPoolSize returns the configured maximum pool size of the given resource
func (params *ResourceParams) MaxPoolSize(rt ResourceType) *big.Int {
	return params.resources[rt].dynamics.maxPoolSize
}
