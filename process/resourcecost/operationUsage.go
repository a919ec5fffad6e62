package resourcecost

import (
	"fmt"

	"github.com/steemit/rc-engine-go/data/operation"
)

// operationUsageCounter accumulates the incremental resource usage of the
// operations it is driven over: created state bytes, execution time units and
// the market / subsidized account counters. One instance accounts for exactly
// one transaction
type operationUsageCounter struct {
	sizes     *stateObjectSizes
	execTimes *operationExecTimes

	stateBytes    int64
	executionTime int64
	marketOps     int64
	newAccountOps int64
}

func newOperationUsageCounter(sizes *stateObjectSizes, execTimes *operationExecTimes) *operationUsageCounter {
	return &operationUsageCounter{
		sizes:     sizes,
		execTimes: execTimes,
	}
}

// authorityByteCount returns the state bytes created by persisting one authority
func (counter *operationUsageCounter) authorityByteCount(auth *operation.Authority) int64 {
	return counter.sizes.authorityBase +
		counter.sizes.authorityAccountMember*int64(len(auth.AccountAuths)) +
		counter.sizes.authorityKeyMember*int64(len(auth.KeyAuths))
}

// accountCreationByteCount returns the state bytes created by registering a new
// account with the three standard authorities
func (counter *operationUsageCounter) accountCreationByteCount(owner *operation.Authority, active *operation.Authority, posting *operation.Authority) int64 {
	return counter.sizes.accountBase +
		counter.sizes.accountAuthorityBase +
		counter.authorityByteCount(owner) +
		counter.authorityByteCount(active) +
		counter.authorityByteCount(posting)
}

// countOperation dispatches one operation variant to its accounting rule.
// Explicitly ignored variants (virtual ledger events and the legacy set) are
// an enumerated case, distinct from an unknown variant which is an error
func (counter *operationUsageCounter) countOperation(op operation.Operation) error {
	switch typedOp := op.(type) {
	case *operation.AccountCreate:
		counter.stateBytes += counter.accountCreationByteCount(&typedOp.Owner, &typedOp.Active, &typedOp.Posting)
		counter.executionTime += counter.execTimes.accountCreate
	case *operation.AccountCreateWithDelegation:
		counter.stateBytes += counter.accountCreationByteCount(&typedOp.Owner, &typedOp.Active, &typedOp.Posting) +
			counter.sizes.vestingDelegationBase
		counter.executionTime += counter.execTimes.accountCreateWithDelegation
	case *operation.CreateClaimedAccount:
		counter.stateBytes += counter.accountCreationByteCount(&typedOp.Owner, &typedOp.Active, &typedOp.Posting)
		counter.executionTime += counter.execTimes.createClaimedAccount
	case *operation.ClaimAccount:
		counter.executionTime += counter.execTimes.claimAccount

		feeAmount, err := typedOp.Fee.AmountBig()
		if err != nil {
			return err
		}
		if feeAmount.Sign() == 0 {
			counter.newAccountOps++
		}
	case *operation.AccountUpdate:
		counter.executionTime += counter.execTimes.accountUpdate
	case *operation.Vote:
		counter.stateBytes += counter.sizes.commentVoteBase
		counter.executionTime += counter.execTimes.vote
	case *operation.Comment:
		counter.stateBytes += counter.sizes.commentBase +
			counter.sizes.commentPermlinkChar*int64(len(typedOp.Permlink)) +
			counter.sizes.commentParentPermlinkChar*int64(len(typedOp.ParentPermlink))
		counter.executionTime += counter.execTimes.comment
	case *operation.CommentOptions:
		for _, extension := range typedOp.Extensions {
			err := counter.countCommentOptionsExtension(extension)
			if err != nil {
				return err
			}
		}
		counter.executionTime += counter.execTimes.commentOptions
	case *operation.DeleteComment:
		counter.executionTime += counter.execTimes.deleteComment
	case *operation.Transfer:
		counter.executionTime += counter.execTimes.transfer
		counter.marketOps++
	case *operation.TransferToVesting:
		counter.executionTime += counter.execTimes.transferToVesting
		counter.marketOps++
	case *operation.TransferToSavings:
		counter.executionTime += counter.execTimes.transferToSavings
	case *operation.TransferFromSavings:
		counter.stateBytes += counter.sizes.savingsWithdrawByte
		counter.executionTime += counter.execTimes.transferFromSavings
	case *operation.CancelTransferFromSavings:
		counter.executionTime += counter.execTimes.cancelTransferFromSavings
	case *operation.WithdrawVesting:
		counter.executionTime += counter.execTimes.withdrawVesting
	case *operation.SetWithdrawVestingRoute:
		counter.stateBytes += counter.sizes.withdrawVestingRouteBase
		counter.executionTime += counter.execTimes.setWithdrawVestingRoute
	case *operation.DelegateVestingShares:
		counter.stateBytes += max(counter.sizes.vestingDelegationBase, counter.sizes.vestingDelegationExpirationBase)
		counter.executionTime += counter.execTimes.delegateVestingShares
	case *operation.WitnessUpdate:
		counter.stateBytes += counter.sizes.witnessBase +
			counter.sizes.witnessURLChar*int64(len(typedOp.URL))
		counter.executionTime += counter.execTimes.witnessUpdate
	case *operation.WitnessSetProperties:
		counter.executionTime += counter.execTimes.witnessSetProperties
	case *operation.AccountWitnessVote:
		counter.stateBytes += counter.sizes.witnessVoteBase
		counter.executionTime += counter.execTimes.accountWitnessVote
	case *operation.AccountWitnessProxy:
		counter.executionTime += counter.execTimes.accountWitnessProxy
	case *operation.Convert:
		counter.stateBytes += counter.sizes.convertRequestBase
		counter.executionTime += counter.execTimes.convert
	case *operation.LimitOrderCreate:
		// fill-or-kill orders never persist, so they create no state
		if !typedOp.FillOrKill {
			counter.stateBytes += counter.sizes.limitOrderBase
		}
		counter.executionTime += counter.execTimes.limitOrderCreate
		counter.marketOps++
	case *operation.LimitOrderCreate2:
		if !typedOp.FillOrKill {
			counter.stateBytes += counter.sizes.limitOrderBase
		}
		counter.executionTime += counter.execTimes.limitOrderCreate2
		counter.marketOps++
	case *operation.LimitOrderCancel:
		counter.executionTime += counter.execTimes.limitOrderCancel
	case *operation.FeedPublish:
		counter.executionTime += counter.execTimes.feedPublish
	case *operation.EscrowTransfer:
		counter.stateBytes += counter.sizes.escrowBase
		counter.executionTime += counter.execTimes.escrowTransfer
	case *operation.EscrowApprove:
		counter.executionTime += counter.execTimes.escrowApprove
	case *operation.EscrowDispute:
		counter.executionTime += counter.execTimes.escrowDispute
	case *operation.EscrowRelease:
		counter.executionTime += counter.execTimes.escrowRelease
	case *operation.RequestAccountRecovery:
		counter.stateBytes += counter.sizes.accountRecoveryRequestBase
		counter.executionTime += counter.execTimes.requestAccountRecovery
	case *operation.ChangeRecoveryAccount:
		counter.executionTime += counter.execTimes.changeRecoveryAccount
	case *operation.DeclineVotingRights:
		counter.stateBytes += counter.sizes.declineVotingRightsRequestBase
		counter.executionTime += counter.execTimes.declineVotingRights
	case *operation.ClaimRewardBalance:
		counter.executionTime += counter.execTimes.claimRewardBalance
	case *operation.ClaimRewardBalance2:
		counter.executionTime += counter.execTimes.claimRewardBalance2
	case *operation.Custom:
		counter.executionTime += counter.execTimes.custom
	case *operation.CustomJSON:
		counter.executionTime += counter.execTimes.customJSON
	case *operation.CustomBinary:
		counter.executionTime += counter.execTimes.customBinary
	case *operation.SmtSetup:
		counter.executionTime += counter.execTimes.smtSetup
	case *operation.SmtCapReveal:
		counter.executionTime += counter.execTimes.smtCapReveal
	case *operation.SmtRefund:
		counter.executionTime += counter.execTimes.smtRefund
	case *operation.SmtSetupEmissions:
		counter.executionTime += counter.execTimes.smtSetupEmissions
	case *operation.SmtSetSetupParameters:
		counter.executionTime += counter.execTimes.smtSetSetupParameters
	case *operation.SmtSetRuntimeParameters:
		counter.executionTime += counter.execTimes.smtSetRuntimeParameters
	case *operation.SmtCreate:
		counter.executionTime += counter.execTimes.smtCreate
	case *operation.RecoverAccount,
		*operation.Pow,
		*operation.Pow2,
		*operation.ReportOverProduction,
		*operation.ResetAccount,
		*operation.SetResetAccount,
		*operation.FillConvertRequest,
		*operation.AuthorReward,
		*operation.CurationReward,
		*operation.CommentReward,
		*operation.LiquidityReward,
		*operation.Interest,
		*operation.FillVestingWithdraw,
		*operation.FillOrder,
		*operation.ShutdownWitness,
		*operation.FillTransferFromSavings,
		*operation.Hardfork,
		*operation.CommentPayoutUpdate,
		*operation.ReturnVestingDelegation,
		*operation.CommentBenefactorReward,
		*operation.ProducerReward,
		*operation.ClearNullAccountBalance:
		// explicitly ignored: virtual ledger events and the legacy set consume no credits
	default:
		return fmt.Errorf("%w: %s", operation.ErrUnknownOperation, op.OperationName())
	}

	return nil
}

func (counter *operationUsageCounter) countCommentOptionsExtension(extension operation.CommentOptionsExtension) error {
	switch typedExtension := extension.(type) {
	case *operation.CommentPayoutBeneficiaries:
		counter.stateBytes += counter.sizes.commentBeneficiariesMember * int64(len(typedExtension.Beneficiaries))
	case *operation.AllowedVoteAssets:
		// explicitly ignored
	default:
		return fmt.Errorf("%w: %s", operation.ErrUnknownExtension, extension.ExtensionName())
	}

	return nil
}
