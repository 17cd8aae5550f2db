package transaction

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fee constants. The per-bank fee columns exist in the data model but the
// calculation reads these values; bank reporting uses the same constants.
var (
	FlatFee    = decimal.NewFromInt(10)
	PercentFee = decimal.NewFromFloat(0.05)
)

// Strategy names accepted by PolicyFromName.
const (
	StrategyFlat            = "flat"
	StrategyFlatPlusPercent = "flatPlusPercent"
)

// FeePolicy decides how much money an operation actually moves and what
// threshold the funds pre-check compares the current balance against.
type FeePolicy interface {
	// Name reports the strategy name this policy was selected by.
	Name() string

	// DepositCredit returns the amount credited for a requested deposit.
	DepositCredit(amount decimal.Decimal) decimal.Decimal

	// WithdrawalDebit returns the amount debited for a requested withdrawal
	// and the threshold the balance must meet for the operation to proceed.
	WithdrawalDebit(amount decimal.Decimal) (debit, required decimal.Decimal)

	// TransferDebit returns the amount debited from the source account and
	// the threshold the source balance must meet. The destination is always
	// credited the raw requested amount.
	TransferDebit(amount decimal.Decimal) (debit, required decimal.Decimal)
}

// FlatPlusPercentPolicy recomputes flat + percentage fees inline per
// operation. The withdrawal funds check compares against the raw requested
// amount while the transfer check includes the fee; the asymmetry is kept as
// observed.
type FlatPlusPercentPolicy struct{}

func (FlatPlusPercentPolicy) Name() string { return StrategyFlatPlusPercent }

// DepositCredit credits (amount - flat) plus 5% of that net.
func (FlatPlusPercentPolicy) DepositCredit(amount decimal.Decimal) decimal.Decimal {
	net := amount.Sub(FlatFee)
	return net.Add(net.Mul(PercentFee))
}

// WithdrawalDebit debits (amount + flat) plus 5% of that gross. The funds
// check only covers the raw amount.
func (FlatPlusPercentPolicy) WithdrawalDebit(amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	gross := amount.Add(FlatFee)
	return gross.Add(gross.Mul(PercentFee)), amount
}

// TransferDebit debits (amount + flat) plus 5% of that gross from the source
// and requires the source balance to cover the full debit.
func (FlatPlusPercentPolicy) TransferDebit(amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	gross := amount.Add(FlatFee)
	debit := gross.Add(gross.Mul(PercentFee))
	return debit, debit
}

// FlatPolicy moves the raw requested amount on every operation; fees surface
// only through the reporting scan over recorded transactions.
type FlatPolicy struct{}

func (FlatPolicy) Name() string { return StrategyFlat }

func (FlatPolicy) DepositCredit(amount decimal.Decimal) decimal.Decimal { return amount }

func (FlatPolicy) WithdrawalDebit(amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	return amount, amount
}

func (FlatPolicy) TransferDebit(amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	return amount, amount
}

// PolicyFromName maps a configured strategy name to a FeePolicy. The empty
// name selects the flat-plus-percent default.
func PolicyFromName(name string) (FeePolicy, error) {
	switch name {
	case "", StrategyFlatPlusPercent:
		return FlatPlusPercentPolicy{}, nil
	case StrategyFlat:
		return FlatPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown fee strategy %q", name)
	}
}

// Fee is the reporting-side fee attributed to a recorded transaction:
// flat fee plus 5% of the signed stored amount. Negative amounts therefore
// reduce a running total.
func Fee(amount decimal.Decimal) decimal.Decimal {
	return FlatFee.Add(amount.Mul(PercentFee))
}
