package credit

import (
	"context"
	"errors"
	"fmt"

	accountRepo "quickfind/database/repository/account"
)

// ErrInsufficientCredits is returned when the account has no credits left.
var ErrInsufficientCredits = errors.New("insufficient credits")

// Gate meters QuickFind usage against the per-account credit counter owned
// by the account subsystem. Charging is a precondition of search and confirm.
type Gate interface {
	Charge(ctx context.Context, accountID string) error
}

// AccountGate implements Gate on top of the account repository.
type AccountGate struct {
	Repo accountRepo.AccountRepository
}

func (g *AccountGate) Charge(ctx context.Context, accountID string) error {
	if err := g.Repo.DecrementCredits(accountID); err != nil {
		if errors.Is(err, accountRepo.ErrInsufficientCredits) {
			return fmt.Errorf("account %s: %w", accountID, ErrInsufficientCredits)
		}
		return fmt.Errorf("credit charge failed: %w", err)
	}
	return nil
}
