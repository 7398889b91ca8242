// =============================
// File: internal/incentives/calculator.go
// =============================
package incentives

import (
	"github.com/jonboulle/clockwork"

	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
)

// ProgramAccounts is the incentive state of one user in one program.
// Nil accounts mean the account does not exist on chain.
type ProgramAccounts struct {
	Global *pumpfun.GlobalVolumeAccumulator
	User   *pumpfun.UserVolumeAccumulator
}

func (a ProgramAccounts) missing() bool {
	return a.Global == nil || a.User == nil
}

// UserStats is the combined volume ledger of a user across programs.
type UserStats struct {
	TotalUnclaimedTokens uint64
	TotalClaimedTokens   uint64
	CurrentSolVolume     uint64
}

// TotalStats sums the stored balances of the given user accumulators.
// Nil accumulators count as zero.
func TotalStats(users ...*pumpfun.UserVolumeAccumulator) (UserStats, error) {
	var stats UserStats
	for _, u := range users {
		if u == nil {
			continue
		}
		var err error
		if stats.TotalUnclaimedTokens, err = add(stats.TotalUnclaimedTokens, u.TotalUnclaimedTokens); err != nil {
			return UserStats{}, err
		}
		if stats.TotalClaimedTokens, err = add(stats.TotalClaimedTokens, u.TotalClaimedTokens); err != nil {
			return UserStats{}, err
		}
		if stats.CurrentSolVolume, err = add(stats.CurrentSolVolume, u.CurrentSolVolume); err != nil {
			return UserStats{}, err
		}
	}
	return stats, nil
}

func add(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, pumpfun.ErrOverflow
	}
	return sum, nil
}

// Calculator evaluates accruals at the time of its clock.
type Calculator struct {
	clock clockwork.Clock
}

// NewCalculator returns a calculator reading time from clock. A nil clock
// means wall time.
func NewCalculator(clock clockwork.Clock) *Calculator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Calculator{clock: clock}
}

// Now returns the current unix timestamp in seconds.
func (c *Calculator) Now() int64 {
	return c.clock.Now().Unix()
}

// Unclaimed sums TotalUnclaimedTokens over programs. Programs with missing accounts contribute 0.
func (c *Calculator) Unclaimed(programs ...ProgramAccounts) (uint64, error) {
	return c.sum(programs, TotalUnclaimedTokens)
}

// CurrentDay sums CurrentDayTokens over programs.
func (c *Calculator) CurrentDay(programs ...ProgramAccounts) (uint64, error) {
	return c.sum(programs, CurrentDayTokens)
}

type accrualFunc func(*pumpfun.GlobalVolumeAccumulator, *pumpfun.UserVolumeAccumulator, int64) (uint64, error)

func (c *Calculator) sum(programs []ProgramAccounts, fn accrualFunc) (uint64, error) {
	now := c.Now()
	var total uint64
	for _, p := range programs {
		if p.missing() {
			continue
		}
		v, err := fn(p.Global, p.User, now)
		if err != nil {
			return 0, err
		}
		if total, err = add(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}
