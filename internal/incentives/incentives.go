// Package incentives computes PUMP token rewards accrued from trading volume.
//
// Rewards are kept in day buckets. A day's reward becomes claimable only after
// the user's activity has moved into a later day; until then it is reported
// by CurrentDayTokens as an unfinalized projection.
package incentives

import (
	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
)

// window is the validated day window of a global accumulator.
type window struct {
	global         *pumpfun.GlobalVolumeAccumulator
	currentDay     int64
	lastUpdatedDay int64
	endDay         int64
}

// openWindow returns false for an unconfigured window or timestamps before its start.
func openWindow(global *pumpfun.GlobalVolumeAccumulator, user *pumpfun.UserVolumeAccumulator, now int64) (window, bool) {
	if global.StartTime == 0 || global.EndTime == 0 || global.SecondsInADay == 0 {
		return window{}, false
	}
	if now < global.StartTime || user.LastUpdateTimestamp < global.StartTime || global.EndTime < global.StartTime {
		return window{}, false
	}
	return window{
		global:         global,
		currentDay:     (now - global.StartTime) / global.SecondsInADay,
		lastUpdatedDay: (user.LastUpdateTimestamp - global.StartTime) / global.SecondsInADay,
		endDay:         (global.EndTime - global.StartTime) / global.SecondsInADay,
	}, true
}

// dayReward returns volume * supply[day] / solVolumes[day]. Days outside the
// stored buckets and days without volume yield 0.
func (w window) dayReward(volume uint64, day int64) (uint64, error) {
	if day < 0 || day >= pumpfun.VolumeWindowDays {
		return 0, nil
	}
	solVolume := w.global.SolVolumes[day]
	if solVolume == 0 {
		return 0, nil
	}
	return pumpfun.MulDiv(volume, w.global.TotalTokenSupply[day], solVolume)
}

// TotalUnclaimedTokens returns the stored unclaimed balance plus the reward of
// the last day the user traded in, once that day is over.
func TotalUnclaimedTokens(global *pumpfun.GlobalVolumeAccumulator, user *pumpfun.UserVolumeAccumulator, now int64) (uint64, error) {
	stored := user.TotalUnclaimedTokens

	w, ok := openWindow(global, user, now)
	if !ok {
		return stored, nil
	}
	if w.currentDay <= w.lastUpdatedDay || w.lastUpdatedDay > w.endDay {
		return stored, nil
	}

	reward, err := w.dayReward(user.CurrentSolVolume, w.lastUpdatedDay)
	if err != nil {
		return 0, err
	}
	total := stored + reward
	if total < stored {
		return 0, pumpfun.ErrOverflow
	}
	return total, nil
}

// CurrentDayTokens returns the projected reward of the day in progress. It is
// 0 outside the window or when the user has not traded yet today.
func CurrentDayTokens(global *pumpfun.GlobalVolumeAccumulator, user *pumpfun.UserVolumeAccumulator, now int64) (uint64, error) {
	if now > global.EndTime {
		return 0, nil
	}
	w, ok := openWindow(global, user, now)
	if !ok || w.currentDay != w.lastUpdatedDay {
		return 0, nil
	}
	return w.dayReward(user.CurrentSolVolume, w.currentDay)
}
