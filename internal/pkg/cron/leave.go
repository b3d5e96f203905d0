package cron

import (
	"context"
	"log/slog"
)

// BalanceResetter restores every employee's leave counters.
type BalanceResetter interface {
	ResetLeaveBalances(ctx context.Context) (int64, error)
}

type LeaveJobs struct {
	resetter BalanceResetter
}

func NewLeaveJobs(resetter BalanceResetter) *LeaveJobs {
	return &LeaveJobs{resetter: resetter}
}

// RegisterJobs adds the balance reset job. An empty schedule disables it.
func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler, resetSchedule string) error {
	if resetSchedule == "" {
		slog.Info("Leave balance reset job disabled")
		return nil
	}
	return scheduler.AddJob("reset_leave_balances", resetSchedule, j.ResetLeaveBalances)
}

func (j *LeaveJobs) ResetLeaveBalances(ctx context.Context) error {
	slog.Info("Cron: Starting leave balance reset job")

	count, err := j.resetter.ResetLeaveBalances(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: Leave balances reset", "employees", count)
	return nil
}
