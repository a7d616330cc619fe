package replay

import (
	"github.com/rewardvault/reward-vault-go/internal/ledger"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

// ApplyLog applies a single log entry to the ledger state. Failed operations
// were logged for the audit trail only and mutate nothing on replay.
func ApplyLog(l *ledger.Ledger, log types.WalLogEntry) {
	switch v := log.(type) {
	case *types.WalLogDrawItem:
		if v.Success {
			l.ApplyDrawLog(v.Participant, v.Index, v.Reward, v.Fee)
		}
	case *types.WalLogRedeemItem:
		if v.Success {
			l.ApplyRedeemLog(v.Participant)
		}
	case *types.WalLogAddItem:
		l.ApplyAddLog(v.Reward)
	case *types.WalLogRemoveItem:
		l.ApplyRemoveLog(v.Index)
	case *types.WalLogSetConfigItem:
		l.ApplySetConfigLog(v.Field, v.Value, v.Text)
	case *types.WalLogPauseItem:
		l.ApplyPauseLog(v.Paused)
	case *types.WalLogWithdrawItem:
		l.ApplyWithdrawLog(v.Amount)
		// Snapshot and rotate markers do not touch ledger state.
	}
}

// ReplayLogs applies a series of log entries to the ledger state.
func ReplayLogs(l *ledger.Ledger, logs []types.WalLogEntry) {
	for _, item := range logs {
		ApplyLog(l, item)
	}
}
