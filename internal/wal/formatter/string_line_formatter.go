package formatter

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/rewardvault/reward-vault-go/internal/types"
)

// StringLineFormatter is a compact CSV-ish line codec. It only covers the
// entry types the hot path emits; snapshot and rotate markers round-trip too
// so recovery works on either formatter.
type StringLineFormatter struct{}

var _ types.LogFormatter = (*StringLineFormatter)(nil)

func NewStringLineFormatter() *StringLineFormatter {
	return &StringLineFormatter{}
}

func (f *StringLineFormatter) Encode(items []types.WalLogEntry) ([]byte, error) {
	var sb strings.Builder
	for _, item := range items {
		switch v := item.(type) {
		case *types.WalLogDrawItem:
			sb.WriteString(fmt.Sprintf("%d,%d,%s,%d,%d,%d,%d,%d,%t\n",
				v.GetType(), v.RequestID, v.Participant, v.Index, v.Reward.Kind, v.Reward.AmountOrID, v.Fee, v.Error, v.Success))
		case *types.WalLogRedeemItem:
			sb.WriteString(fmt.Sprintf("%d,%d,%s,%d,%d,%d,%t\n",
				v.GetType(), v.RequestID, v.Participant, v.Reward.Kind, v.Reward.AmountOrID, v.Error, v.Success))
		case *types.WalLogAddItem:
			sb.WriteString(fmt.Sprintf("%d,%d,%d\n", v.GetType(), v.Reward.Kind, v.Reward.AmountOrID))
		case *types.WalLogRemoveItem:
			sb.WriteString(fmt.Sprintf("%d,%d,%d,%d\n", v.GetType(), v.Index, v.Reward.Kind, v.Reward.AmountOrID))
		case *types.WalLogSetConfigItem:
			sb.WriteString(fmt.Sprintf("%d,%s,%d,%s\n", v.GetType(), v.Field, v.Value, v.Text))
		case *types.WalLogPauseItem:
			sb.WriteString(fmt.Sprintf("%d,%t\n", v.GetType(), v.Paused))
		case *types.WalLogWithdrawItem:
			sb.WriteString(fmt.Sprintf("%d,%d\n", v.GetType(), v.Amount))
		case *types.WalLogSnapshotItem:
			sb.WriteString(fmt.Sprintf("%d,%s\n", v.GetType(), v.Path))
		case *types.WalLogRotateItem:
			sb.WriteString(fmt.Sprintf("%d,%s,%s\n", v.GetType(), v.OldPath, v.NewPath))
		}
	}
	return []byte(sb.String()), nil
}

func (f *StringLineFormatter) Decode(data []byte) ([]types.WalLogEntry, error) {
	var items []types.WalLogEntry
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		parts := strings.Split(line, ",")
		typeVal, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid type in WAL log: %s", parts[0])
		}

		entry, err := decodeLine(types.LogType(typeVal), parts, line)
		if err != nil {
			return nil, err
		}
		items = append(items, entry)
	}
	return items, nil
}

func decodeLine(logType types.LogType, parts []string, line string) (types.WalLogEntry, error) {
	switch logType {
	case types.LogTypeDraw:
		if len(parts) != 9 {
			return nil, fmt.Errorf("invalid WAL log format for draw: %s", line)
		}
		requestID, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, err
		}
		index, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, err
		}
		kind, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseUint(parts[5], 10, 64)
		if err != nil {
			return nil, err
		}
		fee, err := strconv.ParseUint(parts[6], 10, 64)
		if err != nil {
			return nil, err
		}
		errorVal, err := strconv.Atoi(parts[7])
		if err != nil {
			return nil, err
		}
		success, err := strconv.ParseBool(parts[8])
		if err != nil {
			return nil, err
		}
		return &types.WalLogDrawItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: logType, Error: types.LogError(errorVal)},
			RequestID:       requestID,
			Participant:     types.Address(parts[2]),
			Index:           index,
			Reward:          types.RewardDescriptor{Kind: types.RewardKind(kind), AmountOrID: amount},
			Fee:             fee,
			Success:         success,
		}, nil
	case types.LogTypeRedeem:
		if len(parts) != 7 {
			return nil, fmt.Errorf("invalid WAL log format for redeem: %s", line)
		}
		requestID, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, err
		}
		kind, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseUint(parts[4], 10, 64)
		if err != nil {
			return nil, err
		}
		errorVal, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, err
		}
		success, err := strconv.ParseBool(parts[6])
		if err != nil {
			return nil, err
		}
		return &types.WalLogRedeemItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: logType, Error: types.LogError(errorVal)},
			RequestID:       requestID,
			Participant:     types.Address(parts[2]),
			Reward:          types.RewardDescriptor{Kind: types.RewardKind(kind), AmountOrID: amount},
			Success:         success,
		}, nil
	case types.LogTypeAddReward:
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid WAL log format for add: %s", line)
		}
		kind, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return nil, err
		}
		return &types.WalLogAddItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: logType},
			Reward:          types.RewardDescriptor{Kind: types.RewardKind(kind), AmountOrID: amount},
		}, nil
	case types.LogTypeRemoveReward:
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid WAL log format for remove: %s", line)
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, err
		}
		kind, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseUint(parts[3], 10, 64)
		if err != nil {
			return nil, err
		}
		return &types.WalLogRemoveItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: logType},
			Index:           index,
			Reward:          types.RewardDescriptor{Kind: types.RewardKind(kind), AmountOrID: amount},
		}, nil
	case types.LogTypeSetConfig:
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid WAL log format for set-config: %s", line)
		}
		value, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return nil, err
		}
		return &types.WalLogSetConfigItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: logType},
			Field:           types.ConfigField(parts[1]),
			Value:           value,
			Text:            parts[3],
		}, nil
	case types.LogTypePause:
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid WAL log format for pause: %s", line)
		}
		paused, err := strconv.ParseBool(parts[1])
		if err != nil {
			return nil, err
		}
		return &types.WalLogPauseItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: logType},
			Paused:          paused,
		}, nil
	case types.LogTypeWithdraw:
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid WAL log format for withdraw: %s", line)
		}
		amount, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, err
		}
		return &types.WalLogWithdrawItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: logType},
			Amount:          amount,
		}, nil
	case types.LogTypeSnapshot:
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid WAL log format for snapshot: %s", line)
		}
		return &types.WalLogSnapshotItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: logType},
			Path:            parts[1],
		}, nil
	case types.LogTypeRotate:
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid WAL log format for rotate: %s", line)
		}
		return &types.WalLogRotateItem{
			WalLogEntryBase: types.WalLogEntryBase{Type: logType},
			OldPath:         parts[1],
			NewPath:         parts[2],
		}, nil
	}
	return nil, fmt.Errorf("unknown log type: %d", logType)
}
