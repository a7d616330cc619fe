package types

import "log/slog"

// Address identifies a participant, the administrator, the provider or the
// vault itself in the eyes of the token collaborators.
type Address string

// RewardKind tags a RewardDescriptor with the payout collaborator that
// services it. The set is closed: it mirrors the transfer capabilities the
// vault is constructed with.
type RewardKind byte

const (
	// RewardFungible pays out AmountOrID units of the fungible reward token.
	RewardFungible RewardKind = iota + 1
	// RewardNonFungibleA transfers token AmountOrID of the first NFT collection.
	RewardNonFungibleA
	// RewardNonFungibleB transfers token AmountOrID of the second NFT collection.
	RewardNonFungibleB
)

func (k RewardKind) String() string {
	switch k {
	case RewardFungible:
		return "fungible"
	case RewardNonFungibleA:
		return "nft-a"
	case RewardNonFungibleB:
		return "nft-b"
	}
	return "unknown"
}

// Valid reports whether k is a member of the closed kind set.
func (k RewardKind) Valid() bool {
	return k >= RewardFungible && k <= RewardNonFungibleB
}

// RewardDescriptor is one slot of the pool: a token quantity when Kind is
// RewardFungible, a token identifier otherwise. A zero AmountOrID is a legal
// reward value; absence of a reward is always expressed as (descriptor, ok)
// pairs or map membership, never as a zero-valued descriptor.
type RewardDescriptor struct {
	Kind       RewardKind `json:"kind" yaml:"kind"`
	AmountOrID uint64     `json:"amount_or_id" yaml:"amount_or_id"`
}

// VaultConfig is the mutable configuration record owned by the ledger. All
// fields change only through administrator-gated setters and are read at the
// start of every operation.
type VaultConfig struct {
	Admin     Address `json:"admin" yaml:"admin"`
	Provider  Address `json:"provider" yaml:"provider"`
	FeeAmount uint64  `json:"fee_amount" yaml:"fee_amount"`
	Salt      uint64  `json:"salt" yaml:"salt"`
	Paused    bool    `json:"paused" yaml:"paused"`
}

// VaultSnapshot captures the full durable state of the vault.
type VaultSnapshot struct {
	Catalog       []RewardDescriptor           `json:"catalog"`
	Pending       map[Address]RewardDescriptor `json:"pending"`
	Config        VaultConfig                  `json:"config"`
	FeeBalance    uint64                       `json:"fee_balance"`
	LastRequestID uint64                       `json:"last_request_id"`
}

// ConfigCatalog is the seed catalog loaded at construction.
type ConfigCatalog struct {
	Catalog []RewardDescriptor `json:"catalog" yaml:"catalog"`
}

// LogType defines the type of a WAL log entry.
type LogType byte

const (
	LogTypeDraw LogType = iota + 1
	LogTypeRedeem
	LogTypeAddReward
	LogTypeRemoveReward
	LogTypeSetConfig
	LogTypePause
	LogTypeWithdraw
	LogTypeSnapshot
	LogTypeRotate
)

// LogError encodes the failure class of a logged operation.
type LogError byte

const (
	ErrorNone LogError = iota
	ErrorPoolEmpty
	ErrorAlreadyPending
	ErrorNoPending
	ErrorPaused
	ErrorFeeTransfer
	ErrorPayoutTransfer
)

// ConfigField names the configuration slot touched by a set-config entry.
type ConfigField string

const (
	FieldSalt     ConfigField = "salt"
	FieldProvider ConfigField = "provider"
	FieldFee      ConfigField = "fee"
)

// WalLogEntry is implemented by every WAL entry type.
type WalLogEntry interface {
	GetType() LogType
}

// WalLogEntryBase carries the fields shared by all WAL entries.
type WalLogEntryBase struct {
	Type  LogType  `json:"type"`
	Error LogError `json:"error,omitempty"`
}

func (b *WalLogEntryBase) GetType() LogType { return b.Type }

// WalLogDrawItem records one draw attempt. Index and Reward are only
// meaningful when Success is true; replay re-executes the removal at Index so
// the swap-to-last compaction is reproduced exactly.
type WalLogDrawItem struct {
	WalLogEntryBase
	RequestID   uint64           `json:"request_id"`
	Participant Address          `json:"participant"`
	Index       int              `json:"index"`
	Reward      RewardDescriptor `json:"reward,omitempty"`
	Fee         uint64           `json:"fee,omitempty"`
	Success     bool             `json:"success"`
}

// WalLogRedeemItem records one redeem attempt.
type WalLogRedeemItem struct {
	WalLogEntryBase
	RequestID   uint64           `json:"request_id"`
	Participant Address          `json:"participant"`
	Reward      RewardDescriptor `json:"reward,omitempty"`
	Success     bool             `json:"success"`
}

// WalLogAddItem records an administrator append to the pool.
type WalLogAddItem struct {
	WalLogEntryBase
	Reward RewardDescriptor `json:"reward"`
}

// WalLogRemoveItem records an administrator removal from the pool.
type WalLogRemoveItem struct {
	WalLogEntryBase
	Index  int              `json:"index"`
	Reward RewardDescriptor `json:"reward"`
}

// WalLogSetConfigItem records a configuration mutation.
type WalLogSetConfigItem struct {
	WalLogEntryBase
	Field ConfigField `json:"field"`
	Value uint64      `json:"value,omitempty"`
	Text  string      `json:"text,omitempty"`
}

// WalLogPauseItem records a pause flag toggle.
type WalLogPauseItem struct {
	WalLogEntryBase
	Paused bool `json:"paused"`
}

// WalLogWithdrawItem records a fee-balance sweep to the administrator.
type WalLogWithdrawItem struct {
	WalLogEntryBase
	Amount uint64 `json:"amount"`
}

// WalLogSnapshotItem marks that a snapshot was taken at Path. Entries before
// this point are subsumed by the snapshot during recovery.
type WalLogSnapshotItem struct {
	WalLogEntryBase
	Path string `json:"path"`
}

// WalLogRotateItem marks a WAL file rotation.
type WalLogRotateItem struct {
	WalLogEntryBase
	OldPath string `json:"old_path"`
	NewPath string `json:"new_path"`
}

// WAL is a buffered write-ahead log. Entries accumulate in memory until Flush
// writes them to the underlying storage.
type WAL interface {
	Log(entry WalLogEntry) error
	Flush() error
	Reset()
	Size() (int64, error)
	Close() error
	Rotate(path string) error
	SeqNo() uint64
}

// LogFormatter encodes and decodes WAL entries.
type LogFormatter interface {
	Encode(items []WalLogEntry) ([]byte, error)
	Decode(data []byte) ([]WalLogEntry, error)
}

// WALHeader is the fixed-size header at the start of every WAL file.
type WALHeader struct {
	Magic      uint32
	Version    uint16
	Status     uint16
	SeqNo      uint64
	DataLength uint64
}

const (
	WALMagic      uint32 = 0x52564C54 // "RVLT"
	WALVersion1   uint16 = 1
	WALHeaderSize        = 24
	WALBaseName          = "vault.wal"
)

const (
	WALStatusOpen uint16 = iota
	WALStatusClosed
)

// Storage abstracts the byte sink behind the WAL.
type Storage interface {
	Write(data []byte) error
	CanWrite(size int) bool
	Size() (int64, error)
	Flush() error
	Close() error
	Rotate(newPath string) error
}

// FungibleToken is the fungible transfer capability. TransferFrom moves amount
// units from one address to another and fails on insufficient balance or
// allowance; the vault never inspects balances beyond what BalanceOf reports.
type FungibleToken interface {
	TransferFrom(from, to Address, amount uint64) error
	BalanceOf(addr Address) uint64
}

// NonFungibleToken is the non-fungible transfer capability. TransferFrom moves
// ownership of tokenID and fails when from is not the owner or the caller is
// not approved.
type NonFungibleToken interface {
	TransferFrom(from, to Address, tokenID uint64) error
	OwnerOf(tokenID uint64) (Address, bool)
}

// Utils provides ambient services to the vault runtime: logging and the
// naming scheme for WAL and snapshot files.
type Utils interface {
	GetLogger() *slog.Logger
	GenSnapshotPath() *string
	GenRotatedWALPath() *string
	GetWALFiles() ([]string, error)
	GenNextWALPath() (string, uint64, error)
}

// Context carries the vault's collaborators for dependency injection.
type Context struct {
	WAL   WAL
	Utils Utils
}

// Error
type errString string

func (e errString) Error() string {
	return string(e)
}

const (
	ErrPaused          = errString("vault is paused")
	ErrAlreadyPending  = errString("participant already has a pending reward")
	ErrEmptyPool       = errString("reward pool is empty")
	ErrIndexOutOfRange = errString("reward index out of range")
	ErrNoPendingReward = errString("no pending reward to redeem")
	ErrFeeTransfer     = errString("fee transfer failed")
	ErrPayoutTransfer  = errString("payout transfer failed")
	ErrUnauthorized    = errString("caller is not the administrator")
	ErrInvalidKind     = errString("invalid reward kind")
	ErrWALFull         = errString("wal storage is full")
	ErrPendingFlush    = errString("wal buffer not empty, flush before rotate")
	ErrShuttingDown    = errString("request cancelled: vault shutting down")
)
