// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.8
// 	protoc        (unknown)
// source: vault.proto

package generated

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RewardKind int32

const (
	RewardKind_REWARD_KIND_UNSPECIFIED    RewardKind = 0
	RewardKind_REWARD_KIND_FUNGIBLE       RewardKind = 1
	RewardKind_REWARD_KIND_NON_FUNGIBLE_A RewardKind = 2
	RewardKind_REWARD_KIND_NON_FUNGIBLE_B RewardKind = 3
)

// Enum value maps for RewardKind.
var (
	RewardKind_name = map[int32]string{
		0: "REWARD_KIND_UNSPECIFIED",
		1: "REWARD_KIND_FUNGIBLE",
		2: "REWARD_KIND_NON_FUNGIBLE_A",
		3: "REWARD_KIND_NON_FUNGIBLE_B",
	}
	RewardKind_value = map[string]int32{
		"REWARD_KIND_UNSPECIFIED":    0,
		"REWARD_KIND_FUNGIBLE":       1,
		"REWARD_KIND_NON_FUNGIBLE_A": 2,
		"REWARD_KIND_NON_FUNGIBLE_B": 3,
	}
)

func (x RewardKind) Enum() *RewardKind {
	p := new(RewardKind)
	*p = x
	return p
}

func (x RewardKind) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (RewardKind) Descriptor() protoreflect.EnumDescriptor {
	return file_vault_proto_enumTypes[0].Descriptor()
}

func (RewardKind) Type() protoreflect.EnumType {
	return &file_vault_proto_enumTypes[0]
}

func (x RewardKind) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use RewardKind.Descriptor instead.
func (RewardKind) EnumDescriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{0}
}

type RewardItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          RewardKind             `protobuf:"varint,1,opt,name=kind,proto3,enum=vault.RewardKind" json:"kind,omitempty"`
	AmountOrId    uint64                 `protobuf:"varint,2,opt,name=amount_or_id,json=amountOrId,proto3" json:"amount_or_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RewardItem) Reset() {
	*x = RewardItem{}
	mi := &file_vault_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RewardItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RewardItem) ProtoMessage() {}

func (x *RewardItem) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RewardItem.ProtoReflect.Descriptor instead.
func (*RewardItem) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{0}
}

func (x *RewardItem) GetKind() RewardKind {
	if x != nil {
		return x.Kind
	}
	return RewardKind_REWARD_KIND_UNSPECIFIED
}

func (x *RewardItem) GetAmountOrId() uint64 {
	if x != nil {
		return x.AmountOrId
	}
	return 0
}

type GetStateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStateRequest) Reset() {
	*x = GetStateRequest{}
	mi := &file_vault_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStateRequest) ProtoMessage() {}

func (x *GetStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStateRequest.ProtoReflect.Descriptor instead.
func (*GetStateRequest) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{1}
}

type GetStateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*RewardItem          `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	FeeBalance    uint64                 `protobuf:"varint,2,opt,name=fee_balance,json=feeBalance,proto3" json:"fee_balance,omitempty"`
	Paused        bool                   `protobuf:"varint,3,opt,name=paused,proto3" json:"paused,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStateResponse) Reset() {
	*x = GetStateResponse{}
	mi := &file_vault_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStateResponse) ProtoMessage() {}

func (x *GetStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStateResponse.ProtoReflect.Descriptor instead.
func (*GetStateResponse) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{2}
}

func (x *GetStateResponse) GetItems() []*RewardItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *GetStateResponse) GetFeeBalance() uint64 {
	if x != nil {
		return x.FeeBalance
	}
	return 0
}

func (x *GetStateResponse) GetPaused() bool {
	if x != nil {
		return x.Paused
	}
	return false
}

type DrawRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Participant   string                 `protobuf:"bytes,1,opt,name=participant,proto3" json:"participant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DrawRequest) Reset() {
	*x = DrawRequest{}
	mi := &file_vault_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DrawRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DrawRequest) ProtoMessage() {}

func (x *DrawRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DrawRequest.ProtoReflect.Descriptor instead.
func (*DrawRequest) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{3}
}

func (x *DrawRequest) GetParticipant() string {
	if x != nil {
		return x.Participant
	}
	return ""
}

type DrawResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     uint64                 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Reward        *RewardItem            `protobuf:"bytes,2,opt,name=reward,proto3" json:"reward,omitempty"`
	Error         string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DrawResponse) Reset() {
	*x = DrawResponse{}
	mi := &file_vault_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DrawResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DrawResponse) ProtoMessage() {}

func (x *DrawResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DrawResponse.ProtoReflect.Descriptor instead.
func (*DrawResponse) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{4}
}

func (x *DrawResponse) GetRequestId() uint64 {
	if x != nil {
		return x.RequestId
	}
	return 0
}

func (x *DrawResponse) GetReward() *RewardItem {
	if x != nil {
		return x.Reward
	}
	return nil
}

func (x *DrawResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type RedeemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Participant   string                 `protobuf:"bytes,1,opt,name=participant,proto3" json:"participant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RedeemRequest) Reset() {
	*x = RedeemRequest{}
	mi := &file_vault_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedeemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedeemRequest) ProtoMessage() {}

func (x *RedeemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedeemRequest.ProtoReflect.Descriptor instead.
func (*RedeemRequest) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{5}
}

func (x *RedeemRequest) GetParticipant() string {
	if x != nil {
		return x.Participant
	}
	return ""
}

type RedeemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     uint64                 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Reward        *RewardItem            `protobuf:"bytes,2,opt,name=reward,proto3" json:"reward,omitempty"`
	Error         string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RedeemResponse) Reset() {
	*x = RedeemResponse{}
	mi := &file_vault_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedeemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedeemResponse) ProtoMessage() {}

func (x *RedeemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedeemResponse.ProtoReflect.Descriptor instead.
func (*RedeemResponse) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{6}
}

func (x *RedeemResponse) GetRequestId() uint64 {
	if x != nil {
		return x.RequestId
	}
	return 0
}

func (x *RedeemResponse) GetReward() *RewardItem {
	if x != nil {
		return x.Reward
	}
	return nil
}

func (x *RedeemResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type PendingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Participant   string                 `protobuf:"bytes,1,opt,name=participant,proto3" json:"participant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PendingRequest) Reset() {
	*x = PendingRequest{}
	mi := &file_vault_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PendingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PendingRequest) ProtoMessage() {}

func (x *PendingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PendingRequest.ProtoReflect.Descriptor instead.
func (*PendingRequest) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{7}
}

func (x *PendingRequest) GetParticipant() string {
	if x != nil {
		return x.Participant
	}
	return ""
}

type PendingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HasPending    bool                   `protobuf:"varint,1,opt,name=has_pending,json=hasPending,proto3" json:"has_pending,omitempty"`
	Reward        *RewardItem            `protobuf:"bytes,2,opt,name=reward,proto3" json:"reward,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PendingResponse) Reset() {
	*x = PendingResponse{}
	mi := &file_vault_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PendingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PendingResponse) ProtoMessage() {}

func (x *PendingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PendingResponse.ProtoReflect.Descriptor instead.
func (*PendingResponse) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{8}
}

func (x *PendingResponse) GetHasPending() bool {
	if x != nil {
		return x.HasPending
	}
	return false
}

func (x *PendingResponse) GetReward() *RewardItem {
	if x != nil {
		return x.Reward
	}
	return nil
}

type AddRewardsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	Rewards       []*RewardItem          `protobuf:"bytes,2,rep,name=rewards,proto3" json:"rewards,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddRewardsRequest) Reset() {
	*x = AddRewardsRequest{}
	mi := &file_vault_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddRewardsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddRewardsRequest) ProtoMessage() {}

func (x *AddRewardsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddRewardsRequest.ProtoReflect.Descriptor instead.
func (*AddRewardsRequest) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{9}
}

func (x *AddRewardsRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *AddRewardsRequest) GetRewards() []*RewardItem {
	if x != nil {
		return x.Rewards
	}
	return nil
}

type AddRewardsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Error         string                 `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddRewardsResponse) Reset() {
	*x = AddRewardsResponse{}
	mi := &file_vault_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddRewardsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddRewardsResponse) ProtoMessage() {}

func (x *AddRewardsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddRewardsResponse.ProtoReflect.Descriptor instead.
func (*AddRewardsResponse) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{10}
}

func (x *AddRewardsResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type RemoveRewardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	Index         uint32                 `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveRewardRequest) Reset() {
	*x = RemoveRewardRequest{}
	mi := &file_vault_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveRewardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveRewardRequest) ProtoMessage() {}

func (x *RemoveRewardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveRewardRequest.ProtoReflect.Descriptor instead.
func (*RemoveRewardRequest) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{11}
}

func (x *RemoveRewardRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *RemoveRewardRequest) GetIndex() uint32 {
	if x != nil {
		return x.Index
	}
	return 0
}

type RemoveRewardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Error         string                 `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveRewardResponse) Reset() {
	*x = RemoveRewardResponse{}
	mi := &file_vault_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveRewardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveRewardResponse) ProtoMessage() {}

func (x *RemoveRewardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveRewardResponse.ProtoReflect.Descriptor instead.
func (*RemoveRewardResponse) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{12}
}

func (x *RemoveRewardResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type SetPausedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	Paused        bool                   `protobuf:"varint,2,opt,name=paused,proto3" json:"paused,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPausedRequest) Reset() {
	*x = SetPausedRequest{}
	mi := &file_vault_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPausedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPausedRequest) ProtoMessage() {}

func (x *SetPausedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPausedRequest.ProtoReflect.Descriptor instead.
func (*SetPausedRequest) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{13}
}

func (x *SetPausedRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *SetPausedRequest) GetPaused() bool {
	if x != nil {
		return x.Paused
	}
	return false
}

type SetPausedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Error         string                 `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPausedResponse) Reset() {
	*x = SetPausedResponse{}
	mi := &file_vault_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPausedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPausedResponse) ProtoMessage() {}

func (x *SetPausedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPausedResponse.ProtoReflect.Descriptor instead.
func (*SetPausedResponse) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{14}
}

func (x *SetPausedResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type WithdrawRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawRequest) Reset() {
	*x = WithdrawRequest{}
	mi := &file_vault_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawRequest) ProtoMessage() {}

func (x *WithdrawRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawRequest.ProtoReflect.Descriptor instead.
func (*WithdrawRequest) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{15}
}

func (x *WithdrawRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

type WithdrawResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Amount        uint64                 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Error         string                 `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawResponse) Reset() {
	*x = WithdrawResponse{}
	mi := &file_vault_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawResponse) ProtoMessage() {}

func (x *WithdrawResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vault_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawResponse.ProtoReflect.Descriptor instead.
func (*WithdrawResponse) Descriptor() ([]byte, []int) {
	return file_vault_proto_rawDescGZIP(), []int{16}
}

func (x *WithdrawResponse) GetAmount() uint64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *WithdrawResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

var File_vault_proto protoreflect.FileDescriptor

const file_vault_proto_rawDesc = "" +
	"\n" +
	"\vvault.proto\x12\x05vault\"U\n" +
	"\n" +
	"RewardItem\x12%\n" +
	"\x04kind\x18\x01 \x01(\x0e2\x11.vault.RewardKindR\x04kind\x12 \n" +
	"\famount_or_id\x18\x02 \x01(\x04R\n" +
	"amountOrId\"\x11\n" +
	"\x0fGetStateRequest\"t\n" +
	"\x10GetStateResponse\x12'\n" +
	"\x05items\x18\x01 \x03(\v2\x11.vault.RewardItemR\x05items\x12\x1f\n" +
	"\vfee_balance\x18\x02 \x01(\x04R\n" +
	"feeBalance\x12\x16\n" +
	"\x06paused\x18\x03 \x01(\bR\x06paused\"/\n" +
	"\vDrawRequest\x12 \n" +
	"\vparticipant\x18\x01 \x01(\tR\vparticipant\"n\n" +
	"\fDrawResponse\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\x04R\trequestId\x12)\n" +
	"\x06reward\x18\x02 \x01(\v2\x11.vault.RewardItemR\x06reward\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\"1\n" +
	"\rRedeemRequest\x12 \n" +
	"\vparticipant\x18\x01 \x01(\tR\vparticipant\"p\n" +
	"\x0eRedeemResponse\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\x04R\trequestId\x12)\n" +
	"\x06reward\x18\x02 \x01(\v2\x11.vault.RewardItemR\x06reward\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\"2\n" +
	"\x0ePendingRequest\x12 \n" +
	"\vparticipant\x18\x01 \x01(\tR\vparticipant\"]\n" +
	"\x0fPendingResponse\x12\x1f\n" +
	"\vhas_pending\x18\x01 \x01(\bR\n" +
	"hasPending\x12)\n" +
	"\x06reward\x18\x02 \x01(\v2\x11.vault.RewardItemR\x06reward\"X\n" +
	"\x11AddRewardsRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12+\n" +
	"\arewards\x18\x02 \x03(\v2\x11.vault.RewardItemR\arewards\"*\n" +
	"\x12AddRewardsResponse\x12\x14\n" +
	"\x05error\x18\x01 \x01(\tR\x05error\"C\n" +
	"\x13RemoveRewardRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x14\n" +
	"\x05index\x18\x02 \x01(\rR\x05index\",\n" +
	"\x14RemoveRewardResponse\x12\x14\n" +
	"\x05error\x18\x01 \x01(\tR\x05error\"B\n" +
	"\x10SetPausedRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x16\n" +
	"\x06paused\x18\x02 \x01(\bR\x06paused\")\n" +
	"\x11SetPausedResponse\x12\x14\n" +
	"\x05error\x18\x01 \x01(\tR\x05error\")\n" +
	"\x0fWithdrawRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\"@\n" +
	"\x10WithdrawResponse\x12\x16\n" +
	"\x06amount\x18\x01 \x01(\x04R\x06amount\x12\x14\n" +
	"\x05error\x18\x02 \x01(\tR\x05error*\x83\x01\n" +
	"\n" +
	"RewardKind\x12\x1b\n" +
	"\x17REWARD_KIND_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14REWARD_KIND_FUNGIBLE\x10\x01\x12\x1e\n" +
	"\x1aREWARD_KIND_NON_FUNGIBLE_A\x10\x02\x12\x1e\n" +
	"\x1aREWARD_KIND_NON_FUNGIBLE_B\x10\x032\xf9\x03\n" +
	"\fVaultService\x12;\n" +
	"\bGetState\x12\x16.vault.GetStateRequest\x1a\x17.vault.GetStateResponse\x12;\n" +
	"\n" +
	"GetPending\x12\x15.vault.PendingRequest\x1a\x16.vault.PendingResponse\x12/\n" +
	"\x04Draw\x12\x12.vault.DrawRequest\x1a\x13.vault.DrawResponse\x125\n" +
	"\x06Redeem\x12\x14.vault.RedeemRequest\x1a\x15.vault.RedeemResponse\x12A\n" +
	"\n" +
	"AddRewards\x12\x18.vault.AddRewardsRequest\x1a\x19.vault.AddRewardsResponse\x12G\n" +
	"\fRemoveReward\x12\x1a.vault.RemoveRewardRequest\x1a\x1b.vault.RemoveRewardResponse\x12>\n" +
	"\tSetPaused\x12\x17.vault.SetPausedRequest\x1a\x18.vault.SetPausedResponse\x12;\n" +
	"\bWithdraw\x12\x16.vault.WithdrawRequest\x1a\x17.vault.WithdrawResponseBIZGgithub.com/rewardvault/reward-vault-go/pkg/vault-grpc-service/generatedb\x06proto3"

var (
	file_vault_proto_rawDescOnce sync.Once
	file_vault_proto_rawDescData []byte
)

func file_vault_proto_rawDescGZIP() []byte {
	file_vault_proto_rawDescOnce.Do(func() {
		file_vault_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_vault_proto_rawDesc), len(file_vault_proto_rawDesc)))
	})
	return file_vault_proto_rawDescData
}

var file_vault_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_vault_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_vault_proto_goTypes = []any{
	(RewardKind)(0),              // 0: vault.RewardKind
	(*RewardItem)(nil),           // 1: vault.RewardItem
	(*GetStateRequest)(nil),      // 2: vault.GetStateRequest
	(*GetStateResponse)(nil),     // 3: vault.GetStateResponse
	(*DrawRequest)(nil),          // 4: vault.DrawRequest
	(*DrawResponse)(nil),         // 5: vault.DrawResponse
	(*RedeemRequest)(nil),        // 6: vault.RedeemRequest
	(*RedeemResponse)(nil),       // 7: vault.RedeemResponse
	(*PendingRequest)(nil),       // 8: vault.PendingRequest
	(*PendingResponse)(nil),      // 9: vault.PendingResponse
	(*AddRewardsRequest)(nil),    // 10: vault.AddRewardsRequest
	(*AddRewardsResponse)(nil),   // 11: vault.AddRewardsResponse
	(*RemoveRewardRequest)(nil),  // 12: vault.RemoveRewardRequest
	(*RemoveRewardResponse)(nil), // 13: vault.RemoveRewardResponse
	(*SetPausedRequest)(nil),     // 14: vault.SetPausedRequest
	(*SetPausedResponse)(nil),    // 15: vault.SetPausedResponse
	(*WithdrawRequest)(nil),      // 16: vault.WithdrawRequest
	(*WithdrawResponse)(nil),     // 17: vault.WithdrawResponse
}
var file_vault_proto_depIdxs = []int32{
	0,  // 0: vault.RewardItem.kind:type_name -> vault.RewardKind
	1,  // 1: vault.GetStateResponse.items:type_name -> vault.RewardItem
	1,  // 2: vault.DrawResponse.reward:type_name -> vault.RewardItem
	1,  // 3: vault.RedeemResponse.reward:type_name -> vault.RewardItem
	1,  // 4: vault.PendingResponse.reward:type_name -> vault.RewardItem
	1,  // 5: vault.AddRewardsRequest.rewards:type_name -> vault.RewardItem
	2,  // 6: vault.VaultService.GetState:input_type -> vault.GetStateRequest
	8,  // 7: vault.VaultService.GetPending:input_type -> vault.PendingRequest
	4,  // 8: vault.VaultService.Draw:input_type -> vault.DrawRequest
	6,  // 9: vault.VaultService.Redeem:input_type -> vault.RedeemRequest
	10, // 10: vault.VaultService.AddRewards:input_type -> vault.AddRewardsRequest
	12, // 11: vault.VaultService.RemoveReward:input_type -> vault.RemoveRewardRequest
	14, // 12: vault.VaultService.SetPaused:input_type -> vault.SetPausedRequest
	16, // 13: vault.VaultService.Withdraw:input_type -> vault.WithdrawRequest
	3,  // 14: vault.VaultService.GetState:output_type -> vault.GetStateResponse
	9,  // 15: vault.VaultService.GetPending:output_type -> vault.PendingResponse
	5,  // 16: vault.VaultService.Draw:output_type -> vault.DrawResponse
	7,  // 17: vault.VaultService.Redeem:output_type -> vault.RedeemResponse
	11, // 18: vault.VaultService.AddRewards:output_type -> vault.AddRewardsResponse
	13, // 19: vault.VaultService.RemoveReward:output_type -> vault.RemoveRewardResponse
	15, // 20: vault.VaultService.SetPaused:output_type -> vault.SetPausedResponse
	17, // 21: vault.VaultService.Withdraw:output_type -> vault.WithdrawResponse
	14, // [14:22] is the sub-list for method output_type
	6,  // [6:14] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_vault_proto_init() }
func file_vault_proto_init() {
	if File_vault_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_vault_proto_rawDesc), len(file_vault_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_vault_proto_goTypes,
		DependencyIndexes: file_vault_proto_depIdxs,
		EnumInfos:         file_vault_proto_enumTypes,
		MessageInfos:      file_vault_proto_msgTypes,
	}.Build()
	File_vault_proto = out.File
	file_vault_proto_goTypes = nil
	file_vault_proto_depIdxs = nil
}
