// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: ezbooks/v1/ezbooks.proto

package ezbookspb

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

type SignupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SignupRequest) Reset() {
	*x = SignupRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SignupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SignupRequest) ProtoMessage() {}

func (x *SignupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SignupRequest.ProtoReflect.Descriptor instead.
func (*SignupRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{0}
}

func (x *SignupRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *SignupRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type SignupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	Token         string                 `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	ExpiresAt     string                 `protobuf:"bytes,3,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SignupResponse) Reset() {
	*x = SignupResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SignupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SignupResponse) ProtoMessage() {}

func (x *SignupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SignupResponse.ProtoReflect.Descriptor instead.
func (*SignupResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{1}
}

func (x *SignupResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *SignupResponse) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *SignupResponse) GetExpiresAt() string {
	if x != nil {
		return x.ExpiresAt
	}
	return ""
}

type LoginRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{2}
}

func (x *LoginRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type LoginResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	Token         string                 `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	ExpiresAt     string                 `protobuf:"bytes,3,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginResponse.ProtoReflect.Descriptor instead.
func (*LoginResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{3}
}

func (x *LoginResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *LoginResponse) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *LoginResponse) GetExpiresAt() string {
	if x != nil {
		return x.ExpiresAt
	}
	return ""
}

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{4}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *User) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Vendor struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCategory string                 `protobuf:"bytes,3,opt,name=default_category,json=defaultCategory,proto3" json:"default_category,omitempty"`
	DefaultCardId   string                 `protobuf:"bytes,4,opt,name=default_card_id,json=defaultCardId,proto3" json:"default_card_id,omitempty"`
	MatchKeywords   []string               `protobuf:"bytes,5,rep,name=match_keywords,json=matchKeywords,proto3" json:"match_keywords,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Vendor) Reset() {
	*x = Vendor{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vendor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vendor) ProtoMessage() {}

func (x *Vendor) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vendor.ProtoReflect.Descriptor instead.
func (*Vendor) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{5}
}

func (x *Vendor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Vendor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Vendor) GetDefaultCategory() string {
	if x != nil {
		return x.DefaultCategory
	}
	return ""
}

func (x *Vendor) GetDefaultCardId() string {
	if x != nil {
		return x.DefaultCardId
	}
	return ""
}

func (x *Vendor) GetMatchKeywords() []string {
	if x != nil {
		return x.MatchKeywords
	}
	return nil
}

func (x *Vendor) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Vendor) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListVendorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsRequest) Reset() {
	*x = ListVendorsRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsRequest) ProtoMessage() {}

func (x *ListVendorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsRequest.ProtoReflect.Descriptor instead.
func (*ListVendorsRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{6}
}

type ListVendorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendors       []*Vendor              `protobuf:"bytes,1,rep,name=vendors,proto3" json:"vendors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsResponse) Reset() {
	*x = ListVendorsResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsResponse) ProtoMessage() {}

func (x *ListVendorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsResponse.ProtoReflect.Descriptor instead.
func (*ListVendorsResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{7}
}

func (x *ListVendorsResponse) GetVendors() []*Vendor {
	if x != nil {
		return x.Vendors
	}
	return nil
}

type CreateVendorRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCategory string                 `protobuf:"bytes,2,opt,name=default_category,json=defaultCategory,proto3" json:"default_category,omitempty"`
	DefaultCardId   string                 `protobuf:"bytes,3,opt,name=default_card_id,json=defaultCardId,proto3" json:"default_card_id,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateVendorRequest) Reset() {
	*x = CreateVendorRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVendorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVendorRequest) ProtoMessage() {}

func (x *CreateVendorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVendorRequest.ProtoReflect.Descriptor instead.
func (*CreateVendorRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{8}
}

func (x *CreateVendorRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateVendorRequest) GetDefaultCategory() string {
	if x != nil {
		return x.DefaultCategory
	}
	return ""
}

func (x *CreateVendorRequest) GetDefaultCardId() string {
	if x != nil {
		return x.DefaultCardId
	}
	return ""
}

type CreateVendorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendor        *Vendor                `protobuf:"bytes,1,opt,name=vendor,proto3" json:"vendor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateVendorResponse) Reset() {
	*x = CreateVendorResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVendorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVendorResponse) ProtoMessage() {}

func (x *CreateVendorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVendorResponse.ProtoReflect.Descriptor instead.
func (*CreateVendorResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{9}
}

func (x *CreateVendorResponse) GetVendor() *Vendor {
	if x != nil {
		return x.Vendor
	}
	return nil
}

type UpdateVendorRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCategory string                 `protobuf:"bytes,3,opt,name=default_category,json=defaultCategory,proto3" json:"default_category,omitempty"`
	DefaultCardId   string                 `protobuf:"bytes,4,opt,name=default_card_id,json=defaultCardId,proto3" json:"default_card_id,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateVendorRequest) Reset() {
	*x = UpdateVendorRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateVendorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateVendorRequest) ProtoMessage() {}

func (x *UpdateVendorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateVendorRequest.ProtoReflect.Descriptor instead.
func (*UpdateVendorRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateVendorRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateVendorRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateVendorRequest) GetDefaultCategory() string {
	if x != nil {
		return x.DefaultCategory
	}
	return ""
}

func (x *UpdateVendorRequest) GetDefaultCardId() string {
	if x != nil {
		return x.DefaultCardId
	}
	return ""
}

type UpdateVendorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendor        *Vendor                `protobuf:"bytes,1,opt,name=vendor,proto3" json:"vendor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateVendorResponse) Reset() {
	*x = UpdateVendorResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateVendorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateVendorResponse) ProtoMessage() {}

func (x *UpdateVendorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateVendorResponse.ProtoReflect.Descriptor instead.
func (*UpdateVendorResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateVendorResponse) GetVendor() *Vendor {
	if x != nil {
		return x.Vendor
	}
	return nil
}

type Card struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Nickname        string                 `protobuf:"bytes,2,opt,name=nickname,proto3" json:"nickname,omitempty"`
	Last4           string                 `protobuf:"bytes,3,opt,name=last4,proto3" json:"last4,omitempty"`
	Brand           string                 `protobuf:"bytes,4,opt,name=brand,proto3" json:"brand,omitempty"`
	DefaultCategory string                 `protobuf:"bytes,5,opt,name=default_category,json=defaultCategory,proto3" json:"default_category,omitempty"`
	IsActive        bool                   `protobuf:"varint,6,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Card) Reset() {
	*x = Card{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Card) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Card) ProtoMessage() {}

func (x *Card) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Card.ProtoReflect.Descriptor instead.
func (*Card) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{12}
}

func (x *Card) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Card) GetNickname() string {
	if x != nil {
		return x.Nickname
	}
	return ""
}

func (x *Card) GetLast4() string {
	if x != nil {
		return x.Last4
	}
	return ""
}

func (x *Card) GetBrand() string {
	if x != nil {
		return x.Brand
	}
	return ""
}

func (x *Card) GetDefaultCategory() string {
	if x != nil {
		return x.DefaultCategory
	}
	return ""
}

func (x *Card) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Card) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Card) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListCardsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCardsRequest) Reset() {
	*x = ListCardsRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCardsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCardsRequest) ProtoMessage() {}

func (x *ListCardsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCardsRequest.ProtoReflect.Descriptor instead.
func (*ListCardsRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{13}
}

type ListCardsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cards         []*Card                `protobuf:"bytes,1,rep,name=cards,proto3" json:"cards,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCardsResponse) Reset() {
	*x = ListCardsResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCardsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCardsResponse) ProtoMessage() {}

func (x *ListCardsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCardsResponse.ProtoReflect.Descriptor instead.
func (*ListCardsResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{14}
}

func (x *ListCardsResponse) GetCards() []*Card {
	if x != nil {
		return x.Cards
	}
	return nil
}

type CreateCardRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Nickname        string                 `protobuf:"bytes,1,opt,name=nickname,proto3" json:"nickname,omitempty"`
	Last4           string                 `protobuf:"bytes,2,opt,name=last4,proto3" json:"last4,omitempty"`
	Brand           string                 `protobuf:"bytes,3,opt,name=brand,proto3" json:"brand,omitempty"`
	DefaultCategory string                 `protobuf:"bytes,4,opt,name=default_category,json=defaultCategory,proto3" json:"default_category,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateCardRequest) Reset() {
	*x = CreateCardRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCardRequest) ProtoMessage() {}

func (x *CreateCardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCardRequest.ProtoReflect.Descriptor instead.
func (*CreateCardRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{15}
}

func (x *CreateCardRequest) GetNickname() string {
	if x != nil {
		return x.Nickname
	}
	return ""
}

func (x *CreateCardRequest) GetLast4() string {
	if x != nil {
		return x.Last4
	}
	return ""
}

func (x *CreateCardRequest) GetBrand() string {
	if x != nil {
		return x.Brand
	}
	return ""
}

func (x *CreateCardRequest) GetDefaultCategory() string {
	if x != nil {
		return x.DefaultCategory
	}
	return ""
}

type CreateCardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Card          *Card                  `protobuf:"bytes,1,opt,name=card,proto3" json:"card,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCardResponse) Reset() {
	*x = CreateCardResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCardResponse) ProtoMessage() {}

func (x *CreateCardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCardResponse.ProtoReflect.Descriptor instead.
func (*CreateCardResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{16}
}

func (x *CreateCardResponse) GetCard() *Card {
	if x != nil {
		return x.Card
	}
	return nil
}

type DeactivateCardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivateCardRequest) Reset() {
	*x = DeactivateCardRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivateCardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivateCardRequest) ProtoMessage() {}

func (x *DeactivateCardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivateCardRequest.ProtoReflect.Descriptor instead.
func (*DeactivateCardRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{17}
}

func (x *DeactivateCardRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeactivateCardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Card          *Card                  `protobuf:"bytes,1,opt,name=card,proto3" json:"card,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivateCardResponse) Reset() {
	*x = DeactivateCardResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivateCardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivateCardResponse) ProtoMessage() {}

func (x *DeactivateCardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivateCardResponse.ProtoReflect.Descriptor instead.
func (*DeactivateCardResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{18}
}

func (x *DeactivateCardResponse) GetCard() *Card {
	if x != nil {
		return x.Card
	}
	return nil
}

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ClientName    string                 `protobuf:"bytes,3,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	Address       string                 `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{19}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Job) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *Job) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"` // optional filter: ACTIVE, COMPLETED, ARCHIVED
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{20}
}

func (x *ListJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{21}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type CreateJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	ClientName    string                 `protobuf:"bytes,2,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	Address       string                 `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobRequest) Reset() {
	*x = CreateJobRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobRequest) ProtoMessage() {}

func (x *CreateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobRequest.ProtoReflect.Descriptor instead.
func (*CreateJobRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{22}
}

func (x *CreateJobRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateJobRequest) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *CreateJobRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type CreateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobResponse) Reset() {
	*x = CreateJobResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobResponse) ProtoMessage() {}

func (x *CreateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobResponse.ProtoReflect.Descriptor instead.
func (*CreateJobResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{23}
}

func (x *CreateJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type SetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetJobStatusRequest) Reset() {
	*x = SetJobStatusRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetJobStatusRequest) ProtoMessage() {}

func (x *SetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*SetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{24}
}

func (x *SetJobStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SetJobStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type SetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetJobStatusResponse) Reset() {
	*x = SetJobStatusResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetJobStatusResponse) ProtoMessage() {}

func (x *SetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*SetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{25}
}

func (x *SetJobStatusResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type Category struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Category) Reset() {
	*x = Category{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Category) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Category) ProtoMessage() {}

func (x *Category) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Category.ProtoReflect.Descriptor instead.
func (*Category) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{26}
}

func (x *Category) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Category) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Category) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type ListCategoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesRequest) Reset() {
	*x = ListCategoriesRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesRequest) ProtoMessage() {}

func (x *ListCategoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesRequest.ProtoReflect.Descriptor instead.
func (*ListCategoriesRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{27}
}

type ListCategoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*Category            `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesResponse) Reset() {
	*x = ListCategoriesResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesResponse) ProtoMessage() {}

func (x *ListCategoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesResponse.ProtoReflect.Descriptor instead.
func (*ListCategoriesResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{28}
}

func (x *ListCategoriesResponse) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

type ReceiptOverrides struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// user-typed values; each set field wins over the extracted one
	Vendor        *string  `protobuf:"bytes,1,opt,name=vendor,proto3,oneof" json:"vendor,omitempty"`
	Amount        *float64 `protobuf:"fixed64,2,opt,name=amount,proto3,oneof" json:"amount,omitempty"`
	TaxAmount     *float64 `protobuf:"fixed64,3,opt,name=tax_amount,json=taxAmount,proto3,oneof" json:"tax_amount,omitempty"`
	Date          *string  `protobuf:"bytes,4,opt,name=date,proto3,oneof" json:"date,omitempty"`
	CardLast4     *string  `protobuf:"bytes,5,opt,name=card_last4,json=cardLast4,proto3,oneof" json:"card_last4,omitempty"`
	Category      *string  `protobuf:"bytes,6,opt,name=category,proto3,oneof" json:"category,omitempty"`
	JobId         *string  `protobuf:"bytes,7,opt,name=job_id,json=jobId,proto3,oneof" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiptOverrides) Reset() {
	*x = ReceiptOverrides{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptOverrides) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptOverrides) ProtoMessage() {}

func (x *ReceiptOverrides) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptOverrides.ProtoReflect.Descriptor instead.
func (*ReceiptOverrides) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{29}
}

func (x *ReceiptOverrides) GetVendor() string {
	if x != nil && x.Vendor != nil {
		return *x.Vendor
	}
	return ""
}

func (x *ReceiptOverrides) GetAmount() float64 {
	if x != nil && x.Amount != nil {
		return *x.Amount
	}
	return 0
}

func (x *ReceiptOverrides) GetTaxAmount() float64 {
	if x != nil && x.TaxAmount != nil {
		return *x.TaxAmount
	}
	return 0
}

func (x *ReceiptOverrides) GetDate() string {
	if x != nil && x.Date != nil {
		return *x.Date
	}
	return ""
}

func (x *ReceiptOverrides) GetCardLast4() string {
	if x != nil && x.CardLast4 != nil {
		return *x.CardLast4
	}
	return ""
}

func (x *ReceiptOverrides) GetCategory() string {
	if x != nil && x.Category != nil {
		return *x.Category
	}
	return ""
}

func (x *ReceiptOverrides) GetJobId() string {
	if x != nil && x.JobId != nil {
		return *x.JobId
	}
	return ""
}

type UploadReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	Overrides     *ReceiptOverrides      `protobuf:"bytes,4,opt,name=overrides,proto3" json:"overrides,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReceiptRequest) Reset() {
	*x = UploadReceiptRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReceiptRequest) ProtoMessage() {}

func (x *UploadReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReceiptRequest.ProtoReflect.Descriptor instead.
func (*UploadReceiptRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{30}
}

func (x *UploadReceiptRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadReceiptRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadReceiptRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadReceiptRequest) GetOverrides() *ReceiptOverrides {
	if x != nil {
		return x.Overrides
	}
	return nil
}

type UploadReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReceiptResponse) Reset() {
	*x = UploadReceiptResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReceiptResponse) ProtoMessage() {}

func (x *UploadReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReceiptResponse.ProtoReflect.Descriptor instead.
func (*UploadReceiptResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{31}
}

func (x *UploadReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ParseReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseReceiptRequest) Reset() {
	*x = ParseReceiptRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseReceiptRequest) ProtoMessage() {}

func (x *ParseReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseReceiptRequest.ProtoReflect.Descriptor instead.
func (*ParseReceiptRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{32}
}

func (x *ParseReceiptRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ParseReceiptRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ParseReceiptRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type VendorSuggestion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VendorId      string                 `protobuf:"bytes,1,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VendorSuggestion) Reset() {
	*x = VendorSuggestion{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VendorSuggestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VendorSuggestion) ProtoMessage() {}

func (x *VendorSuggestion) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VendorSuggestion.ProtoReflect.Descriptor instead.
func (*VendorSuggestion) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{33}
}

func (x *VendorSuggestion) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *VendorSuggestion) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *VendorSuggestion) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type CardMatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CardId        string                 `protobuf:"bytes,1,opt,name=card_id,json=cardId,proto3" json:"card_id,omitempty"`
	Last4         string                 `protobuf:"bytes,2,opt,name=last4,proto3" json:"last4,omitempty"`
	Nickname      string                 `protobuf:"bytes,3,opt,name=nickname,proto3" json:"nickname,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CardMatch) Reset() {
	*x = CardMatch{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CardMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CardMatch) ProtoMessage() {}

func (x *CardMatch) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CardMatch.ProtoReflect.Descriptor instead.
func (*CardMatch) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{34}
}

func (x *CardMatch) GetCardId() string {
	if x != nil {
		return x.CardId
	}
	return ""
}

func (x *CardMatch) GetLast4() string {
	if x != nil {
		return x.Last4
	}
	return ""
}

func (x *CardMatch) GetNickname() string {
	if x != nil {
		return x.Nickname
	}
	return ""
}

type ParseResult struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	RawText          string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	VendorText       *string                `protobuf:"bytes,2,opt,name=vendor_text,json=vendorText,proto3,oneof" json:"vendor_text,omitempty"`
	Amount           *float64               `protobuf:"fixed64,3,opt,name=amount,proto3,oneof" json:"amount,omitempty"`
	TaxAmount        *float64               `protobuf:"fixed64,4,opt,name=tax_amount,json=taxAmount,proto3,oneof" json:"tax_amount,omitempty"`
	Date             *string                `protobuf:"bytes,5,opt,name=date,proto3,oneof" json:"date,omitempty"`
	CardLast4        *string                `protobuf:"bytes,6,opt,name=card_last4,json=cardLast4,proto3,oneof" json:"card_last4,omitempty"`
	VendorSuggestion *VendorSuggestion      `protobuf:"bytes,7,opt,name=vendor_suggestion,json=vendorSuggestion,proto3" json:"vendor_suggestion,omitempty"`
	CardMatch        *CardMatch             `protobuf:"bytes,8,opt,name=card_match,json=cardMatch,proto3" json:"card_match,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ParseResult) Reset() {
	*x = ParseResult{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseResult) ProtoMessage() {}

func (x *ParseResult) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseResult.ProtoReflect.Descriptor instead.
func (*ParseResult) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{35}
}

func (x *ParseResult) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ParseResult) GetVendorText() string {
	if x != nil && x.VendorText != nil {
		return *x.VendorText
	}
	return ""
}

func (x *ParseResult) GetAmount() float64 {
	if x != nil && x.Amount != nil {
		return *x.Amount
	}
	return 0
}

func (x *ParseResult) GetTaxAmount() float64 {
	if x != nil && x.TaxAmount != nil {
		return *x.TaxAmount
	}
	return 0
}

func (x *ParseResult) GetDate() string {
	if x != nil && x.Date != nil {
		return *x.Date
	}
	return ""
}

func (x *ParseResult) GetCardLast4() string {
	if x != nil && x.CardLast4 != nil {
		return *x.CardLast4
	}
	return ""
}

func (x *ParseResult) GetVendorSuggestion() *VendorSuggestion {
	if x != nil {
		return x.VendorSuggestion
	}
	return nil
}

func (x *ParseResult) GetCardMatch() *CardMatch {
	if x != nil {
		return x.CardMatch
	}
	return nil
}

type ParseReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *ParseResult           `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseReceiptResponse) Reset() {
	*x = ParseReceiptResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseReceiptResponse) ProtoMessage() {}

func (x *ParseReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseReceiptResponse.ProtoReflect.Descriptor instead.
func (*ParseReceiptResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{36}
}

func (x *ParseReceiptResponse) GetResult() *ParseResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type Receipt struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ImageKey      string                 `protobuf:"bytes,3,opt,name=image_key,json=imageKey,proto3" json:"image_key,omitempty"`
	VendorId      string                 `protobuf:"bytes,4,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	VendorText    string                 `protobuf:"bytes,5,opt,name=vendor_text,json=vendorText,proto3" json:"vendor_text,omitempty"`
	CardId        string                 `protobuf:"bytes,6,opt,name=card_id,json=cardId,proto3" json:"card_id,omitempty"`
	CardLast4     string                 `protobuf:"bytes,7,opt,name=card_last4,json=cardLast4,proto3" json:"card_last4,omitempty"`
	JobId         string                 `protobuf:"bytes,8,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Category      string                 `protobuf:"bytes,9,opt,name=category,proto3" json:"category,omitempty"`
	Amount        *float64               `protobuf:"fixed64,10,opt,name=amount,proto3,oneof" json:"amount,omitempty"`
	TaxAmount     *float64               `protobuf:"fixed64,11,opt,name=tax_amount,json=taxAmount,proto3,oneof" json:"tax_amount,omitempty"`
	TxDate        string                 `protobuf:"bytes,12,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"`
	Status        string                 `protobuf:"bytes,13,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,15,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{37}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Receipt) GetImageKey() string {
	if x != nil {
		return x.ImageKey
	}
	return ""
}

func (x *Receipt) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *Receipt) GetVendorText() string {
	if x != nil {
		return x.VendorText
	}
	return ""
}

func (x *Receipt) GetCardId() string {
	if x != nil {
		return x.CardId
	}
	return ""
}

func (x *Receipt) GetCardLast4() string {
	if x != nil {
		return x.CardLast4
	}
	return ""
}

func (x *Receipt) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Receipt) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Receipt) GetAmount() float64 {
	if x != nil && x.Amount != nil {
		return *x.Amount
	}
	return 0
}

func (x *Receipt) GetTaxAmount() float64 {
	if x != nil && x.TaxAmount != nil {
		return *x.TaxAmount
	}
	return 0
}

func (x *Receipt) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *Receipt) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Receipt) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Receipt) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptRequest) Reset() {
	*x = GetReceiptRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptRequest) ProtoMessage() {}

func (x *GetReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptRequest.ProtoReflect.Descriptor instead.
func (*GetReceiptRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{38}
}

func (x *GetReceiptRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptResponse) Reset() {
	*x = GetReceiptResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptResponse) ProtoMessage() {}

func (x *GetReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptResponse.ProtoReflect.Descriptor instead.
func (*GetReceiptResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{39}
}

func (x *GetReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ListReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	JobId         string                 `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsRequest) Reset() {
	*x = ListReceiptsRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsRequest) ProtoMessage() {}

func (x *ListReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ListReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{40}
}

func (x *ListReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListReceiptsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ListReceiptsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*Receipt             `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsResponse) Reset() {
	*x = ListReceiptsResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsResponse) ProtoMessage() {}

func (x *ListReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ListReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{41}
}

func (x *ListReceiptsResponse) GetReceipts() []*Receipt {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type ReparseReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReparseReceiptRequest) Reset() {
	*x = ReparseReceiptRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReparseReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReparseReceiptRequest) ProtoMessage() {}

func (x *ReparseReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReparseReceiptRequest.ProtoReflect.Descriptor instead.
func (*ReparseReceiptRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{42}
}

func (x *ReparseReceiptRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ReparseReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReparseReceiptResponse) Reset() {
	*x = ReparseReceiptResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReparseReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReparseReceiptResponse) ProtoMessage() {}

func (x *ReparseReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReparseReceiptResponse.ProtoReflect.Descriptor instead.
func (*ReparseReceiptResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{43}
}

func (x *ReparseReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ExportReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Format        string                 `protobuf:"bytes,1,opt,name=format,proto3" json:"format,omitempty"` // CSV or XLSX
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	JobId         string                 `protobuf:"bytes,4,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsRequest) Reset() {
	*x = ExportReceiptsRequest{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsRequest) ProtoMessage() {}

func (x *ExportReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ExportReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{44}
}

func (x *ExportReceiptsRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ExportReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportReceiptsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsResponse) Reset() {
	*x = ExportReceiptsResponse{}
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsResponse) ProtoMessage() {}

func (x *ExportReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ezbooks_v1_ezbooks_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ExportReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_ezbooks_v1_ezbooks_proto_rawDescGZIP(), []int{45}
}

func (x *ExportReceiptsResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExportReceiptsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportReceiptsResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

var File_ezbooks_v1_ezbooks_proto protoreflect.FileDescriptor

const file_ezbooks_v1_ezbooks_proto_rawDesc = "" +
	"\n" +
	"\x18ezbooks/v1/ezbooks.proto\x12\n" +
	"ezbooks.v1\"9\n" +
	"\rSignupRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"k\n" +
	"\x0eSignupResponse\x12$\n" +
	"\x04user\x18\x01 \x01(\v2\x10.ezbooks.v1.UserR\x04user\x12\x14\n" +
	"\x05token\x18\x02 \x01(\tR\x05token\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x03 \x01(\tR\texpiresAt\"$\n" +
	"\fLoginRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\"j\n" +
	"\rLoginResponse\x12$\n" +
	"\x04user\x18\x01 \x01(\v2\x10.ezbooks.v1.UserR\x04user\x12\x14\n" +
	"\x05token\x18\x02 \x01(\tR\x05token\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x03 \x01(\tR\texpiresAt\"~\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"\xe4\x01\n" +
	"\x06Vendor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12)\n" +
	"\x10default_category\x18\x03 \x01(\tR\x0fdefaultCategory\x12&\n" +
	"\x0fdefault_card_id\x18\x04 \x01(\tR\rdefaultCardId\x12%\n" +
	"\x0ematch_keywords\x18\x05 \x03(\tR\rmatchKeywords\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"\x14\n" +
	"\x12ListVendorsRequest\"C\n" +
	"\x13ListVendorsResponse\x12,\n" +
	"\avendors\x18\x01 \x03(\v2\x12.ezbooks.v1.VendorR\avendors\"|\n" +
	"\x13CreateVendorRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12)\n" +
	"\x10default_category\x18\x02 \x01(\tR\x0fdefaultCategory\x12&\n" +
	"\x0fdefault_card_id\x18\x03 \x01(\tR\rdefaultCardId\"B\n" +
	"\x14CreateVendorResponse\x12*\n" +
	"\x06vendor\x18\x01 \x01(\v2\x12.ezbooks.v1.VendorR\x06vendor\"\x8c\x01\n" +
	"\x13UpdateVendorRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12)\n" +
	"\x10default_category\x18\x03 \x01(\tR\x0fdefaultCategory\x12&\n" +
	"\x0fdefault_card_id\x18\x04 \x01(\tR\rdefaultCardId\"B\n" +
	"\x14UpdateVendorResponse\x12*\n" +
	"\x06vendor\x18\x01 \x01(\v2\x12.ezbooks.v1.VendorR\x06vendor\"\xe4\x01\n" +
	"\x04Card\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bnickname\x18\x02 \x01(\tR\bnickname\x12\x14\n" +
	"\x05last4\x18\x03 \x01(\tR\x05last4\x12\x14\n" +
	"\x05brand\x18\x04 \x01(\tR\x05brand\x12)\n" +
	"\x10default_category\x18\x05 \x01(\tR\x0fdefaultCategory\x12\x1b\n" +
	"\tis_active\x18\x06 \x01(\bR\bisActive\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"\x12\n" +
	"\x10ListCardsRequest\";\n" +
	"\x11ListCardsResponse\x12&\n" +
	"\x05cards\x18\x01 \x03(\v2\x10.ezbooks.v1.CardR\x05cards\"\x86\x01\n" +
	"\x11CreateCardRequest\x12\x1a\n" +
	"\bnickname\x18\x01 \x01(\tR\bnickname\x12\x14\n" +
	"\x05last4\x18\x02 \x01(\tR\x05last4\x12\x14\n" +
	"\x05brand\x18\x03 \x01(\tR\x05brand\x12)\n" +
	"\x10default_category\x18\x04 \x01(\tR\x0fdefaultCategory\":\n" +
	"\x12CreateCardResponse\x12$\n" +
	"\x04card\x18\x01 \x01(\v2\x10.ezbooks.v1.CardR\x04card\"'\n" +
	"\x15DeactivateCardRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\">\n" +
	"\x16DeactivateCardResponse\x12$\n" +
	"\x04card\x18\x01 \x01(\v2\x10.ezbooks.v1.CardR\x04card\"\xba\x01\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1f\n" +
	"\vclient_name\x18\x03 \x01(\tR\n" +
	"clientName\x12\x18\n" +
	"\aaddress\x18\x04 \x01(\tR\aaddress\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\")\n" +
	"\x0fListJobsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"7\n" +
	"\x10ListJobsResponse\x12#\n" +
	"\x04jobs\x18\x01 \x03(\v2\x0f.ezbooks.v1.JobR\x04jobs\"a\n" +
	"\x10CreateJobRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1f\n" +
	"\vclient_name\x18\x02 \x01(\tR\n" +
	"clientName\x12\x18\n" +
	"\aaddress\x18\x03 \x01(\tR\aaddress\"6\n" +
	"\x11CreateJobResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.ezbooks.v1.JobR\x03job\"=\n" +
	"\x13SetJobStatusRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"9\n" +
	"\x14SetJobStatusResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.ezbooks.v1.JobR\x03job\"P\n" +
	"\bCategory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"\x17\n" +
	"\x15ListCategoriesRequest\"N\n" +
	"\x16ListCategoriesResponse\x124\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x14.ezbooks.v1.CategoryR\n" +
	"categories\"\xbf\x02\n" +
	"\x10ReceiptOverrides\x12\x1b\n" +
	"\x06vendor\x18\x01 \x01(\tH\x00R\x06vendor\x88\x01\x01\x12\x1b\n" +
	"\x06amount\x18\x02 \x01(\x01H\x01R\x06amount\x88\x01\x01\x12\"\n" +
	"\n" +
	"tax_amount\x18\x03 \x01(\x01H\x02R\ttaxAmount\x88\x01\x01\x12\x17\n" +
	"\x04date\x18\x04 \x01(\tH\x03R\x04date\x88\x01\x01\x12\"\n" +
	"\n" +
	"card_last4\x18\x05 \x01(\tH\x04R\tcardLast4\x88\x01\x01\x12\x1f\n" +
	"\bcategory\x18\x06 \x01(\tH\x05R\bcategory\x88\x01\x01\x12\x1a\n" +
	"\x06job_id\x18\a \x01(\tH\x06R\x05jobId\x88\x01\x01B\t\n" +
	"\a_vendorB\t\n" +
	"\a_amountB\r\n" +
	"\v_tax_amountB\a\n" +
	"\x05_dateB\r\n" +
	"\v_card_last4B\v\n" +
	"\t_categoryB\t\n" +
	"\a_job_id\"\xab\x01\n" +
	"\x14UploadReceiptRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\x12:\n" +
	"\toverrides\x18\x04 \x01(\v2\x1c.ezbooks.v1.ReceiptOverridesR\toverrides\"F\n" +
	"\x15UploadReceiptResponse\x12-\n" +
	"\areceipt\x18\x01 \x01(\v2\x13.ezbooks.v1.ReceiptR\areceipt\"n\n" +
	"\x13ParseReceiptRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"_\n" +
	"\x10VendorSuggestion\x12\x1b\n" +
	"\tvendor_id\x18\x01 \x01(\tR\bvendorId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\"V\n" +
	"\tCardMatch\x12\x17\n" +
	"\acard_id\x18\x01 \x01(\tR\x06cardId\x12\x14\n" +
	"\x05last4\x18\x02 \x01(\tR\x05last4\x12\x1a\n" +
	"\bnickname\x18\x03 \x01(\tR\bnickname\"\x8f\x03\n" +
	"\vParseResult\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\x12$\n" +
	"\vvendor_text\x18\x02 \x01(\tH\x00R\n" +
	"vendorText\x88\x01\x01\x12\x1b\n" +
	"\x06amount\x18\x03 \x01(\x01H\x01R\x06amount\x88\x01\x01\x12\"\n" +
	"\n" +
	"tax_amount\x18\x04 \x01(\x01H\x02R\ttaxAmount\x88\x01\x01\x12\x17\n" +
	"\x04date\x18\x05 \x01(\tH\x03R\x04date\x88\x01\x01\x12\"\n" +
	"\n" +
	"card_last4\x18\x06 \x01(\tH\x04R\tcardLast4\x88\x01\x01\x12I\n" +
	"\x11vendor_suggestion\x18\a \x01(\v2\x1c.ezbooks.v1.VendorSuggestionR\x10vendorSuggestion\x124\n" +
	"\n" +
	"card_match\x18\b \x01(\v2\x15.ezbooks.v1.CardMatchR\tcardMatchB\x0e\n" +
	"\f_vendor_textB\t\n" +
	"\a_amountB\r\n" +
	"\v_tax_amountB\a\n" +
	"\x05_dateB\r\n" +
	"\v_card_last4\"G\n" +
	"\x14ParseReceiptResponse\x12/\n" +
	"\x06result\x18\x01 \x01(\v2\x17.ezbooks.v1.ParseResultR\x06result\"\xc5\x03\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1b\n" +
	"\timage_key\x18\x03 \x01(\tR\bimageKey\x12\x1b\n" +
	"\tvendor_id\x18\x04 \x01(\tR\bvendorId\x12\x1f\n" +
	"\vvendor_text\x18\x05 \x01(\tR\n" +
	"vendorText\x12\x17\n" +
	"\acard_id\x18\x06 \x01(\tR\x06cardId\x12\x1d\n" +
	"\n" +
	"card_last4\x18\a \x01(\tR\tcardLast4\x12\x15\n" +
	"\x06job_id\x18\b \x01(\tR\x05jobId\x12\x1a\n" +
	"\bcategory\x18\t \x01(\tR\bcategory\x12\x1b\n" +
	"\x06amount\x18\n" +
	" \x01(\x01H\x00R\x06amount\x88\x01\x01\x12\"\n" +
	"\n" +
	"tax_amount\x18\v \x01(\x01H\x01R\ttaxAmount\x88\x01\x01\x12\x17\n" +
	"\atx_date\x18\f \x01(\tR\x06txDate\x12\x16\n" +
	"\x06status\x18\r \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0f \x01(\tR\tupdatedAtB\t\n" +
	"\a_amountB\r\n" +
	"\v_tax_amount\"#\n" +
	"\x11GetReceiptRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"C\n" +
	"\x12GetReceiptResponse\x12-\n" +
	"\areceipt\x18\x01 \x01(\v2\x13.ezbooks.v1.ReceiptR\areceipt\"z\n" +
	"\x13ListReceiptsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x15\n" +
	"\x06job_id\x18\x03 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\"G\n" +
	"\x14ListReceiptsResponse\x12/\n" +
	"\breceipts\x18\x01 \x03(\v2\x13.ezbooks.v1.ReceiptR\breceipts\"'\n" +
	"\x15ReparseReceiptRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"G\n" +
	"\x16ReparseReceiptResponse\x12-\n" +
	"\areceipt\x18\x01 \x01(\v2\x13.ezbooks.v1.ReceiptR\areceipt\"|\n" +
	"\x15ExportReceiptsRequest\x12\x16\n" +
	"\x06format\x18\x01 \x01(\tR\x06format\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\x12\x15\n" +
	"\x06job_id\x18\x04 \x01(\tR\x05jobId\"q\n" +
	"\x16ExportReceiptsResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType2\x8c\x01\n" +
	"\vAuthService\x12?\n" +
	"\x06Signup\x12\x19.ezbooks.v1.SignupRequest\x1a\x1a.ezbooks.v1.SignupResponse\x12<\n" +
	"\x05Login\x12\x18.ezbooks.v1.LoginRequest\x1a\x19.ezbooks.v1.LoginResponse2\x86\x02\n" +
	"\x0eVendorsService\x12N\n" +
	"\vListVendors\x12\x1e.ezbooks.v1.ListVendorsRequest\x1a\x1f.ezbooks.v1.ListVendorsResponse\x12Q\n" +
	"\fCreateVendor\x12\x1f.ezbooks.v1.CreateVendorRequest\x1a .ezbooks.v1.CreateVendorResponse\x12Q\n" +
	"\fUpdateVendor\x12\x1f.ezbooks.v1.UpdateVendorRequest\x1a .ezbooks.v1.UpdateVendorResponse2\xfe\x01\n" +
	"\fCardsService\x12H\n" +
	"\tListCards\x12\x1c.ezbooks.v1.ListCardsRequest\x1a\x1d.ezbooks.v1.ListCardsResponse\x12K\n" +
	"\n" +
	"CreateCard\x12\x1d.ezbooks.v1.CreateCardRequest\x1a\x1e.ezbooks.v1.CreateCardResponse\x12W\n" +
	"\x0eDeactivateCard\x12!.ezbooks.v1.DeactivateCardRequest\x1a\".ezbooks.v1.DeactivateCardResponse2\xf1\x01\n" +
	"\vJobsService\x12E\n" +
	"\bListJobs\x12\x1b.ezbooks.v1.ListJobsRequest\x1a\x1c.ezbooks.v1.ListJobsResponse\x12H\n" +
	"\tCreateJob\x12\x1c.ezbooks.v1.CreateJobRequest\x1a\x1d.ezbooks.v1.CreateJobResponse\x12Q\n" +
	"\fSetJobStatus\x12\x1f.ezbooks.v1.SetJobStatusRequest\x1a .ezbooks.v1.SetJobStatusResponse2l\n" +
	"\x11CategoriesService\x12W\n" +
	"\x0eListCategories\x12!.ezbooks.v1.ListCategoriesRequest\x1a\".ezbooks.v1.ListCategoriesResponse2\xb3\x03\n" +
	"\x0fReceiptsService\x12T\n" +
	"\rUploadReceipt\x12 .ezbooks.v1.UploadReceiptRequest\x1a!.ezbooks.v1.UploadReceiptResponse\x12Q\n" +
	"\fParseReceipt\x12\x1f.ezbooks.v1.ParseReceiptRequest\x1a .ezbooks.v1.ParseReceiptResponse\x12K\n" +
	"\n" +
	"GetReceipt\x12\x1d.ezbooks.v1.GetReceiptRequest\x1a\x1e.ezbooks.v1.GetReceiptResponse\x12Q\n" +
	"\fListReceipts\x12\x1f.ezbooks.v1.ListReceiptsRequest\x1a .ezbooks.v1.ListReceiptsResponse\x12W\n" +
	"\x0eReparseReceipt\x12!.ezbooks.v1.ReparseReceiptRequest\x1a\".ezbooks.v1.ReparseReceiptResponse2h\n" +
	"\rExportService\x12W\n" +
	"\x0eExportReceipts\x12!.ezbooks.v1.ExportReceiptsRequest\x1a\".ezbooks.v1.ExportReceiptsResponseB;Z9github.com/ezbooks/ezbooks/gen/proto/ezbooks/v1;ezbookspbb\x06proto3"

var (
	file_ezbooks_v1_ezbooks_proto_rawDescOnce sync.Once
	file_ezbooks_v1_ezbooks_proto_rawDescData []byte
)

func file_ezbooks_v1_ezbooks_proto_rawDescGZIP() []byte {
	file_ezbooks_v1_ezbooks_proto_rawDescOnce.Do(func() {
		file_ezbooks_v1_ezbooks_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ezbooks_v1_ezbooks_proto_rawDesc), len(file_ezbooks_v1_ezbooks_proto_rawDesc)))
	})
	return file_ezbooks_v1_ezbooks_proto_rawDescData
}

var file_ezbooks_v1_ezbooks_proto_msgTypes = make([]protoimpl.MessageInfo, 46)
var file_ezbooks_v1_ezbooks_proto_goTypes = []any{
	(*SignupRequest)(nil),          // 0: ezbooks.v1.SignupRequest
	(*SignupResponse)(nil),         // 1: ezbooks.v1.SignupResponse
	(*LoginRequest)(nil),           // 2: ezbooks.v1.LoginRequest
	(*LoginResponse)(nil),          // 3: ezbooks.v1.LoginResponse
	(*User)(nil),                   // 4: ezbooks.v1.User
	(*Vendor)(nil),                 // 5: ezbooks.v1.Vendor
	(*ListVendorsRequest)(nil),     // 6: ezbooks.v1.ListVendorsRequest
	(*ListVendorsResponse)(nil),    // 7: ezbooks.v1.ListVendorsResponse
	(*CreateVendorRequest)(nil),    // 8: ezbooks.v1.CreateVendorRequest
	(*CreateVendorResponse)(nil),   // 9: ezbooks.v1.CreateVendorResponse
	(*UpdateVendorRequest)(nil),    // 10: ezbooks.v1.UpdateVendorRequest
	(*UpdateVendorResponse)(nil),   // 11: ezbooks.v1.UpdateVendorResponse
	(*Card)(nil),                   // 12: ezbooks.v1.Card
	(*ListCardsRequest)(nil),       // 13: ezbooks.v1.ListCardsRequest
	(*ListCardsResponse)(nil),      // 14: ezbooks.v1.ListCardsResponse
	(*CreateCardRequest)(nil),      // 15: ezbooks.v1.CreateCardRequest
	(*CreateCardResponse)(nil),     // 16: ezbooks.v1.CreateCardResponse
	(*DeactivateCardRequest)(nil),  // 17: ezbooks.v1.DeactivateCardRequest
	(*DeactivateCardResponse)(nil), // 18: ezbooks.v1.DeactivateCardResponse
	(*Job)(nil),                    // 19: ezbooks.v1.Job
	(*ListJobsRequest)(nil),        // 20: ezbooks.v1.ListJobsRequest
	(*ListJobsResponse)(nil),       // 21: ezbooks.v1.ListJobsResponse
	(*CreateJobRequest)(nil),       // 22: ezbooks.v1.CreateJobRequest
	(*CreateJobResponse)(nil),      // 23: ezbooks.v1.CreateJobResponse
	(*SetJobStatusRequest)(nil),    // 24: ezbooks.v1.SetJobStatusRequest
	(*SetJobStatusResponse)(nil),   // 25: ezbooks.v1.SetJobStatusResponse
	(*Category)(nil),               // 26: ezbooks.v1.Category
	(*ListCategoriesRequest)(nil),  // 27: ezbooks.v1.ListCategoriesRequest
	(*ListCategoriesResponse)(nil), // 28: ezbooks.v1.ListCategoriesResponse
	(*ReceiptOverrides)(nil),       // 29: ezbooks.v1.ReceiptOverrides
	(*UploadReceiptRequest)(nil),   // 30: ezbooks.v1.UploadReceiptRequest
	(*UploadReceiptResponse)(nil),  // 31: ezbooks.v1.UploadReceiptResponse
	(*ParseReceiptRequest)(nil),    // 32: ezbooks.v1.ParseReceiptRequest
	(*VendorSuggestion)(nil),       // 33: ezbooks.v1.VendorSuggestion
	(*CardMatch)(nil),              // 34: ezbooks.v1.CardMatch
	(*ParseResult)(nil),            // 35: ezbooks.v1.ParseResult
	(*ParseReceiptResponse)(nil),   // 36: ezbooks.v1.ParseReceiptResponse
	(*Receipt)(nil),                // 37: ezbooks.v1.Receipt
	(*GetReceiptRequest)(nil),      // 38: ezbooks.v1.GetReceiptRequest
	(*GetReceiptResponse)(nil),     // 39: ezbooks.v1.GetReceiptResponse
	(*ListReceiptsRequest)(nil),    // 40: ezbooks.v1.ListReceiptsRequest
	(*ListReceiptsResponse)(nil),   // 41: ezbooks.v1.ListReceiptsResponse
	(*ReparseReceiptRequest)(nil),  // 42: ezbooks.v1.ReparseReceiptRequest
	(*ReparseReceiptResponse)(nil), // 43: ezbooks.v1.ReparseReceiptResponse
	(*ExportReceiptsRequest)(nil),  // 44: ezbooks.v1.ExportReceiptsRequest
	(*ExportReceiptsResponse)(nil), // 45: ezbooks.v1.ExportReceiptsResponse
}
var file_ezbooks_v1_ezbooks_proto_depIdxs = []int32{
	4,  // 0: ezbooks.v1.SignupResponse.user:type_name -> ezbooks.v1.User
	4,  // 1: ezbooks.v1.LoginResponse.user:type_name -> ezbooks.v1.User
	5,  // 2: ezbooks.v1.ListVendorsResponse.vendors:type_name -> ezbooks.v1.Vendor
	5,  // 3: ezbooks.v1.CreateVendorResponse.vendor:type_name -> ezbooks.v1.Vendor
	5,  // 4: ezbooks.v1.UpdateVendorResponse.vendor:type_name -> ezbooks.v1.Vendor
	12, // 5: ezbooks.v1.ListCardsResponse.cards:type_name -> ezbooks.v1.Card
	12, // 6: ezbooks.v1.CreateCardResponse.card:type_name -> ezbooks.v1.Card
	12, // 7: ezbooks.v1.DeactivateCardResponse.card:type_name -> ezbooks.v1.Card
	19, // 8: ezbooks.v1.ListJobsResponse.jobs:type_name -> ezbooks.v1.Job
	19, // 9: ezbooks.v1.CreateJobResponse.job:type_name -> ezbooks.v1.Job
	19, // 10: ezbooks.v1.SetJobStatusResponse.job:type_name -> ezbooks.v1.Job
	26, // 11: ezbooks.v1.ListCategoriesResponse.categories:type_name -> ezbooks.v1.Category
	29, // 12: ezbooks.v1.UploadReceiptRequest.overrides:type_name -> ezbooks.v1.ReceiptOverrides
	37, // 13: ezbooks.v1.UploadReceiptResponse.receipt:type_name -> ezbooks.v1.Receipt
	33, // 14: ezbooks.v1.ParseResult.vendor_suggestion:type_name -> ezbooks.v1.VendorSuggestion
	34, // 15: ezbooks.v1.ParseResult.card_match:type_name -> ezbooks.v1.CardMatch
	35, // 16: ezbooks.v1.ParseReceiptResponse.result:type_name -> ezbooks.v1.ParseResult
	37, // 17: ezbooks.v1.GetReceiptResponse.receipt:type_name -> ezbooks.v1.Receipt
	37, // 18: ezbooks.v1.ListReceiptsResponse.receipts:type_name -> ezbooks.v1.Receipt
	37, // 19: ezbooks.v1.ReparseReceiptResponse.receipt:type_name -> ezbooks.v1.Receipt
	0,  // 20: ezbooks.v1.AuthService.Signup:input_type -> ezbooks.v1.SignupRequest
	2,  // 21: ezbooks.v1.AuthService.Login:input_type -> ezbooks.v1.LoginRequest
	6,  // 22: ezbooks.v1.VendorsService.ListVendors:input_type -> ezbooks.v1.ListVendorsRequest
	8,  // 23: ezbooks.v1.VendorsService.CreateVendor:input_type -> ezbooks.v1.CreateVendorRequest
	10, // 24: ezbooks.v1.VendorsService.UpdateVendor:input_type -> ezbooks.v1.UpdateVendorRequest
	13, // 25: ezbooks.v1.CardsService.ListCards:input_type -> ezbooks.v1.ListCardsRequest
	15, // 26: ezbooks.v1.CardsService.CreateCard:input_type -> ezbooks.v1.CreateCardRequest
	17, // 27: ezbooks.v1.CardsService.DeactivateCard:input_type -> ezbooks.v1.DeactivateCardRequest
	20, // 28: ezbooks.v1.JobsService.ListJobs:input_type -> ezbooks.v1.ListJobsRequest
	22, // 29: ezbooks.v1.JobsService.CreateJob:input_type -> ezbooks.v1.CreateJobRequest
	24, // 30: ezbooks.v1.JobsService.SetJobStatus:input_type -> ezbooks.v1.SetJobStatusRequest
	27, // 31: ezbooks.v1.CategoriesService.ListCategories:input_type -> ezbooks.v1.ListCategoriesRequest
	30, // 32: ezbooks.v1.ReceiptsService.UploadReceipt:input_type -> ezbooks.v1.UploadReceiptRequest
	32, // 33: ezbooks.v1.ReceiptsService.ParseReceipt:input_type -> ezbooks.v1.ParseReceiptRequest
	38, // 34: ezbooks.v1.ReceiptsService.GetReceipt:input_type -> ezbooks.v1.GetReceiptRequest
	40, // 35: ezbooks.v1.ReceiptsService.ListReceipts:input_type -> ezbooks.v1.ListReceiptsRequest
	42, // 36: ezbooks.v1.ReceiptsService.ReparseReceipt:input_type -> ezbooks.v1.ReparseReceiptRequest
	44, // 37: ezbooks.v1.ExportService.ExportReceipts:input_type -> ezbooks.v1.ExportReceiptsRequest
	1,  // 38: ezbooks.v1.AuthService.Signup:output_type -> ezbooks.v1.SignupResponse
	3,  // 39: ezbooks.v1.AuthService.Login:output_type -> ezbooks.v1.LoginResponse
	7,  // 40: ezbooks.v1.VendorsService.ListVendors:output_type -> ezbooks.v1.ListVendorsResponse
	9,  // 41: ezbooks.v1.VendorsService.CreateVendor:output_type -> ezbooks.v1.CreateVendorResponse
	11, // 42: ezbooks.v1.VendorsService.UpdateVendor:output_type -> ezbooks.v1.UpdateVendorResponse
	14, // 43: ezbooks.v1.CardsService.ListCards:output_type -> ezbooks.v1.ListCardsResponse
	16, // 44: ezbooks.v1.CardsService.CreateCard:output_type -> ezbooks.v1.CreateCardResponse
	18, // 45: ezbooks.v1.CardsService.DeactivateCard:output_type -> ezbooks.v1.DeactivateCardResponse
	21, // 46: ezbooks.v1.JobsService.ListJobs:output_type -> ezbooks.v1.ListJobsResponse
	23, // 47: ezbooks.v1.JobsService.CreateJob:output_type -> ezbooks.v1.CreateJobResponse
	25, // 48: ezbooks.v1.JobsService.SetJobStatus:output_type -> ezbooks.v1.SetJobStatusResponse
	28, // 49: ezbooks.v1.CategoriesService.ListCategories:output_type -> ezbooks.v1.ListCategoriesResponse
	31, // 50: ezbooks.v1.ReceiptsService.UploadReceipt:output_type -> ezbooks.v1.UploadReceiptResponse
	36, // 51: ezbooks.v1.ReceiptsService.ParseReceipt:output_type -> ezbooks.v1.ParseReceiptResponse
	39, // 52: ezbooks.v1.ReceiptsService.GetReceipt:output_type -> ezbooks.v1.GetReceiptResponse
	41, // 53: ezbooks.v1.ReceiptsService.ListReceipts:output_type -> ezbooks.v1.ListReceiptsResponse
	43, // 54: ezbooks.v1.ReceiptsService.ReparseReceipt:output_type -> ezbooks.v1.ReparseReceiptResponse
	45, // 55: ezbooks.v1.ExportService.ExportReceipts:output_type -> ezbooks.v1.ExportReceiptsResponse
	38, // [38:56] is the sub-list for method output_type
	20, // [20:38] is the sub-list for method input_type
	20, // [20:20] is the sub-list for extension type_name
	20, // [20:20] is the sub-list for extension extendee
	0,  // [0:20] is the sub-list for field type_name
}

func init() { file_ezbooks_v1_ezbooks_proto_init() }
func file_ezbooks_v1_ezbooks_proto_init() {
	if File_ezbooks_v1_ezbooks_proto != nil {
		return
	}
	file_ezbooks_v1_ezbooks_proto_msgTypes[29].OneofWrappers = []any{}
	file_ezbooks_v1_ezbooks_proto_msgTypes[35].OneofWrappers = []any{}
	file_ezbooks_v1_ezbooks_proto_msgTypes[37].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ezbooks_v1_ezbooks_proto_rawDesc), len(file_ezbooks_v1_ezbooks_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   46,
			NumExtensions: 0,
			NumServices:   7,
		},
		GoTypes:           file_ezbooks_v1_ezbooks_proto_goTypes,
		DependencyIndexes: file_ezbooks_v1_ezbooks_proto_depIdxs,
		MessageInfos:      file_ezbooks_v1_ezbooks_proto_msgTypes,
	}.Build()
	File_ezbooks_v1_ezbooks_proto = out.File
	file_ezbooks_v1_ezbooks_proto_goTypes = nil
	file_ezbooks_v1_ezbooks_proto_depIdxs = nil
}
