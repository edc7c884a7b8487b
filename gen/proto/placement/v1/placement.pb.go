// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: placement/v1/placement.proto

package placementv1

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

type Profile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CompanyName   string                 `protobuf:"bytes,3,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_placement_v1_placement_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{0}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *Profile) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	CompanyName   string                 `protobuf:"bytes,2,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_placement_v1_placement_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{1}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProfileRequest) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *CreateProfileRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_placement_v1_placement_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{2}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type ListProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesRequest) Reset() {
	*x = ListProfilesRequest{}
	mi := &file_placement_v1_placement_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesRequest) ProtoMessage() {}

func (x *ListProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesRequest.ProtoReflect.Descriptor instead.
func (*ListProfilesRequest) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{3}
}

type ListProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*Profile             `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesResponse) Reset() {
	*x = ListProfilesResponse{}
	mi := &file_placement_v1_placement_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesResponse) ProtoMessage() {}

func (x *ListProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesResponse.ProtoReflect.Descriptor instead.
func (*ListProfilesResponse) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{4}
}

func (x *ListProfilesResponse) GetProfiles() []*Profile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

type JobRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Company       string                 `protobuf:"bytes,2,opt,name=company,proto3" json:"company,omitempty"`
	Location      string                 `protobuf:"bytes,3,opt,name=location,proto3" json:"location,omitempty"`
	Salary        string                 `protobuf:"bytes,4,opt,name=salary,proto3" json:"salary,omitempty"`
	Experience    string                 `protobuf:"bytes,5,opt,name=experience,proto3" json:"experience,omitempty"`
	Skills        []string               `protobuf:"bytes,6,rep,name=skills,proto3" json:"skills,omitempty"`
	Description   string                 `protobuf:"bytes,7,opt,name=description,proto3" json:"description,omitempty"`
	Requirements  []string               `protobuf:"bytes,8,rep,name=requirements,proto3" json:"requirements,omitempty"`
	Benefits      []string               `protobuf:"bytes,9,rep,name=benefits,proto3" json:"benefits,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobRecord) Reset() {
	*x = JobRecord{}
	mi := &file_placement_v1_placement_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobRecord) ProtoMessage() {}

func (x *JobRecord) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobRecord.ProtoReflect.Descriptor instead.
func (*JobRecord) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{5}
}

func (x *JobRecord) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *JobRecord) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *JobRecord) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *JobRecord) GetSalary() string {
	if x != nil {
		return x.Salary
	}
	return ""
}

func (x *JobRecord) GetExperience() string {
	if x != nil {
		return x.Experience
	}
	return ""
}

func (x *JobRecord) GetSkills() []string {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *JobRecord) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *JobRecord) GetRequirements() []string {
	if x != nil {
		return x.Requirements
	}
	return nil
}

func (x *JobRecord) GetBenefits() []string {
	if x != nil {
		return x.Benefits
	}
	return nil
}

type ParseJobDescriptionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseJobDescriptionRequest) Reset() {
	*x = ParseJobDescriptionRequest{}
	mi := &file_placement_v1_placement_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseJobDescriptionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseJobDescriptionRequest) ProtoMessage() {}

func (x *ParseJobDescriptionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseJobDescriptionRequest.ProtoReflect.Descriptor instead.
func (*ParseJobDescriptionRequest) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{6}
}

func (x *ParseJobDescriptionRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ParseJobDescriptionRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

type ParseJobDescriptionResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Success          bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Record           *JobRecord             `protobuf:"bytes,2,opt,name=record,proto3" json:"record,omitempty"`
	OriginalText     string                 `protobuf:"bytes,3,opt,name=original_text,json=originalText,proto3" json:"original_text,omitempty"`
	Error            string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	Valid            bool                   `protobuf:"varint,5,opt,name=valid,proto3" json:"valid,omitempty"`
	ValidationErrors []string               `protobuf:"bytes,6,rep,name=validation_errors,json=validationErrors,proto3" json:"validation_errors,omitempty"`
	// Formatted posting payload as JSON, populated on success.
	PayloadJson   string `protobuf:"bytes,7,opt,name=payload_json,json=payloadJson,proto3" json:"payload_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseJobDescriptionResponse) Reset() {
	*x = ParseJobDescriptionResponse{}
	mi := &file_placement_v1_placement_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseJobDescriptionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseJobDescriptionResponse) ProtoMessage() {}

func (x *ParseJobDescriptionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseJobDescriptionResponse.ProtoReflect.Descriptor instead.
func (*ParseJobDescriptionResponse) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{7}
}

func (x *ParseJobDescriptionResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ParseJobDescriptionResponse) GetRecord() *JobRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

func (x *ParseJobDescriptionResponse) GetOriginalText() string {
	if x != nil {
		return x.OriginalText
	}
	return ""
}

func (x *ParseJobDescriptionResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *ParseJobDescriptionResponse) GetValid() bool {
	if x != nil {
		return x.Valid
	}
	return false
}

func (x *ParseJobDescriptionResponse) GetValidationErrors() []string {
	if x != nil {
		return x.ValidationErrors
	}
	return nil
}

func (x *ParseJobDescriptionResponse) GetPayloadJson() string {
	if x != nil {
		return x.PayloadJson
	}
	return ""
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_placement_v1_placement_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{8}
}

func (x *IngestFileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_placement_v1_placement_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{9}
}

func (x *IngestDirectoryRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	UploadId       string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	ContentType    string                 `protobuf:"bytes,5,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,6,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,7,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_placement_v1_placement_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{10}
}

func (x *IngestResponse) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       int32                  `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       int32                  `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     int32                  `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  int32                  `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        int32                  `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_placement_v1_placement_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{11}
}

func (x *IngestDirectoryResponse) GetScanned() int32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() int32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() int32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() int32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type Posting struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId           string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Title               string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	CompanyName         string                 `protobuf:"bytes,4,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	Location            string                 `protobuf:"bytes,5,opt,name=location,proto3" json:"location,omitempty"`
	SalaryRange         string                 `protobuf:"bytes,6,opt,name=salary_range,json=salaryRange,proto3" json:"salary_range,omitempty"`
	ExperienceRequired  string                 `protobuf:"bytes,7,opt,name=experience_required,json=experienceRequired,proto3" json:"experience_required,omitempty"`
	SkillsRequired      []string               `protobuf:"bytes,8,rep,name=skills_required,json=skillsRequired,proto3" json:"skills_required,omitempty"`
	Requirements        []string               `protobuf:"bytes,9,rep,name=requirements,proto3" json:"requirements,omitempty"`
	Benefits            []string               `protobuf:"bytes,10,rep,name=benefits,proto3" json:"benefits,omitempty"`
	JobType             string                 `protobuf:"bytes,11,opt,name=job_type,json=jobType,proto3" json:"job_type,omitempty"`
	WorkMode            string                 `protobuf:"bytes,12,opt,name=work_mode,json=workMode,proto3" json:"work_mode,omitempty"`
	ApplicationDeadline string                 `protobuf:"bytes,13,opt,name=application_deadline,json=applicationDeadline,proto3" json:"application_deadline,omitempty"`
	Status              string                 `protobuf:"bytes,14,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt           string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt           string                 `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Posting) Reset() {
	*x = Posting{}
	mi := &file_placement_v1_placement_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Posting) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Posting) ProtoMessage() {}

func (x *Posting) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Posting.ProtoReflect.Descriptor instead.
func (*Posting) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{12}
}

func (x *Posting) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Posting) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Posting) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Posting) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *Posting) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Posting) GetSalaryRange() string {
	if x != nil {
		return x.SalaryRange
	}
	return ""
}

func (x *Posting) GetExperienceRequired() string {
	if x != nil {
		return x.ExperienceRequired
	}
	return ""
}

func (x *Posting) GetSkillsRequired() []string {
	if x != nil {
		return x.SkillsRequired
	}
	return nil
}

func (x *Posting) GetRequirements() []string {
	if x != nil {
		return x.Requirements
	}
	return nil
}

func (x *Posting) GetBenefits() []string {
	if x != nil {
		return x.Benefits
	}
	return nil
}

func (x *Posting) GetJobType() string {
	if x != nil {
		return x.JobType
	}
	return ""
}

func (x *Posting) GetWorkMode() string {
	if x != nil {
		return x.WorkMode
	}
	return ""
}

func (x *Posting) GetApplicationDeadline() string {
	if x != nil {
		return x.ApplicationDeadline
	}
	return ""
}

func (x *Posting) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Posting) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Posting) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetPostingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPostingRequest) Reset() {
	*x = GetPostingRequest{}
	mi := &file_placement_v1_placement_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPostingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPostingRequest) ProtoMessage() {}

func (x *GetPostingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPostingRequest.ProtoReflect.Descriptor instead.
func (*GetPostingRequest) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{13}
}

func (x *GetPostingRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetPostingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Posting       *Posting               `protobuf:"bytes,1,opt,name=posting,proto3" json:"posting,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPostingResponse) Reset() {
	*x = GetPostingResponse{}
	mi := &file_placement_v1_placement_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPostingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPostingResponse) ProtoMessage() {}

func (x *GetPostingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPostingResponse.ProtoReflect.Descriptor instead.
func (*GetPostingResponse) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{14}
}

func (x *GetPostingResponse) GetPosting() *Posting {
	if x != nil {
		return x.Posting
	}
	return nil
}

type ListPostingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPostingsRequest) Reset() {
	*x = ListPostingsRequest{}
	mi := &file_placement_v1_placement_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPostingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPostingsRequest) ProtoMessage() {}

func (x *ListPostingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPostingsRequest.ProtoReflect.Descriptor instead.
func (*ListPostingsRequest) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{15}
}

func (x *ListPostingsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ListPostingsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListPostingsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListPostingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Postings      []*Posting             `protobuf:"bytes,1,rep,name=postings,proto3" json:"postings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPostingsResponse) Reset() {
	*x = ListPostingsResponse{}
	mi := &file_placement_v1_placement_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPostingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPostingsResponse) ProtoMessage() {}

func (x *ListPostingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPostingsResponse.ProtoReflect.Descriptor instead.
func (*ListPostingsResponse) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{16}
}

func (x *ListPostingsResponse) GetPostings() []*Posting {
	if x != nil {
		return x.Postings
	}
	return nil
}

type ExportPostingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPostingsRequest) Reset() {
	*x = ExportPostingsRequest{}
	mi := &file_placement_v1_placement_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPostingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPostingsRequest) ProtoMessage() {}

func (x *ExportPostingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPostingsRequest.ProtoReflect.Descriptor instead.
func (*ExportPostingsRequest) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{17}
}

func (x *ExportPostingsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportPostingsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportPostingsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportPostingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPostingsResponse) Reset() {
	*x = ExportPostingsResponse{}
	mi := &file_placement_v1_placement_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPostingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPostingsResponse) ProtoMessage() {}

func (x *ExportPostingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_placement_v1_placement_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPostingsResponse.ProtoReflect.Descriptor instead.
func (*ExportPostingsResponse) Descriptor() ([]byte, []int) {
	return file_placement_v1_placement_proto_rawDescGZIP(), []int{18}
}

func (x *ExportPostingsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_placement_v1_placement_proto protoreflect.FileDescriptor

const file_placement_v1_placement_proto_rawDesc = "" +
	"\n" +
	"\x1cplacement/v1/placement.proto\x12\fplacement.v1\"\xa4\x01\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12!\n" +
	"\fcompany_name\x18\x03 \x01(\tR\vcompanyName\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"c\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12!\n" +
	"\fcompany_name\x18\x02 \x01(\tR\vcompanyName\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\"H\n" +
	"\x15CreateProfileResponse\x12/\n" +
	"\aprofile\x18\x01 \x01(\v2\x15.placement.v1.ProfileR\aprofile\"\x15\n" +
	"\x13ListProfilesRequest\"I\n" +
	"\x14ListProfilesResponse\x121\n" +
	"\bprofiles\x18\x01 \x03(\v2\x15.placement.v1.ProfileR\bprofiles\"\x89\x02\n" +
	"\tJobRecord\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12\x18\n" +
	"\acompany\x18\x02 \x01(\tR\acompany\x12\x1a\n" +
	"\blocation\x18\x03 \x01(\tR\blocation\x12\x16\n" +
	"\x06salary\x18\x04 \x01(\tR\x06salary\x12\x1e\n" +
	"\n" +
	"experience\x18\x05 \x01(\tR\n" +
	"experience\x12\x16\n" +
	"\x06skills\x18\x06 \x03(\tR\x06skills\x12 \n" +
	"\vdescription\x18\a \x01(\tR\vdescription\x12\"\n" +
	"\frequirements\x18\b \x03(\tR\frequirements\x12\x1a\n" +
	"\bbenefits\x18\t \x03(\tR\bbenefits\"Y\n" +
	"\x1aParseJobDescriptionRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\"\x89\x02\n" +
	"\x1bParseJobDescriptionResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12/\n" +
	"\x06record\x18\x02 \x01(\v2\x17.placement.v1.JobRecordR\x06record\x12#\n" +
	"\roriginal_text\x18\x03 \x01(\tR\foriginalText\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\x12\x14\n" +
	"\x05valid\x18\x05 \x01(\bR\x05valid\x12+\n" +
	"\x11validation_errors\x18\x06 \x03(\tR\x10validationErrors\x12!\n" +
	"\fpayload_json\x18\a \x01(\tR\vpayloadJson\"F\n" +
	"\x11IngestFileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"u\n" +
	"\x16IngestDirectoryRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\x91\x02\n" +
	"\x0eIngestResponse\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12!\n" +
	"\fcontent_type\x18\x05 \x01(\tR\vcontentType\x12\x1f\n" +
	"\vuploaded_at\x18\x06 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\a \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05error\"\xdf\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\x05R\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\x05R\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\x05R\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\x05R\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\x05R\x06failed\x126\n" +
	"\aresults\x18\x06 \x03(\v2\x1c.placement.v1.IngestResponseR\aresults\"\x8b\x04\n" +
	"\aPosting\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12!\n" +
	"\fcompany_name\x18\x04 \x01(\tR\vcompanyName\x12\x1a\n" +
	"\blocation\x18\x05 \x01(\tR\blocation\x12!\n" +
	"\fsalary_range\x18\x06 \x01(\tR\vsalaryRange\x12/\n" +
	"\x13experience_required\x18\a \x01(\tR\x12experienceRequired\x12'\n" +
	"\x0fskills_required\x18\b \x03(\tR\x0eskillsRequired\x12\"\n" +
	"\frequirements\x18\t \x03(\tR\frequirements\x12\x1a\n" +
	"\bbenefits\x18\n" +
	" \x03(\tR\bbenefits\x12\x19\n" +
	"\bjob_type\x18\v \x01(\tR\ajobType\x12\x1b\n" +
	"\twork_mode\x18\f \x01(\tR\bworkMode\x121\n" +
	"\x14application_deadline\x18\r \x01(\tR\x13applicationDeadline\x12\x16\n" +
	"\x06status\x18\x0e \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAt\"#\n" +
	"\x11GetPostingRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"E\n" +
	"\x12GetPostingResponse\x12/\n" +
	"\aposting\x18\x01 \x01(\v2\x15.placement.v1.PostingR\aposting\"j\n" +
	"\x13ListPostingsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"I\n" +
	"\x14ListPostingsResponse\x121\n" +
	"\bpostings\x18\x01 \x03(\v2\x15.placement.v1.PostingR\bpostings\"l\n" +
	"\x15ExportPostingsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\",\n" +
	"\x16ExportPostingsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc2\x01\n" +
	"\x0fProfilesService\x12X\n" +
	"\rCreateProfile\x12\".placement.v1.CreateProfileRequest\x1a#.placement.v1.CreateProfileResponse\x12U\n" +
	"\fListProfiles\x12!.placement.v1.ListProfilesRequest\x1a\".placement.v1.ListProfilesResponse2{\n" +
	"\rParserService\x12j\n" +
	"\x13ParseJobDescription\x12(.placement.v1.ParseJobDescriptionRequest\x1a).placement.v1.ParseJobDescriptionResponse2\xbf\x01\n" +
	"\x10IngestionService\x12K\n" +
	"\n" +
	"IngestFile\x12\x1f.placement.v1.IngestFileRequest\x1a\x1c.placement.v1.IngestResponse\x12^\n" +
	"\x0fIngestDirectory\x12$.placement.v1.IngestDirectoryRequest\x1a%.placement.v1.IngestDirectoryResponse2\xb9\x01\n" +
	"\x0fPostingsService\x12O\n" +
	"\n" +
	"GetPosting\x12\x1f.placement.v1.GetPostingRequest\x1a .placement.v1.GetPostingResponse\x12U\n" +
	"\fListPostings\x12!.placement.v1.ListPostingsRequest\x1a\".placement.v1.ListPostingsResponse2l\n" +
	"\rExportService\x12[\n" +
	"\x0eExportPostings\x12#.placement.v1.ExportPostingsRequest\x1a$.placement.v1.ExportPostingsResponseBKZIgithub.com/campushire/placement-portal/gen/proto/placement/v1;placementv1b\x06proto3"

var (
	file_placement_v1_placement_proto_rawDescOnce sync.Once
	file_placement_v1_placement_proto_rawDescData []byte
)

func file_placement_v1_placement_proto_rawDescGZIP() []byte {
	file_placement_v1_placement_proto_rawDescOnce.Do(func() {
		file_placement_v1_placement_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_placement_v1_placement_proto_rawDesc), len(file_placement_v1_placement_proto_rawDesc)))
	})
	return file_placement_v1_placement_proto_rawDescData
}

var file_placement_v1_placement_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_placement_v1_placement_proto_goTypes = []any{
	(*Profile)(nil),                     // 0: placement.v1.Profile
	(*CreateProfileRequest)(nil),        // 1: placement.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),       // 2: placement.v1.CreateProfileResponse
	(*ListProfilesRequest)(nil),         // 3: placement.v1.ListProfilesRequest
	(*ListProfilesResponse)(nil),        // 4: placement.v1.ListProfilesResponse
	(*JobRecord)(nil),                   // 5: placement.v1.JobRecord
	(*ParseJobDescriptionRequest)(nil),  // 6: placement.v1.ParseJobDescriptionRequest
	(*ParseJobDescriptionResponse)(nil), // 7: placement.v1.ParseJobDescriptionResponse
	(*IngestFileRequest)(nil),           // 8: placement.v1.IngestFileRequest
	(*IngestDirectoryRequest)(nil),      // 9: placement.v1.IngestDirectoryRequest
	(*IngestResponse)(nil),              // 10: placement.v1.IngestResponse
	(*IngestDirectoryResponse)(nil),     // 11: placement.v1.IngestDirectoryResponse
	(*Posting)(nil),                     // 12: placement.v1.Posting
	(*GetPostingRequest)(nil),           // 13: placement.v1.GetPostingRequest
	(*GetPostingResponse)(nil),          // 14: placement.v1.GetPostingResponse
	(*ListPostingsRequest)(nil),         // 15: placement.v1.ListPostingsRequest
	(*ListPostingsResponse)(nil),        // 16: placement.v1.ListPostingsResponse
	(*ExportPostingsRequest)(nil),       // 17: placement.v1.ExportPostingsRequest
	(*ExportPostingsResponse)(nil),      // 18: placement.v1.ExportPostingsResponse
}
var file_placement_v1_placement_proto_depIdxs = []int32{
	0,  // 0: placement.v1.CreateProfileResponse.profile:type_name -> placement.v1.Profile
	0,  // 1: placement.v1.ListProfilesResponse.profiles:type_name -> placement.v1.Profile
	5,  // 2: placement.v1.ParseJobDescriptionResponse.record:type_name -> placement.v1.JobRecord
	10, // 3: placement.v1.IngestDirectoryResponse.results:type_name -> placement.v1.IngestResponse
	12, // 4: placement.v1.GetPostingResponse.posting:type_name -> placement.v1.Posting
	12, // 5: placement.v1.ListPostingsResponse.postings:type_name -> placement.v1.Posting
	1,  // 6: placement.v1.ProfilesService.CreateProfile:input_type -> placement.v1.CreateProfileRequest
	3,  // 7: placement.v1.ProfilesService.ListProfiles:input_type -> placement.v1.ListProfilesRequest
	6,  // 8: placement.v1.ParserService.ParseJobDescription:input_type -> placement.v1.ParseJobDescriptionRequest
	8,  // 9: placement.v1.IngestionService.IngestFile:input_type -> placement.v1.IngestFileRequest
	9,  // 10: placement.v1.IngestionService.IngestDirectory:input_type -> placement.v1.IngestDirectoryRequest
	13, // 11: placement.v1.PostingsService.GetPosting:input_type -> placement.v1.GetPostingRequest
	15, // 12: placement.v1.PostingsService.ListPostings:input_type -> placement.v1.ListPostingsRequest
	17, // 13: placement.v1.ExportService.ExportPostings:input_type -> placement.v1.ExportPostingsRequest
	2,  // 14: placement.v1.ProfilesService.CreateProfile:output_type -> placement.v1.CreateProfileResponse
	4,  // 15: placement.v1.ProfilesService.ListProfiles:output_type -> placement.v1.ListProfilesResponse
	7,  // 16: placement.v1.ParserService.ParseJobDescription:output_type -> placement.v1.ParseJobDescriptionResponse
	10, // 17: placement.v1.IngestionService.IngestFile:output_type -> placement.v1.IngestResponse
	11, // 18: placement.v1.IngestionService.IngestDirectory:output_type -> placement.v1.IngestDirectoryResponse
	14, // 19: placement.v1.PostingsService.GetPosting:output_type -> placement.v1.GetPostingResponse
	16, // 20: placement.v1.PostingsService.ListPostings:output_type -> placement.v1.ListPostingsResponse
	18, // 21: placement.v1.ExportService.ExportPostings:output_type -> placement.v1.ExportPostingsResponse
	14, // [14:22] is the sub-list for method output_type
	6,  // [6:14] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_placement_v1_placement_proto_init() }
func file_placement_v1_placement_proto_init() {
	if File_placement_v1_placement_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_placement_v1_placement_proto_rawDesc), len(file_placement_v1_placement_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_placement_v1_placement_proto_goTypes,
		DependencyIndexes: file_placement_v1_placement_proto_depIdxs,
		MessageInfos:      file_placement_v1_placement_proto_msgTypes,
	}.Build()
	File_placement_v1_placement_proto = out.File
	file_placement_v1_placement_proto_goTypes = nil
	file_placement_v1_placement_proto_depIdxs = nil
}
