// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: llm.proto

package llmv1

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

type AgentTask struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          string                 `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"`
	SystemPrompt  string                 `protobuf:"bytes,2,opt,name=system_prompt,json=systemPrompt,proto3" json:"system_prompt,omitempty"`
	UserPrompt    string                 `protobuf:"bytes,3,opt,name=user_prompt,json=userPrompt,proto3" json:"user_prompt,omitempty"`
	Model         string                 `protobuf:"bytes,4,opt,name=model,proto3" json:"model,omitempty"`
	Tools         []string               `protobuf:"bytes,5,rep,name=tools,proto3" json:"tools,omitempty"`
	WorkingDir    string                 `protobuf:"bytes,6,opt,name=working_dir,json=workingDir,proto3" json:"working_dir,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AgentTask) Reset() {
	*x = AgentTask{}
	mi := &file_llm_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentTask) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentTask) ProtoMessage() {}

func (x *AgentTask) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AgentTask.ProtoReflect.Descriptor instead.
func (*AgentTask) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{0}
}

func (x *AgentTask) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *AgentTask) GetSystemPrompt() string {
	if x != nil {
		return x.SystemPrompt
	}
	return ""
}

func (x *AgentTask) GetUserPrompt() string {
	if x != nil {
		return x.UserPrompt
	}
	return ""
}

func (x *AgentTask) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *AgentTask) GetTools() []string {
	if x != nil {
		return x.Tools
	}
	return nil
}

func (x *AgentTask) GetWorkingDir() string {
	if x != nil {
		return x.WorkingDir
	}
	return ""
}

type AgentChunk struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Content:
	//
	//	*AgentChunk_Text
	//	*AgentChunk_ToolCall
	//	*AgentChunk_ToolResult
	//	*AgentChunk_Usage
	//	*AgentChunk_Error
	Content       isAgentChunk_Content `protobuf_oneof:"content"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AgentChunk) Reset() {
	*x = AgentChunk{}
	mi := &file_llm_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentChunk) ProtoMessage() {}

func (x *AgentChunk) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AgentChunk.ProtoReflect.Descriptor instead.
func (*AgentChunk) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{1}
}

func (x *AgentChunk) GetContent() isAgentChunk_Content {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *AgentChunk) GetText() *TextOutput {
	if x != nil {
		if x, ok := x.Content.(*AgentChunk_Text); ok {
			return x.Text
		}
	}
	return nil
}

func (x *AgentChunk) GetToolCall() *ToolCall {
	if x != nil {
		if x, ok := x.Content.(*AgentChunk_ToolCall); ok {
			return x.ToolCall
		}
	}
	return nil
}

func (x *AgentChunk) GetToolResult() *ToolResult {
	if x != nil {
		if x, ok := x.Content.(*AgentChunk_ToolResult); ok {
			return x.ToolResult
		}
	}
	return nil
}

func (x *AgentChunk) GetUsage() *Usage {
	if x != nil {
		if x, ok := x.Content.(*AgentChunk_Usage); ok {
			return x.Usage
		}
	}
	return nil
}

func (x *AgentChunk) GetError() *Error {
	if x != nil {
		if x, ok := x.Content.(*AgentChunk_Error); ok {
			return x.Error
		}
	}
	return nil
}

type isAgentChunk_Content interface {
	isAgentChunk_Content()
}

type AgentChunk_Text struct {
	Text *TextOutput `protobuf:"bytes,1,opt,name=text,proto3,oneof"`
}

type AgentChunk_ToolCall struct {
	ToolCall *ToolCall `protobuf:"bytes,2,opt,name=tool_call,json=toolCall,proto3,oneof"`
}

type AgentChunk_ToolResult struct {
	ToolResult *ToolResult `protobuf:"bytes,3,opt,name=tool_result,json=toolResult,proto3,oneof"`
}

type AgentChunk_Usage struct {
	Usage *Usage `protobuf:"bytes,4,opt,name=usage,proto3,oneof"`
}

type AgentChunk_Error struct {
	Error *Error `protobuf:"bytes,5,opt,name=error,proto3,oneof"`
}

func (*AgentChunk_Text) isAgentChunk_Content() {}

func (*AgentChunk_ToolCall) isAgentChunk_Content() {}

func (*AgentChunk_ToolResult) isAgentChunk_Content() {}

func (*AgentChunk_Usage) isAgentChunk_Content() {}

func (*AgentChunk_Error) isAgentChunk_Content() {}

type TextOutput struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TextOutput) Reset() {
	*x = TextOutput{}
	mi := &file_llm_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TextOutput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TextOutput) ProtoMessage() {}

func (x *TextOutput) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TextOutput.ProtoReflect.Descriptor instead.
func (*TextOutput) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{2}
}

func (x *TextOutput) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type ToolCall struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tool          string                 `protobuf:"bytes,1,opt,name=tool,proto3" json:"tool,omitempty"`
	Input         string                 `protobuf:"bytes,2,opt,name=input,proto3" json:"input,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolCall) Reset() {
	*x = ToolCall{}
	mi := &file_llm_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolCall) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolCall) ProtoMessage() {}

func (x *ToolCall) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolCall.ProtoReflect.Descriptor instead.
func (*ToolCall) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{3}
}

func (x *ToolCall) GetTool() string {
	if x != nil {
		return x.Tool
	}
	return ""
}

func (x *ToolCall) GetInput() string {
	if x != nil {
		return x.Input
	}
	return ""
}

type ToolResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tool          string                 `protobuf:"bytes,1,opt,name=tool,proto3" json:"tool,omitempty"`
	Output        string                 `protobuf:"bytes,2,opt,name=output,proto3" json:"output,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolResult) Reset() {
	*x = ToolResult{}
	mi := &file_llm_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolResult) ProtoMessage() {}

func (x *ToolResult) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolResult.ProtoReflect.Descriptor instead.
func (*ToolResult) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{4}
}

func (x *ToolResult) GetTool() string {
	if x != nil {
		return x.Tool
	}
	return ""
}

func (x *ToolResult) GetOutput() string {
	if x != nil {
		return x.Output
	}
	return ""
}

// Usage is the final chunk of a successful execution.
type Usage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InputTokens   int64                  `protobuf:"varint,1,opt,name=input_tokens,json=inputTokens,proto3" json:"input_tokens,omitempty"`
	OutputTokens  int64                  `protobuf:"varint,2,opt,name=output_tokens,json=outputTokens,proto3" json:"output_tokens,omitempty"`
	ModelId       string                 `protobuf:"bytes,3,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Usage) Reset() {
	*x = Usage{}
	mi := &file_llm_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Usage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Usage) ProtoMessage() {}

func (x *Usage) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Usage.ProtoReflect.Descriptor instead.
func (*Usage) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{5}
}

func (x *Usage) GetInputTokens() int64 {
	if x != nil {
		return x.InputTokens
	}
	return 0
}

func (x *Usage) GetOutputTokens() int64 {
	if x != nil {
		return x.OutputTokens
	}
	return 0
}

func (x *Usage) GetModelId() string {
	if x != nil {
		return x.ModelId
	}
	return ""
}

type Error struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Retryable     bool                   `protobuf:"varint,2,opt,name=retryable,proto3" json:"retryable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Error) Reset() {
	*x = Error{}
	mi := &file_llm_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Error) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Error) ProtoMessage() {}

func (x *Error) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Error.ProtoReflect.Descriptor instead.
func (*Error) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{6}
}

func (x *Error) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Error) GetRetryable() bool {
	if x != nil {
		return x.Retryable
	}
	return false
}

var File_llm_proto protoreflect.FileDescriptor

const file_llm_proto_rawDesc = "" +
	"\n" +
	"\tllm.proto\x12\rhadron.llm.v1\"\xb2\x01\n" +
	"\tAgentTask\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\x12#\n" +
	"\rsystem_prompt\x18\x02 \x01(\tR\fsystemPrompt\x12\x1f\n" +
	"\vuser_prompt\x18\x03 \x01(\tR\n" +
	"userPrompt\x12\x14\n" +
	"\x05model\x18\x04 \x01(\tR\x05model\x12\x14\n" +
	"\x05tools\x18\x05 \x03(\tR\x05tools\x12\x1f\n" +
	"\vworking_dir\x18\x06 \x01(\tR\n" +
	"workingDir\"\x9a\x02\n" +
	"\n" +
	"AgentChunk\x12/\n" +
	"\x04text\x18\x01 \x01(\v2\x19.hadron.llm.v1.TextOutputH\x00R\x04text\x126\n" +
	"\ttool_call\x18\x02 \x01(\v2\x17.hadron.llm.v1.ToolCallH\x00R\btoolCall\x12<\n" +
	"\vtool_result\x18\x03 \x01(\v2\x19.hadron.llm.v1.ToolResultH\x00R\n" +
	"toolResult\x12,\n" +
	"\x05usage\x18\x04 \x01(\v2\x14.hadron.llm.v1.UsageH\x00R\x05usage\x12,\n" +
	"\x05error\x18\x05 \x01(\v2\x14.hadron.llm.v1.ErrorH\x00R\x05errorB\t\n" +
	"\acontent\"&\n" +
	"\n" +
	"TextOutput\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\"4\n" +
	"\bToolCall\x12\x12\n" +
	"\x04tool\x18\x01 \x01(\tR\x04tool\x12\x14\n" +
	"\x05input\x18\x02 \x01(\tR\x05input\"8\n" +
	"\n" +
	"ToolResult\x12\x12\n" +
	"\x04tool\x18\x01 \x01(\tR\x04tool\x12\x16\n" +
	"\x06output\x18\x02 \x01(\tR\x06output\"j\n" +
	"\x05Usage\x12!\n" +
	"\finput_tokens\x18\x01 \x01(\x03R\vinputTokens\x12#\n" +
	"\routput_tokens\x18\x02 \x01(\x03R\foutputTokens\x12\x19\n" +
	"\bmodel_id\x18\x03 \x01(\tR\amodelId\"?\n" +
	"\x05Error\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\x12\x1c\n" +
	"\tretryable\x18\x02 \x01(\bR\tretryable2P\n" +
	"\fAgentService\x12@\n" +
	"\aExecute\x12\x18.hadron.llm.v1.AgentTask\x1a\x19.hadron.llm.v1.AgentChunk0\x01B)Z'github.com/CollideNV/hadron/proto;llmv1b\x06proto3"

var (
	file_llm_proto_rawDescOnce sync.Once
	file_llm_proto_rawDescData []byte
)

func file_llm_proto_rawDescGZIP() []byte {
	file_llm_proto_rawDescOnce.Do(func() {
		file_llm_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_llm_proto_rawDesc), len(file_llm_proto_rawDesc)))
	})
	return file_llm_proto_rawDescData
}

var file_llm_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_llm_proto_goTypes = []any{
	(*AgentTask)(nil),  // 0: hadron.llm.v1.AgentTask
	(*AgentChunk)(nil), // 1: hadron.llm.v1.AgentChunk
	(*TextOutput)(nil), // 2: hadron.llm.v1.TextOutput
	(*ToolCall)(nil),   // 3: hadron.llm.v1.ToolCall
	(*ToolResult)(nil), // 4: hadron.llm.v1.ToolResult
	(*Usage)(nil),      // 5: hadron.llm.v1.Usage
	(*Error)(nil),      // 6: hadron.llm.v1.Error
}
var file_llm_proto_depIdxs = []int32{
	2, // 0: hadron.llm.v1.AgentChunk.text:type_name -> hadron.llm.v1.TextOutput
	3, // 1: hadron.llm.v1.AgentChunk.tool_call:type_name -> hadron.llm.v1.ToolCall
	4, // 2: hadron.llm.v1.AgentChunk.tool_result:type_name -> hadron.llm.v1.ToolResult
	5, // 3: hadron.llm.v1.AgentChunk.usage:type_name -> hadron.llm.v1.Usage
	6, // 4: hadron.llm.v1.AgentChunk.error:type_name -> hadron.llm.v1.Error
	0, // 5: hadron.llm.v1.AgentService.Execute:input_type -> hadron.llm.v1.AgentTask
	1, // 6: hadron.llm.v1.AgentService.Execute:output_type -> hadron.llm.v1.AgentChunk
	6, // [6:7] is the sub-list for method output_type
	5, // [5:6] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_llm_proto_init() }
func file_llm_proto_init() {
	if File_llm_proto != nil {
		return
	}
	file_llm_proto_msgTypes[1].OneofWrappers = []any{
		(*AgentChunk_Text)(nil),
		(*AgentChunk_ToolCall)(nil),
		(*AgentChunk_ToolResult)(nil),
		(*AgentChunk_Usage)(nil),
		(*AgentChunk_Error)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_llm_proto_rawDesc), len(file_llm_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_llm_proto_goTypes,
		DependencyIndexes: file_llm_proto_depIdxs,
		MessageInfos:      file_llm_proto_msgTypes,
	}.Build()
	File_llm_proto = out.File
	file_llm_proto_goTypes = nil
	file_llm_proto_depIdxs = nil
}
