// Package proto declares the jobkeeper.v1.JobKeeper gRPC service.
//
// The service carries protobuf well-known types only (structpb.Struct,
// structpb.ListValue, emptypb.Empty), so no generated message code is needed;
// the descriptor, client and server glue below follow the shape that
// protoc-gen-go-grpc produces. Record payloads are described in internal/wire.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "jobkeeper.v1.JobKeeper"

const (
	JobKeeper_Ping_FullMethodName        = "/jobkeeper.v1.JobKeeper/Ping"
	JobKeeper_SignUp_FullMethodName      = "/jobkeeper.v1.JobKeeper/SignUp"
	JobKeeper_SignIn_FullMethodName      = "/jobkeeper.v1.JobKeeper/SignIn"
	JobKeeper_Refresh_FullMethodName     = "/jobkeeper.v1.JobKeeper/Refresh"
	JobKeeper_SignOut_FullMethodName     = "/jobkeeper.v1.JobKeeper/SignOut"
	JobKeeper_Me_FullMethodName          = "/jobkeeper.v1.JobKeeper/Me"
	JobKeeper_List_FullMethodName        = "/jobkeeper.v1.JobKeeper/List"
	JobKeeper_Insert_FullMethodName      = "/jobkeeper.v1.JobKeeper/Insert"
	JobKeeper_Update_FullMethodName      = "/jobkeeper.v1.JobKeeper/Update"
	JobKeeper_Delete_FullMethodName      = "/jobkeeper.v1.JobKeeper/Delete"
	JobKeeper_GetProfile_FullMethodName  = "/jobkeeper.v1.JobKeeper/GetProfile"
	JobKeeper_SaveProfile_FullMethodName = "/jobkeeper.v1.JobKeeper/SaveProfile"
	JobKeeper_Upload_FullMethodName      = "/jobkeeper.v1.JobKeeper/Upload"
)

// PublicMethods may be called without an access token.
var PublicMethods = map[string]bool{
	JobKeeper_Ping_FullMethodName:    true,
	JobKeeper_SignUp_FullMethodName:  true,
	JobKeeper_SignIn_FullMethodName:  true,
	JobKeeper_Refresh_FullMethodName: true,
}

// JobKeeperClient is the client API for the JobKeeper service.
type JobKeeperClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	SignUp(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SignIn(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Refresh(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SignOut(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Me(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	List(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Update(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Delete(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetProfile(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	SaveProfile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Upload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type jobKeeperClient struct {
	cc grpc.ClientConnInterface
}

func NewJobKeeperClient(cc grpc.ClientConnInterface) JobKeeperClient {
	return &jobKeeperClient{cc}
}

func (c *jobKeeperClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, JobKeeper_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) SignUp(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, JobKeeper_SignUp_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) SignIn(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, JobKeeper_SignIn_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) Refresh(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, JobKeeper_Refresh_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) SignOut(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, JobKeeper_SignOut_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) Me(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, JobKeeper_Me_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) List(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, JobKeeper_List_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, JobKeeper_Insert_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) Update(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, JobKeeper_Update_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) Delete(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, JobKeeper_Delete_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) GetProfile(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, JobKeeper_GetProfile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) SaveProfile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, JobKeeper_SaveProfile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobKeeperClient) Upload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, JobKeeper_Upload_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// JobKeeperServer is the server API for the JobKeeper service.
// Implementations must embed UnimplementedJobKeeperServer.
type JobKeeperServer interface {
	Ping(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	SignUp(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SignIn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Refresh(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SignOut(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Me(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	List(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	Insert(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Update(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Delete(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	GetProfile(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	SaveProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Upload(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedJobKeeperServer()
}

// UnimplementedJobKeeperServer answers codes.Unimplemented for every method.
type UnimplementedJobKeeperServer struct{}

func (UnimplementedJobKeeperServer) Ping(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedJobKeeperServer) SignUp(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SignUp not implemented")
}
func (UnimplementedJobKeeperServer) SignIn(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SignIn not implemented")
}
func (UnimplementedJobKeeperServer) Refresh(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Refresh not implemented")
}
func (UnimplementedJobKeeperServer) SignOut(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SignOut not implemented")
}
func (UnimplementedJobKeeperServer) Me(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Me not implemented")
}
func (UnimplementedJobKeeperServer) List(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedJobKeeperServer) Insert(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Insert not implemented")
}
func (UnimplementedJobKeeperServer) Update(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Update not implemented")
}
func (UnimplementedJobKeeperServer) Delete(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedJobKeeperServer) GetProfile(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}
func (UnimplementedJobKeeperServer) SaveProfile(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveProfile not implemented")
}
func (UnimplementedJobKeeperServer) Upload(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Upload not implemented")
}
func (UnimplementedJobKeeperServer) mustEmbedUnimplementedJobKeeperServer() {}

func RegisterJobKeeperServer(s grpc.ServiceRegistrar, srv JobKeeperServer) {
	s.RegisterService(&JobKeeper_ServiceDesc, srv)
}

// unary builds a MethodDesc handler for a method taking In and returning Out.
func unary[In any, Out any](fullMethod string, call func(JobKeeperServer, context.Context, *In) (Out, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(In)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(JobKeeperServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(JobKeeperServer), ctx, req.(*In))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// JobKeeper_ServiceDesc is the grpc.ServiceDesc for the JobKeeper service.
var JobKeeper_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JobKeeperServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unary(JobKeeper_Ping_FullMethodName, JobKeeperServer.Ping)},
		{MethodName: "SignUp", Handler: unary(JobKeeper_SignUp_FullMethodName, JobKeeperServer.SignUp)},
		{MethodName: "SignIn", Handler: unary(JobKeeper_SignIn_FullMethodName, JobKeeperServer.SignIn)},
		{MethodName: "Refresh", Handler: unary(JobKeeper_Refresh_FullMethodName, JobKeeperServer.Refresh)},
		{MethodName: "SignOut", Handler: unary(JobKeeper_SignOut_FullMethodName, JobKeeperServer.SignOut)},
		{MethodName: "Me", Handler: unary(JobKeeper_Me_FullMethodName, JobKeeperServer.Me)},
		{MethodName: "List", Handler: unary(JobKeeper_List_FullMethodName, JobKeeperServer.List)},
		{MethodName: "Insert", Handler: unary(JobKeeper_Insert_FullMethodName, JobKeeperServer.Insert)},
		{MethodName: "Update", Handler: unary(JobKeeper_Update_FullMethodName, JobKeeperServer.Update)},
		{MethodName: "Delete", Handler: unary(JobKeeper_Delete_FullMethodName, JobKeeperServer.Delete)},
		{MethodName: "GetProfile", Handler: unary(JobKeeper_GetProfile_FullMethodName, JobKeeperServer.GetProfile)},
		{MethodName: "SaveProfile", Handler: unary(JobKeeper_SaveProfile_FullMethodName, JobKeeperServer.SaveProfile)},
		{MethodName: "Upload", Handler: unary(JobKeeper_Upload_FullMethodName, JobKeeperServer.Upload)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "jobkeeper/v1/jobkeeper.proto",
}
