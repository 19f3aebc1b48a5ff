package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "vaultkeeper.v1.VaultKeeperService"

// Method names, as they appear in grpc.UnaryServerInfo.FullMethod.
const (
	StartSessionMethod    = "/" + ServiceName + "/StartSession"
	ActivateSessionMethod = "/" + ServiceName + "/ActivateSession"
	RevokeSessionMethod   = "/" + ServiceName + "/RevokeSession"
	GetAccountMethod      = "/" + ServiceName + "/GetAccount"
	GetStoreMethod        = "/" + ServiceName + "/GetStore"
	PutStoreMethod        = "/" + ServiceName + "/PutStore"
	PingMethod            = "/" + ServiceName + "/Ping"
)

// VaultKeeperServer is the server API of the VaultKeeper service.
type VaultKeeperServer interface {
	StartSession(context.Context, *StartSessionRequest) (*SessionResponse, error)
	ActivateSession(context.Context, *ActivateSessionRequest) (*ActivateSessionResponse, error)
	RevokeSession(context.Context, *RevokeSessionRequest) (*emptypb.Empty, error)
	GetAccount(context.Context, *emptypb.Empty) (*AccountResponse, error)
	GetStore(context.Context, *GetStoreRequest) (*StoreResponse, error)
	PutStore(context.Context, *PutStoreRequest) (*StoreResponse, error)
	Ping(context.Context, *emptypb.Empty) (*PingResponse, error)
}

func unaryHandler[Req, Resp any](fullMethod string, call func(VaultKeeperServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		s := srv.(VaultKeeperServer)
		if interceptor == nil {
			return call(s, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(s, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VaultKeeperServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartSession", Handler: unaryHandler(StartSessionMethod, VaultKeeperServer.StartSession)},
		{MethodName: "ActivateSession", Handler: unaryHandler(ActivateSessionMethod, VaultKeeperServer.ActivateSession)},
		{MethodName: "RevokeSession", Handler: unaryHandler(RevokeSessionMethod, VaultKeeperServer.RevokeSession)},
		{MethodName: "GetAccount", Handler: unaryHandler(GetAccountMethod, VaultKeeperServer.GetAccount)},
		{MethodName: "GetStore", Handler: unaryHandler(GetStoreMethod, VaultKeeperServer.GetStore)},
		{MethodName: "PutStore", Handler: unaryHandler(PutStoreMethod, VaultKeeperServer.PutStore)},
		{MethodName: "Ping", Handler: unaryHandler(PingMethod, VaultKeeperServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vaultkeeper/v1/service",
}

func RegisterVaultKeeperServer(s grpc.ServiceRegistrar, srv VaultKeeperServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// VaultKeeperClient is the client API of the VaultKeeper service. Calls
// use the json content subtype.
type VaultKeeperClient interface {
	StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	ActivateSession(ctx context.Context, in *ActivateSessionRequest, opts ...grpc.CallOption) (*ActivateSessionResponse, error)
	RevokeSession(ctx context.Context, in *RevokeSessionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetAccount(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*AccountResponse, error)
	GetStore(ctx context.Context, in *GetStoreRequest, opts ...grpc.CallOption) (*StoreResponse, error)
	PutStore(ctx context.Context, in *PutStoreRequest, opts ...grpc.CallOption) (*StoreResponse, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error)
}

type vaultKeeperClient struct {
	cc grpc.ClientConnInterface
}

func NewVaultKeeperClient(cc grpc.ClientConnInterface) VaultKeeperClient {
	return &vaultKeeperClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultKeeperClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, StartSessionMethod, in, opts)
}

func (c *vaultKeeperClient) ActivateSession(ctx context.Context, in *ActivateSessionRequest, opts ...grpc.CallOption) (*ActivateSessionResponse, error) {
	return invoke[ActivateSessionResponse](ctx, c.cc, ActivateSessionMethod, in, opts)
}

func (c *vaultKeeperClient) RevokeSession(ctx context.Context, in *RevokeSessionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, RevokeSessionMethod, in, opts)
}

func (c *vaultKeeperClient) GetAccount(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*AccountResponse, error) {
	return invoke[AccountResponse](ctx, c.cc, GetAccountMethod, in, opts)
}

func (c *vaultKeeperClient) GetStore(ctx context.Context, in *GetStoreRequest, opts ...grpc.CallOption) (*StoreResponse, error) {
	return invoke[StoreResponse](ctx, c.cc, GetStoreMethod, in, opts)
}

func (c *vaultKeeperClient) PutStore(ctx context.Context, in *PutStoreRequest, opts ...grpc.CallOption) (*StoreResponse, error) {
	return invoke[StoreResponse](ctx, c.cc, PutStoreMethod, in, opts)
}

func (c *vaultKeeperClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, PingMethod, in, opts)
}
