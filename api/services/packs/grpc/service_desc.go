package grpcserver

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName = "packs.v1.PackService"

	methodChangePack        = "/" + serviceName + "/ChangePack"
	methodAssignDefaultPack = "/" + serviceName + "/AssignDefaultPack"
	methodCancelPack        = "/" + serviceName + "/CancelPack"
	methodGetDashboard      = "/" + serviceName + "/GetDashboard"
)

// PackServiceServer is the server API for packs.v1.PackService. Payloads are
// google.protobuf.Struct documents carrying the JSON shapes of the app layer.
type PackServiceServer interface {
	ChangePack(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AssignDefaultPack(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CancelPack(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDashboard(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterPackServiceServer(s grpc.ServiceRegistrar, srv PackServiceServer) {
	s.RegisterService(&PackService_ServiceDesc, srv)
}

type unaryMethod func(PackServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// methodHandler matches grpc.MethodDesc.Handler.
type methodHandler = func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error)

func unaryHandler(fullMethod string, call unaryMethod) methodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PackServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PackServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PackService_ServiceDesc is the grpc.ServiceDesc for packs.v1.PackService.
var PackService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*PackServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ChangePack", Handler: unaryHandler(methodChangePack, PackServiceServer.ChangePack)},
		{MethodName: "AssignDefaultPack", Handler: unaryHandler(methodAssignDefaultPack, PackServiceServer.AssignDefaultPack)},
		{MethodName: "CancelPack", Handler: unaryHandler(methodCancelPack, PackServiceServer.CancelPack)},
		{MethodName: "GetDashboard", Handler: unaryHandler(methodGetDashboard, PackServiceServer.GetDashboard)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "packs/v1/packs.proto",
}
