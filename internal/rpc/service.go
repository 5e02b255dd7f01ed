package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "sikho.v1.RecordStore"

const (
	MethodPing             = "Ping"
	MethodListCategories   = "ListCategories"
	MethodCreateCategory   = "CreateCategory"
	MethodUpdateCategory   = "UpdateCategory"
	MethodDeleteCategory   = "DeleteCategory"
	MethodListVocabulary   = "ListVocabulary"
	MethodCreateVocabulary = "CreateVocabulary"
	MethodUpdateVocabulary = "UpdateVocabulary"
	MethodDeleteVocabulary = "DeleteVocabulary"
	MethodListNotes        = "ListNotes"
	MethodCreateNote       = "CreateNote"
	MethodUpdateNote       = "UpdateNote"
	MethodDeleteNote       = "DeleteNote"
	MethodExport           = "Export"
)

// FullMethod returns "/sikho.v1.RecordStore/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// RecordStoreServer is implemented by the server side of the record store.
type RecordStoreServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)

	ListCategories(context.Context, *Empty) (*ListCategoriesResponse, error)
	CreateCategory(context.Context, *CreateCategoryRequest) (*CategoryResponse, error)
	UpdateCategory(context.Context, *UpdateCategoryRequest) (*Empty, error)
	DeleteCategory(context.Context, *DeleteRequest) (*Empty, error)

	ListVocabulary(context.Context, *Empty) (*ListVocabularyResponse, error)
	CreateVocabulary(context.Context, *CreateVocabularyRequest) (*VocabularyResponse, error)
	UpdateVocabulary(context.Context, *UpdateVocabularyRequest) (*Empty, error)
	DeleteVocabulary(context.Context, *DeleteRequest) (*Empty, error)

	ListNotes(context.Context, *Empty) (*ListNotesResponse, error)
	CreateNote(context.Context, *CreateNoteRequest) (*NoteResponse, error)
	UpdateNote(context.Context, *UpdateNoteRequest) (*Empty, error)
	DeleteNote(context.Context, *DeleteRequest) (*Empty, error)

	Export(context.Context, *Empty) (*ExportResponse, error)
}

// UnimplementedRecordStoreServer can be embedded to satisfy RecordStoreServer
// while only implementing part of it.
type UnimplementedRecordStoreServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedRecordStoreServer) Ping(context.Context, *Empty) (*PingResponse, error) {
	return nil, unimplemented(MethodPing)
}
func (UnimplementedRecordStoreServer) ListCategories(context.Context, *Empty) (*ListCategoriesResponse, error) {
	return nil, unimplemented(MethodListCategories)
}
func (UnimplementedRecordStoreServer) CreateCategory(context.Context, *CreateCategoryRequest) (*CategoryResponse, error) {
	return nil, unimplemented(MethodCreateCategory)
}
func (UnimplementedRecordStoreServer) UpdateCategory(context.Context, *UpdateCategoryRequest) (*Empty, error) {
	return nil, unimplemented(MethodUpdateCategory)
}
func (UnimplementedRecordStoreServer) DeleteCategory(context.Context, *DeleteRequest) (*Empty, error) {
	return nil, unimplemented(MethodDeleteCategory)
}
func (UnimplementedRecordStoreServer) ListVocabulary(context.Context, *Empty) (*ListVocabularyResponse, error) {
	return nil, unimplemented(MethodListVocabulary)
}
func (UnimplementedRecordStoreServer) CreateVocabulary(context.Context, *CreateVocabularyRequest) (*VocabularyResponse, error) {
	return nil, unimplemented(MethodCreateVocabulary)
}
func (UnimplementedRecordStoreServer) UpdateVocabulary(context.Context, *UpdateVocabularyRequest) (*Empty, error) {
	return nil, unimplemented(MethodUpdateVocabulary)
}
func (UnimplementedRecordStoreServer) DeleteVocabulary(context.Context, *DeleteRequest) (*Empty, error) {
	return nil, unimplemented(MethodDeleteVocabulary)
}
func (UnimplementedRecordStoreServer) ListNotes(context.Context, *Empty) (*ListNotesResponse, error) {
	return nil, unimplemented(MethodListNotes)
}
func (UnimplementedRecordStoreServer) CreateNote(context.Context, *CreateNoteRequest) (*NoteResponse, error) {
	return nil, unimplemented(MethodCreateNote)
}
func (UnimplementedRecordStoreServer) UpdateNote(context.Context, *UpdateNoteRequest) (*Empty, error) {
	return nil, unimplemented(MethodUpdateNote)
}
func (UnimplementedRecordStoreServer) DeleteNote(context.Context, *DeleteRequest) (*Empty, error) {
	return nil, unimplemented(MethodDeleteNote)
}
func (UnimplementedRecordStoreServer) Export(context.Context, *Empty) (*ExportResponse, error) {
	return nil, unimplemented(MethodExport)
}

// unary adapts a typed server method to grpc.MethodDesc.
func unary[Req, Resp any](method string, call func(RecordStoreServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(RecordStoreServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(RecordStoreServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// RecordStoreServiceDesc describes the service for grpc.Server.RegisterService.
var RecordStoreServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RecordStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodPing, RecordStoreServer.Ping),
		unary(MethodListCategories, RecordStoreServer.ListCategories),
		unary(MethodCreateCategory, RecordStoreServer.CreateCategory),
		unary(MethodUpdateCategory, RecordStoreServer.UpdateCategory),
		unary(MethodDeleteCategory, RecordStoreServer.DeleteCategory),
		unary(MethodListVocabulary, RecordStoreServer.ListVocabulary),
		unary(MethodCreateVocabulary, RecordStoreServer.CreateVocabulary),
		unary(MethodUpdateVocabulary, RecordStoreServer.UpdateVocabulary),
		unary(MethodDeleteVocabulary, RecordStoreServer.DeleteVocabulary),
		unary(MethodListNotes, RecordStoreServer.ListNotes),
		unary(MethodCreateNote, RecordStoreServer.CreateNote),
		unary(MethodUpdateNote, RecordStoreServer.UpdateNote),
		unary(MethodDeleteNote, RecordStoreServer.DeleteNote),
		unary(MethodExport, RecordStoreServer.Export),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sikho/v1/record_store",
}

func RegisterRecordStoreServer(s grpc.ServiceRegistrar, srv RecordStoreServer) {
	s.RegisterService(&RecordStoreServiceDesc, srv)
}
