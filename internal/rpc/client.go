package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// RecordStoreClient is the client side of RecordStoreServer.
type RecordStoreClient interface {
	Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error)

	ListCategories(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error)
	UpdateCategory(ctx context.Context, in *UpdateCategoryRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteCategory(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error)

	ListVocabulary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListVocabularyResponse, error)
	CreateVocabulary(ctx context.Context, in *CreateVocabularyRequest, opts ...grpc.CallOption) (*VocabularyResponse, error)
	UpdateVocabulary(ctx context.Context, in *UpdateVocabularyRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteVocabulary(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error)

	ListNotes(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListNotesResponse, error)
	CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*NoteResponse, error)
	UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteNote(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error)

	Export(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ExportResponse, error)
}

type recordStoreClient struct {
	cc grpc.ClientConnInterface
}

// NewRecordStoreClient wraps a connection. Every call is sent with the JSON
// content subtype.
func NewRecordStoreClient(cc grpc.ClientConnInterface) RecordStoreClient {
	return &recordStoreClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recordStoreClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[Empty, PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *recordStoreClient) ListCategories(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[Empty, ListCategoriesResponse](ctx, c.cc, MethodListCategories, in, opts)
}

func (c *recordStoreClient) CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*CategoryResponse, error) {
	return invoke[CreateCategoryRequest, CategoryResponse](ctx, c.cc, MethodCreateCategory, in, opts)
}

func (c *recordStoreClient) UpdateCategory(ctx context.Context, in *UpdateCategoryRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[UpdateCategoryRequest, Empty](ctx, c.cc, MethodUpdateCategory, in, opts)
}

func (c *recordStoreClient) DeleteCategory(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[DeleteRequest, Empty](ctx, c.cc, MethodDeleteCategory, in, opts)
}

func (c *recordStoreClient) ListVocabulary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListVocabularyResponse, error) {
	return invoke[Empty, ListVocabularyResponse](ctx, c.cc, MethodListVocabulary, in, opts)
}

func (c *recordStoreClient) CreateVocabulary(ctx context.Context, in *CreateVocabularyRequest, opts ...grpc.CallOption) (*VocabularyResponse, error) {
	return invoke[CreateVocabularyRequest, VocabularyResponse](ctx, c.cc, MethodCreateVocabulary, in, opts)
}

func (c *recordStoreClient) UpdateVocabulary(ctx context.Context, in *UpdateVocabularyRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[UpdateVocabularyRequest, Empty](ctx, c.cc, MethodUpdateVocabulary, in, opts)
}

func (c *recordStoreClient) DeleteVocabulary(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[DeleteRequest, Empty](ctx, c.cc, MethodDeleteVocabulary, in, opts)
}

func (c *recordStoreClient) ListNotes(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListNotesResponse, error) {
	return invoke[Empty, ListNotesResponse](ctx, c.cc, MethodListNotes, in, opts)
}

func (c *recordStoreClient) CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*NoteResponse, error) {
	return invoke[CreateNoteRequest, NoteResponse](ctx, c.cc, MethodCreateNote, in, opts)
}

func (c *recordStoreClient) UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[UpdateNoteRequest, Empty](ctx, c.cc, MethodUpdateNote, in, opts)
}

func (c *recordStoreClient) DeleteNote(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[DeleteRequest, Empty](ctx, c.cc, MethodDeleteNote, in, opts)
}

func (c *recordStoreClient) Export(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ExportResponse, error) {
	return invoke[Empty, ExportResponse](ctx, c.cc, MethodExport, in, opts)
}
