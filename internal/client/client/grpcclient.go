package client

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/rpc"
)

const pingTimeout = 3 * time.Second

type GRPCClient struct {
	endpointURL string
	apiKey      string
	conn        *grpc.ClientConn
	client      rpc.RecordStoreClient
}

func withAPIKey(ctx context.Context, key string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.APIKeyHeaderName, key)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) apiKeyInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withAPIKey(ctx, s.apiKey), method, req, reply, cc, opts...)
}

func NewRecordStoreClient(endpointURL, apiKey string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, apiKey: apiKey}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.apiKeyInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewRecordStoreClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &rpc.Empty{})
	if err != nil {
		return mapError("ping", err)
	}
	if resp.Status != "OK" {
		return common.ErrorUnavailable
	}
	return nil
}

// Export asks the store to upload a snapshot and returns where it went. It
// needs a service role key.
func (s *GRPCClient) Export(ctx context.Context) (*rpc.ExportResponse, error) {
	resp, err := s.client.Export(ctx, &rpc.Empty{})
	if err != nil {
		return nil, mapError("export", err)
	}
	return resp, nil
}

func (s *GRPCClient) Categories() CategoryTable { return categoryTable{c: s.client} }

func (s *GRPCClient) Vocabulary() VocabularyTable { return vocabularyTable{c: s.client} }

func (s *GRPCClient) Notes() NoteTable { return noteTable{c: s.client} }

type categoryTable struct{ c rpc.RecordStoreClient }

func (t categoryTable) FetchAll(ctx context.Context) ([]models.Category, error) {
	resp, err := t.c.ListCategories(ctx, &rpc.Empty{})
	if err != nil {
		return nil, mapError("fetch categories", err)
	}
	return resp.Categories, nil
}

func (t categoryTable) Insert(ctx context.Context, d models.CategoryDraft) (models.Category, error) {
	resp, err := t.c.CreateCategory(ctx, &rpc.CreateCategoryRequest{Draft: d})
	if err != nil {
		return models.Category{}, mapError("insert category", err)
	}
	return resp.Category, nil
}

func (t categoryTable) UpdateByID(ctx context.Context, id string, p models.CategoryPatch) error {
	_, err := t.c.UpdateCategory(ctx, &rpc.UpdateCategoryRequest{ID: id, Patch: p})
	return mapError("update category", err)
}

func (t categoryTable) DeleteByID(ctx context.Context, id string) error {
	_, err := t.c.DeleteCategory(ctx, &rpc.DeleteRequest{ID: id})
	return mapError("delete category", err)
}

type vocabularyTable struct{ c rpc.RecordStoreClient }

func (t vocabularyTable) FetchAll(ctx context.Context) ([]models.Vocabulary, error) {
	resp, err := t.c.ListVocabulary(ctx, &rpc.Empty{})
	if err != nil {
		return nil, mapError("fetch vocabulary", err)
	}
	return resp.Vocabulary, nil
}

func (t vocabularyTable) Insert(ctx context.Context, d models.VocabularyDraft) (models.Vocabulary, error) {
	resp, err := t.c.CreateVocabulary(ctx, &rpc.CreateVocabularyRequest{Draft: d})
	if err != nil {
		return models.Vocabulary{}, mapError("insert vocabulary", err)
	}
	return resp.Vocabulary, nil
}

func (t vocabularyTable) UpdateByID(ctx context.Context, id string, p models.VocabularyPatch) error {
	_, err := t.c.UpdateVocabulary(ctx, &rpc.UpdateVocabularyRequest{ID: id, Patch: p})
	return mapError("update vocabulary", err)
}

func (t vocabularyTable) DeleteByID(ctx context.Context, id string) error {
	_, err := t.c.DeleteVocabulary(ctx, &rpc.DeleteRequest{ID: id})
	return mapError("delete vocabulary", err)
}

type noteTable struct{ c rpc.RecordStoreClient }

func (t noteTable) FetchAll(ctx context.Context) ([]models.Note, error) {
	resp, err := t.c.ListNotes(ctx, &rpc.Empty{})
	if err != nil {
		return nil, mapError("fetch notes", err)
	}
	return resp.Notes, nil
}

func (t noteTable) Insert(ctx context.Context, d models.NoteDraft) (models.Note, error) {
	resp, err := t.c.CreateNote(ctx, &rpc.CreateNoteRequest{Draft: d})
	if err != nil {
		return models.Note{}, mapError("insert note", err)
	}
	return resp.Note, nil
}

func (t noteTable) UpdateByID(ctx context.Context, id string, p models.NotePatch) error {
	_, err := t.c.UpdateNote(ctx, &rpc.UpdateNoteRequest{ID: id, Patch: p})
	return mapError("update note", err)
}

func (t noteTable) DeleteByID(ctx context.Context, id string) error {
	_, err := t.c.DeleteNote(ctx, &rpc.DeleteRequest{ID: id})
	return mapError("delete note", err)
}
