// Package grpc exposes the record store over gRPC: handlers translating rpc
// messages to service calls, API key checking, and error mapping.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/rpc"
	"github.com/CODE-SECX/English-Sikho/internal/server/services"
)

// RecordService is the part of services.RecordService the handlers use.
type RecordService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, d models.CategoryDraft) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, p models.CategoryPatch) error
	DeleteCategory(ctx context.Context, id string) error

	ListVocabulary(ctx context.Context) ([]models.Vocabulary, error)
	CreateVocabulary(ctx context.Context, d models.VocabularyDraft) (models.Vocabulary, error)
	UpdateVocabulary(ctx context.Context, id string, p models.VocabularyPatch) error
	DeleteVocabulary(ctx context.Context, id string) error

	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, d models.NoteDraft) (models.Note, error)
	UpdateNote(ctx context.Context, id string, p models.NotePatch) error
	DeleteNote(ctx context.Context, id string) error
}

type ExportService interface {
	Export(ctx context.Context) (*services.ExportResult, error)
}

type GRPCServer struct {
	rpc.UnimplementedRecordStoreServer
	address   string
	records   RecordService
	exports   ExportService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, rs RecordService, es ExportService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		records:   rs,
		exports:   es,
		jwtSecret: []byte(secretKey),
	}
}

// NewServer builds a grpc.Server with the interceptors and service registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.apiKeyInterceptor)}, opts...)
	srv := grpc.NewServer(opts...)
	rpc.RegisterRecordStoreServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
