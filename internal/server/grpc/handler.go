package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/CODE-SECX/English-Sikho/internal/buildinfo"
	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/rpc"
)

// toStatus maps service errors to gRPC status codes. Internal details are
// logged, not returned.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	}
	s.logger.Error(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Ping(ctx context.Context, req *rpc.Empty) (*rpc.PingResponse, error) {
	return &rpc.PingResponse{Status: "OK", Version: buildinfo.Version, Time: time.Now().UTC()}, nil
}

func (s *GRPCServer) ListCategories(ctx context.Context, req *rpc.Empty) (*rpc.ListCategoriesResponse, error) {
	items, err := s.records.ListCategories(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, rpc.MethodListCategories, err)
	}
	return &rpc.ListCategoriesResponse{Categories: items}, nil
}

func (s *GRPCServer) CreateCategory(ctx context.Context, req *rpc.CreateCategoryRequest) (*rpc.CategoryResponse, error) {
	c, err := s.records.CreateCategory(ctx, req.Draft)
	if err != nil {
		return nil, s.toStatus(ctx, rpc.MethodCreateCategory, err)
	}
	s.logger.Info(ctx, "category created", "id", c.ID)
	return &rpc.CategoryResponse{Category: c}, nil
}

func (s *GRPCServer) UpdateCategory(ctx context.Context, req *rpc.UpdateCategoryRequest) (*rpc.Empty, error) {
	if err := s.records.UpdateCategory(ctx, req.ID, req.Patch); err != nil {
		return nil, s.toStatus(ctx, rpc.MethodUpdateCategory, err)
	}
	return &rpc.Empty{}, nil
}

func (s *GRPCServer) DeleteCategory(ctx context.Context, req *rpc.DeleteRequest) (*rpc.Empty, error) {
	if err := s.records.DeleteCategory(ctx, req.ID); err != nil {
		return nil, s.toStatus(ctx, rpc.MethodDeleteCategory, err)
	}
	s.logger.Info(ctx, "category deleted", "id", req.ID)
	return &rpc.Empty{}, nil
}

func (s *GRPCServer) ListVocabulary(ctx context.Context, req *rpc.Empty) (*rpc.ListVocabularyResponse, error) {
	items, err := s.records.ListVocabulary(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, rpc.MethodListVocabulary, err)
	}
	return &rpc.ListVocabularyResponse{Vocabulary: items}, nil
}

func (s *GRPCServer) CreateVocabulary(ctx context.Context, req *rpc.CreateVocabularyRequest) (*rpc.VocabularyResponse, error) {
	v, err := s.records.CreateVocabulary(ctx, req.Draft)
	if err != nil {
		return nil, s.toStatus(ctx, rpc.MethodCreateVocabulary, err)
	}
	s.logger.Info(ctx, "vocabulary created", "id", v.ID)
	return &rpc.VocabularyResponse{Vocabulary: v}, nil
}

func (s *GRPCServer) UpdateVocabulary(ctx context.Context, req *rpc.UpdateVocabularyRequest) (*rpc.Empty, error) {
	if err := s.records.UpdateVocabulary(ctx, req.ID, req.Patch); err != nil {
		return nil, s.toStatus(ctx, rpc.MethodUpdateVocabulary, err)
	}
	return &rpc.Empty{}, nil
}

func (s *GRPCServer) DeleteVocabulary(ctx context.Context, req *rpc.DeleteRequest) (*rpc.Empty, error) {
	if err := s.records.DeleteVocabulary(ctx, req.ID); err != nil {
		return nil, s.toStatus(ctx, rpc.MethodDeleteVocabulary, err)
	}
	return &rpc.Empty{}, nil
}

func (s *GRPCServer) ListNotes(ctx context.Context, req *rpc.Empty) (*rpc.ListNotesResponse, error) {
	items, err := s.records.ListNotes(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, rpc.MethodListNotes, err)
	}
	return &rpc.ListNotesResponse{Notes: items}, nil
}

func (s *GRPCServer) CreateNote(ctx context.Context, req *rpc.CreateNoteRequest) (*rpc.NoteResponse, error) {
	n, err := s.records.CreateNote(ctx, req.Draft)
	if err != nil {
		return nil, s.toStatus(ctx, rpc.MethodCreateNote, err)
	}
	s.logger.Info(ctx, "note created", "id", n.ID)
	return &rpc.NoteResponse{Note: n}, nil
}

func (s *GRPCServer) UpdateNote(ctx context.Context, req *rpc.UpdateNoteRequest) (*rpc.Empty, error) {
	if err := s.records.UpdateNote(ctx, req.ID, req.Patch); err != nil {
		return nil, s.toStatus(ctx, rpc.MethodUpdateNote, err)
	}
	return &rpc.Empty{}, nil
}

func (s *GRPCServer) DeleteNote(ctx context.Context, req *rpc.DeleteRequest) (*rpc.Empty, error) {
	if err := s.records.DeleteNote(ctx, req.ID); err != nil {
		return nil, s.toStatus(ctx, rpc.MethodDeleteNote, err)
	}
	return &rpc.Empty{}, nil
}

func (s *GRPCServer) Export(ctx context.Context, req *rpc.Empty) (*rpc.ExportResponse, error) {
	res, err := s.exports.Export(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, rpc.MethodExport, err)
	}
	s.logger.Info(ctx, "export uploaded", "key", res.Key)
	return &rpc.ExportResponse{
		Key:        res.Key,
		URL:        res.URL,
		Categories: res.Categories,
		Vocabulary: res.Vocabulary,
		Notes:      res.Notes,
	}, nil
}
