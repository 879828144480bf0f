package server

import (
	"context"
	"slices"

	"tauthy/ai"
	"tauthy/auth"
	"tauthy/domain"
	"tauthy/errors"
	"tauthy/observability"
	pb "tauthy/proto/tauthy/v1"
	"tauthy/services"

	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type PredictionServer struct {
	pb.UnimplementedPredictionServiceServer
	predictionService services.IPredictionService
	model             *ai.ModelContext
	monitor           *observability.Monitor
	historyLimit      int
}

// NewPredictionServer exposes the prediction service. historyLimit caps History when the
// client asks for nothing or for more.
func NewPredictionServer(predictionService services.IPredictionService, model *ai.ModelContext,
	monitor *observability.Monitor, historyLimit int) *PredictionServer {
	return &PredictionServer{
		predictionService: predictionService,
		model:             model,
		monitor:           monitor,
		historyLimit:      historyLimit,
	}
}

func (s *PredictionServer) Predict(ctx context.Context, in *pb.PredictRequest) (*pb.Prediction, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := s.predictionService.Submit(ctx, userID, in.Text)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toPrediction(entry), nil
}

func (s *PredictionServer) PredictDocument(ctx context.Context, in *pb.PredictDocumentRequest) (*pb.Prediction, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := s.predictionService.SubmitDocument(ctx, userID, in.Name, in.Data)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toPrediction(entry), nil
}

func (s *PredictionServer) Reanalyze(ctx context.Context, in *pb.ReanalyzeRequest) (*pb.Prediction, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := s.predictionService.Reanalyze(ctx, userID, in.Id)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toPrediction(entry), nil
}

func (s *PredictionServer) Feedback(ctx context.Context, in *pb.FeedbackRequest) (*pb.FeedbackResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.predictionService.Feedback(userID, in.Id, in.Label); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.FeedbackResponse{Success: true}, nil
}

func (s *PredictionServer) History(ctx context.Context, in *pb.HistoryRequest) (*pb.HistoryResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	limit := int(in.Limit)
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}
	entries, err := s.predictionService.History(userID, limit)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.HistoryResponse{Entries: lo.Map(entries, func(e domain.HistoryEntry, _ int) *pb.Prediction {
		return toPrediction(e)
	})}, nil
}

func (s *PredictionServer) Search(ctx context.Context, in *pb.SearchRequest) (*pb.SearchResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if in.Offset < 0 {
		return nil, status.Error(codes.InvalidArgument, "offset must not be negative")
	}
	res, err := s.predictionService.Search(ctx, userID, in.Query, int(in.Offset))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SearchResponse{
		Entries: lo.Map(res.Entries, func(e domain.HistoryEntry, _ int) *pb.Prediction {
			return toPrediction(e)
		}),
		Total: res.Total,
	}, nil
}

// Health is public: it tells a client which model answers before it logs in.
func (s *PredictionServer) Health(_ context.Context, _ *pb.HealthRequest) (*pb.HealthResponse, error) {
	stats := s.monitor.GetLatest()
	return &pb.HealthResponse{
		Status:          "ok",
		ModelVersion:    s.model.Version(),
		Classes:         s.model.Classes(),
		Predictions:     stats.Predictions,
		Errors:          stats.Errors,
		OpinionFailures: stats.OpinionFailures,
		RssBytes:        stats.RSSBytes,
		CpuPercent:      stats.CPUPercent,
		Goroutines:      int32(stats.Goroutines),
		StartedAt:       timestamppb.New(stats.StartedAt),
	}, nil
}

func currentUser(ctx context.Context) (string, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "no authenticated user")
	}
	return userID, nil
}

// toPrediction lists details sorted by label.
func toPrediction(e domain.HistoryEntry) *pb.Prediction {
	labels := lo.Keys(e.Details)
	slices.Sort(labels)
	p := &pb.Prediction{
		Id:         e.ID,
		Text:       e.Text,
		Source:     e.Source,
		Label:      e.Label,
		Confidence: e.Confidence,
		Details: lo.Map(labels, func(label string, _ int) *pb.ClassScore {
			return &pb.ClassScore{Label: label, Percent: e.Details[label]}
		}),
		Language:     e.Language,
		Markers:      e.Markers,
		Feedback:     string(e.Feedback),
		ModelVersion: e.ModelVersion,
		CreatedAt:    timestamppb.New(e.CreatedAt),
	}
	if e.Opinion != nil {
		p.Opinion = &pb.SecondOpinion{
			Ai:        e.Opinion.AI,
			Human:     e.Opinion.Human,
			Reason:    e.Opinion.Reason,
			Model:     e.Opinion.Model,
			CreatedAt: timestamppb.New(e.Opinion.CreatedAt),
		}
	}
	return p
}
