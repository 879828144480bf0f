package grpc

import (
	"context"
	"log/slog"
	"time"

	"tauthy/auth"
	"tauthy/ingest"
	pb "tauthy/proto/tauthy/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// PublicMethods can be called without a session token.
var PublicMethods = []string{
	pb.AuthService_Register_FullMethodName,
	pb.AuthService_Login_FullMethodName,
	pb.PredictionService_Health_FullMethodName,
}

// NewServer builds the gRPC server with request logging and token checks,
// and registers both services on it.
func NewServer(log *slog.Logger, issuer *auth.TokenIssuer,
	authServer pb.AuthServiceServer, predictionServer pb.PredictionServiceServer) *grpc.Server {
	interceptor := auth.NewInterceptor(issuer, PublicMethods...)
	s := grpc.NewServer(
		// room for the largest document plus the envelope
		grpc.MaxRecvMsgSize(ingest.MaxDocumentSize+1<<20),
		grpc.ChainUnaryInterceptor(LoggingInterceptor(log), interceptor.Unary),
	)
	pb.RegisterAuthServiceServer(s, authServer)
	pb.RegisterPredictionServiceServer(s, predictionServer)
	return s
}

// LoggingInterceptor logs every unary call with its status code and latency.
func LoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		attrs := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
		if err != nil {
			log.Warn("Call failed", append(attrs, "error", err)...)
			return resp, err
		}
		log.Debug("Call served", attrs...)
		return resp, err
	}
}
