package server

import (
	"context"

	"tauthy/errors"
	pb "tauthy/proto/tauthy/v1"
	"tauthy/services"
)

type AuthServer struct {
	pb.UnimplementedAuthServiceServer
	authService services.IAuthService
}

// NewAuthServer creates a new gRPC server for authentication.
func NewAuthServer(authService services.IAuthService) *AuthServer {
	return &AuthServer{authService: authService}
}

// Register validates the account, stores it and opens a session right away.
func (s *AuthServer) Register(_ context.Context, in *pb.RegisterRequest) (*pb.AuthResponse, error) {
	session, err := s.authService.Register(services.RegisterInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toAuthResponse(session), nil
}

// Login verifies credentials and returns a session token.
func (s *AuthServer) Login(_ context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	session, err := s.authService.Login(in.Username, in.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toAuthResponse(session), nil
}

func toAuthResponse(s services.Session) *pb.AuthResponse {
	return &pb.AuthResponse{Token: s.Token, UserId: s.UserID, Username: s.Username}
}
