package client

import (
	"context"
	"fmt"

	pb "tauthy/proto/tauthy/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Client talks to a tauthy server. Calls other than Register, Login and Health
// need a token, set with SetToken or obtained through Login.
type Client struct {
	conn        *grpc.ClientConn
	auth        pb.AuthServiceClient
	predictions pb.PredictionServiceClient
	token       string
}

// Dial opens a plaintext connection. The server is expected to sit behind a TLS proxy
// when exposed beyond localhost.
func Dial(address string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", address, err)
	}
	return New(conn), nil
}

func New(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:        conn,
		auth:        pb.NewAuthServiceClient(conn),
		predictions: pb.NewPredictionServiceClient(conn),
	}
}

func (c *Client) Close() error { return c.conn.Close() }

func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string { return c.token }

func (c *Client) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	res, err := c.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	c.token = res.Token
	return res, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*pb.AuthResponse, error) {
	res, err := c.auth.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	c.token = res.Token
	return res, nil
}

func (c *Client) Predict(ctx context.Context, text string) (*pb.Prediction, error) {
	return c.predictions.Predict(c.authorized(ctx), &pb.PredictRequest{Text: text})
}

func (c *Client) PredictDocument(ctx context.Context, name string, data []byte) (*pb.Prediction, error) {
	return c.predictions.PredictDocument(c.authorized(ctx), &pb.PredictDocumentRequest{Name: name, Data: data})
}

func (c *Client) Reanalyze(ctx context.Context, id string) (*pb.Prediction, error) {
	return c.predictions.Reanalyze(c.authorized(ctx), &pb.ReanalyzeRequest{Id: id})
}

func (c *Client) Feedback(ctx context.Context, id, label string) error {
	_, err := c.predictions.Feedback(c.authorized(ctx), &pb.FeedbackRequest{Id: id, Label: label})
	return err
}

func (c *Client) History(ctx context.Context, limit int) ([]*pb.Prediction, error) {
	res, err := c.predictions.History(c.authorized(ctx), &pb.HistoryRequest{Limit: int32(limit)})
	if err != nil {
		return nil, err
	}
	return res.Entries, nil
}

func (c *Client) Search(ctx context.Context, query string, offset int) (*pb.SearchResponse, error) {
	return c.predictions.Search(c.authorized(ctx), &pb.SearchRequest{Query: query, Offset: int32(offset)})
}

func (c *Client) Health(ctx context.Context) (*pb.HealthResponse, error) {
	return c.predictions.Health(ctx, &pb.HealthRequest{})
}

func (c *Client) authorized(ctx context.Context) context.Context {
	if c.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}
