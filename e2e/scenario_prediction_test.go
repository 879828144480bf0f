package e2e

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tauthy/grpc/client"
	pb "tauthy/proto/tauthy/v1"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type testPredictionSuite struct {
	BaseGrpcSuite
}

func TestPredictionSuite(t *testing.T) {
	suite.Run(t, &testPredictionSuite{})
}

func (s *testPredictionSuite) TestFullPredictionFlow() {
	username := "e2e" + strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
	c := s.Dial(s.T(), "prediction flow as "+username)
	defer c.Close()

	var predicted *pb.Prediction

	s.Run("Step 0: Server is healthy", func() {
		s.WithClient(c, func(ctx context.Context, c *client.Client) {
			h, err := c.Health(ctx)
			s.Require().NoError(err)
			s.Require().Equal("ok", h.Status)
			s.Require().NotEmpty(h.ModelVersion)
		})
	})

	s.Run("Step 1: Register", func() {
		s.WithClient(c, func(ctx context.Context, c *client.Client) {
			res, err := c.Register(ctx, &pb.RegisterRequest{
				FirstName: "End",
				LastName:  "ToEnd",
				Username:  username,
				Password:  "e2ePassw0rd",
			})
			s.Require().NoError(err)
			s.Require().NotEmpty(res.Token)
		})
	})

	s.Run("Step 2: Predict", func() {
		s.WithClient(c, func(ctx context.Context, c *client.Client) {
			p, err := c.Predict(ctx, "In today's fast-paced world, it is important to note that technology plays a crucial role in shaping how we delve into new ideas.")
			s.Require().NoError(err)
			s.Require().Contains([]string{"ai", "human"}, p.Label)
			var sum float64
			for _, score := range p.Details {
				sum += score.Percent
			}
			s.Require().InDelta(100, sum, 1e-6)
			s.Require().NotEmpty(p.Markers)
			predicted = p
		})
	})

	s.Run("Step 3: Short text is undecided", func() {
		s.WithClient(c, func(ctx context.Context, c *client.Client) {
			p, err := c.Predict(ctx, "hello there")
			s.Require().NoError(err)
			s.Require().Equal("undecided", p.Label)
		})
	})

	s.Run("Step 4: Feedback and history", func() {
		s.Require().NotNil(predicted)
		s.WithClient(c, func(ctx context.Context, c *client.Client) {
			s.Require().NoError(c.Feedback(ctx, predicted.Id, "human"))
			s.Require().Equal(codes.InvalidArgument, status.Code(c.Feedback(ctx, predicted.Id, "robot")))

			history, err := c.History(ctx, 10)
			s.Require().NoError(err)
			s.Require().Len(history, 2)
			s.Require().Equal(predicted.Id, history[1].Id)
			s.Require().Equal("human", history[1].Feedback)
		})
	})

	s.Run("Step 5: Search", func() {
		s.WithClient(c, func(ctx context.Context, c *client.Client) {
			res, err := c.Search(ctx, "technology", 0)
			s.Require().NoError(err)
			s.Require().Equal(uint64(1), res.Total)
		})
	})

	s.Run("Step 6: Document", func() {
		if s.Config.SamplePDF == "" {
			s.T().Skip("E2E_SAMPLE_PDF not set")
		}
		data, err := os.ReadFile(s.Config.SamplePDF)
		s.Require().NoError(err)
		s.WithClient(c, func(ctx context.Context, c *client.Client) {
			p, err := c.PredictDocument(ctx, filepath.Base(s.Config.SamplePDF), data)
			s.Require().NoError(err)
			s.Require().Equal(filepath.Base(s.Config.SamplePDF), p.Source)
		})
	})
}

func (s *testPredictionSuite) TestRejectsAnonymousCalls() {
	c := s.Dial(s.T(), "anonymous")
	defer c.Close()

	s.WithClient(c, func(ctx context.Context, c *client.Client) {
		_, err := c.History(ctx, 10)
		s.Require().Equal(codes.Unauthenticated, status.Code(err))
	})
}
