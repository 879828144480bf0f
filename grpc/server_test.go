package grpc_test

import (
	"context"
	"log/slog"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tauthy/ai"
	"tauthy/auth"
	tgrpc "tauthy/grpc"
	"tauthy/grpc/client"
	"tauthy/grpc/server"
	"tauthy/moderation"
	"tauthy/observability"
	pb "tauthy/proto/tauthy/v1"
	"tauthy/repositories"
	"tauthy/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

type spaceSegmenter struct{}

func (spaceSegmenter) Segment(text string) []string { return strings.Fields(text) }

type ServerSuite struct {
	suite.Suite
	listener *bufconn.Listener
	server   *grpc.Server
	store    *repositories.Store
	index    *repositories.HistoryIndex
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	req := s.Require()
	log := logs.GetLoggerFromLevel(slog.LevelError)
	dir := s.T().TempDir()

	store, err := repositories.OpenStore(repositories.DriverBadger, filepath.Join(dir, "badger"), log)
	req.NoError(err)
	index, err := repositories.NewHistoryIndex(filepath.Join(dir, "bluge"), log, 10)
	req.NoError(err)
	s.store, s.index = store, index

	model, err := ai.NewModelContext(ai.Artifact{
		Version:    "suite-1",
		Classes:    []string{ai.LabelAI, ai.LabelHuman},
		Vocabulary: map[string]int{"quick": 0, "brown": 1, "fox": 2, "delve": 3, "tapestry": 4},
		IDF:        []float64{1.2, 1.3, 1.1, 2.0, 2.2},
		Coef:       [][]float64{{0.8, 0.6, 0.9, -2.5, -2.1}},
		Intercept:  []float64{0.1},
	}, ai.Tokenizers{Thai: ai.NewThaiDictionary(spaceSegmenter{}, nil), Latin: ai.WhitespaceSplit{}})
	req.NoError(err)
	markers, err := moderation.NewDefaultScanner()
	req.NoError(err)
	issuer, err := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	req.NoError(err)

	monitor := observability.NewMonitor(log)
	predictions := services.NewPredictionService(log, services.PredictionDeps{
		Model:   model,
		History: store.History,
		Index:   index,
		Markers: markers,
		Monitor: monitor,
	}, false)

	s.server = tgrpc.NewServer(log, issuer,
		server.NewAuthServer(services.NewAuthService(store.Users, issuer, log)),
		server.NewPredictionServer(predictions, model, monitor, 50))
	s.listener = bufconn.Listen(1 << 20)
	go func() { _ = s.server.Serve(s.listener) }()
}

func (s *ServerSuite) TearDownTest() {
	s.server.Stop()
	s.Require().NoError(s.index.Close())
	s.Require().NoError(s.store.Close())
}

func (s *ServerSuite) newClient() *client.Client {
	c, err := client.Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return s.listener.DialContext(ctx)
		}))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = c.Close() })
	return c
}

func (s *ServerSuite) register(c *client.Client, username string) *pb.AuthResponse {
	res, err := c.Register(context.Background(), &pb.RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Password:  "Passw0rdLong",
	})
	s.Require().NoError(err)
	return res
}

func (s *ServerSuite) TestHealthIsPublic() {
	req := s.Require()
	res, err := s.newClient().Health(context.Background())
	req.NoError(err)
	req.Equal("ok", res.Status)
	req.Equal("suite-1", res.ModelVersion)
	req.Equal([]string{ai.LabelAI, ai.LabelHuman}, res.Classes)
}

func (s *ServerSuite) TestPredictNeedsToken() {
	_, err := s.newClient().Predict(context.Background(), "Furthermore, we delve into the rich tapestry of ideas.")
	s.Require().Equal(codes.Unauthenticated, status.Code(err))
}

func (s *ServerSuite) TestRegisterLoginPredict() {
	req := s.Require()
	ctx := context.Background()
	c := s.newClient()

	registered := s.register(c, "alice")
	req.NotEmpty(registered.Token)

	logged, err := c.Login(ctx, "alice", "Passw0rdLong")
	req.NoError(err)
	req.Equal(registered.UserId, logged.UserId)

	p, err := c.Predict(ctx, "Furthermore, we delve into the rich tapestry of ideas.")
	req.NoError(err)
	req.Equal(ai.LabelAI, p.Label)
	req.Len(p.Details, 2)
	req.Equal(ai.LabelAI, p.Details[0].Label)
	req.Equal(ai.LabelHuman, p.Details[1].Label)
	req.InDelta(100, p.Details[0].Percent+p.Details[1].Percent, 1e-9)
	req.Contains(p.Markers, "delve into")

	short, err := c.Predict(ctx, "quick brown fox")
	req.NoError(err)
	req.Equal(ai.LabelUndecided, short.Label)

	req.NoError(c.Feedback(ctx, p.Id, "human"))

	history, err := c.History(ctx, 0)
	req.NoError(err)
	req.Len(history, 2)
	req.Equal(short.Id, history[0].Id)
	req.Equal("human", history[1].Feedback)

	found, err := c.Search(ctx, "tapestry", 0)
	req.NoError(err)
	req.Equal(uint64(1), found.Total)
	req.Equal(p.Id, found.Entries[0].Id)
}

func (s *ServerSuite) TestErrorsMapToStatusCodes() {
	req := s.Require()
	ctx := context.Background()
	c := s.newClient()
	s.register(c, "bob")

	_, err := c.Register(ctx, &pb.RegisterRequest{FirstName: "B", LastName: "B", Username: "bob", Password: "Passw0rdLong"})
	req.Equal(codes.AlreadyExists, status.Code(err))

	_, err = c.Login(ctx, "bob", "wrong-pass1")
	req.Equal(codes.Unauthenticated, status.Code(err))

	_, err = c.Login(ctx, "bob", "Passw0rdLong")
	req.NoError(err)

	_, err = c.Predict(ctx, "   ")
	req.Equal(codes.InvalidArgument, status.Code(err))

	req.Equal(codes.InvalidArgument, status.Code(c.Feedback(ctx, "missing", "robot")))
	req.Equal(codes.NotFound, status.Code(c.Feedback(ctx, "missing", "ai")))

	_, err = c.Reanalyze(ctx, "missing")
	req.Equal(codes.NotFound, status.Code(err))

	_, err = c.PredictDocument(ctx, "pic.png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	req.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ServerSuite) TestUsersOnlySeeTheirOwnHistory() {
	req := s.Require()
	ctx := context.Background()

	alice := s.newClient()
	s.register(alice, "alice")
	p, err := alice.Predict(ctx, "The quick brown fox jumps over the lazy dog today")
	req.NoError(err)

	carol := s.newClient()
	s.register(carol, "carol")
	history, err := carol.History(ctx, 10)
	req.NoError(err)
	req.Empty(history)

	req.Equal(codes.NotFound, status.Code(carol.Feedback(ctx, p.Id, "ai")))
	found, err := carol.Search(ctx, "fox", 0)
	req.NoError(err)
	req.Zero(found.Total)
}

// The services speak the stock protobuf codec, so a plain generated client works unchanged.
func (s *ServerSuite) TestGeneratedClientUsesProtobufCodec() {
	req := s.Require()
	ctx := context.Background()
	req.NotNil(encoding.GetCodecV2("proto"))

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return s.listener.DialContext(ctx)
		}))
	req.NoError(err)
	defer conn.Close()

	registered, err := pb.NewAuthServiceClient(conn).Register(ctx, &pb.RegisterRequest{
		FirstName: "Dana",
		LastName:  "Proto",
		Username:  "dana",
		Password:  "Passw0rdLong",
	}, grpc.CallContentSubtype("proto"))
	req.NoError(err)
	req.NotEmpty(registered.GetToken())

	health, err := pb.NewPredictionServiceClient(conn).Health(ctx, &pb.HealthRequest{})
	req.NoError(err)
	raw, err := proto.Marshal(health)
	req.NoError(err)
	var decoded pb.HealthResponse
	req.NoError(proto.Unmarshal(raw, &decoded))
	req.True(proto.Equal(health, &decoded))
	req.Equal("suite-1", decoded.GetModelVersion())
	req.False(decoded.GetStartedAt().AsTime().IsZero())
}
