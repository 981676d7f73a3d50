// Package grpc exposes the server services as the jobkeeper.v1.JobKeeper
// gRPC service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	pb "github.com/dmitrijs2005/jobkeeper/internal/proto"
	smodels "github.com/dmitrijs2005/jobkeeper/internal/server/models"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/records"
	"github.com/dmitrijs2005/jobkeeper/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*smodels.User, error)
	SignIn(ctx context.Context, email, password string) (*services.TokenPair, *smodels.User, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, *smodels.User, error)
	SignOut(ctx context.Context, userID, refreshToken string) error
	Me(ctx context.Context, userID string) (*smodels.User, error)
}

type RecordService interface {
	List(ctx context.Context, userID, collection string) ([]records.Row, error)
	Insert(ctx context.Context, userID, collection string, fields map[string]any) (records.Row, error)
	Update(ctx context.Context, userID, collection, id string, fields map[string]any) (records.Row, error)
	Delete(ctx context.Context, userID, collection, id string) error
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Save(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error)
}

type StorageService interface {
	PresignUpload(ctx context.Context, userID, path, contentType string, size int64) (*services.Upload, error)
}

type GRPCServer struct {
	pb.UnimplementedJobKeeperServer
	address   string
	users     UserService
	records   RecordService
	profiles  ProfileService
	storage   StorageService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, rs RecordService, ps ProfileService, ss StorageService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		records:   rs,
		profiles:  ps,
		storage:   ss,
		jwtSecret: []byte(secretKey),
	}
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterJobKeeperServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	return srv.Serve(listen)
}
