package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	pb "github.com/dmitrijs2005/jobkeeper/internal/proto"
	"github.com/dmitrijs2005/jobkeeper/internal/wire"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type GRPCClient struct {
	endpointURL    string
	requestTimeout time.Duration
	conn           *grpc.ClientConn
	client         pb.JobKeeperClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	listeners    []func(Session)

	refreshGroup singleflight.Group
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

// SetTokens installs a token pair without notifying listeners.
func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = access, refresh
	s.mu.Unlock()
}

func (s *GRPCClient) OnTokens(fn func(Session)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *GRPCClient) issue(sess Session) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = sess.AccessToken, sess.RefreshToken
	listeners := append([]func(Session){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(sess)
	}
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if _, ok := ctx.Deadline(); !ok && s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	used, _ := s.tokens()
	err := invoker(withAccessToken(ctx, used), method, req, reply, cc, opts...)
	if err == nil || pb.PublicMethods[method] {
		return err
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}

	access, rerr := s.refreshOnce(ctx, used)
	if rerr != nil {
		return err
	}

	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

// refreshOnce rotates the token pair unless another caller already replaced
// the access token that was rejected. Concurrent callers share one Refresh.
func (s *GRPCClient) refreshOnce(ctx context.Context, rejected string) (string, error) {
	v, err, _ := s.refreshGroup.Do("refresh", func() (any, error) {
		access, refresh := s.tokens()
		if access != rejected {
			return access, nil
		}
		if refresh == "" {
			return "", common.ErrAuth
		}
		sess, err := s.Refresh(ctx, refresh)
		if err != nil {
			return "", err
		}
		return sess.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func NewJobKeeperClient(endpointURL string, requestTimeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: requestTimeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewJobKeeperClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if wire.String(resp, "status") != "OK" {
		return common.ErrNetwork
	}

	return nil
}

func (s *GRPCClient) SignUp(ctx context.Context, email, password string) (models.Identity, error) {
	req, err := wire.ToStruct(map[string]any{"email": email, "password": password})
	if err != nil {
		return models.Identity{}, err
	}

	resp, err := s.client.SignUp(ctx, req)
	if err != nil {
		return models.Identity{}, s.mapError(err)
	}

	var out struct {
		Identity models.Identity `json:"identity"`
	}
	if err := wire.FromStruct(resp, &out); err != nil {
		return models.Identity{}, err
	}
	return out.Identity, nil
}

func decodeSession(resp *structpb.Struct) (Session, error) {
	var out struct {
		AccessToken  string          `json:"access_token"`
		RefreshToken string          `json:"refresh_token"`
		Identity     models.Identity `json:"identity"`
	}
	if err := wire.FromStruct(resp, &out); err != nil {
		return Session{}, err
	}
	if out.AccessToken == "" || out.Identity.ID == "" {
		return Session{}, fmt.Errorf("%w: incomplete token response", common.ErrAuth)
	}
	return Session{Identity: out.Identity, AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}, nil
}

func (s *GRPCClient) SignIn(ctx context.Context, email, password string) (Session, error) {
	req, err := wire.ToStruct(map[string]any{"email": email, "password": password})
	if err != nil {
		return Session{}, err
	}

	resp, err := s.client.SignIn(ctx, req)
	if err != nil {
		return Session{}, s.mapError(err)
	}

	sess, err := decodeSession(resp)
	if err != nil {
		return Session{}, err
	}
	s.issue(sess)
	return sess, nil
}

func (s *GRPCClient) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	req, err := wire.ToStruct(map[string]any{"refresh_token": refreshToken})
	if err != nil {
		return Session{}, err
	}

	resp, err := s.client.Refresh(ctx, req)
	if err != nil {
		return Session{}, s.mapError(err)
	}

	sess, err := decodeSession(resp)
	if err != nil {
		return Session{}, err
	}
	s.issue(sess)
	return sess, nil
}

// SignOut revokes the refresh token on the server and forgets both tokens
// locally, even when the server call fails.
func (s *GRPCClient) SignOut(ctx context.Context) error {
	_, refresh := s.tokens()
	defer s.SetTokens("", "")

	req, err := wire.ToStruct(map[string]any{"refresh_token": refresh})
	if err != nil {
		return err
	}
	if _, err := s.client.SignOut(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Me(ctx context.Context) (models.Identity, error) {
	resp, err := s.client.Me(ctx, &emptypb.Empty{})
	if err != nil {
		return models.Identity{}, s.mapError(err)
	}

	var out struct {
		Identity models.Identity `json:"identity"`
	}
	if err := wire.FromStruct(resp, &out); err != nil {
		return models.Identity{}, err
	}
	return out.Identity, nil
}

func (s *GRPCClient) List(ctx context.Context, collection string, dst any) error {
	req, err := wire.ToStruct(map[string]any{"collection": collection})
	if err != nil {
		return err
	}

	resp, err := s.client.List(ctx, req)
	if err != nil {
		return s.mapError(err)
	}
	return wire.FromList(resp, dst)
}

func (s *GRPCClient) Insert(ctx context.Context, collection string, fields map[string]any, dst any) error {
	req, err := wire.ToStruct(map[string]any{"collection": collection, "fields": fields})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrWrite, err)
	}

	resp, err := s.client.Insert(ctx, req)
	if err != nil {
		return s.mapError(err)
	}
	return wire.FromStruct(resp, dst)
}

func (s *GRPCClient) Update(ctx context.Context, collection, id string, fields map[string]any, dst any) error {
	req, err := wire.ToStruct(map[string]any{"collection": collection, "id": id, "fields": fields})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrWrite, err)
	}

	resp, err := s.client.Update(ctx, req)
	if err != nil {
		return s.mapError(err)
	}
	return wire.FromStruct(resp, dst)
}

func (s *GRPCClient) Delete(ctx context.Context, collection, id string) error {
	req, err := wire.ToStruct(map[string]any{"collection": collection, "id": id})
	if err != nil {
		return err
	}

	if _, err := s.client.Delete(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	resp, err := s.client.GetProfile(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}

	p := &models.Profile{}
	if err := wire.FromStruct(resp, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *GRPCClient) SaveProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	req, err := wire.ToStruct(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrWrite, err)
	}

	resp, err := s.client.SaveProfile(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	saved := &models.Profile{}
	if err := wire.FromStruct(resp, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *GRPCClient) Upload(ctx context.Context, path, contentType string, size int64) (string, string, error) {
	req, err := wire.ToStruct(map[string]any{"path": path, "content_type": contentType, "size": size})
	if err != nil {
		return "", "", err
	}

	resp, err := s.client.Upload(ctx, req)
	if err != nil {
		return "", "", s.mapError(err)
	}
	return wire.String(resp, "upload_url"), wire.String(resp, "public_url"), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", common.ErrAuth, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %w", common.ErrWrite, common.ErrEmailTaken)
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", common.ErrWrite, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", common.ErrNetwork, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
