package grpc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobkeeper/internal/models"
	smodels "github.com/dmitrijs2005/jobkeeper/internal/server/models"
	"github.com/dmitrijs2005/jobkeeper/internal/server/services"
	"github.com/dmitrijs2005/jobkeeper/internal/wire"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func identity(u *smodels.User) models.Identity {
	return models.Identity{ID: u.ID, Email: u.Email, Metadata: u.Metadata}
}

func (s *GRPCServer) respond(ctx context.Context, v any) (*structpb.Struct, error) {
	out, err := wire.ToStruct(v)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return out, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.respond(ctx, map[string]any{"status": "OK"})
}

func (s *GRPCServer) SignUp(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	meta := map[string]string{}
	for k, v := range wire.Object(req, "metadata") {
		meta[k] = fmt.Sprint(v)
	}

	user, err := s.users.SignUp(ctx, wire.String(req, "email"), wire.String(req, "password"), meta)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return s.respond(ctx, map[string]any{"identity": identity(user)})
}

func (s *GRPCServer) tokens(ctx context.Context, pair *services.TokenPair, user *smodels.User) (*structpb.Struct, error) {
	return s.respond(ctx, map[string]any{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"identity":      identity(user),
	})
}

func (s *GRPCServer) SignIn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	pair, user, err := s.users.SignIn(ctx, wire.String(req, "email"), wire.String(req, "password"))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.tokens(ctx, pair, user)
}

func (s *GRPCServer) Refresh(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	pair, user, err := s.users.Refresh(ctx, wire.String(req, "refresh_token"))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.tokens(ctx, pair, user)
}

func (s *GRPCServer) SignOut(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.SignOut(ctx, userID, wire.String(req, "refresh_token")); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Me(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.respond(ctx, map[string]any{"identity": identity(user)})
}

func (s *GRPCServer) List(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.records.List(ctx, userID, wire.String(req, "collection"))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out, err := wire.ToList(rows)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return out, nil
}

func (s *GRPCServer) Insert(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	fields := wire.Object(req, "fields")
	if fields == nil {
		fields = map[string]any{}
	}
	row, err := s.records.Insert(ctx, userID, wire.String(req, "collection"), fields)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.respond(ctx, row)
}

func (s *GRPCServer) Update(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	fields := wire.Object(req, "fields")
	if fields == nil {
		fields = map[string]any{}
	}
	row, err := s.records.Update(ctx, userID, wire.String(req, "collection"), wire.String(req, "id"), fields)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.respond(ctx, row)
}

func (s *GRPCServer) Delete(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.records.Delete(ctx, userID, wire.String(req, "collection"), wire.String(req, "id")); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.respond(ctx, p)
}

func (s *GRPCServer) SaveProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	var p models.Profile
	if err := wire.FromStruct(req, &p); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	saved, err := s.profiles.Save(ctx, userID, &p)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.respond(ctx, saved)
}

func (s *GRPCServer) Upload(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	size := int64(req.GetFields()["size"].GetNumberValue())
	up, err := s.storage.PresignUpload(ctx, userID, wire.String(req, "path"), wire.String(req, "content_type"), size)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.respond(ctx, map[string]any{"upload_url": up.UploadURL, "public_url": up.PublicURL})
}
