// Package profile manages the per-user profile record and the files attached
// to it. Files go straight to object storage through presigned URLs; the
// profile only keeps their public URLs.
package profile

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/filex"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/netx"
)

// Transport is the profile half of client.Client.
type Transport interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)
	Upload(ctx context.Context, path, contentType string, size int64) (uploadURL, publicURL string, err error)
}

// Slot names a file field of the profile.
type Slot string

const (
	SlotAvatar    Slot = "avatar"
	SlotCV        Slot = "cv"
	SlotPortfolio Slot = "portfolio"
)

func (s Slot) field(p *models.Profile) (**string, error) {
	switch s {
	case SlotAvatar:
		return &p.AvatarURL, nil
	case SlotCV:
		return &p.CVURL, nil
	case SlotPortfolio:
		return &p.PortfolioURL, nil
	default:
		return nil, fmt.Errorf("%w: unknown file slot %q", common.ErrWrite, s)
	}
}

type Service struct {
	transport Transport
	http      *http.Client
	logger    logging.Logger
}

func NewService(t Transport, httpClient *http.Client, logger logging.Logger) *Service {
	return &Service{transport: t, http: httpClient, logger: logger.With("module", "profile")}
}

func (s *Service) Get(ctx context.Context) (*models.Profile, error) {
	return s.transport.GetProfile(ctx)
}

func (s *Service) Save(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	return s.transport.SaveProfile(ctx, p)
}

// Attach uploads the local file into slot and records its public URL in the
// profile. The saved profile is returned.
func (s *Service) Attach(ctx context.Context, slot Slot, localPath string) (*models.Profile, error) {
	current, err := s.transport.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	field, err := slot.field(current)
	if err != nil {
		return nil, err
	}

	data, contentType, err := filex.ReadUpload(localPath)
	if err != nil {
		return nil, err
	}

	remote := string(slot) + "/" + filepath.Base(localPath)
	putURL, publicURL, err := s.transport.Upload(ctx, remote, contentType, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", remote, err)
	}
	if err := netx.PutPresigned(ctx, s.http, putURL, contentType, data); err != nil {
		return nil, fmt.Errorf("upload %s: %w", remote, err)
	}
	s.logger.Info(ctx, "File uploaded", "slot", slot, "bytes", len(data))

	*field = &publicURL
	return s.transport.SaveProfile(ctx, current)
}
