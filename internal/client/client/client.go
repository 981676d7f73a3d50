package client

import (
	"context"

	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

// Session is what a successful sign-in or refresh yields.
type Session struct {
	Identity     models.Identity
	AccessToken  string
	RefreshToken string
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	SignUp(ctx context.Context, email, password string) (models.Identity, error)
	SignIn(ctx context.Context, email, password string) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (Session, error)
	SignOut(ctx context.Context) error
	Me(ctx context.Context) (models.Identity, error)

	// List decodes the rows of collection into dst, a pointer to a slice.
	List(ctx context.Context, collection string, dst any) error
	// Insert and Update decode the row returned by the server into dst.
	Insert(ctx context.Context, collection string, fields map[string]any, dst any) error
	Update(ctx context.Context, collection, id string, fields map[string]any, dst any) error
	Delete(ctx context.Context, collection, id string) error

	GetProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)
	// Upload asks for a presigned PUT URL for path. The returned public URL
	// is valid once the bytes are PUT to uploadURL.
	Upload(ctx context.Context, path, contentType string, size int64) (uploadURL, publicURL string, err error)

	// OnTokens registers fn to be called whenever tokens are issued or
	// rotated, including transparent refreshes.
	OnTokens(fn func(Session))
}
