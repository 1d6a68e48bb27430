package supabasegw

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
)

// VerifySession asks the auth server who owns accessToken. Any failure counts as no session:
// a token the backend cannot confirm must not be used for a mutation.
func (g *Gateway) VerifySession(ctx context.Context, accessToken string) (gw.Session, error) {
	token := strings.TrimSpace(strings.TrimPrefix(accessToken, "Bearer "))
	if token == "" {
		return gw.Session{}, errors.WithStack(gw.ErrNoSession)
	}
	user, err := g.auth.Auth.User(ctx, token)
	if err != nil {
		return gw.Session{}, errors.Mark(errors.Wrap(err, "verify session"), gw.ErrNoSession)
	}
	if user == nil || user.ID == "" {
		return gw.Session{}, errors.WithStack(gw.ErrNoSession)
	}
	return gw.Session{UserID: user.ID, Email: user.Email, AccessToken: token}, nil
}
