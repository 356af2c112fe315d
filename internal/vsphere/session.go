package vsphere

import (
	"context"
	"net/url"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/view"
	"github.com/vmware/govmomi/vim25"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"
)

// Config holds what is needed to establish one read-only session.
type Config struct {
	Endpoint string
	Username string
	Password string
	Insecure bool
}

// Session is the shared connection all controls query. It is read-only
// and safe for concurrent fetches.
type Session struct {
	c      *vim25.Client
	logout func(context.Context) error
}

// Connect logs in to the endpoint. Bad credentials surface as
// *AuthError; anything else as *TransportError.
func Connect(ctx context.Context, cfg Config) (*Session, error) {
	u, err := soap.ParseURL(cfg.Endpoint)
	if err != nil {
		return nil, &TransportError{Op: "parse endpoint", Err: err}
	}
	u.User = url.UserPassword(cfg.Username, cfg.Password)

	c, err := govmomi.NewClient(ctx, u, cfg.Insecure)
	if err != nil {
		if isInvalidLogin(err) {
			return nil, &AuthError{Err: err}
		}
		return nil, &TransportError{Op: "connect", Err: err}
	}

	return &Session{
		c:      c.Client,
		logout: func(ctx context.Context) error { return c.Logout(ctx) },
	}, nil
}

// NewSession wraps an already-authenticated client. Used with the
// vCenter simulator in tests.
func NewSession(c *vim25.Client) *Session {
	return &Session{c: c}
}

// Logout ends the session. Safe to call on simulator-backed sessions.
func (s *Session) Logout(ctx context.Context) error {
	if s.logout == nil {
		return nil
	}
	return s.logout(ctx)
}

func isInvalidLogin(err error) bool {
	if !soap.IsSoapFault(err) {
		return false
	}
	_, ok := soap.ToSoapFault(err).VimFault().(types.InvalidLogin)
	return ok
}

// retrieve runs one container-view property collection for the given
// managed object kind. Every caller re-queries; nothing is cached.
func (s *Session) retrieve(ctx context.Context, kind string, props []string, dst any) error {
	m := view.NewManager(s.c)
	v, err := m.CreateContainerView(ctx, s.c.ServiceContent.RootFolder, []string{kind}, true)
	if err != nil {
		return &TransportError{Op: "create " + kind + " view", Err: err}
	}
	defer func() { _ = v.Destroy(ctx) }()

	if err := v.Retrieve(ctx, []string{kind}, props, dst); err != nil {
		return &TransportError{Op: "retrieve " + kind, Err: err}
	}
	return nil
}
