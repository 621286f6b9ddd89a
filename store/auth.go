package store

import (
	"context"
	"sync"

	"github.com/Aayushsah6969/ShoeStore/client"
)

// Auth tracks authentication state for one application. The local flag is
// an optimistic cache derived from cookie presence and the cached email;
// CheckAuth is the authoritative server round trip and must be consulted
// before any privileged action.
type Auth struct {
	mu     sync.Mutex
	client *client.Client
	bucket *Bucket
	cart   *Cart // storefront cart, cleared on logout; nil for the admin app
	admin  bool

	isAuthenticated bool
	email           string
	loading         bool
	err             error
}

type persistedAuth struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	Email           string `json:"email"`
}

// NewAuth builds the storefront auth container. The cart is cleared on
// logout.
func NewAuth(c *client.Client, bucket *Bucket, cart *Cart) *Auth {
	return newAuth(c, bucket, cart, false)
}

// NewAdminAuth builds the dashboard auth container, which drives the
// admin-login endpoints and the admin session cookie.
func NewAdminAuth(c *client.Client, bucket *Bucket) *Auth {
	return newAuth(c, bucket, nil, true)
}

func newAuth(c *client.Client, bucket *Bucket, cart *Cart, admin bool) *Auth {
	a := &Auth{client: c, bucket: bucket, cart: cart, admin: admin}
	if bucket != nil {
		var persisted persistedAuth
		if ok, err := bucket.Get("auth", &persisted); err == nil && ok {
			a.isAuthenticated = persisted.IsAuthenticated
			a.email = persisted.Email
		}
	}
	return a
}

func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isAuthenticated
}

func (a *Auth) Email() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.email
}

func (a *Auth) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Err is the last auth action's failure, or nil.
func (a *Auth) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Login authenticates and flips the flag on success. Failures land in Err
// and leave the state unauthenticated.
func (a *Auth) Login(ctx context.Context, email, password string) error {
	a.begin()

	var err error
	if a.admin {
		err = a.client.AdminLogin(ctx, email, password)
	} else {
		_, err = a.client.Login(ctx, email, password)
	}
	if err != nil {
		a.finish(false, "", err)
		return err
	}
	a.finish(true, email, nil)
	return nil
}

// Signup creates the account without authenticating.
func (a *Auth) Signup(ctx context.Context, fullName, email, password string) error {
	a.begin()
	if err := a.client.Signup(ctx, fullName, email, password); err != nil {
		a.mu.Lock()
		a.loading = false
		a.err = err
		a.mu.Unlock()
		return err
	}
	a.mu.Lock()
	a.loading = false
	a.err = nil
	a.mu.Unlock()
	return nil
}

// Logout clears the session cookie, the local flag and, on the storefront,
// the cart. The local state resets even when the network call fails.
func (a *Auth) Logout(ctx context.Context) {
	if a.admin {
		_ = a.client.AdminLogout(ctx)
	} else {
		_ = a.client.Logout(ctx)
	}
	a.finish(false, "", nil)
	if a.cart != nil {
		a.cart.Clear()
	}
}

// CheckAuth re-validates the optimistic flag against the server. Only the
// server's answer is trusted. The admin container verifies against the
// admin session, the storefront against the user session.
func (a *Auth) CheckAuth(ctx context.Context) bool {
	var (
		info *client.UserInfo
		err  error
	)
	if a.admin {
		info, err = a.client.AdminMe(ctx)
	} else {
		info, err = a.client.Me(ctx)
	}
	if err != nil {
		a.finish(false, "", nil)
		return false
	}
	a.finish(true, info.Email, nil)
	return true
}

func (a *Auth) begin() {
	a.mu.Lock()
	a.loading = true
	a.err = nil
	a.mu.Unlock()
}

func (a *Auth) finish(authenticated bool, email string, err error) {
	a.mu.Lock()
	a.isAuthenticated = authenticated
	a.email = email
	a.loading = false
	a.err = err
	a.persist()
	a.mu.Unlock()
}

// persist is best-effort; callers hold the lock.
func (a *Auth) persist() {
	if a.bucket == nil {
		return
	}
	_ = a.bucket.Set("auth", persistedAuth{
		IsAuthenticated: a.isAuthenticated,
		Email:           a.email,
	})
}
