// Package wbs is a client for the legacy Withings Body Scale (WBS) web
// services API. It authenticates a caller, lists users who share their data,
// and retrieves hierarchical measure records (weight, height, fat ratio, ...).
//
// Every public operation is a single synchronous round trip with no retry or
// background work. Errors are plain values: match the sentinels ErrValidation,
// ErrTransport and ErrProtocol with errors.Is, and *RemoteError with
// errors.As.
//
// Authentication uses the service's fixed challenge scheme: a one-time token
// salts a two-stage MD5 hash of the credentials. MD5 is kept bit-for-bit for
// wire compatibility with the remote service; it is not an endorsement of the
// scheme and must not be reused elsewhere.
package wbs

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Client is the account-level entry point: it probes the API, fetches auth
// challenges and produces User entities. Users returned by its methods share
// the Client's Transport.
type Client struct {
	transport *Transport
}

// New builds a Client with its own Transport configured by opts.
func New(opts ...TransportOption) *Client {
	return &Client{transport: NewTransport(opts...)}
}

// NewWithTransport builds a Client around an existing Transport.
func NewWithTransport(t *Transport) *Client {
	return &Client{transport: t}
}

// Probe reports whether the remote API answers a lightweight no-parameter
// call. Any error maps to false.
func (c *Client) Probe(ctx context.Context) bool {
	_, err := c.transport.Call(ctx, "once", "probe", nil)
	return err == nil
}

// AuthChallenge fetches the one-time token that salts the password hash.
// A challenge is single-use by server contract: fetch a fresh one for every
// authentication attempt, never cache it.
func (c *Client) AuthChallenge(ctx context.Context) (string, error) {
	body, err := c.transport.Call(ctx, "once", "get", nil)
	if err != nil {
		return "", err
	}

	var payload struct {
		Once string `json:"once"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: malformed once body: %v", ErrProtocol, err)
	}
	if payload.Once == "" {
		return "", fmt.Errorf("%w: empty challenge in once body", ErrProtocol)
	}
	return payload.Once, nil
}

// ListSharedUsers authenticates with the given credentials and returns the
// users who opted to share their data. An account with no shared users yields
// an empty slice, not an error.
func (c *Client) ListSharedUsers(ctx context.Context, email, password string) ([]*User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is not set", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is not set", ErrValidation)
	}

	challenge, err := c.AuthChallenge(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("email", email)
	params.Set("hash", authHash(email, password, challenge))

	body, err := c.transport.Call(ctx, "account", "getuserslist", params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Users []userPayload `json:"users"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("%w: malformed users body: %v", ErrProtocol, err)
		}
	}

	users := make([]*User, 0, len(payload.Users))
	for _, p := range payload.Users {
		users = append(users, newUser(c.transport, p))
	}
	return users, nil
}

// LoadUser fetches a single user's profile by id and public key. The service
// does not echo the public key back, so the supplied key is injected into the
// returned record.
func (c *Client) LoadUser(ctx context.Context, userID int64, publicKey string) (*User, error) {
	params := url.Values{}
	params.Set("userid", strconv.FormatInt(userID, 10))
	params.Set("publickey", publicKey)

	body, err := c.transport.Call(ctx, "user", "getbyuserid", params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Users []userPayload `json:"users"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed user body: %v", ErrProtocol, err)
	}
	if len(payload.Users) == 0 {
		return nil, fmt.Errorf("%w: user service returned no users", ErrProtocol)
	}

	p := payload.Users[0]
	p.PublicKey = publicKey
	return newUser(c.transport, p), nil
}

// authHash computes the fixed WBS credential hash:
// MD5(email + ":" + MD5(password) + ":" + challenge), lower-case hex.
func authHash(email, password, challenge string) string {
	inner := md5.Sum([]byte(password))
	seed := fmt.Sprintf("%s:%s:%s", email, hex.EncodeToString(inner[:]), challenge)
	outer := md5.Sum([]byte(seed))
	return hex.EncodeToString(outer[:])
}
