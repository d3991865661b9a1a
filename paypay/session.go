package paypay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const requestTimeout = 30 * time.Second

type session struct {
	base  string
	creds Credentials
	http  *http.Client
}

// NewFactory returns a Factory producing HTTP sessions against the
// given API base URL. An account's optional proxy descriptor is
// applied to the session's transport; an unparseable proxy is a
// construction error.
func NewFactory(baseURL string) Factory {
	return func(c Credentials) (Client, error) {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if c.Proxy != "" {
			proxyURL, err := url.Parse(c.Proxy)
			if err != nil {
				return nil, fmt.Errorf("invalid proxy: %w", err)
			}
			transport.Proxy = http.ProxyURL(proxyURL)
		}
		return &session{
			base:  baseURL,
			creds: c,
			http: &http.Client{
				Transport: transport,
				Timeout:   requestTimeout,
			},
		}, nil
	}
}

func (s *session) TokenRefresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	body, err := json.Marshal(map[string]string{
		"clientUuid":   s.creds.ClientUUID,
		"refreshToken": refreshToken,
	})
	if err != nil {
		return TokenPair{}, err
	}

	var pair TokenPair
	if err := s.do(ctx, http.MethodPost, "/v1/oauth/refresh", bytes.NewReader(body), &pair); err != nil {
		return TokenPair{}, err
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return TokenPair{}, fmt.Errorf("refresh response missing token pair")
	}

	// The session keeps using the rotated token from here on.
	s.creds.AccessToken = pair.AccessToken
	return pair, nil
}

func (s *session) Alive(ctx context.Context) error {
	return s.do(ctx, http.MethodGet, "/v1/healthcheck", nil, nil)
}

func (s *session) Balance(ctx context.Context) (int64, error) {
	var res struct {
		Balance int64 `json:"balance"`
	}
	if err := s.do(ctx, http.MethodGet, "/v1/wallet/balance", nil, &res); err != nil {
		return 0, err
	}
	return res.Balance, nil
}

func (s *session) do(ctx context.Context, method, path string, body *bytes.Reader, out interface{}) error {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, s.base+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, s.base+path, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Client-UUID", s.creds.ClientUUID)
	req.Header.Set("Device-UUID", s.creds.DeviceUUID)
	if s.creds.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.creds.AccessToken)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
