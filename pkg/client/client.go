package client

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	v1 "github.com/woojoong88/atomix/pkg/client/v1"
)

var ErrNotSetup = errors.New("client must be setup before use")

type Client interface {
	V1() v1.ClientWithResponsesInterface
	Setup(string) error
	SetBasicAuth(string, string)
	SetBearerToken(string)
	SetTimeout(time.Duration)
}

// Client

type client struct {
	v1       v1.ClientWithResponsesInterface
	username string
	password string
	token    string
	timeout  time.Duration
}

func New() Client {
	return &client{}
}

func (c *client) Setup(server string) error {
	opts := []v1.ClientOption{
		v1.WithHTTPClient(&loggingDoer{doer: &http.Client{Timeout: c.timeout}}),
	}

	if c.username != "" && c.password != "" {
		opts = append(opts, basicAuth(c.username, c.password))
	}

	if c.token != "" {
		warnIfExpired(c.token, time.Now())
		opts = append(opts, bearerToken(c.token))
	}

	var err error
	c.v1, err = v1.NewClientWithResponses(server, opts...)

	return err
}

func (c *client) V1() v1.ClientWithResponsesInterface {
	if c.v1 == nil {
		panic(ErrNotSetup)
	}
	return c.v1
}

func (c *client) SetBasicAuth(username, password string) {
	c.username = username
	c.password = password
}

func (c *client) SetBearerToken(token string) {
	c.token = token
}

func (c *client) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// Mock Client

type mockClient struct {
	v1 *v1.MockClientWithResponsesInterface
}

func MockClient(v1 *v1.MockClientWithResponsesInterface) Client {
	return &mockClient{v1}
}

func (c *mockClient) Setup(string) error {
	return nil
}

func (c *mockClient) V1() v1.ClientWithResponsesInterface {
	return c.v1
}

func (c *mockClient) SetBasicAuth(string, string) {}

func (c *mockClient) SetBearerToken(string) {}

func (c *mockClient) SetTimeout(time.Duration) {}

// Helper functions

func basicAuth(username, password string) v1.ClientOption {
	return func(c *v1.Client) error {
		c.RequestEditors = append(c.RequestEditors, func(ctx context.Context, req *http.Request) error {
			authHeader := "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
			req.Header.Set("Authorization", authHeader)
			return nil
		})
		return nil
	}
}

func bearerToken(token string) v1.ClientOption {
	return func(c *v1.Client) error {
		c.RequestEditors = append(c.RequestEditors, func(ctx context.Context, req *http.Request) error {
			req.Header.Set("Authorization", "Bearer "+token)
			return nil
		})
		return nil
	}
}
