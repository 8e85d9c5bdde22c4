package directory

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-ldap/ldap/v3"
)

// ErrNoURL is returned when no server URL is configured.
var ErrNoURL = errors.New("directory: server URL is required")

// Config holds the connection settings of a directory server.
type Config struct {
	URL                string
	BindDN             string
	BindPassword       string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// Dial connects to the server and binds with the configured credentials.
// An empty BindDN leaves the connection anonymous.
func Dial(ctx context.Context, cfg Config) (*ldap.Conn, error) {
	if cfg.URL == "" {
		return nil, ErrNoURL
	}

	dialer := &net.Dialer{Timeout: cfg.Timeout}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	opts := []ldap.DialOpt{ldap.DialWithDialer(dialer)}
	if cfg.InsecureSkipVerify {
		opts = append(opts, ldap.DialWithTLSConfig(&tls.Config{InsecureSkipVerify: true})) //nolint:gosec
	}

	conn, err := ldap.DialURL(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("directory: connect %s: %w", cfg.URL, err)
	}
	if cfg.Timeout > 0 {
		conn.SetTimeout(cfg.Timeout)
	}

	if cfg.BindDN != "" {
		if err := conn.Bind(cfg.BindDN, cfg.BindPassword); err != nil {
			conn.Close()
			return nil, fmt.Errorf("directory: bind as %s: %w", cfg.BindDN, err)
		}
	}

	if err := ctx.Err(); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
