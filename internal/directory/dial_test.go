package directory

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDial_NoURL(t *testing.T) {
	_, err := Dial(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrNoURL)
}

func TestDial_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = Dial(context.Background(), Config{URL: "ldap://" + addr, Timeout: time.Second})
	assert.ErrorContains(t, err, "directory: connect")
}

func TestDial_BadScheme(t *testing.T) {
	_, err := Dial(context.Background(), Config{URL: "http://localhost:389"})
	assert.Error(t, err)
}
