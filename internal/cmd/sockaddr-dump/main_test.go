//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	"github.com/go-faster/sockaddr"
)

func sockaddrHex(v sockaddr.IPv4, port uint16) string {
	sa := v.ToSockaddr(port)
	return hex.EncodeToString(sockaddr.SockaddrBytes(&sa))
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		Input string
		Addr  sockaddr.IPv4
		Port  uint16
	}{
		{Input: "127.0.0.1:8080", Addr: sockaddr.FromOctets(127, 0, 0, 1), Port: 8080},
		{Input: "10.0.0.5", Addr: sockaddr.FromOctets(10, 0, 0, 5), Port: 53},
		{Input: "0.0.0.0:0", Addr: sockaddr.IPv4{}},
	} {
		t.Run(tc.Input, func(t *testing.T) {
			v, port, err := parse(tc.Input, 53)
			require.NoError(t, err)
			require.Equal(t, tc.Addr, v)
			require.Equal(t, tc.Port, port)
		})
	}
	t.Run("IPv6", func(t *testing.T) {
		_, _, err := parse("[2001:db8::1]:80", 0)
		require.ErrorIs(t, err, sockaddr.ErrNotIPv4)
	})
	t.Run("Invalid", func(t *testing.T) {
		_, _, err := parse("300.0.0.1", 0)
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	lg := zaptest.NewLogger(t)
	ctx := context.Background()

	t.Run("Ok", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(ctx, lg, &out, []string{"127.0.0.1:8080", "10.0.0.5"}, 0))
		require.Equal(t,
			"127.0.0.1:8080\t"+sockaddrHex(sockaddr.FromOctets(127, 0, 0, 1), 8080)+"\n"+
				"10.0.0.5\t"+sockaddrHex(sockaddr.FromOctets(10, 0, 0, 5), 0)+"\n",
			out.String(),
		)
	})
	t.Run("Errors", func(t *testing.T) {
		var out bytes.Buffer
		err := run(ctx, lg, &out, []string{"[::1]:80", "127.0.0.1", "bad"}, 0)
		require.Error(t, err)
		require.Len(t, multierr.Errors(err), 2)
		require.ErrorIs(t, err, sockaddr.ErrNotIPv4)
		require.Equal(t, "127.0.0.1\t"+sockaddrHex(sockaddr.FromOctets(127, 0, 0, 1), 0)+"\n", out.String())
	})
	t.Run("NoArgs", func(t *testing.T) {
		require.Error(t, run(ctx, lg, &bytes.Buffer{}, nil, 0))
	})
	t.Run("PortRange", func(t *testing.T) {
		require.Error(t, run(ctx, lg, &bytes.Buffer{}, []string{"127.0.0.1"}, 70000))
	})
	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		err := run(ctx, lg, &bytes.Buffer{}, []string{"127.0.0.1"}, 0)
		require.True(t, errors.Is(err, context.Canceled))
	})
}
