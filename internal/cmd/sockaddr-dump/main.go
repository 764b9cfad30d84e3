//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

// Binary sockaddr-dump prints sockaddr_in bytes for IPv4 endpoints.
//
//	sockaddr-dump 127.0.0.1:8080 10.0.0.5
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"inet.af/netaddr"

	"github.com/go-faster/sockaddr"
	"github.com/go-faster/sockaddr/internal/cmd/app"
)

// parse parses "addr" or "addr:port" endpoint.
func parse(s string, defaultPort uint16) (sockaddr.IPv4, uint16, error) {
	var (
		ip   netaddr.IP
		port = defaultPort
		err  error
	)
	if strings.Contains(s, ":") {
		ipp, parseErr := netaddr.ParseIPPort(s)
		if parseErr != nil {
			return sockaddr.IPv4{}, 0, errors.Wrap(parseErr, "parse")
		}
		ip, port = ipp.IP(), ipp.Port()
	} else if ip, err = netaddr.ParseIP(s); err != nil {
		return sockaddr.IPv4{}, 0, errors.Wrap(err, "parse")
	}
	v, err := sockaddr.ToIPv4(ip)
	if err != nil {
		return sockaddr.IPv4{}, 0, err
	}
	return v, port, nil
}

// dump writes hex of sockaddr_in for endpoint s to w.
func dump(w io.Writer, lg *zap.Logger, s string, defaultPort uint16) error {
	v, port, err := parse(s, defaultPort)
	if err != nil {
		return err
	}
	sa := v.ToSockaddr(port)
	lg.Debug("Converted",
		zap.String("endpoint", s),
		zap.Uint32("addr", v.Uint32()),
		zap.Uint16("port", port),
	)
	if _, err := fmt.Fprintf(w, "%s\t%s\n", s, hex.EncodeToString(sockaddr.SockaddrBytes(&sa))); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}

func run(ctx context.Context, lg *zap.Logger, w io.Writer, args []string, defaultPort uint) error {
	if len(args) == 0 {
		return errors.New("no endpoints")
	}
	if defaultPort > math.MaxUint16 {
		return errors.Errorf("port %d is out of range", defaultPort)
	}
	var re error
	for _, s := range args {
		if err := ctx.Err(); err != nil {
			return multierr.Append(re, err)
		}
		if err := dump(w, lg, s, uint16(defaultPort)); err != nil {
			re = multierr.Append(re, errors.Wrapf(err, "%q", s))
		}
	}
	return re
}

func main() {
	app.Run(func(ctx context.Context, lg *zap.Logger) error {
		var arg struct {
			Port uint
		}
		flag.UintVar(&arg.Port, "port", 0, "port for endpoints without one")
		flag.Parse()

		return run(ctx, lg, os.Stdout, flag.Args(), arg.Port)
	})
}
