package broadlink

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

const defaultDiscoverTimeout = 5 * time.Second

// DiscoverOptions tunes Discover. The zero value broadcasts from all
// interfaces for five seconds.
type DiscoverOptions struct {
	Timeout time.Duration
	// LocalIP binds the discovery socket to one interface address.
	LocalIP string
	// Target overrides the broadcast address 255.255.255.255:80.
	Target *net.UDPAddr
}

// Discover broadcasts a hello packet and collects every device that
// answers before the timeout. It returns ErrNoDevice when none did.
func Discover(ctx context.Context, opts DiscoverOptions) ([]*Device, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultDiscoverTimeout
	}
	target := opts.Target
	if target == nil {
		target = &net.UDPAddr{IP: net.IPv4bcast, Port: 80}
	}

	local := &net.UDPAddr{}
	if opts.LocalIP != "" {
		ip := net.ParseIP(opts.LocalIP)
		if ip == nil {
			return nil, fmt.Errorf("discover: invalid local ip %q", opts.LocalIP)
		}
		local.IP = ip
	}
	conn, err := net.ListenUDP("udp4", local)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	announce := conn.LocalAddr().(*net.UDPAddr)
	if _, err := conn.WriteToUDP(hello(time.Now(), announce), target); err != nil {
		return nil, fmt.Errorf("discover: broadcast: %w", err)
	}

	var (
		found []*Device
		seen  = make(map[string]bool)
		buf   = make([]byte, 1024)
	)
	for {
		n, from, err := conn.ReadFromUDP(buf)
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				break
			}
			return nil, fmt.Errorf("discover: %w", err)
		}
		d, err := parseHello(buf[:n], from)
		if err != nil {
			continue
		}
		if key := d.MAC.String(); !seen[key] {
			seen[key] = true
			found = append(found, d)
		}
	}
	if err := ctx.Err(); err != nil && len(found) == 0 {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrNoDevice
	}
	return found, nil
}
