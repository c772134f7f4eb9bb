package main

import (
	"context"
	"fmt"

	"ac_learner/internal/broadlink"
	"ac_learner/internal/config"
	"ac_learner/internal/logger"
	"ac_learner/internal/session"
)

// discoverIR returns the IR-capable devices that answered discovery.
func discoverIR(ctx context.Context, cfg config.DeviceConfig, log *logger.Logger) ([]*broadlink.Device, error) {
	found, err := broadlink.Discover(ctx, broadlink.DiscoverOptions{
		Timeout: cfg.DiscoveryTimeout,
		LocalIP: cfg.LocalIP,
	})
	if err != nil {
		return nil, err
	}
	devices := make([]*broadlink.Device, 0, len(found))
	for _, d := range found {
		if !broadlink.SupportsIR(d.Type) {
			log.Infow("device_skipped", "device", d.String(), "reason", "no IR support")
			continue
		}
		devices = append(devices, d)
	}
	if len(devices) == 0 {
		return nil, broadlink.ErrNoDevice
	}
	return devices, nil
}

// sessionDiscover adapts discovery to the interactive session.
func sessionDiscover(cfg config.DeviceConfig, log *logger.Logger) session.DiscoverFunc {
	return func(ctx context.Context) ([]session.Device, error) {
		found, err := discoverIR(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		out := make([]session.Device, len(found))
		for i, d := range found {
			out[i] = d
		}
		return out, nil
	}
}

// connectDevice discovers and authenticates the device named by
// device.host, or the first one found when it is empty.
func connectDevice(ctx context.Context, cfg config.DeviceConfig, log *logger.Logger) (*broadlink.Device, error) {
	found, err := discoverIR(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	for _, d := range found {
		if cfg.Host != "" && d.Addr() != cfg.Host {
			continue
		}
		if err := d.Auth(ctx); err != nil {
			return nil, err
		}
		log.Infow("device_connected", "device", d.String())
		return d, nil
	}
	return nil, fmt.Errorf("device %s: %w", cfg.Host, broadlink.ErrNoDevice)
}
