package broadlink

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

// IR sub-commands carried by commandCmd packets.
const (
	irSendData      = 0x02
	irEnterLearning = 0x03
	irCheckData     = 0x04
)

const defaultExchangeTimeout = 10 * time.Second

// Device is one Broadlink IR transceiver. Exchanges are serialized; a
// Device may be shared between goroutines.
type Device struct {
	Host   *net.UDPAddr
	MAC    net.HardwareAddr
	Type   uint16
	Name   string
	Locked bool

	// Timeout bounds one request/reply exchange when ctx has no deadline.
	Timeout time.Duration

	mu    sync.Mutex
	conn  *net.UDPConn
	count uint16
	id    uint32
	key   []byte
}

func newDevice(host *net.UDPAddr, mac net.HardwareAddr, devType uint16) *Device {
	return &Device{
		Host:    host,
		MAC:     mac,
		Type:    devType,
		Timeout: defaultExchangeTimeout,
		count:   uint16(time.Now().UnixNano()),
		key:     append([]byte(nil), defaultKey...),
	}
}

// New addresses a device whose MAC and type are already known, for
// example from an earlier discovery.
func New(host *net.UDPAddr, mac net.HardwareAddr, devType uint16) *Device {
	return newDevice(host, mac, devType)
}

// Addr returns the device IP address.
func (d *Device) Addr() string {
	if d.Host == nil {
		return ""
	}
	return d.Host.IP.String()
}

func (d *Device) String() string {
	return fmt.Sprintf("%s %s (%s)", ModelName(d.Type), d.Host.IP, d.MAC)
}

// Auth performs the key exchange. It must succeed before IR commands.
func (d *Device) Auth(ctx context.Context) error {
	payload := make([]byte, 0x50)
	for i := 0x04; i < 0x14; i++ {
		payload[i] = 0x31
	}
	payload[0x1e] = 0x01
	payload[0x2d] = 0x01
	copy(payload[0x30:], "Test 1")

	d.mu.Lock()
	defer d.mu.Unlock()
	d.id = 0
	d.key = append(d.key[:0], defaultKey...)

	resp, err := d.exchange(ctx, authCmd, payload)
	if err != nil {
		return fmt.Errorf("auth %s: %w", d.Host, err)
	}
	if len(resp) < 0x14 {
		return fmt.Errorf("auth %s: %w: short payload", d.Host, ErrBadReply)
	}
	d.id = binary.LittleEndian.Uint32(resp[0x00:])
	d.key = append([]byte(nil), resp[0x04:0x14]...)
	return nil
}

// EnterLearning puts the device in IR learning mode.
func (d *Device) EnterLearning(ctx context.Context) error {
	_, err := d.ir(ctx, irEnterLearning, nil)
	return err
}

// CheckData returns the last learned IR code. Until a code is captured
// the device answers with a non-zero status, reported as ErrDevice.
func (d *Device) CheckData(ctx context.Context) ([]byte, error) {
	return d.ir(ctx, irCheckData, nil)
}

// SendData transmits a previously captured IR code.
func (d *Device) SendData(ctx context.Context, code []byte) error {
	_, err := d.ir(ctx, irSendData, code)
	return err
}

// Close releases the device socket.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	return err
}

func (d *Device) ir(ctx context.Context, sub uint32, data []byte) ([]byte, error) {
	rm4 := isRM4(d.Type)
	var p []byte
	if rm4 {
		p = make([]byte, 6, 6+len(data))
		binary.LittleEndian.PutUint16(p[0:], uint16(len(data)+4))
		binary.LittleEndian.PutUint32(p[2:], sub)
	} else {
		p = make([]byte, 4, 4+len(data))
		binary.LittleEndian.PutUint32(p[0:], sub)
	}
	p = append(p, data...)

	d.mu.Lock()
	resp, err := d.exchange(ctx, commandCmd, p)
	d.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if !rm4 {
		if len(resp) < 4 {
			return nil, fmt.Errorf("%w: short IR payload", ErrBadReply)
		}
		return resp[4:], nil
	}
	if len(resp) < 6 {
		return nil, fmt.Errorf("%w: short IR payload", ErrBadReply)
	}
	end := int(binary.LittleEndian.Uint16(resp[0:])) + 2
	if end < 6 || end > len(resp) {
		return nil, fmt.Errorf("%w: IR length %d", ErrBadReply, end)
	}
	return resp[6:end], nil
}

// exchange sends one packet and waits for its reply. d.mu must be held.
func (d *Device) exchange(ctx context.Context, command uint16, payload []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.conn == nil {
		conn, err := net.ListenUDP("udp4", nil)
		if err != nil {
			return nil, fmt.Errorf("open socket: %w", err)
		}
		d.conn = conn
	}

	d.count++
	pkt, err := frame{
		devType: d.Type,
		command: command,
		count:   d.count,
		mac:     d.MAC,
		id:      d.id,
		payload: payload,
	}.encode(d.key)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(d.timeout())
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	if err := d.conn.SetDeadline(deadline); err != nil {
		return nil, err
	}
	if _, err := d.conn.WriteToUDP(pkt, d.Host); err != nil {
		return nil, fmt.Errorf("send to %s: %w", d.Host, err)
	}

	buf := make([]byte, 2048)
	for {
		n, from, err := d.conn.ReadFromUDP(buf)
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() && ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("read from %s: %w", d.Host, err)
		}
		if !from.IP.Equal(d.Host.IP) {
			continue
		}
		return decodeReply(buf[:n], d.key)
	}
}

func (d *Device) timeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return defaultExchangeTimeout
}
