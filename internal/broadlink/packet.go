package broadlink

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"
	"time"
)

const (
	checksumSeed = 0xbeaf

	helloSize   = 0x30
	headerSize  = 0x38
	helloCmd    = 0x06
	authCmd     = 0x65
	commandCmd  = 0x6a
	minHelloLen = 0x40
)

var magic = []byte{0x5a, 0xa5, 0xaa, 0x55, 0x5a, 0xa5, 0xaa, 0x55}

func checksum(b []byte) uint16 {
	sum := uint32(checksumSeed)
	for _, v := range b {
		sum += uint32(v)
	}
	return uint16(sum)
}

// frame describes one command packet before encryption.
type frame struct {
	devType uint16
	command uint16
	count   uint16
	mac     net.HardwareAddr
	id      uint32
	payload []byte
}

// encode builds the wire packet, encrypting the payload with key.
func (f frame) encode(key []byte) ([]byte, error) {
	pkt := make([]byte, headerSize)
	copy(pkt[0x00:], magic)
	binary.LittleEndian.PutUint16(pkt[0x24:], f.devType)
	binary.LittleEndian.PutUint16(pkt[0x26:], f.command)
	binary.LittleEndian.PutUint16(pkt[0x28:], f.count)
	for i := 0; i < len(f.mac) && i < 6; i++ {
		pkt[0x2a+i] = f.mac[len(f.mac)-1-i]
	}
	binary.LittleEndian.PutUint32(pkt[0x30:], f.id)

	payload := pad(append([]byte(nil), f.payload...))
	binary.LittleEndian.PutUint16(pkt[0x34:], checksum(payload))
	enc, err := encrypt(key, payload)
	if err != nil {
		return nil, err
	}
	pkt = append(pkt, enc...)
	binary.LittleEndian.PutUint16(pkt[0x20:], checksum(pkt))
	return pkt, nil
}

// verify checks length and the whole-packet checksum of a reply.
func verify(pkt []byte) error {
	if len(pkt) < headerSize {
		return fmt.Errorf("%w: %d bytes", ErrBadReply, len(pkt))
	}
	want := binary.LittleEndian.Uint16(pkt[0x20:])
	cp := append([]byte(nil), pkt...)
	cp[0x20], cp[0x21] = 0, 0
	if got := checksum(cp); got != want {
		return fmt.Errorf("%w: checksum 0x%04x, want 0x%04x", ErrBadReply, got, want)
	}
	return nil
}

// decodeReply validates a reply and returns its decrypted payload.
func decodeReply(pkt, key []byte) ([]byte, error) {
	if err := verify(pkt); err != nil {
		return nil, err
	}
	if code := binary.LittleEndian.Uint16(pkt[0x22:]); code != 0 {
		return nil, &StatusError{Command: binary.LittleEndian.Uint16(pkt[0x26:]), Code: code}
	}
	return decrypt(key, pkt[headerSize:])
}

// hello builds the discovery broadcast announcing the local address.
func hello(now time.Time, local *net.UDPAddr) []byte {
	pkt := make([]byte, helloSize)
	_, offset := now.Zone()
	binary.LittleEndian.PutUint32(pkt[0x08:], uint32(int32(offset/3600)))
	binary.LittleEndian.PutUint16(pkt[0x0c:], uint16(now.Year()))
	pkt[0x0e] = byte(now.Minute())
	pkt[0x0f] = byte(now.Hour())
	pkt[0x10] = byte(now.Year() % 100)
	pkt[0x11] = byte(isoWeekday(now))
	pkt[0x12] = byte(now.Day())
	pkt[0x13] = byte(now.Month())
	if local != nil {
		if ip4 := local.IP.To4(); ip4 != nil {
			for i := 0; i < 4; i++ {
				pkt[0x18+i] = ip4[3-i]
			}
		}
		binary.LittleEndian.PutUint16(pkt[0x1c:], uint16(local.Port))
	}
	pkt[0x26] = helloCmd
	binary.LittleEndian.PutUint16(pkt[0x20:], checksum(pkt))
	return pkt
}

func isoWeekday(t time.Time) int {
	if wd := t.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

// parseHello reads a discovery reply from host.
func parseHello(pkt []byte, host *net.UDPAddr) (*Device, error) {
	if len(pkt) < minHelloLen {
		return nil, fmt.Errorf("%w: hello reply of %d bytes", ErrBadReply, len(pkt))
	}
	mac := make(net.HardwareAddr, 6)
	for i := 0; i < 6; i++ {
		mac[i] = pkt[0x3f-i]
	}
	name := pkt[0x40:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	d := newDevice(host, mac, binary.LittleEndian.Uint16(pkt[0x34:]))
	d.Name = string(name)
	d.Locked = len(pkt) > 0x7f && pkt[0x7f] != 0
	return d, nil
}
