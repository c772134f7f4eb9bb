package broadlink

import (
	"encoding/binary"
	"net"
	"sync"
	"testing"
)

// fakeDevice answers the Broadlink protocol on a loopback UDP socket.
type fakeDevice struct {
	t       *testing.T
	conn    *net.UDPConn
	mac     net.HardwareAddr
	devType uint16
	name    string
	key     []byte
	id      uint32

	mu         sync.Mutex
	learning   int
	checks     int
	readyAfter int
	code       []byte
	sent       [][]byte
	commands   []uint16
}

func newFakeDevice(t *testing.T, devType uint16) *fakeDevice {
	t.Helper()
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	f := &fakeDevice{
		t:       t,
		conn:    conn,
		mac:     net.HardwareAddr{0x34, 0xea, 0x34, 0x01, 0x02, 0x03},
		devType: devType,
		name:    "living room",
		key:     []byte("0123456789abcdef"),
		id:      0x11223344,
	}
	t.Cleanup(func() { _ = conn.Close() })
	go f.serve()
	return f
}

func (f *fakeDevice) addr() *net.UDPAddr {
	return f.conn.LocalAddr().(*net.UDPAddr)
}

func (f *fakeDevice) device() *Device {
	return New(f.addr(), f.mac, f.devType)
}

func (f *fakeDevice) serve() {
	buf := make([]byte, 2048)
	for {
		n, from, err := f.conn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		pkt := append([]byte(nil), buf[:n]...)
		if len(pkt) == helloSize && pkt[0x26] == helloCmd {
			_, _ = f.conn.WriteToUDP(f.helloReply(), from)
			continue
		}
		if reply := f.handle(pkt); reply != nil {
			_, _ = f.conn.WriteToUDP(reply, from)
		}
	}
}

func (f *fakeDevice) helloReply() []byte {
	pkt := make([]byte, 0x80)
	binary.LittleEndian.PutUint16(pkt[0x34:], f.devType)
	for i := 0; i < 6; i++ {
		pkt[0x3a+i] = f.mac[5-i]
	}
	copy(pkt[0x40:], f.name)
	return pkt
}

func (f *fakeDevice) handle(pkt []byte) []byte {
	if err := verify(pkt); err != nil {
		f.t.Errorf("fake: bad request: %v", err)
		return nil
	}
	command := binary.LittleEndian.Uint16(pkt[0x26:])

	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, command)

	switch command {
	case authCmd:
		payload, err := decrypt(defaultKey, pkt[headerSize:])
		if err != nil || string(payload[0x30:0x36]) != "Test 1" {
			return f.reply(command, 0xfff9, nil, defaultKey)
		}
		resp := make([]byte, 0x20)
		binary.LittleEndian.PutUint32(resp[0:], f.id)
		copy(resp[4:], f.key)
		return f.reply(command, 0, resp, defaultKey)
	case commandCmd:
		if binary.LittleEndian.Uint32(pkt[0x30:]) != f.id {
			return f.reply(command, 0xffff, nil, f.key)
		}
		payload, err := decrypt(f.key, pkt[headerSize:])
		if err != nil {
			return f.reply(command, 0xfffe, nil, f.key)
		}
		return f.handleIR(command, payload)
	}
	return f.reply(command, 0xfffb, nil, f.key)
}

func (f *fakeDevice) handleIR(command uint16, payload []byte) []byte {
	rm4 := isRM4(f.devType)
	var sub uint32
	var data []byte
	if rm4 {
		size := int(binary.LittleEndian.Uint16(payload[0:]))
		sub = binary.LittleEndian.Uint32(payload[2:])
		data = payload[6 : size+2]
	} else {
		sub = binary.LittleEndian.Uint32(payload[0:])
		data = payload[4:]
	}

	var out []byte
	switch sub {
	case irEnterLearning:
		f.learning++
		f.checks = 0
	case irCheckData:
		f.checks++
		if f.learning == 0 || f.checks <= f.readyAfter {
			return f.reply(command, 0xfff6, nil, f.key)
		}
		out = f.code
	case irSendData:
		f.sent = append(f.sent, append([]byte(nil), data...))
	}

	var resp []byte
	if rm4 {
		resp = make([]byte, 6, 6+len(out))
		binary.LittleEndian.PutUint16(resp[0:], uint16(len(out)+4))
		binary.LittleEndian.PutUint32(resp[2:], sub)
	} else {
		resp = make([]byte, 4, 4+len(out))
		binary.LittleEndian.PutUint32(resp[0:], sub)
	}
	return f.reply(command, 0, append(resp, out...), f.key)
}

func (f *fakeDevice) reply(command, status uint16, payload, key []byte) []byte {
	pkt := make([]byte, headerSize)
	copy(pkt, magic)
	binary.LittleEndian.PutUint16(pkt[0x22:], status)
	binary.LittleEndian.PutUint16(pkt[0x24:], f.devType)
	binary.LittleEndian.PutUint16(pkt[0x26:], command)
	if len(payload) > 0 {
		enc, err := encrypt(key, payload)
		if err != nil {
			f.t.Errorf("fake: encrypt: %v", err)
			return nil
		}
		pkt = append(pkt, enc...)
	}
	binary.LittleEndian.PutUint16(pkt[0x20:], checksum(pkt))
	return pkt
}

func (f *fakeDevice) sentCodes() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.sent...)
}
