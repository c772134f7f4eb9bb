package broadlink

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestChecksum(t *testing.T) {
	if got := checksum(nil); got != 0xbeaf {
		t.Fatalf("checksum(nil) = 0x%04x, want 0xbeaf", got)
	}
	if got := checksum([]byte{0x01, 0x02, 0xff}); got != 0xbeaf+0x102 {
		t.Fatalf("checksum = 0x%04x", got)
	}
	// wraps at 16 bits
	if got := checksum(bytes.Repeat([]byte{0xff}, 0x200)); got != uint16((0xbeaf+0xff*0x200)&0xffff) {
		t.Fatalf("checksum wrap = 0x%04x", got)
	}
}

func TestEncryptDecrypt(t *testing.T) {
	plain := []byte("twenty byte payload!")
	enc, err := encrypt(defaultKey, plain)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if len(enc) != 32 {
		t.Fatalf("encrypted length = %d, want 32", len(enc))
	}
	dec, err := decrypt(defaultKey, enc)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(dec[:len(plain)], plain) || !bytes.Equal(dec[len(plain):], make([]byte, 12)) {
		t.Fatalf("round trip = %x", dec)
	}
	if _, err := decrypt(defaultKey, enc[:5]); !errors.Is(err, ErrBadReply) {
		t.Fatalf("expected ErrBadReply for short block, got %v", err)
	}
}

func TestFrameEncode(t *testing.T) {
	mac := net.HardwareAddr{1, 2, 3, 4, 5, 6}
	pkt, err := frame{devType: 0x2737, command: commandCmd, count: 7, mac: mac, id: 9, payload: []byte{4, 0, 0, 0}}.encode(defaultKey)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(pkt) != headerSize+16 {
		t.Fatalf("len = %d", len(pkt))
	}
	if !bytes.Equal(pkt[:8], magic) {
		t.Fatalf("magic = %x", pkt[:8])
	}
	if !bytes.Equal(pkt[0x2a:0x30], []byte{6, 5, 4, 3, 2, 1}) {
		t.Fatalf("mac = %x", pkt[0x2a:0x30])
	}
	if err := verify(pkt); err != nil {
		t.Fatalf("verify own packet: %v", err)
	}
	pkt[0x40] ^= 0xff
	if err := verify(pkt); !errors.Is(err, ErrBadReply) {
		t.Fatalf("expected checksum failure, got %v", err)
	}
}

func TestHelloPacket(t *testing.T) {
	now := time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)
	pkt := hello(now, &net.UDPAddr{IP: net.IPv4(192, 168, 1, 20), Port: 0x1234})
	if len(pkt) != helloSize {
		t.Fatalf("len = %d", len(pkt))
	}
	if pkt[0x0e] != 30 || pkt[0x0f] != 14 || pkt[0x10] != 24 || pkt[0x11] != 7 || pkt[0x12] != 10 || pkt[0x13] != 3 {
		t.Fatalf("date fields = %x", pkt[0x0e:0x14])
	}
	if !bytes.Equal(pkt[0x18:0x1c], []byte{20, 1, 168, 192}) {
		t.Fatalf("ip = %x", pkt[0x18:0x1c])
	}
	if pkt[0x1c] != 0x34 || pkt[0x1d] != 0x12 || pkt[0x26] != helloCmd {
		t.Fatalf("port/cmd = %x %x", pkt[0x1c:0x1e], pkt[0x26])
	}
	want := checksum(append(append([]byte(nil), pkt[:0x20]...), append([]byte{0, 0}, pkt[0x22:]...)...))
	if got := uint16(pkt[0x20]) | uint16(pkt[0x21])<<8; got != want {
		t.Fatalf("checksum = 0x%04x, want 0x%04x", got, want)
	}
}

func TestDiscover(t *testing.T) {
	f := newFakeDevice(t, 0x5213)
	devices, err := Discover(testCtx(t), DiscoverOptions{
		Timeout: 300 * time.Millisecond,
		LocalIP: "127.0.0.1",
		Target:  f.addr(),
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("found %d devices", len(devices))
	}
	d := devices[0]
	if d.MAC.String() != f.mac.String() || d.Type != 0x5213 || d.Name != "living room" || d.Locked {
		t.Fatalf("unexpected device: %+v", d)
	}
	if d.Host.Port != f.addr().Port || d.Addr() != "127.0.0.1" {
		t.Fatalf("host = %v", d.Host)
	}
	if got := ModelName(d.Type); got != "RM4 pro" {
		t.Fatalf("model = %q", got)
	}
}

func TestDiscover_NoDevice(t *testing.T) {
	silent, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer silent.Close()

	_, err = Discover(testCtx(t), DiscoverOptions{
		Timeout: 100 * time.Millisecond,
		LocalIP: "127.0.0.1",
		Target:  silent.LocalAddr().(*net.UDPAddr),
	})
	if !errors.Is(err, ErrNoDevice) {
		t.Fatalf("expected ErrNoDevice, got %v", err)
	}
}

func TestDevice_LearnAndSend_RM4(t *testing.T) {
	f := newFakeDevice(t, 0x6026)
	f.code = []byte{0x26, 0x00, 0x10, 0x00, 0x01, 0x02, 0x03}
	f.readyAfter = 2

	d := f.device()
	defer d.Close()
	ctx := testCtx(t)

	if err := d.Auth(ctx); err != nil {
		t.Fatalf("Auth: %v", err)
	}
	if d.id != f.id {
		t.Fatalf("id = %x", d.id)
	}
	if err := d.EnterLearning(ctx); err != nil {
		t.Fatalf("EnterLearning: %v", err)
	}
	for i := 0; i < 2; i++ {
		_, err := d.CheckData(ctx)
		var se *StatusError
		if !errors.As(err, &se) || !errors.Is(err, ErrDevice) {
			t.Fatalf("check %d: expected device status error, got %v", i, err)
		}
	}
	code, err := d.CheckData(ctx)
	if err != nil {
		t.Fatalf("CheckData: %v", err)
	}
	if !bytes.Equal(code, f.code) {
		t.Fatalf("code = %x, want %x", code, f.code)
	}

	if err := d.SendData(ctx, code); err != nil {
		t.Fatalf("SendData: %v", err)
	}
	sent := f.sentCodes()
	if len(sent) != 1 || !bytes.Equal(sent[0], f.code) {
		t.Fatalf("device received %x", sent)
	}
}

func TestDevice_CheckData_RMMiniKeepsPadding(t *testing.T) {
	f := newFakeDevice(t, 0x27c2)
	f.code = []byte{0x26, 0x00, 0x02, 0x00, 0xaa, 0xbb}

	d := f.device()
	defer d.Close()
	ctx := testCtx(t)
	if err := d.Auth(ctx); err != nil {
		t.Fatalf("Auth: %v", err)
	}
	if err := d.EnterLearning(ctx); err != nil {
		t.Fatalf("EnterLearning: %v", err)
	}
	code, err := d.CheckData(ctx)
	if err != nil {
		t.Fatalf("CheckData: %v", err)
	}
	if !bytes.HasPrefix(code, f.code) {
		t.Fatalf("code = %x", code)
	}
}

func TestDevice_CommandWithoutAuthFails(t *testing.T) {
	f := newFakeDevice(t, 0x6026)
	d := f.device()
	defer d.Close()

	err := d.EnterLearning(testCtx(t))
	if !errors.Is(err, ErrDevice) {
		t.Fatalf("expected ErrDevice before auth, got %v", err)
	}
}

func TestDevice_TimeoutWithoutReply(t *testing.T) {
	silent, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer silent.Close()

	d := New(silent.LocalAddr().(*net.UDPAddr), net.HardwareAddr{1, 2, 3, 4, 5, 6}, 0x6026)
	d.Timeout = 50 * time.Millisecond
	defer d.Close()

	start := time.Now()
	if err := d.Auth(context.Background()); err == nil {
		t.Fatalf("expected timeout error")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("exchange did not honour timeout")
	}
}
