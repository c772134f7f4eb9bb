package broadlink

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

var (
	defaultKey = []byte{0x09, 0x76, 0x28, 0x34, 0x3f, 0xe9, 0x9e, 0x23, 0x76, 0x5c, 0x15, 0x13, 0xac, 0xcf, 0x8b, 0x02}
	defaultIV  = []byte{0x56, 0x2e, 0x17, 0x99, 0x6d, 0x09, 0x3d, 0x28, 0xdd, 0xb3, 0xba, 0x69, 0x5a, 0x2e, 0x6f, 0x58}
)

// pad zero-fills p to a multiple of the AES block size.
func pad(p []byte) []byte {
	if rem := len(p) % aes.BlockSize; rem != 0 {
		p = append(p, make([]byte, aes.BlockSize-rem)...)
	}
	return p
}

func encrypt(key, plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	plain = pad(append([]byte(nil), plain...))
	out := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, defaultIV).CryptBlocks(out, plain)
	return out, nil
}

func decrypt(key, data []byte) ([]byte, error) {
	if len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: payload length %d", ErrBadReply, len(data))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, defaultIV).CryptBlocks(out, data)
	return out, nil
}
