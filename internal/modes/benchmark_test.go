package modes

import (
	"testing"

	"blockmodes/internal/block"
)

const benchSize = 1 << 20

func benchmarkEncrypt(b *testing.B, m Mode, opts ...Option) {
	c, err := New(m, block.AES, opts...)
	if err != nil {
		b.Fatal(err)
	}
	data := make([]byte, benchSize)
	b.SetBytes(benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encrypt(data, testKey); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkDecrypt(b *testing.B, m Mode, opts ...Option) {
	c, err := New(m, block.AES, opts...)
	if err != nil {
		b.Fatal(err)
	}
	ct, err := c.Encrypt(make([]byte, benchSize), testKey)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decrypt(ct, testKey); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkECBEncrypt1MiB measures ECB with the default worker count.
func BenchmarkECBEncrypt1MiB(b *testing.B) { benchmarkEncrypt(b, ModeECB) }

// BenchmarkECBEncrypt1MiBSequential measures ECB on one goroutine.
func BenchmarkECBEncrypt1MiBSequential(b *testing.B) { benchmarkEncrypt(b, ModeECB, WithWorkers(1)) }

// BenchmarkCBCEncrypt1MiB measures CBC encryption (always sequential).
func BenchmarkCBCEncrypt1MiB(b *testing.B) { benchmarkEncrypt(b, ModeCBC) }

// BenchmarkCBCDecrypt1MiB measures block-parallel CBC decryption.
func BenchmarkCBCDecrypt1MiB(b *testing.B) { benchmarkDecrypt(b, ModeCBC) }

// BenchmarkCTREncrypt1MiB measures CTR with the default worker count.
func BenchmarkCTREncrypt1MiB(b *testing.B) { benchmarkEncrypt(b, ModeCTR) }

// BenchmarkCTRDecrypt1MiBSequential measures CTR on one goroutine.
func BenchmarkCTRDecrypt1MiBSequential(b *testing.B) { benchmarkDecrypt(b, ModeCTR, WithWorkers(1)) }
