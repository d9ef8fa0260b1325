package packet

import "testing"

// BenchmarkWriter_EnemyRecord записывает одну запись enemy table (80 bytes)
func BenchmarkWriter_EnemyRecord(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		w := Get()
		for range 20 {
			w.WriteUShort(0x1234)
			w.WriteUInt(0x12345678)
		}
		w.Put()
	}
}

// BenchmarkReader_EnemyRecord читает одну запись enemy table
func BenchmarkReader_EnemyRecord(b *testing.B) {
	b.ReportAllocs()

	data := make([]byte, 120)
	b.ResetTimer()
	for range b.N {
		r := NewReader(data)
		for range 20 {
			if _, err := r.ReadUShort(); err != nil {
				b.Fatal(err)
			}
			if _, err := r.ReadUInt(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
