package state

import "testing"

type point struct {
	x, y uint8
	flag bool
}

func (p *point) Save(w *Writer) {
	w.Write8(p.x)
	w.Write8(p.y)
	w.WriteBool(p.flag)
}

func (p *point) Load(r *Reader) {
	p.x = r.Read8()
	p.y = r.Read8()
	p.flag = r.ReadBool()
}

func TestRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Write8(0x42)
	w.Write16(0xBEEF)
	w.WriteBool(true)
	w.WriteData([]byte{1, 2, 3})

	r, err := NewReader(w.Bytes())
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if got := r.Read8(); got != 0x42 {
		t.Errorf("Read8() = %#02x, want 0x42", got)
	}
	if got := r.Read16(); got != 0xBEEF {
		t.Errorf("Read16() = %#04x, want 0xBEEF", got)
	}
	if got := r.ReadBool(); got != true {
		t.Errorf("ReadBool() = %v, want true", got)
	}
	buf := make([]byte, 3)
	r.ReadData(buf)
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 {
		t.Errorf("ReadData() = %v, want [1 2 3]", buf)
	}
}

func TestStaterRoundTrip(t *testing.T) {
	p := &point{x: 10, y: 20, flag: true}
	w := NewWriter()
	p.Save(w)

	r, err := NewReader(w.Bytes())
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	var got point
	got.Load(r)
	if got != *p {
		t.Errorf("got %+v, want %+v", got, *p)
	}
}

func TestCorruptSnapshotRejected(t *testing.T) {
	w := NewWriter()
	w.Write8(0x01)
	snapshot := w.Bytes()
	snapshot[0] ^= 0xFF // corrupt the payload without touching the checksum

	if _, err := NewReader(snapshot); err == nil {
		t.Error("NewReader accepted a corrupted snapshot")
	}
}

func TestTruncatedSnapshotRejected(t *testing.T) {
	if _, err := NewReader([]byte{0x01, 0x02}); err == nil {
		t.Error("NewReader accepted a snapshot shorter than the checksum")
	}
}
