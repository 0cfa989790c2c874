package encoding

import (
	"bytes"
	"testing"

	"blockmodes/internal/block"
	"blockmodes/internal/errors"
)

func TestGroupUngroup(t *testing.T) {
	for _, n := range []int{0, 1, 3, 16} {
		data := make([]byte, n*block.Size)
		for i := range data {
			data[i] = byte(i)
		}

		blocks, err := Group(data)
		if err != nil {
			t.Fatalf("Group(%d bytes): %v", len(data), err)
		}
		if len(blocks) != n {
			t.Fatalf("Group(%d bytes) = %d blocks, want %d", len(data), len(blocks), n)
		}
		for i, b := range blocks {
			if !bytes.Equal(b[:], data[i*block.Size:(i+1)*block.Size]) {
				t.Errorf("block %d out of order", i)
			}
		}

		if got := Ungroup(blocks); !bytes.Equal(got, data) {
			t.Errorf("Ungroup(Group(%d bytes)) differs", len(data))
		}
	}
}

func TestGroupCopies(t *testing.T) {
	data := bytes.Repeat([]byte{0xAA}, block.Size)
	blocks, err := Group(data)
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 0
	if blocks[0][0] != 0xAA {
		t.Error("Group should copy, not alias, its input")
	}
}

func TestGroupRejectsPartialBlock(t *testing.T) {
	for _, n := range []int{1, 15, 17, 33} {
		_, err := Group(make([]byte, n))
		if !errors.Is(err, errors.ErrInvalidLength) {
			t.Errorf("Group(%d bytes) err = %v, want ErrInvalidLength", n, err)
			continue
		}
		var le *errors.LengthError
		if !errors.As(err, &le) || le.Len != n {
			t.Errorf("Group(%d bytes) should report length %d", n, n)
		}
	}
}

func TestUngroupEmpty(t *testing.T) {
	if got := Ungroup(nil); len(got) != 0 {
		t.Errorf("Ungroup(nil) = %v, want empty", got)
	}
}
