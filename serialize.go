package cnf

import (
	"encoding/binary"
	"fmt"
)

// MarshalBinary encodes l as its kind tag, nvars, and packed buffer B,
// per spec.md §6's persisted-state contract. The segment index S is not
// stored; UnmarshalBinary re-derives it by scanning B for terminators.
func (l *ClauseList[K]) MarshalBinary() ([]byte, error) {
	var zero K
	out := make([]byte, 0, 9+4*len(l.buf))
	out = append(out, byte(zero.tag()))
	out = binary.LittleEndian.AppendUint32(out, uint32(l.nvars))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(l.buf)))
	for _, v := range l.buf {
		out = binary.LittleEndian.AppendUint32(out, uint32(v))
	}
	return out, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary, replacing the
// receiver's contents. It fails with ErrKindMismatch if the encoded kind
// tag does not match K, and with ErrBorrowed if a view is outstanding.
func (l *ClauseList[K]) UnmarshalBinary(data []byte) error {
	if l.tracker.live() {
		return fmt.Errorf("unmarshal: %w", ErrBorrowed)
	}
	if len(data) < 9 {
		return fmt.Errorf("unmarshal: truncated header (%d bytes): %w", len(data), ErrMalformedDIMACS)
	}
	var zero K
	if kindTag(data[0]) != zero.tag() {
		return fmt.Errorf("unmarshal: %w", ErrKindMismatch)
	}
	nvars := int32(binary.LittleEndian.Uint32(data[1:5]))
	n := binary.LittleEndian.Uint32(data[5:9])
	data = data[9:]
	if uint32(len(data)) != n*4 {
		return fmt.Errorf("unmarshal: buffer length %d, want %d: %w", len(data), n*4, ErrMalformedDIMACS)
	}

	buf := make([]int32, n)
	starts := []int32{0}
	for i := range buf {
		v := int32(binary.LittleEndian.Uint32(data[4*i : 4*i+4]))
		buf[i] = v
		if v == 0 {
			starts = append(starts, int32(i+1))
		}
	}
	if n > 0 && buf[n-1] != 0 {
		return fmt.Errorf("unmarshal: buffer of length %d: %w", n, ErrTrailingLiterals)
	}

	l.buf = buf
	l.starts = starts
	l.nvars = nvars
	return nil
}

// MarshalBinary encodes the CNF's underlying clause list.
func (c *CNF) MarshalBinary() ([]byte, error) { return c.list.MarshalBinary() }

// UnmarshalBinary decodes into the CNF, replacing its contents.
func (c *CNF) UnmarshalBinary(data []byte) error { return c.list.UnmarshalBinary(data) }

// MarshalBinary encodes the XorClauseList's underlying clause list.
func (x *XorClauseList) MarshalBinary() ([]byte, error) { return x.list.MarshalBinary() }

// UnmarshalBinary decodes into the XorClauseList, replacing its contents.
func (x *XorClauseList) UnmarshalBinary(data []byte) error { return x.list.UnmarshalBinary(data) }

// MarshalBinary encodes both parts of f as length-prefixed sections: the
// CNF part's encoding, then the XOR part's, each preceded by a uint32
// byte length.
func (f *XorCNF) MarshalBinary() ([]byte, error) {
	cnfBytes, err := f.CNF.MarshalBinary()
	if err != nil {
		return nil, err
	}
	xorBytes, err := f.Xor.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 8+len(cnfBytes)+len(xorBytes))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(cnfBytes)))
	out = append(out, cnfBytes...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(xorBytes)))
	out = append(out, xorBytes...)
	return out, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary, replacing the
// receiver's CNF and XOR parts.
func (f *XorCNF) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("unmarshal xor_cnf: truncated: %w", ErrMalformedDIMACS)
	}
	cnfLen := binary.LittleEndian.Uint32(data[:4])
	data = data[4:]
	if uint32(len(data)) < cnfLen {
		return fmt.Errorf("unmarshal xor_cnf: truncated cnf section: %w", ErrMalformedDIMACS)
	}
	cnf := NewCNF()
	if err := cnf.UnmarshalBinary(data[:cnfLen]); err != nil {
		return err
	}
	data = data[cnfLen:]

	if len(data) < 4 {
		return fmt.Errorf("unmarshal xor_cnf: truncated: %w", ErrMalformedDIMACS)
	}
	xorLen := binary.LittleEndian.Uint32(data[:4])
	data = data[4:]
	if uint32(len(data)) != xorLen {
		return fmt.Errorf("unmarshal xor_cnf: truncated xor section: %w", ErrMalformedDIMACS)
	}
	xors := NewXorClauseList()
	if err := xors.UnmarshalBinary(data); err != nil {
		return err
	}

	f.CNF = cnf
	f.Xor = xors
	return nil
}
