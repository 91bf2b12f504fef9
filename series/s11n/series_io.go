package s11n

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/bluescarni/piranha-go/coeff"
	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/series"
	"github.com/bluescarni/piranha-go/symbol"
)

func writeUint32(w io.Writer, v uint32) (int64, error) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	n, err := w.Write(buf[:])
	return int64(n), err
}

func readUint32(r io.Reader) (uint32, int64, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), 4, nil
}

func writeUint64(w io.Writer, v uint64) (int64, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	n, err := w.Write(buf[:])
	return int64(n), err
}

func readUint64(r io.Reader) (uint64, int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), 8, nil
}

// WriteTo writes s in the persisted layout spec.md §6 names: symbol set,
// term count, then for each term its (monomial, coefficient) pair, in s's
// own iteration order (the order "used on write is recoverable on read",
// which holds trivially here since order is never reshuffled between
// write and the matching ReadFrom).
func WriteTo[K monomial.Key, C any](w io.Writer, s *series.Series[K, C], kc KeyCodec[K], cc CoeffCodec[C]) (int64, error) {
	var n int64
	syms := s.Symbols()
	nn, err := writeUint32(w, uint32(syms.Size()))
	n += nn
	if err != nil {
		return n, err
	}
	for _, name := range syms.Names() {
		nn, err = writeUint32(w, uint32(len(name)))
		n += nn
		if err != nil {
			return n, err
		}
		wn, err := w.Write([]byte(name))
		n += int64(wn)
		if err != nil {
			return n, err
		}
	}
	nn, err = writeUint64(w, uint64(s.Size()))
	n += nn
	if err != nil {
		return n, err
	}
	var werr error
	s.Range(func(k K, c C) bool {
		nn, err := kc.WriteKey(w, k)
		n += nn
		if err != nil {
			werr = err
			return false
		}
		nn, err = cc.WriteCoeff(w, c)
		n += nn
		if err != nil {
			werr = err
			return false
		}
		return true
	})
	return n, werr
}

// ReadFrom reads a series previously written by WriteTo.
func ReadFrom[K monomial.Key, C any](r io.Reader, ring coeff.Ring[C], kc KeyCodec[K], cc CoeffCodec[C]) (*series.Series[K, C], int64, error) {
	var n int64
	symCount, nn, err := readUint32(r)
	n += nn
	if err != nil {
		return nil, n, err
	}
	names := make([]string, symCount)
	for i := range names {
		l, nn, err := readUint32(r)
		n += nn
		if err != nil {
			return nil, n, err
		}
		buf := make([]byte, l)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, n, err
		}
		n += int64(l)
		names[i] = string(buf)
	}
	syms := symbol.New(names...)

	termCount, nn, err := readUint64(r)
	n += nn
	if err != nil {
		return nil, n, err
	}

	s := series.New[K, C](syms, ring)
	for i := uint64(0); i < termCount; i++ {
		k, nn, err := kc.ReadKey(r, syms.Size())
		n += nn
		if err != nil {
			return nil, n, err
		}
		c, nn, err := cc.ReadCoeff(r)
		n += nn
		if err != nil {
			return nil, n, err
		}
		if _, err := s.Table().Insert(k, c); err != nil {
			return nil, n, err
		}
	}
	return s, n, nil
}

// Marshal and Unmarshal wrap WriteTo/ReadFrom over an in-memory buffer,
// mirroring the teacher's MarshalBinary/UnmarshalBinary convenience
// wrappers around its own WriteTo/ReadFrom.
func Marshal[K monomial.Key, C any](s *series.Series[K, C], kc KeyCodec[K], cc CoeffCodec[C]) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := WriteTo(&buf, s, kc, cc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal[K monomial.Key, C any](data []byte, ring coeff.Ring[C], kc KeyCodec[K], cc CoeffCodec[C]) (*series.Series[K, C], error) {
	s, _, err := ReadFrom(bytes.NewReader(data), ring, kc, cc)
	return s, err
}
