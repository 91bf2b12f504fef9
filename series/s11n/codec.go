package s11n

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/bluescarni/piranha-go/coeff"
	"github.com/bluescarni/piranha-go/monomial"
)

// KeyCodec frames a single monomial on the wire. ReadKey is given the
// arity up front, since that is already known from the symbol set header
// written ahead of any term.
type KeyCodec[K monomial.Key] interface {
	WriteKey(w io.Writer, k K) (int64, error)
	ReadKey(r io.Reader, arity int) (K, int64, error)
}

// CoeffCodec frames a single coefficient on the wire.
type CoeffCodec[C any] interface {
	WriteCoeff(w io.Writer, c C) (int64, error)
	ReadCoeff(r io.Reader) (C, int64, error)
}

// PackedCodec frames monomial.Packed as its raw int64 Kronecker code: the
// "binary" variant of spec.md §6's persisted layout.
type PackedCodec struct{}

func (PackedCodec) WriteKey(w io.Writer, k monomial.Packed) (int64, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k.Code()))
	n, err := w.Write(buf[:])
	return int64(n), err
}

func (PackedCodec) ReadKey(r io.Reader, arity int) (monomial.Packed, int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return monomial.Packed{}, 0, err
	}
	code := int64(binary.LittleEndian.Uint64(buf[:]))
	k, err := monomial.NewPackedFromCode(code, arity)
	return k, 8, err
}

// DenseCodec frames monomial.Dense as its exponent vector, one
// little-endian int32 per component: the "portable" variant of spec.md
// §6's persisted layout.
type DenseCodec struct{}

func (DenseCodec) WriteKey(w io.Writer, k monomial.Dense) (int64, error) {
	var total int64
	buf := make([]byte, 4)
	for i := 0; i < k.Arity(); i++ {
		binary.LittleEndian.PutUint32(buf, uint32(int32(k.Exponent(i))))
		n, err := w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (DenseCodec) ReadKey(r io.Reader, arity int) (monomial.Dense, int64, error) {
	exps := make([]int64, arity)
	buf := make([]byte, 4)
	var total int64
	for i := 0; i < arity; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return monomial.Dense{}, total, err
		}
		total += 4
		exps[i] = int64(int32(binary.LittleEndian.Uint32(buf)))
	}
	d, err := monomial.NewDense(exps)
	return d, total, err
}

// writeBigInt frames a *big.Int as a sign byte, a uint32 magnitude length,
// and the magnitude bytes: the shared building block for both the integer
// and rational coefficient codecs.
func writeBigInt(w io.Writer, v *big.Int) (int64, error) {
	var sign byte
	if v.Sign() < 0 {
		sign = 1
	}
	mag := v.Bytes()
	var hdr [5]byte
	hdr[0] = sign
	binary.LittleEndian.PutUint32(hdr[1:], uint32(len(mag)))
	n, err := w.Write(hdr[:])
	total := int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(mag)
	total += int64(n)
	return total, err
}

func readBigInt(r io.Reader) (*big.Int, int64, error) {
	var hdr [5]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, err
	}
	length := binary.LittleEndian.Uint32(hdr[1:])
	mag := make([]byte, length)
	if _, err := io.ReadFull(r, mag); err != nil {
		return nil, 5, err
	}
	v := new(big.Int).SetBytes(mag)
	if hdr[0] == 1 {
		v.Neg(v)
	}
	return v, 5 + int64(length), nil
}

// BigIntCodec frames *big.Int coefficients via writeBigInt/readBigInt.
type BigIntCodec struct{}

func (BigIntCodec) WriteCoeff(w io.Writer, c *big.Int) (int64, error) { return writeBigInt(w, c) }
func (BigIntCodec) ReadCoeff(r io.Reader) (*big.Int, int64, error)    { return readBigInt(r) }

// BigRatCodec frames *big.Rat coefficients as a numerator and a
// denominator, each framed with writeBigInt/readBigInt.
type BigRatCodec struct{}

func (BigRatCodec) WriteCoeff(w io.Writer, c *big.Rat) (int64, error) {
	n1, err := writeBigInt(w, c.Num())
	if err != nil {
		return n1, err
	}
	n2, err := writeBigInt(w, c.Denom())
	return n1 + n2, err
}

func (BigRatCodec) ReadCoeff(r io.Reader) (*big.Rat, int64, error) {
	num, n1, err := readBigInt(r)
	if err != nil {
		return nil, n1, err
	}
	den, n2, err := readBigInt(r)
	if err != nil {
		return nil, n1 + n2, err
	}
	if den.Sign() == 0 {
		return nil, n1 + n2, coeff.ErrZeroDivision
	}
	return new(big.Rat).SetFrac(num, den), n1 + n2, nil
}
