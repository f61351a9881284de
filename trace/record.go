// Package trace implements a fixed-layout binary trace record format used
// to record and replay sequences of limit submissions and cancels. It is
// consumed only by the benchmark harness and the trace generator — the
// matching core never imports it.
package trace

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/nsardo/matchcore"
)

// Action distinguishes a limit submission from a cancel within a trace.
type Action uint8

const (
	ActionLimit  Action = 0
	ActionCancel Action = 1
)

func (a Action) String() string {
	if a == ActionCancel {
		return "cancel"
	}
	return "limit"
}

// RecordSize is the packed, unaligned width of one trace record in bytes:
// action(1) + id(8) + price(8) + quantity(4) + side(1) + instrument(4) +
// trader(4) + cancel_id(8).
const RecordSize = 1 + 8 + 8 + 4 + 1 + 4 + 4 + 8

// Record is one trace entry. Every field is present in the layout and
// decoded, but fields unused by the action they carry are ignored by the
// consumers (Input, the bench harness): OrderID/Price/Quantity/Side/
// Instrument/Trader on a cancel, CancelID on a limit.
type Record struct {
	Action     Action
	OrderID    uint64
	Price      uint64
	Quantity   uint32
	Side       int8
	Instrument [4]byte
	Trader     [4]byte
	CancelID   uint64
}

// Decode parses one record from buf, which must be at least RecordSize
// bytes. The layout is packed with no alignment padding, little-endian
// throughout.
func Decode(buf []byte) (Record, error) {
	if len(buf) < RecordSize {
		return Record{}, fmt.Errorf("trace: short record: need %d bytes, got %d", RecordSize, len(buf))
	}
	var r Record
	r.Action = Action(buf[0])
	r.OrderID = binary.LittleEndian.Uint64(buf[1:9])
	r.Price = binary.LittleEndian.Uint64(buf[9:17])
	r.Quantity = binary.LittleEndian.Uint32(buf[17:21])
	r.Side = int8(buf[21])
	copy(r.Instrument[:], buf[22:26])
	copy(r.Trader[:], buf[26:30])
	r.CancelID = binary.LittleEndian.Uint64(buf[30:38])
	return r, nil
}

// Encode serializes r into its packed on-disk representation.
func Encode(r Record) []byte {
	buf := make([]byte, RecordSize)
	buf[0] = byte(r.Action)
	binary.LittleEndian.PutUint64(buf[1:9], r.OrderID)
	binary.LittleEndian.PutUint64(buf[9:17], r.Price)
	binary.LittleEndian.PutUint32(buf[17:21], r.Quantity)
	buf[21] = byte(r.Side)
	copy(buf[22:26], r.Instrument[:])
	copy(buf[26:30], r.Trader[:])
	binary.LittleEndian.PutUint64(buf[30:38], r.CancelID)
	return buf
}

// ReadAll reads every complete record from r. A trailing partial record
// at EOF is ignored rather than treated as an error.
func ReadAll(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("trace: reading trace: %w", err)
	}
	n := len(data) / RecordSize
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		rec, err := Decode(data[i*RecordSize : (i+1)*RecordSize])
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteAll serializes records to w in order.
func WriteAll(w io.Writer, records []Record) error {
	for _, rec := range records {
		if _, err := w.Write(Encode(rec)); err != nil {
			return fmt.Errorf("trace: writing record: %w", err)
		}
	}
	return nil
}

// Input converts a limit-action record into the Input the engine expects.
// Calling it on a cancel record is a programmer error.
func (r Record) Input() matchcore.Input {
	return matchcore.Input{
		Price:      r.Price,
		Quantity:   r.Quantity,
		Side:       matchcore.Side(r.Side),
		Instrument: matchcore.Tag(r.Instrument),
		Trader:     matchcore.Tag(r.Trader),
	}
}
