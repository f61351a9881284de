package trace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rec := Record{
		Action:     ActionLimit,
		OrderID:    0,
		Price:      1000000,
		Quantity:   250,
		Side:       1,
		Instrument: [4]byte{'A', 'A', 'P', 'L'},
		Trader:     [4]byte{'B', '0', '0', '1'},
		CancelID:   0,
	}

	buf := Encode(rec)
	require.Len(t, buf, RecordSize)

	got, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestDecodeShortBuffer(t *testing.T) {
	_, err := Decode(make([]byte, RecordSize-1))
	require.Error(t, err)
}

func TestReadAllIgnoresTrailingPartialRecord(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{
		{Action: ActionLimit, Price: 100, Quantity: 10, Side: 1},
		{Action: ActionCancel, CancelID: 7},
	}
	require.NoError(t, WriteAll(&buf, records))
	buf.Write([]byte{1, 2, 3}) // trailing partial record

	got, err := ReadAll(&buf)
	require.NoError(t, err)
	require.Equal(t, records, got)
}

func TestRecordInputConversion(t *testing.T) {
	rec := Record{
		Price:      990000,
		Quantity:   100,
		Side:       1,
		Instrument: [4]byte{'A', 'A', 'P', 'L'},
		Trader:     [4]byte{'B', '1', 0, 0},
	}
	in := rec.Input()
	require.EqualValues(t, rec.Price, in.Price)
	require.EqualValues(t, rec.Quantity, in.Quantity)
	require.EqualValues(t, 1, in.Side)
}
