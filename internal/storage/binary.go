// internal/storage/binary.go
package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/your-org/retail-store/internal/domain/product"
	"github.com/your-org/retail-store/internal/domain/store"
	"github.com/your-org/retail-store/internal/pkg/errs"
)

// The binary codec serializes exactly the same record schema the JSON codec
// does, using a tagged, length-prefixed wire encoding: every value is
// prefixed with a type tag, strings and lists with a uvarint length/count,
// integers as signed varints, floats as big-endian IEEE 754 bits.

const (
	binMagic   = "RSTB"
	binVersion = 1
)

const (
	tagNil byte = iota
	tagBool
	tagInt
	tagFloat
	tagString
	tagList
)

// SaveBinary writes the full record schema in the binary wire encoding.
func (s *Storage) SaveBinary(m *store.Manager, filename string) (string, error) {
	data := encodeStore(Snapshot(m))
	target := s.path(filename)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", errs.IO("write binary file", err)
	}
	s.logSaved(target, FormatBinary)
	return target, nil
}

// LoadBinary reads a binary file and rebuilds the manager.
func (s *Storage) LoadBinary(filename string) (*store.Manager, error) {
	data, err := os.ReadFile(s.path(filename))
	if err != nil {
		return nil, errs.IO("read binary file", err)
	}
	rec, err := decodeStore(data)
	if err != nil {
		return nil, errs.IO("decode binary", err)
	}
	return Restore(rec)
}

// ---------- encoding ----------

type binWriter struct {
	buf bytes.Buffer
}

func encodeStore(rec StoreRecord) []byte {
	var w binWriter
	w.buf.WriteString(binMagic)
	w.buf.WriteByte(binVersion)

	w.writeListHeader(len(rec.Products))
	for _, pr := range rec.Products {
		w.writeProduct(pr)
	}
	w.writeListHeader(len(rec.Orders))
	for _, or := range rec.Orders {
		w.writeOrder(or)
	}
	return w.buf.Bytes()
}

func (w *binWriter) writeListHeader(n int) {
	w.buf.WriteByte(tagList)
	w.buf.Write(binary.AppendUvarint(nil, uint64(n)))
}

func (w *binWriter) writeString(v string) {
	w.buf.WriteByte(tagString)
	w.buf.Write(binary.AppendUvarint(nil, uint64(len(v))))
	w.buf.WriteString(v)
}

func (w *binWriter) writeInt(v int) {
	w.buf.WriteByte(tagInt)
	w.buf.Write(binary.AppendVarint(nil, int64(v)))
}

func (w *binWriter) writeFloat(v float64) {
	w.buf.WriteByte(tagFloat)
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], math.Float64bits(v))
	w.buf.Write(raw[:])
}

func (w *binWriter) writeBool(v bool) {
	w.buf.WriteByte(tagBool)
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *binWriter) writeNil() {
	w.buf.WriteByte(tagNil)
}

func (w *binWriter) writeProduct(rec product.Record) {
	w.writeString(rec.Type)
	w.writeString(rec.Name)
	w.writeString(rec.Category)
	w.writeFloat(rec.Price)
	w.writeInt(rec.Stock)
	w.writeString(rec.Manufacturer)

	// Variant extras in fixed order; absent ones carry the nil tag.
	if rec.WarrantyYears != nil {
		w.writeInt(*rec.WarrantyYears)
	} else {
		w.writeNil()
	}
	if rec.HasWiFi != nil {
		w.writeBool(*rec.HasWiFi)
	} else {
		w.writeNil()
	}
	if rec.Size != nil {
		w.writeString(*rec.Size)
	} else {
		w.writeNil()
	}
	if rec.Material != nil {
		w.writeString(*rec.Material)
	} else {
		w.writeNil()
	}
	if rec.Weight != nil {
		w.writeFloat(*rec.Weight)
	} else {
		w.writeNil()
	}
	if rec.Assembled != nil {
		w.writeBool(*rec.Assembled)
	} else {
		w.writeNil()
	}
}

func (w *binWriter) writeOrder(rec OrderRecord) {
	w.writeString(rec.Number)
	w.writeString(rec.Customer.FullName)
	w.writeString(rec.Customer.Contact)
	w.writeListHeader(len(rec.Items))
	for _, item := range rec.Items {
		w.writeProduct(item.Product)
		w.writeInt(item.Quantity)
	}
	w.writeString(rec.Status)
	w.writeString(rec.CreatedAt)
	if rec.Payment != nil {
		w.writeString(rec.Payment.Reference)
		w.writeFloat(rec.Payment.Amount)
		w.writeString(rec.Payment.Method)
		w.writeString(rec.Payment.Status)
		w.writeString(rec.Payment.Date)
	} else {
		w.writeNil()
	}
}

// ---------- decoding ----------

type binReader struct {
	r *bytes.Reader
}

func decodeStore(data []byte) (StoreRecord, error) {
	r := &binReader{r: bytes.NewReader(data)}

	header := make([]byte, len(binMagic))
	if _, err := io.ReadFull(r.r, header); err != nil || string(header) != binMagic {
		return StoreRecord{}, fmt.Errorf("bad magic header")
	}
	version, err := r.r.ReadByte()
	if err != nil {
		return StoreRecord{}, err
	}
	if version != binVersion {
		return StoreRecord{}, fmt.Errorf("unsupported version %d", version)
	}

	var rec StoreRecord
	count, err := r.readListHeader()
	if err != nil {
		return StoreRecord{}, err
	}
	for i := 0; i < count; i++ {
		pr, err := r.readProduct()
		if err != nil {
			return StoreRecord{}, err
		}
		rec.Products = append(rec.Products, pr)
	}

	count, err = r.readListHeader()
	if err != nil {
		return StoreRecord{}, err
	}
	for i := 0; i < count; i++ {
		or, err := r.readOrder()
		if err != nil {
			return StoreRecord{}, err
		}
		rec.Orders = append(rec.Orders, or)
	}
	return rec, nil
}

func (r *binReader) expectTag(want byte) error {
	got, err := r.r.ReadByte()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("unexpected tag 0x%02x, want 0x%02x", got, want)
	}
	return nil
}

// peekNil consumes the nil tag if it is next, reporting whether it did.
func (r *binReader) peekNil() (bool, error) {
	got, err := r.r.ReadByte()
	if err != nil {
		return false, err
	}
	if got == tagNil {
		return true, nil
	}
	return false, r.r.UnreadByte()
}

func (r *binReader) readListHeader() (int, error) {
	if err := r.expectTag(tagList); err != nil {
		return 0, err
	}
	n, err := binary.ReadUvarint(r.r)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *binReader) readString() (string, error) {
	if err := r.expectTag(tagString); err != nil {
		return "", err
	}
	n, err := binary.ReadUvarint(r.r)
	if err != nil {
		return "", err
	}
	if n > uint64(r.r.Len()) {
		return "", fmt.Errorf("string length %d exceeds remaining input", n)
	}
	raw := make([]byte, n)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *binReader) readInt() (int, error) {
	if err := r.expectTag(tagInt); err != nil {
		return 0, err
	}
	v, err := binary.ReadVarint(r.r)
	return int(v), err
}

func (r *binReader) readFloat() (float64, error) {
	if err := r.expectTag(tagFloat); err != nil {
		return 0, err
	}
	var raw [8]byte
	if _, err := io.ReadFull(r.r, raw[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(raw[:])), nil
}

func (r *binReader) readBool() (bool, error) {
	if err := r.expectTag(tagBool); err != nil {
		return false, err
	}
	v, err := r.r.ReadByte()
	return v != 0, err
}

func (r *binReader) readProduct() (product.Record, error) {
	var rec product.Record
	var err error
	if rec.Type, err = r.readString(); err != nil {
		return rec, err
	}
	if rec.Name, err = r.readString(); err != nil {
		return rec, err
	}
	if rec.Category, err = r.readString(); err != nil {
		return rec, err
	}
	if rec.Price, err = r.readFloat(); err != nil {
		return rec, err
	}
	if rec.Stock, err = r.readInt(); err != nil {
		return rec, err
	}
	if rec.Manufacturer, err = r.readString(); err != nil {
		return rec, err
	}

	if absent, err := r.peekNil(); err != nil {
		return rec, err
	} else if !absent {
		v, err := r.readInt()
		if err != nil {
			return rec, err
		}
		rec.WarrantyYears = &v
	}
	if absent, err := r.peekNil(); err != nil {
		return rec, err
	} else if !absent {
		v, err := r.readBool()
		if err != nil {
			return rec, err
		}
		rec.HasWiFi = &v
	}
	if absent, err := r.peekNil(); err != nil {
		return rec, err
	} else if !absent {
		v, err := r.readString()
		if err != nil {
			return rec, err
		}
		rec.Size = &v
	}
	if absent, err := r.peekNil(); err != nil {
		return rec, err
	} else if !absent {
		v, err := r.readString()
		if err != nil {
			return rec, err
		}
		rec.Material = &v
	}
	if absent, err := r.peekNil(); err != nil {
		return rec, err
	} else if !absent {
		v, err := r.readFloat()
		if err != nil {
			return rec, err
		}
		rec.Weight = &v
	}
	if absent, err := r.peekNil(); err != nil {
		return rec, err
	} else if !absent {
		v, err := r.readBool()
		if err != nil {
			return rec, err
		}
		rec.Assembled = &v
	}
	return rec, nil
}

func (r *binReader) readOrder() (OrderRecord, error) {
	var rec OrderRecord
	var err error
	if rec.Number, err = r.readString(); err != nil {
		return rec, err
	}
	if rec.Customer.FullName, err = r.readString(); err != nil {
		return rec, err
	}
	if rec.Customer.Contact, err = r.readString(); err != nil {
		return rec, err
	}

	count, err := r.readListHeader()
	if err != nil {
		return rec, err
	}
	for i := 0; i < count; i++ {
		var item ItemRecord
		if item.Product, err = r.readProduct(); err != nil {
			return rec, err
		}
		if item.Quantity, err = r.readInt(); err != nil {
			return rec, err
		}
		rec.Items = append(rec.Items, item)
	}

	if rec.Status, err = r.readString(); err != nil {
		return rec, err
	}
	if rec.CreatedAt, err = r.readString(); err != nil {
		return rec, err
	}

	absent, err := r.peekNil()
	if err != nil {
		return rec, err
	}
	if !absent {
		var p PaymentRecord
		if p.Reference, err = r.readString(); err != nil {
			return rec, err
		}
		if p.Amount, err = r.readFloat(); err != nil {
			return rec, err
		}
		if p.Method, err = r.readString(); err != nil {
			return rec, err
		}
		if p.Status, err = r.readString(); err != nil {
			return rec, err
		}
		if p.Date, err = r.readString(); err != nil {
			return rec, err
		}
		rec.Payment = &p
	}
	return rec, nil
}
