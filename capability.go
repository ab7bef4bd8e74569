package slickhash

// This file is the capability surface a client library would see: a small
// set of interfaces any key/value backend can implement so callers can
// write code against the surface rather than a concrete table type.

// Capacity lets a constructor accept either a raw size or a size plus a
// growth margin.
type Capacity interface {
	Capacity() uint64
}

// PlainCapacity is a bare capacity value with no margin applied.
type PlainCapacity uint64

func (c PlainCapacity) Capacity() uint64 { return uint64(c) }

// WithMargin requests a capacity inflated by a fractional epsilon, e.g.
// WithMargin{1000, 0.1}.Capacity() == 1100.
type WithMargin struct {
	Base    uint64
	Epsilon float64
}

func (m WithMargin) Capacity() uint64 {
	return uint64((1.0 + m.Epsilon) * float64(m.Base))
}

// Insertion is the tagged reference TryInsert returns: either the key was
// newly Inserted, or it was already Occupied and the stored value is
// returned unmodified. The Value pointer is only valid until the next
// mutating call on the table it came from.
type Insertion[Value any] struct {
	value       *Value
	wasInserted bool
}

// Inserted builds an Insertion reporting a newly-stored value.
func Inserted[Value any](v *Value) Insertion[Value] {
	return Insertion[Value]{value: v, wasInserted: true}
}

// Occupied builds an Insertion reporting a pre-existing value.
func Occupied[Value any](v *Value) Insertion[Value] {
	return Insertion[Value]{value: v, wasInserted: false}
}

// WasInserted reports whether the key was newly inserted (true) or already
// present (false).
func (ins Insertion[Value]) WasInserted() bool {
	return ins.wasInserted
}

// Value returns the stored value: the one just written, on Inserted, or
// the pre-existing one, on Occupied. TryInsert never overwrites an
// existing value.
func (ins Insertion[Value]) Value() *Value {
	return ins.value
}

// HashTableBase is the minimal capability every backend provides.
type HashTableBase[Key comparable, Value any] interface {
	TryInsert(key Key, value Value) Insertion[Value]
	Get(key Key) (*Value, bool)
	Contains(key Key) bool
}

// HashTableBulk is the bulk-insertion capability. SlickHash does not
// implement it directly; BulkInsert below synthesizes it for any
// HashTableBase.
type HashTableBulk[Key comparable, Value any] interface {
	BulkInsert(keyValuePairs []KeyValue[Key, Value])
}

// HashTableRemove is the removal capability, kept distinct from
// HashTableBase because not every backend a capability surface might serve
// is required to support removal.
type HashTableRemove[Key comparable, Value any] interface {
	RemoveEntry(key Key) (Key, Value, bool)
}

// MaybeRemovable lets callers probe removal support without a type
// assertion failing at the call site.
type MaybeRemovable interface {
	SupportsRemove() bool
}

// Named identifies a backend by a human-readable string.
type Named interface {
	Name() string
}

// CompleteHashTable is the union of capabilities a fully-featured backend
// exposes: base operations, naming, and a probe for removal support. It
// does not include HashTableRemove itself.
type CompleteHashTable[Key comparable, Value any] interface {
	HashTableBase[Key, Value]
	Named
	MaybeRemovable
}

// KeyValue is a plain key/value pair, used by the bulk-insert default.
type KeyValue[Key comparable, Value any] struct {
	Key   Key
	Value Value
}

// BulkInsert is the capability surface's default bulk insert: a TryInsert
// loop over copyable keys and values, synthesized for any backend that does
// not provide a faster bulk path of its own.
func BulkInsert[Key comparable, Value any](table HashTableBase[Key, Value], keyValuePairs []KeyValue[Key, Value]) {
	for _, kv := range keyValuePairs {
		table.TryInsert(kv.Key, kv.Value)
	}
}
