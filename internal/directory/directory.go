// Package directory interns names into stable, comparable handles.
//
// The bakery engine looks up recipe and ingredient names on every admission
// and every replenishment, often under a skewed prefix distribution (menus
// tend to share long common prefixes — "cake", "cake_mini", "cake_large").
// A chained hash table over a DJBX33X-style string mixer gives O(|name|)
// worst-case lookup and insert without the per-node child-slot memory cost
// of a trie over the 63-symbol [A-Za-z0-9_] alphabet.
package directory

// Handle identifies an interned name. Handles are stable for the lifetime of
// the process: once assigned, a handle never changes meaning, even if the
// name is later deleted from the directory (the directory only stops
// resolving the name back to it).
type Handle int32

// Invalid is never bound to a name: Intern never returns it, and Lookup
// returns it only together with false on a miss.
const Invalid Handle = -1

type entry struct {
	name   string
	handle Handle
	next   *entry
}

// Directory is a chained hash table from name to Handle.
type Directory struct {
	buckets []*entry
	count   int
	next    Handle
}

// defaultBuckets mirrors the source's fixed RECIPE_HT_BUCKET_COUNT: a prime
// bucket count reduces clustering from the djb2 mixer's low bits.
const defaultBuckets = 9221

// New creates an empty directory with the default bucket count.
func New() *Directory {
	return NewSized(defaultBuckets)
}

// NewSized creates an empty directory with an explicit bucket count. bucketCount
// must be positive.
func NewSized(bucketCount int) *Directory {
	if bucketCount <= 0 {
		bucketCount = defaultBuckets
	}
	return &Directory{buckets: make([]*entry, bucketCount)}
}

// djbx33x computes the classic djb2/DJBX33X string mixer: hash = hash*33 + c.
func djbx33x(name string) uint64 {
	hash := uint64(5381)
	for i := 0; i < len(name); i++ {
		hash = ((hash << 5) + hash) + uint64(name[i])
	}
	return hash
}

func (d *Directory) bucketFor(name string) int {
	return int(djbx33x(name) % uint64(len(d.buckets)))
}

// Lookup returns the handle bound to name, if any. Read-only.
func (d *Directory) Lookup(name string) (Handle, bool) {
	for e := d.buckets[d.bucketFor(name)]; e != nil; e = e.next {
		if e.name == name {
			return e.handle, true
		}
	}
	return Invalid, false
}

// Intern returns the existing handle for name, or binds and returns a new one.
func (d *Directory) Intern(name string) Handle {
	idx := d.bucketFor(name)
	for e := d.buckets[idx]; e != nil; e = e.next {
		if e.name == name {
			return e.handle
		}
	}
	h := d.next
	d.next++
	d.buckets[idx] = &entry{name: name, handle: h, next: d.buckets[idx]}
	d.count++
	return h
}

// Delete unbinds name, if present, returning whether it was found. The
// handle itself is never reused — a later Intern of the same name mints a
// fresh handle, so stale references (e.g. held by an already-shipped order)
// can never silently resolve to an unrelated recipe.
func (d *Directory) Delete(name string) bool {
	idx := d.bucketFor(name)
	prev := &d.buckets[idx]
	for e := *prev; e != nil; e = *prev {
		if e.name == name {
			*prev = e.next
			d.count--
			return true
		}
		prev = &e.next
	}
	return false
}

// Count returns the number of currently bound names.
func (d *Directory) Count() int {
	return d.count
}
