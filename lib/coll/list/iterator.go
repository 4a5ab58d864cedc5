package list

import "github.com/ValentinKolb/dColl/lib/coll"

// --------------------------------------------------------------------------
// Cursor (movement shared by all list iterators)
// --------------------------------------------------------------------------

// cursor tracks pos, the index of the next element, and last, the index of the
// element returned by the most recent Next or Previous (-1 if there is none).
type cursor[T coll.Scalar] struct {
	src  Backend[T]
	pos  int
	last int
}

func (c *cursor[T]) HasNext() bool {
	return c.pos < c.src.Len()
}

func (c *cursor[T]) HasPrevious() bool {
	return c.pos > 0
}

func (c *cursor[T]) NextIndex() int {
	return c.pos
}

func (c *cursor[T]) PreviousIndex() int {
	return c.pos - 1
}

func (c *cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, coll.NoSuchElement("iterator is exhausted")
	}
	v, err := c.src.At(c.pos)
	if err != nil {
		return v, err
	}
	c.last = c.pos
	c.pos++
	return v, nil
}

func (c *cursor[T]) Previous() (T, error) {
	if !c.HasPrevious() {
		var zero T
		return zero, coll.NoSuchElement("iterator is at the start")
	}
	v, err := c.src.At(c.pos - 1)
	if err != nil {
		return v, err
	}
	c.pos--
	c.last = c.pos
	return v, nil
}

// Skip moves forward by up to n elements. The last skipped element counts as
// returned, so it can be removed or replaced.
func (c *cursor[T]) Skip(n int) int {
	if n <= 0 {
		return 0
	}
	if rest := c.src.Len() - c.pos; n > rest {
		n = rest
	}
	if n > 0 {
		c.pos += n
		c.last = c.pos - 1
	}
	return n
}

func (c *cursor[T]) Back(n int) int {
	if n <= 0 {
		return 0
	}
	if n > c.pos {
		n = c.pos
	}
	if n > 0 {
		c.pos -= n
		c.last = c.pos
	}
	return n
}

// removed updates the cursor after the element at last was deleted.
func (c *cursor[T]) removed() {
	if c.last < c.pos {
		c.pos--
	}
	c.last = -1
}

// --------------------------------------------------------------------------
// Generic List Iterator
// --------------------------------------------------------------------------

// listIterator is built purely from the index primitives of its list.
type listIterator[T coll.Scalar] struct {
	cursor[T]
	l *Base[T]
}

func (it *listIterator[T]) Remove() error {
	if it.last == -1 {
		return coll.IllegalState("Remove called without a preceding Next or Previous")
	}
	if _, err := it.l.RemoveAt(it.last); err != nil {
		return err
	}
	it.removed()
	return nil
}

func (it *listIterator[T]) Set(v T) error {
	if it.last == -1 {
		return coll.IllegalState("Set called without a preceding Next or Previous")
	}
	_, err := it.l.Set(it.last, v)
	return err
}

func (it *listIterator[T]) Add(v T) error {
	if err := it.l.Insert(it.pos, v); err != nil {
		return err
	}
	it.pos++
	it.last = -1
	return nil
}
