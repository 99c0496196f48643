package yaz0

// cursor reads forward through an in-memory source buffer.
type cursor struct {
	data []byte // The source buffer.
	pos  int    // The current read position.
}

// readByte reads the byte under the cursor and advances it.
func (c *cursor) readByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, ErrTruncatedStream
	}

	b := c.data[c.pos]
	c.pos++

	return b, nil
}

// read2 reads two bytes in stream order.
func (c *cursor) read2() (byte, byte, error) {
	if len(c.data)-c.pos < 2 {
		return 0, 0, ErrTruncatedStream
	}

	b1, b2 := c.data[c.pos], c.data[c.pos+1]
	c.pos += 2

	return b1, b2, nil
}
