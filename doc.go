/*
Package yaz0 decodes Yaz0, the LZ77 container Nintendo titles use to pack
RARC archives and other assets.

Format: 16-byte header ("Yaz0", big-endian uncompressed size, two reserved
big-endian words) followed by the payload. The payload is a sequence of
control bytes; each one selects, MSB first, the kind of the next 8 units:
bit 1 = literal (1 byte), bit 0 = back-reference (2 or 3 bytes).
Back-reference: 12-bit distance (stored minus one) measured from the next
output position; high nibble n != 0 gives length n+2 (2..17), n == 0 reads an
extra byte e giving length e+18 (18..273). Runs may overlap the bytes they
produce, which is how repeating patterns are encoded.

Yaz0 blocks are often embedded in larger files. The payload length is not
stored, so the end of a block is only known after walking its payload.

Use Decompress(src) when src starts with a Yaz0 header.
Use DecodeBlock(src, payloadStart, size) to decode one payload at a known position.
Use DecodeBlockN or MeasureBlock to also learn where the payload ends.
Use Locate(src, opts) to iterate over every block embedded in src.
Use DecodeAll(ctx, src, opts) to locate and decode all blocks, in parallel.
Use LenientOptions() to skip candidate blocks that fail to decode.

Decode failures wrap ErrCorruptStream (a back-reference that cannot be
satisfied) or ErrTruncatedStream (the source ends early). Multi-block
functions wrap them in *BlockError with the block index and offset.

# Examples

Decode a file that is a single Yaz0 block:

	out, err := yaz0.Decompress(data)
	if err != nil {
		return err
	}

Walk all blocks in a host file:

	for blk, err := range yaz0.Locate(data, nil) {
		if err != nil {
			return err
		}
		out, err := blk.Decode(data)
		if err != nil {
			return err
		}
		_ = out
	}

Decode everything, skipping corrupt blocks:

	opts := yaz0.LenientOptions()
	opts.OnSkip = func(e *yaz0.BlockError) { log.Print(e) }
	results, err := yaz0.DecodeAll(ctx, data, opts)

Branch on failure kind:

	var be *yaz0.BlockError
	if errors.As(err, &be) && errors.Is(err, yaz0.ErrCorruptStream) {
		log.Printf("block %d at 0x%X is corrupt", be.Index, be.Offset)
	}
*/
package yaz0
