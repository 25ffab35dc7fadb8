package glb

import (
	"bufio"
	"bytes"
	"encoding/binary"
	stdjson "encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/vrmkit/gltf/errors"
)

// Dump writes to w a readable representation of the container read from r.
// The JSON chunk is written indented, and all other chunks as a hex dump. JSON
// text that is not valid is written quoted, and reported as a
// JSONSyntaxError among the warnings.
func (d Decoder) Dump(w io.Writer, r io.Reader) (warn, err error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}
	if w == nil {
		return nil, errors.New("nil writer")
	}

	c, warn, err := d.Read(r)
	if err != nil {
		return warn, err
	}

	var jerr error
	bw := bufio.NewWriter(w)
	if c.Binary {
		fmt.Fprintf(bw, "Magic: ")
		dumpType(bw, ChunkType(Magic))
		fmt.Fprintf(bw, "\nVersion: %d", c.Version)
		fmt.Fprintf(bw, "\nLength: %d", c.Length)
		fmt.Fprint(bw, "\nChunks: {")
		for i, chunk := range c.Chunks {
			if err := dumpChunk(bw, 1, i, chunk); err != nil {
				jerr = err
			}
		}
		fmt.Fprint(bw, "\n}")
	} else {
		bw.WriteString("Plain JSON: ")
		jerr = dumpJSON(bw, 0, c.JSON)
	}
	bw.WriteByte('\n')

	return errors.Union(warn, jerr), bw.Flush()
}

func dumpChunk(w *bufio.Writer, indent, i int, chunk Chunk) (err error) {
	dumpNewline(w, indent)
	fmt.Fprintf(w, "#%d: ", i)
	dumpType(w, chunk.Type)
	w.WriteString(" {")
	dumpNewline(w, indent+1)
	fmt.Fprintf(w, "Offset: %d", chunk.Offset)
	dumpNewline(w, indent+1)
	fmt.Fprintf(w, "Length: %d", len(chunk.Data))
	dumpNewline(w, indent+1)
	w.WriteString("Content: ")
	switch chunk.Type {
	case ChunkJSON:
		err = dumpJSON(w, indent+1, chunk.Data)
	default:
		dumpBytes(w, indent+1, chunk.Data)
	}
	dumpNewline(w, indent)
	w.WriteByte('}')
	return err
}

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteByte('\n')
	for i := 0; i < indent; i++ {
		w.WriteByte('\t')
	}
}

func dumpType(w *bufio.Writer, t ChunkType) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(t))
	w.WriteString(t.String())
	fmt.Fprintf(w, " (% 02X)", b)
}

// dumpJSON writes indented JSON text, or a quoted string if the text is not
// valid JSON, in which case the syntax error is returned.
func dumpJSON(w *bufio.Writer, indent int, b []byte) error {
	prefix := "\n"
	for i := 0; i <= indent; i++ {
		prefix += "\t"
	}
	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, bytes.TrimRight(b, " "), prefix[1:], "\t"); err != nil {
		fmt.Fprintf(w, "(len:%d) (invalid: %s) ", len(b), err)
		w.WriteString(strconv.Quote(string(b)))
		jerr := errors.JSONSyntaxError{Offset: -1, Cause: err}
		var serr *stdjson.SyntaxError
		if errors.As(err, &serr) {
			jerr.Offset = serr.Offset
		}
		return jerr
	}
	fmt.Fprintf(w, "(len:%d)", len(b))
	w.WriteString(prefix)
	buf.WriteTo(w)
	return nil
}

func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	fmt.Fprintf(w, "(len:%d)", len(b))
	const width = 16
	for j := 0; j < len(b); j += width {
		dumpNewline(w, indent+1)
		w.WriteString("| ")
		for i := j; i < j+width; {
			if i < len(b) {
				s := strconv.FormatUint(uint64(b[i]), 16)
				if len(s) == 1 {
					w.WriteString("0")
				}
				w.WriteString(s)
			} else if len(b) < width {
				break
			} else {
				w.WriteString("  ")
			}
			i++
			if i%8 == 0 && i < j+width {
				w.WriteString("  ")
			} else {
				w.WriteString(" ")
			}
		}
		w.WriteString("|")
		n := len(b)
		if j+width < n {
			n = j + width
		}
		for i := j; i < n; i++ {
			if 32 <= b[i] && b[i] <= 126 {
				w.WriteRune(rune(b[i]))
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('|')
	}
}
