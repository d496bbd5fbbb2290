package lineio

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an Input source.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a queue of one or more
// input streams, tracking the location of the last line read to facilitate
// user feedback.
type Input struct {
	br    *bufio.Reader
	cl    io.Closer
	Queue []io.Reader
	Last  Location
}

// Push appends a reader to the end of the input queue.
func (in *Input) Push(r io.Reader) {
	in.Queue = append(in.Queue, r)
}

// ReadLine reads one line, without its trailing newline, from the current
// input stream, rolling over to the next queued stream at EOF. A final
// unterminated line is returned with a nil error; the io.EOF after it is
// only returned once all queued streams are exhausted.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.br == nil && !in.next() {
			return "", io.EOF
		}
		line, err := in.br.ReadString('\n')
		if n := len(line); n > 0 && line[n-1] == '\n' {
			line = line[:n-1]
		}
		if err == nil {
			in.Last.Line++
			return line, nil
		}
		if err != io.EOF {
			return line, err
		}
		in.drop()
		if line != "" {
			in.Last.Line++
			return line, nil
		}
	}
}

// Close closes the current stream and any queued streams that are closable,
// then forgets them.
func (in *Input) Close() error {
	err := in.drop()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) next() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.br = bufio.NewReader(r)
	in.cl, _ = r.(io.Closer)
	in.Last = Location{Name: nameOf(r)}
	return true
}

func (in *Input) drop() (err error) {
	if in.cl != nil {
		err = in.cl.Close()
	}
	in.br, in.cl = nil, nil
	return err
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a name to a reader, for Location tracking.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
