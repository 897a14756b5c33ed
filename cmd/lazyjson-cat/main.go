// Command lazyjson-cat reads a JSON document from a file or stdin and
// prints either the verbatim text reached by an optional path, or the
// full document, optionally after a splice. It exists to exercise
// Value/ValueAt, Piece/EditAt, and the streaming adaptor end to end; it is
// example code, not part of the library's core contract (spec.md §6
// lists CLI wrappers as out of scope for the core itself).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/shardwell/lazyjson"
	"github.com/shardwell/lazyjson/internal/diag"
)

func main() {
	var (
		path    = pflag.StringP("path", "p", "", "dotted path to resolve, e.g. a.b[2].c")
		set     = pflag.StringP("set", "s", "", "path=json fragment to splice in before printing")
		stream  = pflag.BoolP("stream", "S", false, "read stdin incrementally through the streaming adaptor")
		verbose = pflag.BoolP("verbose", "v", false, "log streaming pump activity")
	)
	pflag.Parse()

	var reader io.Reader = os.Stdin
	if args := pflag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			fail(err)
		}
		defer f.Close()
		reader = f
	}

	var root any
	var err error
	var src lazyjson.Source

	if *stream {
		ss := lazyjson.NewStreamSource(reader, 0)
		if *verbose {
			log := diag.NewLogger(os.Stderr)
			ss.OnEvent(diag.StreamEventLogger(log))
		}
		src = ss
		root, err = lazyjson.StreamValue(ss)
	} else {
		input, err2 := readAll(reader)
		if err2 != nil {
			fail(err2)
		}
		b := lazyjson.NewBuffer(input)
		src = b
		root, err = lazyjson.Value(b)
	}
	if err != nil {
		fail(err)
	}

	if *set != "" {
		eqIdx := strings.IndexByte(*set, '=')
		if eqIdx < 0 {
			fail(fmt.Errorf("lazyjson-cat: -set must be path=json"))
		}
		keys := parsePath((*set)[:eqIdx])
		fragment := []byte((*set)[eqIdx+1:])
		p, err := lazyjson.EditAt(src, fragment, keys...)
		if err != nil {
			fail(err)
		}
		src = p
		root, err = lazyjson.Value(p)
		if err != nil {
			fail(err)
		}
	}

	if *path != "" {
		keys := parsePath(*path)
		root, err = lazyjson.ValueAt(src, keys...)
		if err != nil {
			if lazyjson.IsNotFound(err) {
				fmt.Fprintln(os.Stderr, "lazyjson-cat: path not found:", *path)
				os.Exit(3)
			}
			fail(err)
		}
	}

	text, err := lazyjson.AsText(src, root)
	if err != nil {
		fail(err)
	}
	os.Stdout.Write(text)
	os.Stdout.Write([]byte("\n"))
}

// parsePath parses a minimal "a.b[2].c" dotted path into PathKeys. It
// is a convenience for the CLI only; it does not attempt to cover the
// full generality of JSON Pointer, which is explicitly out of scope
// per spec.md §1.
func parsePath(s string) []lazyjson.PathKey {
	var keys []lazyjson.PathKey
	for _, part := range strings.Split(s, ".") {
		for len(part) > 0 {
			if part[0] == '[' {
				end := strings.IndexByte(part, ']')
				if end < 0 {
					break
				}
				idx := 0
				for _, c := range part[1:end] {
					idx = idx*10 + int(c-'0')
				}
				keys = append(keys, lazyjson.Index(idx))
				part = part[end+1:]
				continue
			}
			end := strings.IndexByte(part, '[')
			if end < 0 {
				keys = append(keys, lazyjson.Key(part))
				part = ""
				continue
			}
			keys = append(keys, lazyjson.Key(part[:end]))
			part = part[end:]
		}
	}
	return keys
}

func readAll(r io.Reader) ([]byte, error) {
	var out []byte
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "lazyjson-cat:", err)
	os.Exit(1)
}
