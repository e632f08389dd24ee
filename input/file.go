package input

import (
	"io"

	"crawshaw.io/iox"

	"github.com/go-css/csslex/css"
)

// FileAdapter spools a stylesheet to disk before tokenizing it, for callers
// that receive stylesheets too large to hold comfortably in memory (a
// mirrored large attachment, a proxied response body). It uses
// crawshaw.io/iox's *iox.Filer/*iox.BufferFile rather than a bespoke
// temp-file wrapper: iox.BufferFile already spills from memory to
// disk past its threshold and cleans up its backing file on Close.
type FileAdapter struct {
	buf *iox.BufferFile
	ba  *ByteAdapter
}

// NewFileAdapter copies r's full contents through filer into a BufferFile,
// then wraps it for decoding using charsetLabel the same way NewByteAdapter
// does. The caller owns the returned FileAdapter and must Close it.
func NewFileAdapter(filer *iox.Filer, r io.Reader, charsetLabel string) (*FileAdapter, error) {
	buf := filer.BufferFile(0)
	if _, err := io.Copy(buf, r); err != nil {
		buf.Close()
		return nil, err
	}
	if _, err := buf.Seek(0, 0); err != nil {
		buf.Close()
		return nil, err
	}
	ba, err := NewByteAdapter(buf, charsetLabel)
	if err != nil {
		buf.Close()
		return nil, err
	}
	return &FileAdapter{buf: buf, ba: ba}, nil
}

// Feed decodes the spooled contents into tok, as ByteAdapter.Feed does.
func (f *FileAdapter) Feed(tok *css.Tokenizer) error {
	return f.ba.Feed(tok)
}

// Close releases the backing BufferFile.
func (f *FileAdapter) Close() error {
	return f.buf.Close()
}
