//go:build linux || darwin

package datafile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// readFile mmaps the file read-only and returns its bytes plus a release
// function. Datasets can run to hundreds of megabytes; mapping avoids
// holding a second copy while the JSON decoder runs. The returned bytes are
// invalid after done is called.
func readFile(path string) (data []byte, done func(), err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	sz := st.Size()
	if sz == 0 {
		return nil, func() {}, nil
	}

	data, err = unix.Mmap(int(f.Fd()), 0, int(sz), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap failed: %w", err)
	}

	return data, func() { _ = unix.Munmap(data) }, nil
}
