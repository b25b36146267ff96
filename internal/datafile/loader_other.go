//go:build !linux && !darwin

package datafile

import "os"

// readFile loads the file into memory on platforms without the mmap fast
// path.
func readFile(path string) (data []byte, done func(), err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() {}, nil
}
