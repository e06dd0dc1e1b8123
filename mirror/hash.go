package mirror

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// Hash computes the default reflect-hash of a value: the digest is seeded
// with the type path so equal payloads of different types hash apart, then
// extended with a structural hash of the value. ok is false when the value
// contains something unhashable, such as a function field.
func Hash(typePath string, v any) (hash uint64, ok bool) {
	structural, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, false
	}

	d := xxhash.New()
	_, _ = d.WriteString(typePath)

	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], structural)
	_, _ = d.Write(buf[:])

	return d.Sum64(), true
}
