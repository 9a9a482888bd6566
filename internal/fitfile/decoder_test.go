package fitfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not a fit file")))
	assert.Error(t, err)

	_, err = Decode(bytes.NewReader(nil))
	assert.Error(t, err)
}
