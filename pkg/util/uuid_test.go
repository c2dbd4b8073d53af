package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMd5ThenHex(t *testing.T) {
	// md5("") is the classic d41d8... digest
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Md5ThenHex(nil))
	assert.Len(t, Md5ThenHex([]byte("qoif")), 32)
}

func TestContentID(t *testing.T) {
	a := ContentID([]byte("qoif"))
	b := ContentID([]byte("qoif"))
	c := ContentID([]byte("qoix"))

	assert.Equal(t, a, b, "same content, same ID")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 36, "uuid string form")
}
