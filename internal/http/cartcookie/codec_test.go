package cartcookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	c := New([]byte("secret"), "cart_id", false)

	v := c.Encode("cart-123")
	id, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "cart-123", id)
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := New([]byte("secret"), "cart_id", false)
	v := c.Encode("cart-123")

	tampered := "cart-999" + v[len("cart-123"):]
	_, err := c.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	a := New([]byte("secret-a"), "cart_id", false)
	b := New([]byte("secret-b"), "cart_id", false)

	_, err := b.Decode(a.Encode("cart-123"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	c := New([]byte("secret"), "cart_id", false)
	for _, v := range []string{"", "noseparator", ".sigonly", "a.b.c"} {
		_, err := c.Decode(v)
		assert.ErrorIs(t, err, ErrInvalid, "Decode(%q)", v)
	}
}
