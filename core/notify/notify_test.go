package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_AddAndList(t *testing.T) {
	c := NewCenter()
	defer c.Close()

	first := c.Add("Movie added", TypeSuccess, time.Minute)
	second := c.Add("hello", "", time.Minute)

	assert.NotEqual(t, first, second)

	got := c.List()
	require.Len(t, got, 2)
	assert.Equal(t, "Movie added", got[0].Message)
	assert.Equal(t, TypeSuccess, got[0].Type)
	assert.Equal(t, TypeInfo, got[1].Type)
}

func TestCenter_Remove(t *testing.T) {
	c := NewCenter()
	defer c.Close()

	id := c.Error("failed")
	c.Remove(id)
	c.Remove(12345)

	assert.Empty(t, c.List())
}

func TestCenter_Expires(t *testing.T) {
	c := NewCenter()
	defer c.Close()

	c.Add("short lived", TypeInfo, 20*time.Millisecond)
	c.Add("long lived", TypeInfo, time.Minute)

	assert.Eventually(t, func() bool {
		return len(c.List()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "long lived", c.List()[0].Message)
}

func TestCenter_IDsAreNotReused(t *testing.T) {
	c := NewCenter()
	defer c.Close()

	a := c.Success("a")
	c.Remove(a)
	b := c.Success("b")

	assert.Greater(t, b, a)
}
