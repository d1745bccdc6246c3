package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	var user User
	require.NoError(t, user.SetPassword("hunter2"))

	assert.NotEqual(t, "hunter2", user.PassHash)
	assert.True(t, user.CheckPassword("hunter2"))
	assert.False(t, user.CheckPassword("hunter3"))
}
