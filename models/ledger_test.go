package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeerPairKey_OrderInsensitive(t *testing.T) {
	assert.Equal(t, PeerPairKey("S1", "S2"), PeerPairKey("S2", "S1"))
	assert.Equal(t, "S1|S2", PeerPairKey("S2", "S1"))
	assert.NotEqual(t, PeerPairKey("S1", "S2"), PeerPairKey("S1", "S3"))
}
