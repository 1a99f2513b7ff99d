package sessionstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValkeyStoreKeys(t *testing.T) {
	require.Equal(t, "astrologer:session:abc", NewValkeyStore(nil, "").sessionKey("abc"))
	require.Equal(t, "demo:session:abc", NewValkeyStore(nil, "demo").sessionKey("abc"))
}
