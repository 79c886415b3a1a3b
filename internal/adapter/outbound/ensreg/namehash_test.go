package ensreg

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestNamehash(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "root",
			in:   "",
			want: "0x0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name: "tld",
			in:   "eth",
			want: "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae",
		},
		{
			name: "second level",
			in:   "foo.eth",
			want: "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Namehash(tt.in)
			assert.Equal(common.HexToHash(tt.want), got)
		})
	}
}

func TestNamehashCaseInsensitive(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Namehash("foo.eth"), Namehash("Foo.ETH"))
	assert.Equal(Namehash("foo.eth"), Namehash("FOO.eth"))
}

func TestReverseNode(t *testing.T) {
	assert := assert.New(t)

	addr := common.HexToAddress("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359")

	// The reverse node hashes the lowercase hex form without the 0x prefix
	// under addr.reverse, so any casing of the input maps to the same node.
	want := Namehash("fb6916095ca1df60bb79ce92ce3ea74c37c5d359.addr.reverse")
	assert.Equal(want, reverseNode(addr))
}
