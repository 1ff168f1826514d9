package leb128

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeUint32(t *testing.T) {
	tests := []struct {
		bytes  []byte
		exp    uint32
		expErr bool
	}{
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0x80, 0x7f}, exp: 16256},
		{bytes: []byte{0xe5, 0x8e, 0x26}, exp: 624485},
		{bytes: []byte{0x80, 0x80, 0x80, 0x4f}, exp: 165675008},
		{bytes: []byte{0x89, 0x80, 0x80, 0x80, 0x01}, exp: 268435465},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, exp: 0xffffffff},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x1f}, expErr: true},
		{bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, expErr: true},
		{bytes: []byte{0x80}, expErr: true},
	}

	for _, tt := range tests {
		tc := tt
		actual, num, err := DecodeUint32(bytes.NewReader(tc.bytes))
		if tc.expErr {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.exp, actual)
		require.Equal(t, uint64(len(tc.bytes)), num)
	}
}

func TestDecodeUint64(t *testing.T) {
	tests := []struct {
		bytes  []byte
		exp    uint64
		expErr bool
	}{
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0xe5, 0x8e, 0x26}, exp: 624485},
		{bytes: []byte{0x89, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, exp: 9223372036854775817},
		{bytes: []byte{0x89, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x02}, expErr: true},
	}

	for _, tt := range tests {
		tc := tt
		actual, num, err := DecodeUint64(bytes.NewReader(tc.bytes))
		if tc.expErr {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.exp, actual)
		require.Equal(t, uint64(len(tc.bytes)), num)
	}
}

func TestDecodeInt32(t *testing.T) {
	tests := []struct {
		bytes  []byte
		exp    int32
		expErr bool
	}{
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0xFF, 0x00}, exp: 127},
		{bytes: []byte{0x81, 0x01}, exp: 129},
		{bytes: []byte{0x7f}, exp: -1},
		{bytes: []byte{0x81, 0x7f}, exp: -127},
		{bytes: []byte{0xFF, 0x7e}, exp: -129},
		{bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x78}, exp: -2147483648},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x07}, exp: 2147483647},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, expErr: true},
		{bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x70}, expErr: true},
	}

	for _, tt := range tests {
		tc := tt
		actual, num, err := DecodeInt32(bytes.NewReader(tc.bytes))
		if tc.expErr {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.exp, actual)
		require.Equal(t, uint64(len(tc.bytes)), num)
	}
}

func TestDecodeInt33AsInt64(t *testing.T) {
	tests := []struct {
		bytes []byte
		exp   int64
	}{
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0x40}, exp: -64},
		{bytes: []byte{0x7f}, exp: -1},
		{bytes: []byte{0x80, 0x01}, exp: 128},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, exp: 0xffffffff},
	}

	for _, tt := range tests {
		tc := tt
		actual, num, err := DecodeInt33AsInt64(bytes.NewReader(tc.bytes))
		require.NoError(t, err)
		require.Equal(t, tc.exp, actual)
		require.Equal(t, uint64(len(tc.bytes)), num)
	}
}

func TestDecodeInt64(t *testing.T) {
	tests := []struct {
		bytes []byte
		exp   int64
	}{
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0xFF, 0x00}, exp: 127},
		{bytes: []byte{0x81, 0x01}, exp: 129},
		{bytes: []byte{0x7f}, exp: -1},
		{bytes: []byte{0x81, 0x7f}, exp: -127},
		{bytes: []byte{0xFF, 0x7e}, exp: -129},
		{bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f}, exp: -9223372036854775808},
	}

	for _, tt := range tests {
		tc := tt
		actual, num, err := DecodeInt64(bytes.NewReader(tc.bytes))
		require.NoError(t, err)
		require.Equal(t, tc.exp, actual)
		require.Equal(t, uint64(len(tc.bytes)), num)
	}
}
