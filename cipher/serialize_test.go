package cipher

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/algebra"
	"github.com/BackendStack21/hill3-go/core"
	"github.com/BackendStack21/hill3-go/utils"
)

func encodeRaw(mode string, m algebra.Matrix3x3) []byte {
	out := binary.LittleEndian.AppendUint32(nil, uint32(len(mode)))
	out = append(out, mode...)
	return append(out, serializeMatrix(m)...)
}

func TestSerializeKey_RoundTrip(t *testing.T) {
	for _, key := range []*hill.Key{workedExampleKey(t), textbookUnimodularKey(t)} {
		data := SerializeKey(key)
		assert.Len(t, data, 4+len(key.Mode().String())+matrixBytes)

		got, err := DeserializeKey(data)
		require.NoError(t, err)
		assert.Equal(t, key.Matrix(), got.Matrix())
		assert.Equal(t, key.Mode().String(), got.Mode().String())
		assert.Equal(t, Fingerprint(key), Fingerprint(got))
	}
}

func TestSerializeKey_NegativeEntries(t *testing.T) {
	key, err := hill.NewKey(algebra.Matrix3x3{{-24, 18, 5}, {20, -15, -4}, {-5, 4, 1}}, core.DefaultUnimodular)
	require.NoError(t, err)
	got, err := DeserializeKey(SerializeKey(key))
	require.NoError(t, err)
	assert.Equal(t, key.Matrix(), got.Matrix())
}

func TestDeserializeKey_RejectsSingular(t *testing.T) {
	data := encodeRaw("finite-field:29", algebra.Matrix3x3{{1, 2, 3}, {0, 1, 4}, {5, 6, 28}})
	_, err := DeserializeKey(data)
	assert.ErrorIs(t, err, hill.ErrSingularMatrix)

	data = encodeRaw("unimodular-integer", algebra.Matrix3x3{{1, 2, 3}, {0, 1, 4}, {5, 6, -30}})
	_, err = DeserializeKey(data)
	assert.ErrorIs(t, err, hill.ErrSingularMatrix)
}

func TestDeserializeKey_Malformed(t *testing.T) {
	valid := SerializeKey(workedExampleKey(t))

	_, err := DeserializeKey(nil)
	assert.Error(t, err)

	_, err = DeserializeKey(valid[:len(valid)-1])
	assert.ErrorIs(t, err, utils.ErrInvalidLength)

	_, err = DeserializeKey(append(append([]byte{}, valid...), 0))
	assert.ErrorIs(t, err, utils.ErrInvalidLength)

	huge := binary.LittleEndian.AppendUint32(nil, utils.MaxModeNameLength+1)
	_, err = DeserializeKey(append(huge, valid[4:]...))
	assert.Error(t, err)

	_, err = DeserializeKey(encodeRaw("quaternion", algebra.Identity()))
	assert.ErrorIs(t, err, hill.ErrUnknownMode)

	_, err = DeserializeKey(encodeRaw("finite-field:29", algebra.Matrix3x3{{29, 0, 0}, {0, 1, 0}, {0, 0, 1}}))
	assert.ErrorIs(t, err, hill.ErrEntryOutOfRange)
}

func TestFingerprint(t *testing.T) {
	ff, err := hill.NewKey(algebra.Identity(), core.DefaultFiniteField)
	require.NoError(t, err)
	uni, err := hill.NewKey(algebra.Identity(), core.DefaultUnimodular)
	require.NoError(t, err)

	assert.Len(t, Fingerprint(ff), 32)
	assert.Equal(t, Fingerprint(ff), Fingerprint(ff))
	assert.NotEqual(t, Fingerprint(ff), Fingerprint(uni))
	assert.NotEqual(t, Fingerprint(ff), Fingerprint(workedExampleKey(t)))
}
