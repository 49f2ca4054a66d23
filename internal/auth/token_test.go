package auth

import (
	"testing"

	"github.com/fekuna/gardentrack/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	codec := NewTokenCodec(secret)
	id := model.Identity{Name: "Admin", Email: "admin@gardentrack.co.za"}

	raw, err := codec.Issue(id)
	require.NoError(t, err)

	got, err := codec.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestTokenRejectsGarbage(t *testing.T) {
	_, err := NewTokenCodec(secret).Parse("not-a-token")
	assert.Error(t, err)
}

func TestTokenRejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{Name: "Mallory", Email: "m@x.io"})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenCodec(secret).Parse(raw)
	assert.Error(t, err)
}

func TestTokenRequiresEmail(t *testing.T) {
	codec := NewTokenCodec(secret)
	raw, err := codec.Issue(model.Identity{Name: "Nobody"})
	require.NoError(t, err)

	_, err = codec.Parse(raw)
	assert.Error(t, err)
}
