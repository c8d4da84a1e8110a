package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrm/agrm_backend/internal/utils/pagination"
)

func TestEncodeDecodeToken(t *testing.T) {
	paymentDate := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 3, 5, 14, 22, 31, 123456789, time.UTC)

	token := pagination.EncodeToken(paymentDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, gotDate.Equal(paymentDate))
	assert.True(t, gotCreated.Equal(createdAt))
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!")
	assert.Error(t, err)

	_, _, err = pagination.DecodeToken("") // empty decodes to empty string, fails split
	assert.Error(t, err)
}
