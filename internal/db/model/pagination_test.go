package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositsBySenderPaginationToken(t *testing.T) {
	token, err := BuildDepositsBySenderPaginationToken(DepositDocument{DepositID: 42, Sender: "0xabc"})
	require.NoError(t, err)
	assert.NotContains(t, token, "=")

	position, err := DecodePaginationToken[DepositsBySenderPagination](token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), position.DepositID)
}

func TestDecodePaginationTokenRejectsGarbage(t *testing.T) {
	_, err := DecodePaginationToken[DepositsBySenderPagination]("not a token!")
	assert.Error(t, err)

	_, err = DecodePaginationToken[DepositsBySenderPagination]("AAAA")
	assert.Error(t, err)
}
