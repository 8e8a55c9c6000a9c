package rdx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectDisabledWithoutURL(t *testing.T) {
	conn, err := Connect(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, conn)
}

func TestConnectRejectsMalformedURL(t *testing.T) {
	_, err := Connect(context.Background(), "http://not-redis")
	assert.Error(t, err)
}
