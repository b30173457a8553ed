package billing

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^INV-\d{8}-\d{3}$`)

	for i := 0; i < 20; i++ {
		n := NewInvoiceNumber()
		assert.True(t, pattern.MatchString(n), "unexpected format: %s", n)
	}
}

func TestNewOrderNumberEncodesTime(t *testing.T) {
	before := time.Now().UnixMilli()
	n := NewOrderNumber()
	after := time.Now().UnixMilli()

	require.True(t, strings.HasPrefix(n, "ORD-"))
	millis, err := strconv.ParseInt(strings.TrimPrefix(n, "ORD-"), 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, millis, before)
	assert.LessOrEqual(t, millis, after)
}
