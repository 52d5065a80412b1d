package requestcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))
	assert.Empty(t, Token(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithClientMetadata(ctx, "10.0.0.7", "Mozilla/5.0")
	ctx = WithToken(ctx, "tok")
	ctx = WithUserID(ctx, "42")
	ctx = WithDevice(ctx, Device{Platform: "mobile", Browser: "safari", OS: "ios"})

	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "10.0.0.7", ClientIP(ctx))
	assert.Equal(t, "Mozilla/5.0", UserAgent(ctx))
	assert.Equal(t, "tok", Token(ctx))
	assert.Equal(t, "42", UserID(ctx))
	d, ok := DeviceInfo(ctx)
	assert.True(t, ok)
	assert.Equal(t, "mobile", d.Platform)
}

func TestNilContext(t *testing.T) {
	//nolint:staticcheck // nil context is tolerated by the accessors
	assert.Empty(t, RequestID(nil))
}
