package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"charterdesk/pkg/platform/middleware/auth"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestStatusCommand(t *testing.T) {
	t.Run("resolves a numeric code", func(t *testing.T) {
		out, err := run(t, "status", "contract", "2")
		require.NoError(t, err)
		assert.Equal(t, "审批通过", gjson.Get(out, "label").String())
		assert.Equal(t, "#07c160", gjson.Get(out, "color").String())
		assert.Equal(t, "status-approved", gjson.Get(out, "status_class").String())
	})

	t.Run("resolves a label", func(t *testing.T) {
		out, err := run(t, "status", "verification", "已撤回")
		require.NoError(t, err)
		assert.Equal(t, int64(4), gjson.Get(out, "value").Int())
		assert.Equal(t, "#ff976a", gjson.Get(out, "color").String())
	})

	t.Run("unknown taxonomy fails", func(t *testing.T) {
		_, err := run(t, "status", "invoice", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown taxonomy")
	})
}

func TestDictCommand(t *testing.T) {
	t.Run("lists names without arguments", func(t *testing.T) {
		out, err := run(t, "dict")
		require.NoError(t, err)
		assert.Contains(t, out, "pay_types")
		assert.Contains(t, out, "business_codes")
	})

	t.Run("prints a static table", func(t *testing.T) {
		out, err := run(t, "dict", "--static", "verification_types")
		require.NoError(t, err)
		assert.True(t, gjson.Valid(out))
		assert.NotEmpty(t, gjson.Get(out, "#.label").Array())
	})

	t.Run("unknown static table fails", func(t *testing.T) {
		_, err := run(t, "dict", "--static", "nope")
		require.Error(t, err)
	})
}

func TestTokenCommand(t *testing.T) {
	t.Run("minted token carries the uid", func(t *testing.T) {
		out, err := run(t, "token", "--uid", "1001", "--key", "secret")
		require.NoError(t, err)

		uid, err := auth.JWTParser{SigningKey: []byte("secret")}.ParseUID(string(bytes.TrimSpace([]byte(out))))
		require.NoError(t, err)
		assert.Equal(t, "1001", uid)
	})

	t.Run("refuses in production", func(t *testing.T) {
		t.Setenv("CHARTERDESK_ENV", "production")
		_, err := run(t, "token")
		require.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		signed, err := mintToken("7", []byte("k"), time.Minute, time.Now().Add(-time.Hour))
		require.NoError(t, err)

		_, err = auth.JWTParser{SigningKey: []byte("k")}.ParseUID(signed)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
