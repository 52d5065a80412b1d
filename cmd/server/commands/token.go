package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// devSigningKey signs tokens when neither the flag nor the config provides a key.
// The server only accepts it when configured with the same value.
const devSigningKey = "dev-secret-key-change-in-production"

func tokenCmd() *cobra.Command {
	var (
		uid string
		key string
		ttl time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token carrying a uid claim",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Environment == "production" {
				return errors.New("refusing to mint tokens in production")
			}
			if uid == "" {
				uid = uuid.NewString()
			}
			if key == "" {
				key = cfg.Auth.SigningKey
			}
			if key == "" {
				key = devSigningKey
			}
			signed, err := mintToken(uid, []byte(key), ttl, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	cmd.Flags().StringVar(&uid, "uid", "", "uid claim (random UUID when empty)")
	cmd.Flags().StringVar(&key, "key", "", "HMAC signing key (default auth.signing_key)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}

func mintToken(uid string, key []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"uid": uid,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
		"jti": uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
