package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/auth"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/try"
)

func TestIssuer(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("an issued token verifies back to its user", func(t *testing.T) {
		issuer := auth.NewIssuer(secret, time.Hour)

		token := try.To(issuer.Issue("user-1", time.Now())).OrFatal(t)
		userId := try.To(issuer.Verify(token)).OrFatal(t)

		if userId != "user-1" {
			t.Errorf("Verify = %q, want user-1", userId)
		}
	})

	t.Run("an expired token is rejected", func(t *testing.T) {
		issuer := auth.NewIssuer(secret, time.Hour)

		issuedAt := time.Now().Add(-2 * time.Hour)
		token := try.To(issuer.Issue("user-1", issuedAt)).OrFatal(t)

		if _, err := issuer.Verify(token); err == nil {
			t.Error("an expired token verified")
		}
	})

	t.Run("a token signed with another secret is rejected", func(t *testing.T) {
		issuer := auth.NewIssuer(secret, time.Hour)
		impostor := auth.NewIssuer([]byte("other-secret"), time.Hour)

		token := try.To(impostor.Issue("user-1", time.Now())).OrFatal(t)

		if _, err := issuer.Verify(token); err == nil {
			t.Error("a foreign token verified")
		}
	})

	t.Run("an unsigned token is rejected even with valid claims", func(t *testing.T) {
		issuer := auth.NewIssuer(secret, time.Hour)

		now := time.Now()
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"uid": "user-1",
			"iat": now.Unix(),
			"exp": now.Add(time.Hour).Unix(),
		})
		token := try.To(
			unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType),
		).OrFatal(t)

		if _, err := issuer.Verify(token); err == nil {
			t.Error("an alg=none token verified")
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		issuer := auth.NewIssuer(secret, time.Hour)
		if _, err := issuer.Verify("not.a.token"); err == nil {
			t.Error("garbage verified")
		}
	})
}

func TestPassword(t *testing.T) {
	t.Run("a hash verifies its own password only", func(t *testing.T) {
		hash := try.To(auth.HashPassword("open sesame")).OrFatal(t)

		if hash == "open sesame" {
			t.Error("the password is stored in the clear")
		}
		if !auth.VerifyPassword(hash, "open sesame") {
			t.Error("the right password does not verify")
		}
		if auth.VerifyPassword(hash, "open says me") {
			t.Error("a wrong password verifies")
		}
	})

	t.Run("hashing is salted", func(t *testing.T) {
		first := try.To(auth.HashPassword("open sesame")).OrFatal(t)
		second := try.To(auth.HashPassword("open sesame")).OrFatal(t)
		if first == second {
			t.Error("two hashes of one password are identical")
		}
	})
}
