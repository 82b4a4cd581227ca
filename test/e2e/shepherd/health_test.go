package shepherd_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints checks the probes and the JWKS before bootstrap.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := shepherdsdk.NewSDKClient(baseURL)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)

	health, err = client.Readyz(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)

	jwks, err := client.JWKS(t.Context())
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "EdDSA", jwks.Keys[0].Alg)
}

// TestBootstrap verifies the first account becomes Senior Pastor and that
// bootstrap only works once.
func TestBootstrap(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := shepherdsdk.NewSDKClient(baseURL)

	_, err := client.Bootstrap(t.Context(), "wrong-token", shepherdsdk.BootstrapRequest{
		Email: pastorEmail, FullName: pastorName, Password: defaultPassword,
	})
	assertStatus(t, err, http.StatusUnauthorized, "Bootstrap with a wrong token")

	_, pastor := bootstrapPastor(t, client)

	me, err := pastor.Me(t.Context())
	require.NoError(t, err)
	require.Len(t, me.Roles, 1)
	require.Equal(t, "Senior Pastor", me.Roles[0].Name)

	_, err = client.Bootstrap(t.Context(), bootstrapToken, shepherdsdk.BootstrapRequest{
		Email: "second@example.com", FullName: "Second", Password: defaultPassword,
	})
	assertStatus(t, err, http.StatusConflict, "Second bootstrap")
}

// TestPasswordChangeRevokesTokens verifies tokens issued before a password
// change stop working.
func TestPasswordChangeRevokesTokens(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := shepherdsdk.NewSDKClient(baseURL)
	_, pastor := bootstrapPastor(t, client)
	_, member := signupWithRoles(t, client, pastor, "member@example.com", nil)

	// Token issue times have one second resolution.
	time.Sleep(1100 * time.Millisecond)
	require.NoError(t, member.ChangePassword(t.Context(), defaultPassword, "BrandNew123!"))

	_, err := member.Me(t.Context())
	assertStatus(t, err, http.StatusUnauthorized, "Token issued before the password change")

	_, err = client.Authenticate(t.Context(), "member@example.com", defaultPassword)
	assertStatus(t, err, http.StatusUnauthorized, "Old password")

	fresh, err := client.Authenticate(t.Context(), "member@example.com", "BrandNew123!")
	require.NoError(t, err)
	_, err = fresh.Me(t.Context())
	require.NoError(t, err)
}
