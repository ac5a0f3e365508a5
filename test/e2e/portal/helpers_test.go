package portal_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/northbeamhq/portal/pkg/jwtx"
	"github.com/northbeamhq/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for portal service end-to-end tests.
 * This includes container setup, token minting, and assertions.
 *
 * The portal never mints staff tokens itself; it verifies tokens from an
 * external identity service. The suite stands in for that service with a
 * throwaway Ed25519 keypair generated in TestMain.
 */

const (
	testImageName = "portal-test:latest"

	testIssuer = "northbeam-auth"
	testKid    = "e2e-key-001"

	staffUserID = "usr_e2e_staff"
	staffName   = "E2E Staff"
)

var (
	signingKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
)

// TestMain manages the test lifecycle, generates the stand-in identity
// keypair and builds the Docker image once before all tests.
func TestMain(m *testing.M) {
	var err error
	publicKey, signingKey, err = ed25519.GenerateKey(rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate test keypair: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Building Portal Service Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Portal Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/portal/Dockerfile",
		"../../../")
	cmd.Dir = "." // Ensure we're in the test directory
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

func baseContainerEnv() map[string]string {
	return map[string]string{
		"PORTAL_DATABASE_FILE":   "/tmp/portal.db",
		"PORTAL_PEPPER_FILE":     "/tmp/pepper",
		"PORTAL_AUTH_ISSUER":     testIssuer,
		"PORTAL_AUTH_PUBLIC_KEY": base64.RawURLEncoding.EncodeToString(publicKey),
		"PORTAL_AUTH_KID":        testKid,
		"ENV":                    "test",
		"LOG_LEVEL":              "info",
		"LOG_FORMAT":             "json",
	}
}

// setupPortalContainer starts the portal service in a container and returns
// the base URL. Rate limits are relaxed so rapid test requests don't trip the
// production defaults.
func setupPortalContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := baseContainerEnv()
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"
	env["RATELIMIT_LENIENT_REQUESTS"] = "1000"
	env["RATELIMIT_LENIENT_BURST"] = "1000"

	return startContainer(t, env)
}

// setupPortalContainerWithDefaultRateLimits starts the portal with DEFAULT
// rate limits. Only for tests that check rate limiting actually works.
func setupPortalContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseContainerEnv())
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// staffToken mints a bearer token the way the identity service would.
func staffToken(t *testing.T, scopes ...string) string {
	t.Helper()

	signer, err := jwtx.NewSignerEdDSA(testKid, signingKey)
	require.NoError(t, err)

	claims := jwtx.NewStaffClaims(
		staffUserID,
		scopes,
		jwtx.DefaultStaffTokenTTL,
		testIssuer,
		nil,
		staffName,
		time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

// staffClient returns an SDK client carrying a freshly minted staff token.
func staffClient(t *testing.T, baseURL string, scopes ...string) *portalsdk.SDKClient {
	t.Helper()
	client := portalsdk.NewSDKClient(baseURL)
	client.Token = staffToken(t, scopes...)
	return client
}

// publicClient returns an SDK client without credentials, as an invitee
// would use it.
func publicClient(baseURL string) *portalsdk.SDKClient {
	return portalsdk.NewSDKClient(baseURL)
}

// setupInvitation mints an invitation seeding a new organization and
// returns the raw token.
func setupInvitation(t *testing.T, staff *portalsdk.SDKClient, email, businessName string) (portalsdk.Invitation, string) {
	t.Helper()

	resp, err := staff.CreateInvitation(t.Context(), portalsdk.CreateInvitationRequest{
		Email:       email,
		Name:        "Invited Person",
		Role:        "client",
		AccountType: "team_lead",
		OrganizationSetup: &portalsdk.OrganizationSetup{
			BusinessName: businessName,
			BusinessType: "gym",
			ContactName:  "Invited Person",
		},
	})
	require.NoError(t, err, "CreateInvitation should succeed")
	require.NotEmpty(t, resp.Token, "raw token should be returned exactly once")
	require.Equal(t, "pending", resp.Invitation.Status)

	return resp.Invitation, resp.Token
}

// requireAPIError asserts err is an APIError with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *portalsdk.APIError
	require.ErrorAs(t, err, &apiErr, "expected an API error, got: %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
