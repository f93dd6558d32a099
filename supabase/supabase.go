package supabase

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"clementus360/nudge-coach/config"

	"github.com/golang-jwt/jwt"
	"github.com/supabase-community/supabase-go"
)

var Client *supabase.Client

// Init connects the optional persistence layer. Unlike the catalog, a
// missing Supabase configuration is not a setup bug: the service runs
// fine with the in-memory history store only.
func Init() {
	apiURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_KEY")

	if apiURL == "" || apiKey == "" {
		config.Logger.Info("SUPABASE_URL or SUPABASE_KEY not set, persistence disabled")
		return
	}

	var err error
	Client, err = supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{})
	if err != nil {
		config.Logger.Fatal("Failed to create Supabase client:", err)
	}
}

// Enabled reports whether intervention persistence is configured.
func Enabled() bool {
	return Client != nil
}

// UserIDFromRequest extracts the user identity from the Authorization
// bearer token's sub claim. The token is not verified here; Supabase row
// level security enforces it on every query.
func UserIDFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}

	jwtString := strings.TrimPrefix(authHeader, "Bearer ")
	if jwtString == "" {
		return "", fmt.Errorf("invalid Authorization header")
	}

	token, _, err := new(jwt.Parser).ParseUnverified(jwtString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("invalid JWT format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid JWT claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("missing sub in token")
	}

	return sub, nil
}

// SupabaseClientFromRequest builds a client scoped to the caller's token
// so row level security applies, and returns the caller's user id.
func SupabaseClientFromRequest(r *http.Request) (*supabase.Client, string, error) {
	apiURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_KEY")

	sub, err := UserIDFromRequest(r)
	if err != nil {
		return nil, "", err
	}

	jwtString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + jwtString,
		},
	})
	return client, sub, err
}
