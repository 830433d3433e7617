package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"issue-tracker/internal/auth"
)

// Prints a signed session token for a user, handy for curl-ing the API
// locally without going through /auth/login.
func main() {
	var (
		username = flag.String("username", "dev", "token subject")
		userID   = flag.Int64("user-id", 1, "user id claim")
		ttl      = flag.Duration("ttl", 365*24*time.Hour, "token lifetime")
	)
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}

	token, err := auth.NewJWTManager(secret, *ttl).Issue(*username, *userID)
	if err != nil {
		panic(err)
	}

	fmt.Println("ACCESS_TOKEN=" + token)
}
