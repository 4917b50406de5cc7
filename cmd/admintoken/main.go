// Command admintoken mints a bearer token for calling the admin API.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"campushub/config"
	"campushub/internal/adapters/auth"
	"campushub/internal/domain"
)

func main() {
	userID := flag.String("user", "", "User ID placed in the token subject (required)")
	email := flag.String("email", "", "Email claim")
	roles := flag.String("roles", domain.RoleAdmin, "Comma-separated roles")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	logger := config.NewLogger()
	if *userID == "" {
		logger.Error("-user is required")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	var roleList []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}
	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(*userID, *email, roleList, *ttl)
	if err != nil {
		logger.Error("failed to issue token", "err", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
