// Command clinic_token issues a bearer token for an owner. The API has no login
// flow; operators hand these tokens to the register front end.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/clinic_cash_app/internal/platform/config"
	"github.com/SscSPs/clinic_cash_app/internal/utils"
	"github.com/SscSPs/clinic_cash_app/pkg/logging"
)

func main() {
	owner := flag.String("owner", "", "owner id written to the token subject")
	expiry := flag.Duration("expiry", 0, "token lifetime; defaults to JWT_EXPIRY_DURATION")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := logging.Setup(os.Stderr, cfg.IsProduction, cfg.LogLevel)

	lifetime := cfg.JWTExpiryDuration
	if *expiry > 0 {
		lifetime = *expiry
	}

	token, err := utils.GenerateOwnerToken(*owner, cfg.JWTSecret, lifetime, cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
