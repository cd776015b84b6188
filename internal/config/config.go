// Package config provides runtime configuration for the machine
// driver.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
)

// Config holds the machine's physical setup knobs.
type Config struct {
	SlotCount          int
	Denominations      []money.Cents
	AuditPath          string
	LowChangeThreshold int
	HealthTTL          time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load collects configuration from the environment with defaults
// matching the reference machine: ten slots, euro cent denominations.
// Denominations are a comma-separated list of decimal strings and a
// bad list is a hard error, not a silent default.
func Load() (Config, error) {
	denoms, err := parseDenominations(getenv("MACHINE_DENOMINATIONS", "0.10,0.20,0.50,1.00"))
	if err != nil {
		return Config{}, err
	}
	return Config{
		SlotCount:          atoienv("MACHINE_SLOTS", 10),
		Denominations:      denoms,
		AuditPath:          getenv("MACHINE_AUDIT_PATH", ""),
		LowChangeThreshold: atoienv("MACHINE_LOW_CHANGE_THRESHOLD", 2),
		HealthTTL:          time.Duration(atoienv("MACHINE_HEALTH_TTL_SECONDS", 2)) * time.Second,
	}, nil
}

func parseDenominations(list string) ([]money.Cents, error) {
	var out []money.Cents
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := money.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("denomination %q: %w", part, err)
		}
		out = append(out, c)
	}
	return out, nil
}
