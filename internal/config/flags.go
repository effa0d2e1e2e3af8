package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing secret
//	-admin-username CMS admin username
//	-admin-password CMS admin password
//	-token-duration token validity window (e.g., "24h")
//	-environment deployment environment name
//	-static-dir directory with the CMS admin bundle
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-resend-api-key Resend API key for the contact form
//	-contact-email recipient of contact form submissions
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var adminUsername string
	var adminPassword string
	var tokenDuration time.Duration
	var environment string
	var staticDir string
	var requestTimeout time.Duration
	var resendAPIKey string
	var contactEmail string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing secret")
	flag.StringVar(&adminUsername, "admin-username", "", "CMS admin username")
	flag.StringVar(&adminPassword, "admin-password", "", "CMS admin password")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	flag.StringVar(&environment, "environment", "", "Deployment environment name")
	flag.StringVar(&staticDir, "static-dir", "", "Directory with the CMS admin bundle")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&resendAPIKey, "resend-api-key", "", "Resend API key")
	flag.StringVar(&contactEmail, "contact-email", "", "Contact form recipient")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			AdminUsername: adminUsername,
			AdminPassword: adminPassword,
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			Environment:    environment,
			StaticDir:      staticDir,
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			ResendAPIKey: resendAPIKey,
			ContactEmail: contactEmail,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
