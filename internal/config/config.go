package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	BookServiceURL   string
	MemberServiceURL string

	GatewayTimeoutSecs int
	IdempTTLSecs       int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	return &Config{
		AppPort:   getenv("APP_PORT", "3003"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "loan_db"),
		MySQLUser: getenv("MYSQL_USER", "loan"),
		MySQLPass: getenv("MYSQL_PASS", "loan"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		BookServiceURL:   getenv("BOOK_SERVICE_URL", "http://book-service:3002"),
		MemberServiceURL: getenv("MEMBER_SERVICE_URL", "http://member-service:3001"),

		GatewayTimeoutSecs: getenvInt("GATEWAY_TIMEOUT_SECONDS", 5),
		IdempTTLSecs:       getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	for _, svc := range []struct{ name, raw string }{
		{"BOOK_SERVICE_URL", c.BookServiceURL},
		{"MEMBER_SERVICE_URL", c.MemberServiceURL},
	} {
		u, err := url.Parse(svc.raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s %q", svc.name, svc.raw)
		}
	}
	if c.GatewayTimeoutSecs <= 0 {
		return errors.New("GATEWAY_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func (c *Config) GatewayTimeout() time.Duration {
	return time.Duration(c.GatewayTimeoutSecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
