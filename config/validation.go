package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the loaded configuration. The model-provider
// credential is required at startup in every environment; messaging
// credentials are checked per-request by the delivery service so the
// generation endpoint keeps working without them. Redis is optional and its
// absence only disables rate limiting.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, "SERVER_PORT must not be empty")
	}
	if cfg.OpenAIAPIKey == "" {
		errs = append(errs, "OPENAI_API_KEY (or OPENAI_API_KEY_FILE, or the openai_api_key secret) is required")
	}
	if cfg.OpenAIAPIURL == "" {
		errs = append(errs, "OPENAI_API_URL must not be empty")
	}

	// A token without a sender id (or vice versa) is a misconfiguration
	// worth failing on early, unlike both being absent.
	if (cfg.WhatsAppToken == "") != (cfg.WhatsAppPhoneID == "") {
		errs = append(errs, "WHATSAPP_TOKEN and WHATSAPP_PHONE_ID must be set together")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "\n"))
	}
	return nil
}

// MessagingConfigured reports whether the delivery credentials are present.
func (c *Config) MessagingConfigured() bool {
	return c.WhatsAppToken != "" && c.WhatsAppPhoneID != ""
}

// RedisConfigured reports whether a redis host was supplied.
func (c *Config) RedisConfigured() bool {
	return c.RedisHost != ""
}

// RedisAddr returns the host:port address for the rate-limiting redis.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
