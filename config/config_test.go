package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("SMTP_MAIL", "desk@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("MAIL_TIMEOUT", "3s")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDBURI)
	assert.Equal(t, "globalpioneers", cfg.MongoDBDatabase)
	assert.Equal(t, 5*time.Second, cfg.DBServerSelectionTimeout)
	assert.Equal(t, 3*time.Second, cfg.MailTimeout)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHostName)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.True(t, cfg.Secure)
	assert.Empty(t, cfg.MissingRequired())
}

func TestMissingRequired(t *testing.T) {
	cfg := Config{SMTPMail: "desk@example.com"}
	assert.Equal(t, []string{"MONGODB_URI", "SMTP_PASS"}, cfg.MissingRequired())

	cfg = Config{MongoDBURI: "  ", SMTPMail: "a@b.co", SMTPPass: "x"}
	assert.Equal(t, []string{"MONGODB_URI"}, cfg.MissingRequired())
}

func TestBusinessRecipient(t *testing.T) {
	cfg := Config{SMTPMail: "desk@example.com"}
	assert.Equal(t, "desk@example.com", cfg.BusinessRecipient())

	cfg.BusinessMail = "sales@example.com"
	assert.Equal(t, "sales@example.com", cfg.BusinessRecipient())
}
