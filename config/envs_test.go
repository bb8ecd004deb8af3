package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Run("Default when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("VACUUM_TEST_UNSET", "fallback"))
		assert.Equal(t, 7, getEnvAsIntWithDefault("VACUUM_TEST_UNSET", 7))
	})

	t.Run("Value when set", func(t *testing.T) {
		t.Setenv("VACUUM_TEST_STR", "value")
		t.Setenv("VACUUM_TEST_INT", "42")
		assert.Equal(t, "value", getEnvWithDefault("VACUUM_TEST_STR", "fallback"))
		assert.Equal(t, 42, getEnvAsIntWithDefault("VACUUM_TEST_INT", 7))
	})
}

func TestMongoURI(t *testing.T) {
	c := Config{DBHost: "db", DBPort: 27017}
	assert.Equal(t, "mongodb://db:27017", c.MongoURI())

	c.DBUser, c.DBPassword = "user", "secret"
	assert.Equal(t, "mongodb://user:secret@db:27017", c.MongoURI())
}
