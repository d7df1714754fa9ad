package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("techsociety"))
	assert.True(t, ValidUsername("tech_society_2"))
	assert.True(t, ValidUsername("abc"))

	assert.False(t, ValidUsername("ab"))
	assert.False(t, ValidUsername("Tech"))
	assert.False(t, ValidUsername("tech society"))
	assert.False(t, ValidUsername("tech.society"))
	assert.False(t, ValidUsername(strings.Repeat("a", 31)))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("contact@techsociety.org"))
	assert.True(t, ValidEmail("a.b+c@campus.edu"))
	// Optional on profiles
	assert.True(t, ValidEmail(""))

	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@tld"))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("12345678"))
	assert.False(t, ValidPassword("1234567"))
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Tech Society"))
	assert.False(t, ValidName("T"))
	assert.False(t, ValidName(strings.Repeat("x", 101)))
}
