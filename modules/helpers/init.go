package helpers

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/goware/emailx"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"
)

var letters = []rune("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
var lat = []*unicode.RangeTable{unicode.Letter, unicode.Number}
var nop = []*unicode.RangeTable{unicode.Mark, unicode.Sk, unicode.Lm}

var phoneExp = regexp.MustCompile(`^[+]*[(]{0,1}[0-9]{1,4}[)]{0,1}[-\s\./0-9]*$`)
var urlExp = regexp.MustCompile(`^(https?://)?(www\.)?[a-zA-Z0-9][a-zA-Z0-9\-]*(\.[a-zA-Z0-9\-]+)+(/[^\s]*)?$`)

// AgeLimit is the minimum age to use the platform.
const AgeLimit = 13

// Bounds of a user provided text field.
type Bounds struct {
	Min int
	Max int
}

// FieldBounds keyed by payload field name.
var FieldBounds = map[string]Bounds{
	"username":    {3, 30},
	"email":       {5, 254},
	"password":    {8, 256},
	"avatar":      {0, 500},
	"firstName":   {0, 35},
	"lastName":    {0, 35},
	"country":     {0, 50},
	"bio":         {0, 1000},
	"phone":       {0, 20},
	"link":        {0, 500},
	"linkTitle":   {0, 30},
	"title":       {3, 100},
	"description": {0, 1000},
	"comment":     {1, 500},
	"message":     {1, 1000},
	"tag":         {1, 30},
}

// CheckLength validates a field's length against its bounds. Returns an
// empty string when valid, a human readable reason otherwise.
func CheckLength(field, value string) string {
	bounds, exists := FieldBounds[field]
	if !exists {
		return ""
	}
	n := len([]rune(value))
	if n < bounds.Min {
		return fmt.Sprintf("The %s's length is too short (%d). It should be between %d and %d characters long.", field, n, bounds.Min, bounds.Max)
	}
	if n > bounds.Max {
		return fmt.Sprintf("The %s's length is too long (%d). It should be between %d and %d characters long.", field, n, bounds.Min, bounds.Max)
	}
	return ""
}

func StrSlug(s string) string {

	// Trim before counting
	s = strings.Trim(s, " ")

	buf := make([]rune, 0, len(s))
	dash := false
	for _, r := range norm.NFKD.String(s) {
		switch {
		// unicode 'letters' like mandarin characters pass through
		case unicode.IsOneOf(lat, r):
			buf = append(buf, unicode.ToLower(r))
			dash = true
		case unicode.IsOneOf(nop, r):
			// skip
		case dash:
			buf = append(buf, '-')
			dash = false
		}
	}
	if i := len(buf) - 1; i >= 0 && buf[i] == '-' {
		buf = buf[:i]
	}
	return string(buf)
}

func StrRandom(length int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(length)))
	b := make([]rune, length)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func IsEmail(s string) bool {
	return emailx.Validate(s) == nil
}

func IsPhone(s string) bool {
	return phoneExp.MatchString(s)
}

func IsURL(s string) bool {
	return urlExp.MatchString(s)
}

// IsCountry reports whether s is a known country name.
func IsCountry(s string) bool {
	_, exists := countries[s]
	return exists
}

// ValidBirthday checks the date is plausible and the user is old enough.
func ValidBirthday(birthday time.Time) string {
	min := time.Date(1890, time.January, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(time.Now().Year()-AgeLimit, time.January, 1, 0, 0, 0, 0, time.UTC)
	if birthday.Before(min) {
		return "Date too old - it should be at least 1890."
	}
	if birthday.After(max) {
		return fmt.Sprintf("Actually, you need to be at least %d years old to use this platform.", AgeLimit)
	}
	return ""
}
