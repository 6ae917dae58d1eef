package helpers

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEmailValidation(t *testing.T) {

	var tests = []struct {
		in  string
		out bool
	}{
		{"fernandez14@outlook.com", true},
		{"penpal@ideaboard.io", true},
		{"ftrl@io", false},
		{"ftetetggdhs", false},
	}

	Convey("Validate emails properly", t, func() {

		for _, test := range tests {

			Convey(test.in+" should be ", func() {

				So(IsEmail(test.in), ShouldEqual, test.out)
			})
		}
	})
}

func TestPhoneValidation(t *testing.T) {
	var tests = []struct {
		in  string
		out bool
	}{
		{"+36 30 123 4567", true},
		{"(06) 1 123-4567", true},
		{"06301234567", true},
		{"call me maybe", false},
	}

	Convey("Validate phone numbers properly", t, func() {
		for _, test := range tests {
			Convey(test.in+" should be ", func() {
				So(IsPhone(test.in), ShouldEqual, test.out)
			})
		}
	})
}

func TestURLValidation(t *testing.T) {
	var tests = []struct {
		in  string
		out bool
	}{
		{"https://ideaboard.io/ideas", true},
		{"www.example.com", true},
		{"example.com/path?q=1", true},
		{"not a url at all", false},
	}

	Convey("Validate urls properly", t, func() {
		for _, test := range tests {
			Convey(test.in+" should be ", func() {
				So(IsURL(test.in), ShouldEqual, test.out)
			})
		}
	})
}

func TestCheckLength(t *testing.T) {
	if msg := CheckLength("username", "al"); msg == "" {
		t.Error("expected a too short complaint for a 2 rune username")
	}
	if msg := CheckLength("username", "aldeberan"); msg != "" {
		t.Errorf("unexpected complaint: %q", msg)
	}
	if msg := CheckLength("comment", ""); msg == "" {
		t.Error("expected a complaint for an empty comment")
	}
	if msg := CheckLength("unknown-field", "whatever"); msg != "" {
		t.Errorf("unknown fields should pass, got %q", msg)
	}
}

func TestCountryValidation(t *testing.T) {
	Convey("Known countries pass, bogus ones do not", t, func() {
		So(IsCountry("Hungary"), ShouldBeTrue)
		So(IsCountry("Mexico"), ShouldBeTrue)
		So(IsCountry("Middle Earth"), ShouldBeFalse)
	})
}

func TestValidBirthday(t *testing.T) {
	if msg := ValidBirthday(time.Date(1850, 1, 1, 0, 0, 0, 0, time.UTC)); msg == "" {
		t.Error("expected a too old complaint")
	}
	if msg := ValidBirthday(time.Now()); msg == "" {
		t.Error("expected an age limit complaint")
	}
	if msg := ValidBirthday(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)); msg != "" {
		t.Errorf("unexpected complaint: %q", msg)
	}
}

func TestStrSlug(t *testing.T) {
	var tests = []struct{ in, out string }{
		{"Solar Powered Bikes 2.0", "solar-powered-bikes-2-0"},
		{"  Árvíztűrő tükörfúrógép  ", "arvizturo-tukorfurogep"},
		{"no tags", "no-tags"},
	}

	for _, test := range tests {
		if out := StrSlug(test.in); out != test.out {
			t.Errorf("%q: %q != %q", test.in, out, test.out)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPasswordHash("hunter2hunter2", hash) {
		t.Error("hash should verify with the original password")
	}
	if CheckPasswordHash("something-else", hash) {
		t.Error("hash should not verify with another password")
	}
}
