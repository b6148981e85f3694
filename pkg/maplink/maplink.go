// Package maplink builds external contact and navigation links for display.
// Values are passed through as stored; no validation is attempted.
package maplink

import (
	"fmt"
	"net/url"
)

// Directions returns a Google Maps driving-directions URL to the coordinates.
func Directions(lat, lon float64) string {
	u := url.URL{
		Scheme: "https",
		Host:   "www.google.com",
		Path:   "/maps/dir/",
	}
	q := u.Query()
	q.Set("api", "1")
	q.Set("destination", fmt.Sprintf("%f,%f", lat, lon))
	u.RawQuery = q.Encode()
	return u.String()
}

// Mailto returns a mailto: link for the address.
func Mailto(email string) string {
	return "mailto:" + email
}

// Tel returns a tel: link for the phone number.
func Tel(phone string) string {
	return "tel:" + phone
}
