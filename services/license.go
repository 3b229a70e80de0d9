package services

import "time"

// LicenseChecker is the authorization collaborator consulted before the
// ordering API accepts a request. The real license center is an external
// service; this core only needs an authorized/unauthorized answer.
type LicenseChecker interface {
	Authorized() bool
}

// EnvLicense authorizes when a license key is configured and, if an expiry
// date is set (YYYY-MM-DD), the date has not passed.
type EnvLicense struct {
	Key     string
	Expires string
}

func (l EnvLicense) Authorized() bool {
	if l.Key == "" {
		return false
	}
	if l.Expires == "" {
		return true
	}
	expiry, err := time.Parse("2006-01-02", l.Expires)
	if err != nil {
		return false
	}
	return !time.Now().After(expiry.AddDate(0, 0, 1))
}
