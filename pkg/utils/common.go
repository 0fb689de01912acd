package utils

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Exporter is whoever asked for a report, as forwarded by the gateway.
type Exporter struct {
	ID   uuid.UUID
	Name string
	Role string
}

func CurrentUser(c *http.Request) (uuid.UUID, error) {
	userIdStr := c.Header.Get(HEADER_USER_ID)
	if strings.Contains(userIdStr, "|") {
		userIdStr = strings.Split(userIdStr, "|")[0]
	}
	res, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, err
	}
	return res, nil
}

// CurrentExporter reads the exporting user. Name is url-encoded by the gateway
// since headers cannot carry raw utf-8.
func CurrentExporter(c *http.Request) (Exporter, error) {
	userID, err := CurrentUser(c)
	if err != nil {
		return Exporter{}, err
	}

	rs := Exporter{ID: userID, Name: DEFAULT_EXPORTER_NAME, Role: DEFAULT_EXPORTER_ROLE}
	if name := c.Header.Get(HEADER_USER_NAME); name != "" {
		if decoded, err := url.QueryUnescape(name); err == nil {
			rs.Name = decoded
		} else {
			rs.Name = name
		}
	}
	if role := c.Header.Get(HEADER_USER_ROLES); role != "" {
		rs.Role = role
	}
	return rs, nil
}

// LoadLocation falls back to the server zone when the configured one is unknown.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logrus.WithError(err).Warnf("unknown timezone %q, fallback to local", name)
		return time.Local
	}
	return loc
}

// ResolveDate parses a YYYY-MM-DD date, empty means today.
func ResolveDate(date string, now time.Time) (string, error) {
	if date == "" {
		return now.Format(DATE_FORMAT), nil
	}
	t, err := time.Parse(DATE_FORMAT, date)
	if err != nil {
		return "", errors.New(ERR_INVALID_DATE)
	}
	return t.Format(DATE_FORMAT), nil
}

// ResolveMonth fills a missing month/year from now and validates the result.
func ResolveMonth(month, year int, now time.Time) (int, int, error) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if err := ValidatePeriod(month, year); err != nil {
		return 0, 0, err
	}
	return month, year, nil
}

func ValidatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return errors.New(ERR_INVALID_MONTH)
	}
	if year < MIN_REPORT_YEAR || year > MAX_REPORT_YEAR {
		return errors.New(ERR_INVALID_YEAR)
	}
	return nil
}
