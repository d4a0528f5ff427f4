package i18n

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPrice renders a price for display. Zero is the localized free
// label, FCFA amounts are grouped with spaces and suffixed with the
// currency name, and any other ISO code goes through locale formatting.
func FormatPrice(price float64, currencyCode, lang string) string {
	if price == 0 {
		return T(lang, "price.free")
	}

	if currencyCode == "" || currencyCode == "FCFA" {
		return groupThousands(int64(price)) + " FCFA"
	}

	printer := message.NewPrinter(localeTag(lang))
	return printer.Sprintf("%.2f %s", price, currencyCode)
}

// groupThousands formats an integer with space-separated thousands groups,
// the conventional FCFA rendering (2 000, 20 000)
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		return "-" + groupThousands(-n)
	}

	var grouped []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, digit)
	}
	return string(grouped)
}

var frenchMonths = []string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frenchMonthsShort = []string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

var frenchDays = []string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frenchDaysShort = []string{
	"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam.",
}

// FormatDate renders a wire date in long form for the given language
// (weekday, day, month, year). Empty and unparsable values yield "".
func FormatDate(value, lang string) string {
	date, ok := parseWireDate(value)
	if !ok {
		return ""
	}

	if lang == "fr" {
		return fmt.Sprintf("%s %d %s %d",
			frenchDays[date.Weekday()], date.Day(), frenchMonths[date.Month()-1], date.Year())
	}
	return date.Format("Monday, January 2, 2006")
}

// FormatDateTime renders a wire date with its time in short form
func FormatDateTime(value, lang string) string {
	date, ok := parseWireDate(value)
	if !ok {
		return ""
	}

	if lang == "fr" {
		return fmt.Sprintf("%s %d %s %d à %02d:%02d:%02d",
			frenchDaysShort[date.Weekday()], date.Day(), frenchMonthsShort[date.Month()-1], date.Year(),
			date.Hour(), date.Minute(), date.Second())
	}
	return date.Format("Mon, Jan 2, 2006 15:04:05")
}

func parseWireDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if date, err := time.Parse(layout, value); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

func localeTag(lang string) language.Tag {
	switch lang {
	case "en":
		return language.English
	default:
		return language.French
	}
}
