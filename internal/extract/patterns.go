package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Record is one recognized title/metadata pair from a freeform page. The
// time is not part of the record; it is assigned positionally later.
type Record struct {
	Title    string
	Director string
	Country  string
	Year     int
	Language string
	Duration int
}

var (
	// recordPattern matches an upper-case title line followed by the
	// pipe-delimited metadata line. The 4-digit year and trailing
	// minute count anchor the match against OCR noise.
	recordPattern = regexp.MustCompile(
		`(?m)^([A-Z][A-Z0-9 \-'.,:()&!?]*?)\s*\n` +
			`Dir:\s*([^|\n]+)\s*\|\s*([^|\n]+)\s*\|\s*(\d{4})\s*\|\s*([^|\n]+)\s*\|\s*(\d+)['"]?`,
	)

	// inlinePattern handles entries where OCR merged the title and
	// metadata onto one line.
	inlinePattern = regexp.MustCompile(
		`([A-Z][A-Z0-9 \-'.,:()&!?]*?)\s+` +
			`Dir:\s*([^|\n]+)\s*\|\s*([^|\n]+)\s*\|\s*(\d{4})\s*\|\s*([^|\n]+)\s*\|\s*(\d+)['"]?`,
	)

	timePattern = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)
	datePattern = regexp.MustCompile(`\b(\d{2})-([A-Za-z]{3})-(\d{4})\b`)
)

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// PageScan is the raw recognition result for one page.
type PageScan struct {
	Page    int
	Records []Record
	Times   []string
	Dates   []string
	Venues  []string
	Screen  string
}

// ScanPage recognizes records, time tokens, dates, and venue markers in one
// page of OCR text. Records come from the multiline pattern first; the
// inline pattern then runs over the remaining text so a merged line is not
// counted twice.
func ScanPage(pageNumber int, text string) PageScan {
	scan := PageScan{Page: pageNumber}

	remainder := recordPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := recordPattern.FindStringSubmatch(match)
		if record, ok := recordFromGroups(groups); ok {
			scan.Records = append(scan.Records, record)
		}
		return ""
	})
	for _, groups := range inlinePattern.FindAllStringSubmatch(remainder, -1) {
		if record, ok := recordFromGroups(groups); ok {
			scan.Records = append(scan.Records, record)
		}
	}

	for _, groups := range timePattern.FindAllStringSubmatch(text, -1) {
		scan.Times = append(scan.Times, groups[1])
	}
	for _, groups := range datePattern.FindAllStringSubmatch(text, -1) {
		if iso, err := ParseDate(groups[0]); err == nil {
			scan.Dates = append(scan.Dates, iso)
		}
	}
	scan.Venues = detectVenues(text)
	scan.Screen = detectScreen(text)
	return scan
}

func recordFromGroups(groups []string) (Record, bool) {
	if len(groups) != 7 {
		return Record{}, false
	}
	year, err1 := strconv.Atoi(groups[4])
	duration, err2 := strconv.Atoi(groups[6])
	if err1 != nil || err2 != nil {
		// Both groups are digit-only by construction; this guards
		// against overflow-sized OCR garbage.
		return Record{}, false
	}
	return Record{
		Title:    strings.TrimSpace(groups[1]),
		Director: strings.TrimSpace(groups[2]),
		Country:  strings.TrimSpace(groups[3]),
		Year:     year,
		Language: strings.TrimSpace(groups[5]),
		Duration: duration,
	}, true
}

// ParseDate converts the source's "DD-Mon-YYYY" form to an ISO date.
func ParseDate(value string) (string, error) {
	groups := datePattern.FindStringSubmatch(strings.TrimSpace(value))
	if groups == nil {
		return "", fmt.Errorf("unrecognized date %q (want DD-Mon-YYYY)", value)
	}
	month, ok := monthNumbers[strings.ToLower(groups[2])]
	if !ok {
		return "", fmt.Errorf("unrecognized month %q in date %q", groups[2], value)
	}
	return groups[3] + "-" + month + "-" + groups[1], nil
}

// venueMarkers maps canonical venue names to the tokens that identify them
// in page text. Suchitra operates the Banashankari screen, so either token
// counts.
var venueMarkers = []struct {
	venue  string
	tokens []string
}{
	{"cinepolis", []string{"CINEPOLIS"}},
	{"rajkumar", []string{"RAJKUMAR"}},
	{"banashankari", []string{"SUCHITRA", "BANASHANKARI"}},
	{"openair", []string{"OPEN AIR"}},
	{"forum", []string{"OPEN FORUM"}},
}

func detectVenues(text string) []string {
	upper := strings.ToUpper(text)
	var venues []string
	for _, marker := range venueMarkers {
		for _, token := range marker.tokens {
			if strings.Contains(upper, token) {
				venues = append(venues, marker.venue)
				break
			}
		}
	}
	return venues
}

var screenPattern = regexp.MustCompile(`(?i)\bSCREEN\s+(\d{1,2})\b`)

func detectScreen(text string) string {
	groups := screenPattern.FindStringSubmatch(text)
	if groups == nil {
		return ""
	}
	return groups[1]
}
