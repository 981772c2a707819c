package leads

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"leadpage-engine/internal/domain"
)

// ErrHeader is returned when the source header row does not match the
// expected column set. Callers treat this as fatal before any writes.
var ErrHeader = errors.New("unexpected lead source header")

var expectedHeader = []string{"slug", "business_name", "city", "service", "pain_point", "offer"}

// slugs become filenames; nothing that can escape the output dir
var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Read loads all usable leads from a CSV source in file order.
//
// Rows with missing fields, unsafe slugs or slugs already seen earlier
// in the same file are skipped with a warning; only an unreadable file
// or a wrong header aborts the read.
func Read(path string) ([]domain.Lead, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lead source: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read lead source header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var (
		out  []domain.Lead
		seen = make(map[string]bool)
		line = 1
	)
	for {
		line++
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("[leads] skipped line %d (malformed row): %v", line, err)
			continue
		}

		lead, why := leadFromRow(row)
		if why != "" {
			log.Printf("[leads] skipped line %d (%s)", line, why)
			continue
		}
		if seen[lead.Slug] {
			log.Printf("[leads] skipped line %d (duplicate slug %q, first occurrence wins)", line, lead.Slug)
			continue
		}
		seen[lead.Slug] = true
		out = append(out, lead)
	}

	return out, nil
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("%w: got %d columns, want %d (%s)",
			ErrHeader, len(header), len(expectedHeader), strings.Join(expectedHeader, ","))
	}
	for i, want := range expectedHeader {
		if strings.TrimSpace(header[i]) != want {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrHeader, i+1, header[i], want)
		}
	}
	return nil
}

func leadFromRow(row []string) (domain.Lead, string) {
	if len(row) != len(expectedHeader) {
		return domain.Lead{}, fmt.Sprintf("got %d fields, want %d", len(row), len(expectedHeader))
	}

	lead := domain.Lead{
		Slug:         strings.TrimSpace(row[0]),
		BusinessName: strings.TrimSpace(row[1]),
		City:         strings.TrimSpace(row[2]),
		Service:      strings.TrimSpace(row[3]),
		PainPoint:    strings.TrimSpace(row[4]),
		Offer:        strings.TrimSpace(row[5]),
	}

	var missing []string
	for i, v := range []string{lead.Slug, lead.BusinessName, lead.City, lead.Service, lead.PainPoint, lead.Offer} {
		if v == "" {
			missing = append(missing, expectedHeader[i])
		}
	}
	if len(missing) > 0 {
		return domain.Lead{}, "missing fields: " + strings.Join(missing, ", ")
	}

	if !slugPattern.MatchString(lead.Slug) {
		return domain.Lead{}, fmt.Sprintf("slug %q is not filesystem-safe", lead.Slug)
	}

	return lead, ""
}
