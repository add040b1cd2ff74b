package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

var header = []string{
	"inspection_id", "date", "body", "jurisdiction", "competence",
	"product", "manufacturer", "country", "serial_code", "safe", "results",
}

// WriteCSV renders r as CSV: a header row followed by one row per inspection.
// Unresolved references render as empty cells.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, in := range r.Inspections {
		if err := cw.Write(record(in)); err != nil {
			return fmt.Errorf("write csv row %s: %w", in.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func record(in domain.Inspection) []string {
	rec := make([]string, len(header))
	rec[0] = in.ID.String()
	rec[1] = domain.FormatDate(in.Date)
	if b := in.Body; b != nil {
		rec[2] = b.Name
		rec[3] = b.Jurisdiction.DisplayName()
		rec[4] = b.Competence.DisplayName()
	}
	if p := in.Product; p != nil {
		rec[5] = p.Name
		rec[6] = p.Manufacturer
		rec[7] = p.Country.DisplayName()
		if p.SerialCode != nil {
			rec[8] = *p.SerialCode
		}
	}
	rec[9] = strconv.FormatBool(in.Safe)
	if in.Results != nil {
		rec[10] = *in.Results
	}
	return rec
}
