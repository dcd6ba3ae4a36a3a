// Package export shapes record collections into stable tabular form
// for the CSV report writer. The contract: the header order equals the
// record type's field order, every row serializes all header fields,
// and absent optional values become empty cells.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// Table is an ordered header plus rows aligned to it.
type Table struct {
	Header []string
	Rows   [][]string
}

// WriteCSV renders the table with CRLF line endings, matching the
// report files the dashboard has always produced.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Contributions tabulates contributions in their declared field order.
func Contributions(records []domain.Contribution) Table {
	t := Table{
		Header: []string{"id", "donor_name", "donor_contact", "village", "locality", "amount", "payment_type", "date"},
		Rows:   make([][]string, 0, len(records)),
	}
	for _, c := range records {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.DonorName,
			c.DonorContact,
			string(c.Village),
			c.Locality,
			formatAmount(c.Amount),
			string(c.PaymentType),
			c.Date,
		})
	}
	return t
}

// Mentors tabulates mentors in their declared field order.
func Mentors(records []domain.Mentor) Table {
	t := Table{
		Header: []string{"id", "name", "contact", "village", "locality"},
		Rows:   make([][]string, 0, len(records)),
	}
	for _, m := range records {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Name,
			m.Contact,
			string(m.Village),
			m.Locality,
		})
	}
	return t
}

// Localities tabulates localities in their declared field order.
func Localities(records []domain.Locality) Table {
	t := Table{
		Header: []string{"id", "name", "village"},
		Rows:   make([][]string, 0, len(records)),
	}
	for _, l := range records {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(l.ID, 10),
			l.Name,
			string(l.Village),
		})
	}
	return t
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
