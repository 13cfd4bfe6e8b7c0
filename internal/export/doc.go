// Package export renders the schedule store as an XLSX workbook, one sheet
// per festival day, for distribution to venue staff.
package export
