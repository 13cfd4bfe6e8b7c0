// Package testsupport centralizes fixtures shared across package tests:
// temp-dir configs, catalog and store documents, and sample OCR page text.
package testsupport
