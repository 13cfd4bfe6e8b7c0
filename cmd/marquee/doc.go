// Command marquee drives the festival schedule pipeline: extracting
// showings from OCR page text, merging day extracts into the schedule
// store, and inspecting the result.
package main
