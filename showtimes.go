// Package showtimes extracts a cinema programme from a single HTML page and
// renders it as a date-grouped listing of showings.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, etree/).
package showtimes
