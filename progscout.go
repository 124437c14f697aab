// Package progscout provides a CLI tool that searches the web for
// educational-program listings, extracts structured program records from
// heterogeneous HTML, and stores them for filtered browsing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, serpapi/).
package progscout
