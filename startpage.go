// Package startpage provides a personal browser start page: a multi-engine
// search box, an editable bookmark grid with keyboard chord shortcuts, a
// live clock and persisted display settings.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, etree/).
package startpage
