// Package titlespec provides a browser for civil service title
// specifications. It loads a CSV export of document metadata and OCR'd
// text, keeps it as an immutable in-memory record set, and resolves which
// record is selected from a shareable permalink.
//
// This package contains domain types, interfaces, and pure logic following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/, http/,
// yaml/).
package titlespec
