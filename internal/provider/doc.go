// Package provider defines the data-provider boundary the auditors consume:
// already-fetched per-platform NAP observations, page signals, content
// analyses, and directory listings. The bundled fixture provider serves the
// embedded demo dataset; the live provider is the seam a real collection
// pipeline plugs into. The core never performs network I/O.
package provider
