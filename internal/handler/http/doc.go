// Package http contains the HTTP transport layer: the chi router, the
// session cookie guard for the CMS pages, the management API with full
// token verification, the public content API, and the request middleware
// chain (trace IDs, logging, metrics, panic recovery).
package http
