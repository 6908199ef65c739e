// Package web hosts the TaskFlow browser service: the public landing page and
// the dashboard pages framed by the navigation shell.
//
// Route ownership lives in modules composed by the app package. This package
// adds the cross-cutting middleware, static assets and Prometheus endpoint,
// and owns the HTTP server lifecycle.
package web
