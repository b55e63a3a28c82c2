// Package handler is the HTTP layer: the first entry point after the
// router.
//
// Each controller is a struct embedding Handler. Requests go through a
// typed pipeline (Handle) that runs the pipes from the validation
// package, calls the controller method, applies the controller's
// interceptors and writes the JSON response.
package handler
