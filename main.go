// Package main provides the entry point for the reference data service. It
// starts a Fiber web server exposing the supply chain reference data REST
// API (facilities, programs, orderables, supervision hierarchy) together
// with the right-based access control checks guarding it. Persistence is
// handled with gorm.
package main

import (
	"os"

	"github.com/openlogistics-io/referencedata/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
