//go:build tools

package main

// swag generates the swagger docs served at /swagger from the controller
// annotations: swag init -g src/main.go
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
